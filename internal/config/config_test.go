package config

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestDefaultConfigIsValid(t *testing.T) {
	if err := DefaultMazeConfig().Validate(); err != nil {
		t.Fatalf("DefaultMazeConfig().Validate() = %v", err)
	}
}

func TestEmbeddedYAMLMatchesDefaults(t *testing.T) {
	cfg, err := ParseMaze(GetDefaultYAML())
	if err != nil {
		t.Fatalf("ParseMaze(embedded) failed: %v", err)
	}
	if !reflect.DeepEqual(cfg, DefaultMazeConfig()) {
		t.Errorf("embedded YAML drifted from DefaultMazeConfig:\n got %+v\nwant %+v", cfg, DefaultMazeConfig())
	}
}

func TestValidateRejectsMalformedConstants(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*MazeConfig)
		field  string
	}{
		{"zero lane spacing", func(c *MazeConfig) { c.Difficulty.Min.LaneSpacing = 0 }, "difficulty.min.lane_spacing"},
		{"zero base lane spacing", func(c *MazeConfig) { c.Difficulty.Base.LaneSpacing = 0 }, "difficulty.base.lane_spacing"},
		{"zero tile width", func(c *MazeConfig) { c.Screen.TileWidth = 0 }, "screen.tile_size"},
		{"hud fraction of one", func(c *MazeConfig) { c.Screen.HUDFraction = 1 }, "screen.hud_fraction"},
		{"zero tier size", func(c *MazeConfig) { c.Difficulty.TierSize = 0 }, "difficulty.tier_size"},
		{"start above max", func(c *MazeConfig) { c.Difficulty.StartLevel = 99 }, "difficulty.start_level"},
		{"empty chance above one", func(c *MazeConfig) { c.Difficulty.Max.EmptyChance = 1.5 }, "difficulty.empty_chance"},
		{"negative margin step", func(c *MazeConfig) { c.Difficulty.Step.SafeMargin = -2 }, "difficulty.step"},
		{"negative empty chance step", func(c *MazeConfig) { c.Difficulty.Step.EmptyChance = -0.05 }, "difficulty.step"},
		{"goal min above max", func(c *MazeConfig) { c.Difficulty.Min.GoalCount = 30 }, "difficulty.goal_count"},
		{"no attempts", func(c *MazeConfig) { c.Placement.MaxGoalAttempts = 0 }, "placement.max_goal_attempts"},
		{"no wall variants", func(c *MazeConfig) { c.Palette.Walls = nil }, "palette.walls"},
		{"no goal variants", func(c *MazeConfig) { c.Palette.Goals = nil }, "palette.goals"},
		{"wide glyph", func(c *MazeConfig) { c.Palette.Goals[0].Glyph = "ab" }, "palette.goals[0].glyph"},
		{"negative tiles", func(c *MazeConfig) { c.Map.TilesX = -1 }, "map"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultMazeConfig()
			tc.mutate(&cfg)

			err := cfg.Validate()
			var cfgErr *ConfigurationError
			if !errors.As(err, &cfgErr) {
				t.Fatalf("Validate() = %v, expected *ConfigurationError", err)
			}
			if cfgErr.Field != tc.field {
				t.Errorf("Field = %q, expected %q", cfgErr.Field, tc.field)
			}
		})
	}
}

func TestLoadMazeCustomPathPartialOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "maze.yaml")
	data := []byte("difficulty:\n  tier_size: 3\nplacement:\n  max_goal_attempts: 7\n")
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	cfg, err := LoadMaze(path)
	if err != nil {
		t.Fatalf("LoadMaze() failed: %v", err)
	}
	if cfg.Difficulty.TierSize != 3 {
		t.Errorf("TierSize = %d, expected 3", cfg.Difficulty.TierSize)
	}
	if cfg.Placement.MaxGoalAttempts != 7 {
		t.Errorf("MaxGoalAttempts = %d, expected 7", cfg.Placement.MaxGoalAttempts)
	}
	// Untouched keys keep their defaults
	if cfg.Difficulty.Base.LaneSpacing != 6 {
		t.Errorf("Base.LaneSpacing = %d, expected default 6", cfg.Difficulty.Base.LaneSpacing)
	}
}

func TestLoadMazeCustomPathErrors(t *testing.T) {
	if _, err := LoadMaze(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected error for missing custom config")
	}

	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("difficulty:\n  min:\n    lane_spacing: 0\n"), 0o600); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}
	_, err := LoadMaze(path)
	var cfgErr *ConfigurationError
	if !errors.As(err, &cfgErr) {
		t.Errorf("LoadMaze() = %v, expected *ConfigurationError", err)
	}
}

func TestApplyMazePreset(t *testing.T) {
	tests := []struct {
		preset      DifficultyPreset
		startLevel  int
		progression bool
	}{
		{DifficultyEasy, 1, true},
		{DifficultyNormal, 6, true},
		{DifficultyHard, 11, true},
		{DifficultyFixed, 1, false},
		{"", 1, true},
	}

	for _, tc := range tests {
		t.Run(string(tc.preset), func(t *testing.T) {
			cfg := DefaultMazeConfig()
			ApplyMazePreset(&cfg, tc.preset)
			if cfg.Difficulty.StartLevel != tc.startLevel {
				t.Errorf("StartLevel = %d, expected %d", cfg.Difficulty.StartLevel, tc.startLevel)
			}
			if cfg.Difficulty.Progression != tc.progression {
				t.Errorf("Progression = %v, expected %v", cfg.Difficulty.Progression, tc.progression)
			}
		})
	}
}

func TestHUDHeight(t *testing.T) {
	tests := []struct {
		height   int
		fraction float64
		play     int
		hud      int
	}{
		{24, 0.1, 21, 3}, // 21.6 left below the band
		{25, 0.1, 22, 3},
		{30, 0.1, 27, 3},
		{70, 0.1, 63, 7},
		{600, 0.1, 540, 60},
		{24, 0, 24, 0},
	}

	for _, tc := range tests {
		s := ScreenConfig{Width: 80, Height: tc.height, HUDFraction: tc.fraction, TileWidth: 2, TileHeight: 1}
		if got := s.PlayHeight(); got != tc.play {
			t.Errorf("%d*%g: PlayHeight() = %d, expected %d", tc.height, tc.fraction, got, tc.play)
		}
		if got := s.HUDHeight(); got != tc.hud {
			t.Errorf("%d*%g: HUDHeight() = %d, expected %d", tc.height, tc.fraction, got, tc.hud)
		}
	}
}

func TestParseDifficultyPreset(t *testing.T) {
	for _, name := range []string{"", "easy", "normal", "hard", "fixed"} {
		if p, err := ParseDifficultyPreset(name); err != nil || string(p) != name {
			t.Errorf("ParseDifficultyPreset(%q) = %q, %v", name, p, err)
		}
	}

	_, err := ParseDifficultyPreset("insane")
	var cfgErr *ConfigurationError
	if !errors.As(err, &cfgErr) || cfgErr.Field != "difficulty" {
		t.Errorf("expected ConfigurationError for unknown preset, got %v", err)
	}
}
