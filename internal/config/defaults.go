package config

import (
	_ "embed"
)

//go:embed defaults/maze.yaml
var defaultMazeYAML []byte

// DefaultMazeConfig returns the default maze configuration.
func DefaultMazeConfig() MazeConfig {
	return MazeConfig{
		Screen: ScreenConfig{
			Width:       80,
			Height:      24,
			HUDFraction: 0.1, // 3 rows at 24, 21 left for play
			TileWidth:   2,
			TileHeight:  1,
		},
		Map: MapConfig{
			TilesX: 0,
			TilesY: 0,
		},
		Difficulty: DifficultyConfig{
			MaxLevel:       20,
			StartLevel:     1,
			Progression:    true,
			TierSize:       5,
			EvenEmptyBonus: 0.05,
			Base: ProfileValues{
				SafeMargin:  2,
				LaneSpacing: 6,
				EmptyChance: 0.7,
				SpawnRadius: 3,
				GoalCount:   5,
			},
			Step: ProfileValues{
				SafeMargin:  1,
				LaneSpacing: 1,
				EmptyChance: 0.05,
				SpawnRadius: 1,
				GoalCount:   2,
			},
			Min: ProfileValues{
				SafeMargin:  1,
				LaneSpacing: 3,
				EmptyChance: 0.3,
				SpawnRadius: 1,
				GoalCount:   1,
			},
			Max: ProfileLimits{
				EmptyChance: 0.95,
				GoalCount:   20,
			},
		},
		Placement: PlacementConfig{
			MaxGoalAttempts: 50,
			GoalWidth:       2,
			GoalHeight:      1,
		},
		Palette: PaletteConfig{
			Walls: []Variant{
				{Name: "brick", Glyph: "█", Color: "gray"},
				{Name: "moss", Glyph: "▓", Color: "green"},
				{Name: "rust", Glyph: "▒", Color: "orange"},
				{Name: "ice", Glyph: "░", Color: "cyan"},
			},
			Goals: []Variant{
				{Name: "coin", Glyph: "o", Color: "bright_yellow"},
				{Name: "gem", Glyph: "*", Color: "bright_magenta"},
				{Name: "key", Glyph: "k", Color: "bright_cyan"},
			},
			Border: Variant{Name: "frame", Glyph: "#", Color: "blue"},
		},
	}
}

// GetDefaultYAML returns the embedded default YAML.
func GetDefaultYAML() []byte {
	return defaultMazeYAML
}
