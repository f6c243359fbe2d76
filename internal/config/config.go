// Package config provides YAML-based configuration loading and validation
// for the maze generator.
package config

import "math"

// MazeConfig contains all tuning for map generation.
type MazeConfig struct {
	Screen     ScreenConfig     `yaml:"screen"`
	Map        MapConfig        `yaml:"map"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
	Placement  PlacementConfig  `yaml:"placement"`
	Palette    PaletteConfig    `yaml:"palette"`
}

// ScreenConfig describes the world size and the HUD band reserved at the top.
type ScreenConfig struct {
	Width       int     `yaml:"width"`
	Height      int     `yaml:"height"`
	HUDFraction float64 `yaml:"hud_fraction"` // Fraction of Height reserved for the HUD
	TileWidth   int     `yaml:"tile_width"`
	TileHeight  int     `yaml:"tile_height"`
}

// PlayHeight returns floor(Height - Height*HUDFraction), the world units
// left below the HUD band.
func (s ScreenConfig) PlayHeight() int {
	h := float64(s.Height)
	// 1e-9 absorbs products such as 70*0.1 = 7.000000000000001
	return int(math.Floor(h - h*s.HUDFraction + 1e-9))
}

// HUDHeight returns the number of world units reserved for the HUD band.
// A fractional band is rounded up so the play area never overlaps it.
func (s ScreenConfig) HUDHeight() int {
	return s.Height - s.PlayHeight()
}

// MapConfig fixes the interior grid dimensions.
// Zero values mean "fill the border frame interior".
type MapConfig struct {
	TilesX int `yaml:"tiles_x"`
	TilesY int `yaml:"tiles_y"`
}

// DifficultyConfig defines the stepped difficulty curve.
type DifficultyConfig struct {
	MaxLevel       int           `yaml:"max_level"`
	StartLevel     int           `yaml:"start_level"`
	Progression    bool          `yaml:"progression"` // false pins the viewer to StartLevel
	TierSize       int           `yaml:"tier_size"`
	EvenEmptyBonus float64       `yaml:"even_empty_bonus"`
	Base           ProfileValues `yaml:"base"`
	Step           ProfileValues `yaml:"step"`
	Min            ProfileValues `yaml:"min"`
	Max            ProfileLimits `yaml:"max"`
}

// ProfileValues holds one value per generation parameter.
type ProfileValues struct {
	SafeMargin  int     `yaml:"safe_margin"`
	LaneSpacing int     `yaml:"lane_spacing"`
	EmptyChance float64 `yaml:"empty_chance"`
	SpawnRadius int     `yaml:"spawn_radius"`
	GoalCount   int     `yaml:"goal_count"`
}

// ProfileLimits holds upper bounds. Margin, spacing and radius are unbounded above.
type ProfileLimits struct {
	EmptyChance float64 `yaml:"empty_chance"`
	GoalCount   int     `yaml:"goal_count"`
}

// PlacementConfig bounds goal placement.
type PlacementConfig struct {
	MaxGoalAttempts int `yaml:"max_goal_attempts"`
	GoalWidth       int `yaml:"goal_width"`
	GoalHeight      int `yaml:"goal_height"`
}

// PaletteConfig enumerates the visual variants available to the generator.
type PaletteConfig struct {
	Walls  []Variant `yaml:"walls"`
	Goals  []Variant `yaml:"goals"`
	Border Variant   `yaml:"border"`
}

// Variant is one visual flavour of a tile or goal.
type Variant struct {
	Name  string `yaml:"name"`
	Glyph string `yaml:"glyph"`
	Color string `yaml:"color"`
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// StartLevelForPreset returns the first level played for a preset.
// Zero means "keep the configured start level".
func StartLevelForPreset(preset DifficultyPreset, tierSize int) int {
	switch preset {
	case DifficultyEasy:
		return 1
	case DifficultyNormal:
		return tierSize + 1
	case DifficultyHard:
		return 2*tierSize + 1
	default:
		return 0
	}
}

// IsFixedPreset returns true if the preset disables progression.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}

// ParseDifficultyPreset validates a preset name. The empty string is accepted
// and means no preset.
func ParseDifficultyPreset(s string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(s); p {
	case "", DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, nil
	}
	return "", invalid("difficulty", "unknown preset %q (want easy, normal, hard or fixed)", s)
}
