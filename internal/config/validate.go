package config

import (
	"fmt"
	"unicode/utf8"
)

// ConfigurationError reports a malformed or out-of-range constant.
type ConfigurationError struct {
	Field  string
	Reason string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("config: invalid %s: %s", e.Field, e.Reason)
}

func invalid(field, format string, args ...any) error {
	return &ConfigurationError{Field: field, Reason: fmt.Sprintf(format, args...)}
}

// Validate checks the configuration before any generation runs.
// The first problem found is returned as a *ConfigurationError.
func (c MazeConfig) Validate() error {
	if err := c.Screen.validate(); err != nil {
		return err
	}
	if c.Map.TilesX < 0 || c.Map.TilesY < 0 {
		return invalid("map", "tile counts must not be negative (%dx%d)", c.Map.TilesX, c.Map.TilesY)
	}
	if err := c.Difficulty.validate(); err != nil {
		return err
	}

	if c.Placement.MaxGoalAttempts < 1 {
		return invalid("placement.max_goal_attempts", "must be at least 1, got %d", c.Placement.MaxGoalAttempts)
	}
	if c.Placement.GoalWidth <= 0 || c.Placement.GoalHeight <= 0 {
		return invalid("placement.goal_size", "must be positive, got %dx%d", c.Placement.GoalWidth, c.Placement.GoalHeight)
	}

	return c.Palette.validate()
}

func (s ScreenConfig) validate() error {
	switch {
	case s.Width <= 0 || s.Height <= 0:
		return invalid("screen", "size must be positive, got %dx%d", s.Width, s.Height)
	case s.TileWidth <= 0 || s.TileHeight <= 0:
		return invalid("screen.tile_size", "must be positive, got %dx%d", s.TileWidth, s.TileHeight)
	case s.HUDFraction < 0 || s.HUDFraction >= 1:
		return invalid("screen.hud_fraction", "must be in [0, 1), got %g", s.HUDFraction)
	}
	return nil
}

func (d DifficultyConfig) validate() error {
	if d.MaxLevel < 1 {
		return invalid("difficulty.max_level", "must be at least 1, got %d", d.MaxLevel)
	}
	if d.StartLevel < 1 || d.StartLevel > d.MaxLevel {
		return invalid("difficulty.start_level", "must be in [1, %d], got %d", d.MaxLevel, d.StartLevel)
	}
	if d.TierSize < 1 {
		return invalid("difficulty.tier_size", "must be at least 1, got %d", d.TierSize)
	}
	if d.Base.LaneSpacing < 1 {
		return invalid("difficulty.base.lane_spacing", "must be at least 1, got %d", d.Base.LaneSpacing)
	}
	if d.Min.LaneSpacing < 1 {
		return invalid("difficulty.min.lane_spacing", "must be at least 1, got %d", d.Min.LaneSpacing)
	}
	if d.Min.SafeMargin < 0 || d.Min.SpawnRadius < 0 || d.Min.GoalCount < 0 {
		return invalid("difficulty.min", "margin, radius and goal count must not be negative")
	}
	if st := d.Step; st.SafeMargin < 0 || st.LaneSpacing < 0 || st.SpawnRadius < 0 || st.EmptyChance < 0 || st.GoalCount < 0 {
		return invalid("difficulty.step", "steps must not be negative, got %+v", st)
	}
	if d.Min.EmptyChance < 0 || d.Max.EmptyChance > 1 || d.Min.EmptyChance > d.Max.EmptyChance {
		return invalid("difficulty.empty_chance", "bounds [%g, %g] must lie within [0, 1]", d.Min.EmptyChance, d.Max.EmptyChance)
	}
	if d.Min.GoalCount > d.Max.GoalCount {
		return invalid("difficulty.goal_count", "min %d exceeds max %d", d.Min.GoalCount, d.Max.GoalCount)
	}
	return nil
}

func (p PaletteConfig) validate() error {
	if len(p.Walls) == 0 {
		return invalid("palette.walls", "at least one wall variant is required")
	}
	if len(p.Goals) == 0 {
		return invalid("palette.goals", "at least one goal variant is required")
	}
	for i, v := range p.Walls {
		if utf8.RuneCountInString(v.Glyph) != 1 {
			return invalid(fmt.Sprintf("palette.walls[%d].glyph", i), "must be a single character, got %q", v.Glyph)
		}
	}
	for i, v := range p.Goals {
		if utf8.RuneCountInString(v.Glyph) != 1 {
			return invalid(fmt.Sprintf("palette.goals[%d].glyph", i), "must be a single character, got %q", v.Glyph)
		}
	}
	return nil
}
