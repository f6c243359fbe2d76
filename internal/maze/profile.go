// Package maze turns a difficulty level into a playable tile map: it tunes
// generation parameters, synthesizes the wall grid, materializes walls,
// places goals and frames the playfield with a border.
package maze

import (
	"github.com/vovakirdan/maze-arcade/internal/config"
	"github.com/vovakirdan/maze-arcade/internal/core"
)

// Profile is the bundle of generation parameters derived for one level.
// It is a value and is never modified after ComputeProfile returns it.
type Profile struct {
	Level       int     // Level after clamping into [1, MaxLevel]
	Tier        int     // Zero-based difficulty tier
	SafeMargin  int     // Tiles from the edge kept walkable
	LaneSpacing int     // Period of forced wall lanes
	EmptyChance float64 // Probability a non-lane tile stays walkable
	SpawnRadius int     // Half-size of the protected centre square
	GoalCount   int     // Goals requested for the level
}

// ComputeProfile maps a level to its generation parameters.
// The curve is a step function over tiers of TierSize levels, with a small
// extra bonus on even levels. Every field is clamped last.
func ComputeProfile(level int, d config.DifficultyConfig) Profile {
	clamped := core.Clamp(level, 1, d.MaxLevel)
	tier := (clamped - 1) / d.TierSize

	p := Profile{
		Level:       clamped,
		Tier:        tier,
		SafeMargin:  d.Base.SafeMargin - tier*d.Step.SafeMargin,
		LaneSpacing: d.Base.LaneSpacing - tier*d.Step.LaneSpacing,
		EmptyChance: d.Base.EmptyChance - float64(tier)*d.Step.EmptyChance,
		SpawnRadius: d.Base.SpawnRadius - tier*d.Step.SpawnRadius,
		GoalCount:   d.Base.GoalCount + tier*d.Step.GoalCount,
	}

	if clamped%2 == 0 {
		p.EmptyChance += d.EvenEmptyBonus
		p.GoalCount++
	}

	p.SafeMargin = max(p.SafeMargin, d.Min.SafeMargin)
	p.LaneSpacing = max(p.LaneSpacing, d.Min.LaneSpacing, 1)
	p.SpawnRadius = max(p.SpawnRadius, d.Min.SpawnRadius)
	p.EmptyChance = core.ClampF(p.EmptyChance, d.Min.EmptyChance, d.Max.EmptyChance)
	p.GoalCount = core.Clamp(p.GoalCount, d.Min.GoalCount, d.Max.GoalCount)

	return p
}

// ProfileTable returns the profile of every level from 1 to MaxLevel.
func ProfileTable(d config.DifficultyConfig) []Profile {
	table := make([]Profile, 0, d.MaxLevel)
	for level := 1; level <= d.MaxLevel; level++ {
		table = append(table, ComputeProfile(level, d))
	}
	return table
}
