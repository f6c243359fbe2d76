package maze

import (
	"testing"

	"github.com/vovakirdan/maze-arcade/internal/config"
	"github.com/vovakirdan/maze-arcade/internal/core"
)

func TestBuildGridLaneExample(t *testing.T) {
	ctx := testContext(10, 10, Profile{SafeMargin: 1, SpawnRadius: 1, LaneSpacing: 3, EmptyChance: 1.0})

	grid, err := BuildGrid(ctx, core.NewRNG(7))
	if err != nil {
		t.Fatalf("BuildGrid() failed: %v", err)
	}

	for y := 0; y < 10; y++ {
		for x := 0; x < 10; x++ {
			protected := x < 1 || y < 1 || x >= 9 || y >= 9 || (core.Abs(x-5) <= 1 && core.Abs(y-5) <= 1)
			expected := Walkable
			if !protected && (x%3 == 0 || y%3 == 0) {
				expected = Wall
			}
			if got := grid.At(x, y); got != expected {
				t.Errorf("At(%d, %d) = %v, expected %v", x, y, got, expected)
			}
		}
	}
}

func TestBuildGridZeroEmptyChanceWallsEverythingUnprotected(t *testing.T) {
	ctx := testContext(12, 8, Profile{SafeMargin: 1, SpawnRadius: 1, LaneSpacing: 4, EmptyChance: 0})
	rng := &scriptedRNG{float: 0.5}

	grid, err := BuildGrid(ctx, rng)
	if err != nil {
		t.Fatalf("BuildGrid() failed: %v", err)
	}

	for y := 0; y < grid.Height(); y++ {
		for x := 0; x < grid.Width(); x++ {
			if ctx.InMarginBand(x, y) || ctx.InProtectedZone(x, y) {
				continue
			}
			if grid.At(x, y) != Wall {
				t.Errorf("At(%d, %d) should be a wall", x, y)
			}
		}
	}
	if rng.floatCalls == 0 {
		t.Error("random infill should draw from the RNG")
	}
}

func TestBuildGridInvariantsAcrossLevels(t *testing.T) {
	cfg := config.DefaultMazeConfig()

	for level := 1; level <= cfg.Difficulty.MaxLevel; level++ {
		for seed := int64(1); seed <= 5; seed++ {
			p := ComputeProfile(level, cfg.Difficulty)
			ctx := NewMapContext(cfg, p, 38, 20, 0, 0)

			grid, err := BuildGrid(ctx, core.NewRNG(seed))
			if err != nil {
				t.Fatalf("level %d seed %d: BuildGrid() failed: %v", level, seed, err)
			}

			for y := 0; y < grid.Height(); y++ {
				for x := 0; x < grid.Width(); x++ {
					safe := ctx.InMarginBand(x, y) || ctx.InProtectedZone(x, y)
					if safe && grid.At(x, y) != Walkable {
						t.Fatalf("level %d seed %d: protected cell (%d, %d) is a wall", level, seed, x, y)
					}
					lane := x%p.LaneSpacing == 0 || y%p.LaneSpacing == 0
					if !safe && lane && grid.At(x, y) != Wall {
						t.Fatalf("level %d seed %d: lane cell (%d, %d) is walkable", level, seed, x, y)
					}
				}
			}
		}
	}
}

func TestBuildGridSameSeedSameGrid(t *testing.T) {
	cfg := config.DefaultMazeConfig()
	ctx := NewMapContext(cfg, ComputeProfile(4, cfg.Difficulty), 38, 20, 0, 0)

	a, err := BuildGrid(ctx, core.NewRNG(99))
	if err != nil {
		t.Fatalf("BuildGrid() failed: %v", err)
	}
	b, err := BuildGrid(ctx, core.NewRNG(99))
	if err != nil {
		t.Fatalf("BuildGrid() failed: %v", err)
	}

	for y := 0; y < a.Height(); y++ {
		for x := 0; x < a.Width(); x++ {
			if a.At(x, y) != b.At(x, y) {
				t.Fatalf("grids differ at (%d, %d)", x, y)
			}
		}
	}
}

func TestBuildGridRejectsBadContext(t *testing.T) {
	tests := []struct {
		name string
		ctx  *MapContext
	}{
		{"zero lane spacing", testContext(10, 10, Profile{LaneSpacing: 0})},
		{"empty grid", testContext(0, 10, Profile{LaneSpacing: 3})},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := BuildGrid(tc.ctx, core.NewRNG(1)); err == nil {
				t.Error("expected error")
			}
		})
	}
}

func TestGridAtOutOfBounds(t *testing.T) {
	grid, err := BuildGrid(testContext(4, 4, Profile{SafeMargin: 2, LaneSpacing: 1}), core.NewRNG(1))
	if err != nil {
		t.Fatalf("BuildGrid() failed: %v", err)
	}
	if grid.IsWalkable(-1, 0) || grid.IsWalkable(0, 4) {
		t.Error("out-of-bounds cells must not be walkable")
	}
	if grid.WallCount() != 0 {
		t.Errorf("WallCount() = %d, expected 0 when the margin covers the grid", grid.WallCount())
	}
}
