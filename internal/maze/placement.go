package maze

import (
	"math"

	"github.com/vovakirdan/maze-arcade/internal/core"
)

// GoalReport summarizes one goal placement pass.
type GoalReport struct {
	Requested int // Profile.GoalCount
	Placed    int
	Attempts  int // Candidate draws across all slots
}

// SpawnWalls materializes one wall object per Wall cell.
//
// The variant mixes a random offset with a bias that grows with the tile's
// distance from the grid centre, so variety shifts outward while staying
// locally random.
func SpawnWalls(grid *Grid, ctx *MapContext, rng core.RNG) []WorldObject {
	n := len(ctx.WallVariants)
	walls := make([]WorldObject, 0, grid.WallCount())
	if n == 0 {
		return walls
	}

	maxDist := farthestCorner(ctx)

	for y := 0; y < grid.Height(); y++ {
		for x := 0; x < grid.Width(); x++ {
			if grid.At(x, y) != Wall {
				continue
			}

			bias := 0
			if maxDist > 0 {
				dist := math.Hypot(float64(x-ctx.CenterX), float64(y-ctx.CenterY))
				bias = int(math.Floor(dist / maxDist * float64(n)))
			}

			r := ctx.TileRect(x, y)
			walls = append(walls, WorldObject{
				Kind:    KindWall,
				Variant: (rng.Intn(n) + bias) % n,
				X:       r.X,
				Y:       r.Y,
				W:       r.W,
				H:       r.H,
			})
		}
	}

	return walls
}

// farthestCorner returns the largest distance in tiles from the grid centre
// to any of the four corner tiles, so the bias never exceeds len(variants).
func farthestCorner(ctx *MapContext) float64 {
	maxX, maxY := ctx.TilesX-1, ctx.TilesY-1
	var d float64
	for _, c := range [4][2]int{{0, 0}, {maxX, 0}, {0, maxY}, {maxX, maxY}} {
		d = max(d, math.Hypot(float64(c[0]-ctx.CenterX), float64(c[1]-ctx.CenterY)))
	}
	return d
}

// SpawnGoals places up to Profile.GoalCount goals by rejection sampling.
//
// Each slot gets at most MaxGoalAttempts random draws. A draw is rejected
// when its tile is a wall, lies in the margin band or protected square, or
// when the goal would overlap a wall, an earlier goal or an enemy. A slot
// that runs out of draws is skipped, so fewer goals than requested is a
// normal outcome.
func SpawnGoals(grid *Grid, ctx *MapContext, rng core.RNG, probe CollisionProbe, walls, enemies []WorldObject) ([]WorldObject, GoalReport) {
	report := GoalReport{Requested: ctx.Profile.GoalCount}
	goals := make([]WorldObject, 0, max(ctx.Profile.GoalCount, 0))
	if len(ctx.GoalVariants) == 0 || grid.Width() == 0 || grid.Height() == 0 {
		return goals, report
	}

	for slot := 0; slot < ctx.Profile.GoalCount; slot++ {
		for attempt := 0; attempt < ctx.MaxGoalAttempts; attempt++ {
			report.Attempts++

			x := rng.Intn(grid.Width())
			y := rng.Intn(grid.Height())
			if !grid.IsWalkable(x, y) || ctx.InMarginBand(x, y) || ctx.InProtectedZone(x, y) {
				continue
			}

			candidate := goalAt(ctx, x, y)
			if probe.OverlapsAny(candidate, walls) ||
				probe.OverlapsAny(candidate, goals) ||
				probe.OverlapsAny(candidate, enemies) {
				continue
			}

			candidate.Variant = rng.Intn(len(ctx.GoalVariants))
			goals = append(goals, candidate)
			break
		}
	}

	report.Placed = len(goals)
	return goals, report
}

// goalAt returns a goal centred on tile (x, y).
func goalAt(ctx *MapContext, x, y int) WorldObject {
	tile := ctx.TileRect(x, y)
	return WorldObject{
		Kind: KindGoal,
		X:    tile.X + (tile.W-ctx.GoalW)/2,
		Y:    tile.Y + (tile.H-ctx.GoalH)/2,
		W:    ctx.GoalW,
		H:    ctx.GoalH,
	}
}
