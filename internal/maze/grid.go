package maze

import (
	"fmt"

	"github.com/vovakirdan/maze-arcade/internal/config"
	"github.com/vovakirdan/maze-arcade/internal/core"
)

// Cell is the logical content of one grid tile.
type Cell uint8

const (
	Walkable Cell = iota
	Wall
)

// Grid is the logical wall layout of a map, indexed [y][x].
// Only BuildGrid writes to it; everything else reads.
type Grid struct {
	width  int
	height int
	cells  []Cell
}

// Width returns the number of columns.
func (g *Grid) Width() int {
	return g.width
}

// Height returns the number of rows.
func (g *Grid) Height() int {
	return g.height
}

// At returns the cell at (x, y). Out-of-bounds cells read as Wall.
func (g *Grid) At(x, y int) Cell {
	if x < 0 || x >= g.width || y < 0 || y >= g.height {
		return Wall
	}
	return g.cells[y*g.width+x]
}

// IsWalkable reports whether (x, y) is inside the grid and not a wall.
func (g *Grid) IsWalkable(x, y int) bool {
	return g.At(x, y) == Walkable
}

// WallCount returns the number of Wall cells.
func (g *Grid) WallCount() int {
	n := 0
	for _, c := range g.cells {
		if c == Wall {
			n++
		}
	}
	return n
}

// MapContext is the read-only bundle shared by the generation steps of one build.
type MapContext struct {
	TilesX, TilesY   int
	CenterX, CenterY int
	OriginX, OriginY int // World position of tile (0, 0)
	TileW, TileH     int
	GoalW, GoalH     int

	MaxGoalAttempts int
	Profile         Profile

	WallVariants []config.Variant
	GoalVariants []config.Variant
}

// NewMapContext assembles the context for a tilesX by tilesY grid whose
// first tile sits at (originX, originY) in world space.
func NewMapContext(cfg config.MazeConfig, profile Profile, tilesX, tilesY, originX, originY int) *MapContext {
	return &MapContext{
		TilesX:          tilesX,
		TilesY:          tilesY,
		CenterX:         tilesX / 2,
		CenterY:         tilesY / 2,
		OriginX:         originX,
		OriginY:         originY,
		TileW:           cfg.Screen.TileWidth,
		TileH:           cfg.Screen.TileHeight,
		GoalW:           cfg.Placement.GoalWidth,
		GoalH:           cfg.Placement.GoalHeight,
		MaxGoalAttempts: cfg.Placement.MaxGoalAttempts,
		Profile:         profile,
		WallVariants:    cfg.Palette.Walls,
		GoalVariants:    cfg.Palette.Goals,
	}
}

// InMarginBand reports whether (x, y) is closer to an edge than SafeMargin.
func (c *MapContext) InMarginBand(x, y int) bool {
	m := c.Profile.SafeMargin
	return x < m || y < m || x >= c.TilesX-m || y >= c.TilesY-m
}

// InProtectedZone reports whether (x, y) lies in the centred spawn square.
func (c *MapContext) InProtectedZone(x, y int) bool {
	r := c.Profile.SpawnRadius
	return core.Abs(x-c.CenterX) <= r && core.Abs(y-c.CenterY) <= r
}

// TileRect returns the world rectangle covered by tile (x, y).
func (c *MapContext) TileRect(x, y int) core.Rect {
	return core.NewRect(c.OriginX+x*c.TileW, c.OriginY+y*c.TileH, c.TileW, c.TileH)
}

// BuildGrid synthesizes the wall layout for ctx.
//
// The margin band and the protected square are always walkable. Everywhere
// else a tile is a wall when it sits on a lane (x or y a multiple of
// LaneSpacing) or when a uniform draw exceeds EmptyChance.
func BuildGrid(ctx *MapContext, rng core.RNG) (*Grid, error) {
	if ctx.TilesX <= 0 || ctx.TilesY <= 0 {
		return nil, fmt.Errorf("grid size must be positive, got %dx%d", ctx.TilesX, ctx.TilesY)
	}
	spacing := ctx.Profile.LaneSpacing
	if spacing < 1 {
		return nil, fmt.Errorf("lane spacing must be at least 1, got %d", spacing)
	}

	g := &Grid{
		width:  ctx.TilesX,
		height: ctx.TilesY,
		cells:  make([]Cell, ctx.TilesX*ctx.TilesY),
	}

	for y := 0; y < g.height; y++ {
		for x := 0; x < g.width; x++ {
			if ctx.InMarginBand(x, y) || ctx.InProtectedZone(x, y) {
				continue
			}
			if x%spacing == 0 || y%spacing == 0 || rng.Float64() > ctx.Profile.EmptyChance {
				g.cells[y*g.width+x] = Wall
			}
		}
	}

	return g, nil
}
