package maze

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/maze-arcade/internal/config"
	"github.com/vovakirdan/maze-arcade/internal/core"
)

// BuildRequest describes one map build.
type BuildRequest struct {
	Level   int
	Screen  config.ScreenConfig // Zero value uses the director's configured screen
	Probe   CollisionProbe      // Nil uses AABBProbe
	Enemies []WorldObject       // Live enemies goals must not overlap
}

// Recache tells a rendering cache which static layers were rebuilt.
type Recache struct {
	Border bool
	Map    bool
}

// MapBuildResult is everything a build produces.
type MapBuildResult struct {
	Profile Profile
	Border  Border
	Walls   []WorldObject
	Goals   []WorldObject
	Report  GoalReport

	TilesX, TilesY int
	Interior       core.Rect // World rectangle of the interior grid
	Recache        Recache
}

// Sink receives completed builds. Commit is only called for full results.
type Sink interface {
	Commit(result *MapBuildResult)
}

// Director orchestrates profile, border, grid, walls and goals into one build.
// The RNG is reused across builds; a Director is not safe for concurrent use.
type Director struct {
	cfg    config.MazeConfig
	rng    core.RNG
	probe  CollisionProbe
	logger *log.Logger
}

// Option customizes a Director.
type Option func(*Director)

// WithRNG substitutes the random source.
func WithRNG(rng core.RNG) Option {
	return func(d *Director) { d.rng = rng }
}

// WithSeed seeds a fresh math/rand source.
func WithSeed(seed int64) Option {
	return func(d *Director) { d.rng = core.NewRNG(seed) }
}

// WithProbe sets the default collision probe.
func WithProbe(p CollisionProbe) Option {
	return func(d *Director) { d.probe = p }
}

// WithLogger sets the logger used for build diagnostics.
func WithLogger(l *log.Logger) Option {
	return func(d *Director) { d.logger = l }
}

// NewDirector validates cfg and returns a director for it.
// Malformed configuration is reported here, before any generation runs.
func NewDirector(cfg config.MazeConfig, opts ...Option) (*Director, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	d := &Director{
		cfg:   cfg,
		probe: AABBProbe{},
	}
	for _, opt := range opts {
		opt(d)
	}
	if d.rng == nil {
		d.rng = core.NewRNG(0)
	}
	if d.logger == nil {
		d.logger = log.NewWithOptions(os.Stderr, log.Options{Prefix: "maze"})
	}
	return d, nil
}

// Config returns the director's configuration.
func (d *Director) Config() config.MazeConfig {
	return d.cfg
}

// BuildMap runs the full pipeline for req.Level.
//
// Either a complete result is returned or a *BuildError and no result.
// Panics raised by a step are recovered here and reported the same way.
func (d *Director) BuildMap(req BuildRequest) (result *MapBuildResult, err error) {
	stage := StageConfig
	defer func() {
		if r := recover(); r != nil {
			err = &BuildError{Level: req.Level, Stage: stage, Err: fmt.Errorf("panic: %v", r)}
		}
		if err != nil {
			result = nil
			d.logger.Error("map build abandoned", "level", req.Level, "stage", stage, "error", err)
		}
	}()

	fail := func(cause error) error {
		return &BuildError{Level: req.Level, Stage: stage, Err: cause}
	}

	screen := req.Screen
	if screen == (config.ScreenConfig{}) {
		screen = d.cfg.Screen
	}
	cfg := d.cfg
	cfg.Screen = screen
	if err := cfg.Validate(); err != nil {
		return nil, fail(err)
	}

	probe := req.Probe
	if probe == nil {
		probe = d.probe
	}

	stage = StageProfile
	profile := ComputeProfile(req.Level, cfg.Difficulty)

	stage = StageBorder
	border, err := BuildBorder(screen)
	if err != nil {
		return nil, fail(err)
	}

	stage = StageGrid
	tilesX, tilesY := cfg.Map.TilesX, cfg.Map.TilesY
	if tilesX == 0 {
		tilesX = border.Columns - 2
	}
	if tilesY == 0 {
		tilesY = border.Rows - 2
	}
	originX := border.OffsetX + screen.TileWidth
	originY := border.HUDHeight + border.OffsetY + screen.TileHeight

	ctx := NewMapContext(cfg, profile, tilesX, tilesY, originX, originY)
	grid, err := BuildGrid(ctx, d.rng)
	if err != nil {
		return nil, fail(err)
	}

	stage = StageWalls
	walls := SpawnWalls(grid, ctx, d.rng)

	stage = StageGoals
	goals, report := SpawnGoals(grid, ctx, d.rng, probe, walls, req.Enemies)
	if report.Placed < report.Requested {
		d.logger.Debug("goal slots left empty", "level", profile.Level,
			"placed", report.Placed, "requested", report.Requested, "attempts", report.Attempts)
	}

	result = &MapBuildResult{
		Profile:  profile,
		Border:   border,
		Walls:    walls,
		Goals:    goals,
		Report:   report,
		TilesX:   tilesX,
		TilesY:   tilesY,
		Interior: core.NewRect(originX, originY, tilesX*screen.TileWidth, tilesY*screen.TileHeight),
		Recache:  Recache{Border: true, Map: true},
	}

	d.logger.Debug("map built", "level", profile.Level, "tier", profile.Tier,
		"walls", len(walls), "goals", len(goals), "border", len(border.Tiles))

	return result, nil
}

// BuildInto builds a map and commits it to sink only when the build succeeds.
func (d *Director) BuildInto(req BuildRequest, sink Sink) error {
	result, err := d.BuildMap(req)
	if err != nil {
		return err
	}
	sink.Commit(result)
	return nil
}
