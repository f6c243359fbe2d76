package maze

import (
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/maze-arcade/internal/config"
	"github.com/vovakirdan/maze-arcade/internal/core"
)

// scriptedRNG returns fixed values and counts calls.
type scriptedRNG struct {
	float      float64
	intn       func(n int) int
	floatCalls int
	intCalls   int
}

func (r *scriptedRNG) Float64() float64 {
	r.floatCalls++
	return r.float
}

func (r *scriptedRNG) Intn(n int) int {
	r.intCalls++
	if r.intn == nil {
		return 0
	}
	return r.intn(n)
}

// countingRNG wraps a real source and counts Intn calls.
type countingRNG struct {
	core.RNG
	intCalls int
}

func (r *countingRNG) Intn(n int) int {
	r.intCalls++
	return r.RNG.Intn(n)
}

func quietLogger() *log.Logger {
	return log.New(io.Discard)
}

// testContext builds a context for a bare grid with the origin at (0, 0).
func testContext(tilesX, tilesY int, p Profile) *MapContext {
	return NewMapContext(config.DefaultMazeConfig(), p, tilesX, tilesY, 0, 0)
}
