package core

import (
	"math/rand"
	"time"
)

// RNG is the randomness seam used by generation.
// *rand.Rand satisfies it; tests substitute scripted sources.
type RNG interface {
	// Float64 returns a uniform value in [0, 1).
	Float64() float64
	// Intn returns a uniform value in [0, n). n must be positive.
	Intn(n int) int
}

// NewRNG returns a seeded source. A zero seed means "seed from the clock".
func NewRNG(seed int64) *rand.Rand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}
