package core

// RuntimeConfig contains configuration passed to front ends at startup.
type RuntimeConfig struct {
	ScreenW int   // Terminal width in characters
	ScreenH int   // Terminal height in characters
	Seed    int64 // RNG seed for reproducible maps
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW: 80,
		ScreenH: 24,
		Seed:    0, // 0 means use current time
	}
}
