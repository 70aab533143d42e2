package core

import "time"

// RuntimeConfig contains the options the platform passes to the game.
// Everything that shapes the simulation itself lives in config.GameConfig.
type RuntimeConfig struct {
	ScreenW      int           // Screen width in characters
	ScreenH      int           // Screen height in characters
	TickInterval time.Duration // Delay between simulation ticks while running
	Seed         int64         // RNG seed; 0 picks a time-based seed per run
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:      80,
		ScreenH:      24,
		TickInterval: 15 * time.Millisecond,
		Seed:         0,
	}
}
