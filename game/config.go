package game

import "time"

// Config holds game configuration constants
type Config struct {
	// ScreenWidth is the logical screen width in pixels
	ScreenWidth int

	// ScreenHeight is the logical screen height in pixels
	ScreenHeight int

	// HUDHeight is the height of the bottom HUD strip; the simulation
	// never places entities inside it
	HUDHeight int

	// Seed initializes the simulation's random source. Spawn timing,
	// enemy type mixes and power-up drops are reproducible for a fixed
	// seed.
	Seed int64
}

// DefaultConfig returns a default configuration (portrait layout)
func DefaultConfig() Config {
	return Config{
		ScreenWidth:  720,
		ScreenHeight: 1600,
		HUDHeight:    320,
		Seed:         time.Now().UnixNano(),
	}
}

// PlayHeight returns the height of the playable area in pixels
func (c Config) PlayHeight() int {
	return c.ScreenHeight - c.HUDHeight
}
