// Package core provides fundamental types and utilities shared by the board
// and the platform layer: a deterministic RNG with weighted sampling, semantic
// input actions, colors, and a plain-text screen buffer. It has no external
// dependencies so that it stays pure and testable.
package core

// RuntimeConfig contains configuration passed to a board session at startup.
// The platform layer fills it from the terminal and command-line flags.
type RuntimeConfig struct {
	ScreenW int    // Screen width in characters
	ScreenH int    // Screen height in characters
	Seed    uint64 // RNG seed for deterministic generation
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW: 80,
		ScreenH: 24,
		Seed:    0, // 0 means use current time in platform layer
	}
}

// Fits reports whether a drawing of w by h characters fits on screen.
func (c RuntimeConfig) Fits(w, h int) bool {
	return w <= c.ScreenW && h <= c.ScreenH
}
