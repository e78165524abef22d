package config

import (
	_ "embed"

	"github.com/vovakirdan/hextiles/internal/hex"
	"github.com/vovakirdan/hextiles/internal/tile"
)

//go:embed defaults/hextiles.yaml
var defaultYAML []byte

// Default returns the built-in configuration. It matches the embedded
// defaults/hextiles.yaml and is used when that file cannot be parsed.
func Default() Config {
	return Config{
		Board: BoardConfig{
			Params:      hex.P(6, 5, 5),
			Ortho:       "xy",
			Generator:   GeneratorWeighted,
			MaxAttempts: 1000,
		},
		Weights: tile.DefaultWeights(),
		Cascade: CascadeConfig{
			Radius: 1,
			Chain:  false,
		},
		Storage: StorageConfig{
			Path: "~/.hextiles/hextiles.db",
		},
		Server: ServerConfig{
			Host:        "0.0.0.0",
			Port:        "2323",
			HostKeyPath: ".ssh/hextiles_ed25519",
			IdleMinutes: 10,
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultYAML
}
