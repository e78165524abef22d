// Package config provides YAML-based configuration loading for hextiles:
// board shape and generator, tile weights, cascade policy, storage and the
// SSH server.
package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/vovakirdan/hextiles/internal/board"
	"github.com/vovakirdan/hextiles/internal/hex"
	"github.com/vovakirdan/hextiles/internal/registry"
	"github.com/vovakirdan/hextiles/internal/tile"
)

// Built-in generator names. Any name in the registry is accepted.
const (
	GeneratorWeighted = "weighted"
	GeneratorNoise    = "noise"
)

// Config contains all configuration for hextiles.
type Config struct {
	Board   BoardConfig   `yaml:"board"`
	Weights tile.Weights  `yaml:"weights"`
	Cascade CascadeConfig `yaml:"cascade"`
	Storage StorageConfig `yaml:"storage"`
	Server  ServerConfig  `yaml:"server"`
}

// BoardConfig describes the board a new session starts with.
type BoardConfig struct {
	Params      hex.Params `yaml:"params"`
	Ortho       string     `yaml:"ortho"`     // xy or xz
	Generator   string     `yaml:"generator"` // registry name, weighted by default
	MaxAttempts int        `yaml:"max_attempts"`
}

// CascadeConfig mirrors board.Policy.
type CascadeConfig struct {
	Radius int  `yaml:"radius"`
	Chain  bool `yaml:"chain"`
}

// StorageConfig locates the SQLite database.
type StorageConfig struct {
	Path string `yaml:"path"`
}

// ServerConfig defines the SSH server.
type ServerConfig struct {
	Host        string `yaml:"host"`
	Port        string `yaml:"port"`
	HostKeyPath string `yaml:"host_key_path"`
	IdleMinutes int    `yaml:"idle_minutes"`
}

// Validate checks every section and returns all problems joined.
func (c Config) Validate() error {
	var errs []error
	if !c.Board.Params.Valid() {
		errs = append(errs, fmt.Errorf("board.params: %v is not a valid region", c.Board.Params))
	}
	if _, err := hex.ParseOrthoMode(c.Board.Ortho); err != nil {
		errs = append(errs, fmt.Errorf("board.ortho: %w", err))
	}
	if c.Board.Generator != "" && !registry.Exists(c.Board.Generator) {
		errs = append(errs, fmt.Errorf("board.generator: unknown generator %q", c.Board.Generator))
	}
	if c.Board.MaxAttempts < 0 {
		errs = append(errs, errors.New("board.max_attempts: must not be negative"))
	}
	if err := c.Weights.Validate(); err != nil {
		errs = append(errs, fmt.Errorf("weights: %w", err))
	}
	if c.Cascade.Radius < 1 {
		errs = append(errs, fmt.Errorf("cascade.radius: %d is below 1", c.Cascade.Radius))
	}
	if c.Server.IdleMinutes < 0 {
		errs = append(errs, errors.New("server.idle_minutes: must not be negative"))
	}
	if len(errs) > 0 {
		return fmt.Errorf("config: %w", errors.Join(errs...))
	}
	return nil
}

// OrthoMode returns the parsed board.ortho value, defaulting to xy.
func (c Config) OrthoMode() hex.OrthoMode {
	m, _ := hex.ParseOrthoMode(c.Board.Ortho)
	return m
}

// Policy returns the cascade section as a board policy.
func (c Config) Policy() board.Policy {
	return board.Policy{Radius: c.Cascade.Radius, Chain: c.Cascade.Chain}
}

// Generator builds a tile generator over sampler from the weights section.
func (c Config) Generator(sampler tile.Sampler) tile.Generator {
	return tile.Generator{
		Weights:     c.Weights,
		Sampler:     sampler,
		MaxAttempts: c.Board.MaxAttempts,
	}
}

// NewBoard generates a board with the configured shape and generator.
// seed drives the noise field when the noise generator is selected.
func (c Config) NewBoard(sampler tile.Sampler, seed int64) (*board.Board, error) {
	name := c.Board.Generator
	if name == "" {
		name = GeneratorWeighted
	}
	generate, err := registry.Get(name)
	if err != nil {
		return nil, err
	}
	return generate(c.Board.Params, c.OrthoMode(), c.Generator(sampler), seed)
}

// Address returns host:port for the SSH listener.
func (s ServerConfig) Address() string {
	return s.Host + ":" + s.Port
}

// IdleTimeout returns the idle limit of an SSH session. Zero disables it.
func (s ServerConfig) IdleTimeout() time.Duration {
	return time.Duration(s.IdleMinutes) * time.Minute
}
