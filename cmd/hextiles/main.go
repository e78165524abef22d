// hextiles plays elements on a hexagonal board of terrain tiles.
//
// Usage:
//
//	hextiles generate            - Generate a board and print it
//	hextiles show <id>           - Print a saved board and its recent moves
//	hextiles apply <id> <element> <x> <y>
//	                             - Apply an element to a saved board
//	hextiles boards              - List saved boards
//	hextiles levels <dir>        - List scenario files in a directory
//	hextiles play [id]           - Play interactively in the terminal
//	hextiles serve               - Start SSH server for remote play
//
// Global flags:
//
//	--config <path>     - Config file (default: search ~/.hextiles, ./configs)
//	--db <path>         - Database path (default: from config)
//	--seed <value>      - RNG seed for reproducible boards
//	--log-level <level> - debug, info, warn or error
package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/hextiles/internal/board"
	"github.com/vovakirdan/hextiles/internal/config"
	"github.com/vovakirdan/hextiles/internal/core"
	"github.com/vovakirdan/hextiles/internal/hex"
	"github.com/vovakirdan/hextiles/internal/storage"
)

var (
	// Global flags
	flagConfig   string
	flagDBPath   string
	flagSeed     uint64
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "hextiles",
	Short: "hextiles - elemental terrain on a hex board",
	Long: `hextiles keeps a hexagonal board of terrain tiles. Each tile has an
elevation, a terrain, a water feature and a detail. Applying one of six
elements (air, fire, ice, plant, stone, water) changes a tile, and some
combinations set off cascades that spread to the tiles around it.

Available commands:
  generate - Generate a new board
  show     - Print a saved board
  apply    - Apply an element to a saved board
  boards   - List or delete saved boards
  levels   - List scenario files
  play     - Play interactively
  serve    - Start SSH server for remote play

Examples:
  hextiles generate --params 6,5,5 --save --name coast
  hextiles apply 3f2a9c1e fire 2 3
  hextiles play --level levels/volcano.yaml
  hextiles serve`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "", "Path to boards database (default from config)")
	rootCmd.PersistentFlags().Uint64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	// Add subcommands
	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(applyCmd)
	rootCmd.AddCommand(boardsCmd)
	rootCmd.AddCommand(levelsCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
}

// loadConfig loads the configuration and applies the global flags.
func loadConfig() (config.Config, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return config.Config{}, err
	}
	if flagDBPath != "" {
		cfg.Storage.Path = flagDBPath
	}
	return cfg, nil
}

// newLogger builds the logger passed down to the TUI and SSH server.
func newLogger() (*log.Logger, error) {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "hextiles",
	})
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, fmt.Errorf("invalid --log-level %q", flagLogLevel)
	}
	logger.SetLevel(level)
	return logger, nil
}

// openStore opens the boards database named by the config.
func openStore(cfg config.Config) (*storage.Store, error) {
	store, err := storage.Open(cfg.Storage.Path)
	if err != nil {
		return nil, fmt.Errorf("opening boards database: %w", err)
	}
	return store, nil
}

// seed returns --seed, or a time-based seed when it is zero.
func seed() uint64 {
	if flagSeed != 0 {
		return flagSeed
	}
	return uint64(time.Now().UnixNano())
}

// generateBoard builds a board from the config with the global seed.
func generateBoard(cfg config.Config) (*board.Board, error) {
	s := seed()
	b, err := cfg.NewBoard(core.NewRNG(s), int64(s))
	if err != nil {
		return nil, fmt.Errorf("generating board: %w", err)
	}
	return b, nil
}

// parseParams parses "a,b,c".
func parseParams(s string) (hex.Params, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 3 {
		return hex.Params{}, fmt.Errorf("params %q: want a,b,c", s)
	}
	var v [3]int
	for i, part := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil {
			return hex.Params{}, fmt.Errorf("params %q: %w", s, err)
		}
		v[i] = n
	}
	p := hex.P(v[0], v[1], v[2])
	if !p.Valid() {
		return hex.Params{}, fmt.Errorf("params %v: every side must be at least 1", p)
	}
	return p, nil
}

// parseCoord parses two integer arguments.
func parseCoord(xs, ys string) (hex.Coord, error) {
	x, err := strconv.Atoi(xs)
	if err != nil {
		return hex.Coord{}, fmt.Errorf("x %q: %w", xs, err)
	}
	y, err := strconv.Atoi(ys)
	if err != nil {
		return hex.Coord{}, fmt.Errorf("y %q: %w", ys, err)
	}
	return hex.C(x, y), nil
}
