package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/hextiles/internal/board"
	"github.com/vovakirdan/hextiles/internal/core"
	"github.com/vovakirdan/hextiles/internal/levels"
	"github.com/vovakirdan/hextiles/internal/platform/tui"
	"github.com/vovakirdan/hextiles/internal/storage"
)

var flagPlayLevel string

var playCmd = &cobra.Command{
	Use:   "play [id]",
	Short: "Play interactively",
	Long: `Play elements on a board in the terminal.

With no arguments a new board is generated from the config. Pass a saved
board ID to continue it, or --level to start from a scenario file.

Controls:
  Arrows/hjkl - Move the cursor
  1-6         - Apply air, fire, ice, plant, stone, water
  C           - Toggle chained cascades
  U/Ctrl+Z    - Undo
  S/Ctrl+S    - Save
  Esc/B       - Saved boards
  ?           - Help
  Q/Ctrl+C    - Quit

Examples:
  hextiles play
  hextiles play --seed 42
  hextiles play 3f2a9c1e-0b7d-4c55-9d0e-2a1f6b8c7d90
  hextiles play --level levels/volcano.yaml`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagPlayLevel, "level", "", "Scenario file to start from")
}

func runPlay(_ *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	logger, err := newLogger()
	if err != nil {
		return err
	}

	// Get terminal size early for the board view
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}
	runtime := core.RuntimeConfig{
		ScreenW: width,
		ScreenH: height,
		Seed:    seed(),
	}

	// Saving is optional: play on without a database.
	var store *storage.Store
	if s, err := storage.Open(cfg.Storage.Path); err != nil {
		logger.Warn("boards database unavailable, saving disabled", "path", cfg.Storage.Path, "err", err)
	} else {
		store = s
		defer store.Close()
	}

	rng := core.NewRNG(runtime.Seed)
	opts := tui.SessionOptions{
		Store:  store,
		Policy: cfg.Policy(),
		Config: runtime,
		NewBoard: func() (*board.Board, error) {
			return cfg.NewBoard(rng, int64(rng.Next()))
		},
	}

	var (
		b        *board.Board
		name, id string
	)
	switch {
	case len(args) == 1:
		if store == nil {
			return fmt.Errorf("cannot open board %s without a database", args[0])
		}
		var rec storage.BoardRecord
		b, rec, err = store.LoadBoard(args[0])
		name, id = rec.Name, rec.ID
	case flagPlayLevel != "":
		var lvl levels.Level
		lvl, err = levels.NewLoader("").LoadFile(flagPlayLevel)
		if err == nil {
			b, err = lvl.ToBoard()
			name = lvl.Name
		}
	default:
		b, err = opts.NewBoard()
		name = fmt.Sprintf("board %d", runtime.Seed%100000)
	}
	if err != nil {
		return err
	}

	start := tui.NewModel(b, tui.Options{
		Name:    name,
		BoardID: id,
		Store:   store,
		Policy:  opts.Policy,
		Config:  runtime,
	})
	return tui.Run(tui.NewSessionModel(start, opts))
}
