package main

import (
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
)

var flagShowMoves int

var showCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Print a saved board",
	Long: `Print a saved board, its summary and its most recent moves.

Examples:
  hextiles show 3f2a9c1e-0b7d-4c55-9d0e-2a1f6b8c7d90
  hextiles show 3f2a9c1e-0b7d-4c55-9d0e-2a1f6b8c7d90 --moves 0`,
	Args: cobra.ExactArgs(1),
	RunE: runShow,
}

func init() {
	showCmd.Flags().IntVar(&flagShowMoves, "moves", 10, "Number of recent moves to show (0 hides them)")
}

func runShow(_ *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	store, err := openStore(cfg)
	if err != nil {
		return err
	}
	defer store.Close()

	b, rec, err := store.LoadBoard(args[0])
	if err != nil {
		return err
	}

	fmt.Printf("%s  %v %s  updated %s\n\n", rec.Name, rec.Params, rec.Ortho, humanize.Time(rec.UpdatedAt))
	fmt.Println(b.RenderText(nil))
	fmt.Println()
	printStats(b.Stats())

	if flagShowMoves <= 0 {
		return nil
	}
	moves, err := store.Moves(rec.ID, flagShowMoves)
	if err != nil {
		return err
	}
	if len(moves) == 0 {
		return nil
	}
	fmt.Println("\nRecent moves:")
	for _, mv := range moves {
		kind := "direct"
		if !mv.Direct {
			kind = "indirect"
		}
		cascade := ""
		if mv.Cascaded {
			cascade = ", cascade"
		}
		fmt.Printf("  %-6s %-8v %s%s, %d changed, %s\n",
			mv.Element, mv.Coord, kind, cascade, mv.Changed, humanize.Time(mv.CreatedAt))
	}
	return nil
}
