package main

import (
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/hextiles/internal/board"
	"github.com/vovakirdan/hextiles/internal/registry"
	"github.com/vovakirdan/hextiles/internal/tile"
)

var (
	flagGenParams string
	flagGenOrtho  string
	flagGenerator string
	flagGenList   bool
	flagGenSave   bool
	flagGenName   string
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate a new board",
	Long: `Generate a board from the configured weights and print it.

The "weighted" generator draws each cell independently. The "noise"
generator makes elevations follow an OpenSimplex noise field so that seas
and ranges form coherent areas. Use --list to see every generator.

Examples:
  hextiles generate
  hextiles generate --params 8,6,6 --generator noise --seed 42
  hextiles generate --save --name "first island"`,
	Args: cobra.NoArgs,
	RunE: runGenerate,
}

func init() {
	generateCmd.Flags().StringVar(&flagGenParams, "params", "", "Region side lengths a,b,c (default from config)")
	generateCmd.Flags().StringVar(&flagGenOrtho, "ortho", "", "North/south move preference: xy or xz")
	generateCmd.Flags().StringVar(&flagGenerator, "generator", "", "Board generator (default from config)")
	generateCmd.Flags().BoolVar(&flagGenList, "list", false, "List the available generators and exit")
	generateCmd.Flags().BoolVar(&flagGenSave, "save", false, "Save the board to the database")
	generateCmd.Flags().StringVar(&flagGenName, "name", "", "Name of the saved board")
}

func runGenerate(_ *cobra.Command, _ []string) error {
	if flagGenList {
		for _, g := range registry.List() {
			fmt.Printf("%-10s %s\n", g.Name, g.Description)
		}
		return nil
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if flagGenParams != "" {
		p, err := parseParams(flagGenParams)
		if err != nil {
			return err
		}
		cfg.Board.Params = p
	}
	if flagGenOrtho != "" {
		cfg.Board.Ortho = flagGenOrtho
	}
	if flagGenerator != "" {
		cfg.Board.Generator = flagGenerator
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	b, err := generateBoard(cfg)
	if err != nil {
		return err
	}
	fmt.Println(b.RenderText(nil))
	fmt.Println()
	printStats(b.Stats())

	if !flagGenSave {
		return nil
	}
	name := flagGenName
	if name == "" {
		name = fmt.Sprintf("board %v", b.Params())
	}
	store, err := openStore(cfg)
	if err != nil {
		return err
	}
	defer store.Close()

	id, err := store.SaveBoard(name, b)
	if err != nil {
		return err
	}
	fmt.Printf("\nSaved as %s (%s)\n", id, name)
	return nil
}

// printStats prints the board summary.
func printStats(st board.Stats) {
	fmt.Printf("%s cells:", humanize.Comma(int64(st.Cells)))
	for e := tile.Sea; e <= tile.Mountain; e++ {
		fmt.Printf(" %s %d", e, st.Elevation[e])
	}
	fmt.Println()
	fmt.Printf("details:")
	for d := tile.Empty; d <= tile.Fort; d++ {
		fmt.Printf(" %s %d", d, st.Detail[d])
	}
	fmt.Println()
	fmt.Printf("volcanoes %d, snowfields %d, lakes %d\n", st.Volcanoes, st.Snow, st.Lakes)
}
