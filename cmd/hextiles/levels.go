package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/hextiles/internal/levels"
)

var levelsCmd = &cobra.Command{
	Use:   "levels <dir>",
	Short: "List scenario files",
	Long: `List the scenario files (.yaml, .yml, .json) found under a directory.
Files that fail validation are skipped; use "levels check" to see why.

Examples:
  hextiles levels levels/
  hextiles levels check levels/volcano.yaml`,
	Args: cobra.ExactArgs(1),
	RunE: runLevels,
}

var levelsCheckCmd = &cobra.Command{
	Use:   "check <file>...",
	Short: "Validate scenario files",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runLevelsCheck,
}

func init() {
	levelsCmd.AddCommand(levelsCheckCmd)
}

func runLevels(_ *cobra.Command, args []string) error {
	all, err := levels.NewLoader(args[0]).LoadAll()
	if err != nil {
		return err
	}
	if len(all) == 0 {
		fmt.Printf("No levels found in %s\n", args[0])
		return nil
	}

	maxID := len("ID")
	for _, l := range all {
		if len(l.ID) > maxID {
			maxID = len(l.ID)
		}
	}
	fmt.Printf("%-*s  %-9s  %-5s  %s\n", maxID, "ID", "REGION", "ORTHO", "NAME")
	for _, l := range all {
		fmt.Printf("%-*s  %-9v  %-5s  %s\n", maxID, l.ID, l.Params, l.Ortho, l.Name)
	}
	return nil
}

func runLevelsCheck(_ *cobra.Command, args []string) error {
	loader := levels.NewLoader("")
	failed := 0
	for _, path := range args {
		l, err := loader.LoadFile(path)
		if err != nil {
			fmt.Printf("FAIL %s: %v\n", path, err)
			failed++
			continue
		}
		fmt.Printf("ok   %s (%s, %d placed cells)\n", path, l.ID, len(l.Cells))
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d files invalid", failed, len(args))
	}
	return nil
}
