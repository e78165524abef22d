package main

import (
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
)

var flagBoardsLimit int

var boardsCmd = &cobra.Command{
	Use:   "boards",
	Short: "List saved boards",
	Long: `List saved boards, most recently updated first.

Examples:
  hextiles boards
  hextiles boards --limit 5
  hextiles boards delete 3f2a9c1e-0b7d-4c55-9d0e-2a1f6b8c7d90`,
	Args: cobra.NoArgs,
	RunE: runBoards,
}

var boardsDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a saved board and its moves",
	Args:  cobra.ExactArgs(1),
	RunE:  runBoardsDelete,
}

func init() {
	boardsCmd.Flags().IntVar(&flagBoardsLimit, "limit", 20, "Maximum number of boards to list")
	boardsCmd.AddCommand(boardsDeleteCmd)
}

func runBoards(_ *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	store, err := openStore(cfg)
	if err != nil {
		return err
	}
	defer store.Close()

	records, err := store.ListBoards(flagBoardsLimit)
	if err != nil {
		return err
	}
	if len(records) == 0 {
		fmt.Println("No saved boards. Create one with: hextiles generate --save")
		return nil
	}

	// Calculate column width
	maxName := len("NAME")
	for _, r := range records {
		if len(r.Name) > maxName {
			maxName = len(r.Name)
		}
	}

	fmt.Printf("%-36s  %-*s  %-9s  %6s  %s\n", "ID", maxName, "NAME", "REGION", "CELLS", "UPDATED")
	for _, r := range records {
		fmt.Printf("%-36s  %-*s  %-9v  %6s  %s\n",
			r.ID, maxName, r.Name, r.Params, humanize.Comma(int64(r.Size)), humanize.Time(r.UpdatedAt))
	}
	return nil
}

func runBoardsDelete(_ *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	store, err := openStore(cfg)
	if err != nil {
		return err
	}
	defer store.Close()

	if err := store.DeleteBoard(args[0]); err != nil {
		return err
	}
	fmt.Printf("Deleted %s\n", args[0])
	return nil
}
