package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/reelsim/internal/storage"
)

var tablesCmd = &cobra.Command{
	Use:   "tables",
	Short: "List database tables",
	Long: `Print the tables in the results database and the number of stored
rounds. Useful to check which database a command is pointed at.

Examples:
  reelsim tables
  reelsim tables --db ./results.db`,
	Args: cobra.NoArgs,
	RunE: runTables,
}

func runTables(cmd *cobra.Command, args []string) error {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("opening results database: %w", err)
	}
	defer store.Close()

	tables, err := store.Tables()
	if err != nil {
		return fmt.Errorf("listing tables: %w", err)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Tables in %s:\n", flagDBPath)
	for _, t := range tables {
		fmt.Fprintf(out, "  %s\n", t)
	}

	if n, err := store.RoundCount(); err == nil {
		fmt.Fprintln(out)
		fmt.Fprintf(out, "results: %d rounds\n", n)
	}
	return nil
}
