package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/reelsim/internal/report"
	"github.com/vovakirdan/reelsim/internal/storage"
)

var flagReportOut string

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Print the analytics report",
	Long: `Summarize every stored round: totals, win rate with a 95% confidence
interval, return to player, outcome statistics, an outcome histogram and a
cumulative profit sparkline.

Examples:
  reelsim report
  reelsim report --out report.txt
  reelsim report --db ./results.db`,
	Args: cobra.NoArgs,
	RunE: runReport,
}

func init() {
	reportCmd.Flags().StringVarP(&flagReportOut, "out", "o", "", "Write the report to a file instead of stdout")
}

func runReport(cmd *cobra.Command, args []string) error {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("opening results database: %w", err)
	}
	defer store.Close()

	rounds, err := store.Rounds()
	if err != nil {
		return fmt.Errorf("retrieving rounds: %w", err)
	}

	if flagReportOut == "" {
		return report.Render(cmd.OutOrStdout(), report.Build(rounds))
	}

	if err := writeReport(flagReportOut, report.Build(rounds)); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Report for %d rounds written to %s\n", len(rounds), flagReportOut)
	return nil
}

func writeReport(path string, r report.Report) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}

	if err := report.Render(f, r); err != nil {
		f.Close()
		return fmt.Errorf("writing report: %w", err)
	}
	return f.Close()
}
