package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/reelsim/internal/storage"
)

var (
	flagExportOut  string
	flagExportZstd bool
	flagExportWipe bool
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Dump the results table as CSV",
	Long: `Write every stored round to a CSV file with the results table columns.
With --zstd the file is zstd-compressed. With --clear the table is emptied
after a successful export.

Examples:
  reelsim export --out results.csv
  reelsim export --out results.csv.zst --zstd
  reelsim export --out archive.csv --clear`,
	Args: cobra.NoArgs,
	RunE: runExport,
}

func init() {
	exportCmd.Flags().StringVarP(&flagExportOut, "out", "o", "", "Output file (required)")
	exportCmd.Flags().BoolVar(&flagExportZstd, "zstd", false, "Compress the output with zstd")
	exportCmd.Flags().BoolVar(&flagExportWipe, "clear", false, "Delete stored rounds after exporting")
	//nolint:errcheck // Flag is defined above
	exportCmd.MarkFlagRequired("out")
}

func runExport(cmd *cobra.Command, args []string) error {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("opening results database: %w", err)
	}
	defer store.Close()

	n, err := store.ExportCSV(flagExportOut, flagExportZstd)
	if err != nil {
		return fmt.Errorf("exporting rounds: %w", err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Exported %d rounds to %s\n", n, flagExportOut)

	if flagExportWipe {
		if err := store.ClearRounds(); err != nil {
			return fmt.Errorf("clearing rounds: %w", err)
		}
		logger.Info("results table cleared", "rounds", n)
	}
	return nil
}
