package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/reelsim/internal/platform/tui"
	"github.com/vovakirdan/reelsim/internal/storage"
)

var (
	flagHistoryLimit int
	flagHistoryPlain bool
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Browse recent rounds",
	Long: `Show the most recent rounds, newest first, in a scrollable table.
Use --plain (or pipe the output) for a text listing.

Examples:
  reelsim history
  reelsim history --limit 200
  reelsim history --plain | less`,
	Args: cobra.NoArgs,
	RunE: runHistory,
}

func init() {
	historyCmd.Flags().IntVarP(&flagHistoryLimit, "limit", "n", 50, "Number of rounds to show")
	historyCmd.Flags().BoolVar(&flagHistoryPlain, "plain", false, "Print a text listing instead of the table view")
}

func runHistory(cmd *cobra.Command, args []string) error {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("opening results database: %w", err)
	}

	rounds, err := store.RecentRounds(flagHistoryLimit)
	store.Close()
	if err != nil {
		return fmt.Errorf("retrieving rounds: %w", err)
	}

	fd := int(os.Stdout.Fd())
	if flagHistoryPlain || !term.IsTerminal(fd) {
		printHistory(rounds)
		return nil
	}

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(fd); termErr == nil {
		width = w
		height = h
	}

	if err := tui.RunHistory(rounds, width, height); err != nil {
		return fmt.Errorf("running history view: %w", err)
	}
	return nil
}

func printHistory(rounds []storage.RoundResult) {
	if len(rounds) == 0 {
		fmt.Println("No rounds recorded yet.")
		fmt.Println()
		fmt.Println("Run 'reelsim play' to spin the reels!")
		return
	}

	headers := []string{"ID", "Run", "Lines", "Bet", "Total", "Won", "Net", "Time"}
	rows := make([][]string, len(rounds))
	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = len(h)
	}
	for i, r := range rounds {
		rows[i] = tui.HistoryRow(r)
		for j, cell := range rows[i] {
			widths[j] = max(widths[j], len(cell))
		}
	}

	printRow := func(cells []string) {
		parts := make([]string, len(cells))
		for i, c := range cells {
			parts[i] = fmt.Sprintf("%-*s", widths[i], c)
		}
		fmt.Println("  " + strings.TrimRight(strings.Join(parts, "  "), " "))
	}

	printRow(headers)
	dashes := make([]string, len(headers))
	for i, w := range widths {
		dashes[i] = strings.Repeat("-", w)
	}
	printRow(dashes)
	for _, row := range rows {
		printRow(row)
	}
}
