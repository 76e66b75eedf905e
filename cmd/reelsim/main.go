// reelsim is a terminal slot machine with a persistent results table
// and text analytics.
//
// Usage:
//
//	reelsim list                 - List machine presets
//	reelsim play [machine]       - Play interactively
//	reelsim simulate [machine]   - Autoplay a batch of rounds
//	reelsim report               - Analytics over stored rounds
//	reelsim history              - Browse recent rounds
//	reelsim tables               - List database tables
//	reelsim export --out <file>  - Dump rounds as CSV
//
// Global flags:
//
//	--db <path>      - Set database path (default: ~/.reelsim/results.db)
//	--seed <value>   - Set RNG seed for reproducible spins
//	--config <path>  - Use a custom machine config YAML
//	--verbose        - Debug logging
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/reelsim/internal/registry"
	"github.com/vovakirdan/reelsim/internal/slot"

	// Import machines to register them
	_ "github.com/vovakirdan/reelsim/internal/machines"
)

const defaultMachine = "classic"

var (
	// Global flags
	flagSeed    int64
	flagDBPath  string
	flagConfig  string
	flagVerbose bool
)

var logger = log.NewWithOptions(os.Stderr, log.Options{
	ReportTimestamp: true,
	Prefix:          "reelsim",
})

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "reelsim",
	Short: "reelsim - a slot machine in your terminal",
	Long: `reelsim spins slot machine reels in your terminal, records every
settled round in a SQLite results table and reports on the results.

Available commands:
  list      - Show machine presets
  play      - Play a machine interactively
  simulate  - Autoplay many rounds with a fixed wager
  report    - Print the analytics report
  history   - Browse recent rounds
  tables    - List database tables
  export    - Dump the results table as CSV

Examples:
  reelsim play
  reelsim play wide --seed 42
  reelsim simulate --deposit 1000 --lines 3 --bet 5 --rounds 10000
  reelsim report --out report.txt`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if flagVerbose {
			logger.SetLevel(log.DebugLevel)
		}
	},
}

func init() {
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.reelsim/results.db", "Path to results database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom machine config YAML")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "Enable debug logging")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(simulateCmd)
	rootCmd.AddCommand(reportCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(tablesCmd)
	rootCmd.AddCommand(exportCmd)
}

// machineArg returns the machine named in args, or the default.
func machineArg(args []string) string {
	if len(args) > 0 {
		return args[0]
	}
	return defaultMachine
}

// loadMachine resolves a preset and applies --config.
func loadMachine(id string) (slot.Machine, string, error) {
	if !registry.Exists(id) {
		return slot.Machine{}, "", fmt.Errorf("unknown machine %q (run 'reelsim list' to see available machines)", id)
	}

	preset, err := registry.Create(id)
	if err != nil {
		return slot.Machine{}, "", fmt.Errorf("creating machine: %w", err)
	}

	m, err := preset.Machine(flagConfig)
	if err != nil {
		return slot.Machine{}, "", fmt.Errorf("invalid machine configuration: %w", err)
	}

	logger.Debug("machine loaded", "id", id, "rows", m.Rows, "reels", m.Cols, "symbols", m.Pool.Size())
	return m, preset.Title(), nil
}

// newSource returns the spin source for --seed.
func newSource() slot.Source {
	if flagSeed == 0 {
		return nil // Session seeds from the clock
	}
	return slot.NewSource(flagSeed)
}
