package main

import (
	"fmt"
	"time"

	"github.com/cheggaaa/pb/v3"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/reelsim/internal/session"
	"github.com/vovakirdan/reelsim/internal/storage"
)

var (
	flagSimDeposit int
	flagSimLines   int
	flagSimBet     int
	flagSimRounds  int
	flagSimNoSave  bool
)

var simulateCmd = &cobra.Command{
	Use:   "simulate [machine]",
	Short: "Autoplay a batch of rounds",
	Long: `Play many rounds with a fixed number of lines and bet per line.
The batch stops early once the balance no longer covers the wager.
Rounds are stored in the results table unless --no-save is given.

Examples:
  reelsim simulate --rounds 10000
  reelsim simulate wide --deposit 5000 --lines 3 --bet 10 --seed 7`,
	Args: cobra.MaximumNArgs(1),
	RunE: runSimulate,
}

func init() {
	simulateCmd.Flags().IntVar(&flagSimDeposit, "deposit", 1000, "Starting balance")
	simulateCmd.Flags().IntVar(&flagSimLines, "lines", 3, "Lines to bet on each round")
	simulateCmd.Flags().IntVar(&flagSimBet, "bet", 1, "Bet per line")
	simulateCmd.Flags().IntVar(&flagSimRounds, "rounds", 1000, "Maximum number of rounds")
	simulateCmd.Flags().BoolVar(&flagSimNoSave, "no-save", false, "Do not store rounds")
}

func runSimulate(cmd *cobra.Command, args []string) error {
	m, title, err := loadMachine(machineArg(args))
	if err != nil {
		return err
	}

	opts := session.Options{
		Source: newSource(),
		Logger: logger,
	}

	if !flagSimNoSave {
		store, err := storage.Open(flagDBPath)
		if err != nil {
			return fmt.Errorf("opening results database: %w", err)
		}
		defer store.Close()
		opts.Saver = store
	}

	sess, err := session.New(m, flagSimDeposit, opts)
	if err != nil {
		return err
	}

	start := time.Now()
	bar := pb.New(flagSimRounds)
	bar.SetWriter(cmd.ErrOrStderr())
	bar.Start()
	res, err := sess.Autoplay(flagSimLines, flagSimBet, flagSimRounds, func(session.Outcome) {
		bar.Increment()
	})
	used := time.Since(start)
	bar.Finish()

	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "%s: %d rounds in %s\n", title, res.Played, used.Round(time.Millisecond))
	fmt.Fprintf(out, "  deposit  $%d\n", sess.Deposit())
	fmt.Fprintf(out, "  balance  $%d\n", sess.Balance())
	fmt.Fprintf(out, "  net      %+d\n", res.Net)
	if res.OutOfFunds {
		fmt.Fprintln(out, "Stopped early: balance no longer covers the wager.")
	}
	if res.PersistFailures > 0 {
		logger.Warn("some rounds were not saved", "count", res.PersistFailures)
	}
	return nil
}
