package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/reelsim/internal/platform/tui"
	"github.com/vovakirdan/reelsim/internal/session"
	"github.com/vovakirdan/reelsim/internal/storage"
)

// Smallest terminal the play screen fits in
const (
	minPlayWidth  = 60
	minPlayHeight = 18
)

var playCmd = &cobra.Command{
	Use:   "play [machine]",
	Short: "Play a machine",
	Long: `Start an interactive session on the given machine (default: classic).

You enter a deposit, then for every round the number of lines and the bet
per line. Each settled round is stored in the results table.

Controls:
  0-9        - Enter amounts
  Enter      - Confirm / spin again
  Q/Esc      - Cash out and quit

Examples:
  reelsim play
  reelsim play wide
  reelsim play --seed 42
  reelsim play --config ./my-machine.yaml`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func runPlay(cmd *cobra.Command, args []string) error {
	m, title, err := loadMachine(machineArg(args))
	if err != nil {
		return err
	}

	if !term.IsTerminal(int(os.Stdin.Fd())) {
		return errors.New("play needs an interactive terminal; run 'reelsim simulate' for non-interactive play")
	}

	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil && (w < minPlayWidth || h < minPlayHeight) {
		logger.Warn("terminal is smaller than the play screen", "width", w, "height", h,
			"min_width", minPlayWidth, "min_height", minPlayHeight)
	}

	// No session logger: stderr output would tear the alt screen, and the
	// play screen shows persistence warnings itself.
	opts := session.Options{
		Source: newSource(),
	}

	// Open results storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		// Continue without storage - the machine still works
		logger.Warn("could not open results database, rounds will not be saved", "error", err)
	} else {
		defer store.Close()
		opts.Saver = store
	}

	final, err := tui.Run(m, title, opts)
	if err != nil {
		return fmt.Errorf("running session: %w", err)
	}

	if final.Deposit() == 0 {
		return nil
	}
	fmt.Printf("You played %d rounds and left with $%d (deposit $%d).\n",
		final.Rounds(), final.Balance(), final.Deposit())
	return nil
}
