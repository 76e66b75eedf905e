// Package session runs betting rounds against a slot machine: it validates
// lines and bets, spins, scores, settles the balance and hands every settled
// round to a sink for later analysis.
package session

import (
	"fmt"
	"io"

	"github.com/charmbracelet/log"
	"github.com/jonboulle/clockwork"

	"github.com/vovakirdan/reelsim/internal/slot"
)

// Options carries the collaborators of a session. Every field is optional.
type Options struct {
	// Source drives the reels. Defaults to a PCG source seeded from the clock.
	Source slot.Source

	// Saver receives one record per settled round. Nil disables persistence.
	Saver RoundSaver

	// Clock stamps round records. Defaults to the real clock.
	Clock clockwork.Clock

	// Logger reports persistence failures. Defaults to a discarding logger.
	Logger *log.Logger
}

// Outcome is the immutable result of one settled round.
type Outcome struct {
	RunID        int
	Lines        int
	Bet          int // Per-line bet
	TotalBet     int
	Grid         slot.Grid
	Winnings     int
	WinningLines []int // 1-based, ascending
	Net          int   // Winnings - TotalBet
	Balance      int   // Balance after settlement
}

// Session is one player's run of rounds sharing a balance.
// It is not safe for concurrent use.
type Session struct {
	machine slot.Machine
	sampler *slot.Sampler
	ledger  *Ledger
	deposit int
	rounds  int

	saver  RoundSaver
	clock  clockwork.Clock
	logger *log.Logger
}

// New starts a session on machine m with the given deposit.
// Configuration problems are reported before the deposit is looked at,
// because they make every round impossible.
func New(m slot.Machine, deposit int, opts Options) (*Session, error) {
	if err := m.Validate(); err != nil {
		return nil, err
	}

	ledger, err := NewLedger(deposit)
	if err != nil {
		return nil, err
	}

	clock := opts.Clock
	if clock == nil {
		clock = clockwork.NewRealClock()
	}

	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	src := opts.Source
	if src == nil {
		src = slot.NewSource(clock.Now().UnixNano())
	}

	sampler, err := slot.NewMachineSampler(m, src)
	if err != nil {
		return nil, err
	}

	return &Session{
		machine: m,
		sampler: sampler,
		ledger:  ledger,
		deposit: deposit,
		saver:   opts.Saver,
		clock:   clock,
		logger:  logger,
	}, nil
}

// Machine returns the machine this session plays on.
func (s *Session) Machine() slot.Machine {
	return s.machine
}

// Balance returns the current balance.
func (s *Session) Balance() int {
	return s.ledger.Balance()
}

// Deposit returns the amount the session started with.
func (s *Session) Deposit() int {
	return s.deposit
}

// Rounds returns how many rounds have been settled.
func (s *Session) Rounds() int {
	return s.rounds
}

// Exhausted reports whether the balance no longer covers the smallest
// legal bet. The session itself keeps working; stopping is up to the caller.
func (s *Session) Exhausted() bool {
	return s.ledger.Balance() < s.machine.MinBet
}

// ValidateLines checks a line count against the machine limits.
// Lines are capped by both MaxLines and the number of rows.
func (s *Session) ValidateLines(lines int) error {
	maxLines := min(s.machine.MaxLines, s.machine.Rows)
	if lines < 1 || lines > maxLines {
		return &ValidationError{Kind: InvalidLines, Value: lines, Min: 1, Max: maxLines}
	}
	return nil
}

// ValidateBet checks a per-line bet against the machine limits.
func (s *Session) ValidateBet(bet int) error {
	if bet < s.machine.MinBet || bet > s.machine.MaxBet {
		return &ValidationError{Kind: InvalidBet, Value: bet, Min: s.machine.MinBet, Max: s.machine.MaxBet}
	}
	return nil
}

// ValidateFunds checks that the total bet fits the current balance.
// On failure the caller should ask for a new bet and keep the lines.
func (s *Session) ValidateFunds(lines, bet int) error {
	total := lines * bet
	if balance := s.ledger.Balance(); total > balance {
		return &ValidationError{Kind: InsufficientFunds, Value: total, Min: 0, Max: balance}
	}
	return nil
}

// Validate runs the line, bet and funds checks in that order.
func (s *Session) Validate(lines, bet int) error {
	if err := s.ValidateLines(lines); err != nil {
		return err
	}
	if err := s.ValidateBet(bet); err != nil {
		return err
	}
	return s.ValidateFunds(lines, bet)
}

// PlayRound validates the wager, spins, scores and settles one round.
//
// Rejected wagers return a *ValidationError without touching the balance or
// the reels. When the sink fails the returned Outcome is still valid and the
// balance already reflects it; the error then wraps ErrPersist.
func (s *Session) PlayRound(lines, bet int) (Outcome, error) {
	if err := s.Validate(lines, bet); err != nil {
		return Outcome{}, err
	}

	totalBet := lines * bet
	grid, err := s.sampler.Sample()
	if err != nil {
		return Outcome{}, fmt.Errorf("session: spin: %w", err)
	}

	payout, err := slot.Evaluate(grid, lines, bet, s.machine.Pool)
	if err != nil {
		return Outcome{}, fmt.Errorf("session: evaluate round: %w", err)
	}

	net := payout.Winnings - totalBet
	if err := s.ledger.Apply(net); err != nil {
		return Outcome{}, fmt.Errorf("session: settle round: %w", err)
	}
	s.rounds++

	out := Outcome{
		RunID:        s.rounds,
		Lines:        lines,
		Bet:          bet,
		TotalBet:     totalBet,
		Grid:         grid,
		Winnings:     payout.Winnings,
		WinningLines: payout.WinningLines,
		Net:          net,
		Balance:      s.ledger.Balance(),
	}

	s.logger.Debug("round settled",
		"run_id", out.RunID,
		"total_bet", out.TotalBet,
		"winnings", out.Winnings,
		"balance", out.Balance,
	)

	if s.saver == nil {
		return out, nil
	}

	rec := RoundRecord{
		RunID:     out.RunID,
		Bet:       bet,
		Lines:     lines,
		TotalBet:  totalBet,
		Winnings:  out.Winnings,
		Outcome:   net,
		Timestamp: s.clock.Now(),
	}
	if err := s.saver.SaveRound(rec); err != nil {
		s.logger.Warn("could not persist round", "run_id", out.RunID, "error", err)
		return out, fmt.Errorf("%w: %w", ErrPersist, err)
	}

	return out, nil
}
