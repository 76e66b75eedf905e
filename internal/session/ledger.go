package session

import (
	"fmt"

	"github.com/vovakirdan/reelsim/internal/slot"
)

// Ledger holds the player's balance for one session.
// Only Session mutates it, once per settled round.
type Ledger struct {
	balance int
}

// NewLedger opens a ledger with the initial deposit.
func NewLedger(deposit int) (*Ledger, error) {
	if deposit <= 0 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidDeposit, deposit)
	}
	return &Ledger{balance: deposit}, nil
}

// Apply adds a signed round outcome to the balance.
// A change that would make the balance negative is refused with
// slot.ErrInvariant and leaves the balance untouched.
func (l *Ledger) Apply(net int) error {
	if l.balance+net < 0 {
		return fmt.Errorf("%w: balance %d cannot absorb %d", slot.ErrInvariant, l.balance, net)
	}
	l.balance += net
	return nil
}

// Balance returns the current balance.
func (l *Ledger) Balance() int {
	return l.balance
}
