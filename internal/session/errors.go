package session

import (
	"errors"
	"fmt"
)

// Sentinel errors for user-correctable input. They never end a session;
// the caller re-prompts.
var (
	ErrInvalidLines      = errors.New("session: invalid number of lines")
	ErrInvalidBet        = errors.New("session: invalid bet amount")
	ErrInsufficientFunds = errors.New("session: insufficient funds")
	ErrInvalidDeposit    = errors.New("session: deposit must be greater than 0")
)

// ErrPersist wraps a failure of the round sink. The round itself has
// already been settled when this is returned.
var ErrPersist = errors.New("session: round not persisted")

// ValidationKind tells which input a ValidationError is about.
type ValidationKind int

const (
	InvalidLines ValidationKind = iota
	InvalidBet
	InsufficientFunds
)

// String returns a human-readable name for the kind.
func (k ValidationKind) String() string {
	switch k {
	case InvalidLines:
		return "invalid lines"
	case InvalidBet:
		return "invalid bet"
	case InsufficientFunds:
		return "insufficient funds"
	default:
		return "unknown"
	}
}

// ValidationError reports a rejected line count, bet or total bet.
// Min and Max hold the accepted range; for InsufficientFunds Value is the
// total bet and Max the balance at validation time.
type ValidationError struct {
	Kind  ValidationKind
	Value int
	Min   int
	Max   int
}

func (e *ValidationError) Error() string {
	switch e.Kind {
	case InvalidLines:
		return fmt.Sprintf("enter a valid number of lines (%d-%d), got %d", e.Min, e.Max, e.Value)
	case InvalidBet:
		return fmt.Sprintf("amount must be between $%d-$%d, got $%d", e.Min, e.Max, e.Value)
	case InsufficientFunds:
		return fmt.Sprintf("you do not have enough balance to bet $%d, current balance: $%d", e.Value, e.Max)
	default:
		return "invalid input"
	}
}

// Unwrap maps the kind to its sentinel so errors.Is works.
func (e *ValidationError) Unwrap() error {
	switch e.Kind {
	case InvalidLines:
		return ErrInvalidLines
	case InvalidBet:
		return ErrInvalidBet
	case InsufficientFunds:
		return ErrInsufficientFunds
	default:
		return nil
	}
}

// IsValidation reports whether err is a user-correctable input error.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve) || errors.Is(err, ErrInvalidDeposit)
}
