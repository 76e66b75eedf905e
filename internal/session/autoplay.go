package session

import (
	"errors"
)

// AutoplayResult summarizes a batch of rounds played with a fixed wager.
type AutoplayResult struct {
	Played          int
	OutOfFunds      bool // Stopped early because the total bet no longer fits
	PersistFailures int
	Net             int
}

// Autoplay plays up to rounds rounds with the same lines and bet.
// It stops early, without error, once the balance cannot cover the wager.
// Sink failures are counted and do not stop the batch. onRound, if not nil,
// is called after every settled round.
func (s *Session) Autoplay(lines, bet, rounds int, onRound func(Outcome)) (AutoplayResult, error) {
	var res AutoplayResult

	if err := s.ValidateLines(lines); err != nil {
		return res, err
	}
	if err := s.ValidateBet(bet); err != nil {
		return res, err
	}

	for range rounds {
		out, err := s.PlayRound(lines, bet)
		switch {
		case errors.Is(err, ErrInsufficientFunds):
			res.OutOfFunds = true
			return res, nil
		case errors.Is(err, ErrPersist):
			res.PersistFailures++
		case err != nil:
			return res, err
		}

		res.Played++
		res.Net += out.Net
		if onRound != nil {
			onRound(out)
		}
	}

	return res, nil
}
