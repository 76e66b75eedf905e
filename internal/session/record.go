package session

import "time"

// TimestampLayout is how round timestamps are written for the analytics
// tooling that reads the results table.
const TimestampLayout = "2006-01-02 15:04:05"

// RoundRecord is what a settled round hands to the sink.
// The sink assigns the sequence id.
type RoundRecord struct {
	RunID     int
	Bet       int // Per-line bet
	Lines     int
	TotalBet  int
	Winnings  int
	Outcome   int // Winnings - TotalBet
	Timestamp time.Time
}

// RoundSaver persists settled rounds. Implementations must append only.
type RoundSaver interface {
	SaveRound(rec RoundRecord) error
}

// RoundSaverFunc adapts a function to RoundSaver.
type RoundSaverFunc func(rec RoundRecord) error

// SaveRound calls f(rec).
func (f RoundSaverFunc) SaveRound(rec RoundRecord) error {
	return f(rec)
}
