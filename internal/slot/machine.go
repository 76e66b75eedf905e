package slot

import (
	"fmt"
	"math"
)

// Machine bundles everything a session needs to know about one slot
// machine: reel geometry, line and bet limits and the symbol pool.
type Machine struct {
	Rows     int // Symbols per reel (and the number of possible paylines)
	Cols     int // Number of reels
	MaxLines int
	MinBet   int
	MaxBet   int
	Pool     Pool
}

// Defaults of the reference machine.
const (
	DefaultRows     = 3
	DefaultCols     = 3
	DefaultMaxLines = 3
	DefaultMinBet   = 1
	DefaultMaxBet   = 100
)

// DefaultKinds returns the reference symbol set: rarer symbols pay more.
func DefaultKinds() []SymbolKind {
	return []SymbolKind{
		{Symbol: "A", Count: 2, Multiplier: 5},
		{Symbol: "B", Count: 4, Multiplier: 4},
		{Symbol: "C", Count: 6, Multiplier: 3},
		{Symbol: "D", Count: 8, Multiplier: 2},
	}
}

// DefaultMachine returns the reference 3x3 machine.
func DefaultMachine() Machine {
	pool, err := NewPool(DefaultKinds()...)
	if err != nil {
		// The built-in kinds are always valid.
		panic(err)
	}
	return Machine{
		Rows:     DefaultRows,
		Cols:     DefaultCols,
		MaxLines: DefaultMaxLines,
		MinBet:   DefaultMinBet,
		MaxBet:   DefaultMaxBet,
		Pool:     pool,
	}
}

// Validate checks that the machine can be played at all.
// Every failure is a *ConfigError wrapping ErrConfig.
func (m Machine) Validate() error {
	switch {
	case m.Rows < 1:
		return configErr("rows", fmt.Sprintf("got %d, need at least 1", m.Rows))
	case m.Cols < 1:
		return configErr("cols", fmt.Sprintf("got %d, need at least 1", m.Cols))
	case len(m.Pool.kinds) == 0:
		return configErr("symbols", "pool has no symbols")
	case m.Rows > m.Pool.Size():
		return configErr("rows", fmt.Sprintf("%d rows cannot be drawn from a pool of %d symbols", m.Rows, m.Pool.Size()))
	case m.MaxLines < 1:
		return configErr("max_lines", fmt.Sprintf("got %d, need at least 1", m.MaxLines))
	case m.MaxLines > m.Rows:
		return configErr("max_lines", fmt.Sprintf("%d lines exceed %d rows", m.MaxLines, m.Rows))
	case m.MinBet < 1:
		return configErr("min_bet", fmt.Sprintf("got %d, need at least 1", m.MinBet))
	case m.MaxBet < m.MinBet:
		return configErr("max_bet", fmt.Sprintf("max bet %d is below min bet %d", m.MaxBet, m.MinBet))
	case m.maxMultiplier() > math.MaxInt/m.MaxBet/m.MaxLines:
		return configErr("symbols", fmt.Sprintf("multiplier %d at max bet %d on %d lines overflows the payout",
			m.maxMultiplier(), m.MaxBet, m.MaxLines))
	}
	return nil
}

// maxMultiplier returns the largest multiplier in the pool.
func (m Machine) maxMultiplier() int {
	best := 0
	for _, k := range m.Pool.kinds {
		best = max(best, k.Multiplier)
	}
	return best
}
