// Package config provides YAML-based slot machine configuration loading
// for the named machine presets.
package config

import (
	"github.com/vovakirdan/reelsim/internal/slot"
)

// MachineConfig contains all configuration for one slot machine.
type MachineConfig struct {
	Grid    GridConfig     `yaml:"grid"`
	Lines   LinesConfig    `yaml:"lines"`
	Bet     BetConfig      `yaml:"bet"`
	Symbols []SymbolConfig `yaml:"symbols"`
}

// GridConfig defines the reel layout.
type GridConfig struct {
	Rows int `yaml:"rows"`
	Cols int `yaml:"cols"` // Number of reels
}

// LinesConfig defines the payline limit.
type LinesConfig struct {
	Max int `yaml:"max"`
}

// BetConfig defines the per-line bet range.
type BetConfig struct {
	Min int `yaml:"min"`
	Max int `yaml:"max"`
}

// SymbolConfig defines one symbol kind: its label, how many copies sit in
// the pool and what it pays per unit of line bet.
type SymbolConfig struct {
	Symbol     string `yaml:"symbol"`
	Count      int    `yaml:"count"`
	Multiplier int    `yaml:"multiplier"`
}

// Machine converts the configuration into a validated slot.Machine.
// Errors wrap slot.ErrConfig.
func (c MachineConfig) Machine() (slot.Machine, error) {
	kinds := make([]slot.SymbolKind, 0, len(c.Symbols))
	for _, s := range c.Symbols {
		kinds = append(kinds, slot.SymbolKind{
			Symbol:     slot.Symbol(s.Symbol),
			Count:      s.Count,
			Multiplier: s.Multiplier,
		})
	}

	pool, err := slot.NewPool(kinds...)
	if err != nil {
		return slot.Machine{}, err
	}

	m := slot.Machine{
		Rows:     c.Grid.Rows,
		Cols:     c.Grid.Cols,
		MaxLines: c.Lines.Max,
		MinBet:   c.Bet.Min,
		MaxBet:   c.Bet.Max,
		Pool:     pool,
	}
	if err := m.Validate(); err != nil {
		return slot.Machine{}, err
	}
	return m, nil
}
