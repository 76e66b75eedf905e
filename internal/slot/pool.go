// Package slot contains the reel engine: the symbol pool, the grid sampler
// and the payline evaluator. It has no I/O and no dependency on the UI or
// storage layers so every rule can be tested in isolation.
package slot

import "fmt"

// Symbol is the label printed on a reel stop (e.g. "A").
type Symbol string

// SymbolKind describes one symbol of the pool.
type SymbolKind struct {
	Symbol     Symbol
	Count      int // Copies available to a single column draw
	Multiplier int // Winnings per unit bet for a full line of this symbol
}

// Pool is the fixed multiset reels are drawn from.
// Kinds keep their configuration order so enumeration is deterministic.
type Pool struct {
	kinds []SymbolKind
	index map[Symbol]int
}

// NewPool builds a pool from the given kinds.
// Kinds must be non-empty, uniquely labelled and have positive counts and multipliers.
func NewPool(kinds ...SymbolKind) (Pool, error) {
	if len(kinds) == 0 {
		return Pool{}, configErr("symbols", "pool has no symbols")
	}

	p := Pool{
		kinds: make([]SymbolKind, len(kinds)),
		index: make(map[Symbol]int, len(kinds)),
	}
	copy(p.kinds, kinds)

	for i, k := range p.kinds {
		if k.Symbol == "" {
			return Pool{}, configErr("symbols", fmt.Sprintf("symbol #%d has an empty label", i+1))
		}
		if _, dup := p.index[k.Symbol]; dup {
			return Pool{}, configErr("symbols", fmt.Sprintf("symbol %q is defined twice", k.Symbol))
		}
		if k.Count <= 0 {
			return Pool{}, configErr("symbols", fmt.Sprintf("symbol %q has count %d, must be positive", k.Symbol, k.Count))
		}
		if k.Multiplier <= 0 {
			return Pool{}, configErr("symbols", fmt.Sprintf("symbol %q has multiplier %d, must be positive", k.Symbol, k.Multiplier))
		}
		p.index[k.Symbol] = i
	}

	return p, nil
}

// Kinds returns a copy of the symbol kinds in configuration order.
func (p Pool) Kinds() []SymbolKind {
	out := make([]SymbolKind, len(p.kinds))
	copy(out, p.kinds)
	return out
}

// Flatten returns a fresh slice holding every symbol repeated Count times.
// Sampling is destructive, so callers get a new slice on every call.
func (p Pool) Flatten() []Symbol {
	out := make([]Symbol, 0, p.Size())
	for _, k := range p.kinds {
		for range k.Count {
			out = append(out, k.Symbol)
		}
	}
	return out
}

// Size returns the total number of symbol copies in the pool.
func (p Pool) Size() int {
	n := 0
	for _, k := range p.kinds {
		n += k.Count
	}
	return n
}

// Multiplier returns the payout multiplier for sym.
func (p Pool) Multiplier(sym Symbol) (int, bool) {
	i, ok := p.index[sym]
	if !ok {
		return 0, false
	}
	return p.kinds[i].Multiplier, true
}

// Count returns how many copies of sym the pool holds (0 if unknown).
func (p Pool) Count(sym Symbol) int {
	i, ok := p.index[sym]
	if !ok {
		return 0
	}
	return p.kinds[i].Count
}

// Contains reports whether sym belongs to the pool.
func (p Pool) Contains(sym Symbol) bool {
	_, ok := p.index[sym]
	return ok
}
