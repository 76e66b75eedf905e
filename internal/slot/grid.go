package slot

import (
	"slices"
	"strings"
)

// Grid is one spin result stored column by column: grid[col][row],
// rows ordered top to bottom.
type Grid [][]Symbol

// Cols returns the number of reels.
func (g Grid) Cols() int {
	return len(g)
}

// Rows returns the height of the first reel (0 for an empty grid).
func (g Grid) Rows() int {
	if len(g) == 0 {
		return 0
	}
	return len(g[0])
}

// Row returns the symbols of payline row across all reels.
func (g Grid) Row(row int) []Symbol {
	out := make([]Symbol, len(g))
	for c, col := range g {
		out[c] = col[row]
	}
	return out
}

// String renders the grid row by row, reels separated by " | ".
func (g Grid) String() string {
	var sb strings.Builder
	for r := range g.Rows() {
		if r > 0 {
			sb.WriteByte('\n')
		}
		for c, col := range g {
			if c > 0 {
				sb.WriteString(" | ")
			}
			sb.WriteString(string(col[r]))
		}
	}
	return sb.String()
}

// Sampler draws grids from a pool without replacement inside each reel.
type Sampler struct {
	rows int
	cols int
	flat []Symbol
	src  Source
}

// NewSampler validates the geometry against the pool up front so a draw can
// never run out of symbols halfway through a spin.
func NewSampler(rows, cols int, pool Pool, src Source) (*Sampler, error) {
	if rows < 1 {
		return nil, configErr("rows", "need at least 1")
	}
	if cols < 1 {
		return nil, configErr("cols", "need at least 1")
	}
	if pool.Size() == 0 {
		return nil, configErr("symbols", "pool has no symbols")
	}
	if rows > pool.Size() {
		return nil, configErr("rows", "more rows than symbols in the pool")
	}
	if src == nil {
		return nil, configErr("source", "random source is nil")
	}

	return &Sampler{
		rows: rows,
		cols: cols,
		flat: pool.Flatten(),
		src:  src,
	}, nil
}

// NewMachineSampler is NewSampler for a machine's geometry and pool.
func NewMachineSampler(m Machine, src Source) (*Sampler, error) {
	if err := m.Validate(); err != nil {
		return nil, err
	}
	return NewSampler(m.Rows, m.Cols, m.Pool, src)
}

// Sample draws one grid. Each reel starts from a full copy of the pool;
// a drawn symbol is removed from that reel's copy only.
// A source that answers outside [0, n) yields ErrInvariant.
func (s *Sampler) Sample() (Grid, error) {
	grid := make(Grid, s.cols)
	work := make([]Symbol, 0, len(s.flat))

	for c := range s.cols {
		work = append(work[:0], s.flat...)
		col := make([]Symbol, s.rows)
		for r := range s.rows {
			i := s.src.IntN(len(work))
			if i < 0 || i >= len(work) {
				return nil, invariantErr("source drew %d from %d symbols", i, len(work))
			}
			col[r] = work[i]
			work = slices.Delete(work, i, i+1)
		}
		grid[c] = col
	}

	return grid, nil
}
