package slot

// Payout is the result of scoring one grid.
type Payout struct {
	Winnings     int
	WinningLines []int // 1-based, ascending
}

// Evaluate scores the first lines rows of grid at bet per line.
//
// A line wins only when every reel shows the same symbol on that row; the
// win is the symbol's multiplier times bet. Evaluate has no state, so equal
// inputs always produce equal payouts.
func Evaluate(grid Grid, lines, bet int, pool Pool) (Payout, error) {
	rows := grid.Rows()
	if grid.Cols() == 0 || rows == 0 {
		return Payout{}, invariantErr("empty grid")
	}
	for c, col := range grid {
		if len(col) != rows {
			return Payout{}, invariantErr("reel %d has %d rows, want %d", c+1, len(col), rows)
		}
	}
	if lines < 1 || lines > rows {
		return Payout{}, invariantErr("%d lines on a grid with %d rows", lines, rows)
	}
	if bet < 0 {
		return Payout{}, invariantErr("negative bet %d", bet)
	}

	p := Payout{WinningLines: []int{}}

	for line := range lines {
		sym := grid[0][line]
		if !lineMatches(grid, line, sym) {
			continue
		}
		mult, ok := pool.Multiplier(sym)
		if !ok {
			return Payout{}, invariantErr("symbol %q is not in the pool", sym)
		}
		p.Winnings += mult * bet
		p.WinningLines = append(p.WinningLines, line+1)
	}

	return p, nil
}

// lineMatches reports whether every reel shows sym on row.
func lineMatches(grid Grid, row int, sym Symbol) bool {
	for _, col := range grid {
		if col[row] != sym {
			return false
		}
	}
	return true
}
