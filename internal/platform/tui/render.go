package tui

import (
	"slices"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/reelsim/internal/slot"
)

var (
	reelBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1)
	symbolStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("15"))
	winLineStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("11"))
	blurStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	dividerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
)

// RenderGrid draws the grid row by row inside a box.
// Rows listed in winning (1-based) are highlighted.
func RenderGrid(g slot.Grid, winning []int) string {
	return renderRows(g, func(row int) lipgloss.Style {
		if slices.Contains(winning, row+1) {
			return winLineStyle
		}
		return symbolStyle
	})
}

// renderBlur draws a grid that is still spinning.
func renderBlur(g slot.Grid) string {
	return renderRows(g, func(int) lipgloss.Style { return blurStyle })
}

func renderRows(g slot.Grid, style func(row int) lipgloss.Style) string {
	sep := dividerStyle.Render(" | ")

	lines := make([]string, g.Rows())
	for r := range g.Rows() {
		row := g.Row(r)
		cells := make([]string, len(row))
		st := style(r)
		for c, sym := range row {
			cells[c] = st.Render(string(sym))
		}
		lines[r] = strings.Join(cells, sep)
	}
	return reelBoxStyle.Render(strings.Join(lines, "\n"))
}

// scrambleGrid fills a rows x cols grid with symbols drawn by pick.
// The result is only for display and never scored.
func scrambleGrid(flat []slot.Symbol, rows, cols int, pick func(n int) int) slot.Grid {
	g := make(slot.Grid, cols)
	for c := range g {
		g[c] = make([]slot.Symbol, rows)
		for r := range g[c] {
			g[c][r] = flat[pick(len(flat))]
		}
	}
	return g
}

// centerText centers text within the given width.
func centerText(text string, width int) string {
	w := lipgloss.Width(text)
	if w >= width {
		return text
	}
	return strings.Repeat(" ", (width-w)/2) + text
}
