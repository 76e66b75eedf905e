package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var lang = language.English

// Layout constants
const (
	histogramBarWidth = 40
	sparklineWidth    = 60
)

var (
	titleStyle   = lipgloss.NewStyle().Bold(true)
	sectionStyle = lipgloss.NewStyle().Bold(true).Underline(true)
)

var sparkTicks = []rune("▁▂▃▄▅▆▇█")

// NoDataMessage is printed instead of a report when there are no rounds.
const NoDataMessage = "No data found in the results table."

// Render writes the text report for r.
func Render(w io.Writer, r Report) error {
	if r.Empty() {
		_, err := fmt.Fprintln(w, NoDataMessage)
		return err
	}

	p := message.NewPrinter(lang)
	var b strings.Builder

	b.WriteString(titleStyle.Render("Slot Machine Analytics Report"))
	b.WriteString("\n\n")

	keys, vals := r.summary(p)
	b.WriteString(fmtTable("Summary", keys, vals))
	b.WriteString("\n")

	keys, vals = r.Outcome.fields(p)
	b.WriteString(fmtTable("Outcome Statistics", keys, vals))
	b.WriteString("\n")

	b.WriteString(sectionStyle.Render("Outcome Distribution"))
	b.WriteString("\n")
	b.WriteString(fmtHistogram(p, r.Histogram))
	b.WriteString("\n")

	b.WriteString(sectionStyle.Render("Cumulative Profit/Loss"))
	b.WriteString("\n")
	b.WriteString(sparkline(r.Cumulative, sparklineWidth))
	b.WriteString("\n")
	if n := len(r.Cumulative); n > 0 {
		b.WriteString(p.Sprintf("start %d, end %d over %d rounds\n", r.Cumulative[0], r.Cumulative[n-1], n))
	}

	_, err := io.WriteString(w, b.String())
	return err
}

func (r Report) summary(p *message.Printer) ([]string, map[string]string) {
	vals := map[string]string{
		"Total Games":      p.Sprintf("%d", r.Games),
		"Net Profit/Loss":  p.Sprintf("%d", r.Net),
		"Win Rate":         p.Sprintf("%.2f %%", 100.0*r.WinRate),
		"Win Rate 95% CI":  p.Sprintf("[%.2f%%,%.2f%%]", 100.0*r.WinRateCI.Lo, 100.0*r.WinRateCI.Hi),
		"Best Win":         p.Sprintf("%d", r.BestWin),
		"Worst Loss":       p.Sprintf("%d", r.WorstLoss),
		"Total Wagered":    p.Sprintf("%d", r.Wagered),
		"Total Winnings":   p.Sprintf("%d", r.Winnings),
		"Return to Player": p.Sprintf("%.2f %%", 100.0*r.RTP),
	}
	keys := []string{
		"Total Games", "Net Profit/Loss", "Win Rate", "Win Rate 95% CI",
		"Best Win", "Worst Loss", "Total Wagered", "Total Winnings", "Return to Player",
	}
	return keys, vals
}

func (d Describe) fields(p *message.Printer) ([]string, map[string]string) {
	vals := map[string]string{
		"count": p.Sprintf("%d", d.Count),
		"mean":  p.Sprintf("%.3f", d.Mean),
		"std":   p.Sprintf("%.3f", d.Std),
		"min":   p.Sprintf("%.0f", d.Min),
		"25%":   p.Sprintf("%.3f", d.P25),
		"50%":   p.Sprintf("%.3f", d.P50),
		"75%":   p.Sprintf("%.3f", d.P75),
		"max":   p.Sprintf("%.0f", d.Max),
	}
	keys := []string{"count", "mean", "std", "min", "25%", "50%", "75%", "max"}
	return keys, vals
}

func fmtTable(title string, keys []string, msg map[string]string) string {
	maxKeyLen := 0
	maxValLen := 0
	for k, m := range msg {
		if w := runewidth.StringWidth(k); w > maxKeyLen {
			maxKeyLen = w
		}
		if w := runewidth.StringWidth(m); w > maxValLen {
			maxValLen = w
		}
	}
	maxKeyLen += 2
	maxValLen += 2

	divider := "+" + strings.Repeat("-", maxKeyLen) + "+" + strings.Repeat("-", maxValLen) + "+\n"
	top := "+" + strings.Repeat("-", maxKeyLen+1+maxValLen) + "+\n"

	totalInner := maxKeyLen + maxValLen + 1
	titleW := runewidth.StringWidth(title)
	left := max((totalInner-titleW)/2, 0)
	right := max(totalInner-titleW-left, 0)

	var b strings.Builder
	b.WriteString(top)
	b.WriteString("|" + blank(left) + title + blank(right) + "|\n")
	b.WriteString(divider)
	for _, k := range keys {
		v := msg[k]
		b.WriteString("| " + k + blank(maxKeyLen-2-runewidth.StringWidth(k)) +
			" | " + v + blank(maxValLen-2-runewidth.StringWidth(v)) + " |\n")
	}
	b.WriteString(divider)
	return b.String()
}

func fmtHistogram(p *message.Printer, bins []Bin) string {
	peak := 0
	labels := make([]string, len(bins))
	labelW := 0
	for i, bin := range bins {
		peak = max(peak, bin.Count)
		labels[i] = p.Sprintf("[%.1f, %.1f)", bin.Lo, bin.Hi)
		labelW = max(labelW, runewidth.StringWidth(labels[i]))
	}

	var b strings.Builder
	for i, bin := range bins {
		bar := 0
		if peak > 0 {
			bar = bin.Count * histogramBarWidth / peak
		}
		if bin.Count > 0 && bar == 0 {
			bar = 1
		}
		b.WriteString(labels[i])
		b.WriteString(blank(labelW - runewidth.StringWidth(labels[i])))
		b.WriteString(" │")
		b.WriteString(strings.Repeat("█", bar))
		b.WriteString(p.Sprintf(" %d\n", bin.Count))
	}
	return b.String()
}

// sparkline draws series using at most width samples.
func sparkline(series []int, width int) string {
	if len(series) == 0 || width <= 0 {
		return ""
	}

	points := series
	if width == 1 {
		points = series[len(series)-1:]
	} else if len(series) > width {
		points = make([]int, width)
		for i := range points {
			points[i] = series[i*(len(series)-1)/(width-1)]
		}
	}

	lo, hi := points[0], points[0]
	for _, v := range points {
		lo = min(lo, v)
		hi = max(hi, v)
	}

	out := make([]rune, len(points))
	for i, v := range points {
		idx := 0
		if hi > lo {
			idx = (v - lo) * (len(sparkTicks) - 1) / (hi - lo)
		}
		out[i] = sparkTicks[idx]
	}
	return string(out)
}

func blank(w int) string {
	if w < 1 {
		return ""
	}
	return strings.Repeat(" ", w)
}
