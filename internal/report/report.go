// Package report computes aggregate statistics over stored rounds and
// renders them as a text report.
package report

import (
	"math"
	"slices"

	"gonum.org/v1/gonum/stat"

	"github.com/vovakirdan/reelsim/internal/storage"
)

// Confidence level for interval estimates.
const Confidence = 0.95

// HistogramBins is the number of outcome histogram bins.
const HistogramBins = 10

// CI is a closed confidence interval.
type CI struct {
	Lo float64
	Hi float64
}

// Describe summarizes a numeric column.
type Describe struct {
	Count int
	Mean  float64
	Std   float64 // Sample standard deviation, 0 for fewer than two values
	Min   float64
	P25   float64
	P50   float64
	P75   float64
	Max   float64
}

// Bin is one histogram bucket covering [Lo, Hi).
// The last bin also includes Hi.
type Bin struct {
	Lo    float64
	Hi    float64
	Count int
}

// Report holds the aggregate view of a results table.
type Report struct {
	Games     int
	Net       int // Sum of outcomes
	Wins      int // Rounds with a positive outcome
	WinRate   float64
	WinRateCI CI
	BestWin   int // Largest outcome
	WorstLoss int // Smallest outcome
	Wagered   int
	Winnings  int
	RTP       float64 // Winnings / Wagered, 0 when nothing was wagered

	Outcome    Describe
	Histogram  []Bin
	Cumulative []int // Running net by id order
}

// Empty reports whether the report covers no rounds.
func (r Report) Empty() bool {
	return r.Games == 0
}

// Build aggregates rounds. Rounds are taken in the given order for the
// cumulative series; pass them sorted by id.
func Build(rounds []storage.RoundResult) Report {
	var r Report
	if len(rounds) == 0 {
		return r
	}

	r.Games = len(rounds)
	r.BestWin = rounds[0].Outcome
	r.WorstLoss = rounds[0].Outcome
	r.Cumulative = make([]int, 0, len(rounds))

	outcomes := make([]float64, 0, len(rounds))
	for _, rd := range rounds {
		r.Net += rd.Outcome
		r.Wagered += rd.TotalBet
		r.Winnings += rd.Winnings
		if rd.Outcome > 0 {
			r.Wins++
		}
		r.BestWin = max(r.BestWin, rd.Outcome)
		r.WorstLoss = min(r.WorstLoss, rd.Outcome)
		r.Cumulative = append(r.Cumulative, r.Net)
		outcomes = append(outcomes, float64(rd.Outcome))
	}

	r.WinRate, r.WinRateCI = proportionCI(r.Wins, r.Games, Confidence)
	if r.Wagered > 0 {
		r.RTP = float64(r.Winnings) / float64(r.Wagered)
	}

	slices.Sort(outcomes)
	r.Outcome = describe(outcomes)
	r.Histogram = histogram(outcomes, HistogramBins)

	return r
}

// describe expects sorted, non-empty data.
func describe(sorted []float64) Describe {
	d := Describe{
		Count: len(sorted),
		Min:   sorted[0],
		Max:   sorted[len(sorted)-1],
		P25:   quantile(sorted, 0.25),
		P50:   quantile(sorted, 0.50),
		P75:   quantile(sorted, 0.75),
	}
	if len(sorted) < 2 {
		d.Mean = sorted[0]
		return d
	}
	d.Mean, d.Std = stat.MeanStdDev(sorted, nil)
	return d
}

// quantile interpolates linearly between the closest ranks at (n-1)*p.
func quantile(sorted []float64, p float64) float64 {
	h := float64(len(sorted)-1) * p
	lo := math.Floor(h)
	i := int(lo)
	if i+1 >= len(sorted) {
		return sorted[len(sorted)-1]
	}
	return sorted[i] + (h-lo)*(sorted[i+1]-sorted[i])
}

// histogram splits the range of sorted, non-empty data into equal bins.
// A degenerate range gets unit-width bins starting at the single value.
func histogram(sorted []float64, bins int) []Bin {
	lo, hi := sorted[0], sorted[len(sorted)-1]
	width := (hi - lo) / float64(bins)
	if width == 0 {
		width = 1
	}

	dividers := make([]float64, bins+1)
	for i := range dividers {
		dividers[i] = lo + float64(i)*width
	}
	// The top divider is exclusive in stat.Histogram.
	dividers[bins] = math.Nextafter(math.Max(dividers[bins], hi), math.Inf(1))

	counts := stat.Histogram(nil, dividers, sorted, nil)

	out := make([]Bin, bins)
	for i := range out {
		out[i] = Bin{
			Lo:    dividers[i],
			Hi:    lo + float64(i+1)*width,
			Count: int(counts[i]),
		}
	}
	return out
}
