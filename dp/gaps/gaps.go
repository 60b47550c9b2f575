// Package gaps detects and fills contiguous runs of missing samples in
// differential-phase beams.
//
// Gaps are filled with constants derived from the local medians of the valid
// margins surrounding the gap. A constant fill keeps the range derivative at
// zero across the filled region, so later Kdp estimation cannot manufacture
// signal from an interpolation ramp. Noisy margins are tamed by taking the
// median over several gates rather than the single edge value.
package gaps

import (
	"math"

	"github.com/cwbudde/algo-polar/dp/scan"
	"github.com/cwbudde/algo-polar/internal/nanstat"
)

// Run is a maximal half-open index range [Start, End) of consecutive true
// values in a boolean sequence.
type Run struct {
	Start, End int
}

// Runs returns the maximal true runs of cond in order, including runs that
// touch either end of the sequence.
func Runs(cond []bool) []Run {
	var runs []Run
	start := -1
	for i, c := range cond {
		switch {
		case c && start < 0:
			start = i
		case !c && start >= 0:
			runs = append(runs, Run{Start: start, End: i})
			start = -1
		}
	}
	if start >= 0 {
		runs = append(runs, Run{Start: start, End: len(cond)})
	}
	return runs
}

// Fill returns a copy of s with all missing samples filled.
func Fill(s *scan.Scan, margin int) *scan.Scan {
	out := s.Clone()
	FillInPlace(out, margin)
	return out
}

// FillInPlace fills all missing samples of s in place.
func FillInPlace(s *scan.Scan, margin int) {
	for b := range s.Beams() {
		FillBeam(s.Beam(b), margin)
	}
}

// FillBeam fills the gaps of a single beam in place.
//
// A beam with no valid sample at all becomes all zeros. A gap touching the
// left edge is filled with the median of the margin gates to its right; a gap
// touching the right edge with the median of the margin gates to its left.
// Interior gaps are filled with the average of the two one-sided margin
// medians. Margin windows are clamped to the beam bounds.
func FillBeam(beam []float64, margin int) {
	n := len(beam)
	if n == 0 {
		return
	}

	invalid := make([]bool, n)
	anyValid := false
	for i, v := range beam {
		if math.IsNaN(v) {
			invalid[i] = true
		} else {
			anyValid = true
		}
	}
	if !anyValid {
		for i := range beam {
			beam[i] = 0
		}
		return
	}

	for _, gap := range Runs(invalid) {
		left := max(gap.Start-margin, 0)
		right := min(gap.End+margin, n)

		var fill float64
		switch {
		case gap.Start == 0:
			fill = nanstat.Median(beam[gap.End:right])
		case gap.End == n:
			fill = nanstat.Median(beam[left:gap.Start])
		default:
			fill = (nanstat.Median(beam[gap.End:right]) + nanstat.Median(beam[left:gap.Start])) / 2
		}
		for i := gap.Start; i < gap.End; i++ {
			beam[i] = fill
		}
	}
}
