// Package despeckle removes isolated samples from differential-phase scans.
//
// A valid sample surrounded mostly by missing neighbours along the range axis
// is speckle: it carries no profile information and would survive gap filling
// as a spurious anchor. Despeckling invalidates such samples so the gap
// filler treats them as part of the surrounding gap.
package despeckle

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-polar/dp/scan"
)

// ErrWindowWidth is returned when the despeckle window width is not 3 or 5.
var ErrWindowWidth = fmt.Errorf("despeckle: window width must be 3 or 5")

// validThreshold returns the minimum number of valid samples (the sample
// itself plus its symmetric neighbours) required for the sample to survive:
// 2 of 3 for width 3, 3 of 5 for width 5.
func validThreshold(width int) int {
	if width == 3 {
		return 2
	}
	return 3
}

// Despeckle returns a copy of s with isolated samples invalidated.
// width must be 3 or 5.
func Despeckle(s *scan.Scan, width int) (*scan.Scan, error) {
	out := s.Clone()
	if err := DespeckleInPlace(out, width); err != nil {
		return nil, err
	}
	return out, nil
}

// DespeckleInPlace invalidates isolated samples of s in place.
// width must be 3 or 5.
func DespeckleInPlace(s *scan.Scan, width int) error {
	if width != 3 && width != 5 {
		return fmt.Errorf("%w: got %d", ErrWindowWidth, width)
	}
	for b := range s.Beams() {
		BeamInPlace(s.Beam(b), width)
	}
	return nil
}

// BeamInPlace despeckles a single beam. width must be 3 or 5; it is not
// validated here, callers go through [Despeckle] or [DespeckleInPlace].
//
// Neighbour lookup truncates at the beam ends: gates beyond either end count
// as invalid. Wrapping the range axis around would relate the farthest gates
// to the nearest ones, which has no physical meaning for a radar beam.
func BeamInPlace(beam []float64, width int) {
	n := len(beam)
	if n == 0 {
		return
	}

	valid := make([]bool, n)
	for i, v := range beam {
		valid[i] = !math.IsNaN(v)
	}

	half := width / 2
	threshold := validThreshold(width)
	for i := range beam {
		if !valid[i] {
			continue
		}
		count := 0
		for j := i - half; j <= i+half; j++ {
			if j >= 0 && j < n && valid[j] {
				count++
			}
		}
		if count < threshold {
			beam[i] = math.NaN()
		}
	}

	// A sample at the very first gate is removed whenever the second gate
	// carries no data; so close to the radome a lone sample is clutter.
	if n > 1 && math.IsNaN(beam[1]) {
		beam[0] = math.NaN()
	}
}
