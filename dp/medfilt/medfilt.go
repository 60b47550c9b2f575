// Package medfilt implements median-filter smoothing along the range axis.
//
// The filter matches the common signal-processing convention of zero padding
// at both ends: windows reaching past the beam bounds are topped up with
// zeros before the median is taken. The kernel spans the range axis only;
// neighbouring beams are never mixed.
package medfilt

import (
	"fmt"
	"sort"

	"github.com/cwbudde/algo-polar/dp/scan"
)

// ErrEvenKernel is returned for kernel lengths that are not positive odd
// integers.
var ErrEvenKernel = fmt.Errorf("medfilt: kernel length must be a positive odd integer")

func validateKernel(kernel int) error {
	if kernel < 1 || kernel%2 == 0 {
		return fmt.Errorf("%w: got %d", ErrEvenKernel, kernel)
	}
	return nil
}

// AlongAxis median-filters s along the range axis and returns a new Scan of
// the same shape. All other axes use a kernel length of 1.
func AlongAxis(s *scan.Scan, kernel int) (*scan.Scan, error) {
	if err := validateKernel(kernel); err != nil {
		return nil, err
	}
	out := s.Clone()
	window := make([]float64, 0, kernel)
	for b := range s.Beams() {
		filterInto(out.Beam(b), s.Beam(b), kernel, window)
	}
	return out, nil
}

// Filter1D median-filters a single beam and returns a new slice.
func Filter1D(beam []float64, kernel int) ([]float64, error) {
	if err := validateKernel(kernel); err != nil {
		return nil, err
	}
	out := make([]float64, len(beam))
	filterInto(out, beam, kernel, make([]float64, 0, kernel))
	return out, nil
}

// Into median-filters src into dst. dst and src must have equal length and
// must not alias.
func Into(dst, src []float64, kernel int) error {
	if err := validateKernel(kernel); err != nil {
		return err
	}
	if len(dst) != len(src) {
		return fmt.Errorf("medfilt: dst length %d does not match src length %d", len(dst), len(src))
	}
	filterInto(dst, src, kernel, make([]float64, 0, kernel))
	return nil
}

// filterInto writes the filtered src into dst. window is scratch of capacity
// >= kernel. dst and src must not alias unless identical handling of
// in-place writes is acceptable to the caller; the pipeline always passes
// distinct slices.
func filterInto(dst, src []float64, kernel int, window []float64) {
	n := len(src)
	half := kernel / 2
	for i := range src {
		window = window[:0]
		for j := i - half; j <= i+half; j++ {
			if j < 0 || j >= n {
				window = append(window, 0) // zero padding
			} else {
				window = append(window, src[j])
			}
		}
		sort.Float64s(window)
		dst[i] = window[half]
	}
}
