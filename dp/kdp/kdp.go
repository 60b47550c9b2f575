// Package kdp derives the specific differential phase from a reconstructed
// differential-phase profile.
//
// Kdp is the range derivative of PhiDP and is directly proportional to rain
// rate. The estimator is the moving-window finite difference of Vulpiani et
// al. (2012): the derivative at a gate is the phase difference across a
// window of L gates centred on it, divided by twice the window span. L is
// given in gates, so it needs adjustment when the range resolution changes
// (the published choice is L = 7 at 1 km resolution).
package kdp

import (
	"fmt"

	"github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/algo-polar/dp/scan"
)

// DefaultWindow is the published window length for 1 km range resolution.
const DefaultWindow = 7

// ErrEvenWindow is returned for window lengths that are not positive odd
// integers.
var ErrEvenWindow = fmt.Errorf("kdp: window length must be a positive odd integer")

// FromPhidp estimates Kdp from a PhiDP scan over a centred window of L
// gates: the phase difference across the window divided by twice the window
// span, since PhiDP is a two-way phase. A linear profile of slope a yields
// exactly a/2 at every interior gate.
//
// The result has the shape of phidp. Gates within L/2 of either beam end
// stay zero: the window does not fit there, and falling back to a narrower
// window would make the edge estimates noisier than the interior ones. This
// is a deliberate simplification, not an omission.
func FromPhidp(phidp *scan.Scan, window int) (*scan.Scan, error) {
	if window < 1 || window%2 == 0 {
		return nil, fmt.Errorf("%w: got %d", ErrEvenWindow, window)
	}

	out := scan.New(phidp.Shape()...)
	gates := phidp.Gates()
	half := window / 2
	if half == 0 || gates <= 2*half {
		// A window of one gate spans no distance; every gate is an edge.
		return out, nil
	}

	diff := make([]float64, gates-2*half)
	for b := range phidp.Beams() {
		phi := phidp.Beam(b)
		for r := half; r < gates-half; r++ {
			diff[r-half] = phi[r+half] - phi[r-half]
		}
		vecmath.ScaleBlock(out.Beam(b)[half:gates-half], diff, 1/float64(4*half))
	}
	return out, nil
}
