// Package unfold corrects 360-degree wrap discontinuities in differential
// phase profiles.
//
// Differential phase accumulates monotonically through rain. When it exceeds
// the unambiguous measurement range it folds back by 360 degrees, producing a
// sudden drop that would poison any derivative estimate. The unfolding walk
// follows Wang & Chandrasekar (2009): find the onset of a trustworthy profile
// (low local dispersion, high co-polar correlation), then track a running
// reference phase along the beam, advancing it by half the locally smoothed
// gradient wherever the profile is calm, and fold samples that dropped far
// below the reference back up by 360 degrees.
//
// Two interchangeable strategies are provided. [Reference] is the readable
// baseline with an explicit per-gate step function. [Fast] produces bitwise
// identical results using O(1) window predicates and optional per-beam
// parallelism. The caller picks one statically; there is no runtime
// discovery or silent fallback.
package unfold

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-polar/dp/scan"
)

// Tuning constants of the unfolding walk, from the published algorithm.
const (
	// dispersionWindow is the width of the rolling standard deviation
	// window used as the profile dispersion measure.
	dispersionWindow = 9

	// dispersionMax is the dispersion level below which a gate counts as
	// calm.
	dispersionMax = 5.0

	// rhoMin is the minimum co-polar correlation for a gate to be trusted
	// during onset detection.
	rhoMin = 0.9

	// gradMin and gradMax bound the physically plausible smoothed phase
	// gradient (degrees per gate) for reference tracking.
	gradMin = -5.0
	gradMax = 20.0

	// wrapTrigger is how far a sample must fall below the running
	// reference before it is treated as folded.
	wrapTrigger = -80.0

	// wrapStep is the unambiguous phase range added to a folded sample.
	wrapStep = 360.0

	// smoothKernel is the median-filter kernel applied before taking the
	// phase gradient.
	smoothKernel = 5
)

// Unfolder is a phase-unfolding strategy. Implementations return a new Scan
// and leave phidp untouched.
type Unfolder interface {
	Unfold(phidp, rho *scan.Scan, width int) (*scan.Scan, error)
}

func validate(phidp, rho *scan.Scan, width int) error {
	if err := scan.CheckSameShape(phidp, rho); err != nil {
		return err
	}
	if width < 1 {
		return fmt.Errorf("unfold: analysis width must be >= 1: got %d", width)
	}
	return nil
}

// skippable reports whether a beam carries nothing to unfold: entirely
// invalid, or entirely zero (the degenerate fill of an all-invalid beam).
func skippable(beam []float64) bool {
	allZero, allNaN := true, true
	for _, v := range beam {
		if !math.IsNaN(v) {
			allNaN = false
		}
		if v != 0 {
			allZero = false
		}
		if !allZero && !allNaN {
			return false
		}
	}
	return allZero || allNaN
}

// trackGate performs one step of the tracking walk: advance the running
// reference by half the smoothed gradient if the profile is locally calm and
// the gradient is plausible, then fold the sample up by 360 degrees if it
// dropped far below the reference while being negative. It returns the
// updated reference and the corrected sample.
func trackGate(ref, sample, grad float64, calm bool) (float64, float64) {
	if calm && grad > gradMin && grad < gradMax {
		ref += grad / 2
	}
	if sample-ref < wrapTrigger && sample < 0 {
		sample += wrapStep
	}
	return ref, sample
}
