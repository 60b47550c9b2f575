package unfold

import (
	"gonum.org/v1/gonum/stat"

	"github.com/cwbudde/algo-polar/dp/scan"
)

// Reference is the baseline unfolding strategy: a direct, serial rendition of
// the two-state walk. Use it as the semantic yardstick; [Fast] is the
// production variant.
type Reference struct{}

// Unfold returns an unfolded copy of phidp. Beams that are entirely invalid
// or entirely zero are left untouched, as are beams in which no trustworthy
// onset window exists.
func (Reference) Unfold(phidp, rho *scan.Scan, width int) (*scan.Scan, error) {
	if err := validate(phidp, rho, width); err != nil {
		return nil, err
	}
	out := phidp.Clone()

	gates := out.Gates()
	grad := make([]float64, gates)
	smooth := make([]float64, gates)
	std := make([]float64, gates)
	for b := range out.Beams() {
		beam := out.Beam(b)
		if skippable(beam) {
			continue
		}
		smoothedGradient(grad, smooth, beam)
		rollingStd(std, beam)
		unfoldBeam(beam, rho.Beam(b), grad, std, width)
	}
	return out, nil
}

// unfoldBeam runs the two-state walk over one beam in place.
func unfoldBeam(phi, rho, grad, std []float64, width int) {
	n := len(phi)

	// Seek the onset: the first window in which every gate is calm and
	// carries a trustworthy correlation.
	onset := -1
	for j := 0; j < n-width; j++ {
		if onsetWindow(rho[j:j+width], std[j:j+width]) {
			onset = j
			break
		}
	}
	if onset < 0 {
		return
	}

	// Track the running reference from the onset window onwards.
	ref := stat.Mean(phi[onset:onset+width], nil)
	for k := onset + width; k < n; k++ {
		calm := anyCalm(std[k-width : k])
		ref, phi[k] = trackGate(ref, phi[k], grad[k], calm)
	}
}

func onsetWindow(rho, std []float64) bool {
	for i := range std {
		if !(std[i] < dispersionMax) || !(rho[i] > rhoMin) {
			return false
		}
	}
	return true
}

func anyCalm(std []float64) bool {
	for _, s := range std {
		if s < dispersionMax {
			return true
		}
	}
	return false
}
