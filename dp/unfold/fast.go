package unfold

import (
	"gonum.org/v1/gonum/stat"

	"github.com/cwbudde/algo-polar/dp/scan"
	"github.com/cwbudde/algo-polar/internal/beamloop"
)

// Fast is the production unfolding strategy. It produces bitwise identical
// results to [Reference] but replaces the per-gate window scans with prefix
// counts, making both window predicates O(1), and optionally spreads beams
// over multiple goroutines. The in-beam walk stays sequential; only whole
// beams run concurrently.
type Fast struct {
	// Workers bounds the number of concurrently processed beams.
	// Values <= 1 mean serial operation.
	Workers int
}

// Unfold returns an unfolded copy of phidp.
func (f Fast) Unfold(phidp, rho *scan.Scan, width int) (*scan.Scan, error) {
	if err := validate(phidp, rho, width); err != nil {
		return nil, err
	}
	out := phidp.Clone()

	gates := out.Gates()
	err := beamloop.Each(out.Beams(), f.Workers, func(b int) error {
		beam := out.Beam(b)
		if skippable(beam) {
			return nil
		}
		w := newBeamWindows(gates)
		w.prepare(beam, rho.Beam(b))
		w.unfold(beam, width)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// beamWindows holds the per-beam precomputation: the smoothed gradient plus
// prefix counts of calm and trustworthy gates.
type beamWindows struct {
	grad   []float64
	smooth []float64
	std    []float64
	// calm[i] counts gates g < i with std[g] < dispersionMax;
	// trusty[i] additionally requires rho[g] > rhoMin.
	calm   []int
	trusty []int
}

func newBeamWindows(gates int) *beamWindows {
	return &beamWindows{
		grad:   make([]float64, gates),
		smooth: make([]float64, gates),
		std:    make([]float64, gates),
		calm:   make([]int, gates+1),
		trusty: make([]int, gates+1),
	}
}

func (w *beamWindows) prepare(phi, rho []float64) {
	smoothedGradient(w.grad, w.smooth, phi)
	rollingStd(w.std, phi)
	for i, s := range w.std {
		calm := 0
		if s < dispersionMax {
			calm = 1
		}
		trusty := 0
		if calm == 1 && rho[i] > rhoMin {
			trusty = 1
		}
		w.calm[i+1] = w.calm[i] + calm
		w.trusty[i+1] = w.trusty[i] + trusty
	}
}

func (w *beamWindows) unfold(phi []float64, width int) {
	n := len(phi)

	onset := -1
	for j := 0; j < n-width; j++ {
		if w.trusty[j+width]-w.trusty[j] == width {
			onset = j
			break
		}
	}
	if onset < 0 {
		return
	}

	ref := stat.Mean(phi[onset:onset+width], nil)
	for k := onset + width; k < n; k++ {
		calm := w.calm[k]-w.calm[k-width] > 0
		ref, phi[k] = trackGate(ref, phi[k], w.grad[k], calm)
	}
}
