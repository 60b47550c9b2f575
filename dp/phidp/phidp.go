// Package phidp reconstructs physically consistent differential-phase
// profiles from raw polarimetric measurements.
//
// Raw PhiDP is noisy, riddled with missing samples and folded wherever the
// accumulated phase exceeds the unambiguous range. [ProcessRaw] chains the
// four reconstruction stages (despeckling, gap filling, phase unfolding and
// median smoothing) under the general assumption that PhiDP increases
// monotonically along the beam. The corrected profile is the input for Kdp
// estimation (package kdp) and downstream classification or attenuation
// correction.
//
// All stages operate beam by beam; only the unfolding walk is sequential
// within a beam, so work is spread across beams when [WithWorkers] asks for
// parallelism.
package phidp

import (
	"fmt"

	"github.com/cwbudde/algo-polar/dp/despeckle"
	"github.com/cwbudde/algo-polar/dp/gaps"
	"github.com/cwbudde/algo-polar/dp/medfilt"
	"github.com/cwbudde/algo-polar/dp/scan"
	"github.com/cwbudde/algo-polar/dp/unfold"
	"github.com/cwbudde/algo-polar/internal/beamloop"
)

// ProcessRaw establishes a consistent PhiDP profile from raw data. rho is
// the co-polar correlation field gating trust in the phase samples; it must
// have the shape of phidp. By default the input is left untouched and a new
// Scan is returned; [WithInPlace] reverses that contract.
//
// All parameters are validated before any sample is touched, so a parameter
// error never leaves partial work behind, even in-place.
func ProcessRaw(phidp, rho *scan.Scan, opts ...Option) (*scan.Scan, error) {
	if err := scan.CheckSameShape(phidp, rho); err != nil {
		return nil, err
	}

	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	unfolder := cfg.unfolder
	if unfolder == nil {
		unfolder = unfold.Fast{Workers: cfg.workers}
	}

	out := phidp
	if !cfg.inPlace {
		out = phidp.Clone()
	}

	// Despeckling and gap filling are point-wise per beam and share a pass.
	_ = beamloop.Each(out.Beams(), cfg.workers, func(b int) error {
		beam := out.Beam(b)
		despeckle.BeamInPlace(beam, cfg.despeckleWidth)
		gaps.FillBeam(beam, cfg.fillMargin)
		return nil
	})

	unfolded, err := unfolder.Unfold(out, rho, cfg.unfoldWidth)
	if err != nil {
		return nil, err
	}

	err = beamloop.Each(out.Beams(), cfg.workers, func(b int) error {
		return medfilt.Into(out.Beam(b), unfolded.Beam(b), cfg.filterWidth)
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *config) validate() error {
	if c.despeckleWidth != 3 && c.despeckleWidth != 5 {
		return fmt.Errorf("%w: got %d", despeckle.ErrWindowWidth, c.despeckleWidth)
	}
	if c.fillMargin < 1 {
		return fmt.Errorf("phidp: fill margin must be >= 1: got %d", c.fillMargin)
	}
	if c.unfoldWidth < 1 {
		return fmt.Errorf("phidp: unfold width must be >= 1: got %d", c.unfoldWidth)
	}
	if c.filterWidth < 1 || c.filterWidth%2 == 0 {
		return fmt.Errorf("%w: got %d", medfilt.ErrEvenKernel, c.filterWidth)
	}
	return nil
}
