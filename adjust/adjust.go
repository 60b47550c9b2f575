package adjust

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-vecmath"
)

// Option configures an adjustment model.
type Option func(*config)

type config struct {
	nnearRaw int
	stat     Stat
	nnearIDW int
	powerIDW float64
}

func defaultConfig() config {
	return config{
		nnearRaw: 9,
		stat:     StatMedian,
		nnearIDW: 6,
		powerIDW: 2,
	}
}

// WithNeighbours sets how many raw samples around each gage are aggregated.
func WithNeighbours(n int) Option {
	return func(c *config) { c.nnearRaw = n }
}

// WithStat selects the neighbourhood aggregation.
func WithStat(s Stat) Option {
	return func(c *config) { c.stat = s }
}

// WithIDWNeighbours sets how many gages feed each interpolated error value.
func WithIDWNeighbours(n int) Option {
	return func(c *config) { c.nnearIDW = n }
}

// WithIDWPower sets the inverse-distance exponent of the error
// interpolation.
func WithIDWPower(p float64) Option {
	return func(c *config) { c.powerIDW = p }
}

// Add adjusts a raw field by an additive error model: the gage-minus-raw
// error is interpolated from the gage locations onto the raw grid and added
// to the field. Negative adjusted values are cut to zero.
type Add struct {
	obsCoords [][]float64
	rawCoords [][]float64
	cfg       config
	rawAtObs  *RawAtObs
	idw       *IDW
}

// NewAdd builds an additive adjuster for fixed gage and field coordinates.
// The neighbour searches and inverse-distance weights are computed here, so
// adjusting successive time steps is cheap as long as all gages report valid
// data.
func NewAdd(obsCoords, rawCoords [][]float64, opts ...Option) (*Add, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	rao, err := NewRawAtObs(obsCoords, rawCoords, cfg.nnearRaw, cfg.stat)
	if err != nil {
		return nil, err
	}
	idw, err := NewIDW(obsCoords, rawCoords, cfg.nnearIDW, cfg.powerIDW)
	if err != nil {
		return nil, err
	}
	return &Add{
		obsCoords: obsCoords,
		rawCoords: rawCoords,
		cfg:       cfg,
		rawAtObs:  rao,
		idw:       idw,
	}, nil
}

// Adjust returns the raw field adjusted by the gage observations. Gages with
// invalid data on either the gage or the radar side are dropped; if any were
// dropped, the inverse distance weights are rebuilt over the remaining
// gages. Without a single valid gage the field is returned unadjusted (as a
// copy).
func (a *Add) Adjust(obs, raw []float64) ([]float64, error) {
	if err := a.checkLengths(obs, raw); err != nil {
		return nil, err
	}
	rawAtObs, err := a.rawAtObs.Values(raw, obs)
	if err != nil {
		return nil, err
	}

	validIx := make([]int, 0, len(obs))
	for i := range obs {
		if validValue(obs[i]) && validValue(rawAtObs[i]) {
			validIx = append(validIx, i)
		}
	}
	out := append([]float64(nil), raw...)
	if len(validIx) == 0 {
		return out, nil
	}

	pointErr := make([]float64, len(validIx))
	for i, ix := range validIx {
		pointErr[i] = obs[ix] - rawAtObs[ix]
	}

	ip := a.idw
	if len(validIx) != len(obs) {
		coords := make([][]float64, len(validIx))
		for i, ix := range validIx {
			coords[i] = a.obsCoords[ix]
		}
		ip, err = NewIDW(coords, a.rawCoords, a.cfg.nnearIDW, a.cfg.powerIDW)
		if err != nil {
			return nil, err
		}
	}
	errField, err := ip.Interpolate(pointErr)
	if err != nil {
		return nil, err
	}

	vecmath.AddBlockInPlace(out, errField)
	for i, v := range out {
		if v < 0 {
			out[i] = 0
		}
	}
	return out, nil
}

func (a *Add) checkLengths(obs, raw []float64) error {
	return checkLengths(obs, len(a.obsCoords), raw, len(a.rawCoords))
}

// MFB adjusts a raw field by a single multiplicative correction factor, the
// mean field bias between gages and the raw field.
type MFB struct {
	obsCount int
	rawCount int
	rawAtObs *RawAtObs
}

// NewMFB builds a mean-field-bias adjuster for fixed gage and field
// coordinates.
func NewMFB(obsCoords, rawCoords [][]float64, opts ...Option) (*MFB, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	rao, err := NewRawAtObs(obsCoords, rawCoords, cfg.nnearRaw, cfg.stat)
	if err != nil {
		return nil, err
	}
	return &MFB{
		obsCount: len(obsCoords),
		rawCount: len(rawCoords),
		rawAtObs: rao,
	}, nil
}

// Adjust returns the raw field scaled by the mean of the gage/raw ratios.
// Only locations where both sides exceed threshold enter the bias estimate;
// without any such location the field is returned unadjusted (as a copy).
func (m *MFB) Adjust(obs, raw []float64, threshold float64) ([]float64, error) {
	if err := checkLengths(obs, m.obsCount, raw, m.rawCount); err != nil {
		return nil, err
	}
	rawAtObs, err := m.rawAtObs.Values(raw, obs)
	if err != nil {
		return nil, err
	}

	var ratioSum float64
	var ratios int
	for i := range obs {
		if obs[i] > threshold && rawAtObs[i] > threshold {
			ratio := obs[i] / rawAtObs[i]
			if !math.IsNaN(ratio) {
				ratioSum += ratio
				ratios++
			}
		}
	}

	factor := 1.0
	if ratios > 0 && !math.IsNaN(ratioSum) {
		factor = ratioSum / float64(ratios)
	}
	out := make([]float64, len(raw))
	vecmath.ScaleBlock(out, raw, factor)
	return out, nil
}

func checkLengths(obs []float64, obsCount int, raw []float64, rawCount int) error {
	if len(obs) != obsCount {
		return fmt.Errorf("adjust: got %d observations for %d gage coordinates", len(obs), obsCount)
	}
	if len(raw) != rawCount {
		return fmt.Errorf("adjust: got %d raw values for %d field coordinates", len(raw), rawCount)
	}
	return nil
}

// missingFlags are conventional missing-data markers beyond NaN and Inf.
var missingFlags = [...]float64{-99, -9999}

func validValue(v float64) bool {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return false
	}
	for _, flag := range missingFlags {
		if v == flag {
			return false
		}
	}
	return true
}
