package testutil

import (
	"math"
	"math/rand"

	"github.com/cwbudde/algo-polar/dp/scan"
)

// Ramp generates a linear phase profile slope*r + intercept over gates range
// gates.
func Ramp(gates int, slope, intercept float64) []float64 {
	out := make([]float64, gates)
	for r := range out {
		out[r] = slope*float64(r) + intercept
	}
	return out
}

// FoldedRamp generates a linear phase profile that folds by -360 degrees at
// gate fold, emulating a profile that exceeded the unambiguous range.
func FoldedRamp(gates int, slope, intercept float64, fold int) []float64 {
	out := Ramp(gates, slope, intercept)
	for r := fold; r < gates; r++ {
		out[r] -= 360
	}
	return out
}

// Constant generates a constant-valued beam.
func Constant(gates int, value float64) []float64 {
	out := make([]float64, gates)
	for i := range out {
		out[i] = value
	}
	return out
}

// AllInvalid generates a beam of NaN only.
func AllInvalid(gates int) []float64 {
	return Constant(gates, math.NaN())
}

// WithGap invalidates the half-open gate range [start, end) of beam in
// place and returns it for chaining.
func WithGap(beam []float64, start, end int) []float64 {
	for i := start; i < end; i++ {
		beam[i] = math.NaN()
	}
	return beam
}

// DeterministicNoise generates white noise with a fixed seed for
// reproducibility.
func DeterministicNoise(seed int64, amplitude float64, length int) []float64 {
	out := make([]float64, length)
	rng := rand.New(rand.NewSource(seed))
	for i := range out {
		out[i] = (rng.Float64()*2 - 1) * amplitude
	}
	return out
}

// NoisyRamp generates a linear phase profile with seeded uniform noise.
func NoisyRamp(seed int64, gates int, slope, intercept, amplitude float64) []float64 {
	out := Ramp(gates, slope, intercept)
	for i, n := range DeterministicNoise(seed, amplitude, gates) {
		out[i] += n
	}
	return out
}

// ScanFromBeams stacks equally long beams into a two-dimensional Scan.
// The beams are copied.
func ScanFromBeams(beams ...[]float64) *scan.Scan {
	s := scan.New(len(beams), len(beams[0]))
	for i, b := range beams {
		copy(s.Beam(i), b)
	}
	return s
}
