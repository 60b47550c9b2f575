// Package beamstats summarises single beams for reporting and diagnostics.
package beamstats

import "math"

// Stats holds NaN-aware summary statistics of one beam.
type Stats struct {
	Count         int
	Valid         int
	ValidFraction float64
	Mean          float64
	PopStd        float64 // population standard deviation (divisor n)
	Min           float64
	MinGate       int
	Max           float64
	MaxGate       int
	Range         float64 // max - min
}

// emptyStats is returned for beams without any valid sample.
func emptyStats(count int) Stats {
	return Stats{
		Count:   count,
		Mean:    math.NaN(),
		PopStd:  math.NaN(),
		Min:     math.NaN(),
		MinGate: -1,
		Max:     math.NaN(),
		MaxGate: -1,
		Range:   math.NaN(),
	}
}

// Calculate computes all statistics in a single pass, skipping invalid
// samples. Welford's online algorithm keeps the variance numerically stable
// for long beams.
func Calculate(beam []float64) Stats {
	var (
		valid  int
		mean   float64
		m2     float64
		minVal float64
		minPos = -1
		maxVal float64
		maxPos = -1
	)

	for i, x := range beam {
		if math.IsNaN(x) {
			continue
		}
		valid++

		delta := x - mean
		mean += delta / float64(valid)
		m2 += delta * (x - mean)

		if minPos < 0 || x < minVal {
			minVal, minPos = x, i
		}
		if maxPos < 0 || x > maxVal {
			maxVal, maxPos = x, i
		}
	}

	if valid == 0 {
		return emptyStats(len(beam))
	}
	return Stats{
		Count:         len(beam),
		Valid:         valid,
		ValidFraction: float64(valid) / float64(len(beam)),
		Mean:          mean,
		PopStd:        math.Sqrt(m2 / float64(valid)),
		Min:           minVal,
		MinGate:       minPos,
		Max:           maxVal,
		MaxGate:       maxPos,
		Range:         maxVal - minVal,
	}
}
