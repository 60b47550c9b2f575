package adjust

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/stat"

	"github.com/cwbudde/algo-polar/internal/nanstat"
)

// ErrUnknownStat is returned by [ParseStat] for unrecognised aggregation
// names.
var ErrUnknownStat = errors.New("adjust: unknown aggregation")

// Stat selects how the raw neighbourhood of a gage is summarised into a
// single value.
type Stat int

const (
	// StatMedian is the median of the neighbour values (the default).
	StatMedian Stat = iota
	// StatMean is the arithmetic mean of the neighbour values.
	StatMean
	// StatBest picks the neighbour value closest to the gage observation.
	StatBest
)

// ParseStat maps an aggregation name to its Stat.
func ParseStat(name string) (Stat, error) {
	switch name {
	case "median":
		return StatMedian, nil
	case "mean":
		return StatMean, nil
	case "best":
		return StatBest, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownStat, name)
}

func (s Stat) String() string {
	switch s {
	case StatMedian:
		return "median"
	case StatMean:
		return "mean"
	case StatBest:
		return "best"
	}
	return fmt.Sprintf("Stat(%d)", int(s))
}

func (s Stat) valid() bool {
	switch s {
	case StatMedian, StatMean, StatBest:
		return true
	}
	return false
}

// aggregate summarises the neighbour values. An invalid neighbour value
// poisons mean and median (the callers drop such gages afterwards); StatBest
// skips invalid neighbours and needs the gage observation obs.
func (s Stat) aggregate(obs float64, values []float64) float64 {
	switch s {
	case StatMean:
		return stat.Mean(values, nil)
	case StatMedian:
		for _, v := range values {
			if math.IsNaN(v) {
				return math.NaN()
			}
		}
		return nanstat.MedianSorted(append([]float64(nil), values...))
	case StatBest:
		best := math.NaN()
		bestDiff := math.Inf(1)
		for _, v := range values {
			if d := math.Abs(obs - v); d < bestDiff {
				best, bestDiff = v, d
			}
		}
		return best
	}
	return math.NaN()
}
