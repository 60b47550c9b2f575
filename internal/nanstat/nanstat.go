// Package nanstat provides NaN-aware statistics over float64 slices.
//
// NaN marks missing samples throughout the processing pipeline. All functions
// here skip NaN values and return NaN when no valid sample remains, so that
// absence of data keeps propagating as absence of data.
package nanstat

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/stat"
)

// Compact appends all valid (non-NaN) values of src to dst and returns the
// extended slice. Pass dst with spare capacity to avoid allocation.
func Compact(dst, src []float64) []float64 {
	for _, v := range src {
		if !math.IsNaN(v) {
			dst = append(dst, v)
		}
	}
	return dst
}

// CountValid returns the number of non-NaN values in xs.
func CountValid(xs []float64) int {
	n := 0
	for _, v := range xs {
		if !math.IsNaN(v) {
			n++
		}
	}
	return n
}

// Mean returns the arithmetic mean of the valid values in xs,
// or NaN if there are none.
func Mean(xs []float64) float64 {
	valid := Compact(make([]float64, 0, len(xs)), xs)
	if len(valid) == 0 {
		return math.NaN()
	}
	return stat.Mean(valid, nil)
}

// PopStd returns the population standard deviation (divisor n, not n-1) of
// the valid values in xs, or NaN if there are none.
func PopStd(xs []float64) float64 {
	valid := Compact(make([]float64, 0, len(xs)), xs)
	if len(valid) == 0 {
		return math.NaN()
	}
	return stat.PopStdDev(valid, nil)
}

// Median returns the midpoint median of the valid values in xs: the central
// order statistic for odd counts, the average of the two central order
// statistics for even counts. Returns NaN if no valid value exists.
//
// gonum's stat.Quantile cumulant conventions do not reproduce the midpoint
// convention, hence the direct implementation.
func Median(xs []float64) float64 {
	valid := Compact(make([]float64, 0, len(xs)), xs)
	return MedianSorted(valid)
}

// MedianSorted computes the midpoint median of xs, sorting it in place.
// xs must not contain NaN.
func MedianSorted(xs []float64) float64 {
	n := len(xs)
	if n == 0 {
		return math.NaN()
	}
	sort.Float64s(xs)
	if n%2 == 1 {
		return xs[n/2]
	}
	return (xs[n/2-1] + xs[n/2]) / 2
}
