// Package scan provides the array container shared by all polarimetric
// processing stages.
//
// A [Scan] is an N-dimensional float64 array in row-major order whose last
// axis is the range dimension (ordered range gates along a radar beam). Any
// leading axes index independent beams, elevations or sweeps. Missing data is
// represented by NaN and flows through the processing stages as a soft
// signal; it is never an error.
package scan

import (
	"fmt"
	"math"
)

// Scan is an N-dimensional float64 array with the range gates on the last
// axis. The zero value is not usable; use [New] or [FromSlice].
type Scan struct {
	data  []float64
	shape []int
}

// New returns a zero-filled Scan of the given shape.
// It panics if the shape is empty or contains a non-positive axis length.
func New(shape ...int) *Scan {
	n, err := sizeOf(shape)
	if err != nil {
		panic(err)
	}
	return &Scan{
		data:  make([]float64, n),
		shape: append([]int(nil), shape...),
	}
}

// FromSlice wraps an existing slice without copying.
// Mutations to the slice are visible through the Scan and vice versa.
func FromSlice(data []float64, shape ...int) (*Scan, error) {
	n, err := sizeOf(shape)
	if err != nil {
		return nil, err
	}
	if len(data) != n {
		return nil, fmt.Errorf("scan: data length %d does not match shape %v (size %d)", len(data), shape, n)
	}
	return &Scan{data: data, shape: append([]int(nil), shape...)}, nil
}

func sizeOf(shape []int) (int, error) {
	if len(shape) == 0 {
		return 0, fmt.Errorf("scan: shape must have at least one axis")
	}
	n := 1
	for _, s := range shape {
		if s <= 0 {
			return 0, fmt.Errorf("scan: axis length must be > 0: %v", shape)
		}
		n *= s
	}
	return n, nil
}

// Clone returns a deep copy.
func (s *Scan) Clone() *Scan {
	data := make([]float64, len(s.data))
	copy(data, s.data)
	return &Scan{data: data, shape: append([]int(nil), s.shape...)}
}

// Data returns the underlying slice in row-major order.
func (s *Scan) Data() []float64 {
	return s.data
}

// Shape returns a copy of the axis lengths.
func (s *Scan) Shape() []int {
	return append([]int(nil), s.shape...)
}

// NDim returns the number of axes.
func (s *Scan) NDim() int {
	return len(s.shape)
}

// Gates returns the length of the range axis (the last axis).
func (s *Scan) Gates() int {
	return s.shape[len(s.shape)-1]
}

// Beams returns the number of independent beams, i.e. the product of all
// leading axis lengths. A one-dimensional Scan is a single beam.
func (s *Scan) Beams() int {
	return len(s.data) / s.Gates()
}

// Beam returns the i-th beam as an aliasing view into the Scan.
func (s *Scan) Beam(i int) []float64 {
	g := s.Gates()
	return s.data[i*g : (i+1)*g]
}

// EqualShape reports whether a and b have identical shapes.
func EqualShape(a, b *Scan) bool {
	if len(a.shape) != len(b.shape) {
		return false
	}
	for i, s := range a.shape {
		if s != b.shape[i] {
			return false
		}
	}
	return true
}

// Valid reports whether v carries data (is not NaN).
func Valid(v float64) bool {
	return !math.IsNaN(v)
}

// Invalid returns the no-data sentinel.
func Invalid() float64 {
	return math.NaN()
}

// EnsureLen returns a slice with the requested length, reusing buf capacity
// if possible. The contents are unspecified.
func EnsureLen(buf []float64, n int) []float64 {
	if n <= 0 {
		return buf[:0]
	}
	if cap(buf) >= n {
		return buf[:n]
	}
	return make([]float64, n)
}
