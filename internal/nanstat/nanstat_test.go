package nanstat

import (
	"math"
	"testing"
)

var nan = math.NaN()

func TestCompact(t *testing.T) {
	got := Compact(nil, []float64{1, nan, 2, nan, 3})
	want := []float64{1, 2, 3}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("got %v, want %v", got, want)
		}
	}

	if out := Compact(nil, []float64{nan, nan}); len(out) != 0 {
		t.Fatalf("expected empty result, got %v", out)
	}
}

func TestCountValid(t *testing.T) {
	if n := CountValid([]float64{nan, 1, nan, 2}); n != 2 {
		t.Fatalf("got %d, want 2", n)
	}
	if n := CountValid(nil); n != 0 {
		t.Fatalf("got %d, want 0", n)
	}
}

func TestMean(t *testing.T) {
	if got := Mean([]float64{1, nan, 3}); got != 2 {
		t.Fatalf("got %v, want 2", got)
	}
	if got := Mean([]float64{nan, nan}); !math.IsNaN(got) {
		t.Fatalf("got %v, want NaN", got)
	}
}

func TestPopStd(t *testing.T) {
	// Population std of {1, 3} is 1, sample std would be sqrt(2).
	if got := PopStd([]float64{1, nan, 3}); math.Abs(got-1) > 1e-12 {
		t.Fatalf("got %v, want 1", got)
	}
	if got := PopStd([]float64{5}); got != 0 {
		t.Fatalf("got %v, want 0", got)
	}
	if got := PopStd([]float64{nan}); !math.IsNaN(got) {
		t.Fatalf("got %v, want NaN", got)
	}
}

func TestMedian(t *testing.T) {
	cases := []struct {
		in   []float64
		want float64
	}{
		{[]float64{3, 1, 2}, 2},
		{[]float64{4, 1, 3, 2}, 2.5},
		{[]float64{nan, 7, nan}, 7},
		{[]float64{5, nan, 1, 3, nan}, 3},
	}
	for _, tc := range cases {
		if got := Median(tc.in); got != tc.want {
			t.Fatalf("Median(%v) = %v, want %v", tc.in, got, tc.want)
		}
	}

	if got := Median([]float64{nan, nan}); !math.IsNaN(got) {
		t.Fatalf("got %v, want NaN", got)
	}
}

func TestMedianSortedDoesNotAllocate(t *testing.T) {
	buf := []float64{9, 1, 5, 3}
	if got := MedianSorted(buf); got != 4 {
		t.Fatalf("got %v, want 4", got)
	}
	// The buffer is sorted in place.
	for i := 1; i < len(buf); i++ {
		if buf[i-1] > buf[i] {
			t.Fatalf("buffer not sorted: %v", buf)
		}
	}
}
