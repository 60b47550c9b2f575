package despeckle

import (
	"errors"
	"math"
	"testing"

	"github.com/cwbudde/algo-polar/internal/testutil"
)

func TestWidthValidation(t *testing.T) {
	s := testutil.ScanFromBeams(testutil.Ramp(10, 1, 0))
	for _, width := range []int{0, 1, 2, 4, 7} {
		if _, err := Despeckle(s, width); !errors.Is(err, ErrWindowWidth) {
			t.Fatalf("width %d: err = %v, want ErrWindowWidth", width, err)
		}
	}
}

func TestNoOpOnValidBeam(t *testing.T) {
	for _, width := range []int{3, 5} {
		beam := testutil.Ramp(50, 1, 10)
		want := append([]float64(nil), beam...)
		BeamInPlace(beam, width)
		testutil.RequireSliceNearlyEqual(t, beam, want, 0)
	}
}

// speckledBeam is a long valid ramp with a wide gap containing one isolated
// sample.
func speckledBeam() []float64 {
	beam := testutil.Ramp(40, 1, 0)
	testutil.WithGap(beam, 10, 20)
	beam[15] = 99 // isolated speckle inside the gap
	return beam
}

func TestRemovesIsolatedSample(t *testing.T) {
	for _, width := range []int{3, 5} {
		beam := speckledBeam()
		BeamInPlace(beam, width)
		if !math.IsNaN(beam[15]) {
			t.Fatalf("width %d: speckle at gate 15 survived: %v", width, beam[15])
		}
		// The valid runs on either side must survive.
		if math.IsNaN(beam[5]) || math.IsNaN(beam[30]) {
			t.Fatalf("width %d: despeckling removed profile samples", width)
		}
	}
}

func TestIdempotent(t *testing.T) {
	for _, width := range []int{3, 5} {
		once := speckledBeam()
		BeamInPlace(once, width)

		twice := append([]float64(nil), once...)
		BeamInPlace(twice, width)
		testutil.RequireSliceNearlyEqual(t, twice, once, 0)
	}
}

func TestPairSurvivesWidth3(t *testing.T) {
	beam := testutil.Ramp(20, 1, 0)
	testutil.WithGap(beam, 5, 10)
	testutil.WithGap(beam, 12, 16)
	// Gates 10 and 11 form a pair surrounded by gaps; with width 3 they
	// support each other.
	BeamInPlace(beam, 3)
	if math.IsNaN(beam[10]) || math.IsNaN(beam[11]) {
		t.Fatal("adjacent pair should survive a width-3 despeckle")
	}
}

func TestFirstGateRule(t *testing.T) {
	beam := testutil.Ramp(20, 1, 0)
	beam[1] = math.NaN()
	beam[2] = math.NaN()
	BeamInPlace(beam, 3)
	if !math.IsNaN(beam[0]) {
		t.Fatalf("gate 0 must be invalidated when gate 1 carries no data, got %v", beam[0])
	}
}

func TestDespecklePreservesInput(t *testing.T) {
	s := testutil.ScanFromBeams(speckledBeam())
	unchanged := s.Clone()
	out, err := Despeckle(s, 3)
	if err != nil {
		t.Fatalf("Despeckle: %v", err)
	}
	testutil.RequireSliceNearlyEqual(t, s.Data(), unchanged.Data(), 0)
	if !math.IsNaN(out.Beam(0)[15]) {
		t.Fatal("copy was not despeckled")
	}
}
