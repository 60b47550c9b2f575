package kdp

import (
	"errors"
	"testing"

	"github.com/cwbudde/algo-polar/internal/testutil"
)

func TestWindowValidation(t *testing.T) {
	phi := testutil.ScanFromBeams(testutil.Ramp(20, 1, 0))
	for _, window := range []int{-1, 0, 2, 6} {
		if _, err := FromPhidp(phi, window); !errors.Is(err, ErrEvenWindow) {
			t.Fatalf("window %d: err = %v, want ErrEvenWindow", window, err)
		}
	}
}

func TestLinearRamp(t *testing.T) {
	// For phidp[r] = 2r + 10, the derivative estimate is slope/2 at every
	// interior gate and zero at the edges.
	const gates = 100
	phi := testutil.ScanFromBeams(testutil.Ramp(gates, 2, 10))

	out, err := FromPhidp(phi, 7)
	if err != nil {
		t.Fatalf("FromPhidp: %v", err)
	}
	kdp := out.Beam(0)
	for r := range gates {
		want := 1.0
		if r < 3 || r >= gates-3 {
			want = 0
		}
		if diff := kdp[r] - want; diff > 1e-12 || diff < -1e-12 {
			t.Fatalf("kdp[%d] = %v, want %v", r, kdp[r], want)
		}
	}
}

func TestShapePreservedAcrossBeams(t *testing.T) {
	phi := testutil.ScanFromBeams(
		testutil.Ramp(40, 1, 0),
		testutil.Ramp(40, 3, -5),
	)
	out, err := FromPhidp(phi, DefaultWindow)
	if err != nil {
		t.Fatalf("FromPhidp: %v", err)
	}
	if out.Beams() != 2 || out.Gates() != 40 {
		t.Fatalf("shape %v, want [2 40]", out.Shape())
	}
	// Each beam keeps its own slope.
	if got := out.Beam(0)[20]; got != 0.5 {
		t.Fatalf("beam 0 kdp = %v, want 0.5", got)
	}
	if got := out.Beam(1)[20]; got != 1.5 {
		t.Fatalf("beam 1 kdp = %v, want 1.5", got)
	}
}

func TestWindowWiderThanBeam(t *testing.T) {
	phi := testutil.ScanFromBeams(testutil.Ramp(5, 1, 0))
	out, err := FromPhidp(phi, 7)
	if err != nil {
		t.Fatalf("FromPhidp: %v", err)
	}
	testutil.RequireSliceNearlyEqual(t, out.Beam(0), make([]float64, 5), 0)
}

func TestInputUntouched(t *testing.T) {
	phi := testutil.ScanFromBeams(testutil.NoisyRamp(7, 30, 1, 0, 2))
	unchanged := phi.Clone()
	if _, err := FromPhidp(phi, 5); err != nil {
		t.Fatalf("FromPhidp: %v", err)
	}
	testutil.RequireSliceNearlyEqual(t, phi.Data(), unchanged.Data(), 0)
}
