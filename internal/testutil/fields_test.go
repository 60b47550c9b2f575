package testutil

import (
	"math"
	"testing"
)

func TestRamp(t *testing.T) {
	r := Ramp(5, 2, 10)
	if len(r) != 5 {
		t.Fatalf("len = %d, want 5", len(r))
	}
	if r[0] != 10 || r[4] != 18 {
		t.Fatalf("ramp = %v, want 10 .. 18", r)
	}
}

func TestFoldedRamp(t *testing.T) {
	r := FoldedRamp(6, 1, 0, 3)
	if r[2] != 2 {
		t.Fatalf("r[2] = %v, want 2", r[2])
	}
	if r[3] != 3-360 {
		t.Fatalf("r[3] = %v, want %v", r[3], 3-360)
	}
}

func TestWithGap(t *testing.T) {
	beam := WithGap(Constant(6, 1), 2, 4)
	if !math.IsNaN(beam[2]) || !math.IsNaN(beam[3]) {
		t.Fatalf("gap not applied: %v", beam)
	}
	if beam[1] != 1 || beam[4] != 1 {
		t.Fatalf("gap touched its surroundings: %v", beam)
	}
}

func TestDeterministicNoiseReproducible(t *testing.T) {
	a := DeterministicNoise(42, 1.0, 64)
	b := DeterministicNoise(42, 1.0, 64)
	if len(a) != 64 {
		t.Fatalf("len = %d, want 64", len(a))
	}
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("noise not deterministic at index %d", i)
		}
		if a[i] < -1 || a[i] > 1 {
			t.Fatalf("a[%d] = %v out of amplitude range", i, a[i])
		}
	}
}

func TestScanFromBeams(t *testing.T) {
	src := []float64{1, 2, 3}
	s := ScanFromBeams(src, []float64{4, 5, 6})
	if s.Beams() != 2 || s.Gates() != 3 {
		t.Fatalf("shape = %v, want [2 3]", s.Shape())
	}
	src[0] = 99
	if s.Beam(0)[0] != 1 {
		t.Fatal("beams must be copied, not aliased")
	}
}
