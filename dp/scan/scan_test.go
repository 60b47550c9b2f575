package scan

import (
	"errors"
	"math"
	"testing"
)

func TestNewZeroFilled(t *testing.T) {
	s := New(3, 4)
	if got := len(s.Data()); got != 12 {
		t.Fatalf("len = %d, want 12", got)
	}
	for i, v := range s.Data() {
		if v != 0 {
			t.Fatalf("data[%d] = %v, want 0", i, v)
		}
	}
	if s.Gates() != 4 || s.Beams() != 3 {
		t.Fatalf("gates = %d beams = %d, want 4 and 3", s.Gates(), s.Beams())
	}
}

func TestFromSliceSizeMismatch(t *testing.T) {
	if _, err := FromSlice(make([]float64, 5), 2, 3); err == nil {
		t.Fatal("expected error for mismatched data length")
	}
}

func TestFromSliceAliases(t *testing.T) {
	data := []float64{1, 2, 3, 4}
	s, err := FromSlice(data, 2, 2)
	if err != nil {
		t.Fatalf("FromSlice: %v", err)
	}
	data[0] = 42
	if s.Data()[0] != 42 {
		t.Fatal("FromSlice must alias, not copy")
	}
}

func TestCloneIsIndependent(t *testing.T) {
	s := New(2, 3)
	c := s.Clone()
	c.Data()[0] = 1
	if s.Data()[0] != 0 {
		t.Fatal("mutating the clone changed the original")
	}
}

func TestBeamIsView(t *testing.T) {
	s := New(2, 3)
	s.Beam(1)[2] = 7
	if s.Data()[5] != 7 {
		t.Fatalf("beam view write not visible: data = %v", s.Data())
	}
}

func TestCheckSameShape(t *testing.T) {
	a := New(2, 3)
	b := New(2, 3)
	if err := CheckSameShape(a, b); err != nil {
		t.Fatalf("equal shapes rejected: %v", err)
	}

	c := New(3, 2)
	err := CheckSameShape(a, c)
	if !errors.Is(err, ErrShapeMismatch) {
		t.Fatalf("err = %v, want ErrShapeMismatch", err)
	}
}

func TestValidity(t *testing.T) {
	if Valid(Invalid()) {
		t.Fatal("the no-data sentinel must not be valid")
	}
	if !Valid(0) || !Valid(math.Inf(1)) {
		t.Fatal("finite and infinite numbers are data")
	}
}

func TestEnsureLen(t *testing.T) {
	buf := make([]float64, 2, 8)
	got := EnsureLen(buf, 6)
	if len(got) != 6 {
		t.Fatalf("len = %d, want 6", len(got))
	}
	if &got[0] != &buf[0] {
		t.Fatal("capacity should have been reused")
	}
	if got = EnsureLen(buf, 16); len(got) != 16 {
		t.Fatalf("len = %d, want 16", len(got))
	}
}
