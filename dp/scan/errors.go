package scan

import (
	"errors"
	"fmt"
)

// ErrShapeMismatch signals that a quality array does not match the shape of
// the phase array it accompanies. This is a fatal precondition violation; no
// partial processing is attempted.
var ErrShapeMismatch = errors.New("scan: shape mismatch")

// CheckSameShape returns an error wrapping [ErrShapeMismatch] unless a and b
// have identical shapes.
func CheckSameShape(a, b *Scan) error {
	if !EqualShape(a, b) {
		return fmt.Errorf("%w: %v vs %v", ErrShapeMismatch, a.shape, b.shape)
	}
	return nil
}
