package cvec

import (
	"errors"
	"fmt"
)

// ErrShapeMismatch is matched by every error returned when two operands that
// must have equal length do not.
var ErrShapeMismatch = errors.New("cvec: shape mismatch")

// ShapeMismatchError reports the operation and the offending lengths.
type ShapeMismatchError struct {
	Op    string
	Left  int
	Right int
}

func (e *ShapeMismatchError) Error() string {
	return fmt.Sprintf("cvec: %s: shape mismatch: length %d != %d", e.Op, e.Left, e.Right)
}

// Is makes errors.Is(err, ErrShapeMismatch) succeed.
func (e *ShapeMismatchError) Is(target error) bool {
	return target == ErrShapeMismatch
}

func checkLen(op string, left, right int) error {
	if left != right {
		return &ShapeMismatchError{Op: op, Left: left, Right: right}
	}
	return nil
}
