// Package cvec implements arithmetic on vectors of single-precision complex
// numbers.
//
// A vector is a []complex64 owned by the caller. Operations never retain
// references past the call. In-place operations write into the caller's
// slice; out-of-place operations return a freshly allocated slice of the input
// length and leave their inputs untouched. Operands that must have equal
// length are checked before any arithmetic, and a mismatch is reported as
// ErrShapeMismatch rather than truncated or broadcast.
//
// The package-level functions run on the pure Go CPU backend. Use New to bind
// the same operations to another device.Backend.
package cvec

import (
	"github.com/23skdu/longbow-cvec/internal/device"
)

// Kernel binds the vector operations to a backend.
// A Kernel holds no per-call state and is safe for concurrent use on
// distinct buffers.
type Kernel struct {
	backend device.Backend
}

// New returns a Kernel running on backend. A nil backend selects the CPU backend.
func New(backend device.Backend) *Kernel {
	if backend == nil {
		backend = device.NewCPUBackend()
	}
	return &Kernel{backend: backend}
}

// Backend returns the backend the kernel runs on.
func (k *Kernel) Backend() device.Backend {
	return k.backend
}

// ScaleInPlace multiplies every element of x by s, in place.
// A zero-length x is a no-op.
func (k *Kernel) ScaleInPlace(x []complex64, s complex64) {
	if len(x) == 0 {
		return
	}
	k.backend.Scale(x, s)
}

// ScaleInto writes x[i] * s into dst. dst is left untouched when the
// lengths differ.
func (k *Kernel) ScaleInto(dst, x []complex64, s complex64) error {
	if err := checkLen("scale", len(dst), len(x)); err != nil {
		return err
	}
	if len(x) > 0 {
		k.backend.ScaleTo(dst, x, s)
	}
	return nil
}

// Axpb returns a new vector y with y[i] = a*x[i] + b.
// x is not modified. A zero-length x yields an empty, non-nil result.
func (k *Kernel) Axpb(x []complex64, a, b complex64) []complex64 {
	y := make([]complex64, len(x))
	if len(x) > 0 {
		k.backend.Axpb(y, x, a, b)
	}
	return y
}

// AxpbInto writes a*x[i] + b into dst. dst may be x itself for an in-place
// transform. dst is left untouched when the lengths differ.
func (k *Kernel) AxpbInto(dst, x []complex64, a, b complex64) error {
	if err := checkLen("axpb", len(dst), len(x)); err != nil {
		return err
	}
	if len(x) > 0 {
		k.backend.Axpb(dst, x, a, b)
	}
	return nil
}

// Mul returns the elementwise product z[i] = x[i] * y[i].
// It fails with ErrShapeMismatch, returning a nil vector, when the lengths differ.
func (k *Kernel) Mul(x, y []complex64) ([]complex64, error) {
	if err := checkLen("mul", len(x), len(y)); err != nil {
		return nil, err
	}
	z := make([]complex64, len(x))
	if len(x) > 0 {
		k.backend.Mul(z, x, y)
	}
	return z, nil
}

// MulInto writes x[i] * y[i] into dst. All three lengths must agree;
// otherwise dst is left untouched.
func (k *Kernel) MulInto(dst, x, y []complex64) error {
	if err := checkLen("mul", len(x), len(y)); err != nil {
		return err
	}
	if err := checkLen("mul", len(dst), len(x)); err != nil {
		return err
	}
	if len(x) > 0 {
		k.backend.Mul(dst, x, y)
	}
	return nil
}
