package device

import (
	"errors"
	"fmt"
)

// Backend executes complex64 vector arithmetic.
//
// Backends do not validate operands: every slice passed with x must have
// len(x) elements. Length checks belong to the caller (see package cvec).
type Backend interface {
	// Name returns a short identifier used in logs and metric labels.
	Name() string

	// Scale performs x[i] *= s in place.
	Scale(x []complex64, s complex64)

	// ScaleTo performs dst[i] = x[i] * s.
	ScaleTo(dst, x []complex64, s complex64)

	// Axpb performs dst[i] = alpha*x[i] + beta.
	// dst must not overlap x unless it is x itself.
	Axpb(dst, x []complex64, alpha, beta complex64)

	// Mul performs the elementwise product dst[i] = x[i] * y[i].
	Mul(dst, x, y []complex64)
}

// Backend names accepted by NewBackend.
const (
	BackendCPU  = "cpu"
	BackendBLAS = "blas"
)

// ErrUnknownBackend is returned by NewBackend for names it does not recognise.
var ErrUnknownBackend = errors.New("device: unknown backend")

// NewBackend creates a backend by name. An empty name selects the CPU backend.
func NewBackend(name string) (Backend, error) {
	switch name {
	case "", BackendCPU:
		return NewCPUBackend(), nil
	case BackendBLAS:
		return NewBLASBackend(nil), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownBackend, name)
	}
}
