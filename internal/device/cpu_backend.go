package device

import (
	"github.com/23skdu/longbow-cvec/internal/simd"
)

// ensure interface compliance
var _ Backend = (*CPUBackend)(nil)

// CPUBackend runs every operation with the pure Go loops from package simd.
type CPUBackend struct{}

func NewCPUBackend() *CPUBackend {
	return &CPUBackend{}
}

func (b *CPUBackend) Name() string {
	return BackendCPU
}

func (b *CPUBackend) Scale(x []complex64, s complex64) {
	simd.ScaleC64(x, s)
}

func (b *CPUBackend) ScaleTo(dst, x []complex64, s complex64) {
	simd.ScaleC64To(dst, x, s)
}

func (b *CPUBackend) Axpb(dst, x []complex64, alpha, beta complex64) {
	simd.AxpbC64To(dst, x, alpha, beta)
}

func (b *CPUBackend) Mul(dst, x, y []complex64) {
	simd.MulC64To(dst, x, y)
}
