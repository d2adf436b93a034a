package device

import (
	"sync"

	"gonum.org/v1/gonum/blas"
	"gonum.org/v1/gonum/blas/gonum"

	"github.com/23skdu/longbow-cvec/internal/simd"
)

var _ Backend = (*BLASBackend)(nil)

var (
	blasMu   sync.RWMutex
	blasImpl blas.Complex64 = gonum.Implementation{}
)

// UseBLAS sets the complex64 BLAS implementation picked up by BLAS backends
// created with a nil implementation. It mirrors blas32.Use.
func UseBLAS(impl blas.Complex64) {
	blasMu.Lock()
	defer blasMu.Unlock()
	blasImpl = impl
}

// BLAS returns the registered complex64 BLAS implementation.
func BLAS() blas.Complex64 {
	blasMu.RLock()
	defer blasMu.RUnlock()
	return blasImpl
}

// BLASBackend routes level 1 operations through a BLAS implementation.
// BLAS has no elementwise product, so Mul uses the simd loop.
type BLASBackend struct {
	impl blas.Complex64
}

// NewBLASBackend wraps impl. A nil impl uses the registered implementation
// (pure Go gonum unless a system BLAS has been installed with UseBLAS).
func NewBLASBackend(impl blas.Complex64) *BLASBackend {
	if impl == nil {
		impl = BLAS()
	}
	return &BLASBackend{impl: impl}
}

func (b *BLASBackend) Name() string {
	return BackendBLAS
}

func (b *BLASBackend) Scale(x []complex64, s complex64) {
	if len(x) == 0 {
		return
	}
	if !blasSafe(s) {
		simd.ScaleC64(x, s)
		return
	}
	b.impl.Cscal(len(x), s, x, 1)
}

func (b *BLASBackend) ScaleTo(dst, x []complex64, s complex64) {
	n := len(x)
	if n == 0 {
		return
	}
	if !blasSafe(s) {
		simd.ScaleC64To(dst, x, s)
		return
	}
	copy(dst[:n], x)
	b.impl.Cscal(n, s, dst, 1)
}

func (b *BLASBackend) Axpb(dst, x []complex64, alpha, beta complex64) {
	n := len(x)
	if n == 0 {
		return
	}
	if !blasSafe(alpha) {
		simd.AxpbC64To(dst, x, alpha, beta)
		return
	}
	if &dst[0] == &x[0] {
		// Aliased: scale first, then shift.
		b.impl.Cscal(n, alpha, dst, 1)
		for i := range dst[:n] {
			dst[i] += beta
		}
		return
	}
	// dst = beta; dst += alpha*x
	simd.FillC64(dst[:n], beta)
	b.impl.Caxpy(n, alpha, x, 1, dst, 1)
}

// blasSafe reports whether the BLAS routines give the same result as plain
// arithmetic. Cscal zeroes x and Caxpy returns early when alpha is 0, which
// drops the NaN that 0*Inf or 0*NaN must produce.
func blasSafe(alpha complex64) bool {
	return alpha != 0
}
