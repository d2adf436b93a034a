package device

import (
	"time"
)

var _ Backend = (*InstrumentedBackend)(nil)

// Operation labels used in metrics.
const (
	OpScale = "scale"
	OpAxpb  = "axpb"
	OpMul   = "mul"
)

// InstrumentedBackend records Prometheus metrics around another backend.
type InstrumentedBackend struct {
	inner Backend
}

func NewInstrumentedBackend(inner Backend) *InstrumentedBackend {
	return &InstrumentedBackend{inner: inner}
}

func (b *InstrumentedBackend) Name() string {
	return b.inner.Name()
}

func (b *InstrumentedBackend) Scale(x []complex64, s complex64) {
	defer b.observe(OpScale, len(x), time.Now())
	b.inner.Scale(x, s)
}

func (b *InstrumentedBackend) ScaleTo(dst, x []complex64, s complex64) {
	defer b.observe(OpScale, len(x), time.Now())
	b.inner.ScaleTo(dst, x, s)
}

func (b *InstrumentedBackend) Axpb(dst, x []complex64, alpha, beta complex64) {
	defer b.observe(OpAxpb, len(x), time.Now())
	b.inner.Axpb(dst, x, alpha, beta)
}

func (b *InstrumentedBackend) Mul(dst, x, y []complex64) {
	defer b.observe(OpMul, len(x), time.Now())
	b.inner.Mul(dst, x, y)
}

func (b *InstrumentedBackend) observe(op string, n int, start time.Time) {
	name := b.inner.Name()
	opsTotal.WithLabelValues(op, name).Inc()
	elementsTotal.WithLabelValues(op, name).Add(float64(n))
	opDuration.WithLabelValues(op, name).Observe(time.Since(start).Seconds())
}
