package main

import (
	"context"
	"fmt"
	"io"

	"github.com/apache/arrow-go/v18/arrow/memory"
	"github.com/rs/zerolog/log"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/23skdu/longbow-cvec/internal/columnar"
	"github.com/23skdu/longbow-cvec/internal/cvec"
	"github.com/23skdu/longbow-cvec/internal/device"
	"github.com/23skdu/longbow-cvec/internal/simd"
)

var tracer = otel.Tracer("cvec-demo")

// Demo constants: scale factor, then y = 2x + (1-1i).
const (
	scaleFactor complex64 = 0.5 + 0.25i
	axpbA       complex64 = 2
	axpbB       complex64 = 1 - 1i
)

// Config selects the vector length and compute backend.
type Config struct {
	Length  int
	Backend string
}

// Result holds the vectors produced by one demo run.
type Result struct {
	X    []complex64 // scaled input
	Y    []complex64 // 2x + (1-1i)
	Z    []complex64 // x * y
	Dotu complex64 // sum of x[i]*y[i], equal to the sum of z
}

// Run builds x[k] = k + k*i, scales it in place, derives y and z and writes
// each stage to w.
func Run(ctx context.Context, cfg Config, w io.Writer) (*Result, error) {
	if cfg.Length < 0 {
		return nil, fmt.Errorf("invalid length %d", cfg.Length)
	}

	backend, err := device.NewBackend(cfg.Backend)
	if err != nil {
		return nil, fmt.Errorf("failed to create backend: %w", err)
	}
	k := cvec.New(device.NewInstrumentedBackend(backend))

	ctx, span := tracer.Start(ctx, "demo")
	defer span.End()
	span.SetAttributes(
		attribute.Int("length", cfg.Length),
		attribute.String("backend", backend.Name()),
	)

	x := make([]complex64, cfg.Length)
	for i := range x {
		x[i] = complex(float32(i), float32(i))
	}
	fmt.Fprintln(w, formatVector(x, ",\n"))
	fmt.Fprintf(w, "\ntype: complex64\nlength: %s\n\n", newPrinter().Sprintf("%d", len(x)))

	step(ctx, "scale_inplace", len(x), func() {
		k.ScaleInPlace(x, scaleFactor)
	})
	fmt.Fprintln(w, "scaled x:", formatVector(x, " "))

	var y []complex64
	step(ctx, "axpb", len(x), func() {
		y = k.Axpb(x, axpbA, axpbB)
	})
	fmt.Fprintln(w, "y = 2x + (1-1j):", formatVector(y, " "))

	var z []complex64
	step(ctx, "mul", len(x), func() {
		z, err = k.Mul(x, y)
	})
	if err != nil {
		span.RecordError(err)
		return nil, fmt.Errorf("mul: %w", err)
	}
	fmt.Fprintln(w, "z = x*y:", formatVector(z, " "))

	rb := columnar.BuildRecordBatch(memory.NewGoAllocator(), "z", z)
	defer rb.Release()
	log.Debug().Int64("rows", rb.NumRows()).Str("schema", rb.Schema().String()).Msg("Built result batch")

	return &Result{
		X:    x,
		Y:    y,
		Z:    z,
		Dotu: simd.DotuC64(x, y),
	}, nil
}

func step(ctx context.Context, name string, n int, fn func()) {
	_, span := tracer.Start(ctx, name, trace.WithAttributes(attribute.Int("elements", n)))
	defer span.End()
	fn()
	log.Debug().Str("op", name).Int("elements", n).Msg("Step complete")
}
