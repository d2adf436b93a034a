package main

import (
	"context"
	"flag"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.17.0"

	"github.com/23skdu/longbow-cvec/internal/device"
)

var (
	length      = flag.Int("n", 8, "Number of elements in the demo vector")
	backendName = flag.String("backend", device.BackendCPU, "Compute backend (cpu, blas)")
	logLevel    = flag.String("log-level", "info", "Log level (debug, info, warn, error)")
	enableOTel  = flag.Bool("otel", false, "Enable OpenTelemetry tracing (stdout)")
	dumpMetrics = flag.Bool("metrics", false, "Log collected metrics before exit")
)

func main() {
	// Initialize logging
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}).With().Caller().Logger()

	flag.Parse()

	level, err := zerolog.ParseLevel(*logLevel)
	if err != nil {
		log.Fatal().Err(err).Str("level", *logLevel).Msg("Invalid log level")
	}
	zerolog.SetGlobalLevel(level)

	if *enableOTel {
		shutdown, err := initTracer()
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to initialize tracer")
		}
		defer func() {
			if err := shutdown(context.Background()); err != nil {
				log.Warn().Err(err).Msg("Failed to shut down tracer")
			}
		}()
	}

	f := device.DetectFeatures()
	log.Debug().
		Str("arch", f.Architecture).
		Bool("avx2", f.HasAVX2).
		Bool("avx512", f.HasAVX512).
		Bool("neon", f.HasNEON).
		Msg("Host features")

	cfg := Config{
		Length:  *length,
		Backend: *backendName,
	}
	res, err := Run(context.Background(), cfg, os.Stdout)
	if err != nil {
		log.Fatal().Err(err).Msg("Demo failed")
	}
	log.Info().
		Int("n", len(res.X)).
		Str("backend", cfg.Backend).
		Str("dotu", formatScalar(res.Dotu)).
		Msg("Demo complete")

	if *dumpMetrics {
		if err := logMetrics(); err != nil {
			log.Warn().Err(err).Msg("Failed to gather metrics")
		}
	}
}

func initTracer() (func(context.Context) error, error) {
	exporter, err := stdouttrace.New(stdouttrace.WithPrettyPrint())
	if err != nil {
		return nil, err
	}

	tp := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(resource.NewWithAttributes(
			semconv.SchemaURL,
			semconv.ServiceNameKey.String("cvec"),
		)),
	)
	otel.SetTracerProvider(tp)
	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(propagation.TraceContext{}, propagation.Baggage{}))

	return tp.Shutdown, nil
}
