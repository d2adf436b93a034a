package device

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	opsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "cvec_ops_total",
		Help: "Total number of vector operations executed",
	}, []string{"op", "backend"})

	elementsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "cvec_elements_total",
		Help: "Total number of complex elements processed",
	}, []string{"op", "backend"})

	opDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "cvec_op_duration_seconds",
		Help:    "Time spent in a single vector operation",
		Buckets: []float64{1e-7, 1e-6, 1e-5, 0.0001, 0.001, 0.01, 0.1},
	}, []string{"op", "backend"})
)
