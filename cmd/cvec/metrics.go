package main

import (
	"strings"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog/log"
)

// logMetrics writes every cvec_* counter sample to the log.
func logMetrics() error {
	families, err := prometheus.DefaultGatherer.Gather()
	if err != nil {
		return err
	}
	for _, mf := range families {
		if !strings.HasPrefix(mf.GetName(), "cvec_") {
			continue
		}
		for _, m := range mf.GetMetric() {
			ev := log.Info().Str("metric", mf.GetName())
			for _, lp := range m.GetLabel() {
				ev = ev.Str(lp.GetName(), lp.GetValue())
			}
			switch {
			case m.GetCounter() != nil:
				ev = ev.Float64("value", m.GetCounter().GetValue())
			case m.GetHistogram() != nil:
				ev = ev.Uint64("count", m.GetHistogram().GetSampleCount()).
					Float64("sum", m.GetHistogram().GetSampleSum())
			}
			ev.Msg("Metric")
		}
	}
	return nil
}
