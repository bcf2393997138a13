package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	PipelineOutcomes = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "foodvoice_pipeline_outcomes_total",
			Help: "Transcript pipeline outcomes by status",
		},
		[]string{"status"},
	)

	Placements = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "foodvoice_placements_total",
			Help: "Order placements by result status and channel",
		},
		[]string{"status", "channel"},
	)

	CollaboratorLatency = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "foodvoice_collaborator_latency_seconds",
			Help:    "Latency of external collaborator calls",
			Buckets: prometheus.ExponentialBuckets(0.05, 2, 10),
		},
		[]string{"collaborator", "result"},
	)

	StoreFallbacks = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "foodvoice_store_fallbacks_total",
			Help: "Profile store operations served by the in-process fallback",
		},
	)
)

// ObserveCall records one collaborator call that started at start.
func ObserveCall(collaborator string, start time.Time, err error) {
	result := "ok"
	if err != nil {
		result = "error"
	}
	CollaboratorLatency.WithLabelValues(collaborator, result).Observe(time.Since(start).Seconds())
}
