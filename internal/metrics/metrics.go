// Package metrics exposes the service's Prometheus instrumentation.
package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	ProjectionsComputed = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "lifebattery_projections_computed_total",
		Help: "Life projections computed, by variant (current, optimal, improved).",
	}, []string{"variant"})

	AggregationsComputed = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "lifebattery_aggregations_computed_total",
		Help: "Period impact aggregations computed, by period type.",
	}, []string{"period"})

	SolverFallbacks = promauto.NewCounter(prometheus.CounterOpts{
		Name: "lifebattery_solver_fallbacks_total",
		Help: "Neutral-point searches that returned the calibrated fallback value.",
	})

	ClampedSamples = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "lifebattery_clamped_samples_total",
		Help: "Samples clamped to physiological bounds before evaluation, by metric kind.",
	}, []string{"kind"})

	RequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "lifebattery_http_request_duration_seconds",
		Help:    "HTTP request latency by method, route and status.",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "route", "status"})
)

// ObserveRequest records one HTTP request.
func ObserveRequest(method, route string, status int, elapsed time.Duration) {
	RequestDuration.WithLabelValues(method, route, strconv.Itoa(status)).Observe(elapsed.Seconds())
}
