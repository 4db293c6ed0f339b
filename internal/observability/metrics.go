package observability

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	registerOnce      sync.Once
	apiRequestsTotal  *prometheus.CounterVec
	apiLatencySeconds *prometheus.HistogramVec
	apiErrorsTotal    *prometheus.CounterVec
	reportRunsTotal   *prometheus.CounterVec
	schemaResetsTotal prometheus.Counter
)

// RegisterMetrics initialises the Prometheus collectors used by the API.
func RegisterMetrics() {
	registerOnce.Do(func() {
		apiRequestsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "admitboard_requests_total",
			Help: "Total number of API requests served.",
		}, []string{"method", "route", "status"})

		apiLatencySeconds = prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "admitboard_latency_seconds",
			Help:    "Latency distribution for API requests.",
			Buckets: []float64{0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1.0, 2.0},
		}, []string{"method", "route"})

		apiErrorsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "admitboard_errors_total",
			Help: "Total number of error responses returned by the API.",
		}, []string{"method", "route", "status"})

		reportRunsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "admitboard_report_runs_total",
			Help: "Total number of catalog report executions, per report key.",
		}, []string{"report"})

		schemaResetsTotal = prometheus.NewCounter(prometheus.CounterOpts{
			Name: "admitboard_schema_resets_total",
			Help: "Total number of destructive schema resets performed.",
		})

		prometheus.MustRegister(apiRequestsTotal, apiLatencySeconds, apiErrorsTotal, reportRunsTotal, schemaResetsTotal)
	})
}

// APIRequests exposes the counter for API requests.
func APIRequests() *prometheus.CounterVec {
	RegisterMetrics()
	return apiRequestsTotal
}

// APILatency exposes the latency histogram for API requests.
func APILatency() *prometheus.HistogramVec {
	RegisterMetrics()
	return apiLatencySeconds
}

// APIErrors exposes the counter for API error responses.
func APIErrors() *prometheus.CounterVec {
	RegisterMetrics()
	return apiErrorsTotal
}

// ReportRuns exposes the per-report execution counter.
func ReportRuns() *prometheus.CounterVec {
	RegisterMetrics()
	return reportRunsTotal
}

// SchemaResets exposes the reset counter.
func SchemaResets() prometheus.Counter {
	RegisterMetrics()
	return schemaResetsTotal
}
