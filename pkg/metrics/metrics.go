// Package metrics defines the Prometheus metric collectors used across the
// sorting services and exposes an HTTP handler for scraping.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds all Prometheus collectors for the sorting services.
type Metrics struct {
	HTTPRequestsTotal    *prometheus.CounterVec
	HTTPRequestDuration  *prometheus.HistogramVec
	HTTPRequestsInFlight prometheus.Gauge
	SortRequestsTotal    *prometheus.CounterVec
	SortDuration         prometheus.Histogram
	SortBatchSize        prometheus.Histogram
	NamesSortedTotal     prometheus.Counter
	CacheHitsTotal       prometheus.Counter
	CacheMissesTotal     prometheus.Counter
	JobsConsumedTotal    *prometheus.CounterVec
	CodeTableSize        prometheus.Gauge
	CompoundSurnames     prometheus.Gauge
}

// New creates and registers all Prometheus metrics.
func New() *Metrics {
	m := &Metrics{
		HTTPRequestsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "http_requests_total",
				Help: "Total number of HTTP requests by method, path, and status.",
			},
			[]string{"method", "path", "status"},
		),
		HTTPRequestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "http_request_duration_seconds",
				Help:    "HTTP request latency in seconds.",
				Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5},
			},
			[]string{"method", "path"},
		),
		HTTPRequestsInFlight: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Name: "http_requests_in_flight",
				Help: "Number of HTTP requests currently being processed.",
			},
		),
		SortRequestsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "sort_requests_total",
				Help: "Total sort operations by outcome (ok, empty_name, error).",
			},
			[]string{"outcome"},
		),
		SortDuration: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "sort_duration_seconds",
				Help:    "Wall-clock time per sort operation in seconds.",
				Buckets: []float64{0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1, 5},
			},
		),
		SortBatchSize: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "sort_batch_size",
				Help:    "Number of names per sort operation.",
				Buckets: []float64{1, 10, 50, 100, 500, 1000, 5000, 10000},
			},
		),
		NamesSortedTotal: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "names_sorted_total",
				Help: "Total names sorted across all operations.",
			},
		),
		CacheHitsTotal: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "cache_hits_total",
				Help: "Total number of cache hits.",
			},
		),
		CacheMissesTotal: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "cache_misses_total",
				Help: "Total number of cache misses.",
			},
		),
		JobsConsumedTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "sort_jobs_consumed_total",
				Help: "Total sort jobs consumed from Kafka by status.",
			},
			[]string{"status"},
		),
		CodeTableSize: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Name: "code_table_size",
				Help: "Number of characters in the loaded stroke-code table.",
			},
		),
		CompoundSurnames: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Name: "compound_surnames_size",
				Help: "Number of entries in the compound surname set.",
			},
		),
	}

	prometheus.MustRegister(
		m.HTTPRequestsTotal,
		m.HTTPRequestDuration,
		m.HTTPRequestsInFlight,
		m.SortRequestsTotal,
		m.SortDuration,
		m.SortBatchSize,
		m.NamesSortedTotal,
		m.CacheHitsTotal,
		m.CacheMissesTotal,
		m.JobsConsumedTotal,
		m.CodeTableSize,
		m.CompoundSurnames,
	)

	return m
}

// Handler returns the Prometheus scrape HTTP handler.
func Handler() http.Handler {
	return promhttp.Handler()
}
