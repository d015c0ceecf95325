// Package metrics provides Prometheus metrics for the osu! API client.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Default request latency buckets in milliseconds.
var defaultBuckets = []float64{25, 50, 100, 250, 500, 1000, 2500, 5000, 10000} //nolint:gochecknoglobals // immutable defaults

// Manager owns the Prometheus collectors of the client.
type Manager struct {
	namespace        string
	subsystem        string
	histogramBuckets []float64
	registry         prometheus.Registerer

	// Outbound request metrics
	requests        *prometheus.CounterVec
	requestDuration *prometheus.HistogramVec
	requestErrors   *prometheus.CounterVec

	// Decode metrics
	recordsDecoded *prometheus.CounterVec
}

// Global metrics manager instance.
var globalManager *Manager //nolint:gochecknoglobals // intentional global for singleton metrics manager

// Custom registry to avoid default Go metrics.
var customRegistry = prometheus.NewRegistry() //nolint:gochecknoglobals // intentional global for metrics registry

func init() { //nolint:gochecknoinits // intentional init for global metrics setup
	globalManager = NewManager(WithPrometheusRegistry(customRegistry))
}

// NewManager creates a metrics manager and registers its collectors.
func NewManager(opts ...Option) *Manager {
	m := &Manager{
		namespace:        "osu",
		subsystem:        "api_v1",
		histogramBuckets: defaultBuckets,
		registry:         prometheus.DefaultRegisterer,
	}

	for _, opt := range opts {
		opt(m)
	}

	m.initializeMetrics()

	return m
}

func (m *Manager) initializeMetrics() {
	auto := promauto.With(m.registry)

	m.requests = auto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: m.namespace,
			Subsystem: m.subsystem,
			Name:      "requests_total",
			Help:      "Total number of API requests by endpoint and HTTP status",
		},
		[]string{"endpoint", "status_code"},
	)

	m.requestDuration = auto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: m.namespace,
			Subsystem: m.subsystem,
			Name:      "request_duration_milliseconds",
			Help:      "API request round trip in milliseconds, body decode included",
			Buckets:   m.histogramBuckets,
		},
		[]string{"endpoint"},
	)

	m.requestErrors = auto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: m.namespace,
			Subsystem: m.subsystem,
			Name:      "request_errors_total",
			Help:      "Total number of failed API requests by endpoint and failure kind",
		},
		[]string{"endpoint", "error_type"},
	)

	m.recordsDecoded = auto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: m.namespace,
			Subsystem: m.subsystem,
			Name:      "records_decoded_total",
			Help:      "Total number of records normalized by entity",
		},
		[]string{"entity"},
	)
}

// RecordRequest counts a completed request.
func (m *Manager) RecordRequest(endpoint, statusCode string) {
	m.requests.WithLabelValues(endpoint, statusCode).Inc()
}

// RecordRequestDuration observes a request duration in milliseconds.
func (m *Manager) RecordRequestDuration(endpoint string, durationMs float64) {
	m.requestDuration.WithLabelValues(endpoint).Observe(durationMs)
}

// RecordRequestError counts a failed request.
func (m *Manager) RecordRequestError(endpoint, errorType string) {
	m.requestErrors.WithLabelValues(endpoint, errorType).Inc()
}

// RecordRecordsDecoded adds n normalized records of entity.
func (m *Manager) RecordRecordsDecoded(entity string, n int) {
	m.recordsDecoded.WithLabelValues(entity).Add(float64(n))
}

// Default returns the global manager registered on GetRegistry.
func Default() *Manager {
	return globalManager
}

// GetRegistry returns the custom Prometheus registry used by our metrics.
func GetRegistry() *prometheus.Registry {
	return customRegistry
}
