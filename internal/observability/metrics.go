package observability

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds the Prometheus collectors of the service.
type Metrics struct {
	registry        *prometheus.Registry
	requestCount    *prometheus.CounterVec
	requestDuration *prometheus.HistogramVec
	errorCount      *prometheus.CounterVec
	scopeFilter     *prometheus.CounterVec
}

// NewMetrics registers collectors on a private registry.
func NewMetrics(service string) *Metrics {
	labels := prometheus.Labels{"service": service}
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		requestCount: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "http_requests_total",
			Help:        "Number of HTTP requests by route, method and status.",
			ConstLabels: labels,
		}, []string{"path", "method", "status"}),
		requestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "http_request_duration_seconds",
			Help:        "HTTP request latency.",
			ConstLabels: labels,
			Buckets:     prometheus.DefBuckets,
		}, []string{"path", "method"}),
		errorCount: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "http_errors_total",
			Help:        "Number of error responses by error code.",
			ConstLabels: labels,
		}, []string{"path", "method", "code"}),
		scopeFilter: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "scope_filter_records_total",
			Help:        "Records passed to and kept by the data scope filter.",
			ConstLabels: labels,
		}, []string{"collection", "scope", "result"}),
	}
	m.registry.MustRegister(m.requestCount, m.requestDuration, m.errorCount, m.scopeFilter)
	return m
}

// RecordRequest increments counters for requests.
func (m *Metrics) RecordRequest(path, method string, status int, duration time.Duration) {
	if m == nil {
		return
	}
	m.requestCount.WithLabelValues(path, method, strconv.Itoa(status)).Inc()
	m.requestDuration.WithLabelValues(path, method).Observe(duration.Seconds())
}

// RecordError increments error counters.
func (m *Metrics) RecordError(path, method, code string) {
	if m == nil {
		return
	}
	m.errorCount.WithLabelValues(path, method, code).Inc()
}

// RecordScopeFilter tracks how many records a scope filter saw and kept.
func (m *Metrics) RecordScopeFilter(collection, scope string, in, out int) {
	if m == nil {
		return
	}
	m.scopeFilter.WithLabelValues(collection, scope, "in").Add(float64(in))
	m.scopeFilter.WithLabelValues(collection, scope, "kept").Add(float64(out))
}

// Handler exposes the registry in the Prometheus text format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// Registry returns the underlying registry.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}
