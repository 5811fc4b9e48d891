package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics groups the application's Prometheus collectors. Collectors are
// registered on the given registerer so tests can use a private registry.
type Metrics struct {
	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec
	AuthAttempts        *prometheus.CounterVec
	DomainOperations    *prometheus.CounterVec
}

// New registers the collectors under prefix, e.g. "taxbooks".
func New(reg prometheus.Registerer, prefix string) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		HTTPRequestsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: prefix + "_http_requests_total",
				Help: "Total number of HTTP requests",
			},
			[]string{"method", "path", "status"},
		),
		HTTPRequestDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    prefix + "_http_request_duration_seconds",
				Help:    "Duration of HTTP requests in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "path", "status"},
		),
		AuthAttempts: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: prefix + "_auth_attempts_total",
				Help: "Login and registration attempts by outcome",
			},
			[]string{"kind", "outcome"},
		),
		DomainOperations: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: prefix + "_domain_operations_total",
				Help: "Successful create/update operations per entity",
			},
			[]string{"entity", "operation"},
		),
	}
}

func (m *Metrics) ObserveHTTPRequest(method, path, status string, latency time.Duration) {
	if m == nil {
		return
	}
	m.HTTPRequestsTotal.WithLabelValues(method, path, status).Inc()
	m.HTTPRequestDuration.WithLabelValues(method, path, status).Observe(latency.Seconds())
}

// RecordAuthAttempt counts a login or register attempt; outcome is "success" or "failure".
func (m *Metrics) RecordAuthAttempt(kind, outcome string) {
	if m == nil {
		return
	}
	m.AuthAttempts.WithLabelValues(kind, outcome).Inc()
}

func (m *Metrics) RecordOperation(entity, operation string) {
	if m == nil {
		return
	}
	m.DomainOperations.WithLabelValues(entity, operation).Inc()
}
