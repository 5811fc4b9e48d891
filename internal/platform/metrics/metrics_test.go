package metrics_test

import (
	"testing"
	"time"

	"github.com/SscSPs/taxbooks_app/internal/platform/metrics"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestMetrics_Counters(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := metrics.New(reg, "taxbooks_test")

	m.ObserveHTTPRequest("GET", "/api/businesses", "200", 15*time.Millisecond)
	m.ObserveHTTPRequest("GET", "/api/businesses", "200", 5*time.Millisecond)
	m.RecordAuthAttempt("login", "failure")
	m.RecordOperation("invoice", "create")

	assert.Equal(t, 2.0, testutil.ToFloat64(m.HTTPRequestsTotal.WithLabelValues("GET", "/api/businesses", "200")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.AuthAttempts.WithLabelValues("login", "failure")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.DomainOperations.WithLabelValues("invoice", "create")))
}

func TestMetrics_NilIsNoop(t *testing.T) {
	var m *metrics.Metrics
	assert.NotPanics(t, func() {
		m.ObserveHTTPRequest("GET", "/", "200", time.Millisecond)
		m.RecordAuthAttempt("login", "success")
		m.RecordOperation("user", "update")
	})
}
