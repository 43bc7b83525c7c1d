package metrics

import (
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestMetrics_Counters(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewWithRegisterer(reg, "test")

	m.IncValidation("allowed")
	m.IncValidation("allowed")
	m.IncValidation("denied")
	m.AddScheduledLeads("normal", 3)
	m.IncSlotFallback()
	m.ObserveDBQuery("settings.get", errors.New("boom"), time.Millisecond)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.validationsTotal.WithLabelValues("allowed")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.validationsTotal.WithLabelValues("denied")))
	assert.Equal(t, 3.0, testutil.ToFloat64(m.scheduledLeadsTotal.WithLabelValues("normal")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.slotFallbacksTotal))
	assert.Equal(t, 1, testutil.CollectAndCount(m.dbQueryDuration))
}

func TestMetrics_NilReceiver(t *testing.T) {
	var m *Metrics

	assert.NotPanics(t, func() {
		m.IncValidation("failed")
		m.AddScheduledLeads("high", 1)
		m.IncSlotFallback()
		m.ObserveHTTPRequest("GET", "/", 200, time.Second)
		m.ObserveDBQuery("q", nil, time.Second)
		m.SetDBConnections(1, 1, 0)
	})
}
