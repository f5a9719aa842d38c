package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestMetrics_NilReceiverIsNoop(t *testing.T) {
	var m *Metrics

	assert.NotPanics(t, func() {
		m.ObserveHTTPRequest("GET", "/x", 200, time.Millisecond)
		m.ObserveDBQuery("query", time.Millisecond)
		m.SetDBConnections(1, 1, 0)
		m.IncSlotCache("hit")
		m.IncSlotLock("acquired")
		m.IncStoreFallback("get")
		m.IncBookingOutcome("confirmed")
	})
}

func TestMetrics_Counters(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewWithRegistry(reg, "ground-booking")

	m.IncSlotCache("hit")
	m.IncSlotCache("hit")
	m.IncSlotCache("miss")
	m.IncSlotLock("conflict")

	assert.Equal(t, 2.0, testutil.ToFloat64(m.slotCacheRequests.WithLabelValues("ground-booking", "hit")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.slotCacheRequests.WithLabelValues("ground-booking", "miss")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.slotLocks.WithLabelValues("ground-booking", "conflict")))
}
