package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the service's prometheus collectors.
// Every recording method is safe to call on a nil *Metrics, which disables recording.
type Metrics struct {
	service string

	httpRequestsTotal   *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec

	dbQueryDuration *prometheus.HistogramVec
	dbConnections   *prometheus.GaugeVec

	slotCacheRequests *prometheus.CounterVec
	slotLocks         *prometheus.CounterVec
	storeFallbacks    *prometheus.CounterVec
	bookingOutcomes   *prometheus.CounterVec
}

// New registers collectors in the default prometheus registry.
func New(serviceName string) *Metrics {
	return NewWithRegistry(prometheus.DefaultRegisterer, serviceName)
}

// NewWithRegistry registers collectors in reg.
func NewWithRegistry(reg prometheus.Registerer, serviceName string) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		service: serviceName,

		httpRequestsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		}, []string{"service", "method", "path", "status"}),

		httpRequestDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		}, []string{"service", "method", "path"}),

		dbQueryDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "db_query_duration_seconds",
			Help:    "Database query duration in seconds",
			Buckets: []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1},
		}, []string{"service", "operation"}),

		dbConnections: factory.NewGaugeVec(prometheus.GaugeOpts{
			Name: "db_connections",
			Help: "Database connection pool state",
		}, []string{"service", "state"}),

		slotCacheRequests: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "slot_cache_requests_total",
			Help: "Availability cache lookups by result (hit, miss)",
		}, []string{"service", "result"}),

		slotLocks: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "slot_lock_acquisitions_total",
			Help: "Slot reservation lock attempts by result (acquired, conflict, error)",
		}, []string{"service", "result"}),

		storeFallbacks: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "kvstore_fallbacks_total",
			Help: "Calls served by the in-process store because the primary store failed",
		}, []string{"service", "operation"}),

		bookingOutcomes: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "booking_outcomes_total",
			Help: "Booking attempts by final state (confirmed, rejected)",
		}, []string{"service", "outcome"}),
	}
}

func (m *Metrics) ObserveHTTPRequest(method, path string, status int, duration time.Duration) {
	if m == nil {
		return
	}
	m.httpRequestsTotal.WithLabelValues(m.service, method, path, strconv.Itoa(status)).Inc()
	m.httpRequestDuration.WithLabelValues(m.service, method, path).Observe(duration.Seconds())
}

func (m *Metrics) ObserveDBQuery(operation string, duration time.Duration) {
	if m == nil {
		return
	}
	m.dbQueryDuration.WithLabelValues(m.service, operation).Observe(duration.Seconds())
}

func (m *Metrics) SetDBConnections(open, inUse, idle int) {
	if m == nil {
		return
	}
	m.dbConnections.WithLabelValues(m.service, "open").Set(float64(open))
	m.dbConnections.WithLabelValues(m.service, "in_use").Set(float64(inUse))
	m.dbConnections.WithLabelValues(m.service, "idle").Set(float64(idle))
}

func (m *Metrics) IncSlotCache(result string) {
	if m == nil {
		return
	}
	m.slotCacheRequests.WithLabelValues(m.service, result).Inc()
}

func (m *Metrics) IncSlotLock(result string) {
	if m == nil {
		return
	}
	m.slotLocks.WithLabelValues(m.service, result).Inc()
}

func (m *Metrics) IncStoreFallback(operation string) {
	if m == nil {
		return
	}
	m.storeFallbacks.WithLabelValues(m.service, operation).Inc()
}

func (m *Metrics) IncBookingOutcome(outcome string) {
	if m == nil {
		return
	}
	m.bookingOutcomes.WithLabelValues(m.service, outcome).Inc()
}
