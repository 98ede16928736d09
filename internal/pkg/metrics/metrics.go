package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics owns its registry so that several instances (one per test app) can coexist.
type Metrics struct {
	registry *prometheus.Registry

	httpRequests        *prometheus.CounterVec
	httpDuration        *prometheus.HistogramVec
	bookingsCreated     prometheus.Counter
	bookingConflicts    *prometheus.CounterVec
	bookingTransitions  *prometheus.CounterVec
	ratingMutations     *prometheus.CounterVec
	recomputeFailures   prometheus.Counter
	sportCounterFailure prometheus.Counter
}

func New(namespace string) *Metrics {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	m := &Metrics{
		registry: reg,
		httpRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "HTTP requests by method, route and status code.",
		}, []string{"method", "route", "status"}),
		httpDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route"}),
		bookingsCreated: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "bookings_created_total",
			Help:      "Bookings admitted by the reservation engine.",
		}),
		bookingConflicts: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "booking_conflicts_total",
			Help:      "Booking requests rejected because the slot was taken.",
		}, []string{"source"}),
		bookingTransitions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "booking_transitions_total",
			Help:      "Booking lifecycle transitions by operation and target status.",
		}, []string{"operation", "status"}),
		ratingMutations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "rating_mutations_total",
			Help:      "Rating writes by operation.",
		}, []string{"operation"}),
		recomputeFailures: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "rating_recompute_failures_total",
			Help:      "Venue aggregate recomputations that failed and left the aggregate stale.",
		}),
		sportCounterFailure: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "sport_booking_counter_failures_total",
			Help:      "Best-effort sport booking counter increments that failed.",
		}),
	}

	reg.MustRegister(
		m.httpRequests,
		m.httpDuration,
		m.bookingsCreated,
		m.bookingConflicts,
		m.bookingTransitions,
		m.ratingMutations,
		m.recomputeFailures,
		m.sportCounterFailure,
	)
	return m
}

// NewNop returns an instance whose registry is never exposed.
func NewNop() *Metrics {
	return New("nop")
}

func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

func (m *Metrics) ObserveHTTP(method, route string, status int, elapsed time.Duration) {
	m.httpRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	m.httpDuration.WithLabelValues(method, route).Observe(elapsed.Seconds())
}

func (m *Metrics) BookingCreated() {
	m.bookingsCreated.Inc()
}

// BookingConflict: source is "check" for the overlap query and "constraint" for a lost unique race.
func (m *Metrics) BookingConflict(source string) {
	m.bookingConflicts.WithLabelValues(source).Inc()
}

func (m *Metrics) BookingTransition(operation, status string) {
	m.bookingTransitions.WithLabelValues(operation, status).Inc()
}

func (m *Metrics) BookingTransitionN(operation, status string, n int64) {
	m.bookingTransitions.WithLabelValues(operation, status).Add(float64(n))
}

func (m *Metrics) RatingMutation(operation string) {
	m.ratingMutations.WithLabelValues(operation).Inc()
}

func (m *Metrics) RecomputeFailed() {
	m.recomputeFailures.Inc()
}

func (m *Metrics) SportCounterFailed() {
	m.sportCounterFailure.Inc()
}
