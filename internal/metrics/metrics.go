package metrics

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Collector holds the Prometheus metrics exposed by the API
type Collector struct {
	registry *prometheus.Registry

	requestsTotal    *prometheus.CounterVec
	requestDuration  *prometheus.HistogramVec
	travelAPITotal   *prometheus.CounterVec
	bookingsTotal    *prometheus.CounterVec
	paymentsTotal    *prometheus.CounterVec
	activeRequests   prometheus.Gauge
}

// NewCollector creates and registers all metrics on a fresh registry
func NewCollector() *Collector {
	registry := prometheus.NewRegistry()

	c := &Collector{
		registry: registry,
		requestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total HTTP requests by method, route and status code.",
		}, []string{"method", "route", "status"}),
		requestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request latency by method and route.",
			Buckets: prometheus.DefBuckets,
		}, []string{"method", "route"}),
		travelAPITotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "travel_api_requests_total",
			Help: "Requests to the external travel API by operation and outcome.",
		}, []string{"operation", "outcome"}),
		bookingsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "bookings_total",
			Help: "Booking lifecycle transitions by status.",
		}, []string{"status"}),
		paymentsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "payments_total",
			Help: "Payment events by outcome.",
		}, []string{"outcome"}),
		activeRequests: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "http_requests_in_flight",
			Help: "Number of HTTP requests currently being served.",
		}),
	}

	registry.MustRegister(
		c.requestsTotal,
		c.requestDuration,
		c.travelAPITotal,
		c.bookingsTotal,
		c.paymentsTotal,
		c.activeRequests,
	)

	return c
}

// ObserveTravelAPI records a call to the external travel API
func (c *Collector) ObserveTravelAPI(operation, outcome string) {
	c.travelAPITotal.WithLabelValues(operation, outcome).Inc()
}

// ObserveBooking records a booking status transition
func (c *Collector) ObserveBooking(status string) {
	c.bookingsTotal.WithLabelValues(status).Inc()
}

// ObservePayment records a payment event
func (c *Collector) ObservePayment(outcome string) {
	c.paymentsTotal.WithLabelValues(outcome).Inc()
}

// Handler returns the /metrics scrape endpoint
func (c *Collector) Handler() http.Handler {
	return promhttp.HandlerFor(c.registry, promhttp.HandlerOpts{})
}

// Middleware instruments request count, latency and in-flight gauge
func (c *Collector) Middleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			route := normalizeRoute(r.URL.Path)

			c.activeRequests.Inc()
			defer c.activeRequests.Dec()

			wrapped := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
			next.ServeHTTP(wrapped, r)

			c.requestsTotal.WithLabelValues(r.Method, route, strconv.Itoa(wrapped.status)).Inc()
			c.requestDuration.WithLabelValues(r.Method, route).Observe(time.Since(start).Seconds())
		})
	}
}

// normalizeRoute collapses resource IDs so label cardinality stays
// bounded: /api/bookings/abc-123 becomes /api/bookings/{id}.
func normalizeRoute(path string) string {
	segments := strings.Split(strings.Trim(path, "/"), "/")
	if len(segments) < 2 || segments[0] != "api" {
		return "/" + segments[0]
	}

	// Named sub-resources keep their own route
	if len(segments) >= 3 {
		switch segments[2] {
		case "search", "category", "create-payment-intent", "webhook", "my-packages", "itinerary", "status":
			return "/api/" + segments[1] + "/" + segments[2]
		}
		return "/api/" + segments[1] + "/{id}"
	}

	return "/api/" + segments[1]
}

// statusRecorder captures the response status code
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (sr *statusRecorder) WriteHeader(code int) {
	sr.status = code
	sr.ResponseWriter.WriteHeader(code)
}
