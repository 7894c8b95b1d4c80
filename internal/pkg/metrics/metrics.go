// Package metrics holds the Prometheus collectors of the bakery service.
//
// A Metrics value owns its registry, so tests can build as many as they like
// without clashing on the global default registerer:
//
//	m := metrics.New()
//	e.Use(http.MetricsMiddleware(m))
//	e.GET("/metrics", echo.WrapHandler(m.Handler()))
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "bakery"

type Metrics struct {
	registry *prometheus.Registry

	requests         *prometheus.CounterVec
	requestDuration  *prometheus.HistogramVec
	requestsInFlight prometheus.Gauge
	ordersPlaced     *prometheus.CounterVec
	orderTransitions *prometheus.CounterVec
	outboxPublished  *prometheus.CounterVec
	breakerState     *prometheus.GaugeVec
}

func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total number of HTTP requests.",
		}, []string{"method", "path", "status"}),
		requestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "Duration of HTTP requests in seconds.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "path"}),
		requestsInFlight: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "requests_in_flight",
			Help:      "Number of HTTP requests currently being served.",
		}),
		ordersPlaced: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "orders",
			Name:      "placed_total",
			Help:      "Orders placed, by payment method.",
		}, []string{"payment_method"}),
		orderTransitions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "orders",
			Name:      "transitions_total",
			Help:      "Administrative order updates, by resulting order and payment status.",
		}, []string{"order_status", "payment_status"}),
		outboxPublished: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "outbox",
			Name:      "published_total",
			Help:      "Outbox messages handed to the broker, by event type and result.",
		}, []string{"event_type", "result"}),
		breakerState: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "outbox",
			Name:      "breaker_open",
			Help:      "1 while the publisher circuit breaker is not closed.",
		}, []string{"name"}),
	}

	m.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.requests,
		m.requestDuration,
		m.requestsInFlight,
		m.ordersPlaced,
		m.orderTransitions,
		m.outboxPublished,
		m.breakerState,
	)

	return m
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// Registry is exposed for tests.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// RequestStarted increments the in-flight gauge and returns the function
// that records the finished request.
func (m *Metrics) RequestStarted() func(method, path string, status int) {
	start := time.Now()
	m.requestsInFlight.Inc()

	return func(method, path string, status int) {
		m.requestsInFlight.Dec()
		m.requests.WithLabelValues(method, path, strconv.Itoa(status)).Inc()
		m.requestDuration.WithLabelValues(method, path).Observe(time.Since(start).Seconds())
	}
}

func (m *Metrics) OrderPlaced(paymentMethod string) {
	m.ordersPlaced.WithLabelValues(paymentMethod).Inc()
}

func (m *Metrics) OrderUpdated(orderStatus, paymentStatus string) {
	m.orderTransitions.WithLabelValues(orderStatus, paymentStatus).Inc()
}

func (m *Metrics) OutboxPublished(eventType string, err error) {
	result := "ok"
	if err != nil {
		result = "error"
	}
	m.outboxPublished.WithLabelValues(eventType, result).Inc()
}

func (m *Metrics) BreakerChanged(name string, open bool) {
	value := 0.0
	if open {
		value = 1
	}
	m.breakerState.WithLabelValues(name).Set(value)
}
