// Package metrics holds the prometheus collectors of the storefront.
package metrics

import (
	"net/http"

	"storefront/internal/core/domain/model/order"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "storefront"

// ServerMetrics counts HTTP requests by route and status and observes their
// latency.
type ServerMetrics struct {
	Requests  *prometheus.CounterVec
	LatencyMS *prometheus.HistogramVec
}

func NewServerMetrics(reg prometheus.Registerer) *ServerMetrics {
	requests := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "http",
		Name:      "requests_total",
		Help:      "Total number of HTTP requests.",
	}, []string{"handler", "status"})
	latency := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "http",
		Name:      "request_duration_ms",
		Help:      "HTTP request latency in milliseconds.",
		Buckets:   []float64{5, 10, 25, 50, 100, 250, 500, 1000, 2500, 5000},
	}, []string{"handler"})

	reg.MustRegister(requests, latency)
	return &ServerMetrics{Requests: requests, LatencyMS: latency}
}

// TransitionCounter counts committed order status transitions.
type TransitionCounter struct {
	transitions *prometheus.CounterVec
}

func NewTransitionCounter(reg prometheus.Registerer) *TransitionCounter {
	transitions := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "order_transitions_total",
		Help:      "Committed order status transitions.",
	}, []string{"from", "to"})

	reg.MustRegister(transitions)
	return &TransitionCounter{transitions: transitions}
}

func (c *TransitionCounter) ObserveTransition(from, to order.Status) {
	c.transitions.WithLabelValues(from.String(), to.String()).Inc()
}

// OutboxMetrics tracks the relay.
type OutboxMetrics struct {
	Published prometheus.Counter
	Failed    prometheus.Counter
}

func NewOutboxMetrics(reg prometheus.Registerer) *OutboxMetrics {
	published := prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "outbox",
		Name:      "published_total",
		Help:      "Outbox messages published to the broker.",
	})
	failed := prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "outbox",
		Name:      "publish_failures_total",
		Help:      "Outbox messages that failed to publish and stay pending.",
	})

	reg.MustRegister(published, failed)
	return &OutboxMetrics{Published: published, Failed: failed}
}

// Handler exposes the metrics gathered by g.
func Handler(g prometheus.Gatherer) http.Handler {
	return promhttp.HandlerFor(g, promhttp.HandlerOpts{})
}

func (m *OutboxMetrics) ObserveRelay(published, failed int) {
	m.Published.Add(float64(published))
	m.Failed.Add(float64(failed))
}
