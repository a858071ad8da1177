// Package observability exposes the gateway's Prometheus metrics.
package observability

import (
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "gatekeeper"

// Metrics holds the gateway collectors. It implements response.Recorder.
type Metrics struct {
	responses        *prometheus.CounterVec
	delayedResponses prometheus.Counter
	scrubbedBodies   prometheus.Counter
	httpRequests     *prometheus.CounterVec
	httpDuration     *prometheus.HistogramVec

	gatherer prometheus.Gatherer
}

var (
	defaultOnce    sync.Once
	defaultMetrics *Metrics
)

// Default returns the collectors registered with the global Prometheus
// registry. Registration happens on the first call only.
func Default() *Metrics {
	defaultOnce.Do(func() {
		defaultMetrics = NewMetrics(prometheus.DefaultRegisterer, prometheus.DefaultGatherer)
	})
	return defaultMetrics
}

// NewMetrics creates the collectors and registers them with reg. gatherer
// is what [Metrics.Handler] exposes. It panics if a collector is already
// registered with reg.
func NewMetrics(reg prometheus.Registerer, gatherer prometheus.Gatherer) *Metrics {
	m := &Metrics{
		responses: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "responses_total",
				Help:      "Responses emitted by the response PDK, by status code.",
			},
			[]string{"status"},
		),
		delayedResponses: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "delayed_responses_total",
			Help:      "Exits recorded in delay mode for later flushing.",
		}),
		scrubbedBodies: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "scrubbed_error_bodies_total",
			Help:      "500 response bodies replaced by the generic error message.",
		}),
		httpRequests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "http",
				Name:      "requests_total",
				Help:      "Total HTTP requests served by the proxy listener.",
			},
			[]string{"method", "status"},
		),
		httpDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Subsystem: "http",
				Name:      "request_duration_seconds",
				Help:      "HTTP request duration in seconds.",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"method"},
		),
		gatherer: gatherer,
	}

	reg.MustRegister(m.responses, m.delayedResponses, m.scrubbedBodies, m.httpRequests, m.httpDuration)
	return m
}

// ResponseSent counts an emitted response.
func (m *Metrics) ResponseSent(status int) {
	m.responses.WithLabelValues(strconv.Itoa(status)).Inc()
}

// ResponseDelayed counts a deferred exit.
func (m *Metrics) ResponseDelayed() {
	m.delayedResponses.Inc()
}

// ErrorBodyScrubbed counts a scrubbed 500 body.
func (m *Metrics) ErrorBodyScrubbed() {
	m.scrubbedBodies.Inc()
}

// RecordHTTPRequest records one request served by the proxy listener.
func (m *Metrics) RecordHTTPRequest(method string, status int, duration time.Duration) {
	m.httpRequests.WithLabelValues(method, strconv.Itoa(status)).Inc()
	m.httpDuration.WithLabelValues(method).Observe(duration.Seconds())
}

// Handler serves the gathered metrics in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.gatherer, promhttp.HandlerOpts{})
}
