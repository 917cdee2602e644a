package server

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/agbru/humanize/internal/metrics"
)

// Metrics holds the HTTP-level collectors. They are registered on the
// engine's Recorder so that /metrics serves both.
type Metrics struct {
	activeRequests  prometheus.Gauge
	requestsTotal   *prometheus.CounterVec
	requestDuration *prometheus.HistogramVec
	handler         http.Handler
}

// NewMetrics registers the HTTP collectors on rec. A nil rec gets a fresh
// Recorder.
func NewMetrics(rec *metrics.Recorder) *Metrics {
	if rec == nil {
		rec = metrics.NewRecorder()
	}
	m := &Metrics{
		activeRequests: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "humanize_active_requests",
			Help: "Requests currently being served.",
		}),
		requestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "humanize_requests_total",
			Help: "Requests served, by route and status code.",
		}, []string{"route", "code"}),
		requestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "humanize_request_duration_seconds",
			Help:    "Request latency by route.",
			Buckets: prometheus.DefBuckets,
		}, []string{"route"}),
		handler: rec.Handler(),
	}
	rec.Registerer().MustRegister(m.activeRequests, m.requestsTotal, m.requestDuration)
	return m
}

// IncrementActiveRequests marks a request as started.
func (m *Metrics) IncrementActiveRequests() { m.activeRequests.Inc() }

// DecrementActiveRequests marks a request as finished.
func (m *Metrics) DecrementActiveRequests() { m.activeRequests.Dec() }

// ObserveRequest records one finished request.
func (m *Metrics) ObserveRequest(route string, code int, elapsed time.Duration) {
	m.requestsTotal.WithLabelValues(route, strconv.Itoa(code)).Inc()
	m.requestDuration.WithLabelValues(route).Observe(elapsed.Seconds())
}

// WritePrometheus serves the exposition format.
func (m *Metrics) WritePrometheus(w http.ResponseWriter, r *http.Request) {
	m.handler.ServeHTTP(w, r)
}
