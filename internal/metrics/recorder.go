package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "humanize"

// Recorder collects formatting metrics. A nil *Recorder is valid and records
// nothing.
type Recorder struct {
	registry *prometheus.Registry

	values          *prometheus.CounterVec
	batchSize       *prometheus.HistogramVec
	batchDuration   *prometheus.HistogramVec
	iterationErrors *prometheus.CounterVec
}

// NewRecorder creates a Recorder with its own registry. The Go runtime and
// process collectors are registered alongside the engine metrics.
func NewRecorder() *Recorder {
	r := &Recorder{
		registry: prometheus.NewRegistry(),
		values: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "values_total",
			Help:      "Values formatted, by formatter and classified kind.",
		}, []string{"formatter", "kind"}),
		batchSize: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "batch_size",
			Help:      "Number of values per formatting call.",
			Buckets:   prometheus.ExponentialBuckets(1, 4, 10),
		}, []string{"formatter"}),
		batchDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "batch_duration_seconds",
			Help:      "Wall time of a formatting call.",
			Buckets:   prometheus.ExponentialBuckets(1e-6, 10, 8),
		}, []string{"formatter"}),
		iterationErrors: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "iteration_errors_total",
			Help:      "Formatting calls aborted because the input sequence failed.",
		}, []string{"formatter"}),
	}
	r.registry.MustRegister(
		r.values,
		r.batchSize,
		r.batchDuration,
		r.iterationErrors,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return r
}

// Registerer exposes the registry so host surfaces can add their own metrics.
func (r *Recorder) Registerer() prometheus.Registerer {
	if r == nil {
		return prometheus.NewRegistry()
	}
	return r.registry
}

// ObserveValue counts one formatted value.
func (r *Recorder) ObserveValue(formatter, kind string) {
	if r == nil {
		return
	}
	r.values.WithLabelValues(formatter, kind).Inc()
}

// ObserveBatch records the size and duration of one formatting call.
func (r *Recorder) ObserveBatch(formatter string, size int, elapsed time.Duration) {
	if r == nil {
		return
	}
	r.batchSize.WithLabelValues(formatter).Observe(float64(size))
	r.batchDuration.WithLabelValues(formatter).Observe(elapsed.Seconds())
}

// IterationFailed counts a call aborted by a failing sequence.
func (r *Recorder) IterationFailed(formatter string) {
	if r == nil {
		return
	}
	r.iterationErrors.WithLabelValues(formatter).Inc()
}

// Handler serves the registry in the Prometheus exposition format.
func (r *Recorder) Handler() http.Handler {
	if r == nil {
		return promhttp.HandlerFor(prometheus.NewRegistry(), promhttp.HandlerOpts{})
	}
	return promhttp.HandlerFor(r.registry, promhttp.HandlerOpts{Registry: r.registry})
}
