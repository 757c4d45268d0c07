// Package metrics exposes Prometheus instrumentation for the relay pipeline.
// All methods are safe on a nil *Metrics, which records nothing.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "relay"

// Trigger result labels.
const (
	ResultSuccess        = "success"
	ResultHTTPError      = "http_error"
	ResultTransportError = "transport_error"
)

type Metrics struct {
	registry *prometheus.Registry

	commands           prometheus.Counter
	extractionFailures prometheus.Counter
	extractionDuration prometheus.Histogram
	triggers           *prometheus.CounterVec
	triggerDuration    prometheus.Histogram
}

// New creates the relay collectors on a dedicated registry, together with the
// standard Go runtime and process collectors.
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		commands: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "commands_total",
			Help:      "Chat commands received by the pipeline.",
		}),
		extractionFailures: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "extraction_failures_total",
			Help:      "Extractions that fell back to an empty parameter record.",
		}),
		extractionDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "extraction_duration_seconds",
			Help:      "Latency of the text-understanding call.",
			Buckets:   []float64{0.25, 0.5, 1, 2, 4, 8, 16, 32},
		}),
		triggers: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "triggers_total",
			Help:      "Build trigger attempts by result.",
		}, []string{"result"}),
		triggerDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "trigger_duration_seconds",
			Help:      "Latency of the build trigger request.",
			Buckets:   prometheus.DefBuckets,
		}),
	}

	m.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.commands,
		m.extractionFailures,
		m.extractionDuration,
		m.triggers,
		m.triggerDuration,
	)
	return m
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	if m == nil {
		return http.NotFoundHandler()
	}
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

func (m *Metrics) ObserveCommand() {
	if m == nil {
		return
	}
	m.commands.Inc()
}

// ObserveExtraction records one provider call. A zero duration means the call
// was never made.
func (m *Metrics) ObserveExtraction(d time.Duration, ok bool) {
	if m == nil {
		return
	}
	if d > 0 {
		m.extractionDuration.Observe(d.Seconds())
	}
	if !ok {
		m.extractionFailures.Inc()
	}
}

func (m *Metrics) ObserveTrigger(d time.Duration, result string) {
	if m == nil {
		return
	}
	m.triggerDuration.Observe(d.Seconds())
	m.triggers.WithLabelValues(result).Inc()
}
