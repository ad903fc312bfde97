package salam

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// MetricsCollector provides Prometheus metrics for the greeter lifecycle:
// construction, greeting runs, name mutations and report generation. It is
// safe for concurrent use, and every record method is safe to call on a nil
// receiver so metrics stay strictly optional.
type MetricsCollector struct {
	greetersCreated prometheus.Counter

	greetsTotal    *prometheus.CounterVec
	greetsInFlight prometheus.Gauge
	greetDuration  *prometheus.HistogramVec

	recipientsGreeted prometheus.Counter

	nameChanges *prometheus.CounterVec

	reportsGenerated prometheus.Counter

	errorsTotal *prometheus.CounterVec

	registry *prometheus.Registry
}

// NewMetricsCollector creates a metrics collector on the default registerer.
func NewMetricsCollector() *MetricsCollector {
	return NewMetricsCollectorWithRegistry(prometheus.DefaultRegisterer)
}

// NewMetricsCollectorWithRegistry creates a collector using supplied registerer.
func NewMetricsCollectorWithRegistry(registry prometheus.Registerer) *MetricsCollector {
	mc := &MetricsCollector{
		greetersCreated: promauto.With(registry).NewCounter(
			prometheus.CounterOpts{
				Name: "salam_greeters_created_total",
				Help: "Total number of greeters constructed",
			},
		),
		greetsTotal: promauto.With(registry).NewCounterVec(
			prometheus.CounterOpts{
				Name: "salam_greets_total",
				Help: "Total number of greeting runs by outcome",
			},
			[]string{"outcome"},
		),
		greetsInFlight: promauto.With(registry).NewGauge(
			prometheus.GaugeOpts{
				Name: "salam_greets_in_flight",
				Help: "Number of greeting runs currently in flight",
			},
		),
		greetDuration: promauto.With(registry).NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "salam_greet_duration_seconds",
				Help:    "Duration of greeting runs in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"outcome"},
		),
		recipientsGreeted: promauto.With(registry).NewCounter(
			prometheus.CounterOpts{
				Name: "salam_recipients_greeted_total",
				Help: "Total number of recipients successfully greeted",
			},
		),
		nameChanges: promauto.With(registry).NewCounterVec(
			prometheus.CounterOpts{
				Name: "salam_name_changes_total",
				Help: "Total number of name mutations by result",
			},
			[]string{"result"},
		),
		reportsGenerated: promauto.With(registry).NewCounter(
			prometheus.CounterOpts{
				Name: "salam_reports_generated_total",
				Help: "Total number of reports generated",
			},
		),
		errorsTotal: promauto.With(registry).NewCounterVec(
			prometheus.CounterOpts{
				Name: "salam_errors_total",
				Help: "Total number of errors encountered",
			},
			[]string{"type"},
		),
		registry: registry.(*prometheus.Registry),
	}

	return mc
}

// RecordGreeterCreated increments the construction counter.
func (mc *MetricsCollector) RecordGreeterCreated() {
	if mc == nil {
		return
	}

	mc.greetersCreated.Inc()
}

// RecordGreetStart increments the in-flight gauge.
func (mc *MetricsCollector) RecordGreetStart() {
	if mc == nil {
		return
	}

	mc.greetsInFlight.Inc()
}

// RecordGreetEnd decrements the in-flight gauge.
func (mc *MetricsCollector) RecordGreetEnd() {
	if mc == nil {
		return
	}

	mc.greetsInFlight.Dec()
}

// RecordGreet records a completed greeting run and its duration.
func (mc *MetricsCollector) RecordGreet(outcome string, duration time.Duration) {
	if mc == nil {
		return
	}

	mc.greetsTotal.WithLabelValues(outcome).Inc()
	mc.greetDuration.WithLabelValues(outcome).Observe(duration.Seconds())
}

// RecordRecipientsGreeted adds the number of recipients a run processed.
func (mc *MetricsCollector) RecordRecipientsGreeted(n int) {
	if mc == nil {
		return
	}

	mc.recipientsGreeted.Add(float64(n))
}

// RecordNameChange increments the name mutation counter for a result.
func (mc *MetricsCollector) RecordNameChange(result string) {
	if mc == nil {
		return
	}

	mc.nameChanges.WithLabelValues(result).Inc()
}

// RecordReportGenerated increments the report counter.
func (mc *MetricsCollector) RecordReportGenerated() {
	if mc == nil {
		return
	}

	mc.reportsGenerated.Inc()
}

// RecordError increments the error counter by type.
func (mc *MetricsCollector) RecordError(errorType string) {
	if mc == nil {
		return
	}

	mc.errorsTotal.WithLabelValues(errorType).Inc()
}

// GetRegistry exposes the underlying prometheus registry.
func (mc *MetricsCollector) GetRegistry() *prometheus.Registry {
	return mc.registry
}
