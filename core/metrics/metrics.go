// Package metrics exposes Prometheus instrumentation for record loading.
//
// Each Metrics value owns its registry, so tests and multiple stores never
// collide on global registration. Serve it with Handler.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Load outcomes.
const (
	OutcomeSuccess = "success"
	OutcomeMissing = "missing"
	OutcomeError   = "error"
)

// Metrics tracks source loads, rejections, record counts and rebuild durations.
type Metrics struct {
	registry *prometheus.Registry

	SourceLoads     *prometheus.CounterVec
	Rejections      *prometheus.CounterVec
	Records         *prometheus.GaugeVec
	RebuildDuration prometheus.Histogram
}

// New creates a new Metrics instance with all collectors registered.
func New() *Metrics {
	reg := prometheus.NewRegistry()
	m := &Metrics{
		registry: reg,
		SourceLoads: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "country_source_loads_total",
			Help: "Total number of source loads by source and outcome",
		}, []string{"source", "outcome"}),
		Rejections: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "country_source_rejections_total",
			Help: "Total number of rows or items rejected during loads",
		}, []string{"source"}),
		Records: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: "country_records",
			Help: "Records held after the last load, per source and merged",
		}, []string{"set"}),
		RebuildDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "country_refresh_duration_seconds",
			Help:    "Duration of full load and refresh operations",
			Buckets: []float64{0.01, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 20},
		}),
	}
	reg.MustRegister(m.SourceLoads, m.Rejections, m.Records, m.RebuildDuration)
	return m
}

// Registry returns the registry the collectors live in.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// ObserveLoad records the outcome of one source load. Safe on a nil receiver.
func (m *Metrics) ObserveLoad(source, outcome string, records, rejected int) {
	if m == nil {
		return
	}
	m.SourceLoads.WithLabelValues(source, outcome).Inc()
	m.Rejections.WithLabelValues(source).Add(float64(rejected))
	m.Records.WithLabelValues(source).Set(float64(records))
}

// ObserveRebuild records a completed load or refresh. Call with time.Now()
// taken at the start of the operation. Safe on a nil receiver.
func (m *Metrics) ObserveRebuild(start time.Time, merged int) {
	if m == nil {
		return
	}
	m.RebuildDuration.Observe(time.Since(start).Seconds())
	m.Records.WithLabelValues("merged").Set(float64(merged))
}
