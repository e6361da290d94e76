// Package metrics exposes resolution counters for Prometheus.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds the collectors on their own registry, so tests and
// multiple servers in one process don't collide.
type Metrics struct {
	registry *prometheus.Registry

	Resolutions *prometheus.CounterVec
	Duration    *prometheus.HistogramVec
	Providers   *prometheus.GaugeVec
}

// New registers the collectors plus the Go and process collectors.
func New() *Metrics {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	f := promauto.With(reg)

	return &Metrics{
		registry: reg,
		Resolutions: f.NewCounterVec(prometheus.CounterOpts{
			Name: "moviefetch_resolutions_total",
			Help: "Total number of URL resolutions by source and outcome.",
		}, []string{"source", "outcome"}), // outcome: resolved, empty, invalid, failed, cached
		Duration: f.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "moviefetch_resolution_duration_seconds",
			Help:    "Duration of URL resolutions in seconds.",
			Buckets: prometheus.DefBuckets,
		}, []string{"source"}),
		Providers: f.NewGaugeVec(prometheus.GaugeOpts{
			Name: "moviefetch_provider_configured",
			Help: "Whether a metadata provider has credentials (1) or not (0).",
		}, []string{"provider"}),
	}
}

// ObserveResolution records one finished resolution.
func (m *Metrics) ObserveResolution(source, outcome string, elapsed time.Duration) {
	m.Resolutions.WithLabelValues(source, outcome).Inc()
	m.Duration.WithLabelValues(source).Observe(elapsed.Seconds())
}

// SetProviders publishes which providers are configured.
func (m *Metrics) SetProviders(omdb, tmdb, asianwiki bool) {
	m.Providers.WithLabelValues("omdb").Set(boolGauge(omdb))
	m.Providers.WithLabelValues("tmdb").Set(boolGauge(tmdb))
	m.Providers.WithLabelValues("asianwiki").Set(boolGauge(asianwiki))
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

func boolGauge(b bool) float64 {
	if b {
		return 1
	}
	return 0
}
