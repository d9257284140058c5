package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Load outcomes recorded by ObserveArtifactLoad.
const (
	OutcomeSuccess = "success"
	OutcomeFailure = "failure"
)

// Metrics holds process level Prometheus metrics: trained artifact loading
// and readiness.
type Metrics struct {
	ArtifactLoads        *prometheus.CounterVec
	ArtifactLoadDuration prometheus.Histogram
	ModelReady           prometheus.Gauge
}

// New creates and registers the metrics on the default registry.
func New() *Metrics {
	return NewWithRegisterer(prometheus.DefaultRegisterer)
}

// NewWithRegisterer registers on reg; tests pass a fresh prometheus.NewRegistry().
func NewWithRegisterer(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		ArtifactLoads: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "creditrisk_artifact_loads_total",
			Help: "Total trained artifact load attempts by outcome",
		}, []string{"outcome"}),
		ArtifactLoadDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "creditrisk_artifact_load_duration_seconds",
			Help:    "Duration of loading and decoding the classifier and encoder artifacts",
			Buckets: []float64{0.005, 0.01, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		}),
		ModelReady: factory.NewGauge(prometheus.GaugeOpts{
			Name: "creditrisk_model_ready",
			Help: "1 when the risk model and encoder are loaded, 0 otherwise",
		}),
	}
}

// ObserveArtifactLoad records a load attempt.
func (m *Metrics) ObserveArtifactLoad(outcome string, d time.Duration) {
	if m == nil {
		return
	}
	m.ArtifactLoads.WithLabelValues(outcome).Inc()
	m.ArtifactLoadDuration.Observe(d.Seconds())
	if outcome == OutcomeSuccess {
		m.ModelReady.Set(1)
	} else {
		m.ModelReady.Set(0)
	}
}
