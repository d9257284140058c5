package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics provides observability for the decision module.
type Metrics struct {
	// Decision outcomes by verdict
	DecisionOutcome *prometheus.CounterVec

	// Errors that ended an analysis without a verdict, by domain code
	DecisionErrors *prometheus.CounterVec

	// Evaluation latency, gate and inference included
	EvaluateLatency prometheus.Histogram

	// Distribution of model-derived credit scores
	CreditScore prometheus.Histogram

	// Live limit previews served
	LimitPreviews prometheus.Counter
}

// New creates a new Metrics instance registered on the default registry.
func New() *Metrics {
	return NewWithRegisterer(prometheus.DefaultRegisterer)
}

// NewWithRegisterer registers the decision metrics on reg.
func NewWithRegisterer(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		DecisionOutcome: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "creditrisk_decision_outcomes_total",
			Help: "Total decision outcomes by verdict",
		}, []string{"verdict"}), // verdict: "approved", "declined", "auto_declined"

		DecisionErrors: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "creditrisk_decision_errors_total",
			Help: "Total analyses that failed without a verdict, by error code",
		}, []string{"code"}),

		EvaluateLatency: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "creditrisk_decision_evaluate_duration_seconds",
			Help:    "Duration of a full decision evaluation",
			Buckets: []float64{0.0005, 0.001, 0.0025, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25},
		}),

		CreditScore: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "creditrisk_decision_credit_score",
			Help:    "Credit scores produced by the risk model",
			Buckets: prometheus.LinearBuckets(300, 50, 12),
		}),

		LimitPreviews: factory.NewCounter(prometheus.CounterOpts{
			Name: "creditrisk_limit_previews_total",
			Help: "Total live credit limit previews computed",
		}),
	}
}

// IncrementOutcome records a decision verdict.
func (m *Metrics) IncrementOutcome(verdict string) {
	if m != nil {
		m.DecisionOutcome.WithLabelValues(verdict).Inc()
	}
}

// IncrementError records an analysis that ended in an error.
func (m *Metrics) IncrementError(code string) {
	if m != nil {
		m.DecisionErrors.WithLabelValues(code).Inc()
	}
}

// ObserveEvaluateLatency records the total evaluation duration.
func (m *Metrics) ObserveEvaluateLatency(d time.Duration) {
	if m != nil {
		m.EvaluateLatency.Observe(d.Seconds())
	}
}

// ObserveCreditScore records a model-derived score.
func (m *Metrics) ObserveCreditScore(score int) {
	if m != nil {
		m.CreditScore.Observe(float64(score))
	}
}

// IncrementLimitPreviews counts a limit preview.
func (m *Metrics) IncrementLimitPreviews() {
	if m != nil {
		m.LimitPreviews.Inc()
	}
}
