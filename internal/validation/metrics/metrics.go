package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the Prometheus collectors for CPF validation.
type Metrics struct {
	Validations   *prometheus.CounterVec
	BatchDuration prometheus.Histogram
}

// New creates the collectors and registers them with reg.
func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		Validations: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "cpfcheck_validations_total",
			Help: "Total number of CPF validations by outcome (valid or rejection reason)",
		}, []string{"outcome"}),
		BatchDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "cpfcheck_batch_duration_seconds",
			Help:    "Time spent validating a batch of CPF inputs",
			Buckets: prometheus.ExponentialBuckets(0.0001, 4, 8),
		}),
	}
}

func (m *Metrics) IncrementOutcome(outcome string) {
	m.Validations.WithLabelValues(outcome).Inc()
}

func (m *Metrics) ObserveBatchDuration(d time.Duration) {
	m.BatchDuration.Observe(d.Seconds())
}
