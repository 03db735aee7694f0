package bench

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "lvknap"

// Metrics groups the collectors updated by a Runner. A nil *Metrics is valid
// and records nothing.
type Metrics struct {
	solves   *prometheus.CounterVec
	failures *prometheus.CounterVec
	duration *prometheus.HistogramVec
	earnings *prometheus.GaugeVec
	size     *prometheus.GaugeVec
}

// NewMetrics creates the collectors and registers them on reg.
func NewMetrics(reg prometheus.Registerer) (*Metrics, error) {
	m := &Metrics{
		solves: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "solves_total",
			Help:      "Completed solves by algorithm.",
		}, []string{"algorithm"}),
		failures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "solve_failures_total",
			Help:      "Solves rejected before running, by algorithm.",
		}, []string{"algorithm"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "solve_duration_seconds",
			Help:      "Wall clock time of the solver call.",
			Buckets:   prometheus.ExponentialBuckets(1e-6, 4, 14),
		}, []string{"algorithm"}),
		earnings: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "last_earnings",
			Help:      "Earnings of the most recent solve.",
		}, []string{"algorithm"}),
		size: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "last_size",
			Help:      "Number of items in the most recent solve.",
		}, []string{"algorithm"}),
	}
	for _, c := range []prometheus.Collector{m.solves, m.failures, m.duration, m.earnings, m.size} {
		if err := reg.Register(c); err != nil {
			return nil, fmt.Errorf("bench: register metrics: %w", err)
		}
	}

	return m, nil
}

func (m *Metrics) observe(r Report) {
	if m == nil {
		return
	}
	algo := r.Algorithm.String()
	m.solves.WithLabelValues(algo).Inc()
	m.duration.WithLabelValues(algo).Observe(r.Result.Duration.Seconds())
	m.earnings.WithLabelValues(algo).Set(r.Result.Earnings.InexactFloat64())
	m.size.WithLabelValues(algo).Set(float64(r.Size))
}

func (m *Metrics) fail(algo string) {
	if m == nil {
		return
	}
	m.failures.WithLabelValues(algo).Inc()
}
