package server

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/katalvlaran/tableau/internal/store"
)

type metrics struct {
	solves   *prometheus.CounterVec
	pivots   prometheus.Histogram
	duration prometheus.Histogram
}

func newMetrics(reg prometheus.Registerer) *metrics {
	m := &metrics{
		solves: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "tableau",
			Name:      "solves_total",
			Help:      "Solves handled, by outcome.",
		}, []string{"status"}),
		pivots: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "tableau",
			Name:      "solve_pivots",
			Help:      "Pivots performed by successful solves.",
			Buckets:   prometheus.ExponentialBuckets(1, 2, 10),
		}),
		duration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "tableau",
			Name:      "solve_duration_seconds",
			Help:      "Wall time spent in the solver.",
			Buckets:   prometheus.DefBuckets,
		}),
	}
	reg.MustRegister(m.solves, m.pivots, m.duration)
	return m
}

func (m *metrics) observe(status store.Status, pivots int, elapsed time.Duration) {
	m.solves.WithLabelValues(string(status)).Inc()
	m.duration.Observe(elapsed.Seconds())
	if status == store.StatusOptimal {
		m.pivots.Observe(float64(pivots))
	}
}
