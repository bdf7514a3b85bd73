package peekn

import (
	"github.com/prometheus/client_golang/prometheus"
)

type metrics struct {
	sourceItems   prometheus.Counter
	replayedItems prometheus.Counter
	peeks         *prometheus.CounterVec
	bufferedItems prometheus.Gauge
}

func newMetrics(registerer prometheus.Registerer, namespace, subsystem string) *metrics {
	m := metrics{
		sourceItems: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "source_items_total",
			Help:      "Number of items pulled from the wrapped source",
		}),
		replayedItems: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "replayed_items_total",
			Help:      "Number of items served from the lookahead buffer",
		}),
		peeks: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "peeks_total",
			Help:      "Number of peek attempts",
		}, []string{"result"}),
		bufferedItems: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "buffered_items",
			Help:      "Number of items currently pulled ahead of consumption",
		}),
	}

	if registerer != nil {
		registerer = prometheus.WrapRegistererWith(
			prometheus.Labels{"component": "peekn"},
			registerer,
		)
		registerer.MustRegister(
			m.sourceItems,
			m.replayedItems,
			m.peeks,
			m.bufferedItems,
		)
	}

	return &m
}

// The helpers below are nil-safe so call sites don't have to care whether
// metrics were requested.

func (m *metrics) sourced(n int) {
	if m != nil {
		m.sourceItems.Add(float64(n))
	}
}

func (m *metrics) replayed(n int) {
	if m != nil {
		m.replayedItems.Add(float64(n))
	}
}

func (m *metrics) peek(hit bool) {
	if m == nil {
		return
	}
	result := "miss"
	if hit {
		result = "hit"
	}
	m.peeks.WithLabelValues(result).Inc()
}

func (m *metrics) buffered(n int) {
	if m != nil {
		m.bufferedItems.Set(float64(n))
	}
}
