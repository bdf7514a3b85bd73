package peekn

import (
	"github.com/prometheus/client_golang/prometheus"
)

type Option = func(*config)

// WithPrometheus enables Prometheus metrics on the adapter. If registerer is
// nil, the metrics are collected but not registered.
func WithPrometheus(registerer prometheus.Registerer, namespace, subsystem string) Option {
	return func(c *config) {
		c.metrics = newMetrics(registerer, namespace, subsystem)
	}
}

type config struct {
	// metrics stays nil unless requested: adapters are cheap to create and
	// must not allocate collectors by default.
	metrics *metrics
}

func newConfig(options ...Option) *config {
	cfg := config{}
	for _, opt := range options {
		opt(&cfg)
	}
	return &cfg
}
