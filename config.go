package wheel

import (
	"github.com/prometheus/client_golang/prometheus"
)

type Option[Item any] = func(*config[Item])

// WithPrometheus instruments the buffer with Prometheus metrics: a counter of
// pushes, a counter of overwrites and a gauge of live items. If registerer is
// nil the metrics are created but not registered.
func WithPrometheus[Item any](
	registerer prometheus.Registerer,
	namespace, subsystem string,
) Option[Item] {
	return func(c *config[Item]) {
		c.metrics = newMetrics(registerer, namespace, subsystem)
	}
}

type config[Item any] struct {
	metrics *metrics
}

func newConfig[Item any](options ...Option[Item]) *config[Item] {
	cfg := config[Item]{}
	for _, opt := range options {
		opt(&cfg)
	}
	return &cfg
}
