package wheel

import (
	"github.com/prometheus/client_golang/prometheus"
)

type metrics struct {
	pushes     prometheus.Counter
	overwrites prometheus.Counter
	items      prometheus.Gauge
}

func newMetrics(registerer prometheus.Registerer, namespace, subsystem string) *metrics {
	if registerer != nil {
		registerer = prometheus.WrapRegistererWith(
			prometheus.Labels{"component": "wheel"},
			registerer,
		)
	}

	m := metrics{
		pushes: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "pushes",
			Help:      "Lifetime number of pushes into the buffer",
		}),
		overwrites: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "overwrites",
			Help:      "Number of pushes that replaced a live item",
		}),
		items: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "items",
			Help:      "Number of live items in the buffer",
		}),
	}

	if registerer != nil {
		registerer.MustRegister(
			m.pushes,
			m.overwrites,
			m.items,
		)
	}

	return &m
}
