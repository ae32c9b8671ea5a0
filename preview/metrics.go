package preview

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type metrics struct {
	rendersTotal   *prometheus.CounterVec
	renderDuration *prometheus.HistogramVec
	renderedBytes  prometheus.Counter
}

func newMetrics(config Config) *metrics {
	factory := promauto.With(config.Registry)

	return &metrics{
		rendersTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: config.Namespace,
			Name:      "renders_total",
			Help:      "Total number of page render requests",
		}, []string{"page", "status"}),

		renderDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: config.Namespace,
			Name:      "render_duration_seconds",
			Help:      "Time spent loading and rendering a page file",
			Buckets:   prometheus.DefBuckets,
		}, []string{"page"}),

		renderedBytes: factory.NewCounter(prometheus.CounterOpts{
			Namespace: config.Namespace,
			Name:      "rendered_bytes_total",
			Help:      "Bytes of HTML rendered",
		}),
	}
}
