package server

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the Prometheus metrics for the preview server.
type Metrics struct {
	rendersTotal   *prometheus.CounterVec
	renderDuration prometheus.Histogram
	renderBytes    prometheus.Histogram
}

// NewMetrics registers the server metrics with the given registerer.
//
// Metrics collected:
//   - tagtree_renders_total: Counter of document renders by status
//   - tagtree_render_duration_seconds: Histogram of render duration
//   - tagtree_render_bytes: Histogram of rendered document size
func NewMetrics(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		rendersTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "tagtree",
			Name:      "renders_total",
			Help:      "Total number of document renders",
		}, []string{"status"}),

		renderDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace: "tagtree",
			Name:      "render_duration_seconds",
			Help:      "Document render duration in seconds",
			Buckets:   prometheus.DefBuckets,
		}),

		renderBytes: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace: "tagtree",
			Name:      "render_bytes",
			Help:      "Rendered document size in bytes",
			Buckets:   []float64{256, 1024, 4096, 16384, 65536, 262144, 1048576},
		}),
	}
}

// observeRender records one render outcome.
func (m *Metrics) observeRender(status string, seconds float64, bytes int) {
	if m == nil {
		return
	}
	m.rendersTotal.WithLabelValues(status).Inc()
	m.renderDuration.Observe(seconds)
	if bytes > 0 {
		m.renderBytes.Observe(float64(bytes))
	}
}
