package preview

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// metrics holds the Prometheus metrics for the preview server.
type metrics struct {
	requestsTotal   *prometheus.CounterVec
	requestDuration *prometheus.HistogramVec
	reloadClients   prometheus.Gauge
	reloadsTotal    prometheus.Counter
}

// newMetrics registers the preview metrics on the given registerer.
//
// Metrics exposed:
//   - weft_preview_requests_total: Counter of requests by method, path, status
//   - weft_preview_request_duration_seconds: Histogram of request duration
//   - weft_preview_reload_clients: Gauge of connected reload clients
//   - weft_preview_reloads_total: Counter of reload broadcasts
func newMetrics(registry prometheus.Registerer) *metrics {
	factory := promauto.With(registry)

	return &metrics{
		requestsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "weft",
			Subsystem: "preview",
			Name:      "requests_total",
			Help:      "Total number of HTTP requests served",
		}, []string{"method", "path", "status"}),

		requestDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "weft",
			Subsystem: "preview",
			Name:      "request_duration_seconds",
			Help:      "HTTP request duration in seconds",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "path"}),

		reloadClients: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: "weft",
			Subsystem: "preview",
			Name:      "reload_clients",
			Help:      "Number of connected live reload clients",
		}),

		reloadsTotal: factory.NewCounter(prometheus.CounterOpts{
			Namespace: "weft",
			Subsystem: "preview",
			Name:      "reloads_total",
			Help:      "Total number of reload broadcasts",
		}),
	}
}
