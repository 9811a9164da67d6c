// Package metrics exposes Prometheus instrumentation for route orderings and
// the HTTP service.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/katalvlaran/oceancruise/route"
)

const namespace = "cruiseroute"

// Metrics groups the collectors. Create it with New so collectors land on
// the chosen registry.
type Metrics struct {
	gatherer prometheus.Gatherer

	OrderingsTotal     *prometheus.CounterVec
	DegenerateTotal    prometheus.Counter
	OrderingErrors     prometheus.Counter
	OrderingDuration   prometheus.Histogram
	StationsPerRequest prometheus.Histogram

	httpRequestsTotal   *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec
}

// New registers all collectors on reg. A nil reg uses a fresh registry.
func New(reg *prometheus.Registry) *Metrics {
	if reg == nil {
		reg = prometheus.NewRegistry()
	}
	f := promauto.With(reg)

	return &Metrics{
		gatherer: reg,

		OrderingsTotal: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "route",
			Name:      "orderings_total",
			Help:      "Total station orderings computed",
		}, []string{"orientation"}),

		DegenerateTotal: f.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "route",
			Name:      "degenerate_outputs_total",
			Help:      "Orderings recovered from a degenerate solver cycle",
		}),

		OrderingErrors: f.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "route",
			Name:      "ordering_errors_total",
			Help:      "Orderings that failed",
		}),

		OrderingDuration: f.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "route",
			Name:      "ordering_duration_seconds",
			Help:      "Wall time of one ordering",
			Buckets:   []float64{0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1, 5, 15},
		}),

		StationsPerRequest: f.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "route",
			Name:      "stations",
			Help:      "Stations per ordering",
			Buckets:   prometheus.ExponentialBuckets(2, 2, 11),
		}),

		httpRequestsTotal: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total HTTP requests processed",
		}, []string{"method", "path", "status"}),

		httpRequestDuration: f.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "HTTP request latency in seconds",
			Buckets:   []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5},
		}, []string{"method", "path"}),
	}
}

// ObserveOrdering records one engine run over n stations. err != nil counts
// as a failure and skips the result-derived series.
func (m *Metrics) ObserveOrdering(n int, res route.Result, took time.Duration, err error) {
	m.OrderingDuration.Observe(took.Seconds())
	m.StationsPerRequest.Observe(float64(n))
	if err != nil {
		m.OrderingErrors.Inc()
		return
	}
	m.OrderingsTotal.WithLabelValues(res.Orientation.String()).Inc()
	if res.Degenerate {
		m.DegenerateTotal.Inc()
	}
}

// Middleware records request count and latency per route pattern.
func (m *Metrics) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}
		method := c.Request.Method
		status := strconv.Itoa(c.Writer.Status())

		m.httpRequestsTotal.WithLabelValues(method, path, status).Inc()
		m.httpRequestDuration.WithLabelValues(method, path).Observe(time.Since(start).Seconds())
	}
}

// Handler serves the registry in the Prometheus text format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.gatherer, promhttp.HandlerOpts{})
}
