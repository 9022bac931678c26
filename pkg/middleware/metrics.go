package middleware

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	markuperrors "github.com/vango-dev/markup/internal/errors"
	"github.com/vango-dev/markup/pkg/render"
)

// MetricsConfig configures the Prometheus metrics.
type MetricsConfig struct {
	// Namespace is the metrics namespace (default: "markup").
	Namespace string

	// Subsystem is the metrics subsystem (default: "").
	Subsystem string

	// ConstLabels are constant labels added to all metrics.
	ConstLabels prometheus.Labels

	// Buckets are the histogram buckets for durations.
	// Default: prometheus.DefBuckets
	Buckets []float64

	// Registry is the Prometheus registry to use.
	// Default: prometheus.DefaultRegisterer
	Registry prometheus.Registerer
}

// MetricsOption configures the Prometheus metrics.
type MetricsOption func(*MetricsConfig)

// WithNamespace sets the metrics namespace.
func WithNamespace(namespace string) MetricsOption {
	return func(c *MetricsConfig) {
		c.Namespace = namespace
	}
}

// WithSubsystem sets the metrics subsystem.
func WithSubsystem(subsystem string) MetricsOption {
	return func(c *MetricsConfig) {
		c.Subsystem = subsystem
	}
}

// WithConstLabels sets constant labels for all metrics.
func WithConstLabels(labels prometheus.Labels) MetricsOption {
	return func(c *MetricsConfig) {
		c.ConstLabels = labels
	}
}

// WithBuckets sets the duration histogram buckets.
func WithBuckets(buckets []float64) MetricsOption {
	return func(c *MetricsConfig) {
		c.Buckets = buckets
	}
}

// WithRegistry sets the Prometheus registry.
func WithRegistry(registry prometheus.Registerer) MetricsOption {
	return func(c *MetricsConfig) {
		c.Registry = registry
	}
}

// defaultMetricsConfig returns the default metrics configuration.
func defaultMetricsConfig() MetricsConfig {
	return MetricsConfig{
		Namespace: "markup",
		Buckets:   prometheus.DefBuckets,
		Registry:  prometheus.DefaultRegisterer,
	}
}

// Metrics collects render and request metrics. It is a render.Observer and
// provides HTTP middleware.
//
// Metrics collected:
//   - markup_renders_total: Counter of renders by status
//   - markup_render_errors_total: Counter of failed renders by error code
//   - markup_render_duration_seconds: Histogram of render duration
//   - markup_render_bytes: Histogram of output size
//   - markup_render_iterations: Histogram of Render calls per document
//   - markup_requests_total: Counter of HTTP requests by route and status
//   - markup_request_duration_seconds: Histogram of HTTP request duration
//   - markup_websocket_connections: Gauge of open live render connections
type Metrics struct {
	rendersTotal    *prometheus.CounterVec
	renderErrors    *prometheus.CounterVec
	renderDuration  prometheus.Histogram
	renderBytes     prometheus.Histogram
	iterations      prometheus.Histogram
	requestsTotal   *prometheus.CounterVec
	requestDuration *prometheus.HistogramVec
	wsConnections   prometheus.Gauge
}

// NewMetrics registers the metrics with the configured registry.
//
// Example:
//
//	metrics := middleware.NewMetrics(middleware.WithNamespace("docs"))
//	renderer := render.NewRenderer(render.RendererConfig{
//	    Observers: []render.Observer{metrics},
//	})
//	r.Use(metrics.Handler)
//	r.Handle("/metrics", promhttp.Handler())
func NewMetrics(opts ...MetricsOption) *Metrics {
	config := defaultMetricsConfig()
	for _, opt := range opts {
		opt(&config)
	}

	factory := promauto.With(config.Registry)

	return &Metrics{
		rendersTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "renders_total",
			Help:        "Total number of documents rendered",
			ConstLabels: config.ConstLabels,
		}, []string{"status"}),

		renderErrors: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "render_errors_total",
			Help:        "Total number of failed renders by error code",
			ConstLabels: config.ConstLabels,
		}, []string{"code"}),

		renderDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "render_duration_seconds",
			Help:        "Render duration in seconds",
			ConstLabels: config.ConstLabels,
			Buckets:     config.Buckets,
		}),

		renderBytes: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "render_bytes",
			Help:        "Size of rendered documents in bytes",
			ConstLabels: config.ConstLabels,
			Buckets:     prometheus.ExponentialBuckets(256, 4, 8), // 256B to 4MB
		}),

		iterations: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "render_iterations",
			Help:        "Render calls needed to resolve the root component",
			ConstLabels: config.ConstLabels,
			Buckets:     []float64{1, 2, 3, 5, 8, 13},
		}),

		requestsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "requests_total",
			Help:        "Total HTTP requests by route and status",
			ConstLabels: config.ConstLabels,
		}, []string{"route", "status"}),

		requestDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "request_duration_seconds",
			Help:        "HTTP request duration in seconds",
			ConstLabels: config.ConstLabels,
			Buckets:     config.Buckets,
		}, []string{"route"}),

		wsConnections: factory.NewGauge(prometheus.GaugeOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "websocket_connections",
			Help:        "Number of open live render connections",
			ConstLabels: config.ConstLabels,
		}),
	}
}

// ObserveRender implements render.Observer.
func (m *Metrics) ObserveRender(stats render.Stats, err error) {
	m.renderDuration.Observe(stats.Duration.Seconds())

	if err != nil {
		m.rendersTotal.WithLabelValues("error").Inc()
		m.renderErrors.WithLabelValues(errorCode(err)).Inc()
		return
	}

	m.rendersTotal.WithLabelValues("success").Inc()
	m.renderBytes.Observe(float64(stats.Bytes))
	m.iterations.Observe(float64(stats.Iterations))
}

// Handler records request count and duration, labelled by the chi route
// pattern to keep label cardinality bounded.
func (m *Metrics) Handler(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := chimw.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()

		next.ServeHTTP(ww, r)

		route := routePattern(r)
		status := ww.Status()
		if status == 0 {
			status = http.StatusOK
		}
		m.requestDuration.WithLabelValues(route).Observe(time.Since(start).Seconds())
		m.requestsTotal.WithLabelValues(route, strconv.Itoa(status)).Inc()
	})
}

// ConnectionOpened records a live render connection being opened.
func (m *Metrics) ConnectionOpened() {
	m.wsConnections.Inc()
}

// ConnectionClosed records a live render connection being closed.
func (m *Metrics) ConnectionClosed() {
	m.wsConnections.Dec()
}

// errorCode returns the code of a markup error, or "internal".
// This prevents high-cardinality labels from error messages.
func errorCode(err error) string {
	var me *markuperrors.MarkupError
	if errors.As(err, &me) && me.Code != "" {
		return me.Code
	}
	return "internal"
}

// routePattern returns the matched chi route, or "unmatched".
func routePattern(r *http.Request) string {
	if rctx := chi.RouteContext(r.Context()); rctx != nil {
		if pattern := rctx.RoutePattern(); pattern != "" {
			return pattern
		}
	}
	return "unmatched"
}
