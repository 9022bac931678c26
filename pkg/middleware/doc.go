// Package middleware provides observability for markup services.
//
// This package includes:
//   - Prometheus metrics for renders and HTTP requests
//   - OpenTelemetry tracing middleware for chi routers
//
// # Prometheus Metrics
//
// Metrics is both a render.Observer and HTTP middleware:
//
//	metrics := middleware.NewMetrics(middleware.WithNamespace("docs"))
//	renderer := render.NewRenderer(render.RendererConfig{
//	    Observers: []render.Observer{metrics},
//	})
//
//	r := chi.NewRouter()
//	r.Use(metrics.Handler)
//	r.Handle("/metrics", promhttp.Handler())
//
// # OpenTelemetry Middleware
//
// Tracing wraps each request in a server span named after the route:
//
//	r.Use(middleware.Tracing(
//	    middleware.WithTracerName("docs"),
//	    middleware.WithRequestFilter(func(r *http.Request) bool {
//	        return r.URL.Path != "/healthz"
//	    }),
//	))
//
// Handlers add render statistics to the span of the request:
//
//	stats, err := renderer.Render(&buf, root)
//	middleware.RecordRender(r.Context(), stats, err)
package middleware
