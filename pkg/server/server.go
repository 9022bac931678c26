package server

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/gorilla/websocket"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	markuperrors "github.com/vango-dev/markup/internal/errors"
	"github.com/vango-dev/markup/pkg/document"
	"github.com/vango-dev/markup/pkg/middleware"
	"github.com/vango-dev/markup/pkg/render"
)

// Server renders documents over HTTP and websockets.
type Server struct {
	config *ServerConfig

	renderer *render.Renderer
	decoder  *document.Decoder

	metrics  *middleware.Metrics
	gatherer prometheus.Gatherer
	tracing  func(http.Handler) http.Handler

	router     chi.Router
	upgrader   websocket.Upgrader
	httpServer *http.Server

	logger *slog.Logger
}

// Option configures a Server.
type Option func(*Server)

// WithRenderer sets the renderer. The default renderer reports to the
// server's metrics, a custom one must register its own observers.
func WithRenderer(r *render.Renderer) Option {
	return func(s *Server) {
		s.renderer = r
	}
}

// WithDecoder sets the document decoder.
func WithDecoder(d *document.Decoder) Option {
	return func(s *Server) {
		s.decoder = d
	}
}

// WithMetrics records request and render metrics and serves gatherer on
// the metrics path. A nil gatherer means prometheus.DefaultGatherer.
func WithMetrics(m *middleware.Metrics, gatherer prometheus.Gatherer) Option {
	return func(s *Server) {
		s.metrics = m
		s.gatherer = gatherer
		if s.gatherer == nil {
			s.gatherer = prometheus.DefaultGatherer
		}
	}
}

// WithTracing wraps every request in an OpenTelemetry span.
func WithTracing(opts ...middleware.TracingOption) Option {
	return func(s *Server) {
		s.tracing = middleware.Tracing(opts...)
	}
}

// New creates a new Server.
func New(config *ServerConfig, opts ...Option) *Server {
	config = config.withDefaults()

	logger := config.Logger
	if logger == nil {
		logger = slog.Default()
	}

	s := &Server{
		config: config,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  config.ReadBufferSize,
			WriteBufferSize: config.WriteBufferSize,
			CheckOrigin:     config.CheckOrigin,
		},
		logger: logger.With("component", "server"),
	}
	for _, opt := range opts {
		opt(s)
	}

	if s.decoder == nil {
		s.decoder = document.NewDecoder(document.DefaultOptions())
	}
	if s.renderer == nil {
		rc := render.RendererConfig{Logger: logger}
		if s.metrics != nil {
			rc.Observers = append(rc.Observers, s.metrics)
		}
		s.renderer = render.NewRenderer(rc)
	}

	s.router = s.routes()
	return s
}

// routes builds the chi router.
func (s *Server) routes() chi.Router {
	r := chi.NewRouter()
	r.Use(chimw.RequestID, chimw.RealIP, s.logRequests, chimw.Recoverer)
	if s.tracing != nil {
		r.Use(s.tracing)
	}
	if s.metrics != nil {
		r.Use(s.metrics.Handler)
	}

	r.Get("/healthz", s.handleHealth)
	r.Post("/render", s.handleRender)
	r.Get("/docs/{name}", s.handleDocument)
	r.Get("/ws", s.handleWebSocket)

	if s.metrics != nil {
		r.Method(http.MethodGet, s.config.MetricsPath, promhttp.HandlerFor(s.gatherer, promhttp.HandlerOpts{}))
	}
	return r
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// Handler returns the server's router.
func (s *Server) Handler() http.Handler {
	return s.router
}

// Run starts the server and blocks until ctx is done, an interrupt
// arrives, or the listener fails.
func (s *Server) Run(ctx context.Context) error {
	if err := s.config.ValidateConfig(); err != nil {
		return err
	}

	s.httpServer = &http.Server{
		Addr:              s.config.Address,
		Handler:           s,
		ReadHeaderTimeout: s.config.ReadHeaderTimeout,
	}

	// Set up graceful shutdown
	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(shutdown)

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("server starting", "address", s.config.Address)
		errCh <- s.httpServer.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return markuperrors.New("E130").WithDetail(s.config.Address).Wrap(err)

	case <-shutdown:
		s.logger.Info("shutting down...")
		return s.Shutdown(context.Background())

	case <-ctx.Done():
		s.logger.Info("shutting down...")
		return s.Shutdown(context.Background())
	}
}

// Shutdown gracefully shuts down the server.
func (s *Server) Shutdown(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, s.config.ShutdownTimeout)
	defer cancel()

	if s.httpServer != nil {
		if err := s.httpServer.Shutdown(ctx); err != nil {
			s.logger.Error("shutdown error", "error", err)
			return markuperrors.New("E130").Wrap(err)
		}
	}

	s.logger.Info("server shutdown complete")
	return nil
}
