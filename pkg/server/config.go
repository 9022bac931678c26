package server

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/vango-dev/markup/internal/config"
	"github.com/vango-dev/markup/internal/errors"
)

// ServerConfig holds configuration for the render server.
type ServerConfig struct {
	// Address is the host:port to listen on.
	// Default: ":8080".
	Address string

	// DocumentsDir is the directory served under /docs/{name}.
	// Empty disables the route's lookups; every request is a 404.
	DocumentsDir string

	// ReadBufferSize is the websocket read buffer size in bytes.
	// Default: 4096.
	ReadBufferSize int

	// WriteBufferSize is the websocket write buffer size in bytes.
	// Default: 4096.
	WriteBufferSize int

	// MaxDocumentSize limits request bodies and websocket frames.
	// Default: 1MB.
	MaxDocumentSize int64

	// MetricsPath is where Prometheus metrics are served when metrics
	// are enabled.
	// Default: "/metrics".
	MetricsPath string

	// CheckOrigin validates websocket origins.
	// Default: accept all origins.
	CheckOrigin func(r *http.Request) bool

	// ReadHeaderTimeout bounds reading request headers.
	// Default: 5 seconds.
	ReadHeaderTimeout time.Duration

	// ShutdownTimeout is the grace period for in-flight requests.
	// Default: 10 seconds.
	ShutdownTimeout time.Duration

	// Logger receives request and failure logs.
	// Default: slog.Default().
	Logger *slog.Logger
}

// DefaultServerConfig returns a ServerConfig with sensible defaults.
func DefaultServerConfig() *ServerConfig {
	return &ServerConfig{
		Address:           ":8080",
		ReadBufferSize:    config.DefaultBufferSize,
		WriteBufferSize:   config.DefaultBufferSize,
		MaxDocumentSize:   1 << 20,
		MetricsPath:       config.DefaultMetricsPath,
		CheckOrigin:       func(*http.Request) bool { return true },
		ReadHeaderTimeout: 5 * time.Second,
		ShutdownTimeout:   10 * time.Second,
	}
}

// ConfigFrom builds a ServerConfig from the project configuration.
func ConfigFrom(cfg *config.Config) *ServerConfig {
	c := DefaultServerConfig()
	c.Address = cfg.Address()
	c.DocumentsDir = cfg.DocumentsPath()
	if cfg.Server.ReadBufferSize > 0 {
		c.ReadBufferSize = cfg.Server.ReadBufferSize
	}
	if cfg.Server.WriteBufferSize > 0 {
		c.WriteBufferSize = cfg.Server.WriteBufferSize
	}
	if cfg.Metrics.Path != "" {
		c.MetricsPath = cfg.Metrics.Path
	}
	return c
}

// withDefaults fills zero fields from DefaultServerConfig.
func (c *ServerConfig) withDefaults() *ServerConfig {
	defaults := DefaultServerConfig()
	if c == nil {
		return defaults
	}
	out := *c
	if out.Address == "" {
		out.Address = defaults.Address
	}
	if out.ReadBufferSize == 0 {
		out.ReadBufferSize = defaults.ReadBufferSize
	}
	if out.WriteBufferSize == 0 {
		out.WriteBufferSize = defaults.WriteBufferSize
	}
	if out.MaxDocumentSize == 0 {
		out.MaxDocumentSize = defaults.MaxDocumentSize
	}
	if out.MetricsPath == "" {
		out.MetricsPath = defaults.MetricsPath
	}
	if out.CheckOrigin == nil {
		out.CheckOrigin = defaults.CheckOrigin
	}
	if out.ReadHeaderTimeout == 0 {
		out.ReadHeaderTimeout = defaults.ReadHeaderTimeout
	}
	if out.ShutdownTimeout == 0 {
		out.ShutdownTimeout = defaults.ShutdownTimeout
	}
	return &out
}

// ValidateConfig reports settings the server cannot start with.
func (c *ServerConfig) ValidateConfig() error {
	switch {
	case c.ReadBufferSize < 0 || c.WriteBufferSize < 0:
		return errors.New("E130").WithDetail("websocket buffer sizes must not be negative")
	case c.MaxDocumentSize < 0:
		return errors.New("E130").WithDetail("maximum document size must not be negative")
	case c.MetricsPath != "" && c.MetricsPath[0] != '/':
		return errors.New("E130").WithDetailf("metrics path %q must start with /", c.MetricsPath)
	}
	return nil
}
