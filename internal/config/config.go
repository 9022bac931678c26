package config

import (
	"encoding/json"
	"log/slog"
	"net"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/vango-dev/markup/internal/errors"
)

const (
	// ConfigFileName is the name of the configuration file.
	ConfigFileName = "markup.json"

	// DefaultPort is the default render server port.
	DefaultPort = 8080

	// DefaultHost is the default render server host.
	DefaultHost = "localhost"

	// DefaultDocumentsDir is the directory documents are served from.
	DefaultDocumentsDir = "docs"

	// DefaultBufferSize is the default websocket read and write buffer size.
	DefaultBufferSize = 4096

	// DefaultMetricsPath is the default Prometheus scrape path.
	DefaultMetricsPath = "/metrics"

	// DefaultNamespace is the default metric namespace.
	DefaultNamespace = "markup"

	// DefaultTracerName is the default OpenTelemetry tracer name.
	DefaultTracerName = "github.com/vango-dev/markup"

	// DefaultRegion is the default S3 region.
	DefaultRegion = "us-east-1"
)

// Config represents the complete markup.json configuration.
type Config struct {
	// Server contains render server configuration.
	Server ServerConfig `json:"server,omitempty"`

	// Metrics contains Prometheus configuration.
	Metrics MetricsConfig `json:"metrics,omitempty"`

	// Tracing contains OpenTelemetry configuration.
	Tracing TracingConfig `json:"tracing,omitempty"`

	// Publish contains object storage configuration.
	Publish PublishConfig `json:"publish,omitempty"`

	// Document contains document decoding configuration.
	Document DocumentConfig `json:"document,omitempty"`

	// Log contains logging configuration.
	Log LogConfig `json:"log,omitempty"`

	// configPath stores the path where the config was loaded from.
	configPath string
}

// ServerConfig contains render server settings.
type ServerConfig struct {
	// Host is the host to bind to.
	Host string `json:"host,omitempty"`

	// Port is the port to listen on.
	Port int `json:"port,omitempty"`

	// DocumentsDir is the directory served under /docs/{name}.
	DocumentsDir string `json:"documentsDir,omitempty"`

	// ReadBufferSize is the websocket read buffer size in bytes.
	ReadBufferSize int `json:"readBufferSize,omitempty"`

	// WriteBufferSize is the websocket write buffer size in bytes.
	WriteBufferSize int `json:"writeBufferSize,omitempty"`
}

// MetricsConfig contains Prometheus settings.
type MetricsConfig struct {
	// Enabled exposes render metrics.
	Enabled bool `json:"enabled,omitempty"`

	// Namespace prefixes every metric name.
	Namespace string `json:"namespace,omitempty"`

	// Path is the scrape path.
	Path string `json:"path,omitempty"`
}

// TracingConfig contains OpenTelemetry settings.
type TracingConfig struct {
	// Enabled wraps HTTP handlers in spans.
	Enabled bool `json:"enabled,omitempty"`

	// TracerName is the instrumentation name passed to otel.Tracer.
	TracerName string `json:"tracerName,omitempty"`
}

// PublishConfig contains S3 settings.
type PublishConfig struct {
	// Bucket receives published documents.
	Bucket string `json:"bucket,omitempty"`

	// Prefix is prepended to every object key.
	Prefix string `json:"prefix,omitempty"`

	// Region is the bucket region.
	Region string `json:"region,omitempty"`

	// Endpoint overrides the S3 endpoint, e.g. for MinIO.
	Endpoint string `json:"endpoint,omitempty"`

	// UsePathStyle addresses buckets by path instead of virtual host.
	UsePathStyle bool `json:"usePathStyle,omitempty"`

	// Dir publishes to a local directory instead of a bucket.
	// Used when Bucket is empty.
	Dir string `json:"dir,omitempty"`

	// Gzip compresses documents and sets Content-Encoding.
	Gzip bool `json:"gzip,omitempty"`
}

// PublishPath returns the absolute path of the local publish directory,
// or "" when none is configured.
func (c *Config) PublishPath() string {
	path := c.Publish.Dir
	if path == "" || filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(c.Dir(), path)
}

// DocumentConfig contains the text policy for decoded documents.
type DocumentConfig struct {
	// EscapeText escapes plain text nodes. Defaults to true.
	EscapeText *bool `json:"escapeText,omitempty"`

	// SanitizeHTML passes raw HTML nodes through a sanitizing policy.
	SanitizeHTML bool `json:"sanitizeHTML,omitempty"`
}

// LogConfig contains logging settings.
type LogConfig struct {
	// Level is one of debug, info, warn or error.
	Level string `json:"level,omitempty"`
}

// New creates a new Config with default values.
func New() *Config {
	escape := true
	return &Config{
		Server: ServerConfig{
			Host:            DefaultHost,
			Port:            DefaultPort,
			DocumentsDir:    DefaultDocumentsDir,
			ReadBufferSize:  DefaultBufferSize,
			WriteBufferSize: DefaultBufferSize,
		},
		Metrics: MetricsConfig{
			Namespace: DefaultNamespace,
			Path:      DefaultMetricsPath,
		},
		Tracing: TracingConfig{
			TracerName: DefaultTracerName,
		},
		Publish: PublishConfig{
			Region: DefaultRegion,
		},
		Document: DocumentConfig{
			EscapeText: &escape,
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// Load reads configuration from the specified directory.
// It looks for markup.json in the directory.
func Load(dir string) (*Config, error) {
	configPath := filepath.Join(dir, ConfigFileName)
	return LoadFile(configPath)
}

// LoadFile reads configuration from the specified file path.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.New("E100").
				WithDetail("No " + ConfigFileName + " found in " + filepath.Dir(path)).
				WithSuggestion("Create " + ConfigFileName + " or run without --config to use defaults")
		}
		return nil, errors.New("E101").Wrap(err)
	}

	cfg := New()
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, errors.New("E101").
			WithDetail("Failed to parse " + ConfigFileName + ": " + err.Error()).
			WithSuggestion("Check that " + ConfigFileName + " is valid JSON")
	}

	cfg.configPath = path
	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Save writes the configuration to the file it was loaded from.
func (c *Config) Save() error {
	if c.configPath == "" {
		return errors.Newf(errors.CategoryConfig, "no config path set")
	}
	return c.SaveTo(c.configPath)
}

// SaveTo writes the configuration to the specified path.
func (c *Config) SaveTo(path string) error {
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return errors.New("E101").Wrap(err)
	}

	// Add newline at end of file
	data = append(data, '\n')

	if err := os.WriteFile(path, data, 0644); err != nil {
		return errors.New("E101").Wrap(err)
	}

	c.configPath = path
	return nil
}

// Path returns the path where the config was loaded from.
func (c *Config) Path() string {
	return c.configPath
}

// Dir returns the directory containing the config file.
func (c *Config) Dir() string {
	if c.configPath == "" {
		return ""
	}
	return filepath.Dir(c.configPath)
}

// applyDefaults fills in default values for empty fields.
func (c *Config) applyDefaults() {
	// Server
	if c.Server.Host == "" {
		c.Server.Host = DefaultHost
	}
	if c.Server.Port == 0 {
		c.Server.Port = DefaultPort
	}
	if c.Server.DocumentsDir == "" {
		c.Server.DocumentsDir = DefaultDocumentsDir
	}
	if c.Server.ReadBufferSize == 0 {
		c.Server.ReadBufferSize = DefaultBufferSize
	}
	if c.Server.WriteBufferSize == 0 {
		c.Server.WriteBufferSize = DefaultBufferSize
	}

	// Metrics
	if c.Metrics.Namespace == "" {
		c.Metrics.Namespace = DefaultNamespace
	}
	if c.Metrics.Path == "" {
		c.Metrics.Path = DefaultMetricsPath
	}

	// Tracing
	if c.Tracing.TracerName == "" {
		c.Tracing.TracerName = DefaultTracerName
	}

	// Publish
	if c.Publish.Region == "" {
		c.Publish.Region = DefaultRegion
	}

	// Document
	if c.Document.EscapeText == nil {
		escape := true
		c.Document.EscapeText = &escape
	}

	// Log
	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if c.Server.Port < 0 || c.Server.Port > 65535 {
		return errors.New("E102").
			WithDetail("server.port must be between 0 and 65535")
	}
	if c.Server.ReadBufferSize < 0 || c.Server.WriteBufferSize < 0 {
		return errors.New("E102").
			WithDetail("server buffer sizes must not be negative")
	}
	if !strings.HasPrefix(c.Metrics.Path, "/") {
		return errors.New("E102").
			WithDetailf("metrics.path %q must start with /", c.Metrics.Path)
	}
	if _, ok := parseLevel(c.Log.Level); !ok {
		return errors.New("E102").
			WithDetailf("log.level %q is not one of debug, info, warn, error", c.Log.Level)
	}
	return nil
}

// Address returns the host:port the server listens on.
func (c *Config) Address() string {
	return net.JoinHostPort(c.Server.Host, strconv.Itoa(c.Server.Port))
}

// DocumentsPath returns the absolute path to the documents directory.
func (c *Config) DocumentsPath() string {
	path := c.Server.DocumentsDir
	if path == "" {
		path = DefaultDocumentsDir
	}
	if filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(c.Dir(), path)
}

// EscapesText reports whether plain document text is escaped.
func (c *Config) EscapesText() bool {
	return c.Document.EscapeText == nil || *c.Document.EscapeText
}

// LogLevel returns the configured slog level, or Info when unset.
func (c *Config) LogLevel() slog.Level {
	level, _ := parseLevel(c.Log.Level)
	return level
}

func parseLevel(s string) (slog.Level, bool) {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug, true
	case "", "info":
		return slog.LevelInfo, true
	case "warn", "warning":
		return slog.LevelWarn, true
	case "error":
		return slog.LevelError, true
	default:
		return slog.LevelInfo, false
	}
}

// Exists checks if a config file exists in the given directory.
func Exists(dir string) bool {
	path := filepath.Join(dir, ConfigFileName)
	_, err := os.Stat(path)
	return err == nil
}

// FindProjectRoot walks up directories to find the project root.
// Returns the directory containing markup.json, or an error if not found.
func FindProjectRoot(startDir string) (string, error) {
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", err
	}

	for {
		if Exists(dir) {
			return dir, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", errors.New("E100").
				WithDetail("No " + ConfigFileName + " found in " + startDir + " or any parent directory")
		}
		dir = parent
	}
}

// LoadFromWorkingDir loads configuration from the nearest markup.json at
// or above the working directory. Without one, it returns the defaults.
func LoadFromWorkingDir() (*Config, error) {
	wd, err := os.Getwd()
	if err != nil {
		return nil, err
	}

	root, err := FindProjectRoot(wd)
	if err != nil {
		cfg := New()
		cfg.configPath = filepath.Join(wd, ConfigFileName)
		return cfg, nil
	}

	return Load(root)
}
