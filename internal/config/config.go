package config

import (
	"encoding/json"
	"net"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/plebishub/plebisadmin/internal/errors"
)

const (
	// ConfigFileName is the name of the configuration file.
	ConfigFileName = "plebisadmin.json"

	DefaultHost            = "0.0.0.0"
	DefaultPort            = 8080
	DefaultShutdownTimeout = "10s"
	DefaultSiteTitle       = "PlebisHub"
	DefaultLang            = "es"
	DefaultDocumentsDir    = "public/pdf"
	DefaultS3Prefix        = "pdf/"
	DefaultS3Region        = "eu-west-1"
	DefaultMetricsPath     = "/metrics"
	DefaultNamespace       = "plebisadmin"
	DefaultServiceName     = "plebisadmin"
	DefaultPollInterval    = "1s"
	DefaultLogLevel        = "info"
	DefaultLogFormat       = "text"
)

// Document store backends.
const (
	BackendDisk = "disk"
	BackendS3   = "s3"
)

// Config represents the complete plebisadmin.json configuration.
type Config struct {
	Server    ServerConfig    `json:"server"`
	Site      SiteConfig      `json:"site"`
	Documents DocumentsConfig `json:"documents"`
	Metrics   MetricsConfig   `json:"metrics"`
	Tracing   TracingConfig   `json:"tracing"`
	Dev       DevConfig       `json:"dev"`
	Log       LogConfig       `json:"log"`

	// configPath stores the path where the config was loaded from.
	configPath string
}

// ServerConfig configures the HTTP listener.
type ServerConfig struct {
	Host            string `json:"host,omitempty"`
	Port            int    `json:"port,omitempty"`
	ShutdownTimeout string `json:"shutdownTimeout,omitempty"`
}

// SiteConfig configures page chrome.
type SiteConfig struct {
	Title string `json:"title,omitempty"`
	Lang  string `json:"lang,omitempty"`
}

// DocumentsConfig selects where legal documents are served from.
type DocumentsConfig struct {
	// Backend is "disk" or "s3".
	Backend string   `json:"backend,omitempty"`
	Dir     string   `json:"dir,omitempty"`
	S3      S3Config `json:"s3"`
}

// S3Config configures the S3 document backend.
type S3Config struct {
	Bucket string `json:"bucket,omitempty"`
	Prefix string `json:"prefix,omitempty"`
	Region string `json:"region,omitempty"`
	// Endpoint overrides the AWS endpoint (S3-compatible stores).
	Endpoint        string `json:"endpoint,omitempty"`
	AccessKeyID     string `json:"accessKeyID,omitempty"`
	SecretAccessKey string `json:"secretAccessKey,omitempty"`
}

// MetricsConfig configures the Prometheus endpoint.
type MetricsConfig struct {
	Enabled   *bool  `json:"enabled,omitempty"`
	Path      string `json:"path,omitempty"`
	Namespace string `json:"namespace,omitempty"`
}

// TracingConfig configures OTLP trace export. Tracing is off when Endpoint
// is empty. Insecure defaults to false; an http:// endpoint is plaintext
// regardless.
type TracingConfig struct {
	Endpoint    string `json:"endpoint,omitempty"`
	ServiceName string `json:"serviceName,omitempty"`
	Insecure    bool   `json:"insecure,omitempty"`
}

// DevConfig configures development helpers.
type DevConfig struct {
	Reload       bool   `json:"reload,omitempty"`
	PollInterval string `json:"pollInterval,omitempty"`
}

// LogConfig configures the slog handler.
type LogConfig struct {
	Level  string `json:"level,omitempty"`
	Format string `json:"format,omitempty"`
}

// New creates a new Config with default values.
func New() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

// Load loads plebisadmin.json from dir. A missing file yields the defaults.
func Load(dir string) (*Config, error) {
	return LoadFile(filepath.Join(dir, ConfigFileName))
}

// LoadFile loads configuration from the given path.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			cfg := New()
			cfg.configPath = path
			return cfg, nil
		}
		return nil, errors.New("E101").Wrap(err)
	}

	cfg := &Config{}
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, errors.New("E101").
			Wrap(err).
			WithSuggestion("Check that " + ConfigFileName + " is valid JSON")
	}

	cfg.configPath = path
	cfg.applyDefaults()
	return cfg, nil
}

// Path returns the path the configuration was loaded from.
func (c *Config) Path() string {
	return c.configPath
}

// applyDefaults fills in unset fields.
func (c *Config) applyDefaults() {
	setDefault(&c.Server.Host, DefaultHost)
	if c.Server.Port == 0 {
		c.Server.Port = DefaultPort
	}
	setDefault(&c.Server.ShutdownTimeout, DefaultShutdownTimeout)
	setDefault(&c.Site.Title, DefaultSiteTitle)
	setDefault(&c.Site.Lang, DefaultLang)
	setDefault(&c.Documents.Backend, BackendDisk)
	setDefault(&c.Documents.Dir, DefaultDocumentsDir)
	setDefault(&c.Documents.S3.Prefix, DefaultS3Prefix)
	setDefault(&c.Documents.S3.Region, DefaultS3Region)
	if c.Metrics.Enabled == nil {
		enabled := true
		c.Metrics.Enabled = &enabled
	}
	setDefault(&c.Metrics.Path, DefaultMetricsPath)
	setDefault(&c.Metrics.Namespace, DefaultNamespace)
	setDefault(&c.Tracing.ServiceName, DefaultServiceName)
	setDefault(&c.Dev.PollInterval, DefaultPollInterval)
	setDefault(&c.Log.Level, DefaultLogLevel)
	setDefault(&c.Log.Format, DefaultLogFormat)
}

func setDefault(field *string, value string) {
	if *field == "" {
		*field = value
	}
}

// ApplyEnv applies environment overrides using lookup (os.LookupEnv in
// production).
func (c *Config) ApplyEnv(lookup func(string) (string, bool)) error {
	if v, ok := lookup("PLEBISADMIN_PORT"); ok && v != "" {
		port, err := strconv.Atoi(v)
		if err != nil {
			return errors.New("E104").Wrap(err).WithDetail("PLEBISADMIN_PORT must be an integer")
		}
		c.Server.Port = port
	}
	if v, ok := lookup("PLEBISADMIN_DOCUMENTS_DIR"); ok && v != "" {
		c.Documents.Dir = v
	}
	if v, ok := lookup("OTEL_EXPORTER_OTLP_ENDPOINT"); ok && v != "" {
		c.Tracing.Endpoint = v
	}
	if v, ok := lookup("OTEL_SERVICE_NAME"); ok && v != "" {
		c.Tracing.ServiceName = v
	}
	return nil
}

// Validate checks the configuration for errors.
func (c *Config) Validate() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return errors.New("E102").
			WithDetail("server.port must be between 1 and 65535, got " + strconv.Itoa(c.Server.Port))
	}

	switch c.Documents.Backend {
	case BackendDisk:
	case BackendS3:
		if c.Documents.S3.Bucket == "" {
			return errors.New("E102").
				WithDetail("documents.s3.bucket is required when documents.backend is \"s3\"")
		}
	default:
		return errors.New("E102").
			WithDetail("documents.backend must be \"disk\" or \"s3\", got " + strconv.Quote(c.Documents.Backend))
	}

	for name, value := range map[string]string{
		"server.shutdownTimeout": c.Server.ShutdownTimeout,
		"dev.pollInterval":       c.Dev.PollInterval,
	} {
		d, err := time.ParseDuration(value)
		if err != nil {
			return errors.New("E103").Wrap(err).WithDetail(name + " is not a valid duration")
		}
		if d <= 0 {
			return errors.New("E103").WithDetail(name + " must be positive")
		}
	}

	switch c.Log.Format {
	case "text", "json":
	default:
		return errors.New("E102").WithDetail("log.format must be \"text\" or \"json\"")
	}

	return nil
}

// Addr returns the listen address.
func (c *Config) Addr() string {
	return net.JoinHostPort(c.Server.Host, strconv.Itoa(c.Server.Port))
}

// ShutdownTimeout returns the graceful shutdown timeout. Call Validate first;
// an unparsable value yields the default.
func (c *Config) ShutdownTimeout() time.Duration {
	return durationOr(c.Server.ShutdownTimeout, DefaultShutdownTimeout)
}

// PollInterval returns the dev watcher poll interval.
func (c *Config) PollInterval() time.Duration {
	return durationOr(c.Dev.PollInterval, DefaultPollInterval)
}

// MetricsEnabled reports whether the metrics endpoint is served.
func (c *Config) MetricsEnabled() bool {
	return c.Metrics.Enabled == nil || *c.Metrics.Enabled
}

func durationOr(value, fallback string) time.Duration {
	d, err := time.ParseDuration(value)
	if err != nil || d <= 0 {
		d, _ = time.ParseDuration(fallback)
	}
	return d
}
