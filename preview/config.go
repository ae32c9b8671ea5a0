package preview

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Config configures the preview server.
type Config struct {
	// Addr is the listen address (default ":8080").
	Addr string

	// Dir holds the page files served under /pages/{name}.
	Dir string

	// MetricsPath is where the Prometheus handler is mounted (default "/metrics").
	MetricsPath string

	// Namespace prefixes every metric name (default "helmet").
	Namespace string

	// Registry collects the render metrics. Default: a fresh registry.
	Registry *prometheus.Registry

	// TracerName names the tracer used for render spans (default "helmet/preview").
	TracerName string

	// ShutdownTimeout bounds graceful shutdown in Run.
	ShutdownTimeout time.Duration
}

// Option configures the preview server.
type Option func(*Config)

func WithAddr(addr string) Option {
	return func(c *Config) {
		c.Addr = addr
	}
}

func WithDir(dir string) Option {
	return func(c *Config) {
		c.Dir = dir
	}
}

func WithMetricsPath(path string) Option {
	return func(c *Config) {
		c.MetricsPath = path
	}
}

func WithNamespace(namespace string) Option {
	return func(c *Config) {
		c.Namespace = namespace
	}
}

// WithRegistry sets the registry metrics are registered with and served from.
func WithRegistry(registry *prometheus.Registry) Option {
	return func(c *Config) {
		c.Registry = registry
	}
}

func WithTracerName(name string) Option {
	return func(c *Config) {
		c.TracerName = name
	}
}

func defaultConfig() Config {
	return Config{
		Addr:            ":8080",
		Dir:             ".",
		MetricsPath:     "/metrics",
		Namespace:       "helmet",
		TracerName:      "helmet/preview",
		ShutdownTimeout: 10 * time.Second,
	}
}
