package config

import (
	"fmt"
	"time"

	"github.com/Wy2160640/ensemblrest"
	"github.com/Wy2160640/ensemblrest/internal/observability"
)

// Config is the complete ensemblrest CLI and gateway configuration.
type Config struct {
	Client  ClientConfig  `mapstructure:"client"`
	Server  ServerConfig  `mapstructure:"server"`
	Logging LoggingConfig `mapstructure:"logging"`
	Metrics MetricsConfig `mapstructure:"metrics"`
}

// ClientConfig configures the REST client.
type ClientConfig struct {
	// BaseURL overrides the service root. Empty selects the Ensembl default,
	// or the Ensembl Genomes default when Genomes is set.
	BaseURL string `mapstructure:"base_url"`
	Genomes bool   `mapstructure:"genomes"`

	Headers map[string]string `mapstructure:"headers"`
	// Proxies maps a request scheme ("http", "https", "all") to a proxy URL.
	Proxies map[string]string `mapstructure:"proxies"`

	Timeout           time.Duration `mapstructure:"timeout"`
	RequestsPerSecond int           `mapstructure:"requests_per_second"`
}

// ServerConfig contains gateway configuration.
type ServerConfig struct {
	Host            string        `mapstructure:"host"`
	Port            int           `mapstructure:"port"`
	ReadTimeout     time.Duration `mapstructure:"read_timeout"`
	WriteTimeout    time.Duration `mapstructure:"write_timeout"`
	IdleTimeout     time.Duration `mapstructure:"idle_timeout"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`

	// MaxBodyBytes bounds POST bodies accepted by /api/{operation}.
	MaxBodyBytes int64 `mapstructure:"max_body_bytes"`

	RateLimit RateLimitConfig `mapstructure:"rate_limit"`
}

// RateLimitConfig throttles inbound gateway requests. It is independent of
// the client's own upstream limit.
type RateLimitConfig struct {
	Enabled           bool `mapstructure:"enabled"`
	RequestsPerSecond int  `mapstructure:"requests_per_second"`
	Burst             int  `mapstructure:"burst"`
}

// LoggingConfig contains logging configuration.
type LoggingConfig struct {
	// Level controls the minimum log level.
	// Valid values: trace, debug, info, warn, error
	Level string `mapstructure:"level"`
}

// MetricsConfig contains Prometheus metrics configuration.
type MetricsConfig struct {
	Enabled bool `mapstructure:"enabled"`
	// Port is the dedicated exporter port; /metrics on the gateway proxies it.
	Port int `mapstructure:"port"`
}

// Validate checks value ranges.
func (c *Config) Validate() error {
	if c.Client.RequestsPerSecond < 0 {
		return fmt.Errorf("client.requests_per_second must be >= 0, got %d", c.Client.RequestsPerSecond)
	}
	if c.Client.Timeout < 0 {
		return fmt.Errorf("client.timeout must be >= 0, got %s", c.Client.Timeout)
	}
	if err := validatePort("server.port", c.Server.Port); err != nil {
		return err
	}
	if err := validatePort("metrics.port", c.Metrics.Port); err != nil {
		return err
	}
	if c.Server.MaxBodyBytes < 0 {
		return fmt.Errorf("server.max_body_bytes must be >= 0, got %d", c.Server.MaxBodyBytes)
	}
	if rl := c.Server.RateLimit; rl.Enabled && (rl.RequestsPerSecond <= 0 || rl.Burst <= 0) {
		return fmt.Errorf("server.rate_limit requires positive requests_per_second and burst when enabled")
	}
	if !observability.ValidLogLevel(c.Logging.Level) {
		return fmt.Errorf("logging.level %q is not one of trace, debug, info, warn, error", c.Logging.Level)
	}
	return nil
}

func validatePort(key string, port int) error {
	if port < 0 || port > 65535 {
		return fmt.Errorf("%s must be between 0 and 65535, got %d", key, port)
	}
	return nil
}

// Options converts the client section into constructor options.
func (c ClientConfig) Options() []ensemblrest.Option {
	var opts []ensemblrest.Option
	if c.BaseURL != "" {
		opts = append(opts, ensemblrest.WithBaseURL(c.BaseURL))
	}
	if len(c.Headers) > 0 {
		opts = append(opts, ensemblrest.WithHeaders(c.Headers))
	}
	if len(c.Proxies) > 0 {
		opts = append(opts, ensemblrest.WithProxies(c.Proxies))
	}
	if c.Timeout > 0 {
		opts = append(opts, ensemblrest.WithTimeout(c.Timeout))
	}
	if c.RequestsPerSecond > 0 {
		opts = append(opts, ensemblrest.WithRateLimit(c.RequestsPerSecond))
	}
	return opts
}

// NewClient builds the configured client. extra options are applied after
// the configured ones.
func (c ClientConfig) NewClient(extra ...ensemblrest.Option) (*ensemblrest.Client, error) {
	opts := append(c.Options(), extra...)
	if c.Genomes {
		return ensemblrest.NewGenome(opts...)
	}
	return ensemblrest.New(opts...)
}
