// Package config defines the process configuration of the osu-query
// command and how it is loaded.
package config

import (
	"time"

	"github.com/okian/osuapi/pkg/osu/transport"
)

// Config contains process configuration.
type Config struct {
	// APIKey is the pre-shared osu! API v1 key. Required.
	APIKey string `koanf:"api_key"`

	// BaseURL is the API root, e.g. "https://osu.ppy.sh/api".
	BaseURL string `koanf:"base_url"`

	// TimeoutMS bounds each request. Zero keeps the transport default.
	TimeoutMS int `koanf:"timeout_ms"`

	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`

	// MetricsAddr serves /metrics when set, e.g. ":9090".
	MetricsAddr string `koanf:"metrics_addr"`
}

// New creates a Config holding the defaults.
func New() *Config {
	return &Config{
		BaseURL:   transport.DefaultBaseURL,
		TimeoutMS: int(transport.DefaultTimeout / time.Millisecond),
		LogLevel:  "info",
	}
}

// Timeout returns TimeoutMS as a duration.
func (c *Config) Timeout() time.Duration {
	return time.Duration(c.TimeoutMS) * time.Millisecond
}
