package transport

import (
	"net/http"
	"strings"
	"time"

	"github.com/okian/osuapi/pkg/logger"
	"github.com/okian/osuapi/pkg/metrics"
)

// Option applies a configuration option to HTTP.
type Option func(*HTTP)

// WithBaseURL overrides the API root, e.g. for a proxy or a test server.
func WithBaseURL(baseURL string) Option {
	return func(h *HTTP) {
		if baseURL != "" {
			h.baseURL = strings.TrimRight(baseURL, "/")
		}
	}
}

// WithHTTPClient sets the underlying client. Connection pooling, TLS and
// proxies are configured there.
func WithHTTPClient(client *http.Client) Option {
	return func(h *HTTP) {
		if client != nil {
			h.client = client
		}
	}
}

// WithTimeout sets the per-request timeout of the default client.
// It has no effect after WithHTTPClient.
func WithTimeout(timeout time.Duration) Option {
	return func(h *HTTP) {
		if timeout > 0 && h.client == defaultClient {
			h.client = &http.Client{Timeout: timeout}
		}
	}
}

// WithUserAgent sets the User-Agent header sent with each request.
func WithUserAgent(ua string) Option {
	return func(h *HTTP) {
		if ua != "" {
			h.userAgent = ua
		}
	}
}

// WithLogger sets a custom logger for the transport.
func WithLogger(l logger.Logger) Option {
	return func(h *HTTP) {
		if l != nil {
			h.logger = l
		}
	}
}

// WithMetrics records request metrics on m instead of the global manager.
func WithMetrics(m *metrics.Manager) Option {
	return func(h *HTTP) {
		if m != nil {
			h.metrics = m
		}
	}
}
