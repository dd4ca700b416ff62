package ensemblrest

import (
	"context"
	"net/http"
	"time"

	"github.com/Wy2160640/ensemblrest/registry"
)

// Option configures a Client.
type Option func(*settings)

type settings struct {
	baseURL    string
	headers    http.Header
	proxies    map[string]string
	httpClient *http.Client
	timeout    time.Duration
	rateLimit  int
	registry   *registry.Registry
	statuses   registry.StatusTable
	logger     Logger
	observer   Observer

	now   func() time.Time
	sleep func(context.Context, time.Duration) error
}

// WithBaseURL overrides the root URL every endpoint template is appended to.
func WithBaseURL(baseURL string) Option {
	return func(s *settings) {
		s.baseURL = baseURL
	}
}

// WithHeaders merges headers into the session headers. Caller values replace
// the defaults for the same key; other defaults are kept.
func WithHeaders(headers map[string]string) Option {
	return func(s *settings) {
		if s.headers == nil {
			s.headers = make(http.Header, len(headers))
		}
		for key, value := range headers {
			s.headers.Set(key, value)
		}
	}
}

// WithProxies sets proxy URLs by request scheme ("http", "https" or "all").
// It applies only to the transport built by the client; a client supplied via
// WithHTTPClient keeps its own proxy settings.
func WithProxies(proxies map[string]string) Option {
	return func(s *settings) {
		if s.proxies == nil {
			s.proxies = make(map[string]string, len(proxies))
		}
		for scheme, proxy := range proxies {
			s.proxies[scheme] = proxy
		}
	}
}

// WithHTTPClient uses client for every request instead of building one.
func WithHTTPClient(client *http.Client) Option {
	return func(s *settings) {
		s.httpClient = client
	}
}

// WithTimeout sets the request timeout of the built HTTP client.
func WithTimeout(d time.Duration) Option {
	return func(s *settings) {
		s.timeout = d
	}
}

// WithRateLimit sets the number of requests counted before the client pauses
// for the rest of the one-second window. Non-positive values keep the default.
func WithRateLimit(requestsPerSecond int) Option {
	return func(s *settings) {
		s.rateLimit = requestsPerSecond
	}
}

// WithRegistry binds the client to reg instead of the embedded registry.
func WithRegistry(reg *registry.Registry) Option {
	return func(s *settings) {
		s.registry = reg
	}
}

// WithStatusTable replaces the table used for fallback error messages.
func WithStatusTable(table registry.StatusTable) Option {
	return func(s *settings) {
		s.statuses = table
	}
}

// WithLogger sets the logger for request diagnostics.
func WithLogger(logger Logger) Option {
	return func(s *settings) {
		s.logger = logger
	}
}

func withClock(now func() time.Time, sleep func(context.Context, time.Duration) error) Option {
	return func(s *settings) {
		s.now = now
		s.sleep = sleep
	}
}
