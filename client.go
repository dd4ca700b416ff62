package ensemblrest

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/Wy2160640/ensemblrest/registry"
)

const (
	// DefaultBaseURL is the root of the Ensembl REST service.
	DefaultBaseURL = "https://rest.ensembl.org"
	// GenomesBaseURL is the root of the Ensembl Genomes REST service.
	GenomesBaseURL = "https://rest.ensemblgenomes.org"

	// DefaultContentType is sent when no endpoint overrides it.
	DefaultContentType = "application/json"

	// DefaultTimeout bounds a single request made by the built HTTP client.
	DefaultTimeout = 60 * time.Second
)

// Params are the keyword arguments of an operation. Keys matching URL
// template placeholders are substituted into the path; the rest are sent as
// query parameters (GET) or JSON body fields (POST).
type Params map[string]any

// Client dispatches registry operations against one REST service.
//
// A Client may be shared between goroutines; its rate limit is per instance.
type Client struct {
	baseURL    string
	headers    http.Header
	proxies    map[string]string
	httpClient *http.Client

	registry *registry.Registry
	statuses registry.StatusTable
	limiter  *fixedWindow
	logger   Logger
	observer Observer

	operations []*Operation
	byName     map[string]*Operation

	lastMu sync.Mutex
	last   *LastResponse
}

// Operation is a registry entry bound to a client.
type Operation struct {
	Name     string
	Doc      string
	Endpoint *registry.Endpoint

	client *Client
}

// Call dispatches the operation with params.
func (o *Operation) Call(ctx context.Context, params Params) (any, error) {
	return o.client.Call(ctx, o.Name, params)
}

// Params returns the mandatory parameters of the operation.
func (o *Operation) Params() []string {
	return o.Endpoint.Params()
}

// New creates a client for the Ensembl REST service.
func New(opts ...Option) (*Client, error) {
	return newClient(DefaultBaseURL, opts)
}

// NewGenome creates a client for the Ensembl Genomes REST service. It differs
// from New only in its default base URL.
func NewGenome(opts ...Option) (*Client, error) {
	return newClient(GenomesBaseURL, opts)
}

func newClient(defaultBaseURL string, opts []Option) (*Client, error) {
	s := &settings{}
	for _, opt := range opts {
		if opt != nil {
			opt(s)
		}
	}

	baseURL := strings.TrimSpace(s.baseURL)
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	if _, err := url.Parse(baseURL); err != nil {
		return nil, fmt.Errorf("ensemblrest: invalid base url %q: %w", baseURL, err)
	}
	baseURL = strings.TrimRight(baseURL, "/")

	reg := s.registry
	statuses := s.statuses
	if reg == nil || statuses == nil {
		defReg, defStatuses, err := registry.LoadDefaults()
		if err != nil {
			return nil, fmt.Errorf("ensemblrest: load embedded registry: %w", err)
		}
		if reg == nil {
			reg = defReg
			if err := checkGeneratedOperations(reg); err != nil {
				return nil, err
			}
		}
		if statuses == nil {
			statuses = defStatuses
		}
	}

	httpClient := s.httpClient
	if httpClient == nil {
		built, err := buildHTTPClient(s.proxies, s.timeout)
		if err != nil {
			return nil, err
		}
		httpClient = built
	}

	logger := s.logger
	if logger == nil {
		logger = nopLogger()
	}
	observer := s.observer
	if observer == nil {
		observer = nopObserver{}
	}

	c := &Client{
		baseURL:    baseURL,
		headers:    mergeHeaders(s.headers),
		proxies:    copyStrings(s.proxies),
		httpClient: httpClient,
		registry:   reg,
		statuses:   statuses,
		limiter:    newFixedWindow(s.rateLimit, s.now, s.sleep),
		logger:     logger,
		observer:   observer,
		byName:     make(map[string]*Operation, reg.Len()),
	}
	for _, ep := range reg.List() {
		op := &Operation{Name: ep.Name, Doc: ep.Doc, Endpoint: ep, client: c}
		c.operations = append(c.operations, op)
		c.byName[ep.Name] = op
	}
	return c, nil
}

// mergeHeaders returns the default session headers overlaid with overrides.
func mergeHeaders(overrides http.Header) http.Header {
	headers := http.Header{}
	headers.Set("User-Agent", UserAgent)
	headers.Set("Content-Type", DefaultContentType)
	for key, values := range overrides {
		headers[http.CanonicalHeaderKey(key)] = append([]string(nil), values...)
	}
	return headers
}

func buildHTTPClient(proxies map[string]string, timeout time.Duration) (*http.Client, error) {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	parsed := make(map[string]*url.URL, len(proxies))
	for scheme, raw := range proxies {
		if strings.TrimSpace(raw) == "" {
			continue
		}
		proxyURL, err := url.Parse(raw)
		if err != nil {
			return nil, fmt.Errorf("ensemblrest: invalid %s proxy %q: %w", scheme, raw, err)
		}
		parsed[strings.ToLower(scheme)] = proxyURL
	}

	transport := http.DefaultTransport.(*http.Transport).Clone()
	transport.Proxy = func(req *http.Request) (*url.URL, error) {
		if proxyURL, ok := parsed[req.URL.Scheme]; ok {
			return proxyURL, nil
		}
		if proxyURL, ok := parsed["all"]; ok {
			return proxyURL, nil
		}
		return http.ProxyFromEnvironment(req)
	}

	return &http.Client{Transport: transport, Timeout: timeout}, nil
}

func checkGeneratedOperations(reg *registry.Registry) error {
	var missing []string
	for _, name := range generatedOperations {
		if _, ok := reg.Get(name); !ok {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("ensemblrest: generated operations missing from registry: %s (run go generate)", strings.Join(missing, ", "))
	}
	return nil
}

// BaseURL returns the root URL requests are sent to.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Headers returns a copy of the session headers.
func (c *Client) Headers() http.Header {
	return c.headers.Clone()
}

// Proxies returns a copy of the configured proxies.
func (c *Client) Proxies() map[string]string {
	return copyStrings(c.proxies)
}

// Registry returns the registry the client is bound to.
func (c *Client) Registry() *registry.Registry {
	return c.registry
}

// Operations returns the bound operations in registry order.
func (c *Client) Operations() []*Operation {
	out := make([]*Operation, len(c.operations))
	copy(out, c.operations)
	return out
}

// Operation returns the bound operation registered under name.
func (c *Client) Operation(name string) (*Operation, bool) {
	op, ok := c.byName[name]
	return op, ok
}

// RateState returns a snapshot of the client's rate limiter.
func (c *Client) RateState() RateState {
	return c.limiter.Snapshot()
}

func copyStrings(in map[string]string) map[string]string {
	out := make(map[string]string, len(in))
	for k, v := range in {
		out[k] = v
	}
	return out
}
