package ensemblrest

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"reflect"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/Wy2160640/ensemblrest/registry"
)

// LastResponse records the most recent exchange for diagnostics.
type LastResponse struct {
	RequestID  string
	Operation  string
	Method     string
	URL        string
	StatusCode int
	Header     http.Header
	Body       []byte
	Duration   time.Duration
}

// LastResponse returns a copy of the last recorded exchange, or nil.
func (c *Client) LastResponse() *LastResponse {
	c.lastMu.Lock()
	defer c.lastMu.Unlock()
	if c.last == nil {
		return nil
	}
	copied := *c.last
	copied.Header = c.last.Header.Clone()
	copied.Body = append([]byte(nil), c.last.Body...)
	return &copied
}

// Call dispatches the named operation. JSON endpoints return the decoded
// value (map[string]any, []any, ...); other content types return the body as
// a string.
func (c *Client) Call(ctx context.Context, name string, params Params) (any, error) {
	ep, body, err := c.dispatch(ctx, name, params)
	if err != nil {
		return nil, err
	}

	if !isJSON(ep.ContentType) {
		return string(body), nil
	}

	var payload any
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, fmt.Errorf("ensemblrest: %s: decode response: %w", name, err)
	}
	return payload, nil
}

// CallInto dispatches the named operation and decodes a successful JSON
// response into out. A *string out receives the raw body for any content type.
func (c *Client) CallInto(ctx context.Context, name string, params Params, out any) error {
	_, body, err := c.dispatch(ctx, name, params)
	if err != nil {
		return err
	}

	if s, ok := out.(*string); ok {
		*s = string(body)
		return nil
	}
	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("ensemblrest: %s: decode response: %w", name, err)
	}
	return nil
}

func (c *Client) dispatch(ctx context.Context, name string, params Params) (*registry.Endpoint, []byte, error) {
	if ctx == nil {
		ctx = context.Background()
	}

	op, ok := c.byName[name]
	if !ok {
		return nil, nil, &UnknownOperationError{Operation: name}
	}
	ep := op.Endpoint

	lookup := func(key string) (string, bool) {
		value, ok := params[key]
		if !ok || value == nil {
			return "", false
		}
		return formatParam(value), true
	}

	if missing := ep.Template.Missing(lookup); len(missing) > 0 {
		err := &MissingParamError{Operation: name, Missing: missing, Mandatory: ep.Params()}
		c.logger.Error("Mandatory param not specified",
			zap.String("operation", name),
			zap.Strings("missing", missing),
			zap.Strings("mandatory", ep.Params()))
		return nil, nil, err
	}

	path, err := ep.Template.Expand(lookup)
	if err != nil {
		return nil, nil, err
	}
	target := c.baseURL + path

	rest := make(Params, len(params))
	for key, value := range params {
		if !ep.Template.HasParam(key) {
			rest[key] = value
		}
	}

	requestID, ok := RequestIDFromContext(ctx)
	if !ok {
		requestID = uuid.New().String()
	}
	c.logger.Debug("Resolved url",
		zap.String("request_id", requestID),
		zap.String("operation", name),
		zap.String("url", target))

	req, err := c.newRequest(ctx, name, ep, target, rest)
	if err != nil {
		return nil, nil, err
	}

	waited, err := c.limiter.Wait(ctx)
	if err != nil {
		return nil, nil, err
	}
	if waited > 0 {
		c.logger.Debug("Rate limit window exhausted, waited",
			zap.String("request_id", requestID),
			zap.Duration("waited", waited))
	}

	c.logger.Debug("Submitting request",
		zap.String("request_id", requestID),
		zap.String("method", req.Method),
		zap.String("url", req.URL.String()),
		zap.String("content_type", ep.ContentType),
		zap.Any("params", map[string]any(rest)))

	stats := CallStats{RequestID: requestID, Operation: name, Method: req.Method, Waited: waited}
	observe := func(status int, err error) error {
		stats.StatusCode = status
		stats.Err = err
		c.observer.ObserveCall(stats)
		return err
	}

	started := time.Now()
	resp, err := c.httpClient.Do(req)
	stats.Duration = time.Since(started)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, nil, observe(0, ctxErr)
		}
		c.logger.Debug("Request failed",
			zap.String("request_id", requestID),
			zap.Error(err))
		return nil, nil, observe(0, &APIError{Kind: KindUnavailable, Operation: name, Message: "service unavailable", Err: err})
	}
	defer resp.Body.Close() // nolint:errcheck // best-effort cleanup on HTTP response body

	body, err := io.ReadAll(resp.Body)
	stats.Duration = time.Since(started)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, nil, observe(resp.StatusCode, ctxErr)
		}
		return nil, nil, observe(resp.StatusCode, &APIError{Kind: KindUnavailable, Operation: name, Message: "read response body", StatusCode: resp.StatusCode, Err: err})
	}

	c.setLast(&LastResponse{
		RequestID:  requestID,
		Operation:  name,
		Method:     req.Method,
		URL:        req.URL.String(),
		StatusCode: resp.StatusCode,
		Header:     resp.Header.Clone(),
		Body:       body,
		Duration:   stats.Duration,
	})

	c.logger.Debug("Received response",
		zap.String("request_id", requestID),
		zap.Int("status", resp.StatusCode),
		zap.Int("bytes", len(body)))

	if apiErr := c.classify(name, resp, body); apiErr != nil {
		return nil, nil, observe(resp.StatusCode, apiErr)
	}
	_ = observe(resp.StatusCode, nil)
	return ep, body, nil
}

func (c *Client) newRequest(ctx context.Context, name string, ep *registry.Endpoint, target string, rest Params) (*http.Request, error) {
	var (
		req *http.Request
		err error
	)

	switch ep.Method {
	case registry.MethodGet:
		req, err = http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
		if err != nil {
			return nil, fmt.Errorf("ensemblrest: %s: build request: %w", name, err)
		}
		if query := queryValues(rest); len(query) > 0 {
			existing := req.URL.Query()
			for key, values := range query {
				existing[key] = append(existing[key], values...)
			}
			req.URL.RawQuery = existing.Encode()
		}
	case registry.MethodPost:
		payload, err := json.Marshal(map[string]any(rest))
		if err != nil {
			return nil, fmt.Errorf("ensemblrest: %s: encode body: %w", name, err)
		}
		req, err = http.NewRequestWithContext(ctx, http.MethodPost, target, bytes.NewReader(payload))
		if err != nil {
			return nil, fmt.Errorf("ensemblrest: %s: build request: %w", name, err)
		}
	default:
		return nil, &UnsupportedMethodError{Operation: name, Method: ep.Method}
	}

	req.Header = c.headers.Clone()
	req.Header.Set("Content-Type", ep.ContentType)
	return req, nil
}

// classify turns responses with a status above 304 into an APIError.
func (c *Client) classify(name string, resp *http.Response, body []byte) error {
	if resp.StatusCode <= http.StatusNotModified {
		return nil
	}

	message := ""
	if resp.StatusCode == http.StatusBadRequest {
		message = errorField(body)
	}
	if message == "" {
		message = c.statuses.Message(resp.StatusCode)
	}

	apiErr := &APIError{
		Kind:       KindGeneral,
		Operation:  name,
		Message:    message,
		StatusCode: resp.StatusCode,
	}
	if resp.StatusCode == http.StatusTooManyRequests {
		apiErr.Kind = KindRateLimited
		apiErr.RetryAfter = retryAfter(resp)
	}

	c.logger.Debug("Request rejected",
		zap.String("operation", name),
		zap.Int("status", resp.StatusCode),
		zap.String("kind", apiErr.Kind.String()),
		zap.String("message", message))
	return apiErr
}

func (c *Client) setLast(last *LastResponse) {
	c.lastMu.Lock()
	c.last = last
	c.lastMu.Unlock()
}

// errorField extracts the "error" member of a JSON error body.
func errorField(body []byte) string {
	var payload map[string]any
	if err := json.Unmarshal(body, &payload); err != nil {
		return ""
	}
	value, ok := payload["error"]
	if !ok || value == nil {
		return ""
	}
	if s, ok := value.(string); ok {
		return s
	}
	return fmt.Sprint(value)
}

func retryAfter(resp *http.Response) time.Duration {
	value := strings.TrimSpace(resp.Header.Get("Retry-After"))
	if value == "" {
		return 0
	}
	if seconds, err := time.ParseDuration(value + "s"); err == nil {
		return max(seconds, 0)
	}
	if parsed, err := http.ParseTime(value); err == nil {
		if wait := time.Until(parsed); wait > 0 {
			return wait
		}
	}
	return 0
}

// queryValues encodes params as query values. Slices become repeated keys,
// booleans become 1/0 and nil values are dropped.
func queryValues(params Params) url.Values {
	values := url.Values{}
	for key, value := range params {
		switch v := value.(type) {
		case nil:
			continue
		case string:
			values.Add(key, v)
		case []string:
			for _, item := range v {
				values.Add(key, item)
			}
		case bool:
			if v {
				values.Add(key, "1")
			} else {
				values.Add(key, "0")
			}
		case []byte:
			values.Add(key, string(v))
		default:
			rv := reflect.ValueOf(value)
			if rv.Kind() == reflect.Slice || rv.Kind() == reflect.Array {
				for i := 0; i < rv.Len(); i++ {
					values.Add(key, formatParam(rv.Index(i).Interface()))
				}
				continue
			}
			values.Add(key, formatParam(value))
		}
	}
	return values
}

// formatParam renders a param value for a URL path or query string. Floats
// use plain decimal notation since JSON bodies decode every number as float64.
func formatParam(value any) string {
	switch v := value.(type) {
	case string:
		return v
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(v), 'f', -1, 32)
	case json.Number:
		return v.String()
	default:
		return fmt.Sprint(value)
	}
}

func isJSON(contentType string) bool {
	mediaType := contentType
	if i := strings.IndexByte(mediaType, ';'); i >= 0 {
		mediaType = mediaType[:i]
	}
	return strings.EqualFold(strings.TrimSpace(mediaType), "application/json")
}

