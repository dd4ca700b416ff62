package ensemblrest

import (
	"context"
	"time"
)

// CallStats describes one request that reached the transport.
type CallStats struct {
	RequestID  string
	Operation  string
	Method     string
	StatusCode int
	// Duration covers the HTTP exchange only; Waited is the time spent in
	// the rate limiter before it.
	Duration time.Duration
	Waited   time.Duration
	Err      error
}

// Observer is notified after every request the client sends. Calls rejected
// before any I/O (unknown operation, missing params) are not observed.
type Observer interface {
	ObserveCall(CallStats)
}

// ObserverFunc adapts a function to Observer.
type ObserverFunc func(CallStats)

func (f ObserverFunc) ObserveCall(stats CallStats) {
	f(stats)
}

// WithObserver registers an observer for dispatched requests.
func WithObserver(observer Observer) Option {
	return func(s *settings) {
		s.observer = observer
	}
}

type nopObserver struct{}

func (nopObserver) ObserveCall(CallStats) {}

type requestIDKey struct{}

// ContextWithRequestID makes calls dispatched with ctx log and report id
// instead of a generated request ID.
func ContextWithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey{}, id)
}

// RequestIDFromContext returns the request ID set by ContextWithRequestID.
func RequestIDFromContext(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(requestIDKey{}).(string)
	return id, ok && id != ""
}
