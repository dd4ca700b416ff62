package middleware

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/fulmenhq/gofulmen/errors"
	"golang.org/x/time/rate"
)

// MaxRequestSizeHeader advertises the body limit enforced by RequestSizeLimit.
const MaxRequestSizeHeader = "X-Max-Request-Size"

// RequestSizeLimit rejects bodies larger than maxBytes. A declared
// Content-Length over the limit fails immediately; otherwise the body reader
// is capped and the decoding handler sees *http.MaxBytesError.
func RequestSizeLimit(maxBytes int64) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set(MaxRequestSizeHeader, strconv.FormatInt(maxBytes, 10))

			if r.ContentLength > maxBytes {
				envelope := errors.NewErrorEnvelope("REQUEST_TOO_LARGE",
					fmt.Sprintf("request body exceeds maximum size of %d bytes", maxBytes)).
					WithCorrelationID(GetRequestID(r.Context()))
				writeErrorResponse(w, envelope, http.StatusRequestEntityTooLarge)
				return
			}

			if r.Body != nil {
				r.Body = http.MaxBytesReader(w, r.Body, maxBytes)
			}
			next.ServeHTTP(w, r)
		})
	}
}

// RateLimit throttles inbound requests with a shared token bucket. Requests
// over the limit get 429 without reaching the upstream client.
func RateLimit(requestsPerSecond int, burst int) func(http.Handler) http.Handler {
	limiter := rate.NewLimiter(rate.Limit(requestsPerSecond), burst)

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !limiter.Allow() {
				envelope := errors.NewErrorEnvelope("RATE_LIMITED", "rate limit exceeded").
					WithCorrelationID(GetRequestID(r.Context()))
				w.Header().Set("Retry-After", "1")
				writeErrorResponse(w, envelope, http.StatusTooManyRequests)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
