package ensemblrest

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/Wy2160640/ensemblrest/registry"
)

// Sentinel errors matched by APIError kinds through errors.Is.
var (
	// ErrRateLimited matches an APIError returned for an HTTP 429 response.
	ErrRateLimited = errors.New("ensemblrest: rate limited")

	// ErrUnavailable matches an APIError returned when no HTTP response was
	// received (connection refused, DNS failure, broken body).
	ErrUnavailable = errors.New("ensemblrest: service unavailable")
)

// ErrorKind classifies an APIError.
type ErrorKind int

const (
	// KindGeneral is any error response with a status above 304 other than 429.
	KindGeneral ErrorKind = iota
	// KindRateLimited is an HTTP 429 response.
	KindRateLimited
	// KindUnavailable is a transport failure with no HTTP status.
	KindUnavailable
)

func (k ErrorKind) String() string {
	switch k {
	case KindGeneral:
		return "api_error"
	case KindRateLimited:
		return "rate_limited"
	case KindUnavailable:
		return "unavailable"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// APIError is returned when the remote service rejects a request or cannot be
// reached. StatusCode is zero for KindUnavailable.
type APIError struct {
	Kind       ErrorKind
	Operation  string
	Message    string
	StatusCode int
	// RetryAfter is the delay advertised by a 429 response, if any.
	RetryAfter time.Duration
	Err        error
}

func (e *APIError) Error() string {
	if e == nil {
		return "<nil>"
	}
	var b strings.Builder
	b.WriteString("ensemblrest: ")
	if e.Operation != "" {
		b.WriteString(e.Operation)
		b.WriteString(": ")
	}
	b.WriteString(e.Message)
	if e.StatusCode > 0 {
		fmt.Fprintf(&b, " (status %d)", e.StatusCode)
	}
	if e.Err != nil {
		fmt.Fprintf(&b, ": %v", e.Err)
	}
	return b.String()
}

// Unwrap returns the underlying transport error, if any.
func (e *APIError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// Is matches ErrRateLimited and ErrUnavailable against the error kind.
func (e *APIError) Is(target error) bool {
	if e == nil {
		return false
	}
	switch target {
	case ErrRateLimited:
		return e.Kind == KindRateLimited
	case ErrUnavailable:
		return e.Kind == KindUnavailable
	}
	return false
}

// MissingParamError is returned before any network I/O when a URL template
// placeholder has no value.
type MissingParamError struct {
	Operation string
	Missing   []string
	Mandatory []string
}

func (e *MissingParamError) Error() string {
	return fmt.Sprintf("ensemblrest: %s: mandatory param(s) %s not specified; mandatory params are %s",
		e.Operation, quoteList(e.Missing), quoteList(e.Mandatory))
}

// UnsupportedMethodError is returned when an endpoint declares a method other
// than GET or POST.
type UnsupportedMethodError struct {
	Operation string
	Method    registry.Method
}

func (e *UnsupportedMethodError) Error() string {
	return fmt.Sprintf("ensemblrest: %s: method %q not implemented", e.Operation, string(e.Method))
}

// UnknownOperationError is returned when the operation name is not in the
// client's registry.
type UnknownOperationError struct {
	Operation string
}

func (e *UnknownOperationError) Error() string {
	return fmt.Sprintf("ensemblrest: unknown operation %q", e.Operation)
}

// IsRateLimited reports whether err is a 429 APIError.
func IsRateLimited(err error) bool {
	return errors.Is(err, ErrRateLimited)
}

// IsUnavailable reports whether err is a transport-level APIError.
func IsUnavailable(err error) bool {
	return errors.Is(err, ErrUnavailable)
}

// StatusCode returns the HTTP status attached to err, or zero.
func StatusCode(err error) int {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode
	}
	return 0
}

func quoteList(values []string) string {
	quoted := make([]string, len(values))
	for i, v := range values {
		quoted[i] = "'" + v + "'"
	}
	return "[" + strings.Join(quoted, ", ") + "]"
}
