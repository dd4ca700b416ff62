// Package errors maps gateway and client failures onto gofulmen error
// envelopes and writes them as JSON error responses.
package errors

import (
	"context"
	"encoding/json"
	stderrors "errors"
	"math"
	"net/http"
	"strconv"

	"github.com/fulmenhq/gofulmen/errors"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/Wy2160640/ensemblrest"
	"github.com/Wy2160640/ensemblrest/internal/metrics"
	"github.com/Wy2160640/ensemblrest/internal/observability"
	"github.com/Wy2160640/ensemblrest/internal/server/middleware"
)

// Envelope codes used by the gateway.
const (
	CodeInvalidInput       = "INVALID_INPUT"
	CodeNotFound           = "NOT_FOUND"
	CodeMethodNotAllowed   = "METHOD_NOT_ALLOWED"
	CodeRequestTooLarge    = "REQUEST_TOO_LARGE"
	CodeRateLimited        = "RATE_LIMITED"
	CodeInternal           = "INTERNAL_ERROR"
	CodeUpstream           = "UPSTREAM_ERROR"
	CodeServiceUnavailable = "SERVICE_UNAVAILABLE"
	CodeTimeout            = "TIMEOUT"
)

// User Errors (400-level)
func NewInvalidInputError(message string) *errors.ErrorEnvelope {
	return errors.NewErrorEnvelope(CodeInvalidInput, message)
}

func NewNotFoundError(message string) *errors.ErrorEnvelope {
	return errors.NewErrorEnvelope(CodeNotFound, message)
}

func NewMethodNotAllowedError(message string) *errors.ErrorEnvelope {
	return errors.NewErrorEnvelope(CodeMethodNotAllowed, message)
}

func NewRequestTooLargeError(message string) *errors.ErrorEnvelope {
	return errors.NewErrorEnvelope(CodeRequestTooLarge, message)
}

func NewRateLimitedError(message string) *errors.ErrorEnvelope {
	return errors.NewErrorEnvelope(CodeRateLimited, message)
}

// Server Errors (500-level)
func NewInternalError(message string) *errors.ErrorEnvelope {
	return errors.NewErrorEnvelope(CodeInternal, message)
}

func NewServiceUnavailableError(message string) *errors.ErrorEnvelope {
	return errors.NewErrorEnvelope(CodeServiceUnavailable, message)
}

// Wrap functions attach the request's correlation ID and the wrapped error text.

func WrapInvalidInput(ctx context.Context, err error, message string) *errors.ErrorEnvelope {
	return wrap(ctx, CodeInvalidInput, err, message)
}

func WrapInternal(ctx context.Context, err error, message string) *errors.ErrorEnvelope {
	return wrap(ctx, CodeInternal, err, message)
}

func wrap(ctx context.Context, code string, err error, message string) *errors.ErrorEnvelope {
	envelope := errors.NewErrorEnvelope(code, message)
	envelope = envelope.WithCorrelationID(extractCorrelationID(ctx))
	return withWrappedError(envelope, err)
}

// FromClientError translates an error returned by ensemblrest.Client into an
// envelope whose code selects the gateway's HTTP status.
func FromClientError(ctx context.Context, operation string, err error) *errors.ErrorEnvelope {
	var (
		missing     *ensemblrest.MissingParamError
		unknown     *ensemblrest.UnknownOperationError
		unsupported *ensemblrest.UnsupportedMethodError
		apiErr      *ensemblrest.APIError
	)

	var envelope *errors.ErrorEnvelope
	switch {
	case err == nil:
		return EnsureEnvelope(nil)
	case stderrors.As(err, &missing):
		envelope = errors.NewErrorEnvelope(CodeInvalidInput, err.Error())
		envelope = envelope.WithDetails(map[string]interface{}{
			"missing":   missing.Missing,
			"mandatory": missing.Mandatory,
		})
	case stderrors.As(err, &unknown):
		envelope = errors.NewErrorEnvelope(CodeNotFound, err.Error())
	case stderrors.As(err, &unsupported):
		envelope = errors.NewErrorEnvelope(CodeInternal, err.Error())
		envelope, _ = envelope.WithSeverity(errors.SeverityHigh)
	case stderrors.Is(err, context.DeadlineExceeded):
		envelope = errors.NewErrorEnvelope(CodeTimeout, "upstream request timed out")
	case stderrors.Is(err, context.Canceled):
		envelope = errors.NewErrorEnvelope(CodeServiceUnavailable, "request cancelled")
	case stderrors.As(err, &apiErr):
		envelope = fromAPIError(apiErr)
	default:
		envelope = errors.NewErrorEnvelope(CodeInternal, "unexpected error")
		envelope = withWrappedError(envelope, err)
		envelope, _ = envelope.WithSeverity(errors.SeverityHigh)
	}

	if operation != "" {
		if updated, ctxErr := envelope.WithContext(map[string]interface{}{"operation": operation}); ctxErr == nil {
			envelope = updated
		}
	}
	return envelope.WithCorrelationID(extractCorrelationID(ctx))
}

func fromAPIError(apiErr *ensemblrest.APIError) *errors.ErrorEnvelope {
	switch apiErr.Kind {
	case ensemblrest.KindRateLimited:
		envelope := errors.NewErrorEnvelope(CodeRateLimited, apiErr.Message)
		details := map[string]interface{}{"upstream_status": apiErr.StatusCode}
		if apiErr.RetryAfter > 0 {
			details["retry_after_seconds"] = retryAfterSeconds(apiErr)
		}
		return envelope.WithDetails(details)
	case ensemblrest.KindUnavailable:
		envelope := errors.NewErrorEnvelope(CodeServiceUnavailable, apiErr.Message)
		envelope, _ = envelope.WithSeverity(errors.SeverityMedium)
		return withWrappedError(envelope, apiErr.Err)
	}

	code := CodeUpstream
	switch apiErr.StatusCode {
	case http.StatusBadRequest:
		code = CodeInvalidInput
	case http.StatusNotFound:
		code = CodeNotFound
	}
	envelope := errors.NewErrorEnvelope(code, apiErr.Message)
	return envelope.WithDetails(map[string]interface{}{"upstream_status": apiErr.StatusCode})
}

func retryAfterSeconds(apiErr *ensemblrest.APIError) int {
	return int(math.Ceil(apiErr.RetryAfter.Seconds()))
}

// RetryAfter returns the Retry-After header value advertised by err, if any.
func RetryAfter(err error) (string, bool) {
	var apiErr *ensemblrest.APIError
	if !stderrors.As(err, &apiErr) || apiErr.Kind != ensemblrest.KindRateLimited || apiErr.RetryAfter <= 0 {
		return "", false
	}
	return strconv.Itoa(retryAfterSeconds(apiErr)), true
}

// extractCorrelationID gets correlation ID from context, falls back to generating new UUID
func extractCorrelationID(ctx context.Context) string {
	if ctx != nil {
		if requestID := middleware.GetRequestID(ctx); requestID != "" {
			return requestID
		}
	}
	return uuid.New().String()
}

// EnsureEnvelope normalizes any error into a gofulmen ErrorEnvelope.
func EnsureEnvelope(err error) *errors.ErrorEnvelope {
	if err == nil {
		env := errors.NewErrorEnvelope(CodeInternal, "unexpected nil error")
		env, _ = env.WithSeverity(errors.SeverityCritical)
		return env
	}

	var envelope *errors.ErrorEnvelope
	if stderrors.As(err, &envelope) && envelope != nil {
		return envelope
	}

	env := errors.NewErrorEnvelope(CodeInternal, "unexpected error")
	env = withWrappedError(env, err)
	env, _ = env.WithSeverity(errors.SeverityHigh)
	return env
}

// EnsureCorrelationID attaches a correlation ID to the envelope using the context when available.
func EnsureCorrelationID(envelope *errors.ErrorEnvelope, ctx context.Context) *errors.ErrorEnvelope {
	if envelope == nil {
		return nil
	}

	if envelope.CorrelationID != "" {
		return envelope
	}

	var correlationID string
	if ctx != nil {
		correlationID = middleware.GetRequestID(ctx)
	}

	if correlationID == "" {
		correlationID = "fallback-" + errors.GenerateCorrelationID()
	}

	return envelope.WithCorrelationID(correlationID)
}

// HTTPStatusFromEnvelope resolves the HTTP status code corresponding to an error envelope.
func HTTPStatusFromEnvelope(envelope *errors.ErrorEnvelope) int {
	if envelope == nil {
		return http.StatusInternalServerError
	}
	return HTTPStatusFromCode(envelope.Code)
}

// HTTPStatusFromCode resolves the HTTP status code corresponding to an error code.
func HTTPStatusFromCode(code string) int {
	switch code {
	case CodeInvalidInput:
		return http.StatusBadRequest
	case CodeNotFound:
		return http.StatusNotFound
	case CodeMethodNotAllowed:
		return http.StatusMethodNotAllowed
	case CodeRequestTooLarge:
		return http.StatusRequestEntityTooLarge
	case CodeRateLimited:
		return http.StatusTooManyRequests
	case CodeTimeout:
		return http.StatusGatewayTimeout
	case CodeUpstream:
		return http.StatusBadGateway
	case CodeServiceUnavailable:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

func withWrappedError(envelope *errors.ErrorEnvelope, err error) *errors.ErrorEnvelope {
	if envelope == nil || err == nil {
		return envelope
	}

	updated, updateErr := envelope.WithContext(map[string]interface{}{
		"wrapped_error": err.Error(),
	})
	if updateErr != nil {
		return envelope
	}
	return updated
}

// ResponseDetails constructs API-safe details map by merging envelope details and context.
func ResponseDetails(envelope *errors.ErrorEnvelope) map[string]interface{} {
	if envelope == nil {
		return nil
	}

	details := make(map[string]interface{})

	for key, value := range envelope.Details {
		details[key] = value
	}

	for key, value := range envelope.Context {
		if _, exists := details[key]; !exists {
			details[key] = value
		}
	}

	if len(details) == 0 {
		return nil
	}

	return details
}

// HTTPErrorDetail captures the error body returned to callers.
type HTTPErrorDetail struct {
	Code      string                 `json:"code"`
	Message   string                 `json:"message"`
	Details   map[string]interface{} `json:"details,omitempty"`
	RequestID string                 `json:"request_id,omitempty"`
}

// HTTPErrorResponse wraps HTTPErrorDetail in the standard envelope structure.
type HTTPErrorResponse struct {
	Error HTTPErrorDetail `json:"error"`
}

// RespondWithError normalizes the supplied error and writes a JSON response.
func RespondWithError(w http.ResponseWriter, r *http.Request, err error) {
	RespondWithEnvelope(w, r, EnsureEnvelope(err))
}

// RespondWithEnvelope finalizes the provided envelope, logging and emitting metrics.
func RespondWithEnvelope(w http.ResponseWriter, r *http.Request, envelope *errors.ErrorEnvelope) {
	if w == nil {
		return
	}

	if r != nil {
		envelope = EnsureCorrelationID(envelope, r.Context())
	} else {
		envelope = EnsureCorrelationID(envelope, nil)
	}

	statusCode := HTTPStatusFromEnvelope(envelope)

	response := HTTPErrorResponse{
		Error: HTTPErrorDetail{
			Code:      envelope.Code,
			Message:   envelope.Message,
			Details:   ResponseDetails(envelope),
			RequestID: envelope.CorrelationID,
		},
	}

	logHTTPError(envelope, statusCode)
	emitErrorMetrics(r, envelope, statusCode)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(response)
}

func logHTTPError(envelope *errors.ErrorEnvelope, statusCode int) {
	if observability.ServerLogger == nil || envelope == nil {
		return
	}

	fields := []zap.Field{
		zap.String("error_code", envelope.Code),
		zap.Int("http_status", statusCode),
	}

	if envelope.Severity != "" {
		fields = append(fields, zap.String("severity", string(envelope.Severity)))
	}

	for key, value := range envelope.Context {
		fields = append(fields, zap.Any(key, value))
	}

	if envelope.CorrelationID != "" {
		fields = append(fields, zap.String("request_id", envelope.CorrelationID))
	}

	switch envelope.Severity {
	case errors.SeverityCritical, errors.SeverityHigh:
		observability.ServerLogger.Error(envelope.Message, fields...)
	case errors.SeverityMedium:
		observability.ServerLogger.Warn(envelope.Message, fields...)
	default:
		observability.ServerLogger.Info(envelope.Message, fields...)
	}
}

func emitErrorMetrics(r *http.Request, envelope *errors.ErrorEnvelope, statusCode int) {
	if envelope == nil {
		return
	}

	metrics.RecordError(envelope.Code, statusCode)
	if r != nil {
		metrics.RecordErrorByEndpoint(r.URL.Path, envelope.Code)
	}
}
