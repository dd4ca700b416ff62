// Package metrics emits gateway and upstream-call metrics through the
// gofulmen telemetry system.
package metrics

import (
	"strconv"
	"time"

	"github.com/Wy2160640/ensemblrest"
	"github.com/Wy2160640/ensemblrest/internal/observability"
)

// Metric names.
const (
	UpstreamRequestsTotal   = "upstream_requests_total"
	UpstreamRequestDuration = "upstream_request_duration_ms"
	UpstreamErrorsTotal     = "upstream_errors_total"
	RateLimitWaitDuration   = "client_rate_limit_wait_ms"
	RateLimitWaitsTotal     = "client_rate_limit_waits_total"

	ServerStartTime = "app_server_start_time_seconds"
)

// CallObserver records every upstream request dispatched by an ensemblrest
// client. Install it with ensemblrest.WithObserver.
type CallObserver struct{}

var _ ensemblrest.Observer = CallObserver{}

// ObserveCall implements ensemblrest.Observer.
func (CallObserver) ObserveCall(stats ensemblrest.CallStats) {
	RecordUpstreamCall(stats.Operation, stats.StatusCode, stats.Duration, stats.Err)
	if stats.Waited > 0 {
		RecordRateLimitWait(stats.Waited)
	}
}

// RecordUpstreamCall records one request to the REST service. status is zero
// when no response was received.
func RecordUpstreamCall(operation string, status int, duration time.Duration, err error) {
	if observability.TelemetrySystem == nil {
		return
	}

	labels := map[string]string{
		"operation": operation,
		"status":    statusLabel(status),
	}
	_ = observability.TelemetrySystem.Counter(UpstreamRequestsTotal, 1, labels)
	_ = observability.TelemetrySystem.Histogram(UpstreamRequestDuration, duration, labels)

	if err != nil {
		_ = observability.TelemetrySystem.Counter(
			UpstreamErrorsTotal,
			1,
			map[string]string{
				"operation":  operation,
				"error_type": ErrorType(err),
			},
		)
	}
}

// RecordRateLimitWait records a pause imposed by the client's rate limiter.
func RecordRateLimitWait(waited time.Duration) {
	if observability.TelemetrySystem == nil {
		return
	}
	_ = observability.TelemetrySystem.Counter(RateLimitWaitsTotal, 1, nil)
	_ = observability.TelemetrySystem.Histogram(RateLimitWaitDuration, waited, nil)
}

// SetServerStartTime records the gateway start time (Unix seconds).
func SetServerStartTime(timestamp int64) {
	if observability.TelemetrySystem != nil {
		_ = observability.TelemetrySystem.Gauge(ServerStartTime, float64(timestamp), nil)
	}
}

// ErrorType classifies a client error for metric labels.
func ErrorType(err error) string {
	switch {
	case err == nil:
		return ""
	case ensemblrest.IsRateLimited(err):
		return "rate_limited"
	case ensemblrest.IsUnavailable(err):
		return "unavailable"
	case ensemblrest.StatusCode(err) > 0:
		return "api_error"
	default:
		return "other"
	}
}

func statusLabel(status int) string {
	if status == 0 {
		return "none"
	}
	return strconv.Itoa(status)
}
