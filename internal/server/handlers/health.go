package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"sort"
	"sync"
	"time"

	"github.com/fulmenhq/gofulmen/errors"

	"github.com/Wy2160640/ensemblrest"
)

// Check statuses reported by the health endpoints.
const (
	StatusHealthy   = "healthy"
	StatusUnhealthy = "unhealthy"
	StatusAlive     = "alive"
)

// DefaultUpstreamCheckTTL bounds how often health checks reach the REST service.
const DefaultUpstreamCheckTTL = 15 * time.Second

const checkTimeout = 5 * time.Second

// HealthChecker defines interface for health checkable components
type HealthChecker interface {
	CheckHealth(ctx context.Context) error
}

// CheckResult is the outcome of one registered checker.
type CheckResult struct {
	Status    string `json:"status"`
	Error     string `json:"error,omitempty"`
	LatencyMS int64  `json:"latency_ms"`
}

// HealthResponse is the body of GET /health.
type HealthResponse struct {
	Status    string                 `json:"status"`
	Version   string                 `json:"version"`
	Timestamp string                 `json:"timestamp"`
	Checks    map[string]CheckResult `json:"checks,omitempty"`
}

// StatusResponse is the body of the liveness and readiness endpoints.
type StatusResponse struct {
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
}

// UpstreamChecker pings the REST service through the gateway's client. A
// result is reused for ttl, so health traffic spends at most one upstream
// request per interval from the shared rate budget.
type UpstreamChecker struct {
	client *ensemblrest.Client
	ttl    time.Duration
	now    func() time.Time

	mu        sync.Mutex
	checkedAt time.Time
	lastErr   error
}

// NewUpstreamChecker creates a checker for client. A non-positive ttl pings
// on every check.
func NewUpstreamChecker(client *ensemblrest.Client, ttl time.Duration) *UpstreamChecker {
	return &UpstreamChecker{client: client, ttl: ttl, now: time.Now}
}

func (c *UpstreamChecker) CheckHealth(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.checkedAt.IsZero() && c.now().Sub(c.checkedAt) < c.ttl {
		return c.lastErr
	}

	err := c.client.Ping(ctx)
	// A check that timed out says nothing about the next one.
	if ctx.Err() == nil {
		c.checkedAt = c.now()
		c.lastErr = err
	}
	return err
}

// HealthManager runs the registered checkers for the health endpoints.
type HealthManager struct {
	mu       sync.RWMutex
	checkers map[string]HealthChecker
	version  string
}

// NewHealthManager creates a new health manager
func NewHealthManager(version string) *HealthManager {
	return &HealthManager{
		checkers: make(map[string]HealthChecker),
		version:  version,
	}
}

// RegisterChecker registers a health checker
func (hm *HealthManager) RegisterChecker(name string, checker HealthChecker) {
	hm.mu.Lock()
	defer hm.mu.Unlock()
	hm.checkers[name] = checker
}

func (hm *HealthManager) runChecks(ctx context.Context) (string, map[string]CheckResult) {
	hm.mu.RLock()
	names := make([]string, 0, len(hm.checkers))
	for name := range hm.checkers {
		names = append(names, name)
	}
	checkers := make(map[string]HealthChecker, len(hm.checkers))
	for name, checker := range hm.checkers {
		checkers[name] = checker
	}
	hm.mu.RUnlock()
	sort.Strings(names)

	status := StatusHealthy
	results := make(map[string]CheckResult, len(names))
	for _, name := range names {
		started := time.Now()
		err := checkers[name].CheckHealth(ctx)
		result := CheckResult{Status: StatusHealthy, LatencyMS: time.Since(started).Milliseconds()}
		if err != nil {
			result.Status = StatusUnhealthy
			result.Error = err.Error()
			status = StatusUnhealthy
		}
		results[name] = result
	}
	return status, results
}

// HealthHandler reports every check with its latency.
func (hm *HealthManager) HealthHandler(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), checkTimeout)
	defer cancel()

	status, results := hm.runChecks(ctx)
	if status != StatusHealthy {
		respondUnhealthy(w, r, "aggregate", "aggregate health check failed", results)
		return
	}

	writeJSON(w, HealthResponse{
		Status:    status,
		Version:   hm.version,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Checks:    results,
	})
}

// LivenessHandler answers as long as the process serves HTTP. It runs no
// checks, so an unreachable upstream never gets the gateway restarted.
func (hm *HealthManager) LivenessHandler(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, StatusResponse{Status: StatusAlive, Timestamp: time.Now().UTC()})
}

// ReadinessHandler fails while any check, including the upstream ping, fails.
func (hm *HealthManager) ReadinessHandler(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), checkTimeout)
	defer cancel()

	status, results := hm.runChecks(ctx)
	if status != StatusHealthy {
		respondUnhealthy(w, r, "ready", "readiness check failed", results)
		return
	}
	writeJSON(w, StatusResponse{Status: status, Timestamp: time.Now().UTC()})
}

func respondUnhealthy(w http.ResponseWriter, r *http.Request, endpoint, message string, results map[string]CheckResult) {
	envelope := errors.NewErrorEnvelope("SERVICE_UNAVAILABLE", message)

	details := map[string]interface{}{"status": StatusUnhealthy, "endpoint": endpoint}
	if len(results) > 0 {
		details["checks"] = results
	}
	envelope = envelope.WithDetails(details)

	var failing []string
	for name, result := range results {
		if result.Status != StatusHealthy {
			failing = append(failing, name)
		}
	}
	sort.Strings(failing)
	contextData := map[string]interface{}{"endpoint": endpoint}
	if len(failing) > 0 {
		contextData["unhealthy_checks"] = failing
	}
	if updated, err := envelope.WithContext(contextData); err == nil {
		envelope = updated
	}

	respondWithError(w, r, envelope)
}

func writeJSON(w http.ResponseWriter, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_ = json.NewEncoder(w).Encode(body)
}

var globalHealthManager *HealthManager

// InitHealthManager initializes the global health manager
func InitHealthManager(version string) {
	globalHealthManager = NewHealthManager(version)
}

// GetHealthManager returns the global health manager
func GetHealthManager() *HealthManager {
	return globalHealthManager
}

func withGlobalManager(endpoint string, handle func(*HealthManager, http.ResponseWriter, *http.Request)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if hm := globalHealthManager; hm != nil {
			handle(hm, w, r)
			return
		}
		respondUnhealthy(w, r, endpoint, "health manager not initialized", nil)
	}
}

// Handlers bound to the global manager, as routed by the server.
var (
	HealthHandler    = withGlobalManager("aggregate", (*HealthManager).HealthHandler)
	LivenessHandler  = withGlobalManager("live", (*HealthManager).LivenessHandler)
	ReadinessHandler = withGlobalManager("ready", (*HealthManager).ReadinessHandler)
)
