package server

import (
	"errors"
	"io"
	"net"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"sync"
	"syscall"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Wy2160640/ensemblrest"
	"github.com/Wy2160640/ensemblrest/internal/config"
	"github.com/Wy2160640/ensemblrest/internal/metrics"
	"github.com/Wy2160640/ensemblrest/internal/observability"
	"github.com/Wy2160640/ensemblrest/internal/server/handlers"
)

// cleanupMetrics tears down global telemetry state so each test starts clean.
func cleanupMetrics(t *testing.T) {
	t.Helper()
	t.Cleanup(func() {
		if observability.PrometheusExporter != nil {
			_ = observability.PrometheusExporter.Stop()
			observability.PrometheusExporter = nil
		}
		observability.TelemetrySystem = nil
	})
}

// isPermissionError normalizes OS-specific permission errors so we can skip
// when loopback sockets are blocked.
func isPermissionError(err error) bool {
	if err == nil {
		return false
	}

	if errors.Is(err, os.ErrPermission) || errors.Is(err, syscall.EACCES) {
		return true
	}

	msg := strings.ToLower(err.Error())
	for _, fragment := range []string{"permission denied", "operation not permitted", "not permitted"} {
		if strings.Contains(msg, fragment) {
			return true
		}
	}

	return false
}

func initMetricsOrSkip(t *testing.T) {
	t.Helper()

	if err := observability.InitMetrics("test", 0); err != nil {
		if isPermissionError(err) {
			t.Skipf("skipping metrics tests due to sandbox permissions: %v", err)
		}
		require.NoError(t, err)
	}

	cleanupMetrics(t)
}

// startGateway serves a gateway over IPv4 loopback in front of upstream.
func startGateway(t *testing.T, upstream http.HandlerFunc) (*httptest.Server, *http.Client) {
	t.Helper()

	listener, err := net.Listen("tcp4", "127.0.0.1:0")
	if err != nil {
		if isPermissionError(err) {
			t.Skipf("skipping gateway setup: %v", err)
		}
		require.NoError(t, err)
	}
	ensembl := httptest.NewUnstartedServer(upstream)
	ensembl.Listener = listener
	ensembl.Start()
	t.Cleanup(ensembl.Close)

	client, err := ensemblrest.New(
		ensemblrest.WithBaseURL(ensembl.URL),
		ensemblrest.WithRateLimit(1000),
		ensemblrest.WithObserver(metrics.CallObserver{}),
	)
	require.NoError(t, err)

	srv := New(config.ServerConfig{Host: "127.0.0.1"}, client)
	ts := httptest.NewServer(srv.Handler())
	t.Cleanup(ts.Close)
	return ts, ts.Client()
}

func TestGatewayMetrics_Integration(t *testing.T) {
	observability.InitServerLogger("test", "info")
	initMetricsOrSkip(t)
	handlers.InitHealthManager("test")

	ts, client := startGateway(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/info/ping":
			_, _ = w.Write([]byte(`{"ping":1}`))
		case "/info/software":
			time.Sleep(20 * time.Millisecond)
			_, _ = w.Write([]byte(`{"release":110}`))
		default:
			w.WriteHeader(http.StatusServiceUnavailable)
		}
	})

	const numRequests = 40
	const numWorkers = 8

	requestChan := make(chan int, numRequests)
	for i := 0; i < numRequests; i++ {
		requestChan <- i
	}
	close(requestChan)

	var wg sync.WaitGroup
	wg.Add(numWorkers)
	for i := 0; i < numWorkers; i++ {
		go func() {
			defer wg.Done()
			for reqNum := range requestChan {
				var path string
				switch reqNum % 4 {
				case 0:
					path = "/api/getInfoPing"
				case 1:
					path = "/api/getInfoSoftware"
				case 2:
					path = "/api/getInfoRest"
				default:
					path = "/health"
				}

				resp, err := client.Get(ts.URL + path)
				if err == nil {
					_ = resp.Body.Close()
				}
			}
		}()
	}
	wg.Wait()

	resp, err := client.Get(ts.URL + "/metrics")
	require.NoError(t, err)
	body, readErr := io.ReadAll(resp.Body)
	require.NoError(t, resp.Body.Close())
	require.NoError(t, readErr)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	content := string(body)
	assert.Contains(t, content, "test_http_requests_total")
	assert.Contains(t, content, "test_"+metrics.UpstreamRequestsTotal)
	assert.Contains(t, content, "test_"+metrics.UpstreamErrorsTotal)
}

func TestGatewayMetrics_WithTelemetryDisabled(t *testing.T) {
	observability.InitServerLogger("test", "info")

	originalExporter := observability.PrometheusExporter
	originalTelemetry := observability.TelemetrySystem
	observability.PrometheusExporter = nil
	observability.TelemetrySystem = nil
	t.Cleanup(func() {
		observability.PrometheusExporter = originalExporter
		observability.TelemetrySystem = originalTelemetry
	})

	ts, client := startGateway(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"ping":1}`))
	})

	resp, err := client.Get(ts.URL + "/api/getInfoPing")
	require.NoError(t, err)
	require.NoError(t, resp.Body.Close())
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp, err = client.Get(ts.URL + "/metrics")
	require.NoError(t, err)
	require.NoError(t, resp.Body.Close())
	assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)
}

// metricLines returns the sample lines of the exposition text for name.
func metricLines(content, name string) []string {
	var lines []string
	for _, line := range strings.Split(content, "\n") {
		if strings.HasPrefix(line, name) && strings.Contains(line, "{") {
			lines = append(lines, line)
		}
	}
	return lines
}

func TestGatewayMetrics_OperationLabels(t *testing.T) {
	observability.InitServerLogger("test", "info")
	initMetricsOrSkip(t)
	handlers.InitHealthManager("test")

	ts, client := startGateway(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/info/ping":
			_, _ = w.Write([]byte(`{"ping":1}`))
		default:
			w.WriteHeader(http.StatusNotFound)
			_, _ = w.Write([]byte(`{"error":"not found"}`))
		}
	})

	for _, path := range []string{"/api/getInfoPing", "/api/getLookupById?id=ENSG00000157764", "/api/noSuchOperation"} {
		resp, err := client.Get(ts.URL + path)
		require.NoError(t, err)
		require.NoError(t, resp.Body.Close())
	}

	resp, err := client.Get(ts.URL + "/metrics")
	require.NoError(t, err)
	body, readErr := io.ReadAll(resp.Body)
	require.NoError(t, resp.Body.Close())
	require.NoError(t, readErr)
	content := string(body)

	requests := metricLines(content, "test_http_requests_total")
	require.NotEmpty(t, requests, "no http_requests_total samples in:\n%s", content)
	var routed int
	for _, line := range requests {
		if strings.Contains(line, "/api/{operation}") {
			routed++
		}
		assert.NotContains(t, line, "getLookupById", "raw paths must not become labels")
		assert.NotContains(t, line, "ENSG00000157764")
	}
	assert.Positive(t, routed, "expected /api/{operation} endpoint label in:\n%s", strings.Join(requests, "\n"))

	upstream := strings.Join(metricLines(content, "test_"+metrics.UpstreamRequestsTotal), "\n")
	assert.Contains(t, upstream, "getInfoPing")
	assert.Contains(t, upstream, "getLookupById")
	assert.NotContains(t, upstream, "noSuchOperation", "unknown operations never reach upstream")
}
