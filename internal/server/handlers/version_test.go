package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Wy2160640/ensemblrest"
)

func TestVersionHandlerIncludesUpstreamMetadata(t *testing.T) {
	SetVersionInfo("1.2.3", "abcd123", "2025-11-07T12:00:00Z")
	gateway := NewGateway(newTestClient(t, "http://127.0.0.1:3000"))

	req := httptest.NewRequest(http.MethodGet, "/version", nil)
	rec := httptest.NewRecorder()

	gateway.VersionHandler(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}

	var resp VersionResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}

	if resp.App.Name != AppName {
		t.Fatalf("expected app name %s, got %s", AppName, resp.App.Name)
	}

	if resp.App.Version != "1.2.3" {
		t.Fatalf("expected version 1.2.3, got %s", resp.App.Version)
	}

	if resp.App.Commit != "abcd123" {
		t.Fatalf("expected commit abcd123, got %s", resp.App.Commit)
	}

	if resp.App.ClientVersion != ensemblrest.Version {
		t.Fatalf("expected client version %s, got %s", ensemblrest.Version, resp.App.ClientVersion)
	}

	if resp.Upstream.BaseURL != "http://127.0.0.1:3000" || resp.Upstream.Operations != 3 {
		t.Fatalf("unexpected upstream info: %+v", resp.Upstream)
	}

	if resp.Dependencies.Gofulmen == "" || resp.Dependencies.Crucible == "" {
		t.Fatal("expected dependency versions to be populated")
	}
}
