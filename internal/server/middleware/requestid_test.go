package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Wy2160640/ensemblrest"
)

func TestRequestID(t *testing.T) {
	tests := []struct {
		name    string
		inbound string
		keep    bool
	}{
		{name: "keeps well-formed id", inbound: "gw-01:abc_DEF.9", keep: true},
		{name: "generates when missing", inbound: ""},
		{name: "replaces id with spaces", inbound: "abc def"},
		{name: "replaces id with newline", inbound: "abc\nlevel=error"},
		{name: "replaces oversized id", inbound: strings.Repeat("a", maxRequestIDLength+1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var fromMiddleware, fromClientCtx string
			handler := RequestID(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				fromMiddleware = GetRequestID(r.Context())
				fromClientCtx, _ = ensemblrest.RequestIDFromContext(r.Context())
			}))

			req := httptest.NewRequest(http.MethodGet, "/api/getInfoPing", nil)
			if tt.inbound != "" {
				req.Header.Set(RequestIDHeader, tt.inbound)
			}
			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)

			echoed := rec.Header().Get(RequestIDHeader)
			require.NotEmpty(t, echoed)
			assert.Equal(t, echoed, fromMiddleware)
			assert.Equal(t, echoed, fromClientCtx)
			if tt.keep {
				assert.Equal(t, tt.inbound, echoed)
				return
			}
			_, err := uuid.Parse(echoed)
			assert.NoError(t, err, "expected generated UUID, got %q", echoed)
		})
	}
}

func TestGetRequestIDWithoutMiddleware(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	assert.Empty(t, GetRequestID(req.Context()))
}
