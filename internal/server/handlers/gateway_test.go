package handlers

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Wy2160640/ensemblrest"
	apperrors "github.com/Wy2160640/ensemblrest/internal/errors"
	"github.com/Wy2160640/ensemblrest/registry"
)

func newTestClient(t *testing.T, baseURL string) *ensemblrest.Client {
	t.Helper()
	reg, err := registry.New([]*registry.Endpoint{
		{Name: "getLookupById", Method: "GET", URL: "/lookup/id/{{id}}", Doc: "Find the species and database for a single identifier"},
		{Name: "getSequenceById", Method: "GET", URL: "/sequence/id/{{id}}", ContentType: "text/x-fasta"},
		{Name: "getLookupByMultipleIds", Method: "POST", URL: "/lookup/id"},
	})
	require.NoError(t, err)

	client, err := ensemblrest.New(
		ensemblrest.WithBaseURL(baseURL),
		ensemblrest.WithRegistry(reg),
		ensemblrest.WithRateLimit(1000),
	)
	require.NoError(t, err)
	return client
}

type recordedRequest struct {
	Method string
	Path   string
	Query  map[string][]string
	Body   string
}

func newGatewayRouter(t *testing.T, upstream http.HandlerFunc) (http.Handler, func() []recordedRequest) {
	t.Helper()

	var (
		mu   sync.Mutex
		seen []recordedRequest
	)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		mu.Lock()
		seen = append(seen, recordedRequest{Method: r.Method, Path: r.URL.Path, Query: r.URL.Query(), Body: string(body)})
		mu.Unlock()
		upstream(w, r)
	}))
	t.Cleanup(srv.Close)

	gateway := NewGateway(newTestClient(t, srv.URL))
	router := chi.NewRouter()
	router.Get("/api", gateway.ListOperations)
	router.Get("/api/{operation}", gateway.CallOperation)
	router.Post("/api/{operation}", gateway.CallOperation)

	return router, func() []recordedRequest {
		mu.Lock()
		defer mu.Unlock()
		return append([]recordedRequest(nil), seen...)
	}
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) apperrors.HTTPErrorDetail {
	t.Helper()
	var body apperrors.HTTPErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body.Error
}

func TestGatewayListOperations(t *testing.T) {
	router, _ := newGatewayRouter(t, func(w http.ResponseWriter, r *http.Request) {})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var ops []map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &ops))
	require.Len(t, ops, 3)
	assert.Equal(t, "getLookupById", ops[0]["name"])
	assert.Equal(t, []any{"id"}, ops[0]["params"])
}

func TestGatewayCallOperationGet(t *testing.T) {
	router, seen := newGatewayRouter(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":"ENSG00000157764","species":"homo_sapiens"}`))
	})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/getLookupById?id=ENSG00000157764&expand=1&db_type=core&db_type=otherfeatures", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.Equal(t, "getLookupById", rec.Header().Get(OperationHeader))
	assert.JSONEq(t, `{"id":"ENSG00000157764","species":"homo_sapiens"}`, rec.Body.String())

	requests := seen()
	require.Len(t, requests, 1)
	assert.Equal(t, "/lookup/id/ENSG00000157764", requests[0].Path)
	assert.Equal(t, []string{"1"}, requests[0].Query["expand"])
	assert.Equal(t, []string{"core", "otherfeatures"}, requests[0].Query["db_type"])
	assert.NotContains(t, requests[0].Query, "id")
}

func TestGatewayCallOperationText(t *testing.T) {
	router, _ := newGatewayRouter(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/x-fasta")
		_, _ = w.Write([]byte(">ENSG1\nACGT\n"))
	})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/getSequenceById?id=ENSG1", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "text/x-fasta", rec.Header().Get("Content-Type"))
	assert.Equal(t, ">ENSG1\nACGT\n", rec.Body.String())
}

func TestGatewayCallOperationPost(t *testing.T) {
	router, seen := newGatewayRouter(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{}`))
	})

	req := httptest.NewRequest(http.MethodPost, "/api/getLookupByMultipleIds?species=human",
		strings.NewReader(`{"ids":["ENSG1","ENSG2"],"species":"mouse"}`))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	requests := seen()
	require.Len(t, requests, 1)
	assert.Equal(t, http.MethodPost, requests[0].Method)
	assert.JSONEq(t, `{"ids":["ENSG1","ENSG2"],"species":"human"}`, requests[0].Body)
}

func TestGatewayCallOperationNumericBodyParams(t *testing.T) {
	router, seen := newGatewayRouter(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{}`))
	})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/getLookupById",
		strings.NewReader(`{"id":12345678,"expand":1,"score":0.5}`)))
	require.Equal(t, http.StatusOK, rec.Code)

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/getLookupByMultipleIds",
		strings.NewReader(`{"ids":["ENSG1"],"limit":12345678}`)))
	require.Equal(t, http.StatusOK, rec.Code)

	requests := seen()
	require.Len(t, requests, 2)
	assert.Equal(t, http.MethodGet, requests[0].Method)
	assert.Equal(t, "/lookup/id/12345678", requests[0].Path)
	assert.Equal(t, []string{"1"}, requests[0].Query["expand"])
	assert.Equal(t, []string{"0.5"}, requests[0].Query["score"])
	assert.Contains(t, requests[1].Body, `"limit":12345678`)
}

func TestGatewayRejectsTrailingBodyData(t *testing.T) {
	router, seen := newGatewayRouter(t, func(w http.ResponseWriter, r *http.Request) {})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/getLookupByMultipleIds",
		strings.NewReader(`{"ids":["ENSG1"]} {"ids":["ENSG2"]}`)))

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, apperrors.CodeInvalidInput, decodeError(t, rec).Code)
	assert.Empty(t, seen())
}

func TestGatewayCallOperationErrors(t *testing.T) {
	t.Run("unknown operation", func(t *testing.T) {
		router, seen := newGatewayRouter(t, func(w http.ResponseWriter, r *http.Request) {})
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/getNothing", nil))

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, apperrors.CodeNotFound, decodeError(t, rec).Code)
		assert.Empty(t, seen())
	})

	t.Run("missing param", func(t *testing.T) {
		router, seen := newGatewayRouter(t, func(w http.ResponseWriter, r *http.Request) {})
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/getLookupById", nil))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		detail := decodeError(t, rec)
		assert.Equal(t, apperrors.CodeInvalidInput, detail.Code)
		assert.Equal(t, []any{"id"}, detail.Details["missing"])
		assert.Empty(t, seen())
	})

	t.Run("invalid body", func(t *testing.T) {
		router, seen := newGatewayRouter(t, func(w http.ResponseWriter, r *http.Request) {})
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/getLookupByMultipleIds", strings.NewReader(`["ENSG1"]`)))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, apperrors.CodeInvalidInput, decodeError(t, rec).Code)
		assert.Empty(t, seen())
	})

	t.Run("upstream throttled", func(t *testing.T) {
		router, _ := newGatewayRouter(t, func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Retry-After", "2")
			w.WriteHeader(http.StatusTooManyRequests)
		})
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/getLookupById?id=x", nil))

		assert.Equal(t, http.StatusTooManyRequests, rec.Code)
		assert.Equal(t, "2", rec.Header().Get("Retry-After"))
		assert.Equal(t, apperrors.CodeRateLimited, decodeError(t, rec).Code)
	})

	t.Run("upstream bad request", func(t *testing.T) {
		router, _ := newGatewayRouter(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadRequest)
			_, _ = w.Write([]byte(`{"error":"ID 'x' not found"}`))
		})
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/getLookupById?id=x", nil))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		detail := decodeError(t, rec)
		assert.Equal(t, "ID 'x' not found", detail.Message)
		assert.Equal(t, float64(400), detail.Details["upstream_status"])
		assert.Equal(t, "getLookupById", detail.Details["operation"])
	})

	t.Run("upstream server error", func(t *testing.T) {
		router, _ := newGatewayRouter(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		})
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/getLookupById?id=x", nil))

		assert.Equal(t, http.StatusBadGateway, rec.Code)
		assert.Equal(t, apperrors.CodeUpstream, decodeError(t, rec).Code)
	})
}
