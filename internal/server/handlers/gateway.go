package handlers

import (
	"bytes"
	"encoding/json"
	stderrors "errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/Wy2160640/ensemblrest"
	apperrors "github.com/Wy2160640/ensemblrest/internal/errors"
	"github.com/Wy2160640/ensemblrest/internal/observability"
	"github.com/Wy2160640/ensemblrest/internal/output"
)

// OperationHeader names the dispatched operation on gateway responses.
const OperationHeader = "X-Ensembl-Operation"

// Gateway exposes registry operations of one shared client over HTTP.
type Gateway struct {
	client *ensemblrest.Client
}

// NewGateway creates a gateway backed by client.
func NewGateway(client *ensemblrest.Client) *Gateway {
	return &Gateway{client: client}
}

// ListOperations handles GET /api with the operation catalogue as JSON.
func (g *Gateway) ListOperations(w http.ResponseWriter, r *http.Request) {
	rendered, err := output.NewFormatter(output.FormatJSON).FormatEndpoints(g.client.Registry().List())
	if err != nil {
		respondWithError(w, r, apperrors.WrapInternal(r.Context(), err, "failed to render operations"))
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = io.WriteString(w, rendered)
}

// CallOperation handles GET|POST /api/{operation}. Query parameters become
// params; a POST may also carry a JSON object whose fields are merged
// underneath the query parameters. The upstream body is passed through
// unchanged with the endpoint's content type.
func (g *Gateway) CallOperation(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "operation")

	op, ok := g.client.Operation(name)
	if !ok {
		respondWithClientError(w, r, name, &ensemblrest.UnknownOperationError{Operation: name})
		return
	}

	params, err := requestParams(r)
	if err != nil {
		var maxErr *http.MaxBytesError
		if stderrors.As(err, &maxErr) {
			respondWithError(w, r, apperrors.NewRequestTooLargeError(
				fmt.Sprintf("request body exceeds maximum size of %d bytes", maxErr.Limit)))
			return
		}
		respondWithError(w, r, apperrors.WrapInvalidInput(r.Context(), err, "request body must be a JSON object"))
		return
	}

	var body string
	if err := g.client.CallInto(r.Context(), op.Name, params, &body); err != nil {
		respondWithClientError(w, r, op.Name, err)
		return
	}

	if observability.ServerLogger != nil {
		observability.ServerLogger.Debug("Operation dispatched",
			zap.String("operation", op.Name),
			zap.Int("params", len(params)),
			zap.Int("bytes", len(body)))
	}

	w.Header().Set("Content-Type", op.Endpoint.ContentType)
	w.Header().Set(OperationHeader, op.Name)
	w.WriteHeader(http.StatusOK)
	_, _ = io.WriteString(w, body)
}

func requestParams(r *http.Request) (ensemblrest.Params, error) {
	params := ensemblrest.Params{}

	if r.Method == http.MethodPost && r.Body != nil {
		data, err := io.ReadAll(r.Body)
		if err != nil {
			return nil, err
		}
		if len(strings.TrimSpace(string(data))) > 0 {
			dec := json.NewDecoder(bytes.NewReader(data))
			dec.UseNumber()
			if err := dec.Decode(&params); err != nil {
				return nil, err
			}
			if dec.More() {
				return nil, fmt.Errorf("unexpected data after JSON object")
			}
			if params == nil {
				return nil, fmt.Errorf("body is null")
			}
		}
	}

	for key, values := range r.URL.Query() {
		switch len(values) {
		case 0:
		case 1:
			params[key] = values[0]
		default:
			params[key] = append([]string(nil), values...)
		}
	}
	return params, nil
}
