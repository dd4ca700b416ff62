package handlers

import (
	"net/http"

	apperrors "github.com/Wy2160640/ensemblrest/internal/errors"
)

var defaultHTTPErrorResponder = func(w http.ResponseWriter, r *http.Request, err error) {
	apperrors.RespondWithError(w, r, err)
}

var httpErrorResponder = defaultHTTPErrorResponder

// SetHTTPErrorResponder allows the server package to inject the centralized error handler.
func SetHTTPErrorResponder(responder func(http.ResponseWriter, *http.Request, error)) {
	if responder == nil {
		httpErrorResponder = defaultHTTPErrorResponder
		return
	}
	httpErrorResponder = responder
}

// ResetHTTPErrorResponder restores the default responder (useful for tests).
func ResetHTTPErrorResponder() {
	httpErrorResponder = defaultHTTPErrorResponder
}

func respondWithError(w http.ResponseWriter, r *http.Request, err error) {
	httpErrorResponder(w, r, err)
}

// respondWithClientError maps an ensemblrest client failure onto the
// gateway's envelope, forwarding Retry-After from upstream throttling.
func respondWithClientError(w http.ResponseWriter, r *http.Request, operation string, err error) {
	if retry, ok := apperrors.RetryAfter(err); ok {
		w.Header().Set("Retry-After", retry)
	}
	respondWithError(w, r, apperrors.FromClientError(r.Context(), operation, err))
}
