package ensemblrest

import (
	"errors"
	"fmt"
	"io"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAPIErrorMatchesSentinels(t *testing.T) {
	limited := &APIError{Kind: KindRateLimited, Operation: "getLookupById", Message: "Too Many Requests", StatusCode: 429}
	unavailable := &APIError{Kind: KindUnavailable, Operation: "getLookupById", Message: "service unavailable", Err: io.ErrUnexpectedEOF}
	general := &APIError{Kind: KindGeneral, Message: "Not Found", StatusCode: 404}

	require.ErrorIs(t, limited, ErrRateLimited)
	require.NotErrorIs(t, limited, ErrUnavailable)
	require.ErrorIs(t, unavailable, ErrUnavailable)
	require.ErrorIs(t, unavailable, io.ErrUnexpectedEOF)
	require.NotErrorIs(t, general, ErrRateLimited)
	require.NotErrorIs(t, general, ErrUnavailable)

	wrapped := fmt.Errorf("lookup failed: %w", limited)
	require.True(t, IsRateLimited(wrapped))
	require.Equal(t, 429, StatusCode(wrapped))
	require.Zero(t, StatusCode(errors.New("plain")))
}

func TestAPIErrorMessage(t *testing.T) {
	err := &APIError{Kind: KindGeneral, Operation: "getLookupById", Message: "Not Found", StatusCode: 404}
	require.Equal(t, "ensemblrest: getLookupById: Not Found (status 404)", err.Error())

	err = &APIError{Kind: KindUnavailable, Message: "service unavailable", Err: io.EOF}
	require.Equal(t, "ensemblrest: service unavailable: EOF", err.Error())
}

func TestMissingParamErrorMessage(t *testing.T) {
	err := &MissingParamError{
		Operation: "getLdPairwise",
		Missing:   []string{"id1", "id2"},
		Mandatory: []string{"species", "id1", "id2"},
	}
	require.Equal(t,
		"ensemblrest: getLdPairwise: mandatory param(s) ['id1', 'id2'] not specified; mandatory params are ['species', 'id1', 'id2']",
		err.Error())
}

func TestErrorKindString(t *testing.T) {
	require.Equal(t, "api_error", KindGeneral.String())
	require.Equal(t, "rate_limited", KindRateLimited.String())
	require.Equal(t, "unavailable", KindUnavailable.String())
	require.Equal(t, "kind(9)", ErrorKind(9).String())
}
