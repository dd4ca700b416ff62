package ensemblrest

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPing(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		body    string
		wantErr error
	}{
		{name: "up", status: http.StatusOK, body: `{"ping":1}`},
		{name: "down", status: http.StatusOK, body: `{"ping":0}`, wantErr: ErrPingFailed},
		{name: "unavailable", status: http.StatusServiceUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var path string
			client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				path = r.URL.Path
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}, WithRegistry(nil))

			err := client.Ping(context.Background())
			require.Equal(t, "/info/ping", path)
			switch {
			case tt.status != http.StatusOK:
				require.Equal(t, tt.status, StatusCode(err))
			case tt.wantErr != nil:
				require.ErrorIs(t, err, tt.wantErr)
			default:
				require.NoError(t, err)
			}
		})
	}
}
