package cmd

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/fulmenhq/gofulmen/foundry"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/require"

	"github.com/Wy2160640/ensemblrest"
	"github.com/Wy2160640/ensemblrest/internal/config"
	"github.com/Wy2160640/ensemblrest/internal/observability"
)

func TestHealthCommand(t *testing.T) {
	observability.InitCLILogger(AppName, false)

	tests := []struct {
		name    string
		status  int
		body    string
		wantErr error
	}{
		{name: "up", status: http.StatusOK, body: `{"ping":1}`},
		{name: "down", status: http.StatusOK, body: `{"ping":0}`, wantErr: ensemblrest.ErrPingFailed},
		{name: "unavailable", status: http.StatusServiceUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				require.Equal(t, "/info/ping", r.URL.Path)
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))
			t.Cleanup(srv.Close)

			viper.Reset()
			t.Cleanup(viper.Reset)
			config.Configure(viper.GetViper())
			viper.Set("client.base_url", srv.URL)

			healthCmd.SetContext(context.Background())
			err := healthCmd.RunE(healthCmd, nil)
			switch {
			case tt.status != http.StatusOK:
				require.Equal(t, tt.status, ensemblrest.StatusCode(err), "got %v", err)
				require.Equal(t, foundry.ExitFailure, ExitCodeFor(err))
			case tt.wantErr != nil:
				require.ErrorIs(t, err, tt.wantErr)
			default:
				require.NoError(t, err)
			}
		})
	}
}
