package cmd

import (
	"context"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/Wy2160640/ensemblrest/internal/observability"
)

var healthCmd = &cobra.Command{
	Use:   "health",
	Short: "Check that the REST service is reachable",
	Long: `Load the configuration, build the client and ping the REST service
with getInfoPing. Exits non-zero when the service cannot be reached.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		logger := observability.CLILogger

		cfg, err := loadConfig()
		if err != nil {
			logger.Error("❌ FAIL: Configuration invalid", zap.Error(err))
			return err
		}
		logger.Info("✅ Configuration loaded")

		client, err := newClient(cfg)
		if err != nil {
			logger.Error("❌ FAIL: Client construction failed", zap.Error(err))
			return err
		}
		logger.Info("✅ Client ready", zap.String("base_url", client.BaseURL()), zap.Int("operations", client.Registry().Len()))

		timeout, err := cmd.Flags().GetDuration("timeout")
		if err != nil {
			return err
		}
		ctx, cancel := context.WithTimeout(cmd.Context(), timeout)
		defer cancel()

		if err := client.Ping(ctx); err != nil {
			logger.Error("❌ FAIL: REST service unreachable", zap.String("base_url", client.BaseURL()), zap.Error(err))
			return err
		}

		last := client.LastResponse()
		fields := []zap.Field{}
		if last != nil {
			fields = append(fields, zap.Duration("latency", last.Duration))
		}
		logger.Info("✅ REST service responded", fields...)
		logger.Info("")
		logger.Info("✅ All health checks passed")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(healthCmd)
	healthCmd.Flags().Duration("timeout", 10*time.Second, "ping timeout")
}
