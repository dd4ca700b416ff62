package cmd

import (
	"fmt"
	"runtime"
	"sort"
	"strings"

	"github.com/fulmenhq/gofulmen/crucible"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/Wy2160640/ensemblrest"
	"github.com/Wy2160640/ensemblrest/internal/observability"
)

var envInfoCmd = &cobra.Command{
	Use:   "envinfo",
	Short: "Display environment information",
	Long:  "Display version, runtime and resolved client/gateway configuration.",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		logger := observability.CLILogger
		version := crucible.GetVersion()

		logger.Info("=== ensemblrest Environment Information ===")
		logger.Info("")

		logger.Info("Application:")
		logger.Info("  Name:       " + AppName)
		logger.Info("  Version:    " + versionInfo.Version)
		logger.Info("  Commit:     " + versionInfo.Commit)
		logger.Info("  Built:      " + versionInfo.BuildDate)
		logger.Info("  User-Agent: " + ensemblrest.UserAgent)
		logger.Info("")

		logger.Info("SSOT:")
		logger.Info("  Gofulmen:   "+version.Gofulmen, zap.String("gofulmen_version", version.Gofulmen))
		logger.Info("  Crucible:   "+version.Crucible, zap.String("crucible_version", version.Crucible))
		logger.Info("")

		logger.Info("Runtime:")
		logger.Info("  Go Version: "+runtime.Version(), zap.String("go_version", runtime.Version()))
		logger.Info("  GOOS:       "+runtime.GOOS, zap.String("goos", runtime.GOOS))
		logger.Info("  GOARCH:     "+runtime.GOARCH, zap.String("goarch", runtime.GOARCH))
		logger.Info("")

		cfg, err := loadConfig()
		if err != nil {
			logger.Warn("Config load failed", zap.Error(err))
			return err
		}
		client, err := newClient(cfg)
		if err != nil {
			return err
		}

		configFile := viper.ConfigFileUsed()
		if configFile == "" {
			configFile = "(none)"
		}

		logger.Info("Client:")
		logger.Info("  Base URL:       "+client.BaseURL(), zap.String("base_url", client.BaseURL()))
		logger.Info(fmt.Sprintf("  Genomes:        %t", cfg.Client.Genomes))
		logger.Info(fmt.Sprintf("  Rate Limit:     %d req/s", client.RateState().Limit), zap.Int("requests_per_second", client.RateState().Limit))
		logger.Info("  Timeout:        " + cfg.Client.Timeout.String())
		logger.Info(fmt.Sprintf("  Operations:     %d", client.Registry().Len()))
		logger.Info("  Headers:        " + strings.Join(headerNames(client), ", "))
		for scheme, proxy := range client.Proxies() {
			logger.Info(fmt.Sprintf("  Proxy (%s): %s", scheme, proxy))
		}
		logger.Info("")

		logger.Info("Gateway:")
		logger.Info(fmt.Sprintf("  Listen:         %s:%d", cfg.Server.Host, cfg.Server.Port))
		logger.Info(fmt.Sprintf("  Inbound Limit:  %t (%d req/s, burst %d)",
			cfg.Server.RateLimit.Enabled, cfg.Server.RateLimit.RequestsPerSecond, cfg.Server.RateLimit.Burst))
		logger.Info(fmt.Sprintf("  Max Body:       %d bytes", cfg.Server.MaxBodyBytes))
		logger.Info("  Log Level:      "+cfg.Logging.Level, zap.String("log_level", cfg.Logging.Level))
		logger.Info(fmt.Sprintf("  Metrics:        %t (port %d)", cfg.Metrics.Enabled, cfg.Metrics.Port))
		logger.Info("  Config File:    "+configFile, zap.String("config_file", configFile))
		logger.Info("")

		logger.Info("=== End Environment Information ===")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(envInfoCmd)
}

func headerNames(client *ensemblrest.Client) []string {
	headers := client.Headers()
	names := make([]string, 0, len(headers))
	for name := range headers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
