package cmd

import (
	"os"

	gfconfig "github.com/fulmenhq/gofulmen/config"
	"github.com/fulmenhq/gofulmen/foundry"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/Wy2160640/ensemblrest"
	"github.com/Wy2160640/ensemblrest/internal/config"
	"github.com/Wy2160640/ensemblrest/internal/observability"
)

// AppName names the binary, its config directory and its telemetry namespace.
const AppName = "ensemblrest"

var (
	cfgFile string
	verbose bool

	// Version info set by main package
	versionInfo struct {
		Version   string
		Commit    string
		BuildDate string
	}
)

// SetVersionInfo is called by main package to set version information
func SetVersionInfo(version, commit, buildDate string) {
	versionInfo.Version = version
	versionInfo.Commit = commit
	versionInfo.BuildDate = buildDate
}

var rootCmd = &cobra.Command{
	Use:   AppName,
	Short: "Ensembl REST API client",
	Long: `ensemblrest calls Ensembl REST operations by name.

Every endpoint in the operation registry is available to the call command
and, through serve, as /api/{operation} on a local HTTP gateway.`,
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	// Keep library telemetry quiet until serve installs an exporter.
	observability.InitDisabledMetrics()

	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $XDG_CONFIG_HOME/ensemblrest/config.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output (sets log level to debug)")
	rootCmd.PersistentFlags().String("base-url", "", "REST service root (overrides client.base_url)")
	rootCmd.PersistentFlags().Int("rate-limit", ensemblrest.DefaultRequestsPerSecond, "maximum requests per second sent upstream")

	_ = viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))
	_ = viper.BindPFlag("client.base_url", rootCmd.PersistentFlags().Lookup("base-url"))
	_ = viper.BindPFlag("client.requests_per_second", rootCmd.PersistentFlags().Lookup("rate-limit"))
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	observability.InitCLILogger(AppName, verbose)

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		if appConfigDir := gfconfig.GetAppConfigDir(AppName); appConfigDir != "" {
			viper.AddConfigPath(appConfigDir)
			viper.SetConfigName("config")
		} else {
			home, err := os.UserHomeDir()
			if err != nil {
				ExitWithCode(observability.CLILogger, foundry.ExitFileNotFound, "Could not find home directory", err)
			}
			viper.AddConfigPath(home)
			viper.SetConfigName("." + AppName)
		}

		viper.AddConfigPath("./config")
		viper.SetConfigType("yaml")
	}

	config.Configure(viper.GetViper())

	if err := viper.ReadInConfig(); err == nil {
		observability.CLILogger.Debug("Using config file", zap.String("path", viper.ConfigFileUsed()))
	} else if _, ok := err.(viper.ConfigFileNotFoundError); ok {
		observability.CLILogger.Debug("No config file found, using defaults and environment variables")
	} else if cfgFile != "" {
		ExitWithCode(observability.CLILogger, foundry.ExitConfigInvalid, "Failed to read config file", err)
	} else {
		observability.CLILogger.Warn("Error reading config file", zap.Error(err))
	}
}

// loadConfig decodes the global viper state.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(viper.GetViper())
	if err != nil {
		return nil, &configError{err: err}
	}
	return cfg, nil
}

// newClient builds the client shared by the CLI commands.
func newClient(cfg *config.Config, extra ...ensemblrest.Option) (*ensemblrest.Client, error) {
	opts := []ensemblrest.Option{}
	if logger := observability.ClientLogger(); logger != nil {
		opts = append(opts, ensemblrest.WithLogger(logger))
	}
	return cfg.Client.NewClient(append(opts, extra...)...)
}
