package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/katalvlaran/borderpath/config"
	"github.com/katalvlaran/borderpath/countrygraph"
	"github.com/katalvlaran/borderpath/preload"
)

// errReported marks failures whose message was already written for the user.
var errReported = errors.New("borderpath: failure reported")

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "borderpath",
		Short:         "Shortest land routes between countries",
		Long:          "borderpath finds the route crossing the fewest land borders between two countries identified by ISO 3166-1 alpha-3 codes.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	flags := root.PersistentFlags()
	flags.String("config", "", "config file (default .borderpath.yaml)")
	flags.String("data-file", "", "countries JSON file (default: embedded dataset)")
	flags.String("log-level", "info", "log level: debug, info, warn, error")
	flags.String("log-format", config.FormatText, "log format: text or json")
	bindFlags(flags, map[string]string{
		config.KeyDataFile:  "data-file",
		config.KeyLogLevel:  "log-level",
		config.KeyLogFormat: "log-format",
	})

	root.PersistentPreRunE = func(cmd *cobra.Command, _ []string) error {
		cfgFile, _ := cmd.Flags().GetString("config")
		return initConfig(cfgFile)
	}

	root.AddCommand(newServeCmd(), newRouteCmd(), newReachCmd(), newStatsCmd())

	return root
}

// bindFlags binds config keys to the named flags.
func bindFlags(flags *pflag.FlagSet, byKey map[string]string) {
	for key, name := range byKey {
		_ = viper.BindPFlag(key, flags.Lookup(name))
	}
}

func initConfig(cfgFile string) error {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName(config.FileName)
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			viper.AddConfigPath(home)
		}
	}

	viper.SetEnvPrefix(config.EnvPrefix)
	viper.AutomaticEnv()

	// A missing default config file is fine; an explicit one must exist.
	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgFile != "" || !errors.As(err, &notFound) {
			return fmt.Errorf("read config: %w", err)
		}
	}

	return nil
}

// loadGraph builds the graph from the configured file or the embedded dataset.
func loadGraph(cfg config.Config, logger *slog.Logger) (*countrygraph.Graph, error) {
	if cfg.DataFile == "" {
		return preload.LoadDefault(preload.WithLogger(logger))
	}

	return preload.LoadFile(cfg.DataFile, preload.WithLogger(logger))
}

// setup loads config, builds the logger and loads the graph; every
// subcommand starts here.
func setup(cmd *cobra.Command) (config.Config, *slog.Logger, *countrygraph.Graph, error) {
	cfg, err := config.Load()
	if err != nil {
		return config.Config{}, nil, nil, err
	}
	logger := cfg.Logger(cmd.ErrOrStderr())
	g, err := loadGraph(cfg, logger)
	if err != nil {
		return config.Config{}, nil, nil, err
	}

	return cfg, logger, g, nil
}
