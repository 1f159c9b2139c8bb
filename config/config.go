// Package config loads runtime settings for the borderpath binary.
// Values come from .borderpath.yaml, BORDERPATH_* env vars, and CLI flags,
// all merged through viper.
package config

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/spf13/viper"
)

const (
	// EnvPrefix maps BORDERPATH_LISTEN_ADDR and friends onto config keys.
	EnvPrefix = "BORDERPATH"

	// FileName is the config file name without extension.
	FileName = ".borderpath"
)

// Config keys.
const (
	KeyListenAddr      = "listen_addr"
	KeyDataFile        = "data_file"
	KeyLogLevel        = "log_level"
	KeyLogFormat       = "log_format"
	KeyShutdownTimeout = "shutdown_timeout"
	KeyMetricsEnabled  = "metrics_enabled"
)

// Log formats.
const (
	FormatText = "text"
	FormatJSON = "json"
)

// ErrInvalidConfig is returned when a loaded value cannot be used.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config holds all runtime configuration.
type Config struct {
	ListenAddr      string        `mapstructure:"listen_addr"`
	DataFile        string        `mapstructure:"data_file"`
	LogLevel        string        `mapstructure:"log_level"`
	LogFormat       string        `mapstructure:"log_format"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
	MetricsEnabled  bool          `mapstructure:"metrics_enabled"`
}

// SetDefaults registers the built-in defaults on the global viper instance.
func SetDefaults() {
	viper.SetDefault(KeyListenAddr, ":8080")
	viper.SetDefault(KeyDataFile, "")
	viper.SetDefault(KeyLogLevel, "info")
	viper.SetDefault(KeyLogFormat, FormatText)
	viper.SetDefault(KeyShutdownTimeout, 10*time.Second)
	viper.SetDefault(KeyMetricsEnabled, true)
}

// Load reads configuration from viper, applying built-in defaults for any
// values not set by config file, environment, or flags, and validates the result.
func Load() (Config, error) {
	SetDefaults()

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Validate checks the values that have a closed set of meanings.
func (c Config) Validate() error {
	if _, err := c.Level(); err != nil {
		return err
	}
	switch strings.ToLower(c.LogFormat) {
	case FormatText, FormatJSON:
	default:
		return fmt.Errorf("%w: %s %q: want %s or %s", ErrInvalidConfig, KeyLogFormat, c.LogFormat, FormatText, FormatJSON)
	}
	if c.ShutdownTimeout <= 0 {
		return fmt.Errorf("%w: %s must be positive, got %s", ErrInvalidConfig, KeyShutdownTimeout, c.ShutdownTimeout)
	}
	if strings.TrimSpace(c.ListenAddr) == "" {
		return fmt.Errorf("%w: %s is empty", ErrInvalidConfig, KeyListenAddr)
	}

	return nil
}

// Level parses LogLevel (debug, info, warn, error).
func (c Config) Level() (slog.Level, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return 0, fmt.Errorf("%w: %s %q", ErrInvalidConfig, KeyLogLevel, c.LogLevel)
	}

	return lvl, nil
}

// Logger builds the process logger writing to w. Call Validate first;
// an unparsable level falls back to info.
func (c Config) Logger(w io.Writer) *slog.Logger {
	lvl, err := c.Level()
	if err != nil {
		lvl = slog.LevelInfo
	}
	opts := &slog.HandlerOptions{Level: lvl}
	if strings.EqualFold(c.LogFormat, FormatJSON) {
		return slog.New(slog.NewJSONHandler(w, opts))
	}

	return slog.New(slog.NewTextHandler(w, opts))
}
