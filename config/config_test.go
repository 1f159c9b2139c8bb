package config

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// resetViper clears all viper state between tests to avoid cross-contamination.
func resetViper(t *testing.T) {
	t.Helper()
	viper.Reset()
	t.Cleanup(viper.Reset)
}

func TestLoad_Defaults(t *testing.T) {
	resetViper(t)

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, Config{
		ListenAddr:      ":8080",
		DataFile:        "",
		LogLevel:        "info",
		LogFormat:       FormatText,
		ShutdownTimeout: 10 * time.Second,
		MetricsEnabled:  true,
	}, cfg)
}

func TestLoad_EnvOverrides(t *testing.T) {
	tests := []struct {
		name   string
		envKey string
		envVal string
		field  func(Config) any
		want   any
	}{
		{"listen_addr", "BORDERPATH_LISTEN_ADDR", "127.0.0.1:9000", func(c Config) any { return c.ListenAddr }, "127.0.0.1:9000"},
		{"data_file", "BORDERPATH_DATA_FILE", "/srv/countries.json", func(c Config) any { return c.DataFile }, "/srv/countries.json"},
		{"log_level", "BORDERPATH_LOG_LEVEL", "debug", func(c Config) any { return c.LogLevel }, "debug"},
		{"log_format", "BORDERPATH_LOG_FORMAT", "json", func(c Config) any { return c.LogFormat }, "json"},
		{"shutdown_timeout", "BORDERPATH_SHUTDOWN_TIMEOUT", "3s", func(c Config) any { return c.ShutdownTimeout }, 3 * time.Second},
		{"metrics_enabled", "BORDERPATH_METRICS_ENABLED", "false", func(c Config) any { return c.MetricsEnabled }, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resetViper(t)
			viper.SetEnvPrefix(EnvPrefix)
			viper.AutomaticEnv()
			t.Setenv(tt.envKey, tt.envVal)

			cfg, err := Load()
			require.NoError(t, err)
			assert.Equal(t, tt.want, tt.field(cfg))
		})
	}
}

func TestLoad_ConfigFile(t *testing.T) {
	resetViper(t)
	path := filepath.Join(t.TempDir(), FileName+".yaml")
	content := "listen_addr: \":7070\"\nlog_format: json\nshutdown_timeout: 250ms\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	viper.SetConfigFile(path)
	require.NoError(t, viper.ReadInConfig())

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, ":7070", cfg.ListenAddr)
	assert.Equal(t, FormatJSON, cfg.LogFormat)
	assert.Equal(t, 250*time.Millisecond, cfg.ShutdownTimeout)
	assert.Equal(t, "info", cfg.LogLevel)
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name string
		key  string
		val  any
	}{
		{"UnknownLevel", KeyLogLevel, "chatty"},
		{"UnknownFormat", KeyLogFormat, "xml"},
		{"ZeroTimeout", KeyShutdownTimeout, "0s"},
		{"NegativeTimeout", KeyShutdownTimeout, "-1s"},
		{"UnparsableTimeout", KeyShutdownTimeout, "soon"},
		{"EmptyAddr", KeyListenAddr, "  "},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resetViper(t)
			viper.Set(tt.key, tt.val)

			_, err := Load()
			assert.ErrorIs(t, err, ErrInvalidConfig)
		})
	}
}

func TestConfig_Level(t *testing.T) {
	for in, want := range map[string]slog.Level{
		"debug": slog.LevelDebug,
		"INFO":  slog.LevelInfo,
		"warn":  slog.LevelWarn,
		"error": slog.LevelError,
	} {
		lvl, err := Config{LogLevel: in}.Level()
		require.NoError(t, err, in)
		assert.Equal(t, want, lvl, in)
	}
}

func TestConfig_Logger(t *testing.T) {
	var buf bytes.Buffer
	logger := Config{LogLevel: "warn", LogFormat: "JSON"}.Logger(&buf)
	logger.Info("dropped")
	logger.Warn("kept", "country", "CZE")

	var rec map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))
	assert.Equal(t, "kept", rec["msg"])
	assert.Equal(t, "CZE", rec["country"])

	buf.Reset()
	Config{LogLevel: "debug", LogFormat: FormatText}.Logger(&buf).Debug("hello")
	assert.Contains(t, buf.String(), "level=DEBUG msg=hello")
}
