package main

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"net"
	"net/http"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/borderpath/config"
	"github.com/katalvlaran/borderpath/preload"
	"github.com/katalvlaran/borderpath/routing"
)

// run executes the CLI with args and returns stdout, stderr and the error.
func run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	viper.Reset()
	t.Cleanup(viper.Reset)

	var stdout, stderr bytes.Buffer
	root := newRootCmd()
	root.SetOut(&stdout)
	root.SetErr(&stderr)
	root.SetArgs(append(args, "--log-level", "error"))
	err := root.ExecuteContext(context.Background())

	return stdout.String(), stderr.String(), err
}

func TestRouteCmd(t *testing.T) {
	out, _, err := run(t, "route", "cze", "ITA")
	require.NoError(t, err)
	assert.Equal(t, "CZE -> AUT -> ITA\n", out)

	out, _, err = run(t, "route", "DEU", "deu")
	require.NoError(t, err)
	assert.Equal(t, "DEU\n", out)
}

func TestRouteCmd_Failures(t *testing.T) {
	cases := []struct {
		args []string
		want string
	}{
		{[]string{"route", "USA", "FRA"}, "No land route found from USA to FRA\n"},
		{[]string{"route", "cze", "xyz"}, "Unknown country code: XYZ\n"},
	}
	for _, tc := range cases {
		out, errOut, err := run(t, tc.args...)
		require.ErrorIs(t, err, errReported)
		assert.Empty(t, out)
		assert.Equal(t, tc.want, errOut)
	}

	_, _, err := run(t, "route", "CZE")
	assert.Error(t, err)
}

func TestReachCmd(t *testing.T) {
	out, _, err := run(t, "reach", "prt", "--depth", "2")
	require.NoError(t, err)
	assert.Equal(t, "0: PRT\n1: ESP\n2: AND FRA GIB MAR\n", out)

	out, _, err = run(t, "reach", "ISL", "--depth", "0")
	require.NoError(t, err)
	assert.Equal(t, "0: ISL\n", out)

	_, errOut, err := run(t, "reach", "qqq")
	require.ErrorIs(t, err, errReported)
	assert.Equal(t, "Unknown country code: QQQ\n", errOut)

	_, _, err = run(t, "reach", "PRT", "--depth", "-1")
	assert.Error(t, err)
}

func TestStatsCmd(t *testing.T) {
	out, _, err := run(t, "stats")
	require.NoError(t, err)
	assert.Equal(t, "countries:  250\nborders:    324\ncomponents: 91\n", out)
}

func TestDataFileFlag(t *testing.T) {
	path := filepath.Join(t.TempDir(), "mini.json")
	require.NoError(t, os.WriteFile(path, []byte(`[{"cca3":"AAA","borders":["BBB"]},{"cca3":"CCC"}]`), 0o600))

	out, _, err := run(t, "stats", "--data-file", path)
	require.NoError(t, err)
	assert.Equal(t, "countries:  3\nborders:    1\ncomponents: 2\n", out)

	_, _, err = run(t, "stats", "--data-file", filepath.Join(t.TempDir(), "missing.json"))
	assert.ErrorIs(t, err, preload.ErrLoad)
}

func TestConfigFlag(t *testing.T) {
	dir := t.TempDir()
	data := filepath.Join(dir, "mini.json")
	require.NoError(t, os.WriteFile(data, []byte(`[{"cca3":"AAA","borders":["BBB"]}]`), 0o600))
	cfgFile := filepath.Join(dir, "borderpath.yaml")
	require.NoError(t, os.WriteFile(cfgFile, []byte("data_file: "+data+"\n"), 0o600))

	out, _, err := run(t, "route", "AAA", "BBB", "--config", cfgFile)
	require.NoError(t, err)
	assert.Equal(t, "AAA -> BBB\n", out)

	_, _, err = run(t, "stats", "--config", filepath.Join(dir, "missing.yaml"))
	assert.Error(t, err)
}

func TestInvalidConfig(t *testing.T) {
	_, _, err := run(t, "stats", "--log-format", "xml")
	assert.ErrorIs(t, err, config.ErrInvalidConfig)
}

func TestServe_GracefulShutdown(t *testing.T) {
	g, err := preload.LoadDefault()
	require.NoError(t, err)
	r, err := routing.New(g)
	require.NoError(t, err)

	cfg := config.Config{MetricsEnabled: true}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	handler, err := newHandler(r, cfg, logger)
	require.NoError(t, err)

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	srv := &http.Server{Handler: handler, ReadHeaderTimeout: readHeaderTimeout}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- serve(ctx, srv, ln, time.Second, logger) }()

	base := "http://" + ln.Addr().String()
	resp, err := http.Get(base + "/routing/CZE/ITA")
	require.NoError(t, err)
	body, err := io.ReadAll(resp.Body)
	resp.Body.Close()
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.JSONEq(t, `{"route":["CZE","AUT","ITA"]}`, string(body))

	resp, err = http.Get(base + "/metrics")
	require.NoError(t, err)
	body, _ = io.ReadAll(resp.Body)
	resp.Body.Close()
	assert.Contains(t, string(body), `borderpath_route_requests_total{outcome="success"} 1`)
	assert.Contains(t, string(body), "go_goroutines")

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not shut down")
	}
}

func TestServe_ListenerError(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	require.NoError(t, ln.Close())

	srv := &http.Server{Handler: http.NotFoundHandler(), ReadHeaderTimeout: readHeaderTimeout}
	err = serve(context.Background(), srv, ln, time.Second, slog.New(slog.DiscardHandler))
	assert.Error(t, err)
}
