package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/borderpath/api"
	"github.com/katalvlaran/borderpath/config"
	"github.com/katalvlaran/borderpath/routing"
)

const readHeaderTimeout = 5 * time.Second

func newServeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve route queries over HTTP",
		Args:  cobra.NoArgs,
		RunE:  runServe,
	}
	flags := cmd.Flags()
	flags.String("listen-addr", ":8080", "HTTP listen address")
	flags.Duration("shutdown-timeout", 10*time.Second, "graceful shutdown timeout")
	flags.Bool("metrics", true, "expose Prometheus metrics at /metrics")
	bindFlags(flags, map[string]string{
		config.KeyListenAddr:      "listen-addr",
		config.KeyShutdownTimeout: "shutdown-timeout",
		config.KeyMetricsEnabled:  "metrics",
	})

	return cmd
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg, logger, g, err := setup(cmd)
	if err != nil {
		return fmt.Errorf("load country graph: %w", err)
	}
	r, err := routing.New(g)
	if err != nil {
		return err
	}

	handler, err := newHandler(r, cfg, logger)
	if err != nil {
		return err
	}

	ln, err := net.Listen("tcp", cfg.ListenAddr)
	if err != nil {
		return fmt.Errorf("listen %s: %w", cfg.ListenAddr, err)
	}
	srv := &http.Server{Handler: handler, ReadHeaderTimeout: readHeaderTimeout}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return serve(ctx, srv, ln, cfg.ShutdownTimeout, logger)
}

// newHandler builds the HTTP engine, with a fresh metrics registry when enabled.
func newHandler(r *routing.Router, cfg config.Config, logger *slog.Logger) (http.Handler, error) {
	gin.SetMode(gin.ReleaseMode)

	opts := []api.Option{api.WithLogger(logger)}
	if cfg.MetricsEnabled {
		reg := prometheus.NewRegistry()
		reg.MustRegister(
			collectors.NewGoCollector(),
			collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		)
		opts = append(opts, api.WithMetrics(reg))
	}

	return api.NewRouter(r, opts...)
}

// serve runs srv on ln until ctx is done, then shuts it down within timeout.
func serve(ctx context.Context, srv *http.Server, ln net.Listener, timeout time.Duration, logger *slog.Logger) error {
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Info("http server listening", "addr", ln.Addr().String())
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		logger.Info("shutting down http server", "timeout", timeout)

		shutdownCtx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()

		return srv.Shutdown(shutdownCtx)
	})

	return g.Wait()
}
