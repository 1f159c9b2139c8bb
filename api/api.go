package api

import (
	"errors"
	"log/slog"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/katalvlaran/borderpath/routing"
)

// Paths served by the router.
const (
	RoutePath   = "/routing/:origin/:destination"
	HealthPath  = "/healthz"
	MetricsPath = "/metrics"
)

// ErrNilRouter indicates NewRouter was called without a routing.Router.
var ErrNilRouter = errors.New("api: routing.Router is nil")

// Option configures NewRouter.
type Option func(*options)

type options struct {
	logger   *slog.Logger
	registry *prometheus.Registry
}

// WithLogger sets the request logger. A nil logger is ignored.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithMetrics registers the request metrics on reg and serves reg at /metrics.
func WithMetrics(reg *prometheus.Registry) Option {
	return func(o *options) {
		o.registry = reg
	}
}

// NewRouter returns a gin engine serving r.
func NewRouter(r *routing.Router, opts ...Option) (*gin.Engine, error) {
	if r == nil {
		return nil, ErrNilRouter
	}
	o := options{logger: slog.New(slog.DiscardHandler)}
	for _, opt := range opts {
		opt(&o)
	}

	var m *metrics
	if o.registry != nil {
		var err error
		if m, err = newMetrics(o.registry); err != nil {
			return nil, err
		}
	}

	h := &handler{router: r, logger: o.logger, metrics: m}

	engine := gin.New()
	engine.Use(gin.Recovery(), requestID(), accessLog(o.logger))
	engine.GET(RoutePath, h.route)
	engine.GET(HealthPath, h.health)
	if o.registry != nil {
		engine.GET(MetricsPath, gin.WrapH(promhttp.HandlerFor(o.registry, promhttp.HandlerOpts{})))
	}

	return engine, nil
}
