package api

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
)

// Outcome label values for borderpath_route_requests_total.
const (
	outcomeSuccess        = "success"
	outcomeUnknownCountry = "unknown_country"
	outcomeNoLandRoute    = "no_land_route"
	outcomeError          = "error"
)

type metrics struct {
	// requests counts route queries by outcome.
	requests *prometheus.CounterVec

	// length observes the number of countries in successful routes.
	length prometheus.Histogram

	// duration observes FindRoute latency for every outcome.
	duration prometheus.Histogram
}

func newMetrics(reg prometheus.Registerer) (*metrics, error) {
	m := &metrics{
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "borderpath",
			Subsystem: "route",
			Name:      "requests_total",
			Help:      "Route queries by outcome",
		}, []string{"outcome"}),
		length: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "borderpath",
			Subsystem: "route",
			Name:      "length",
			Help:      "Countries on successful routes, both ends included",
			Buckets:   prometheus.LinearBuckets(1, 1, 16),
		}),
		duration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "borderpath",
			Subsystem: "route",
			Name:      "duration_seconds",
			Help:      "Route search latency in seconds",
			Buckets:   prometheus.ExponentialBuckets(1e-6, 4, 10),
		}),
	}
	for _, c := range []prometheus.Collector{m.requests, m.length, m.duration} {
		if err := reg.Register(c); err != nil {
			return nil, fmt.Errorf("api: register metrics: %w", err)
		}
	}
	for _, outcome := range []string{outcomeSuccess, outcomeUnknownCountry, outcomeNoLandRoute} {
		m.requests.WithLabelValues(outcome)
	}

	return m, nil
}

// observe is a no-op on a nil receiver so handlers need not check.
func (m *metrics) observe(outcome string, length int, seconds float64) {
	if m == nil {
		return
	}
	m.requests.WithLabelValues(outcome).Inc()
	m.duration.Observe(seconds)
	if outcome == outcomeSuccess {
		m.length.Observe(float64(length))
	}
}
