package api

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/katalvlaran/borderpath/routing"
)

// RouteResponse is the body of a successful route query.
type RouteResponse struct {
	Route []string `json:"route"`
}

// HealthResponse is the body of GET /healthz.
type HealthResponse struct {
	Status    string `json:"status"`
	Countries int    `json:"countries"`
}

type handler struct {
	router  *routing.Router
	logger  *slog.Logger
	metrics *metrics
}

func (h *handler) route(c *gin.Context) {
	origin, destination := c.Param("origin"), c.Param("destination")

	start := time.Now()
	route, err := h.router.FindRoute(origin, destination)
	elapsed := time.Since(start)

	outcome := outcomeOf(err)
	h.metrics.observe(outcome, len(route), elapsed.Seconds())
	h.logger.Debug("route request",
		"request_id", c.GetString(requestIDKey),
		"origin", origin,
		"destination", destination,
		"outcome", outcome,
		"length", len(route),
	)

	if err != nil {
		var failure routing.Failure
		if errors.As(err, &failure) {
			writeProblem(c, http.StatusBadRequest, failure.Message())
			return
		}
		h.logger.Error("route request failed", "request_id", c.GetString(requestIDKey), "error", err)
		writeProblem(c, http.StatusInternalServerError, http.StatusText(http.StatusInternalServerError))
		return
	}

	c.JSON(http.StatusOK, RouteResponse{Route: route})
}

func (h *handler) health(c *gin.Context) {
	c.JSON(http.StatusOK, HealthResponse{Status: "ok", Countries: h.router.Graph().NodeCount()})
}

func outcomeOf(err error) string {
	switch {
	case err == nil:
		return outcomeSuccess
	case errors.Is(err, routing.ErrUnknownCountry):
		return outcomeUnknownCountry
	case errors.Is(err, routing.ErrNoLandRoute):
		return outcomeNoLandRoute
	default:
		return outcomeError
	}
}
