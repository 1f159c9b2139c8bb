// Package api exposes a routing.Router over HTTP with gin.
//
// Endpoints
//
//	GET /routing/:origin/:destination
//	    200 {"route": ["CZE", "AUT", "ITA"]}
//	    400 application/problem+json (RFC 9457) whose "detail" is the routing
//	        failure message, e.g. "Unknown country code: XYZ".
//	GET /healthz
//	    200 {"status": "ok", "countries": 250}
//	GET /metrics
//	    Prometheus exposition, only when WithMetrics is given.
//
// Every response carries X-Request-ID: the caller's value when present,
// otherwise a fresh UUID.
package api
