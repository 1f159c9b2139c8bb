package routing

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for routing outcomes.
var (
	// ErrNilGraph is returned by New when no graph is supplied.
	ErrNilGraph = errors.New("routing: graph is nil")

	// ErrUnknownCountry matches every *UnknownCountryError.
	ErrUnknownCountry = errors.New("routing: unknown country code")

	// ErrNoLandRoute matches every *NoLandRouteError.
	ErrNoLandRoute = errors.New("routing: no land route")
)

// Failure is implemented by the expected, non-fatal routing outcomes.
type Failure interface {
	error

	// Message returns a human-readable explanation for API clients.
	Message() string
}

// UnknownCountryError reports a code that does not resolve to any country.
type UnknownCountryError struct {
	// Code is the normalized code, or the raw input if it was blank.
	Code string
}

func (e *UnknownCountryError) Error() string {
	return fmt.Sprintf("%v: %q", ErrUnknownCountry, e.Code)
}

// Unwrap lets errors.Is match ErrUnknownCountry.
func (e *UnknownCountryError) Unwrap() error { return ErrUnknownCountry }

// Message implements Failure.
func (e *UnknownCountryError) Message() string {
	return "Unknown country code: " + e.Code
}

// NoLandRouteError reports two known countries with no land connection.
type NoLandRouteError struct {
	Origin      string
	Destination string
}

func (e *NoLandRouteError) Error() string {
	return fmt.Sprintf("%v: %s to %s", ErrNoLandRoute, e.Origin, e.Destination)
}

// Unwrap lets errors.Is match ErrNoLandRoute.
func (e *NoLandRouteError) Unwrap() error { return ErrNoLandRoute }

// Message implements Failure.
func (e *NoLandRouteError) Message() string {
	return "No land route found from " + e.Origin + " to " + e.Destination
}

// Route is an ordered sequence of country codes, origin first.
type Route []string

// Crossings returns the number of borders crossed along the route.
func (r Route) Crossings() int {
	if len(r) == 0 {
		return 0
	}

	return len(r) - 1
}

// String renders the route as "CZE -> AUT -> ITA".
func (r Route) String() string {
	return strings.Join(r, " -> ")
}
