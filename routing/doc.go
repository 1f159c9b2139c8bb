// Package routing answers "what is one shortest sequence of countries connecting
// origin to destination by land?" over an immutable countrygraph.Graph.
//
// What
//
//   - Router.FindRoute normalizes both codes (trim + upper-case), rejects unknown
//     codes, answers same-country queries with a one-element route and rejects
//     pairs in different components in O(1) using the component ids precomputed
//     by countrygraph.
//   - Remaining pairs are searched with a level-synchronized bidirectional BFS:
//     each step expands every node of the smaller frontier by exactly one level and
//     stops at the first newly visited node the other side has already reached.
//   - The route is stitched from the origin-side parent chain (reversed) and the
//     destination-side parent chain.
//
// Outcomes
//
//	FindRoute returns exactly one of:
//	  - a Route (origin first, destination last) and a nil error;
//	  - *UnknownCountryError (errors.Is(err, ErrUnknownCountry)); origin is checked
//	    before destination;
//	  - *NoLandRouteError (errors.Is(err, ErrNoLandRoute)).
//	Both error types implement Failure, whose Message is suitable for API clients.
//
// Determinism
//
//	Neighbors are scanned in adjacency order and the origin side is expanded when
//	both frontiers have the same size, so repeated queries on one graph return the
//	same route.
//
// Concurrency
//
//	A Router holds no mutable state. Every FindRoute call allocates its own
//	visited, parent and frontier slices, so calls may run in parallel.
//
// Complexity (V = countries, E = borders)
//
//   - Unknown code, same country, different components: O(1).
//   - Otherwise: O(V + E) time and O(V) memory in the worst case.
package routing
