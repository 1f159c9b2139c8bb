// Package borderpath answers "which countries do I drive through?" - the
// shortest land route between two countries, counted in border crossings.
//
// 🚀 What is borderpath?
//
//	A small, read-mostly routing service built from:
//		• dsu:          union-find with path compression and union-by-rank
//		• countrygraph: immutable code↔id graph with precomputed components
//		• routing:      level-synchronized bidirectional BFS with typed failures
//		• bfs:          single-source traversal (reachability, levels, reference distances)
//		• preload:      streaming JSON reader + embedded world dataset
//		• api:          gin HTTP surface with problem+json errors and Prometheus metrics
//		• config:       viper-backed settings (file, BORDERPATH_* env, flags)
//
// ✨ Guarantees
//
//   - One graph, built once, never mutated: any number of concurrent queries.
//   - Routes cross the fewest borders; failures are either "unknown country"
//     or "no land route", nothing else.
//   - Queries between disconnected countries are answered in O(1).
//
// Under the hood:
//
//	cmd/borderpath/ — CLI: serve, route, reach, stats
//	countrygraph/   — Builder and Graph
//	routing/        — Router, Route, UnknownCountryError, NoLandRouteError
//
// Quick start:
//
//	g, _ := preload.LoadDefault()
//	r, _ := routing.New(g)
//	route, err := r.FindRoute("CZE", "ITA") // CZE -> AUT -> ITA
package borderpath
