// Package countrygraph builds and serves the immutable land-border graph between
// countries.
//
// What
//
//   - Builder ingests (country code, border codes) records, assigns every distinct
//     normalized code a dense node id in first-seen order, records each undirected
//     border once, and tracks connected components with a dsu.DisjointSet.
//   - Builder.Finalize turns that state into a Graph using two passes over the edge
//     list (degree count, then fill) so every adjacency slice is allocated exactly once
//     at its final size.
//   - Graph is the only long-lived artifact: code↔id mapping, per-node adjacency,
//     per-node dense component id and aggregate counts. It has no mutable fields and is
//     safe for concurrent readers without locking.
//
// Invariants (checked by New and by Finalize)
//
//   - len(codes) == len(adjacency) == len(component) == NodeCount().
//   - Adjacency is symmetric, duplicate-free, in range and never lists the node itself.
//   - EdgeCount() is half the sum of adjacency lengths.
//   - Component ids are contiguous in [0, ComponentCount()) and two nodes share one
//     exactly when some path of borders connects them.
//
// Codes
//
//	NormalizeCode trims surrounding ASCII spaces and control characters (up to
//	U+0020, not other Unicode spaces) and upper-cases. The builder and every
//	lookup that takes user input go through it, so " cze " and "CZE" are the same node.
//
// UnknownID
//
//	IDByCode returns UnknownID (-1) for codes that are not in the graph. The value is
//	outside the valid id range; callers must check for it before using the id.
//	Lookup is the (id, ok) alternative.
//
// Complexity (V = countries, E = unique borders)
//
//   - Build:   O(V + E·α(V)) time, O(V + E) memory.
//   - Queries: O(1), except Neighbors which copies O(degree).
//
// Errors
//
//   - ErrInvalidGraph        arrays passed to New violate an invariant.
//   - ErrNodeOutOfRange      node id outside [0, NodeCount()).
//   - ErrNeighborOutOfRange  neighbor index outside [0, Degree(id)).
//   - ErrEmptyCode           a blank code was passed to Builder.IDFor.
//   - ErrBuilderFinalized    the builder was used after Finalize.
package countrygraph
