// Package bfs provides a single-source breadth-first search over a
// countrygraph.Graph, returning border-count distances, parent links, and
// visit order.
//
// What
//
//   - Explore countries in non-decreasing distance (borders crossed) from a start node.
//   - Returns a BFSResult containing:
//   - Order: visit sequence
//   - Depth: node id → distance from start (Unreached if never reached)
//   - Parent: node id → predecessor in the BFS tree
//   - Supports functional hooks at three stages:
//   - OnEnqueue (before a node is enqueued)
//   - OnDequeue (immediately before visiting)
//   - OnVisit   (when visiting; may abort with an error)
//   - Allows filtering of individual borders via WithFilterNeighbor.
//   - Honors MaxDepth limit (d>0) or explicit "no limit" (d==0).
//
// Why
//
//   - "Which countries are within N border crossings?" (Levels, MaxDepth).
//   - A plain one-sided reference for distances, against which the
//     bidirectional search in package routing is checked.
//
// Determinism
//
//	Neighbors are enqueued in adjacency order, which is the order borders were
//	ingested, so the visit sequence is reproducible for a given graph.
//
// Complexity (V = countries, E = borders)
//
//   - Time:   O(V + E)
//   - Memory: O(V)       (queue, Depth, Parent, visited)
//
// Usage
//
//	res, err := bfs.FromCode(g, "cze", bfs.WithMaxDepth(2))
//	if err != nil {
//	    // ErrGraphNil, ErrStartNotFound, ErrOptionViolation, ctx error or hook error
//	}
//	for depth, ids := range res.Levels() {
//	    // ...
//	}
//
// Options
//
//   - DefaultOptions(): background Context, no-op hooks, no depth limit, no filtering.
//   - WithContext(ctx):            set a custom context for cancellation.
//   - WithMaxDepth(d):             stop exploring beyond depth d (>0).
//   - WithFilterNeighbor(fn):      skip borders for which fn(curr,neighbor)==false.
//   - WithOnEnqueue(fn):           hook before a node is enqueued.
//   - WithOnDequeue(fn):           hook immediately before visiting a node.
//   - WithOnVisit(fn):             hook during visit; returning error aborts BFS.
//
// Errors
//
//   - ErrGraphNil          if the graph pointer is nil.
//   - ErrStartNotFound     if the start node or code does not exist.
//   - ErrOptionViolation   if invalid Option (e.g. negative MaxDepth).
//   - ErrNoPath            from PathTo for unreached nodes.
//   - Wrapped user-supplied hook errors from OnVisit.
package bfs
