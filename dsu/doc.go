// Package dsu provides an incremental disjoint-set union (union-find) over dense
// integer elements, used to label connected components while a graph is being built.
//
// What
//
//   - Add() creates a new singleton set; element ids are assigned sequentially from 0.
//   - Find(x) returns the representative of x's set and repoints every element on the
//     walked path directly at that representative (full path compression).
//   - Union(a, b) merges two sets by rank: the root with the smaller uint8 rank is
//     attached under the root with the larger rank; on a tie the root of a becomes the
//     parent and its rank grows by one.
//   - Snapshot() materializes Find for every element, in element order.
//
// Why
//
//	Components are accumulated while edges stream in, so the union-find never needs
//	the whole edge list at once. Once ingestion finishes a single Snapshot yields the
//	root of every element, which callers remap to a dense component range.
//
// Complexity
//
//   - Add:      amortized O(1) (backing slices grow geometrically).
//   - Find:     amortized O(α(n)).
//   - Union:    amortized O(α(n)).
//   - Snapshot: O(n·α(n)).
//   - Memory:   one int and one byte per element.
//
// Errors
//
//   - ErrOutOfRange if an element id was never returned by Add.
//
// A DisjointSet is not safe for concurrent use.
package dsu
