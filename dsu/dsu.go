package dsu

import (
	"errors"
	"fmt"
)

// ErrOutOfRange is returned when an element id was never added to the set.
var ErrOutOfRange = errors.New("dsu: element out of range")

// initialCapacity is the default number of elements pre-allocated by New.
const initialCapacity = 256

// DisjointSet is a slice-backed union-find with path compression and union by rank.
// The zero value is ready to use.
type DisjointSet struct {
	parent []int   // parent[x] == x for roots
	rank   []uint8 // upper bound on tree height, meaningful for roots only
}

// New returns an empty DisjointSet with room for capacity elements before the
// backing slices need to grow. A non-positive capacity selects a small default.
func New(capacity int) *DisjointSet {
	if capacity <= 0 {
		capacity = initialCapacity
	}

	return &DisjointSet{
		parent: make([]int, 0, capacity),
		rank:   make([]uint8, 0, capacity),
	}
}

// Len reports the number of elements added so far.
func (d *DisjointSet) Len() int {
	return len(d.parent)
}

// Add creates a new singleton set and returns its element id.
// Ids are assigned sequentially starting at 0, one per call.
func (d *DisjointSet) Add() int {
	id := len(d.parent)
	d.parent = append(d.parent, id)
	d.rank = append(d.rank, 0)

	return id
}

// Find returns the representative of the set containing x.
// Every element visited on the way to the root is repointed directly at the root.
func (d *DisjointSet) Find(x int) (int, error) {
	if err := d.check(x); err != nil {
		return 0, err
	}

	return d.find(x), nil
}

// find is Find without bounds checking.
func (d *DisjointSet) find(x int) int {
	// 1. Walk up to the root.
	root := x
	for d.parent[root] != root {
		root = d.parent[root]
	}
	// 2. Second walk: repoint every node on the path at the root.
	for x != root {
		next := d.parent[x]
		d.parent[x] = root
		x = next
	}

	return root
}

// Union merges the sets containing a and b. It is a no-op when both already
// belong to the same set.
func (d *DisjointSet) Union(a, b int) error {
	if err := d.check(a); err != nil {
		return err
	}
	if err := d.check(b); err != nil {
		return err
	}

	rootA, rootB := d.find(a), d.find(b)
	if rootA == rootB {
		return nil
	}

	// Attach the lower-ranked root under the higher-ranked one.
	switch {
	case d.rank[rootA] < d.rank[rootB]:
		d.parent[rootA] = rootB
	case d.rank[rootA] > d.rank[rootB]:
		d.parent[rootB] = rootA
	default:
		d.parent[rootB] = rootA
		d.rank[rootA]++
	}

	return nil
}

// Connected reports whether a and b belong to the same set.
func (d *DisjointSet) Connected(a, b int) (bool, error) {
	rootA, err := d.Find(a)
	if err != nil {
		return false, err
	}
	rootB, err := d.Find(b)
	if err != nil {
		return false, err
	}

	return rootA == rootB, nil
}

// Snapshot returns, for every element id 0..Len()-1, the representative of its set.
// Calling Snapshot fully compresses the forest as a side effect.
func (d *DisjointSet) Snapshot() []int {
	roots := make([]int, len(d.parent))
	for x := range roots {
		roots[x] = d.find(x)
	}

	return roots
}

func (d *DisjointSet) check(x int) error {
	if x < 0 || x >= len(d.parent) {
		return fmt.Errorf("%w: %d not in [0,%d)", ErrOutOfRange, x, len(d.parent))
	}

	return nil
}
