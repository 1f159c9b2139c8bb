package countrygraph

import (
	"fmt"

	"github.com/katalvlaran/borderpath/dsu"
)

// Graph is the immutable land-border graph. All methods are read-only and may be
// called from any number of goroutines.
type Graph struct {
	idByCode   map[string]int
	codeByID   []string
	adjacency  [][]int
	component  []int
	edges      int
	components int
}

// New validates and wraps caller-supplied arrays into a Graph.
// The inputs are copied, so later changes by the caller do not leak into the Graph.
//
// codeToID must map every normalized code to its id, and codes[id] must be the
// code for id. adjacency[id] lists neighbor ids; component[id] is the dense
// component id of the node. Any mismatch is reported as ErrInvalidGraph.
//
// Complexity: O(V + E).
func New(codeToID map[string]int, codes []string, adjacency [][]int, component []int) (*Graph, error) {
	idByCode := make(map[string]int, len(codeToID))
	for code, id := range codeToID {
		idByCode[code] = id
	}
	adj := make([][]int, len(adjacency))
	for id, nbrs := range adjacency {
		adj[id] = append(make([]int, 0, len(nbrs)), nbrs...)
	}

	return newGraph(
		idByCode,
		append([]string(nil), codes...),
		adj,
		append([]int(nil), component...),
	)
}

// newGraph takes ownership of its arguments without copying.
func newGraph(idByCode map[string]int, codes []string, adjacency [][]int, component []int) (*Graph, error) {
	g := &Graph{
		idByCode:  idByCode,
		codeByID:  codes,
		adjacency: adjacency,
		component: component,
	}
	if err := g.validate(); err != nil {
		return nil, err
	}

	return g, nil
}

// validate checks every structural invariant and fills the derived counts.
func (g *Graph) validate() error {
	n := len(g.codeByID)
	// 1. Parallel arrays must line up.
	if len(g.adjacency) != n {
		return fmt.Errorf("%w: %d codes but %d adjacency rows", ErrInvalidGraph, n, len(g.adjacency))
	}
	if len(g.component) != n {
		return fmt.Errorf("%w: %d codes but %d component ids", ErrInvalidGraph, n, len(g.component))
	}

	// 2. code→id must be the exact inverse of id→code.
	if len(g.idByCode) != n {
		return fmt.Errorf("%w: %d codes but %d code→id entries", ErrInvalidGraph, n, len(g.idByCode))
	}
	for code, id := range g.idByCode {
		if id < 0 || id >= n || g.codeByID[id] != code {
			return fmt.Errorf("%w: code %q maps to id %d inconsistently", ErrInvalidGraph, code, id)
		}
	}

	// 3. Adjacency: in range, no self-loops, no duplicates, symmetric.
	directed := make(map[uint64]struct{})
	entries := 0
	for u, nbrs := range g.adjacency {
		for _, v := range nbrs {
			if v < 0 || v >= n {
				return fmt.Errorf("%w: node %d lists neighbor %d out of range", ErrInvalidGraph, u, v)
			}
			if v == u {
				return fmt.Errorf("%w: node %d lists itself", ErrInvalidGraph, u)
			}
			key := edgeKey(u, v)
			if _, dup := directed[key]; dup {
				return fmt.Errorf("%w: node %d lists neighbor %d twice", ErrInvalidGraph, u, v)
			}
			directed[key] = struct{}{}
			entries++
		}
	}
	for u, nbrs := range g.adjacency {
		for _, v := range nbrs {
			if _, ok := directed[edgeKey(v, u)]; !ok {
				return fmt.Errorf("%w: edge %d→%d has no reverse", ErrInvalidGraph, u, v)
			}
		}
	}
	g.edges = entries / 2

	// 4. Component ids: contiguous from 0, constant along edges, and one id per
	//    connected piece of the graph.
	maxID := -1
	for u, c := range g.component {
		if c < 0 || c >= n {
			return fmt.Errorf("%w: node %d has component id %d", ErrInvalidGraph, u, c)
		}
		if c > maxID {
			maxID = c
		}
	}
	g.components = maxID + 1
	used := make([]bool, g.components)
	for _, c := range g.component {
		used[c] = true
	}
	for c, ok := range used {
		if !ok {
			return fmt.Errorf("%w: component ids skip %d", ErrInvalidGraph, c)
		}
	}
	sets := dsu.New(n)
	for range n {
		sets.Add()
	}
	for u, nbrs := range g.adjacency {
		for _, v := range nbrs {
			if g.component[u] != g.component[v] {
				return fmt.Errorf("%w: neighbors %d and %d in different components", ErrInvalidGraph, u, v)
			}
			_ = sets.Union(u, v) // ids already range-checked
		}
	}
	pieces := make(map[int]struct{})
	for _, root := range sets.Snapshot() {
		pieces[root] = struct{}{}
	}
	if len(pieces) != g.components {
		return fmt.Errorf("%w: %d component ids but %d connected pieces", ErrInvalidGraph, g.components, len(pieces))
	}

	return nil
}

// NodeCount returns the number of countries.
func (g *Graph) NodeCount() int { return len(g.codeByID) }

// EdgeCount returns the number of unique undirected borders.
func (g *Graph) EdgeCount() int { return g.edges }

// ComponentCount returns the number of connected components.
func (g *Graph) ComponentCount() int { return g.components }

// IDByCode returns the node id of an already normalized code, or UnknownID.
func (g *Graph) IDByCode(code string) int {
	id, ok := g.idByCode[code]
	if !ok {
		return UnknownID
	}

	return id
}

// Lookup normalizes code and reports its node id and whether it is known.
func (g *Graph) Lookup(code string) (int, bool) {
	id, ok := g.idByCode[NormalizeCode(code)]
	return id, ok
}

// CodeByID returns the country code of node id.
func (g *Graph) CodeByID(id int) (string, error) {
	if err := g.checkNode(id); err != nil {
		return "", err
	}

	return g.codeByID[id], nil
}

// ComponentOf returns the dense component id of node id.
func (g *Graph) ComponentOf(id int) (int, error) {
	if err := g.checkNode(id); err != nil {
		return 0, err
	}

	return g.component[id], nil
}

// Neighbors returns a copy of the neighbor ids of node id in adjacency order.
func (g *Graph) Neighbors(id int) ([]int, error) {
	if err := g.checkNode(id); err != nil {
		return nil, err
	}

	return append(make([]int, 0, len(g.adjacency[id])), g.adjacency[id]...), nil
}

// EachNeighbor calls fn for every neighbor of node id in adjacency order, without
// copying, until fn returns false.
func (g *Graph) EachNeighbor(id int, fn func(nbr int) bool) error {
	if err := g.checkNode(id); err != nil {
		return err
	}
	for _, nbr := range g.adjacency[id] {
		if !fn(nbr) {
			break
		}
	}

	return nil
}

// Degree returns the number of neighbors of node id.
func (g *Graph) Degree(id int) (int, error) {
	if err := g.checkNode(id); err != nil {
		return 0, err
	}

	return len(g.adjacency[id]), nil
}

// NeighborAt returns the index-th neighbor of node id.
func (g *Graph) NeighborAt(id, index int) (int, error) {
	if err := g.checkNode(id); err != nil {
		return 0, err
	}
	nbrs := g.adjacency[id]
	if index < 0 || index >= len(nbrs) {
		return 0, fmt.Errorf("%w: index %d, degree %d", ErrNeighborOutOfRange, index, len(nbrs))
	}

	return nbrs[index], nil
}

// Codes returns a copy of all country codes in node id order.
func (g *Graph) Codes() []string {
	return append([]string(nil), g.codeByID...)
}

func (g *Graph) checkNode(id int) error {
	if id < 0 || id >= len(g.codeByID) {
		return fmt.Errorf("%w: %d not in [0,%d)", ErrNodeOutOfRange, id, len(g.codeByID))
	}

	return nil
}
