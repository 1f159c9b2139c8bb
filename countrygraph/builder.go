package countrygraph

import (
	"fmt"

	"github.com/katalvlaran/borderpath/dsu"
)

// BuilderOption configures a Builder before ingestion starts.
type BuilderOption func(*BuilderOptions)

// BuilderOptions holds sizing hints for the construction-time state.
type BuilderOptions struct {
	// Nodes is the expected number of distinct countries.
	Nodes int

	// Edges is the expected number of unique borders.
	Edges int
}

// DefaultBuilderOptions sizes the build state for a world map:
// about 250 countries and 350 land borders.
func DefaultBuilderOptions() BuilderOptions {
	return BuilderOptions{Nodes: 256, Edges: 512}
}

// WithCapacity overrides the sizing hints. Non-positive values keep the defaults.
func WithCapacity(nodes, edges int) BuilderOption {
	return func(o *BuilderOptions) {
		if nodes > 0 {
			o.Nodes = nodes
		}
		if edges > 0 {
			o.Edges = edges
		}
	}
}

// Builder accumulates countries and borders and produces a Graph exactly once.
// It is not safe for concurrent use.
type Builder struct {
	idByCode  map[string]int
	codeByID  []string
	edges     *edgePairs
	seen      map[uint64]struct{}
	sets      *dsu.DisjointSet
	finalized bool
}

// NewBuilder returns an empty Builder.
func NewBuilder(opts ...BuilderOption) *Builder {
	o := DefaultBuilderOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return &Builder{
		idByCode: make(map[string]int, o.Nodes),
		codeByID: make([]string, 0, o.Nodes),
		edges:    newEdgePairs(o.Edges),
		seen:     make(map[uint64]struct{}, o.Edges),
		sets:     dsu.New(o.Nodes),
	}
}

// IDFor returns the node id of code, allocating the next dense id on first sight.
// The code is normalized first; a blank code yields ErrEmptyCode.
func (b *Builder) IDFor(code string) (int, error) {
	if b.finalized {
		return 0, ErrBuilderFinalized
	}
	norm := NormalizeCode(code)
	if norm == "" {
		return 0, ErrEmptyCode
	}
	if id, ok := b.idByCode[norm]; ok {
		return id, nil
	}

	id := b.sets.Add()
	b.idByCode[norm] = id
	b.codeByID = append(b.codeByID, norm)

	return id, nil
}

// Connect records the undirected border left–right. Self-loops and borders
// already recorded in either direction are ignored.
func (b *Builder) Connect(left, right int) error {
	if b.finalized {
		return ErrBuilderFinalized
	}
	n := len(b.codeByID)
	if left < 0 || left >= n || right < 0 || right >= n {
		return fmt.Errorf("%w: connect %d–%d with %d nodes", ErrNodeOutOfRange, left, right, n)
	}
	if left == right {
		return nil
	}

	lower, higher := min(left, right), max(left, right)
	key := edgeKey(lower, higher)
	if _, dup := b.seen[key]; dup {
		return nil
	}
	b.seen[key] = struct{}{}
	b.edges.add(lower, higher)

	return b.sets.Union(lower, higher)
}

// AddCountry ingests one record: the country itself and a border to each
// listed neighbor. A blank country code skips the whole record; blank border
// codes are skipped individually.
func (b *Builder) AddCountry(code string, borders []string) error {
	if b.finalized {
		return ErrBuilderFinalized
	}
	if NormalizeCode(code) == "" {
		return nil
	}
	id, err := b.IDFor(code)
	if err != nil {
		return err
	}
	for _, border := range borders {
		if NormalizeCode(border) == "" {
			continue
		}
		nbr, err := b.IDFor(border)
		if err != nil {
			return err
		}
		if err := b.Connect(id, nbr); err != nil {
			return err
		}
	}

	return nil
}

// Finalize produces the immutable Graph and releases the build state.
// Any later call on the Builder returns ErrBuilderFinalized.
//
// Steps:
//  1. Freeze the id→code table.
//  2. Count degrees in one pass over the edge list.
//  3. Allocate one exactly sized neighbor slice per node.
//  4. Fill both directions of every edge using a per-node cursor.
//  5. Snapshot the union-find and remap roots to dense ids in first-seen order.
//  6. Validate and wrap everything into a Graph.
//
// Complexity: O(V + E).
func (b *Builder) Finalize() (*Graph, error) {
	if b.finalized {
		return nil, ErrBuilderFinalized
	}
	b.finalized = true

	// 1. id→code as a fixed array
	codes := append([]string(nil), b.codeByID...)
	n := len(codes)
	from, to := b.edges.from(), b.edges.to()

	// 2. degree pass
	degree := make([]int, n)
	for i := range from {
		degree[from[i]]++
		degree[to[i]]++
	}

	// 3. exact allocation
	adjacency := make([][]int, n)
	for id := range adjacency {
		adjacency[id] = make([]int, degree[id])
	}

	// 4. fill pass
	cursor := make([]int, n)
	for i := range from {
		u, v := from[i], to[i]
		adjacency[u][cursor[u]] = v
		cursor[u]++
		adjacency[v][cursor[v]] = u
		cursor[v]++
	}

	// 5. dense component ids
	component := denseComponents(b.sets.Snapshot())

	idByCode := b.idByCode
	b.idByCode, b.codeByID, b.edges, b.seen, b.sets = nil, nil, nil, nil, nil

	// 6. publish
	return newGraph(idByCode, codes, adjacency, component)
}

// denseComponents maps arbitrary union-find roots onto [0, k) in the order the
// roots are first met while scanning nodes 0..n-1.
func denseComponents(roots []int) []int {
	denseByRoot := make(map[int]int)
	component := make([]int, len(roots))
	for id, root := range roots {
		dense, ok := denseByRoot[root]
		if !ok {
			dense = len(denseByRoot)
			denseByRoot[root] = dense
		}
		component[id] = dense
	}

	return component
}
