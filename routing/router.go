package routing

import (
	"slices"

	"github.com/katalvlaran/borderpath/countrygraph"
)

// noNode marks "no meeting node found yet".
const noNode = -1

// Router finds shortest land routes over one immutable graph.
type Router struct {
	graph *countrygraph.Graph
}

// New returns a Router over g.
func New(g *countrygraph.Graph) (*Router, error) {
	if g == nil {
		return nil, ErrNilGraph
	}

	return &Router{graph: g}, nil
}

// Graph returns the graph the Router searches.
func (r *Router) Graph() *countrygraph.Graph { return r.graph }

// FindRoute returns one shortest land route from origin to destination.
// Codes are case- and whitespace-insensitive. A non-nil error is always either
// *UnknownCountryError or *NoLandRouteError.
//
// Steps:
//  1. Resolve origin, then destination; the first unknown code is reported.
//  2. Same node → single-element route.
//  3. Different components → NoLandRouteError without searching.
//  4. Bidirectional BFS; an exhausted search also yields NoLandRouteError.
func (r *Router) FindRoute(origin, destination string) (Route, error) {
	// 1. resolve
	from, fromCode, err := r.resolve(origin)
	if err != nil {
		return nil, err
	}
	to, toCode, err := r.resolve(destination)
	if err != nil {
		return nil, err
	}

	// 2. same country
	if from == to {
		return Route{fromCode}, nil
	}

	// 3. component short-circuit; ids came from the graph, so lookups cannot fail
	fromComp, _ := r.graph.ComponentOf(from)
	toComp, _ := r.graph.ComponentOf(to)
	if fromComp != toComp {
		return nil, &NoLandRouteError{Origin: fromCode, Destination: toCode}
	}

	// 4. search
	path := r.search(from, to)
	if path == nil {
		return nil, &NoLandRouteError{Origin: fromCode, Destination: toCode}
	}

	return r.codes(path), nil
}

// resolve normalizes a raw code and looks it up.
func (r *Router) resolve(raw string) (int, string, error) {
	code := countrygraph.NormalizeCode(raw)
	if code == "" {
		return 0, "", &UnknownCountryError{Code: raw}
	}
	id := r.graph.IDByCode(code)
	if id == countrygraph.UnknownID {
		return 0, "", &UnknownCountryError{Code: code}
	}

	return id, code, nil
}

// side is the state of one half of the bidirectional search.
type side struct {
	frontier []int  // nodes at the current level
	next     []int  // reusable buffer for the following level
	visited  []bool // reached from this side
	parent   []int  // predecessor towards this side's root; root points at itself
}

func newSide(n, root int) *side {
	s := &side{
		frontier: make([]int, 1, 16),
		next:     make([]int, 0, 16),
		visited:  make([]bool, n),
		parent:   make([]int, n),
	}
	s.frontier[0] = root
	s.visited[root] = true
	s.parent[root] = root

	return s
}

// search runs the bidirectional BFS and returns node ids from origin to
// destination, or nil if the frontiers run dry without meeting.
func (r *Router) search(origin, destination int) []int {
	n := r.graph.NodeCount()
	fwd := newSide(n, origin)
	bwd := newSide(n, destination)

	for len(fwd.frontier) > 0 && len(bwd.frontier) > 0 {
		// expand the smaller frontier; origin side wins ties
		var meet int
		if len(fwd.frontier) <= len(bwd.frontier) {
			meet = r.expand(fwd, bwd)
		} else {
			meet = r.expand(bwd, fwd)
		}
		if meet != noNode {
			return join(meet, origin, destination, fwd.parent, bwd.parent)
		}
	}

	return nil
}

// expand advances this side by one full level. It returns the first newly
// visited node that other has already reached, or noNode.
func (r *Router) expand(this, other *side) int {
	meet := noNode
	next := this.next[:0]
	for _, u := range this.frontier {
		_ = r.graph.EachNeighbor(u, func(v int) bool {
			if this.visited[v] {
				return true
			}
			this.visited[v] = true
			this.parent[v] = u
			if other.visited[v] {
				meet = v
				return false
			}
			next = append(next, v)
			return true
		})
		if meet != noNode {
			return meet
		}
	}
	this.frontier, this.next = next, this.frontier

	return noNode
}

// join concatenates origin→meet (walked backwards, then reversed) with
// meet→destination (walked forwards, meet excluded).
func join(meet, origin, destination int, fromOrigin, fromDestination []int) []int {
	path := make([]int, 0, 8)
	for v := meet; v != origin; v = fromOrigin[v] {
		path = append(path, v)
	}
	path = append(path, origin)
	slices.Reverse(path)

	for v := meet; v != destination; {
		v = fromDestination[v]
		path = append(path, v)
	}

	return path
}

// codes maps node ids to country codes.
func (r *Router) codes(path []int) Route {
	route := make(Route, len(path))
	for i, id := range path {
		route[i], _ = r.graph.CodeByID(id)
	}

	return route
}
