package countrygraph

import (
	"errors"
	"strings"
)

// UnknownID is returned by IDByCode for codes absent from the graph.
const UnknownID = -1

// Sentinel errors for graph construction and queries.
var (
	// ErrInvalidGraph indicates that the arrays handed to New break a structural invariant.
	ErrInvalidGraph = errors.New("countrygraph: invalid graph")

	// ErrNodeOutOfRange indicates a node id outside [0, NodeCount()).
	ErrNodeOutOfRange = errors.New("countrygraph: node id out of range")

	// ErrNeighborOutOfRange indicates a neighbor index outside [0, Degree(id)).
	ErrNeighborOutOfRange = errors.New("countrygraph: neighbor index out of range")

	// ErrEmptyCode indicates a country code that is blank after normalization.
	ErrEmptyCode = errors.New("countrygraph: empty country code")

	// ErrBuilderFinalized indicates the Builder was used after Finalize.
	ErrBuilderFinalized = errors.New("countrygraph: builder already finalized")
)

// NormalizeCode trims surrounding ASCII spaces and control characters
// (everything up to U+0020) and upper-cases a country code. Other Unicode
// spaces such as U+00A0 are kept, so "\u00a0CZE" stays unknown.
// A blank input yields "".
func NormalizeCode(code string) string {
	return strings.ToUpper(strings.TrimFunc(code, isTrimmed))
}

func isTrimmed(r rune) bool {
	return r <= ' '
}

// edgeKey packs an ordered id pair into one map key. Undirected callers pass
// (lower, higher).
func edgeKey(lower, higher int) uint64 {
	return uint64(uint32(lower))<<32 | uint64(uint32(higher))
}
