package countrygraph

// edgePairs stores edge endpoints in two parallel growable slices instead of a
// slice of structs or pointers, so the finalize passes stream over plain ints.
// It does not deduplicate; Builder.Connect does that before calling add.
type edgePairs struct {
	fromIDs []int
	toIDs   []int
}

func newEdgePairs(capacity int) *edgePairs {
	return &edgePairs{
		fromIDs: make([]int, 0, capacity),
		toIDs:   make([]int, 0, capacity),
	}
}

// add appends one endpoint pair.
func (e *edgePairs) add(from, to int) {
	e.fromIDs = append(e.fromIDs, from)
	e.toIDs = append(e.toIDs, to)
}

func (e *edgePairs) len() int { return len(e.fromIDs) }

// from returns a compact copy of the first endpoints in insertion order.
func (e *edgePairs) from() []int { return append([]int(nil), e.fromIDs...) }

// to returns a compact copy of the second endpoints in insertion order.
func (e *edgePairs) to() []int { return append([]int(nil), e.toIDs...) }
