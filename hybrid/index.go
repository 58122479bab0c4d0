package hybrid

// EdgeIndex maps every node to the edges incident to it, in the order those
// edges appear in the input. Both endpoints of every edge are indexed.
// It is immutable once built.
type EdgeIndex[N comparable, E Edge[N]] struct {
	incident map[N][]E
}

// NewEdgeIndex builds the index in one pass over edges.
// A node's list preserves first-seen order, which decides the neighbour a
// tracer tries first.
// Complexity: O(E) time and memory.
func NewEdgeIndex[N comparable, E Edge[N]](edges []E) *EdgeIndex[N, E] {
	incident := make(map[N][]E)
	for _, e := range edges {
		a, b := e.A(), e.B()
		incident[a] = append(incident[a], e)
		incident[b] = append(incident[b], e)
	}

	return &EdgeIndex[N, E]{incident: incident}
}

// Edges returns the edges incident to n, or nil when n has none.
// The returned slice must not be modified.
// Complexity: O(1).
func (ix *EdgeIndex[N, E]) Edges(n N) []E {
	return ix.incident[n]
}

// Degree returns the number of edges incident to n.
func (ix *EdgeIndex[N, E]) Degree(n N) int {
	return len(ix.incident[n])
}

// Len returns the number of indexed nodes.
func (ix *EdgeIndex[N, E]) Len() int {
	return len(ix.incident)
}
