package hybrid

import "fmt"

// Tracer grows a single thread through the graph: from its head it steps to
// the first incident neighbour that has not been visited yet.
//
// Visit and Reset are the only ways head changes.
type Tracer[N comparable, E Edge[N]] struct {
	index   *EdgeIndex[N, E]
	visited map[N]struct{}
	head    N
	hasHead bool
}

// NewTracer returns a Tracer with no head and an empty visited set.
func NewTracer[N comparable, E Edge[N]](index *EdgeIndex[N, E]) *Tracer[N, E] {
	return &Tracer[N, E]{
		index:   index,
		visited: make(map[N]struct{}),
	}
}

// Visit adds n to the visited set and reports whether it was new.
// When resetHead is true and n was new, n becomes the head.
// Complexity: O(1).
func (t *Tracer[N, E]) Visit(n N, resetHead bool) bool {
	if _, seen := t.visited[n]; seen {
		return false
	}
	t.visited[n] = struct{}{}
	if resetHead {
		t.head, t.hasHead = n, true
	}

	return true
}

// Next extends the walk by one edge.
//
// Steps:
//  1. No head → nothing.
//  2. Scan the head's incident edges in index order.
//  3. Return the first edge whose opposite endpoint is newly visited; that
//     endpoint becomes the head.
//  4. No such edge → nothing. The head stays where it is, so later calls keep
//     failing until Reset moves it.
//
// Complexity: O(deg(head)).
func (t *Tracer[N, E]) Next() (E, bool) {
	var zero E
	if !t.hasHead {
		return zero, false
	}
	current := t.head
	for _, e := range t.index.Edges(current) {
		if t.Visit(opposite(current, e), true) {
			return e, true
		}
	}

	return zero, false
}

// Reset moves the head to n unconditionally.
func (t *Tracer[N, E]) Reset(n N) {
	t.head, t.hasHead = n, true
}

// Head returns the current head, if any.
func (t *Tracer[N, E]) Head() (N, bool) {
	return t.head, t.hasHead
}

// Visited reports whether n has been visited.
func (t *Tracer[N, E]) Visited(n N) bool {
	_, ok := t.visited[n]
	return ok
}

// VisitedCount returns the size of the visited set.
func (t *Tracer[N, E]) VisitedCount() int {
	return len(t.visited)
}

// opposite returns the endpoint of e that is not n.
// The index only lists incident edges, so a miss means the index is corrupt.
func opposite[N comparable, E Edge[N]](n N, e E) N {
	switch n {
	case e.A():
		return e.B()
	case e.B():
		return e.A()
	}
	panic(fmt.Sprintf("hybrid: edge %v-%v is not incident to %v", e.A(), e.B(), n))
}
