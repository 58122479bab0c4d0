package hybrid

import (
	"github.com/katalvlaran/hexogen/disjoint"
)

// cursor is a forward-only view of the input edges. It is never rewound.
type cursor[E any] struct {
	items []E
	pos   int
}

func (c *cursor[E]) next() (E, bool) {
	var zero E
	if c.pos >= len(c.items) {
		return zero, false
	}
	e := c.items[c.pos]
	c.pos++

	return e, true
}

func (c *cursor[E]) remaining() int {
	return len(c.items) - c.pos
}

// KruskalPass consumes the input edges once, in order, and emits every edge
// that joins two different components of its disjoint.Set.
type KruskalPass[N comparable, E Edge[N]] struct {
	edges    cursor[E]
	sets     *disjoint.Set[N]
	rejected int
}

// NewKruskalPass returns a pass over edges that records components in sets.
// sets is shared by reference; callers may merge into it through Merge.
func NewKruskalPass[N comparable, E Edge[N]](edges []E, sets *disjoint.Set[N]) *KruskalPass[N, E] {
	return &KruskalPass[N, E]{
		edges: cursor[E]{items: edges},
		sets:  sets,
	}
}

// Merge unions the components of a and b. Used to report edges chosen by
// another strategy so later cycle checks account for them.
// Complexity: O(α(V)) amortized.
func (k *KruskalPass[N, E]) Merge(a, b N) {
	k.sets.Merge(a, b)
}

// Next returns the next input edge that does not close a cycle.
//
// Steps:
//  1. Advance the cursor; exhausted → nothing.
//  2. Endpoints already connected → discard the edge and go to 1.
//  3. Otherwise merge the endpoints and return the edge.
//
// Complexity: O(k·α(V)) where k is the number of edges consumed by this call.
func (k *KruskalPass[N, E]) Next() (E, bool) {
	for {
		e, ok := k.edges.next()
		if !ok {
			return e, false
		}
		a, b := e.A(), e.B()
		if k.sets.Test(a, b) {
			k.rejected++
			continue
		}
		k.sets.Merge(a, b)

		return e, true
	}
}

// Rejected returns how many edges were discarded as cycle-forming.
func (k *KruskalPass[N, E]) Rejected() int {
	return k.rejected
}

// Remaining returns how many input edges have not been consumed yet.
func (k *KruskalPass[N, E]) Remaining() int {
	return k.edges.remaining()
}
