package hybrid

import (
	"fmt"
	"iter"
	"math"
	"slices"

	"github.com/katalvlaran/hexogen/disjoint"
)

// Hybrid interleaves a Tracer and a KruskalPass under a threshold probability
// and emits one spanning-forest edge per Next call.
//
// The sequence is lazy, finite and not restartable.
type Hybrid[N comparable, E Edge[N]] struct {
	rng       func() float64
	threshold float64
	index     *EdgeIndex[N, E]
	tracer    *Tracer[N, E]
	kruskal   *KruskalPass[N, E]
	sets      *disjoint.Set[N]
	stats     Stats
}

// New builds a Hybrid over edges.
//
// Error Conditions:
//   - ErrThreshold : threshold is NaN or outside [0,1].
//   - ErrNilRNG    : rng is nil.
//   - ErrSelfLoop  : some edge has A() == B() (only with validation enabled).
//
// rng must return values in [0,1); it is called once or twice per Next and
// never otherwise, so replaying the same draws replays the same output.
// The edges slice is read, never modified; callers must not modify it while
// the Hybrid is in use.
//
// Complexity: O(E) time and memory.
func New[N comparable, E Edge[N]](edges []E, threshold float64, rng func() float64, opts ...Option) (*Hybrid[N, E], error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	if math.IsNaN(threshold) || threshold < 0 || threshold > 1 {
		return nil, fmt.Errorf("%w: got %v", ErrThreshold, threshold)
	}
	if rng == nil {
		return nil, ErrNilRNG
	}
	if cfg.Validate {
		for i, e := range edges {
			if e.A() == e.B() {
				return nil, fmt.Errorf("%w: edge #%d at %v", ErrSelfLoop, i, e.A())
			}
		}
	}

	index := NewEdgeIndex[N, E](edges)
	sets := disjoint.New[N]()

	return &Hybrid[N, E]{
		rng:       rng,
		threshold: threshold,
		index:     index,
		tracer:    NewTracer(index),
		kruskal:   NewKruskalPass[N, E](edges, sets),
		sets:      sets,
	}, nil
}

// NewFromSeq drains seq once and builds a Hybrid over the collected edges.
// The index needs the whole input up front, so a lazy producer is
// materialized here rather than iterated twice.
func NewFromSeq[N comparable, E Edge[N]](seq iter.Seq[E], threshold float64, rng func() float64, opts ...Option) (*Hybrid[N, E], error) {
	return New[N, E](slices.Collect(seq), threshold, rng, opts...)
}

// Next returns the next spanning-forest edge, or false once exhausted.
// After the first false every later call returns false without consuming
// random draws.
func (h *Hybrid[N, E]) Next() (E, bool) {
	var zero E
	if h.stats.Exhausted {
		return zero, false
	}
	if e, ok := h.nextTracer(); ok {
		h.stats.Tracer++
		return e, true
	}
	if e, ok := h.nextKruskal(); ok {
		h.stats.Kruskal++
		return e, true
	}
	h.stats.Exhausted = true

	return zero, false
}

// nextTracer draws once and, unless the draw falls under the threshold,
// extends the walk. Accepted edges are merged into the shared sets so the
// Kruskal pass never re-joins what the walk connected.
func (h *Hybrid[N, E]) nextTracer() (E, bool) {
	var zero E
	if h.rng() < h.threshold {
		return zero, false
	}
	e, ok := h.tracer.Next()
	if !ok {
		return zero, false
	}
	h.kruskal.Merge(e.A(), e.B())

	return e, true
}

// nextKruskal takes the next acyclic input edge, marks both endpoints as
// visited and restarts the walk from one of them at random.
func (h *Hybrid[N, E]) nextKruskal() (E, bool) {
	e, ok := h.kruskal.Next()
	if !ok {
		return e, false
	}
	a, b := e.A(), e.B()
	h.tracer.Visit(a, false)
	h.tracer.Visit(b, false)
	if h.rng() < 0.5 {
		h.tracer.Reset(a)
	} else {
		h.tracer.Reset(b)
	}

	return e, true
}

// All returns an iterator over the remaining output.
// Breaking out of the loop leaves the Hybrid usable; the next Next or All
// continues where the loop stopped.
func (h *Hybrid[N, E]) All() iter.Seq[E] {
	return func(yield func(E) bool) {
		for {
			e, ok := h.Next()
			if !ok || !yield(e) {
				return
			}
		}
	}
}

// Collect drains the Hybrid and returns every remaining edge in order.
func (h *Hybrid[N, E]) Collect() []E {
	return slices.Collect(h.All())
}

// Stats returns a snapshot of the counters.
func (h *Hybrid[N, E]) Stats() Stats {
	s := h.stats
	s.Rejected = h.kruskal.Rejected()
	return s
}

// Sets exposes the shared disjoint.Set for inspection.
// Mutating it breaks the forest guarantee.
func (h *Hybrid[N, E]) Sets() *disjoint.Set[N] {
	return h.sets
}

// Index returns the edge index built at construction.
func (h *Hybrid[N, E]) Index() *EdgeIndex[N, E] {
	return h.index
}

// Threshold returns the configured threshold.
func (h *Hybrid[N, E]) Threshold() float64 {
	return h.threshold
}
