// Package hybrid defines the Edge contract, sentinel errors, options and
// statistics shared by the tracer, the Kruskal pass and the orchestrator.
package hybrid

import (
	"errors"
)

// ErrThreshold indicates a threshold that is NaN or outside [0,1].
var ErrThreshold = errors.New("hybrid: threshold must be within [0,1]")

// ErrNilRNG indicates that no random source was supplied.
var ErrNilRNG = errors.New("hybrid: random source is nil")

// ErrSelfLoop indicates an input edge whose endpoints are identical.
var ErrSelfLoop = errors.New("hybrid: edge endpoints must differ")

// Edge is the capability contract for anything with two node endpoints.
// Implementations are read-only values; A() and B() must be distinct.
type Edge[N comparable] interface {
	A() N
	B() N
}

// Pair is a plain Edge value. Parallel Pairs between the same nodes are
// distinct edges.
type Pair[N comparable] struct {
	From N
	To   N
}

// NewPair returns the edge From=a, To=b.
func NewPair[N comparable](a, b N) Pair[N] {
	return Pair[N]{From: a, To: b}
}

// A returns the first endpoint.
func (p Pair[N]) A() N { return p.From }

// B returns the second endpoint.
func (p Pair[N]) B() N { return p.To }

// Stats counts what a Hybrid has done so far.
type Stats struct {
	// Tracer is the number of edges emitted by the tracer walk.
	Tracer int
	// Kruskal is the number of edges emitted by the Kruskal pass.
	Kruskal int
	// Rejected is the number of input edges discarded as cycle-forming.
	Rejected int
	// Exhausted is set once Next has returned false.
	Exhausted bool
}

// Emitted returns the total number of edges emitted.
func (s Stats) Emitted() int { return s.Tracer + s.Kruskal }

// Options configures construction-time behaviour of a Hybrid.
//
// Fields:
//
//	Validate bool: reject self-loop edges with ErrSelfLoop before generation.
type Options struct {
	// Validate enables the self-loop scan over the input edges.
	Validate bool
}

// Option configures Options.
type Option func(*Options)

// WithValidation toggles the construction-time edge scan.
// Disable it only when the producer already guarantees distinct endpoints.
func WithValidation(enabled bool) Option {
	return func(o *Options) {
		o.Validate = enabled
	}
}

// DefaultOptions returns Options with validation enabled.
func DefaultOptions() Options {
	return Options{
		Validate: true,
	}
}
