// Package hybrid generates a spanning tree (or forest) of an arbitrary
// undirected graph by interleaving two randomized strategies under a single
// threshold probability:
//
//   - Tracer: a growing-tree walk that keeps extending the current thread from
//     its head to the first unvisited neighbour (long, winding corridors).
//   - KruskalPass: one forward pass over the input edges that accepts every
//     edge joining two different components (short, braided branches).
//
// What & Why
//
//   - Node identity is any comparable type; edges are any value exposing two
//     endpoints through the Edge contract.
//   - Edges carry no weight. "Kruskal" here is randomized acyclic selection in
//     input order: the producer shuffles the edges, the pass never sorts them.
//   - Typical use is maze generation over a hex grid (see package hexgrid),
//     where the threshold controls the texture of the result.
//
// Protocol
//
// Every call to (*Hybrid).Next performs, in this order:
//
//  1. Draw r = rng(). If r < threshold the tracer is skipped this round.
//  2. Otherwise ask the tracer for an edge. On success the endpoints are merged
//     into the shared disjoint.Set and the edge is returned.
//  3. Otherwise ask the Kruskal pass. On success both endpoints are marked
//     visited, the tracer head moves to one of them (second draw, < 0.5 picks A),
//     and the edge is returned.
//  4. Otherwise the generator is exhausted, permanently.
//
// Invariants
//
//   - The emitted edges always form a forest: the tracer never steps onto a
//     visited node and the pass never joins two nodes of one component.
//   - threshold = 1 reproduces the plain Kruskal pass; threshold = 0 walks
//     with the tracer and falls back to the pass only at dead ends.
//   - For a fixed edge slice, threshold and replayed rng sequence the output is
//     identical between runs.
//
// Errors
//
//   - ErrThreshold: threshold is NaN or outside [0,1].
//   - ErrNilRNG:    the random source is nil.
//   - ErrSelfLoop:  an edge has identical endpoints (validation enabled).
//
// Exhaustion, dead ends and rejected cycle edges are not errors: they surface as
// a false second return value.
//
// Complexity:
//
//   - Construction: O(E) time and memory for the edge index.
//   - Full drain: O(E·α(V)) for the pass plus O(Σdeg) = O(E) for tracer scans
//     amortized over a run.
//
// A Hybrid owns unsynchronized mutable state and must stay confined to one
// goroutine for its lifetime.
package hybrid
