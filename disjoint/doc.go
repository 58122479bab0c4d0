// Package disjoint provides a generic Disjoint-Set (union-find) over any
// comparable element type.
//
// What:
//
//   - Set[N] partitions elements into disjoint components.
//   - Merge(a, b) unions two components (idempotent).
//   - Test(a, b) reports whether a and b share a component.
//   - Elements are registered lazily: an element never seen before is a singleton.
//
// Why:
//
//   - Kruskal-style edge selection needs a same-component test to reject
//     cycle-forming edges.
//   - Spanning-forest generators that mix strategies (see package hybrid) share
//     one Set so every strategy sees the components the others built.
//
// Complexity:
//
//   - Find, Merge, Test: O(α(n)) amortized (union by rank + path compression).
//   - Memory: O(n) for parent and rank maps.
//
// A Set is not safe for concurrent use.
package disjoint
