package disjoint

// Set is a union-find forest keyed by element identity.
// The zero value is not usable; construct with New.
type Set[N comparable] struct {
	parent map[N]N
	rank   map[N]int
	sets   int
}

// New returns an empty Set.
// Complexity: O(1).
func New[N comparable]() *Set[N] {
	return &Set[N]{
		parent: make(map[N]N),
		rank:   make(map[N]int),
	}
}

// add registers x as its own singleton set if it is unknown.
func (s *Set[N]) add(x N) {
	if _, ok := s.parent[x]; ok {
		return
	}
	s.parent[x] = x
	s.rank[x] = 0
	s.sets++
}

// Find returns the representative of the component containing x.
// Unknown elements are registered as singletons first.
//
// Iterative, with path halving: every visited node is re-pointed to its
// grandparent, so long chains collapse without recursion.
// Complexity: O(α(n)) amortized.
func (s *Set[N]) Find(x N) N {
	s.add(x)
	for s.parent[x] != x {
		s.parent[x] = s.parent[s.parent[x]]
		x = s.parent[x]
	}

	return x
}

// Merge unions the components containing a and b.
// Merging two elements already in one component is a no-op.
// Complexity: O(α(n)) amortized.
func (s *Set[N]) Merge(a, b N) {
	ra := s.Find(a)
	rb := s.Find(b)
	if ra == rb {
		return
	}
	// Attach the shallower tree under the deeper one.
	switch {
	case s.rank[ra] < s.rank[rb]:
		s.parent[ra] = rb
	case s.rank[ra] > s.rank[rb]:
		s.parent[rb] = ra
	default:
		s.parent[rb] = ra
		s.rank[ra]++
	}
	s.sets--
}

// Test reports whether a and b belong to the same component.
// Complexity: O(α(n)) amortized.
func (s *Set[N]) Test(a, b N) bool {
	return s.Find(a) == s.Find(b)
}

// Len returns the number of elements registered so far.
func (s *Set[N]) Len() int {
	return len(s.parent)
}

// Count returns the number of disjoint components among registered elements.
func (s *Set[N]) Count() int {
	return s.sets
}

// Components groups registered elements by representative.
// Member order within a group is unspecified.
// Complexity: O(n·α(n)).
func (s *Set[N]) Components() map[N][]N {
	groups := make(map[N][]N, s.sets)
	for x := range s.parent {
		root := s.Find(x)
		groups[root] = append(groups[root], x)
	}

	return groups
}
