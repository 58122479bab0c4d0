package disjoint_test

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/katalvlaran/hexogen/disjoint"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestSet_Singletons verifies that unknown elements behave as singletons.
func TestSet_Singletons(t *testing.T) {
	s := disjoint.New[string]()

	assert.Equal(t, 0, s.Len())
	assert.Equal(t, "A", s.Find("A"))
	assert.False(t, s.Test("A", "B"))
	assert.Equal(t, 2, s.Len())
	assert.Equal(t, 2, s.Count())
}

// TestSet_MergeIdempotent checks that repeated merges do not change the partition.
func TestSet_MergeIdempotent(t *testing.T) {
	s := disjoint.New[int]()
	s.Merge(1, 2)
	s.Merge(2, 3)
	require.Equal(t, 1, s.Count())

	s.Merge(1, 3)
	s.Merge(3, 1)
	assert.Equal(t, 1, s.Count())
	assert.True(t, s.Test(1, 3))
	assert.True(t, s.Test(3, 2))
	assert.Equal(t, 3, s.Len())
}

// TestSet_Components groups elements by representative.
func TestSet_Components(t *testing.T) {
	s := disjoint.New[string]()
	s.Merge("A", "B")
	s.Merge("C", "D")
	s.Find("E")

	comps := s.Components()
	require.Len(t, comps, 3)

	sizes := map[int]int{}
	for _, members := range comps {
		sizes[len(members)]++
	}
	assert.Equal(t, map[int]int{2: 2, 1: 1}, sizes)
}

// TestSet_LongChain merges a long chain and checks Find does not recurse.
func TestSet_LongChain(t *testing.T) {
	const n = 100000
	s := disjoint.New[int]()
	for i := 1; i < n; i++ {
		s.Merge(i-1, i)
	}
	assert.Equal(t, 1, s.Count())
	assert.True(t, s.Test(0, n-1))
}

// TestSet_AgainstNaive compares the set against a naive label-rewriting partition.
func TestSet_AgainstNaive(t *testing.T) {
	r := rand.New(rand.NewSource(42))
	const n = 64
	label := make([]int, n)
	for i := range label {
		label[i] = i
	}
	s := disjoint.New[int]()
	for i := 0; i < n; i++ {
		s.Find(i)
	}

	for step := 0; step < 200; step++ {
		a, b := r.Intn(n), r.Intn(n)
		s.Merge(a, b)
		from, to := label[b], label[a]
		for i := range label {
			if label[i] == from {
				label[i] = to
			}
		}
		x, y := r.Intn(n), r.Intn(n)
		require.Equal(t, label[x] == label[y], s.Test(x, y), fmt.Sprintf("step %d: %d~%d", step, x, y))
	}
}
