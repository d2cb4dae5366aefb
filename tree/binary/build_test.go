package binary

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/slices"
)

func TestBuildRandom(t *testing.T) {
	seedrd := rand.New(rand.NewSource(0x123456789abcdef0))

	for _, size := range []int{0, 1, 2, 10, 1000} {
		seed := int64(seedrd.Uint64())
		t.Run(fmt.Sprintf("size=%d", size), func(t *testing.T) {
			tr := BuildRandom(size, seed)
			require.NoError(t, tr.Validate())
			assert.Equal(t, size, tr.Len())

			keys := inOrderKeys(tr)
			assert.True(t, slices.IsSorted(keys))
			for i, k := range keys {
				assert.Equal(t, i, k)
			}

			// same seed, same tree
			assert.Equal(t, tr.String(), BuildRandom(size, seed).String())
		})
	}
}

func TestBuildSorted(t *testing.T) {
	tr := BuildSorted(5)
	require.NoError(t, tr.Validate())
	assert.Equal(t, []int{0, 1, 2, 3, 4}, preOrderKeys(tr))

	actual, ideal := tr.Height()
	assert.Equal(t, 5, actual)
	assert.Equal(t, 3, ideal)
}

func TestBuildRandomBalanced(t *testing.T) {
	tr, attempts := BuildRandomBalanced(7, 42, 0)
	require.NoError(t, tr.Validate())
	assert.True(t, tr.Balanced())
	assert.Equal(t, 7, tr.Len())
	assert.GreaterOrEqual(t, attempts, 1)

	// a bound that runs out still returns a tree
	tr, attempts = BuildRandomBalanced(100, 42, 3)
	require.NotNil(t, tr)
	require.NoError(t, tr.Validate())
	assert.Equal(t, 100, tr.Len())
	assert.LessOrEqual(t, attempts, 3)
}

func TestFromKeys_Strings(t *testing.T) {
	tr := FromKeys([]string{"m", "c", "x", "a", "e"})
	require.NoError(t, tr.Validate())
	assert.Equal(t, []string{"a", "c", "e", "m", "x"}, inOrderKeys(tr))
	assert.Equal(t, []string{"m", "c", "a", "e", "x"}, preOrderKeys(tr))
}

// checkAgainst compares tr with ref, the sorted multiset of keys it
// should hold, and checks that Successor and Predecessor agree with
// the in-order sequence of nodes.
func checkAgainst(t *testing.T, tr *Tree[int], ref []int) {
	t.Helper()

	require.NoError(t, tr.Validate())
	require.Equal(t, len(ref), tr.Len())

	var nodes []Node[int]
	for n := range tr.All(InOrder) {
		nodes = append(nodes, n)
	}
	require.Len(t, nodes, len(ref))

	for i, n := range nodes {
		require.Equal(t, ref[i], n.Key())

		s, ok, err := tr.Successor(n)
		require.NoError(t, err)
		if i == len(nodes)-1 {
			require.False(t, ok)
		} else {
			require.True(t, ok)
			require.True(t, s == nodes[i+1], "successor of node %d", i)
		}

		p, ok, err := tr.Predecessor(n)
		require.NoError(t, err)
		if i == 0 {
			require.False(t, ok)
		} else {
			require.True(t, ok)
			require.True(t, p == nodes[i-1], "predecessor of node %d", i)
		}
	}

	if len(ref) > 0 {
		min, err := tr.Minimum()
		require.NoError(t, err)
		require.True(t, min == nodes[0])
		max, err := tr.Maximum()
		require.NoError(t, err)
		require.True(t, max == nodes[len(nodes)-1])
	}
}

func TestRandomOps(t *testing.T) {
	seedrd := rand.New(rand.NewSource(0x0ddba11))
	const rounds = 20
	const ops = 300
	const keyRange = 40 // small enough to get plenty of duplicates

	for i := 0; i < rounds; i++ {
		seed := int64(seedrd.Uint64())
		t.Run(fmt.Sprintf("round=%d", i), func(t *testing.T) {
			rd := rand.New(rand.NewSource(seed))
			tr := New[int]()
			var ref []int

			for j := 0; j < ops; j++ {
				k := rd.Intn(keyRange)

				if rd.Intn(10) < 6 {
					n := tr.Insert(k)
					require.Equal(t, k, n.Key())
					ref = append(ref, k)
					slices.Sort(ref)
				} else {
					idx := slices.Index(ref, k)
					require.Equal(t, idx >= 0, tr.Delete(k), "delete %d", k)
					if idx >= 0 {
						ref = slices.Delete(ref, idx, idx+1)
					}
				}

				checkAgainst(t, tr, ref)
			}

			// empty it out
			for _, k := range slices.Clone(ref) {
				require.True(t, tr.Delete(k))
			}
			for k := 0; k < keyRange; k++ {
				assert.False(t, tr.Contains(k))
			}
			checkAgainst(t, tr, nil)
		})
	}
}

func TestRandomDeleteNode(t *testing.T) {
	rd := rand.New(rand.NewSource(7))
	tr := New[int]()

	var nodes []Node[int]
	for i := 0; i < 500; i++ {
		nodes = append(nodes, tr.Insert(rd.Intn(50)))
	}

	rd.Shuffle(len(nodes), func(i, j int) {
		nodes[i], nodes[j] = nodes[j], nodes[i]
	})

	for i, n := range nodes {
		require.True(t, n.Valid())
		require.NoError(t, tr.DeleteNode(n))
		require.False(t, n.Valid())
		require.ErrorIs(t, tr.DeleteNode(n), ErrForeignNode)

		// every other handle still refers to its own node
		for _, m := range nodes[i+1:] {
			require.True(t, m.Valid())
		}
		if i%50 == 0 {
			require.NoError(t, tr.Validate())
		}
	}

	assert.Equal(t, 0, tr.Len())
	assert.True(t, tr.Root().IsNil())
}

// Inserting the pre-order sequence into an empty tree rebuilds the same
// shape, duplicates included.
func TestRebuildFromPreOrder(t *testing.T) {
	seedrd := rand.New(rand.NewSource(0x123456789abcdef0))
	const rounds = 50
	const size = 100

	for i := 0; i < rounds; i++ {
		seed := int64(seedrd.Uint64())
		t.Run(fmt.Sprintf("round=%d", i), func(t *testing.T) {
			rd := rand.New(rand.NewSource(seed))

			tr := New[int]()
			for j := 0; j < size; j++ {
				tr.Insert(rd.Intn(size / 2))
			}
			for j := 0; j < size/4; j++ {
				tr.Delete(rd.Intn(size / 2))
			}
			require.NoError(t, tr.Validate())

			pre := preOrderKeys(tr)
			origPre := slices.Clone(pre)

			rebuilt := FromKeys(pre)
			assert.Equal(t, tr.String(), rebuilt.String(), "different tree was recreated")
			assert.Equal(t, origPre, pre, "preOrder was mutated")
			assert.True(t, slices.Equal(inOrderKeys(tr), inOrderKeys(rebuilt)))
		})
	}
}

var trForBench *Tree[int]

func BenchmarkInsert(b *testing.B) {
	sizes := []int{10, 100, 10000}

	for _, size := range sizes {
		keys := rand.New(rand.NewSource(1)).Perm(size)

		b.Run(fmt.Sprintf("random/size=%d", size), func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				trForBench = FromKeys(keys)
			}
		})
	}

	b.Run("sorted/size=1000", func(b *testing.B) {
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			trForBench = BuildSorted(1000)
		}
	})
}

func BenchmarkSearch(b *testing.B) {
	const size = 10000
	tr := BuildRandom(size, 1)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if !tr.Contains(i % size) {
			b.Fatal("missing key")
		}
	}
}

func BenchmarkDeleteInsert(b *testing.B) {
	const size = 10000
	tr := BuildRandom(size, 1)
	rd := rand.New(rand.NewSource(2))

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		k := rd.Intn(size)
		tr.Delete(k)
		tr.Insert(k)
	}
}
