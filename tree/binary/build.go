package binary

import (
	"math/rand"

	"golang.org/x/exp/constraints"
)

// BuildRandom builds a binary tree with num nodes.
// Node keys are in the range [0, num) and are inserted in a random order.
// The seed for the random insert order is a parameter,
// which ensures repeatable results.
func BuildRandom(num int, seed int64, opts ...Option) *Tree[int] {
	rd := rand.New(rand.NewSource(seed))

	return FromKeys(rd.Perm(num), opts...)
}

// BuildSorted builds a binary tree by inserting 0, 1, ..., num-1 in order.
// The result is the worst case for an unbalanced tree: a chain of
// right children num nodes deep.
func BuildSorted(num int, opts ...Option) *Tree[int] {
	tr := New[int](opts...)
	for k := 0; k < num; k++ {
		tr.Insert(k)
	}
	return tr
}

// BuildRandomBalanced builds a balanced binary tree with num nodes.
// Node keys are in the range [0, num) and are inserted in a random order.
// Along the created binary tree, the number of attempts required
// to create the tree is also returned.
// maxAttempts bounds the search; if it runs out, the last tree built
// is returned as it is. maxAttempts <= 0 means no bound.
func BuildRandomBalanced(num int, seed int64, maxAttempts int) (*Tree[int], int) {
	rd := rand.New(rand.NewSource(seed))

	nodes := make([]int, num)
	for i := 0; i < num; i++ {
		nodes[i] = i
	}

	var tr *Tree[int]
	attempts := 0

	for tr == nil || !tr.Balanced() {
		if maxAttempts > 0 && attempts >= maxAttempts {
			break
		}
		attempts++

		rd.Shuffle(num, func(i, j int) {
			nodes[i], nodes[j] = nodes[j], nodes[i]
		})

		tr = FromKeys(nodes)
	}

	return tr, attempts
}

// FromKeys builds a tree by inserting keys in the order given.
func FromKeys[S ~[]T, T constraints.Ordered](keys S, opts ...Option) *Tree[T] {
	tr := New[T](opts...)
	for _, k := range keys {
		tr.Insert(k)
	}
	return tr
}
