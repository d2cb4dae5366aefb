package iterator

import (
	"go.lepak.sg/ordtree/tree"
)

// InOrder is an iterator object over a binary tree.
// It follows Parent links instead of keeping a stack, so it needs
// O(1) extra space regardless of the tree's height.
// Iteration never climbs above the root it was created with,
// so it can walk any subtree.
type InOrder[T any] struct {
	a        *tree.Arena[T]
	root, at tree.ID
}

// NewInOrder returns a new InOrder iterator over the subtree rooted at root.
// Note: This is meant to be called by other tree implementations.
func NewInOrder[T any](a *tree.Arena[T], root tree.ID) *InOrder[T] {
	return &InOrder[T]{
		a:    a,
		root: root,
	}
}

// Next returns true if there is a next node to yield with Item.
// After Next returns false, calling it again restarts the iteration.
func (i *InOrder[T]) Next() bool {
	// https://www.cs.odu.edu/~zeil/cs361/latest/Public/treetraversal/index.html
	if i.at == tree.Nil {
		if i.root == tree.Nil {
			return false
		}
		i.at = i.a.Leftmost(i.root)
		return true
	}

	if r := i.a.At(i.at).Right; r != tree.Nil {
		i.at = i.a.Leftmost(r)
		return true
	}

	// climb until we come up from a left child
	for i.at != i.root {
		child := i.at
		i.at = i.a.At(child).Parent
		if i.a.At(i.at).Left == child {
			return true
		}
	}

	i.at = tree.Nil
	return false
}

// Item returns the current node of the iterator.
func (i *InOrder[T]) Item() tree.ID {
	return i.at
}
