package iterator

import (
	"go.lepak.sg/ordtree/tree"
)

// InOrderReverse is an iterator object over a binary tree.
// Iteration starts from the *largest* element and runs to
// the *smallest* element.
// The usage should be pretty familiar:
//
//	i := iterator.NewInOrderReverse(arena, root)
//	for i.Next() {
//		id := i.Item()
//		... do stuff with id ...
//	}
type InOrderReverse[T any] struct {
	a        *tree.Arena[T]
	root, at tree.ID
}

// NewInOrderReverse returns a new InOrderReverse iterator over the subtree
// rooted at root.
// Note: This is meant to be called by other tree implementations.
func NewInOrderReverse[T any](a *tree.Arena[T], root tree.ID) *InOrderReverse[T] {
	return &InOrderReverse[T]{
		a:    a,
		root: root,
	}
}

// Next returns true if there is a next node to yield with Item.
func (i *InOrderReverse[T]) Next() bool {
	// Basically InOrder.Next but left and right are flipped.
	if i == nil {
		return false
	}

	if i.at == tree.Nil {
		if i.root == tree.Nil {
			return false
		}
		i.at = i.a.Rightmost(i.root)
		return true
	}

	if l := i.a.At(i.at).Left; l != tree.Nil {
		i.at = i.a.Rightmost(l)
		return true
	}

	for i.at != i.root {
		child := i.at
		i.at = i.a.At(child).Parent
		if i.a.At(i.at).Right == child {
			return true
		}
	}

	i.at = tree.Nil
	return false
}

// Item returns the current node of the iterator.
func (i *InOrderReverse[T]) Item() tree.ID {
	return i.at
}
