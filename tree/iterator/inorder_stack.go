package iterator

import (
	"go.lepak.sg/ordtree/tree"
)

// InOrderStack is an iterator object over a binary tree.
// It is functionally equivalent to InOrder, but this does
// not rely on the node parent links, instead keeping
// an internal stack of previous nodes. That makes it the
// right walker for checking whether the parent links are sound.
type InOrderStack[T any] struct {
	a       *tree.Arena[T]
	root    tree.ID
	stack   []tree.ID
	started bool
}

// Recursive in order iteration looks like this:
//	func visit(n *Node, f func(*Node)) {
//		if n == nil {
//			return
//		}
//		visit(n.Left, f)	--(1)
//		f(n)
//		visit(n.Right, f)	--(2)
//	}
// When Next is called, everything up to (1) can be run,
// all the way down to the leftmost child node. This adds
// visit stack frames and we can replicate this in i.stack.
// The associated call to Item is equivalent to f(n).
// The next call to Next continues from (2): pop the frame
// and push the left spine of its right child.

// NewInOrderStack creates a new in-order iterator.
// If the tree's height is known, pass it as heightHint.
// Otherwise it's safe to leave it as 0.
func NewInOrderStack[T any](a *tree.Arena[T], root tree.ID, heightHint int) *InOrderStack[T] {
	return &InOrderStack[T]{
		a:     a,
		root:  root,
		stack: make([]tree.ID, 0, heightHint+1),
	}
}

func (i *InOrderStack[T]) pushLeft(n tree.ID) {
	for n != tree.Nil {
		i.stack = append(i.stack, n)
		n = i.a.At(n).Left
	}
}

func (i *InOrderStack[T]) Next() bool {
	if !i.started {
		i.started = true
		i.pushLeft(i.root)
		return len(i.stack) > 0
	}

	if len(i.stack) == 0 {
		return false
	}

	pop := i.stack[len(i.stack)-1]
	i.stack = i.stack[:len(i.stack)-1]
	i.pushLeft(i.a.At(pop).Right)

	return len(i.stack) > 0
}

func (i *InOrderStack[T]) Item() tree.ID {
	return i.stack[len(i.stack)-1]
}
