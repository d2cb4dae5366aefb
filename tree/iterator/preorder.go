package iterator

import (
	"go.lepak.sg/ordtree/tree"
)

// PreOrder yields each node before either of its subtrees (self, left, right).
type PreOrder[T any] struct {
	a       *tree.Arena[T]
	root    tree.ID
	at      tree.ID
	stack   []tree.ID
	started bool
}

// NewPreOrder creates a new pre-order iterator over the subtree rooted
// at root. heightHint sizes the stack and may be 0.
func NewPreOrder[T any](a *tree.Arena[T], root tree.ID, heightHint int) *PreOrder[T] {
	return &PreOrder[T]{
		a:     a,
		root:  root,
		stack: make([]tree.ID, 0, heightHint+1),
	}
}

func (i *PreOrder[T]) Next() bool {
	if !i.started {
		i.started = true
		if i.root != tree.Nil {
			i.stack = append(i.stack, i.root)
		}
	}

	if len(i.stack) == 0 {
		i.at = tree.Nil
		return false
	}

	i.at = i.stack[len(i.stack)-1]
	i.stack = i.stack[:len(i.stack)-1]

	// right first, so left comes off the stack first
	s := i.a.At(i.at)
	if s.Right != tree.Nil {
		i.stack = append(i.stack, s.Right)
	}
	if s.Left != tree.Nil {
		i.stack = append(i.stack, s.Left)
	}

	return true
}

func (i *PreOrder[T]) Item() tree.ID {
	return i.at
}
