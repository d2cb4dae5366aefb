package iterator

import (
	"go.lepak.sg/ordtree/tree"
)

// PostOrder yields each node after both of its subtrees (left, right, self).
//
// The stack always holds the path from root down to the current node.
// Finishing a node pops it; if it was its parent's left child and the
// parent has a right subtree, that subtree is descended next. Otherwise
// the parent itself is the next node.
type PostOrder[T any] struct {
	a       *tree.Arena[T]
	root    tree.ID
	stack   []tree.ID
	started bool
}

// NewPostOrder creates a new post-order iterator over the subtree rooted
// at root. heightHint sizes the stack and may be 0.
func NewPostOrder[T any](a *tree.Arena[T], root tree.ID, heightHint int) *PostOrder[T] {
	return &PostOrder[T]{
		a:     a,
		root:  root,
		stack: make([]tree.ID, 0, heightHint+1),
	}
}

// descend pushes the path to the first node in post-order of n's subtree,
// preferring left children and taking right ones only when there is no left.
func (i *PostOrder[T]) descend(n tree.ID) {
	for n != tree.Nil {
		i.stack = append(i.stack, n)
		s := i.a.At(n)
		if s.Left != tree.Nil {
			n = s.Left
		} else {
			n = s.Right
		}
	}
}

func (i *PostOrder[T]) Next() bool {
	if !i.started {
		i.started = true
		i.descend(i.root)
		return len(i.stack) > 0
	}

	if len(i.stack) == 0 {
		return false
	}

	done := i.stack[len(i.stack)-1]
	i.stack = i.stack[:len(i.stack)-1]

	if len(i.stack) > 0 {
		p := i.a.At(i.stack[len(i.stack)-1])
		if p.Left == done && p.Right != tree.Nil {
			i.descend(p.Right)
		}
	}

	return len(i.stack) > 0
}

func (i *PostOrder[T]) Item() tree.ID {
	return i.stack[len(i.stack)-1]
}
