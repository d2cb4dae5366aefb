package binary

import (
	"fmt"
	"iter"
	"strings"

	"go.lepak.sg/ordtree/tree"
	"go.lepak.sg/ordtree/tree/iterator"
)

// Traversal is the order in which a traversal visits nodes.
type Traversal int

const (
	InOrder   Traversal = iota // left, self, right
	PreOrder                   // self, left, right
	PostOrder                  // left, right, self
)

func (o Traversal) String() string {
	switch o {
	case InOrder:
		return "inorder"
	case PreOrder:
		return "preorder"
	case PostOrder:
		return "postorder"
	default:
		return "<invalid binary.Traversal>"
	}
}

// ParseTraversal accepts the String form of a Traversal, case-insensitively
// and with an optional dash ("in-order").
func ParseTraversal(s string) (Traversal, error) {
	switch strings.ReplaceAll(strings.ToLower(s), "-", "") {
	case "inorder", "in":
		return InOrder, nil
	case "preorder", "pre":
		return PreOrder, nil
	case "postorder", "post":
		return PostOrder, nil
	default:
		return 0, fmt.Errorf("unknown traversal order %q", s)
	}
}

func (t *Tree[T]) walker(o Traversal, root tree.ID) iterator.Iterator {
	switch o {
	case InOrder:
		return iterator.NewInOrder(&t.a, root)
	case PreOrder:
		return iterator.NewPreOrder(&t.a, root, 0)
	case PostOrder:
		return iterator.NewPostOrder(&t.a, root, 0)
	default:
		panic(fmt.Sprintf("unknown traversal order %d", o))
	}
}

// Traverse applies visit to every node of the tree exactly once, in order o.
// visit must not insert into or delete from the tree.
func (t *Tree[T]) Traverse(o Traversal, visit func(n Node[T])) {
	i := t.walker(o, t.root)
	for i.Next() {
		visit(t.node(i.Item()))
	}
}

// TraverseFrom is like Traverse, but only visits the subtree rooted at n.
// A zero n visits nothing.
func (t *Tree[T]) TraverseFrom(n Node[T], o Traversal, visit func(n Node[T])) error {
	if n.IsNil() {
		return nil
	}
	if err := t.owns(n); err != nil {
		return err
	}

	i := t.walker(o, n.id)
	for i.Next() {
		visit(t.node(i.Item()))
	}
	return nil
}

// All returns a sequence of the tree's nodes in order o.
// Nothing is walked until the sequence is ranged over, and breaking out
// of the range stops the walk. The tree must not be modified during
// iteration.
//
//	for n := range tr.All(binary.InOrder) {
//		... do stuff with n.Key() ...
//	}
func (t *Tree[T]) All(o Traversal) iter.Seq[Node[T]] {
	return func(yield func(Node[T]) bool) {
		i := t.walker(o, t.root)
		for i.Next() {
			if !yield(t.node(i.Item())) {
				return
			}
		}
	}
}

// Keys is like All but yields keys.
func (t *Tree[T]) Keys(o Traversal) iter.Seq[T] {
	return func(yield func(T) bool) {
		i := t.walker(o, t.root)
		for i.Next() {
			if !yield(t.a.At(i.Item()).Key) {
				return
			}
		}
	}
}

// Backward yields keys from largest to smallest.
func (t *Tree[T]) Backward() iter.Seq[T] {
	return func(yield func(T) bool) {
		i := iterator.NewInOrderReverse(&t.a, t.root)
		for i.Next() {
			if !yield(t.a.At(i.Item()).Key) {
				return
			}
		}
	}
}

// Height returns the number of nodes on the longest path from the root
// down to a leaf, and the height a perfectly balanced tree with the same
// number of keys would have. Both are 0 for an empty tree.
func (t *Tree[T]) Height() (actual, ideal int) {
	for n := t.Len(); n > 0; n >>= 1 {
		ideal++
	}

	// level by level, so a chain of n nodes needs no recursion
	level := make([]tree.ID, 0, 1)
	if t.root != tree.Nil {
		level = append(level, t.root)
	}
	var next []tree.ID

	for len(level) > 0 {
		actual++
		next = next[:0]
		for _, id := range level {
			s := t.a.At(id)
			if s.Left != tree.Nil {
				next = append(next, s.Left)
			}
			if s.Right != tree.Nil {
				next = append(next, s.Right)
			}
		}
		level, next = next, level
	}

	return
}

// Balanced reports whether the tree is as short as it could be
// for its number of keys.
func (t *Tree[T]) Balanced() bool {
	actual, ideal := t.Height()
	return actual == ideal
}
