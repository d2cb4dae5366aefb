// Package tree holds the pieces shared by the tree implementations:
// key ordering and an index-linked node store.
package tree

import (
	"golang.org/x/exp/constraints"
)

// ID names a node slot in an Arena. The zero ID is Nil and never holds a node.
type ID uint32

// Nil is the absent node. Left, Right and Parent use it for "no link".
const Nil ID = 0

// Slot is one node of a tree stored in an Arena.
// Its relations are IDs into the same Arena.
type Slot[T any] struct {
	Key                 T
	Left, Right, Parent ID

	gen uint32
}

// IsLeaf reports whether the slot has no children.
func (s *Slot[T]) IsLeaf() bool {
	return s.Left == Nil && s.Right == Nil
}

type Order int

const (
	Less Order = iota - 1
	Equal
	Greater
)

func (o Order) String() string {
	switch o {
	case Less:
		return "Less"
	case Equal:
		return "Equal"
	case Greater:
		return "Greater"
	default:
		return "<invalid tree.Order>"
	}
}

// Compare orders two keys with the built-in operators.
func Compare[T constraints.Ordered](l, r T) Order {
	if l < r {
		return Less
	} else if l > r {
		return Greater
	} else {
		return Equal
	}
}

// OrderOf maps the result of a cmp-style function (negative, zero, positive)
// to an Order.
func OrderOf(c int) Order {
	switch {
	case c < 0:
		return Less
	case c > 0:
		return Greater
	default:
		return Equal
	}
}

// Floating point NaN is not totally ordered: Compare(NaN, x) is Equal for
// every x, which would make NaN keys "find" anything. Callers that store
// floats should keep NaN out of the tree.
