// Package iterator provides tree iterators for use
// by tree implementations.
//
// Every iterator walks a subtree of a tree.Arena without recursion,
// so a degenerate tree (a chain of n nodes) costs at most O(n) heap
// for the stack based iterators and O(1) for the parent-walk ones,
// never O(n) call stack.
package iterator

import "go.lepak.sg/ordtree/tree"

// Iterator describes the common interface for all
// iterators in this package.
// Next must always be called before Item, even for
// the first round of iteration.
// If Next returns false, Item must not be called.
// Item may be called any number of times if the
// last call to Next returned true.
// The iterator may be abandoned at any time.
//
// The usual usage of an Iterator is like this:
//
//	i := iterator.NewInOrder(arena, root)
//	for i.Next() {
//		id := i.Item()
//		... do stuff with id, or break ...
//	}
//
// The result of mutating the tree while iterating over it is undefined.
type Iterator interface {
	Next() bool
	Item() tree.ID
}

var (
	_ Iterator = (*InOrder[int])(nil)
	_ Iterator = (*InOrderReverse[int])(nil)
	_ Iterator = (*InOrderStack[int])(nil)
	_ Iterator = (*PreOrder[int])(nil)
	_ Iterator = (*PostOrder[int])(nil)
)
