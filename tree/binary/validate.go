package binary

import (
	"fmt"

	"go.lepak.sg/ordtree/tree"
	"go.lepak.sg/ordtree/tree/iterator"
)

// Validate checks the tree invariants and returns an error wrapping
// ErrCorrupt describing the first violation found.
// It walks the child links only, so broken parent links are reported
// rather than followed. A tree built only through Tree methods always
// validates; this exists for tests and for checking tools.
func (t *Tree[T]) Validate() error {
	if t.root == tree.Nil {
		if t.a.Len() != 0 {
			return fmt.Errorf("%w: no root but %d nodes allocated", ErrCorrupt, t.a.Len())
		}
		return nil
	}

	if p := t.a.At(t.root).Parent; p != tree.Nil {
		return fmt.Errorf("%w: root %v has parent %v",
			ErrCorrupt, t.a.At(t.root).Key, t.a.At(p).Key)
	}

	var prev tree.ID
	seen := 0

	i := iterator.NewInOrderStack(&t.a, t.root, 0)
	for i.Next() {
		id := i.Item()
		s := t.a.At(id)

		seen++
		if seen > t.a.Len() {
			return fmt.Errorf("%w: %v is reachable twice", ErrCorrupt, s.Key)
		}

		for _, c := range [...]tree.ID{s.Left, s.Right} {
			if c != tree.Nil && t.a.At(c).Parent != id {
				return fmt.Errorf("%w: child %v of %v does not point back to it",
					ErrCorrupt, t.a.At(c).Key, s.Key)
			}
		}

		if prev != tree.Nil {
			pk := t.a.At(prev).Key
			// the in-order predecessor is the maximum of the left subtree,
			// if there is one, and that has to be strictly less
			switch c := t.cmp(pk, s.Key); {
			case c == tree.Greater:
				return fmt.Errorf("%w: %v comes before %v in order", ErrCorrupt, pk, s.Key)
			case c == tree.Equal && s.Left != tree.Nil:
				return fmt.Errorf("%w: %v is in the left subtree of an equal key", ErrCorrupt, pk)
			}
		}
		prev = id
	}

	if seen != t.a.Len() {
		return fmt.Errorf("%w: %d nodes reachable from root, %d allocated",
			ErrCorrupt, seen, t.a.Len())
	}

	return nil
}
