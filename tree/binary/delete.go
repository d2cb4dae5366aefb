package binary

import (
	"go.lepak.sg/ordtree/tree"
)

// Delete removes one node with key k, the same node Search(k) would return.
// It returns false, leaving the tree untouched, if k is not in the tree.
func (t *Tree[T]) Delete(k T) bool {
	z := t.search(k)
	if z == tree.Nil {
		t.trace(OpDelete, CaseMiss, k)
		return false
	}

	t.delete(z)
	return true
}

// DeleteNode removes the node n refers to. It is the way to remove one
// particular node among several with equal keys.
// After it returns, n is no longer valid.
func (t *Tree[T]) DeleteNode(n Node[T]) error {
	if err := t.owns(n); err != nil {
		return err
	}

	t.delete(n.id)
	return nil
}

// delete unlinks z and frees its slot.
// No key is ever copied between nodes: in the two-children case the
// successor node itself is moved into z's position, so Nodes referring
// to the successor stay valid.
func (t *Tree[T]) delete(z tree.ID) {
	zs := t.a.At(z)

	switch {
	case zs.Left == tree.Nil:
		t.trace(OpDelete, CaseNoLeft, zs.Key)
		t.transplant(z, zs.Right)
	case zs.Right == tree.Nil:
		t.trace(OpDelete, CaseNoRight, zs.Key)
		t.transplant(z, zs.Left)
	default:
		y := t.a.Leftmost(zs.Right)
		ys := t.a.At(y)
		t.traceOther(OpDelete, CaseTwoChildren, zs.Key, ys.Key)

		if ys.Parent != z {
			// Close the gap y leaves behind before giving it z's right
			// subtree, otherwise y would end up as its own right child.
			t.transplant(y, ys.Right)
			ys.Right = zs.Right
			t.a.At(ys.Right).Parent = y
			t.trace(OpDelete, CaseSuccessorDetached, ys.Key)
		}

		t.transplant(z, y)
		ys.Left = zs.Left
		t.a.At(ys.Left).Parent = y
	}

	t.a.Free(z)
}

// transplant replaces the subtree rooted at u with the subtree rooted at v
// (which may be Nil) in u's parent. u's own links, including its children,
// are left as they are; the caller decides what to keep.
func (t *Tree[T]) transplant(u, v tree.ID) {
	us := t.a.At(u)
	p := us.Parent

	var c string
	switch {
	case p == tree.Nil:
		t.root = v
		c = CaseRoot
	case t.a.At(p).Left == u:
		t.a.At(p).Left = v
		c = CaseLeft
	default:
		t.a.At(p).Right = v
		c = CaseRight
	}

	if v != tree.Nil {
		vs := t.a.At(v)
		vs.Parent = p
		t.traceOther(OpTransplant, c, us.Key, vs.Key)
	} else {
		t.trace(OpTransplant, c, us.Key)
	}
}
