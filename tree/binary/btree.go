package binary

import (
	"errors"

	"go.lepak.sg/ordtree/tree"
	"golang.org/x/exp/constraints"
)

var (
	// ErrEmptyTree is returned when an extremum is requested of an
	// empty tree or an absent subtree.
	ErrEmptyTree = errors.New("empty tree")
	// ErrForeignNode is returned when a Node passed to a Tree method does not
	// belong to that Tree, or belonged to it but has since been deleted.
	ErrForeignNode = errors.New("node does not belong to this tree")
	// ErrStaleNode is the panic value of Node accessors called on a zero
	// Node or a Node whose tree slot has been deleted.
	ErrStaleNode = errors.New("stale or nil node")
	// ErrCorrupt is wrapped by Validate when an invariant does not hold.
	ErrCorrupt = errors.New("tree invariant broken")
)

// Tree is an unbalanced binary search tree. It is not safe for concurrent
// use; callers sharing a Tree between goroutines must serialize access.
//
// Tree should not be passed around as a value (ie. use the pointer
// returned by New or NewFunc).
//
// Duplicate keys are allowed. An equal key always goes to the right,
// both when inserting and when searching.
//
// Invariants:
//   - At any node N in the tree, all node keys in the subtree rooted at N.Left
//     will be less than N.Key
//   - At any node N in the tree, all node keys in the subtree rooted at N.Right
//     will be greater than or equal to N.Key
//   - If N.Left or N.Right is M, M.Parent is N; the root has no parent
//   - Every node is reachable from the root
//
// Nodes live in a tree.Arena and refer to each other by tree.ID, so
// the parent back-links never form pointer cycles.
type Tree[T any] struct {
	a    tree.Arena[T]
	root tree.ID
	cmp  func(a, b T) tree.Order

	tracer    Tracer
	verbosity Verbosity
}

// New returns an empty Tree ordered by the built-in < operator.
func New[T constraints.Ordered](opts ...Option) *Tree[T] {
	return newTree(tree.Compare[T], opts)
}

// NewFunc returns an empty Tree ordered by cmp, which must return
// a negative number when a < b, a positive number when a > b and zero
// otherwise, and must describe a total order.
func NewFunc[T any](cmp func(a, b T) int, opts ...Option) *Tree[T] {
	return newTree(func(a, b T) tree.Order {
		return tree.OrderOf(cmp(a, b))
	}, opts)
}

func newTree[T any](cmp func(a, b T) tree.Order, opts []Option) *Tree[T] {
	var c config
	for _, opt := range opts {
		opt(&c)
	}

	t := &Tree[T]{
		cmp:    cmp,
		tracer: c.tracer,
	}
	t.SetVerbosity(c.verbosity)

	return t
}

// Node is a borrowed reference to a node of a Tree.
// The zero Node means "no node" and IsNil reports it.
//
// A Node stays usable until the node it refers to is deleted from its
// Tree (or the Tree is cleared). Other deletions do not invalidate it, even
// when they move the node to a different position. Accessors of an
// invalidated Node panic with ErrStaleNode; Tree methods return
// ErrForeignNode.
type Node[T any] struct {
	t   *Tree[T]
	id  tree.ID
	gen uint32
}

func (t *Tree[T]) node(id tree.ID) Node[T] {
	if id == tree.Nil {
		return Node[T]{}
	}
	return Node[T]{t: t, id: id, gen: t.a.Gen(id)}
}

// owns returns ErrForeignNode unless n is a live node of t.
func (t *Tree[T]) owns(n Node[T]) error {
	if n.t != t || !t.a.Live(n.id, n.gen) {
		return ErrForeignNode
	}
	return nil
}

func (n Node[T]) slot() *tree.Slot[T] {
	if n.t == nil || !n.t.a.Live(n.id, n.gen) {
		panic(ErrStaleNode)
	}
	return n.t.a.At(n.id)
}

// IsNil reports whether n is the zero Node.
func (n Node[T]) IsNil() bool {
	return n.t == nil
}

// Valid reports whether n refers to a node that has not been deleted.
func (n Node[T]) Valid() bool {
	return n.t != nil && n.t.a.Live(n.id, n.gen)
}

// Key returns the node's key.
func (n Node[T]) Key() T {
	return n.slot().Key
}

// Left returns the node's left child, or the zero Node.
func (n Node[T]) Left() Node[T] {
	return n.t.node(n.slot().Left)
}

// Right returns the node's right child, or the zero Node.
func (n Node[T]) Right() Node[T] {
	return n.t.node(n.slot().Right)
}

// Parent returns the node's parent, or the zero Node for the root.
func (n Node[T]) Parent() Node[T] {
	return n.t.node(n.slot().Parent)
}

// Len returns the number of keys in the tree.
func (t *Tree[T]) Len() int {
	return t.a.Len()
}

// Root returns the root node, or the zero Node if the tree is empty.
func (t *Tree[T]) Root() Node[T] {
	return t.node(t.root)
}

// Clear removes every key. All Nodes of t become invalid.
func (t *Tree[T]) Clear() {
	t.a.Reset()
	t.root = tree.Nil
}

// Insert inserts k into the binary tree and returns its node.
// Insert never fails; a key equal to an existing one goes into
// that node's right subtree.
func (t *Tree[T]) Insert(k T) Node[T] {
	n, p := t.root, tree.Nil
	var cmp tree.Order

	for n != tree.Nil {
		s := t.a.At(n)
		cmp = t.cmp(k, s.Key)
		switch cmp {
		case tree.Less:
			n, p = s.Left, n
		case tree.Equal, tree.Greater:
			n, p = s.Right, n
		default:
			panic("unreachable")
		}
	}

	// Alloc may move the slots, don't hold on to any *Slot across it
	newnode := t.a.Alloc(k)
	t.a.At(newnode).Parent = p

	if p == tree.Nil {
		t.root = newnode
		t.trace(OpInsert, CaseRoot, k)
		return t.node(newnode)
	}

	ps := t.a.At(p)
	switch cmp {
	case tree.Less:
		if ps.Left != tree.Nil {
			panic("impossible")
		}
		ps.Left = newnode
		t.traceOther(OpInsert, CaseLeft, k, ps.Key)
	case tree.Equal, tree.Greater:
		if ps.Right != tree.Nil {
			panic("impossible")
		}
		ps.Right = newnode
		t.traceOther(OpInsert, CaseRight, k, ps.Key)
	default:
		panic("unreachable")
	}

	return t.node(newnode)
}

func (t *Tree[T]) search(k T) tree.ID {
	n := t.root

	for n != tree.Nil {
		s := t.a.At(n)
		switch t.cmp(k, s.Key) {
		case tree.Less:
			n = s.Left
		case tree.Greater:
			n = s.Right
		case tree.Equal:
			return n
		default:
			panic("unreachable")
		}
	}

	return tree.Nil
}

// Search returns the first node with key k found on the way down from
// the root. If there is none, ok is false.
func (t *Tree[T]) Search(k T) (n Node[T], ok bool) {
	id := t.search(k)
	if id == tree.Nil {
		t.trace(OpSearch, CaseMiss, k)
		return Node[T]{}, false
	}

	t.trace(OpSearch, CaseFound, k)
	return t.node(id), true
}

// Contains searches for k in the tree and returns true if it was found.
func (t *Tree[T]) Contains(k T) bool {
	return t.search(k) != tree.Nil
}

// Minimum returns the node with the smallest key in the tree,
// or ErrEmptyTree.
func (t *Tree[T]) Minimum() (Node[T], error) {
	if t.root == tree.Nil {
		return Node[T]{}, ErrEmptyTree
	}
	return t.minimum(t.root), nil
}

// MinimumOf returns the node with the smallest key in the subtree rooted at n.
// A zero n is an absent subtree and gives ErrEmptyTree.
func (t *Tree[T]) MinimumOf(n Node[T]) (Node[T], error) {
	if n.IsNil() {
		return Node[T]{}, ErrEmptyTree
	}
	if err := t.owns(n); err != nil {
		return Node[T]{}, err
	}
	return t.minimum(n.id), nil
}

func (t *Tree[T]) minimum(id tree.ID) Node[T] {
	m := t.a.Leftmost(id)
	t.trace(OpMinimum, CaseFound, t.a.At(m).Key)
	return t.node(m)
}

// Maximum returns the node with the largest key in the tree,
// or ErrEmptyTree. With duplicates of the largest key, it is the one
// inserted last.
func (t *Tree[T]) Maximum() (Node[T], error) {
	if t.root == tree.Nil {
		return Node[T]{}, ErrEmptyTree
	}
	return t.maximum(t.root), nil
}

// MaximumOf is the mirror of MinimumOf.
func (t *Tree[T]) MaximumOf(n Node[T]) (Node[T], error) {
	if n.IsNil() {
		return Node[T]{}, ErrEmptyTree
	}
	if err := t.owns(n); err != nil {
		return Node[T]{}, err
	}
	return t.maximum(n.id), nil
}

func (t *Tree[T]) maximum(id tree.ID) Node[T] {
	m := t.a.Rightmost(id)
	t.trace(OpMaximum, CaseFound, t.a.At(m).Key)
	return t.node(m)
}

// Successor returns the node that follows n in in-order sequence.
// If n is the last node, ok is false.
func (t *Tree[T]) Successor(n Node[T]) (s Node[T], ok bool, err error) {
	if err = t.owns(n); err != nil {
		return
	}

	x := n.id
	xs := t.a.At(x)
	if xs.Right != tree.Nil {
		m := t.a.Leftmost(xs.Right)
		t.traceOther(OpSuccessor, CaseSubtree, xs.Key, t.a.At(m).Key)
		return t.node(m), true, nil
	}

	// climb while we are a right child
	y := xs.Parent
	for y != tree.Nil && t.a.At(y).Right == x {
		x, y = y, t.a.At(y).Parent
	}

	if y == tree.Nil {
		t.trace(OpSuccessor, CaseNone, xs.Key)
		return Node[T]{}, false, nil
	}

	t.traceOther(OpSuccessor, CaseAncestor, xs.Key, t.a.At(y).Key)
	return t.node(y), true, nil
}

// Predecessor returns the node that precedes n in in-order sequence.
// If n is the first node, ok is false.
func (t *Tree[T]) Predecessor(n Node[T]) (p Node[T], ok bool, err error) {
	// Successor with left and right flipped.
	if err = t.owns(n); err != nil {
		return
	}

	x := n.id
	xs := t.a.At(x)
	if xs.Left != tree.Nil {
		m := t.a.Rightmost(xs.Left)
		t.traceOther(OpPredecessor, CaseSubtree, xs.Key, t.a.At(m).Key)
		return t.node(m), true, nil
	}

	y := xs.Parent
	for y != tree.Nil && t.a.At(y).Left == x {
		x, y = y, t.a.At(y).Parent
	}

	if y == tree.Nil {
		t.trace(OpPredecessor, CaseNone, xs.Key)
		return Node[T]{}, false, nil
	}

	t.traceOther(OpPredecessor, CaseAncestor, xs.Key, t.a.At(y).Key)
	return t.node(y), true, nil
}
