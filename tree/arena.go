package tree

import "fmt"

// Arena is a growable store of tree nodes addressed by ID.
// Relations between nodes are IDs, so a node graph with parent links
// never forms pointer cycles, and moving a subtree is just rewriting IDs.
//
// Slot 0 is the Nil slot. It is never handed out and must never be written.
// Freed slots are chained into a free list through their Left link and
// are reused before the backing slice grows.
//
// Every slot carries a generation that changes when the slot is freed,
// so a (ID, generation) pair taken before a Free can be detected as stale.
//
// The zero Arena is ready to use.
type Arena[T any] struct {
	slots []Slot[T]
	free  ID
	live  int
}

// NewArena returns an Arena with room for hint nodes.
func NewArena[T any](hint int) *Arena[T] {
	a := &Arena[T]{}
	a.slots = make([]Slot[T], 1, hint+1)
	return a
}

func (a *Arena[T]) init() {
	if a.slots == nil {
		a.slots = make([]Slot[T], 1)
	}
}

// Alloc stores k in a fresh slot with no relations and returns its ID.
func (a *Arena[T]) Alloc(k T) ID {
	a.init()
	a.live++

	if a.free != Nil {
		id := a.free
		s := &a.slots[id]
		a.free = s.Left
		s.Key, s.Left, s.Right, s.Parent = k, Nil, Nil, Nil
		return id
	}

	if uint64(len(a.slots)) > uint64(^ID(0)) {
		panic("arena is full")
	}

	a.slots = append(a.slots, Slot[T]{Key: k})
	return ID(len(a.slots) - 1)
}

// Free releases the slot. Any generation read before the call
// stops being Live afterwards.
func (a *Arena[T]) Free(id ID) {
	if id == Nil {
		panic("cannot Free the Nil slot")
	}
	if int(id) >= len(a.slots) {
		panic(fmt.Sprintf("cannot Free out of range slot %d", id))
	}

	var zero T
	s := &a.slots[id]
	s.gen++
	s.Key, s.Right, s.Parent = zero, Nil, Nil
	s.Left = a.free
	a.free = id
	a.live--
}

// At returns the slot for id. At(Nil) returns the empty Nil slot,
// which must not be written to.
func (a *Arena[T]) At(id ID) *Slot[T] {
	a.init()
	return &a.slots[id]
}

// Gen returns the current generation of the slot.
func (a *Arena[T]) Gen(id ID) uint32 {
	if int(id) >= len(a.slots) {
		return 0
	}
	return a.slots[id].gen
}

// Live reports whether id still names the node it named when gen was read.
func (a *Arena[T]) Live(id ID, gen uint32) bool {
	return id != Nil && int(id) < len(a.slots) && a.slots[id].gen == gen
}

// Len returns the number of allocated (not freed) slots.
func (a *Arena[T]) Len() int {
	return a.live
}

// Reset drops every node. Generations are kept, so IDs read before
// the Reset are not Live afterwards.
func (a *Arena[T]) Reset() {
	var zero T
	a.free = Nil
	for i := len(a.slots) - 1; i > 0; i-- {
		s := &a.slots[i]
		s.gen++
		s.Key, s.Right, s.Parent = zero, Nil, Nil
		s.Left = a.free
		a.free = ID(i)
	}
	a.live = 0
}

// Leftmost follows Left links from id and returns the last node reached.
// Leftmost(Nil) is Nil.
func (a *Arena[T]) Leftmost(id ID) ID {
	if id == Nil {
		return Nil
	}
	for l := a.At(id).Left; l != Nil; l = a.At(id).Left {
		id = l
	}
	return id
}

// Rightmost is the mirror of Leftmost.
func (a *Arena[T]) Rightmost(id ID) ID {
	if id == Nil {
		return Nil
	}
	for r := a.At(id).Right; r != Nil; r = a.At(id).Right {
		id = r
	}
	return id
}
