package widget

import (
	"fmt"
	"slices"

	"github.com/lixenwraith/cellui/layout"
)

// ID is a stable handle to a node in a Tree
// The zero ID never refers to a node
type ID struct {
	index uint32
	gen   uint32
}

// Valid reports whether the id was issued by a Tree (it may since have been released)
func (id ID) Valid() bool {
	return id.gen != 0
}

func (id ID) String() string {
	return fmt.Sprintf("#%d.%d", id.index, id.gen)
}

type slot struct {
	node     Node
	gen      uint32
	alive    bool
	borrowed bool
}

// Tree is the arena owning every widget node
// Slots are boxed so a node edited inside Edit stays put if the arena grows
// Not safe for concurrent use; the UI runs on a single goroutine
type Tree struct {
	slots []*slot
	free  []uint32
}

// NewTree creates an empty arena
func NewTree() *Tree {
	return &Tree{}
}

// New allocates a visible node at absolute (y, x) with a transparent h×w buffer
// Negative geometry is clamped to zero
func (t *Tree) New(y, x, h, w int) ID {
	n := newNode(y, x, h, w)

	if len(t.free) > 0 {
		idx := t.free[len(t.free)-1]
		t.free = t.free[:len(t.free)-1]
		s := t.slots[idx]
		s.gen++
		s.node = n
		s.alive = true
		s.borrowed = false
		return ID{index: idx, gen: s.gen}
	}

	t.slots = append(t.slots, &slot{node: n, gen: 1, alive: true})
	return ID{index: uint32(len(t.slots) - 1), gen: 1}
}

// Alive reports whether id refers to a live node
func (t *Tree) Alive(id ID) bool {
	_, ok := t.lookup(id)
	return ok
}

// Len returns the number of live nodes
func (t *Tree) Len() int {
	return len(t.slots) - len(t.free)
}

func (t *Tree) lookup(id ID) (*slot, bool) {
	if !id.Valid() || int(id.index) >= len(t.slots) {
		return nil, false
	}
	s := t.slots[id.index]
	if !s.alive || s.gen != id.gen {
		return nil, false
	}
	return s, true
}

// Edit runs fn with exclusive access to the node
// Panics with ErrStaleID for dead ids and *BorrowError when the node is already being accessed
func (t *Tree) Edit(id ID, fn func(n *Node)) {
	s, ok := t.lookup(id)
	if !ok {
		panic(fmt.Errorf("%w: %v", ErrStaleID, id))
	}
	if s.borrowed {
		panic(&BorrowError{ID: id})
	}
	s.borrowed = true
	defer func() { s.borrowed = false }()
	fn(&s.node)
}

// Release frees the node and every descendant and detaches it from its parent
// Ids of released nodes become stale; releasing a stale id is a no-op
func (t *Tree) Release(id ID) {
	s, ok := t.lookup(id)
	if !ok {
		return
	}
	if s.borrowed {
		panic(&BorrowError{ID: id})
	}

	if parent := s.node.parent; t.Alive(parent) {
		t.Edit(parent, func(p *Node) {
			p.children = slices.DeleteFunc(p.children, func(c ID) bool { return c == id })
		})
	}

	children := s.node.children
	s.node.children = nil
	for _, c := range children {
		if cs, ok := t.lookup(c); ok {
			cs.node.parent = ID{}
		}
		t.Release(c)
	}

	s.alive = false
	s.node = Node{}
	t.free = append(t.free, id.index)
}

// Attach appends child to parent's child list
// Children paint after their parent, ordered among siblings by z-index
func (t *Tree) Attach(parent, child ID) error {
	ps, ok := t.lookup(parent)
	if !ok {
		return fmt.Errorf("%w: parent %v", ErrStaleID, parent)
	}
	cs, ok := t.lookup(child)
	if !ok {
		return fmt.Errorf("%w: child %v", ErrStaleID, child)
	}
	if cs.node.parent.Valid() && t.Alive(cs.node.parent) {
		return ErrHasParent
	}
	for a := parent; a.Valid(); {
		if a == child {
			return ErrCycle
		}
		as, ok := t.lookup(a)
		if !ok {
			break
		}
		a = as.node.parent
	}

	ps.node.children = append(ps.node.children, child)
	cs.node.parent = parent
	return nil
}

// Detach removes child from parent's child list without releasing it
func (t *Tree) Detach(parent, child ID) {
	ps, ok := t.lookup(parent)
	if !ok {
		return
	}
	before := len(ps.node.children)
	ps.node.children = slices.DeleteFunc(ps.node.children, func(c ID) bool { return c == child })
	if len(ps.node.children) != before {
		if cs, ok := t.lookup(child); ok {
			cs.node.parent = ID{}
		}
	}
}

// Parent returns the node's parent, zero ID for roots
func (t *Tree) Parent(id ID) ID {
	s, ok := t.lookup(id)
	if !ok {
		return ID{}
	}
	return s.node.parent
}

// Children returns a copy of the node's child list in insertion order
func (t *Tree) Children(id ID) []ID {
	s, ok := t.lookup(id)
	if !ok {
		return nil
	}
	return slices.Clone(s.node.children)
}

// --- Delegating helpers, each one a short exclusive edit ---

// Rect returns the node's absolute rect, zero for dead ids
func (t *Tree) Rect(id ID) layout.Rect {
	s, ok := t.lookup(id)
	if !ok {
		return layout.Rect{}
	}
	return s.node.rect
}

// Z returns the node's paint priority, zero for dead ids
func (t *Tree) Z(id ID) int {
	s, ok := t.lookup(id)
	if !ok {
		return 0
	}
	return s.node.z
}

// Visible reports whether the node takes part in composition; false for dead ids
func (t *Tree) Visible(id ID) bool {
	s, ok := t.lookup(id)
	return ok && s.node.visible
}

// Putc writes one rune at node-local (y, x)
func (t *Tree) Putc(id ID, y, x int, c rune) {
	t.Edit(id, func(n *Node) { n.Putc(y, x, c) })
}

// Print writes text at node-local (y, x), returning columns written
func (t *Tree) Print(id ID, y, x int, text string) (cols int) {
	t.Edit(id, func(n *Node) { cols = n.Print(y, x, text) })
	return cols
}

// Clear resets every cell of the node to Transparent
func (t *Tree) Clear(id ID) {
	t.Edit(id, func(n *Node) { n.Clear() })
}

// SetZ sets the node's paint priority
func (t *Tree) SetZ(id ID, z int) {
	t.Edit(id, func(n *Node) { n.z = z })
}

// SetVisible shows or hides the node and, with it, its subtree
func (t *Tree) SetVisible(id ID, visible bool) {
	t.Edit(id, func(n *Node) { n.visible = visible })
}

// MoveTo places the node's origin at absolute (y, x)
func (t *Tree) MoveTo(id ID, y, x int) (err error) {
	t.Edit(id, func(n *Node) { err = n.MoveTo(y, x) })
	return err
}

// Translate shifts the node by (dy, dx)
func (t *Tree) Translate(id ID, dy, dx int) (err error) {
	t.Edit(id, func(n *Node) { err = n.Translate(dy, dx) })
	return err
}

// TranslateTree shifts the node and all of its descendants by (dy, dx)
// Every position is validated before anything moves
func (t *Tree) TranslateTree(id ID, dy, dx int) error {
	var ids []ID
	var collect func(ID)
	collect = func(n ID) {
		if !t.Alive(n) {
			return
		}
		ids = append(ids, n)
		for _, c := range t.Children(n) {
			collect(c)
		}
	}
	collect(id)

	for _, n := range ids {
		r := t.Rect(n)
		if r.Y+dy < 0 || r.X+dx < 0 {
			return fmt.Errorf("translate %v by (%d,%d): %w", n, dy, dx, layout.ErrNegativeOrigin)
		}
	}
	for _, n := range ids {
		if err := t.Translate(n, dy, dx); err != nil {
			return err
		}
	}
	return nil
}
