package widget

import (
	"slices"

	"github.com/lixenwraith/cellui/layout"
)

// Transparent marks an empty cell; the compositor skips it
const Transparent rune = 0

// Cursor is a node-local cursor position
type Cursor struct {
	Y, X   int
	Hidden bool
}

// Node is one rectangular drawable: absolute origin, own buffer, paint order and children
// Obtain a *Node through Tree.Edit; never retain it past the callback
type Node struct {
	rect     layout.Rect
	cells    []rune // Row-major, len = H*W
	z        int
	visible  bool
	cursor   Cursor
	children []ID
	parent   ID
	revision uint64 // Bumped by every buffer write
}

func newNode(y, x, h, w int) Node {
	r := layout.NewRect(max(y, 0), max(x, 0), h, w)
	return Node{
		rect:    r,
		cells:   make([]rune, r.H*r.W),
		z:       1,
		visible: true,
		cursor:  Cursor{Hidden: true},
	}
}

// Rect returns the node's absolute rect
func (n *Node) Rect() layout.Rect { return n.rect }

// Z returns the paint priority
func (n *Node) Z() int { return n.z }

// SetZ sets the paint priority, higher over lower
func (n *Node) SetZ(z int) { n.z = z }

// Visible reports whether the node takes part in composition
func (n *Node) Visible() bool { return n.visible }

// Show makes the node and its subtree paintable
func (n *Node) Show() { n.visible = true }

// Hide removes the node and its subtree from composition without detaching them
func (n *Node) Hide() { n.visible = false }

// Cursor returns the node-local cursor
func (n *Node) Cursor() Cursor { return n.cursor }

// Children returns a copy of the child list
func (n *Node) Children() []ID { return slices.Clone(n.children) }

// Revision changes whenever the buffer is written
func (n *Node) Revision() uint64 { return n.revision }

// Cell returns the rune at node-local (y, x)
func (n *Node) Cell(y, x int) (rune, bool) {
	if !n.inBounds(y, x) {
		return Transparent, false
	}
	return n.cells[y*n.rect.W+x], true
}

func (n *Node) inBounds(y, x int) bool {
	return y >= 0 && y < n.rect.H && x >= 0 && x < n.rect.W
}

// Putc writes one rune; out-of-range writes are dropped
func (n *Node) Putc(y, x int, c rune) {
	if !n.inBounds(y, x) {
		return
	}
	n.cells[y*n.rect.W+x] = c
	n.revision++
}

// Print writes text from node-local (y, x) without wrapping
// Output stops at the right edge before any visual character that would not fit whole
// Returns the number of columns written
func (n *Node) Print(y, x int, text string) int {
	if !n.inBounds(y, x) {
		return 0
	}

	row := y * n.rect.W
	col := x
	eachGrapheme(text, func(first rune, width int) bool {
		if col+width > n.rect.W {
			return false
		}
		n.cells[row+col] = first
		for i := 1; i < width; i++ {
			n.cells[row+col+i] = Continuation
		}
		col += width
		return true
	})

	if col > x {
		n.revision++
	}
	return col - x
}

// Fill sets every cell to c
func (n *Node) Fill(c rune) {
	for i := range n.cells {
		n.cells[i] = c
	}
	n.revision++
}

// Clear resets every cell to Transparent
func (n *Node) Clear() {
	n.Fill(Transparent)
}

// ClearRow resets one row to Transparent
func (n *Node) ClearRow(y int) {
	if y < 0 || y >= n.rect.H {
		return
	}
	row := n.cells[y*n.rect.W : (y+1)*n.rect.W]
	for i := range row {
		row[i] = Transparent
	}
	n.revision++
}

// Snapshot returns a copy of the buffer
func (n *Node) Snapshot() []rune {
	return slices.Clone(n.cells)
}

// Restore replaces the buffer with a snapshot of the same size
func (n *Node) Restore(cells []rune) bool {
	if len(cells) != len(n.cells) {
		return false
	}
	copy(n.cells, cells)
	n.revision++
	return true
}

// --- Cursor ---

// MoveCursor places the cursor at node-local (y, x), ignoring out-of-range targets
func (n *Node) MoveCursor(y, x int) bool {
	if !n.inBounds(y, x) {
		return false
	}
	n.cursor.Y = y
	n.cursor.X = x
	return true
}

// AdvanceCursor moves the cursor along its row, refusing to leave the node
func (n *Node) AdvanceCursor(steps int) bool {
	x := n.cursor.X + steps
	if x < 0 || x >= n.rect.W {
		return false
	}
	n.cursor.X = x
	return true
}

// ShowCursor makes the node's cursor eligible for the frame's hardware cursor
func (n *Node) ShowCursor() { n.cursor.Hidden = false }

// HideCursor hides the node's cursor
func (n *Node) HideCursor() { n.cursor.Hidden = true }

// --- Position ---

// MoveTo sets the absolute origin
func (n *Node) MoveTo(y, x int) error {
	if y < 0 || x < 0 {
		return layout.ErrNegativeOrigin
	}
	n.rect.Y = y
	n.rect.X = x
	return nil
}

// Translate shifts the origin by (dy, dx)
func (n *Node) Translate(dy, dx int) error {
	p, err := layout.Offset(n.rect.Origin(), dy, dx)
	if err != nil {
		return err
	}
	n.rect.Y = p.Y
	n.rect.X = p.X
	return nil
}
