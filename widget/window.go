package widget

import "github.com/lixenwraith/cellui/layout"

// Window is a node with an optional frame; all drawing is in content coordinates
type Window struct {
	handle
	border   Border
	bordered bool

	// Buffer before the last toggle and the revision right after it,
	// so an immediate second toggle restores the original exactly
	saved    []rune
	savedRev uint64
}

// NewWindow allocates an unframed window at absolute (y, x)
func NewWindow(t *Tree, y, x, h, w int) *Window {
	return &Window{
		handle: handle{tree: t, id: t.New(y, x, h, w)},
		border: BorderSingle,
	}
}

// NewBorderedWindow allocates a window and frames it with b
func NewBorderedWindow(t *Tree, y, x, h, w int, b Border) (*Window, error) {
	win := NewWindow(t, y, x, h, w)
	win.border = b
	if err := win.ToggleBorder(); err != nil {
		t.Release(win.id)
		return nil, err
	}
	return win, nil
}

// InnerRect returns the absolute content rect, one cell in from each edge when framed
func (w *Window) InnerRect() layout.Rect {
	r := w.OuterRect()
	if w.bordered {
		return r.Inset(1)
	}
	return r
}

// ContentRect is InnerRect
func (w *Window) ContentRect() layout.Rect { return w.InnerRect() }

// ContentSize returns content height and width
func (w *Window) ContentSize() (h, wd int) {
	r := w.InnerRect()
	return r.H, r.W
}

// Bordered reports whether the frame is on
func (w *Window) Bordered() bool { return w.bordered }

// Border returns the frame glyphs
func (w *Window) Border() Border { return w.border }

// SetBorder changes the frame glyphs, repainting the frame if it is on
func (w *Window) SetBorder(b Border) {
	w.border = b
	if w.bordered {
		w.tree.Edit(w.id, func(n *Node) { drawBorder(n, b) })
	}
}

// ToggleBorder turns the frame on or off, shifting content in or out by one cell
// Enabling on a window smaller than 2x2 returns ErrTooSmall
func (w *Window) ToggleBorder() error {
	r := w.OuterRect()
	if !w.bordered && (r.H < 2 || r.W < 2) {
		return ErrTooSmall
	}

	w.tree.Edit(w.id, func(n *Node) {
		before := n.Snapshot()
		switch {
		case w.saved != nil && n.Revision() == w.savedRev:
			n.Restore(w.saved)
		case w.bordered:
			clearRing(n)
			shiftOut(n)
		default:
			shiftIn(n)
			drawBorder(n, w.border)
		}
		w.saved = before
		w.savedRev = n.Revision()
	})

	w.bordered = !w.bordered
	return nil
}

// offset converts content coordinates to node coordinates
func (w *Window) offset() int {
	if w.bordered {
		return 1
	}
	return 0
}

// Putc writes one rune in content coordinates
func (w *Window) Putc(y, x int, c rune) {
	ch, cw := w.ContentSize()
	if y < 0 || y >= ch || x < 0 || x >= cw {
		return
	}
	o := w.offset()
	w.tree.Putc(w.id, y+o, x+o, c)
}

// Print writes text in content coordinates, truncated at the content edge
func (w *Window) Print(y, x int, text string) int {
	ch, cw := w.ContentSize()
	if y < 0 || y >= ch || x < 0 || x >= cw {
		return 0
	}
	o := w.offset()
	return w.tree.Print(w.id, y+o, x+o, Fit(text, cw-x))
}

// ClearLine makes one content row transparent
func (w *Window) ClearLine(y int) {
	ch, cw := w.ContentSize()
	if y < 0 || y >= ch {
		return
	}
	o := w.offset()
	w.tree.Edit(w.id, func(n *Node) {
		for x := 0; x < cw; x++ {
			n.Putc(y+o, x+o, Transparent)
		}
	})
}

// Clear makes the content transparent, keeping the frame
func (w *Window) Clear() {
	w.tree.Edit(w.id, func(n *Node) {
		n.Clear()
		if w.bordered {
			drawBorder(n, w.border)
		}
	})
}

// --- Cursor, in content coordinates ---

// MoveCursor places the cursor inside the content area
func (w *Window) MoveCursor(y, x int) (ok bool) {
	ch, cw := w.ContentSize()
	if y < 0 || y >= ch || x < 0 || x >= cw {
		return false
	}
	o := w.offset()
	w.tree.Edit(w.id, func(n *Node) { ok = n.MoveCursor(y+o, x+o) })
	return ok
}

// ShowCursor enables the window's cursor
func (w *Window) ShowCursor() {
	w.tree.Edit(w.id, func(n *Node) { n.ShowCursor() })
}

// HideCursor disables the window's cursor
func (w *Window) HideCursor() {
	w.tree.Edit(w.id, func(n *Node) { n.HideCursor() })
}

// AdvanceCursor moves the cursor along its row; it refuses to leave the content area
func (w *Window) AdvanceCursor(steps int) (ok bool) {
	_, cw := w.ContentSize()
	o := w.offset()
	w.tree.Edit(w.id, func(n *Node) {
		x := n.Cursor().X - o + steps
		if x < 0 || x >= cw {
			return
		}
		ok = n.AdvanceCursor(steps)
	})
	return ok
}
