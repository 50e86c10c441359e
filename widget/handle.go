package widget

import "github.com/lixenwraith/cellui/layout"

// handle is the shared positioning surface of every widget built on one root node
type handle struct {
	tree *Tree
	id   ID
}

// ID returns the widget's root node
func (h handle) ID() ID { return h.id }

// Tree returns the arena holding the widget
func (h handle) Tree() *Tree { return h.tree }

// OuterRect returns the full absolute rect
func (h handle) OuterRect() layout.Rect { return h.tree.Rect(h.id) }

// Show makes the widget paintable
func (h handle) Show() { h.tree.SetVisible(h.id, true) }

// Hide removes the widget from composition
func (h handle) Hide() { h.tree.SetVisible(h.id, false) }

// SetZ sets the paint priority
func (h handle) SetZ(z int) { h.tree.SetZ(h.id, z) }

// MoveTo places the origin at (y, x), carrying attached children along
func (h handle) MoveTo(y, x int) error {
	dy, dx := layout.Delta(h.OuterRect().Origin(), layout.Point{Y: y, X: x})
	return h.tree.TranslateTree(h.id, dy, dx)
}

// Translate shifts the widget and its children by (dy, dx)
func (h handle) Translate(dy, dx int) error {
	return h.tree.TranslateTree(h.id, dy, dx)
}

// AlignToOuter moves the widget against anchor's full rect
func (h handle) AlignToOuter(anchor layout.Aligned, p layout.Policy) error {
	r := h.OuterRect()
	to := layout.AlignToOuter(p, r.H, r.W, anchor)
	return h.MoveTo(to.Y, to.X)
}

// AlignToInner moves the widget against anchor's content rect
func (h handle) AlignToInner(anchor layout.Aligned, p layout.Policy) error {
	r := h.OuterRect()
	to := layout.AlignToInner(p, r.H, r.W, anchor)
	return h.MoveTo(to.Y, to.X)
}

// AlignCenters moves the widget so its center cell lands on anchor's center cell
// On an axis where the widget is at least as large as the anchor it goes to the anchor's start
func (h handle) AlignCenters(anchor layout.Aligned) error {
	a := anchor.OuterRect()
	r := h.OuterRect()
	dy, dx := layout.Delta(center(r), center(a))
	if r.H >= a.H {
		dy = a.Y - r.Y
	}
	if r.W >= a.W {
		dx = a.X - r.X
	}
	return h.Translate(dy, dx)
}

// Attach makes child paint after, and move with, this widget
func (h handle) Attach(child ID) error {
	return h.tree.Attach(h.id, child)
}

// Release frees the widget and everything attached to it
func (h handle) Release() {
	h.tree.Release(h.id)
}

// center is the upper-left of the middle cells
func center(r layout.Rect) layout.Point {
	return layout.Point{Y: r.Y + max(r.H-1, 0)/2, X: r.X + max(r.W-1, 0)/2}
}
