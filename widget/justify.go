package widget

import "github.com/lixenwraith/cellui/layout"

// Justify names where Printj places a line of text inside a window's content area
type Justify struct {
	v, h     layout.Anchor
	row, col int
}

// Horizontal primitives: fixed row, left/center/right

func JustifyLeft(row int) Justify {
	return Justify{v: layout.AnchorFixed, row: row, h: layout.AnchorStart}
}

func JustifyHCenter(row int) Justify {
	return Justify{v: layout.AnchorFixed, row: row, h: layout.AnchorMiddle}
}

func JustifyRight(row int) Justify {
	return Justify{v: layout.AnchorFixed, row: row, h: layout.AnchorEnd}
}

// Vertical primitives: fixed column, top/center/bottom

func JustifyTop(col int) Justify {
	return Justify{v: layout.AnchorStart, h: layout.AnchorFixed, col: col}
}

func JustifyVCenter(col int) Justify {
	return Justify{v: layout.AnchorMiddle, h: layout.AnchorFixed, col: col}
}

func JustifyBottom(col int) Justify {
	return Justify{v: layout.AnchorEnd, h: layout.AnchorFixed, col: col}
}

// Combined shortcuts
var (
	JustifyTopLeft      = Justify{v: layout.AnchorStart, h: layout.AnchorStart}
	JustifyTopCenter    = Justify{v: layout.AnchorStart, h: layout.AnchorMiddle}
	JustifyTopRight     = Justify{v: layout.AnchorStart, h: layout.AnchorEnd}
	JustifyCenterLeft   = Justify{v: layout.AnchorMiddle, h: layout.AnchorStart}
	JustifyCenter       = Justify{v: layout.AnchorMiddle, h: layout.AnchorMiddle}
	JustifyCenterRight  = Justify{v: layout.AnchorMiddle, h: layout.AnchorEnd}
	JustifyBottomLeft   = Justify{v: layout.AnchorEnd, h: layout.AnchorStart}
	JustifyBottomCenter = Justify{v: layout.AnchorEnd, h: layout.AnchorMiddle}
	JustifyBottomRight  = Justify{v: layout.AnchorEnd, h: layout.AnchorEnd}
)

// Printj prints one line of text at the named justification
func (w *Window) Printj(j Justify, text string) {
	switch {
	case j.v == layout.AnchorFixed:
		w.printRow(j.row, j.h, text)
	case j.h == layout.AnchorFixed:
		w.printColumn(j.col, j.v, text)
	default:
		w.printRow(w.rowFor(j.v), j.h, text)
	}
}

// printRow places text on a fixed content row
func (w *Window) printRow(row int, h layout.Anchor, text string) {
	ch, cw := w.ContentSize()
	_, x := layout.Align(layout.AtRow(row, h), 1, TextWidth(text), 0, 0, ch, cw)
	w.Print(row, x, text)
}

// printColumn places text at a fixed content column
func (w *Window) printColumn(col int, v layout.Anchor, text string) {
	w.Print(w.rowFor(v), col, text)
}

// rowFor resolves a vertical anchor for a one-row follower
func (w *Window) rowFor(v layout.Anchor) int {
	ch, cw := w.ContentSize()
	y, _ := layout.Align(layout.AtColumn(0, v), 1, 0, 0, 0, ch, cw)
	return y
}
