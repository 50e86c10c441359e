package layout

import "errors"

// ErrNegativeOrigin is returned when a move would place a rect above or left of the screen
var ErrNegativeOrigin = errors.New("layout: negative origin")

// Point is a cell position, row first
type Point struct {
	Y, X int
}

// Rect is a rectangle of cells with an absolute origin
type Rect struct {
	Y, X int // Top-left corner
	H, W int // Dimensions
}

// NewRect creates a rect, clamping negative sizes to zero
func NewRect(y, x, h, w int) Rect {
	return Rect{Y: y, X: x, H: max(h, 0), W: max(w, 0)}
}

// Origin returns the top-left corner
func (r Rect) Origin() Point {
	return Point{Y: r.Y, X: r.X}
}

// Bottom returns the row just below the rect (exclusive)
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Right returns the column just right of the rect (exclusive)
func (r Rect) Right() int {
	return r.X + r.W
}

// Empty reports whether the rect covers no cells
func (r Rect) Empty() bool {
	return r.W <= 0 || r.H <= 0
}

// Contains reports whether the absolute cell (y, x) lies inside the rect
func (r Rect) Contains(y, x int) bool {
	return y >= r.Y && y < r.Bottom() && x >= r.X && x < r.Right()
}

// Inset shrinks the rect by n cells on every side
// The result keeps a non-negative size; an over-inset rect collapses at its center
func (r Rect) Inset(n int) Rect {
	h := r.H - 2*n
	w := r.W - 2*n
	if h < 0 {
		h = 0
	}
	if w < 0 {
		w = 0
	}
	return Rect{Y: r.Y + n, X: r.X + n, H: h, W: w}
}

// Translate returns the rect moved by (dy, dx)
func (r Rect) Translate(dy, dx int) Rect {
	r.Y += dy
	r.X += dx
	return r
}

// Intersect returns the overlap of two rects, zero-sized when disjoint
func (r Rect) Intersect(o Rect) Rect {
	y1 := max(r.Y, o.Y)
	x1 := max(r.X, o.X)
	y2 := min(r.Bottom(), o.Bottom())
	x2 := min(r.Right(), o.Right())
	if y1 >= y2 || x1 >= x2 {
		return Rect{Y: y1, X: x1}
	}
	return Rect{Y: y1, X: x1, H: y2 - y1, W: x2 - x1}
}

// Delta returns the offset that moves from onto to
func Delta(from, to Point) (dy, dx int) {
	return to.Y - from.Y, to.X - from.X
}

// Offset moves p by (dy, dx), rejecting results outside the first quadrant
func Offset(p Point, dy, dx int) (Point, error) {
	q := Point{Y: p.Y + dy, X: p.X + dx}
	if q.Y < 0 || q.X < 0 {
		return p, ErrNegativeOrigin
	}
	return q, nil
}
