package layout

import "fmt"

// Anchor selects how a follower is placed along one axis of its anchor
type Anchor uint8

const (
	AnchorStart  Anchor = iota // Flush with the anchor's top or left edge
	AnchorMiddle               // Centered, rounding toward the start
	AnchorEnd                  // Flush with the anchor's bottom or right edge
	AnchorFixed                // Fixed offset from the anchor's start
)

// Policy combines a vertical and a horizontal placement rule
// Row and Col are only read for AnchorFixed axes
type Policy struct {
	Vertical   Anchor
	Horizontal Anchor
	Row        int
	Col        int
}

// The nine corner, edge and center policies
var (
	TopLeft      = Policy{Vertical: AnchorStart, Horizontal: AnchorStart}
	TopCenter    = Policy{Vertical: AnchorStart, Horizontal: AnchorMiddle}
	TopRight     = Policy{Vertical: AnchorStart, Horizontal: AnchorEnd}
	CenterLeft   = Policy{Vertical: AnchorMiddle, Horizontal: AnchorStart}
	Center       = Policy{Vertical: AnchorMiddle, Horizontal: AnchorMiddle}
	CenterRight  = Policy{Vertical: AnchorMiddle, Horizontal: AnchorEnd}
	BottomLeft   = Policy{Vertical: AnchorEnd, Horizontal: AnchorStart}
	BottomCenter = Policy{Vertical: AnchorEnd, Horizontal: AnchorMiddle}
	BottomRight  = Policy{Vertical: AnchorEnd, Horizontal: AnchorEnd}
)

// Standard lists the nine corner, edge and center policies in reading order
var Standard = [...]Policy{
	TopLeft, TopCenter, TopRight,
	CenterLeft, Center, CenterRight,
	BottomLeft, BottomCenter, BottomRight,
}

// AtRow fixes the row and applies h on the horizontal axis
func AtRow(row int, h Anchor) Policy {
	return Policy{Vertical: AnchorFixed, Horizontal: h, Row: row}
}

// AtColumn fixes the column and applies v on the vertical axis
func AtColumn(col int, v Anchor) Policy {
	return Policy{Vertical: v, Horizontal: AnchorFixed, Col: col}
}

func (a Anchor) String() string {
	switch a {
	case AnchorStart:
		return "start"
	case AnchorMiddle:
		return "middle"
	case AnchorEnd:
		return "end"
	case AnchorFixed:
		return "fixed"
	}
	return fmt.Sprintf("anchor(%d)", uint8(a))
}

func (p Policy) String() string {
	v := p.Vertical.String()
	if p.Vertical == AnchorFixed {
		v = fmt.Sprintf("row %d", p.Row)
	}
	h := p.Horizontal.String()
	if p.Horizontal == AnchorFixed {
		h = fmt.Sprintf("col %d", p.Col)
	}
	return v + "/" + h
}

// Align returns the origin for a follower of size (fh, fw) placed against the
// anchor rect (ay, ax, ah, aw) under policy p
func Align(p Policy, fh, fw, ay, ax, ah, aw int) (y, x int) {
	y = place(p.Vertical, p.Row, fh, ay, ah)
	x = place(p.Horizontal, p.Col, fw, ax, aw)
	return y, x
}

// place resolves one axis
func place(a Anchor, fixed, size, start, span int) int {
	start = max(start, 0)
	size = max(size, 0)
	span = max(span, 0)

	if a == AnchorFixed {
		return start + max(fixed, 0)
	}
	if size >= span {
		return start
	}

	switch a {
	case AnchorMiddle:
		return start + (span-size)/2
	case AnchorEnd:
		return start + span - size
	default:
		return start
	}
}

// Aligned is implemented by anything with an outer rect and a content rect
type Aligned interface {
	OuterRect() Rect
	InnerRect() Rect
}

// AlignToOuter places a follower against the anchor's full rect
func AlignToOuter(p Policy, fh, fw int, anchor Aligned) Point {
	r := anchor.OuterRect()
	y, x := Align(p, fh, fw, r.Y, r.X, r.H, r.W)
	return Point{Y: y, X: x}
}

// AlignToInner places a follower against the anchor's content rect
func AlignToInner(p Policy, fh, fw int, anchor Aligned) Point {
	r := anchor.InnerRect()
	y, x := Align(p, fh, fw, r.Y, r.X, r.H, r.W)
	return Point{Y: y, X: x}
}

// Bounds adapts a plain rect to Aligned, inner and outer being the same
type Bounds Rect

func (b Bounds) OuterRect() Rect { return Rect(b) }
func (b Bounds) InnerRect() Rect { return Rect(b) }
