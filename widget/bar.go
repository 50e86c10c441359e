package widget

import "github.com/lixenwraith/cellui/layout"

// BarStyle is the glyph set of a bar: first cap, fill, last cap
type BarStyle struct {
	First, Fill, Last rune
}

// Bar styles
var (
	BarSingle = BarStyle{'├', '─', '┤'}
	BarASCII  = BarStyle{'+', '-', '+'}
	BarPlain  = BarStyle{'─', '─', '─'}
)

// HBar is a one-row rule
type HBar struct {
	handle
	style BarStyle
}

// NewHBar allocates a horizontal bar of the given width; it stays transparent until styled
func NewHBar(t *Tree, y, x, width int) *HBar {
	return &HBar{handle: handle{tree: t, id: t.New(y, x, 1, width)}}
}

// InnerRect equals OuterRect; bars have no frame
func (b *HBar) InnerRect() layout.Rect { return b.OuterRect() }

// Style returns the current glyphs
func (b *HBar) Style() BarStyle { return b.style }

// SetStyle repaints the bar with s
func (b *HBar) SetStyle(s BarStyle) {
	b.style = s
	b.tree.Edit(b.id, func(n *Node) {
		last := max(n.rect.W-1, 0)
		for x := 1; x < last; x++ {
			n.Putc(0, x, s.Fill)
		}
		n.Putc(0, 0, s.First)
		n.Putc(0, last, s.Last)
	})
}

// VBar is a one-column rule
type VBar struct {
	handle
	style BarStyle
}

// NewVBar allocates a vertical bar of the given height
func NewVBar(t *Tree, y, x, height int) *VBar {
	return &VBar{handle: handle{tree: t, id: t.New(y, x, height, 1)}}
}

// InnerRect equals OuterRect
func (b *VBar) InnerRect() layout.Rect { return b.OuterRect() }

// Style returns the current glyphs
func (b *VBar) Style() BarStyle { return b.style }

// SetStyle repaints the bar with s, First on top
func (b *VBar) SetStyle(s BarStyle) {
	b.style = s
	b.tree.Edit(b.id, func(n *Node) {
		last := max(n.rect.H-1, 0)
		for y := 1; y < last; y++ {
			n.Putc(y, 0, s.Fill)
		}
		n.Putc(0, 0, s.First)
		n.Putc(last, 0, s.Last)
	})
}
