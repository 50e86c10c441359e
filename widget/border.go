package widget

// NoGlyph omits one border position
const NoGlyph rune = 0

// Border describes the six glyphs of a window frame
// Any position set to NoGlyph is left transparent
type Border struct {
	Horizontal  rune // Top and bottom bars
	Vertical    rune // Left and right bars
	TopLeft     rune
	TopRight    rune
	BottomLeft  rune
	BottomRight rune
}

// Border presets
var (
	BorderSingle  = Border{'─', '│', '┌', '┐', '└', '┘'}
	BorderDouble  = Border{'═', '║', '╔', '╗', '╚', '╝'}
	BorderRounded = Border{'─', '│', '╭', '╮', '╰', '╯'}
	BorderHeavy   = Border{'━', '┃', '┏', '┓', '┗', '┛'}
	BorderASCII   = Border{'-', '|', '+', '+', '+', '+'}
	BorderHash    = UniformBorder('#')
)

var namedBorders = map[string]Border{
	"single":  BorderSingle,
	"double":  BorderDouble,
	"rounded": BorderRounded,
	"heavy":   BorderHeavy,
	"ascii":   BorderASCII,
	"hash":    BorderHash,
}

// UniformBorder uses one glyph for all six positions
func UniformBorder(c rune) Border {
	return Border{c, c, c, c, c, c}
}

// BorderNamed looks up a preset by its config name
func BorderNamed(name string) (Border, bool) {
	b, ok := namedBorders[name]
	return b, ok
}

// drawBorder clears the outer ring of n and paints b over it
func drawBorder(n *Node, b Border) {
	h, w := n.rect.H, n.rect.W
	if h < 2 || w < 2 {
		return
	}

	clearRing(n)

	if b.Horizontal != NoGlyph {
		for x := 0; x < w; x++ {
			n.Putc(0, x, b.Horizontal)
			n.Putc(h-1, x, b.Horizontal)
		}
	}
	if b.Vertical != NoGlyph {
		for y := 0; y < h; y++ {
			n.Putc(y, 0, b.Vertical)
			n.Putc(y, w-1, b.Vertical)
		}
	}
	if b.TopLeft != NoGlyph {
		n.Putc(0, 0, b.TopLeft)
	}
	if b.TopRight != NoGlyph {
		n.Putc(0, w-1, b.TopRight)
	}
	if b.BottomLeft != NoGlyph {
		n.Putc(h-1, 0, b.BottomLeft)
	}
	if b.BottomRight != NoGlyph {
		n.Putc(h-1, w-1, b.BottomRight)
	}
}

func clearRing(n *Node) {
	h, w := n.rect.H, n.rect.W
	for x := 0; x < w; x++ {
		n.Putc(0, x, Transparent)
		n.Putc(h-1, x, Transparent)
	}
	for y := 0; y < h; y++ {
		n.Putc(y, 0, Transparent)
		n.Putc(y, w-1, Transparent)
	}
}

// shiftIn moves content one cell down and right, making room for a frame
func shiftIn(n *Node) {
	h, w := n.rect.H, n.rect.W
	for y := h - 1; y >= 1; y-- {
		for x := w - 1; x >= 1; x-- {
			n.cells[y*w+x] = n.cells[(y-1)*w+x-1]
		}
	}
	n.revision++
}

// shiftOut moves content one cell up and left, blanking the vacated last row and column
func shiftOut(n *Node) {
	h, w := n.rect.H, n.rect.W
	for y := 0; y < h-1; y++ {
		for x := 0; x < w-1; x++ {
			n.cells[y*w+x] = n.cells[(y+1)*w+x+1]
		}
	}
	for x := 0; x < w; x++ {
		n.cells[(h-1)*w+x] = Transparent
	}
	for y := 0; y < h; y++ {
		n.cells[y*w+w-1] = Transparent
	}
	n.revision++
}
