package gameui

import (
	"github.com/lixenwraith/cellui/layout"
	"github.com/lixenwraith/cellui/mapfile"
	"github.com/lixenwraith/cellui/terminal"
	"github.com/lixenwraith/cellui/widget"
)

// Cell codes with a fixed meaning; every other code is open ground
const (
	CodeWall  byte = 0xFF
	CodeWater byte = 0xFE
	CodeDoor  byte = 0xFD
)

const (
	PlayerGlyph = '@'
	FinishGlyph = '>'
)

// Palette maps cell codes to glyphs; codes without an entry show their last decimal digit
type Palette map[byte]rune

// DefaultPalette draws walls, water and doors; ground shows its code
var DefaultPalette = Palette{
	CodeWall:  '#',
	CodeWater: '~',
	CodeDoor:  '+',
}

// Glyph returns the rune drawn for code
func (p Palette) Glyph(code byte) rune {
	if r, ok := p[code]; ok {
		return r
	}
	return rune('0' + code%10)
}

// Passable reports whether the player may step onto code
func Passable(code byte) bool {
	return code != CodeWall && code != CodeWater
}

// MapView draws a scrolling viewport over a map with the player on it
type MapView struct {
	*widget.Window
	palette Palette

	m      *mapfile.Map
	player layout.Point
	view   layout.Point // Map coordinates of the top-left content cell
	moves  int
}

// NewMapView creates a framed, empty view; Load puts a map in it
func NewMapView(t *widget.Tree, y, x, h, w int, b widget.Border) (*MapView, error) {
	win, err := widget.NewBorderedWindow(t, y, x, h, w, b)
	if err != nil {
		return nil, err
	}
	return &MapView{Window: win, palette: DefaultPalette}, nil
}

// SetPalette replaces the glyph palette and redraws
func (v *MapView) SetPalette(p Palette) {
	v.palette = p
	v.render()
}

// Load places the player on the map's start point
func (v *MapView) Load(m *mapfile.Map) {
	v.m = m
	v.player = m.Start
	v.view = layout.Point{}
	v.moves = 0
	v.follow()
	v.render()
}

// Map returns the loaded map, nil before Load
func (v *MapView) Map() *mapfile.Map { return v.m }

// Player returns the player's map position
func (v *MapView) Player() layout.Point { return v.player }

// View returns the map position shown in the top-left content cell
func (v *MapView) View() layout.Point { return v.view }

// Moves counts accepted steps since Load
func (v *MapView) Moves() int { return v.moves }

// AtFinish reports whether the player stands on the finish point
func (v *MapView) AtFinish() bool {
	return v.m != nil && v.player == v.m.Finish
}

// ToggleFrame switches the border and re-fits the viewport to the new content area
func (v *MapView) ToggleFrame() error {
	if err := v.ToggleBorder(); err != nil {
		return err
	}
	v.follow()
	v.render()
	return nil
}

var moveKeys = map[terminal.Key]layout.Point{
	terminal.KeyUp:    {Y: -1},
	terminal.KeyDown:  {Y: 1},
	terminal.KeyLeft:  {X: -1},
	terminal.KeyRight: {X: 1},
}

var moveRunes = map[rune]layout.Point{
	'k': {Y: -1},
	'j': {Y: 1},
	'h': {X: -1},
	'l': {X: 1},
}

// HandleEvent steps the player with the arrow keys or hjkl
// Steps off the map or into impassable cells are refused, as is any step once the finish is reached
func (v *MapView) HandleEvent(ev terminal.Event) bool {
	if v.m == nil || v.AtFinish() || ev.Type != terminal.EventKey || ev.Modifiers != terminal.ModNone {
		return false
	}

	d, ok := moveKeys[ev.Key]
	if ev.Key == terminal.KeyRune {
		d, ok = moveRunes[ev.Rune]
	}
	if !ok {
		return false
	}

	to := layout.Point{Y: v.player.Y + d.Y, X: v.player.X + d.X}
	if !v.m.Bounds().Contains(to.Y, to.X) || !Passable(v.m.At(to.Y, to.X)) {
		return false
	}

	v.player = to
	v.moves++
	v.follow()
	v.render()
	return true
}

// follow scrolls the minimum amount that keeps the player in view, clamped to the map
func (v *MapView) follow() {
	if v.m == nil {
		return
	}
	ch, cw := v.ContentSize()
	v.view.Y = scrollAxis(v.view.Y, v.player.Y, ch, v.m.Height)
	v.view.X = scrollAxis(v.view.X, v.player.X, cw, v.m.Width)
}

func scrollAxis(start, pos, span, size int) int {
	if span <= 0 {
		return 0
	}
	if pos < start {
		start = pos
	}
	if pos >= start+span {
		start = pos - span + 1
	}
	return max(min(start, size-span), 0)
}

func (v *MapView) render() {
	v.Clear()
	if v.m == nil {
		v.HideCursor()
		return
	}

	ch, cw := v.ContentSize()
	for y := range ch {
		for x := range cw {
			my, mx := v.view.Y+y, v.view.X+x
			if v.m.Bounds().Contains(my, mx) {
				v.Putc(y, x, v.palette.Glyph(v.m.At(my, mx)))
			}
		}
	}

	v.Putc(v.m.Finish.Y-v.view.Y, v.m.Finish.X-v.view.X, FinishGlyph)
	py, px := v.player.Y-v.view.Y, v.player.X-v.view.X
	v.Putc(py, px, PlayerGlyph)
	if v.MoveCursor(py, px) {
		v.ShowCursor()
	} else {
		v.HideCursor()
	}
}
