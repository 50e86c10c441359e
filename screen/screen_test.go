package screen

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/cellui/layout"
	"github.com/lixenwraith/cellui/terminal"
	"github.com/lixenwraith/cellui/widget"
)

type cellWrite struct {
	r    rune
	attr terminal.Attr
}

// fakeTerm records what the compositor writes
type fakeTerm struct {
	w, h          int
	cells         map[[2]int]cellWrite // keyed by (y, x)
	cursorX       int
	cursorY       int
	cursorVisible bool
	flushes       int
	inits, finis  int
}

func newFakeTerm(w, h int) *fakeTerm {
	return &fakeTerm{w: w, h: h, cells: make(map[[2]int]cellWrite)}
}

func (f *fakeTerm) Init() error                  { f.inits++; return nil }
func (f *fakeTerm) Fini()                        { f.finis++ }
func (f *fakeTerm) Size() (int, int)             { return f.w, f.h }
func (f *fakeTerm) MoveCursor(x, y int)          { f.cursorX, f.cursorY = x, y }
func (f *fakeTerm) SetCursorVisible(v bool)      { f.cursorVisible = v }
func (f *fakeTerm) Flush()                       { f.flushes++ }
func (f *fakeTerm) PollEvent() terminal.Event    { return terminal.Event{Type: terminal.EventClosed} }
func (f *fakeTerm) PostEvent(terminal.Event) error { return nil }
func (f *fakeTerm) EnableMouse(bool)             {}
func (f *fakeTerm) SetCell(x, y int, r rune, attr terminal.Attr) {
	f.cells[[2]int{y, x}] = cellWrite{r, attr}
}

func newScreen(t *testing.T, rows, cols int) (*Screen, *fakeTerm) {
	t.Helper()
	ft := newFakeTerm(cols, rows)
	s := New(ft, widget.NewTree())
	require.NoError(t, s.Init(rows, cols))
	return s, ft
}

func gridRow(s *Screen, y int) string {
	var b strings.Builder
	for x := 0; x < s.Cols(); x++ {
		c := s.Cell(y, x)
		if c == widget.Transparent {
			c = '.'
		}
		b.WriteRune(c)
	}
	return b.String()
}

func fill(tr *widget.Tree, id widget.ID, c rune) {
	tr.Edit(id, func(n *widget.Node) { n.Fill(c) })
}

func TestInitTooSmall(t *testing.T) {
	ft := newFakeTerm(40, 10)
	s := New(ft, widget.NewTree())

	err := s.Init(24, 80)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrTerminalTooSmall))

	var se *SizeError
	require.ErrorAs(t, err, &se)
	assert.Equal(t, 24, se.Rows)
	assert.Equal(t, 10, se.HaveRows)
	assert.Equal(t, 1, ft.finis, "terminal released on failure")
}

func TestInitAllocatesBlankGrid(t *testing.T) {
	s, ft := newScreen(t, 3, 4)
	assert.Equal(t, 1, ft.inits)
	assert.Equal(t, "....", gridRow(s, 0))
	assert.Equal(t, layout.Rect{H: 3, W: 4}, s.OuterRect())
}

func TestDrawHigherZWins(t *testing.T) {
	for _, order := range []string{"low first", "high first"} {
		t.Run(order, func(t *testing.T) {
			s, _ := newScreen(t, 4, 6)
			tr := s.Tree()
			a := widget.NewWindow(tr, 1, 1, 2, 3)
			b := widget.NewWindow(tr, 1, 1, 2, 3)
			fill(tr, a.ID(), 'a')
			fill(tr, b.ID(), 'b')
			a.SetZ(1)
			b.SetZ(2)

			if order == "low first" {
				s.AddWidget(a)
				s.AddWidget(b)
			} else {
				s.AddWidget(b)
				s.AddWidget(a)
			}
			s.Draw()

			for y := 1; y <= 2; y++ {
				for x := 1; x <= 3; x++ {
					assert.Equal(t, 'b', s.Cell(y, x))
				}
			}
		})
	}
}

func TestDrawEqualZKeepsInsertionOrder(t *testing.T) {
	s, _ := newScreen(t, 1, 3)
	tr := s.Tree()
	first := widget.NewWindow(tr, 0, 0, 1, 3)
	second := widget.NewWindow(tr, 0, 0, 1, 3)
	fill(tr, first.ID(), '1')
	fill(tr, second.ID(), '2')

	s.AddWidget(first)
	s.AddWidget(second)
	s.Draw()
	assert.Equal(t, "222", gridRow(s, 0))
}

func TestDrawTransparencyAndVisibility(t *testing.T) {
	s, _ := newScreen(t, 2, 5)
	tr := s.Tree()
	bg := widget.NewWindow(tr, 0, 0, 2, 5)
	fill(tr, bg.ID(), '-')
	fg := widget.NewWindow(tr, 0, 0, 2, 5)
	fg.SetZ(5)
	fg.Print(0, 1, "xy")
	s.AddWidget(bg)
	s.AddWidget(fg)

	s.Draw()
	assert.Equal(t, "-xy--", gridRow(s, 0))

	bg.Hide()
	s.Draw()
	assert.Equal(t, ".xy..", gridRow(s, 0))
	assert.Equal(t, ".....", gridRow(s, 1))
}

func TestDrawChildren(t *testing.T) {
	s, _ := newScreen(t, 3, 6)
	tr := s.Tree()
	parent := widget.NewWindow(tr, 0, 0, 3, 6)
	fill(tr, parent.ID(), 'p')

	high := widget.NewWindow(tr, 1, 1, 1, 3)
	fill(tr, high.ID(), 'h')
	high.SetZ(9)
	low := widget.NewWindow(tr, 1, 2, 1, 3)
	fill(tr, low.ID(), 'l')
	low.SetZ(0)

	// Siblings are ordered by z regardless of attach order; all paint after the parent
	require.NoError(t, parent.Attach(high.ID()))
	require.NoError(t, parent.Attach(low.ID()))
	s.AddWidget(parent)
	s.Draw()
	assert.Equal(t, "phhhlp", gridRow(s, 1))

	// Hiding the parent hides the subtree
	parent.Hide()
	s.Draw()
	assert.Equal(t, "......", gridRow(s, 1))
}

func TestDrawClipsPerAxis(t *testing.T) {
	s, _ := newScreen(t, 3, 4)
	tr := s.Tree()
	w := widget.NewWindow(tr, 2, 2, 5, 5)
	fill(tr, w.ID(), 'w')
	off := widget.NewWindow(tr, 10, 10, 2, 2)
	fill(tr, off.ID(), 'o')
	empty := widget.NewWindow(tr, 0, 0, 0, 0)

	s.AddWidget(w)
	s.AddWidget(off)
	s.AddWidget(empty)
	assert.NotPanics(t, s.Draw)

	assert.Equal(t, "....", gridRow(s, 0))
	assert.Equal(t, "....", gridRow(s, 1))
	assert.Equal(t, "..ww", gridRow(s, 2))
}

func TestDrawCursorDeepestWins(t *testing.T) {
	s, _ := newScreen(t, 5, 10)
	tr := s.Tree()
	outer := widget.NewWindow(tr, 0, 0, 5, 10)
	outer.MoveCursor(0, 0)
	outer.ShowCursor()
	inner := widget.NewWindow(tr, 2, 3, 1, 4)
	inner.MoveCursor(0, 2)
	inner.ShowCursor()
	require.NoError(t, outer.Attach(inner.ID()))
	s.AddWidget(outer)

	s.Draw()
	p, ok := s.Cursor()
	require.True(t, ok)
	assert.Equal(t, layout.Point{Y: 2, X: 5}, p)

	inner.HideCursor()
	s.Draw()
	p, ok = s.Cursor()
	require.True(t, ok)
	assert.Equal(t, layout.Point{}, p)

	outer.HideCursor()
	s.Draw()
	_, ok = s.Cursor()
	assert.False(t, ok)
}

func TestRefresh(t *testing.T) {
	s, ft := newScreen(t, 2, 4)
	tr := s.Tree()
	w := widget.NewWindow(tr, 0, 0, 1, 4)
	w.Print(0, 0, "ab")
	w.MoveCursor(0, 1)
	w.ShowCursor()
	s.AddWidget(w)

	s.Draw()
	s.Refresh()

	assert.Equal(t, cellWrite{'a', terminal.AttrNone}, ft.cells[[2]int{0, 0}])
	assert.Equal(t, cellWrite{'b', terminal.AttrReverse}, ft.cells[[2]int{0, 1}])
	assert.Equal(t, cellWrite{' ', terminal.AttrNone}, ft.cells[[2]int{1, 3}])
	assert.Equal(t, 1, ft.cursorX)
	assert.Equal(t, 0, ft.cursorY)
	assert.Equal(t, 1, ft.flushes)
}

func TestRefreshWideCharacters(t *testing.T) {
	s, ft := newScreen(t, 1, 4)
	tr := s.Tree()
	w := widget.NewWindow(tr, 0, 0, 1, 4)
	w.Print(0, 0, "世a")
	s.AddWidget(w)

	s.Draw()
	s.Refresh()
	assert.Equal(t, '世', ft.cells[[2]int{0, 0}].r)
	_, wrote := ft.cells[[2]int{0, 1}]
	assert.False(t, wrote, "tail of a wide character is left to the terminal")
	assert.Equal(t, 'a', ft.cells[[2]int{0, 2}].r)

	// A narrow character over the head leaves an orphan tail, shown blank
	top := widget.NewWindow(tr, 0, 0, 1, 1)
	top.SetZ(2)
	top.Putc(0, 0, 'x')
	s.AddWidget(top)
	s.Draw()
	s.Refresh()
	assert.Equal(t, ' ', ft.cells[[2]int{0, 1}].r)
}

func TestRefreshWideCharacterSplitByOverlap(t *testing.T) {
	s, ft := newScreen(t, 1, 5)
	tr := s.Tree()
	low := widget.NewWindow(tr, 0, 0, 1, 5)
	low.Print(0, 0, "a世b")
	s.AddWidget(low)

	// A wide rune from another node lands on the head; the tail at x+1 is not its own
	top := widget.NewWindow(tr, 0, 1, 1, 1)
	top.SetZ(2)
	top.Putc(0, 0, '日')
	s.AddWidget(top)

	s.Draw()
	s.Refresh()
	assert.Equal(t, '日', s.Cell(0, 1))
	assert.Equal(t, widget.Continuation, s.Cell(0, 2))
	assert.Equal(t, ' ', ft.cells[[2]int{0, 1}].r, "head without its own tail")
	assert.Equal(t, ' ', ft.cells[[2]int{0, 2}].r, "tail without its own head")
	assert.Equal(t, 'b', ft.cells[[2]int{0, 3}].r)
}

func TestRefreshWideCharacterTailCovered(t *testing.T) {
	s, ft := newScreen(t, 1, 3)
	tr := s.Tree()
	low := widget.NewWindow(tr, 0, 0, 1, 3)
	low.Print(0, 0, "世")
	s.AddWidget(low)

	top := widget.NewWindow(tr, 0, 1, 1, 1)
	top.SetZ(2)
	top.Putc(0, 0, 'x')
	s.AddWidget(top)

	s.Draw()
	s.Refresh()
	assert.Equal(t, ' ', ft.cells[[2]int{0, 0}].r)
	assert.Equal(t, 'x', ft.cells[[2]int{0, 1}].r)
}

func TestRefreshWideCharacterClippedAtEdge(t *testing.T) {
	s, ft := newScreen(t, 1, 4)
	tr := s.Tree()
	w := widget.NewWindow(tr, 0, 3, 1, 2)
	w.Print(0, 0, "日")
	s.AddWidget(w)

	s.Draw()
	s.Refresh()
	assert.Equal(t, '日', s.Cell(0, 3))
	assert.Equal(t, ' ', ft.cells[[2]int{0, 3}].r, "no room for the tail")

	// Moving back on screen restores the pair
	require.NoError(t, tr.MoveTo(w.ID(), 0, 2))
	s.Draw()
	s.Refresh()
	assert.Equal(t, '日', ft.cells[[2]int{0, 2}].r)
	assert.Equal(t, widget.Continuation, s.Cell(0, 3))
}

func TestBorderedWindowScenario(t *testing.T) {
	s, _ := newScreen(t, 24, 80)
	tr := s.Tree()
	w := widget.NewWindow(tr, 0, 0, 24, 80)
	w.SetBorder(widget.BorderHash)
	w.Print(0, 0, "@ start")
	s.AddWidget(w)

	s.Draw()
	before := s.Cell(0, 0)
	require.Equal(t, '@', before)

	require.NoError(t, w.ToggleBorder())
	s.Draw()
	assert.Equal(t, strings.Repeat("#", 80), gridRow(s, 0))
	assert.Equal(t, before, s.Cell(1, 1))

	require.NoError(t, w.ToggleBorder())
	s.Draw()
	assert.Equal(t, "@ start", gridRow(s, 0)[:7])
}

func TestRemoveWidget(t *testing.T) {
	s, _ := newScreen(t, 1, 3)
	tr := s.Tree()
	a := widget.NewWindow(tr, 0, 0, 1, 3)
	fill(tr, a.ID(), 'a')
	b := widget.NewWindow(tr, 0, 0, 1, 1)
	fill(tr, b.ID(), 'b')

	s.AddWidget(a)
	s.AddWidget(a)
	s.AddWidget(b)
	assert.Len(t, s.Roots(), 2)

	s.RemoveWidget(a)
	s.Draw()
	assert.Equal(t, "b..", gridRow(s, 0))

	// Released roots fall out of the frame
	b.Release()
	s.Draw()
	assert.Equal(t, "...", gridRow(s, 0))
	assert.Empty(t, s.Roots())
}
