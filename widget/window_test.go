package widget

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/cellui/layout"
)

func windowRows(w *Window) []string {
	r := w.OuterRect()
	rows := make([]string, r.H)
	for y := range rows {
		rows[y] = rowText(w.Tree(), w.ID(), y)
	}
	return rows
}

func TestWindowToggleBorderShiftsContent(t *testing.T) {
	tr := NewTree()
	w := NewWindow(tr, 0, 0, 24, 80)
	w.SetBorder(BorderHash)
	w.Print(0, 0, "hello")
	w.Print(3, 7, "x")

	require.NoError(t, w.ToggleBorder())
	assert.True(t, w.Bordered())

	rows := windowRows(w)
	assert.Equal(t, strings.Repeat("#", 80), rows[0])
	assert.Equal(t, strings.Repeat("#", 80), rows[23])
	tr.Edit(w.ID(), func(n *Node) {
		c, _ := n.Cell(1, 1)
		assert.Equal(t, 'h', c)
		c, _ = n.Cell(4, 8)
		assert.Equal(t, 'x', c)
		for y := 0; y < 24; y++ {
			c, _ = n.Cell(y, 0)
			assert.Equal(t, '#', c)
			c, _ = n.Cell(y, 79)
			assert.Equal(t, '#', c)
		}
	})
}

func TestWindowToggleBorderRoundTrip(t *testing.T) {
	for _, start := range []bool{false, true} {
		tr := NewTree()
		w := NewWindow(tr, 2, 3, 5, 7)
		w.SetBorder(BorderDouble)
		if start {
			require.NoError(t, w.ToggleBorder())
		}
		// Fill every reachable cell, including the last row and column
		ch, cw := w.ContentSize()
		for y := 0; y < ch; y++ {
			w.Print(y, 0, strings.Repeat(string(rune('a'+y)), cw))
		}
		before := windowRows(w)

		require.NoError(t, w.ToggleBorder())
		require.NoError(t, w.ToggleBorder())
		assert.Equal(t, before, windowRows(w), "bordered at start: %v", start)
		assert.Equal(t, start, w.Bordered())
	}
}

func TestWindowToggleOffAfterWrites(t *testing.T) {
	tr := NewTree()
	w := NewWindow(tr, 0, 0, 4, 6)
	w.SetBorder(BorderASCII)
	w.Print(0, 0, "abcd")

	require.NoError(t, w.ToggleBorder())
	assert.Equal(t, []string{"+----+", "|abcd|", "|....|", "+----+"}, windowRows(w))

	w.Print(1, 0, "xy")
	require.NoError(t, w.ToggleBorder())
	assert.Equal(t, []string{"abcd..", "xy....", "......", "......"}, windowRows(w))
}

func TestWindowBorderTooSmall(t *testing.T) {
	tr := NewTree()
	w := NewWindow(tr, 0, 0, 1, 5)
	assert.ErrorIs(t, w.ToggleBorder(), ErrTooSmall)
	assert.False(t, w.Bordered())

	bw, err := NewBorderedWindow(tr, 0, 0, 5, 1, BorderSingle)
	assert.ErrorIs(t, err, ErrTooSmall)
	assert.Nil(t, bw)
	assert.Equal(t, 1, tr.Len(), "failed window is released")
}

func TestWindowDegenerateContent(t *testing.T) {
	tr := NewTree()
	w, err := NewBorderedWindow(tr, 0, 0, 2, 2, BorderASCII)
	require.NoError(t, err)

	h, wd := w.ContentSize()
	assert.Zero(t, h)
	assert.Zero(t, wd)
	assert.NotPanics(t, func() {
		assert.Zero(t, w.Print(0, 0, "abc"))
		w.Putc(0, 0, 'x')
		w.ClearLine(0)
		w.Printj(JustifyCenter, "abc")
		assert.False(t, w.MoveCursor(0, 0))
	})
	assert.Equal(t, []string{"++", "++"}, windowRows(w))
}

func TestWindowContentCoordinates(t *testing.T) {
	tr := NewTree()
	w, err := NewBorderedWindow(tr, 1, 1, 3, 5, BorderASCII)
	require.NoError(t, err)

	assert.Equal(t, layout.Rect{Y: 1, X: 1, H: 3, W: 5}, w.OuterRect())
	assert.Equal(t, layout.Rect{Y: 2, X: 2, H: 1, W: 3}, w.InnerRect())

	assert.Equal(t, 2, w.Print(0, 1, "abcdef"))
	assert.Equal(t, "|.ab|", windowRows(w)[1])

	w.ClearLine(0)
	assert.Equal(t, "|...|", windowRows(w)[1])

	w.Putc(0, 2, 'z')
	w.Clear()
	assert.Equal(t, []string{"+---+", "|...|", "+---+"}, windowRows(w))

	require.True(t, w.MoveCursor(0, 2))
	tr.Edit(w.ID(), func(n *Node) {
		assert.Equal(t, Cursor{Y: 1, X: 3, Hidden: true}, n.Cursor())
	})

	// Content is three wide; the frame column is off limits
	assert.False(t, w.AdvanceCursor(1))
	require.True(t, w.AdvanceCursor(-2))
	assert.False(t, w.AdvanceCursor(-1))
	tr.Edit(w.ID(), func(n *Node) {
		assert.Equal(t, 1, n.Cursor().X)
	})
}

func TestWindowSetBorderRedraws(t *testing.T) {
	tr := NewTree()
	w, err := NewBorderedWindow(tr, 0, 0, 3, 3, BorderASCII)
	require.NoError(t, err)
	w.SetBorder(BorderHash)
	assert.Equal(t, []string{"###", "#.#", "###"}, windowRows(w))

	w.SetBorder(Border{Horizontal: '='})
	assert.Equal(t, []string{"===", "...", "==="}, windowRows(w))
}

func TestWindowPrintj(t *testing.T) {
	tr := NewTree()
	w, err := NewBorderedWindow(tr, 0, 0, 5, 12, BorderASCII)
	require.NoError(t, err)

	w.Printj(JustifyCenter, "abcd")
	w.Printj(JustifyRight(0), "xy")
	w.Printj(JustifyLeft(0), "L")
	w.Printj(JustifyHCenter(0), "c")
	w.Printj(JustifyBottom(2), "z")
	w.Printj(JustifyBottomRight, "end")
	w.Printj(JustifyTop(9), "q")

	assert.Equal(t, []string{
		"+----------+",
		"|L...c...xq|",
		"|...abcd...|",
		"|..z....end|",
		"+----------+",
	}, windowRows(w))
}

func TestWindowMoveCarriesChildren(t *testing.T) {
	tr := NewTree()
	w := NewWindow(tr, 1, 1, 5, 10)
	bar := NewHBar(tr, 2, 2, 4)
	require.NoError(t, w.Attach(bar.ID()))

	require.NoError(t, w.MoveTo(4, 6))
	assert.Equal(t, layout.Point{Y: 4, X: 6}, w.OuterRect().Origin())
	assert.Equal(t, layout.Point{Y: 5, X: 7}, bar.OuterRect().Origin())

	assert.ErrorIs(t, w.Translate(-5, 0), layout.ErrNegativeOrigin)
	assert.Equal(t, layout.Point{Y: 5, X: 7}, bar.OuterRect().Origin())
}

func TestWindowAlign(t *testing.T) {
	tr := NewTree()
	anchor, err := NewBorderedWindow(tr, 0, 0, 10, 20, BorderSingle)
	require.NoError(t, err)
	w := NewWindow(tr, 0, 0, 3, 4)

	require.NoError(t, w.AlignToInner(anchor, layout.BottomRight))
	assert.Equal(t, layout.Point{Y: 6, X: 15}, w.OuterRect().Origin())

	require.NoError(t, w.AlignToOuter(anchor, layout.BottomRight))
	assert.Equal(t, layout.Point{Y: 7, X: 16}, w.OuterRect().Origin())

	require.NoError(t, w.AlignCenters(anchor))
	assert.Equal(t, layout.Point{Y: 3, X: 8}, w.OuterRect().Origin())

	// Taller than the anchor: flush with its top, still centered across
	tall := NewWindow(tr, 4, 4, 12, 4)
	require.NoError(t, tall.AlignCenters(anchor))
	assert.Equal(t, layout.Point{Y: 0, X: 8}, tall.OuterRect().Origin())
}

func TestBars(t *testing.T) {
	tr := NewTree()
	h := NewHBar(tr, 0, 0, 5)
	assert.Equal(t, ".....", rowText(tr, h.ID(), 0))
	h.SetStyle(BarASCII)
	assert.Equal(t, "+---+", rowText(tr, h.ID(), 0))

	v := NewVBar(tr, 0, 0, 3)
	v.SetStyle(BarStyle{'^', '|', 'v'})
	assert.Equal(t, "^", rowText(tr, v.ID(), 0))
	assert.Equal(t, "|", rowText(tr, v.ID(), 1))
	assert.Equal(t, "v", rowText(tr, v.ID(), 2))
	assert.Equal(t, v.OuterRect(), v.InnerRect())
}
