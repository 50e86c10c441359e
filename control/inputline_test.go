package control

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/cellui/terminal"
	"github.com/lixenwraith/cellui/widget"
)

// row renders the first row of a window, '.' for transparent cells
func row(w *widget.Window, y int) string {
	var out []rune
	w.Tree().Edit(w.ID(), func(n *widget.Node) {
		for x := 0; x < n.Rect().W; x++ {
			c, _ := n.Cell(y, x)
			if c == widget.Transparent {
				c = '.'
			}
			out = append(out, c)
		}
	})
	return string(out)
}

func cursorOf(w *widget.Window) widget.Cursor {
	var c widget.Cursor
	w.Tree().Edit(w.ID(), func(n *widget.Node) { c = n.Cursor() })
	return c
}

func typeText(c Interactive, s string) {
	for _, r := range s {
		c.HandleEvent(terminal.RuneEvent(r))
	}
}

func TestInputLineScrollsOnceFull(t *testing.T) {
	tr := widget.NewTree()
	l := NewInputLine(tr, 0, 0, 5)
	assert.Equal(t, "_____", row(l.Window, 0))

	steps := []struct {
		in      rune
		visible string
		cursor  int
	}{
		{'a', "a____", 1},
		{'b', "ab___", 2},
		{'c', "abc__", 3},
		{'d', "abcd_", 4},
		{'e', "bcde_", 4},
		{'f', "cdef_", 4},
	}
	for _, s := range steps {
		require.True(t, l.HandleEvent(terminal.RuneEvent(s.in)))
		assert.Equal(t, s.visible, row(l.Window, 0), "after %q", s.in)
		assert.Equal(t, s.cursor, cursorOf(l.Window).X, "after %q", s.in)
	}

	require.True(t, l.HandleEvent(terminal.KeyEvent(terminal.KeyEnter)))
	assert.Equal(t, "cdef", l.Visible())
	assert.Len(t, l.Visible(), 4)

	out, err := l.Peek()
	require.NoError(t, err)
	assert.Equal(t, "abcdef", out)
}

func TestInputLineWideCharactersKeepNewestVisible(t *testing.T) {
	tr := widget.NewTree()
	l := NewInputLine(tr, 0, 0, 5)
	cont := widget.Continuation

	typeText(l, "日本")
	assert.Equal(t, string([]rune{'日', cont, '本', cont, '_'}), row(l.Window, 0))
	assert.Equal(t, 4, cursorOf(l.Window).X)

	typeText(l, "語漢字")
	assert.Equal(t, "漢字", l.Visible())
	assert.Equal(t, string([]rune{'漢', cont, '字', cont, '_'}), row(l.Window, 0))
	assert.Equal(t, 4, cursorOf(l.Window).X)

	// An odd column left over stays blank rather than splitting a character
	typeText(l, "a")
	assert.Equal(t, "字a", l.Visible())
	assert.Equal(t, string([]rune{'字', cont, 'a', '_', '_'}), row(l.Window, 0))
	assert.Equal(t, 3, cursorOf(l.Window).X)

	l.HandleEvent(terminal.KeyEvent(terminal.KeyEnter))
	out, err := l.Take()
	require.NoError(t, err)
	assert.Equal(t, "日本語漢字a", out)
}

func TestTextFieldStateView(t *testing.T) {
	tests := []struct {
		name    string
		text    string
		width   int
		visible string
		cursor  int
	}{
		{"empty", "", 5, "", 0},
		{"short", "abc", 5, "abc", 3},
		{"exactly full", "abcde", 5, "bcde", 4},
		{"overflow", "abcdef", 5, "cdef", 4},
		{"wide overflow", "日本語", 5, "本語", 4},
		{"wide odd column", "日本語", 4, "語", 2},
		{"wide fits", "日本", 5, "日本", 4},
		{"one column", "abc", 1, "", 0},
		{"no columns", "abc", 0, "", 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, c := NewTextFieldState(tt.text).View(tt.width)
			assert.Equal(t, tt.visible, v)
			assert.Equal(t, tt.cursor, c)
		})
	}
}

func TestTextFieldStateEditing(t *testing.T) {
	s := NewTextFieldState("")
	assert.False(t, s.DeleteBackward())

	s.Insert('e')
	s.Insert('\u0301') // Combining accent joins the previous character
	s.Insert('x')
	assert.Equal(t, 2, s.Width())
	require.True(t, s.DeleteBackward())
	require.True(t, s.DeleteBackward())
	assert.Equal(t, "", s.Value())

	s.SetValue("abc")
	s.Clear()
	assert.Equal(t, "", s.Value())
}

func TestInputLineBackspace(t *testing.T) {
	tr := widget.NewTree()
	l := NewInputLine(tr, 0, 0, 4)
	typeText(l, "hello")
	assert.Equal(t, "llo_", row(l.Window, 0))

	l.HandleEvent(terminal.KeyEvent(terminal.KeyBackspace))
	assert.Equal(t, "ell_", row(l.Window, 0))
	l.HandleEvent(terminal.KeyEvent(terminal.KeyBackspace))
	assert.Equal(t, "hel_", row(l.Window, 0))
	assert.Equal(t, 3, cursorOf(l.Window).X)
	l.HandleEvent(terminal.KeyEvent(terminal.KeyBackspace))
	assert.Equal(t, "he__", row(l.Window, 0))
	assert.Equal(t, 2, cursorOf(l.Window).X)

	l.HandleEvent(terminal.KeyEvent(terminal.KeyBackspace))
	l.HandleEvent(terminal.KeyEvent(terminal.KeyBackspace))
	assert.False(t, l.HandleEvent(terminal.KeyEvent(terminal.KeyBackspace)), "empty buffer")
	assert.Equal(t, "____", row(l.Window, 0))
	assert.Equal(t, "", l.Text())
}

func TestInputLineFiltersKeys(t *testing.T) {
	tr := widget.NewTree()
	l := NewInputLine(tr, 0, 0, 20)

	for _, r := range "aZ9 !~é" {
		assert.True(t, l.HandleEvent(terminal.RuneEvent(r)), "%q", r)
	}
	assert.False(t, l.HandleEvent(terminal.RuneEvent('\t')))
	assert.False(t, l.HandleEvent(terminal.KeyEvent(terminal.KeyLeft)))
	assert.False(t, l.HandleEvent(terminal.KeyEvent(terminal.KeyF1)))
	assert.False(t, l.HandleEvent(terminal.Event{Type: terminal.EventKey, Key: terminal.KeyRune, Rune: 'x', Modifiers: terminal.ModCtrl}))
	assert.False(t, l.HandleEvent(terminal.ClickEvent(0, 0)))
	assert.Equal(t, "aZ9 !~é", l.Text())
}

func TestInputLineOutputLifecycle(t *testing.T) {
	tr := widget.NewTree()
	l := NewInputLine(tr, 0, 0, 8)
	typeText(l, "abc")

	// Reading early never disturbs the buffer
	for range 3 {
		_, err := l.Peek()
		assert.ErrorIs(t, err, ErrOutputNotReady)
		_, err = l.Take()
		assert.ErrorIs(t, err, ErrOutputNotReady)
	}
	assert.Equal(t, "abc", l.Text())
	assert.Equal(t, StateActive, l.State())
	assert.False(t, l.Ready())

	l.HandleEvent(terminal.KeyEvent(terminal.KeyEnter))
	assert.Equal(t, StateReady, l.State())
	assert.False(t, l.HandleEvent(terminal.RuneEvent('x')), "ready is terminal")

	v1, err := l.Peek()
	require.NoError(t, err)
	v2, err := l.Peek()
	require.NoError(t, err)
	assert.Equal(t, v1, v2)

	v, err := l.Take()
	require.NoError(t, err)
	assert.Equal(t, "abc", v)
	assert.Equal(t, StateConsumed, l.State())
	_, err = l.Take()
	assert.ErrorIs(t, err, ErrOutputConsumed)

	l.Reset()
	assert.Equal(t, StateActive, l.State())
	assert.Equal(t, "", l.Text())
	assert.Equal(t, "________", row(l.Window, 0))
}

func TestInputLineInactive(t *testing.T) {
	tr := widget.NewTree()
	l := NewInputLine(tr, 0, 0, 5)
	typeText(l, "ab")

	l.SetInactive()
	assert.Equal(t, "ab   ", row(l.Window, 0))
	assert.True(t, cursorOf(l.Window).Hidden)
	assert.Equal(t, StateInactive, l.State())
	assert.False(t, l.HandleEvent(terminal.RuneEvent('c')))

	l.SetActive()
	assert.Equal(t, "ab___", row(l.Window, 0))
	assert.False(t, cursorOf(l.Window).Hidden)
}

func TestInputLineZeroLengthIsInert(t *testing.T) {
	tr := widget.NewTree()
	l := NewInputLine(tr, 0, 0, 0)
	assert.NotPanics(t, func() {
		assert.False(t, l.HandleEvent(terminal.RuneEvent('a')))
		assert.False(t, l.HandleEvent(terminal.KeyEvent(terminal.KeyEnter)))
		l.SetInactive()
		l.Reset()
	})
	_, err := l.Peek()
	assert.ErrorIs(t, err, ErrOutputNotReady)
}

func TestPromptMovesAsOne(t *testing.T) {
	tr := widget.NewTree()
	p := NewPrompt(tr, 1, 2, "Name:", 6)
	assert.Equal(t, "Name:", row(p.Window, 0))
	assert.Equal(t, 8, p.Input().OuterRect().X)

	require.NoError(t, p.MoveTo(4, 0))
	assert.Equal(t, 4, p.Input().OuterRect().Y)
	assert.Equal(t, 6, p.Input().OuterRect().X)

	typeText(p, "bob")
	p.HandleEvent(terminal.KeyEvent(terminal.KeyEnter))
	v, err := p.Take()
	require.NoError(t, err)
	assert.Equal(t, "bob", v)
	assert.Equal(t, StateConsumed, p.State())
}
