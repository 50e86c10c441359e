package control

import (
	"strings"
	"unicode"

	"github.com/lixenwraith/cellui/terminal"
	"github.com/lixenwraith/cellui/widget"
)

const (
	BlankActive   = '_'
	BlankInactive = ' '
)

// InputLine is a one-row text field of fixed width over an unbounded buffer
// Short text is shown from column 0 with the cursor after it; once the text
// fills the field, the most recent characters fitting length-1 columns are shown
// and the final column stays blank under the cursor
type InputLine struct {
	*widget.Window
	result[string]

	length int
	field  TextFieldState
	active bool
}

var _ Output[string] = (*InputLine)(nil)

// NewInputLine creates an active field at absolute (y, x)
func NewInputLine(t *widget.Tree, y, x, length int) *InputLine {
	l := &InputLine{
		Window: widget.NewWindow(t, y, x, 1, length),
		length: max(length, 0),
		active: true,
	}
	l.state = StateActive
	l.ShowCursor()
	l.render()
	return l
}

// Length returns the field width
func (l *InputLine) Length() int { return l.length }

// Text returns the whole logical text
func (l *InputLine) Text() string { return l.field.Value() }

// Visible returns the part of the text currently shown
func (l *InputLine) Visible() string {
	v, _ := l.field.View(l.length)
	return v
}

// SetText replaces the text and redraws
func (l *InputLine) SetText(s string) {
	l.field.SetValue(s)
	l.render()
}

// Active reports whether the field takes input
func (l *InputLine) Active() bool { return l.active }

// SetActive shows '_' blanks and the cursor and accepts input
func (l *InputLine) SetActive() {
	l.active = true
	l.ShowCursor()
	l.render()
}

// SetInactive shows blank spaces, hides the cursor and ignores input
func (l *InputLine) SetInactive() {
	l.active = false
	l.HideCursor()
	l.render()
}

// State reports the lifecycle position
func (l *InputLine) State() State {
	if l.state == StateActive && !l.active {
		return StateInactive
	}
	return l.state
}

// Reset empties the field and resumes editing
func (l *InputLine) Reset() {
	l.clear()
	l.field.Clear()
	l.render()
}

// HandleEvent appends printable characters, deletes on Backspace and commits on Enter
func (l *InputLine) HandleEvent(ev terminal.Event) bool {
	if !l.active || l.done() || l.length == 0 || ev.Type != terminal.EventKey {
		return false
	}

	switch ev.Key {
	case terminal.KeyEnter:
		l.commit(l.field.Value())
		return true

	case terminal.KeyBackspace:
		if !l.field.DeleteBackward() {
			return false
		}
		l.render()
		return true

	case terminal.KeyRune:
		if ev.Modifiers&(terminal.ModCtrl|terminal.ModAlt) != 0 || !Printable(ev.Rune) {
			return false
		}
		l.field.Insert(ev.Rune)
		l.render()
		return true
	}
	return false
}

// Printable reports whether r may be typed into a field: letters, digits, ASCII punctuation and symbols, space
func Printable(r rune) bool {
	switch {
	case r == ' ':
		return true
	case unicode.IsLetter(r), unicode.IsNumber(r):
		return true
	case r < unicode.MaxASCII && (unicode.IsPunct(r) || unicode.IsSymbol(r)):
		return true
	}
	return false
}

func (l *InputLine) render() {
	if l.length == 0 {
		return
	}
	blank := BlankInactive
	if l.active {
		blank = BlankActive
	}

	visible, cursor := l.field.View(l.length)
	l.Print(0, 0, strings.Repeat(string(blank), l.length))
	l.Print(0, 0, visible)
	l.MoveCursor(0, min(cursor, l.length-1))
}
