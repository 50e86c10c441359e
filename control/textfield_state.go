package control

import (
	"github.com/lixenwraith/cellui/widget"
)

// TextFieldState holds the text of an append-only field and the window onto it
// The cursor always sits after the last character; editing happens at the end
type TextFieldState struct {
	Text string
}

// NewTextFieldState creates initialized text field state
func NewTextFieldState(initial string) *TextFieldState {
	return &TextFieldState{Text: initial}
}

// --- Value access ---

// Value returns current text
func (t *TextFieldState) Value() string { return t.Text }

// SetValue replaces text
func (t *TextFieldState) SetValue(s string) { t.Text = s }

// Clear empties the field
func (t *TextFieldState) Clear() { t.Text = "" }

// Width returns the display columns of the whole text
func (t *TextFieldState) Width() int { return widget.TextWidth(t.Text) }

// --- Editing ---

// Insert appends r
func (t *TextFieldState) Insert(r rune) {
	t.Text += string(r)
}

// DeleteBackward removes the last visual character
func (t *TextFieldState) DeleteBackward() bool {
	if t.Text == "" {
		return false
	}
	t.Text = widget.DropLast(t.Text)
	return true
}

// --- Viewport ---

// View returns the text shown in a field of viewportW columns and the cursor column
// Text narrower than the field is shown whole; otherwise the most recent
// characters filling at most viewportW-1 columns, leaving the cursor a free column
func (t *TextFieldState) View(viewportW int) (visible string, cursor int) {
	if viewportW <= 0 {
		return "", 0
	}
	w := t.Width()
	if w < viewportW {
		return t.Text, w
	}
	visible = widget.TailWidth(t.Text, viewportW-1)
	return visible, widget.TextWidth(visible)
}
