package control

import (
	"errors"
	"fmt"
	"maps"
	"slices"

	"github.com/lixenwraith/cellui/terminal"
	"github.com/lixenwraith/cellui/widget"
)

// formIndent is the gap between the form's left edge and the label column
const formIndent = 3

// ErrDuplicateLabel is returned by NewForm when two fields share a label
var ErrDuplicateLabel = errors.New("control: duplicate form label")

// Form is a stack of labeled input fields with one focused at a time
// Row 0 of the form window is left to the caller for a title or rule;
// labels are right-justified in their own column and fields sit beside them
// Tab/Down and Shift-Tab/Up move focus without wrapping; Enter commits every
// field as a label to text map
type Form struct {
	*widget.Window
	result[map[string]string]

	labelWin *widget.Window
	inputWin *widget.Window
	labels   []string
	inputs   []*InputLine
	focus    int
}

var _ Output[map[string]string] = (*Form)(nil)

// NewForm lays out one field per label inside an h×w window at (y, x)
func NewForm(t *widget.Tree, y, x, h, w int, labels []string) (*Form, error) {
	seen := make(map[string]bool, len(labels))
	for _, l := range labels {
		if seen[l] {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateLabel, l)
		}
		seen[l] = true
	}

	f := &Form{
		Window: widget.NewWindow(t, y, x, h, w),
		labels: slices.Clone(labels),
	}
	f.state = StateActive

	labelW := 0
	for _, l := range labels {
		labelW = max(labelW, widget.TextWidth(l))
	}
	labelX := x + formIndent
	inputX := labelX + labelW + 1
	inputW := max(w-(inputX-x)-formIndent, 0)
	bodyH := max(h-1, 0)

	f.labelWin = widget.NewWindow(t, y+1, labelX, bodyH, labelW)
	f.inputWin = widget.NewWindow(t, y+1, inputX, bodyH, inputW)
	f.attach(f.Window, f.labelWin.ID())
	f.attach(f.Window, f.inputWin.ID())

	for i, l := range labels {
		f.labelWin.Printj(widget.JustifyRight(i), l)

		in := NewInputLine(t, y+1+i, inputX, inputW)
		in.SetInactive()
		f.attach(f.inputWin, in.ID())
		f.inputs = append(f.inputs, in)
	}
	if len(f.inputs) > 0 {
		f.inputs[0].SetActive()
	}
	return f, nil
}

// attach links freshly allocated nodes, which cannot already have a parent
func (f *Form) attach(parent *widget.Window, child widget.ID) {
	if err := parent.Attach(child); err != nil {
		panic(err)
	}
}

// Labels returns the field labels in order
func (f *Form) Labels() []string { return slices.Clone(f.labels) }

// Field returns the i-th input, nil when out of range
func (f *Form) Field(i int) *InputLine {
	if i < 0 || i >= len(f.inputs) {
		return nil
	}
	return f.inputs[i]
}

// Focus returns the index of the active field
func (f *Form) Focus() int { return f.focus }

// State reports the lifecycle position
func (f *Form) State() State { return f.state }

// Peek returns a copy of the committed map
func (f *Form) Peek() (map[string]string, error) {
	v, err := f.result.Peek()
	return maps.Clone(v), err
}

// Reset clears every field and focuses the first
func (f *Form) Reset() {
	f.clear()
	for _, in := range f.inputs {
		in.Reset()
		in.SetInactive()
	}
	f.focus = 0
	if len(f.inputs) > 0 {
		f.inputs[0].SetActive()
	}
}

// HandleEvent moves focus, commits, or forwards to the focused field
func (f *Form) HandleEvent(ev terminal.Event) bool {
	if f.done() || len(f.inputs) == 0 {
		return false
	}

	switch {
	case ev.IsKey(terminal.KeyTab), ev.IsKey(terminal.KeyDown):
		return f.moveFocus(f.focus + 1)
	case ev.IsKey(terminal.KeyBacktab), ev.IsKey(terminal.KeyUp):
		return f.moveFocus(f.focus - 1)
	case ev.IsKey(terminal.KeyEnter):
		out := make(map[string]string, len(f.inputs))
		for i, in := range f.inputs {
			out[f.labels[i]] = in.Text()
		}
		f.commit(out)
		return true
	}
	return f.inputs[f.focus].HandleEvent(ev)
}

func (f *Form) moveFocus(to int) bool {
	if to < 0 || to >= len(f.inputs) || to == f.focus {
		return false
	}
	f.inputs[f.focus].SetInactive()
	f.focus = to
	f.inputs[f.focus].SetActive()
	return true
}
