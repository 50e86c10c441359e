package control

import (
	"github.com/lixenwraith/cellui/terminal"
	"github.com/lixenwraith/cellui/widget"
)

// Prompt is a label followed by an input field on the same row
// The field is attached to the label, so moving the prompt moves both
type Prompt struct {
	*widget.Window // label
	input          *InputLine
}

var _ Output[string] = (*Prompt)(nil)

// NewPrompt places label at (y, x) and a field of length cells one column after it
func NewPrompt(t *widget.Tree, y, x int, label string, length int) *Prompt {
	lw := widget.TextWidth(label)
	lbl := widget.NewWindow(t, y, x, 1, lw)
	lbl.Print(0, 0, label)

	in := NewInputLine(t, y, x+lw+1, length)
	// A freshly allocated field has no parent and cannot be an ancestor of the label
	_ = lbl.Attach(in.ID())

	return &Prompt{Window: lbl, input: in}
}

// Input returns the field
func (p *Prompt) Input() *InputLine { return p.input }

func (p *Prompt) HandleEvent(ev terminal.Event) bool { return p.input.HandleEvent(ev) }
func (p *Prompt) Peek() (string, error)              { return p.input.Peek() }
func (p *Prompt) Take() (string, error)              { return p.input.Take() }
func (p *Prompt) Ready() bool                        { return p.input.Ready() }
func (p *Prompt) State() State                       { return p.input.State() }
func (p *Prompt) Reset()                             { p.input.Reset() }
func (p *Prompt) Text() string                       { return p.input.Text() }
