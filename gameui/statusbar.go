package gameui

import (
	"github.com/lixenwraith/cellui/widget"
)

// StatusBar is a rule with one line of text under it, left and right parts justified to the edges
type StatusBar struct {
	*widget.Window
	rule *widget.HBar

	left, right string
}

// NewStatusBar places the rule at row y and the text row at y+1
func NewStatusBar(t *widget.Tree, y, x, w int) *StatusBar {
	rule := widget.NewHBar(t, y, x, w)
	rule.SetStyle(widget.BarPlain)

	win := widget.NewWindow(t, y+1, x, 1, w)
	if err := win.Attach(rule.ID()); err != nil {
		panic(err)
	}
	return &StatusBar{Window: win, rule: rule}
}

// Rule returns the separator above the text
func (s *StatusBar) Rule() *widget.HBar { return s.rule }

// Set replaces both parts; the right part wins where they overlap
func (s *StatusBar) Set(left, right string) {
	s.left, s.right = left, right
	s.ClearLine(0)
	s.Printj(widget.JustifyLeft(0), left)
	s.Printj(widget.JustifyRight(0), right)
}

// Text returns the left and right parts
func (s *StatusBar) Text() (left, right string) { return s.left, s.right }
