package gameui

import (
	"github.com/lixenwraith/cellui/control"
	"github.com/lixenwraith/cellui/terminal"
	"github.com/lixenwraith/cellui/widget"
)

// Start menu entries, in display order
const (
	ChoiceNewGame = iota
	ChoiceLoadMap
	ChoiceQuit
)

// StartItems are the start menu labels; Quit stays last so Escape selects it
var StartItems = []string{"New game", "Load map", "Quit"}

// StartMenu is a framed title with the start menu below it
type StartMenu struct {
	*widget.Window
	menu *control.Menu
}

// NewStartMenu sizes the frame to fit title and items; align it afterwards
func NewStartMenu(t *widget.Tree, b widget.Border, title string) (*StartMenu, error) {
	itemW := 0
	for _, it := range StartItems {
		itemW = max(itemW, widget.TextWidth(it))
	}
	// Marker column, gap, item text
	menuW := itemW + 2
	w := max(widget.TextWidth(title), menuW+1) + 4
	h := len(StartItems) + 4

	frame, err := widget.NewBorderedWindow(t, 0, 0, h, w, b)
	if err != nil {
		return nil, err
	}
	frame.Printj(widget.JustifyHCenter(0), title)

	inner := frame.InnerRect()
	menu := control.NewMenu(t, inner.Y+2, inner.X+1, len(StartItems), inner.W-1, StartItems)
	if err := frame.Attach(menu.ID()); err != nil {
		frame.Release()
		return nil, err
	}
	return &StartMenu{Window: frame, menu: menu}, nil
}

// Menu returns the list inside the frame
func (s *StartMenu) Menu() *control.Menu { return s.menu }

func (s *StartMenu) HandleEvent(ev terminal.Event) bool { return s.menu.HandleEvent(ev) }

// Take consumes the committed choice
func (s *StartMenu) Take() (int, error) { return s.menu.Take() }

// Cancelled reports whether the last choice came from Escape
func (s *StartMenu) Cancelled() bool { return s.menu.Cancelled() }

// Reset reopens the menu for input, keeping the selection
func (s *StartMenu) Reset() { s.menu.Reset() }
