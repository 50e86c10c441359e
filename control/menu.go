package control

import (
	"slices"

	"github.com/lixenwraith/cellui/terminal"
	"github.com/lixenwraith/cellui/widget"
)

const (
	menuMarker    = '*'
	menuMarkerCol = 0
	menuItemCol   = 2
)

// Menu is a vertical list with one active item and a scroll window of the content height
// Up/Down move the selection, Enter or Space commits it. Escape commits the last
// item, which by convention is the way out; Cancelled reports it
type Menu struct {
	*widget.Window
	result[int]

	items     []string
	list      ScrollState
	cancelled bool
}

var _ Output[int] = (*Menu)(nil)

// NewMenu creates a menu window at absolute (y, x)
func NewMenu(t *widget.Tree, y, x, h, w int, items []string) *Menu {
	return newMenu(widget.NewWindow(t, y, x, h, w), items)
}

// NewBorderedMenu creates a framed menu; the list fills the content area
func NewBorderedMenu(t *widget.Tree, y, x, h, w int, b widget.Border, items []string) (*Menu, error) {
	win, err := widget.NewBorderedWindow(t, y, x, h, w, b)
	if err != nil {
		return nil, err
	}
	return newMenu(win, items), nil
}

func newMenu(win *widget.Window, items []string) *Menu {
	m := &Menu{Window: win, items: slices.Clone(items)}
	m.list = *NewScrollState(len(m.items), m.visible())
	m.state = StateActive
	m.redraw()
	return m
}

// Items returns a copy of the entries
func (m *Menu) Items() []string { return slices.Clone(m.items) }

// Active returns the selected index
func (m *Menu) Active() int { return m.list.Selection }

// Scroll returns the index of the first visible item
func (m *Menu) Scroll() int { return m.list.Offset }

// Cancelled reports whether the last commit came from Escape
func (m *Menu) Cancelled() bool { return m.cancelled }

// State reports the lifecycle position
func (m *Menu) State() State { return m.state }

// Reset resumes selection, keeping the current position
func (m *Menu) Reset() {
	m.clear()
	m.cancelled = false
}

// ToggleBorder turns the frame on or off and refits the list to the new height
func (m *Menu) ToggleBorder() error {
	if err := m.Window.ToggleBorder(); err != nil {
		return err
	}
	m.refit()
	return nil
}

// SetBorder changes the frame glyphs and redraws the list
func (m *Menu) SetBorder(b widget.Border) {
	m.Window.SetBorder(b)
	m.refit()
}

// refit keeps the selection inside the visible rows after the content area changed
func (m *Menu) refit() {
	m.list.SetVisible(m.visible())
	m.redraw()
}

func (m *Menu) visible() int {
	h, _ := m.ContentSize()
	return h
}

func (m *Menu) inert() bool {
	return len(m.items) == 0 || m.visible() == 0
}

// HandleEvent moves, commits or cancels
func (m *Menu) HandleEvent(ev terminal.Event) bool {
	if m.done() || m.inert() {
		return false
	}

	switch {
	case ev.IsKey(terminal.KeyUp):
		if !m.list.SelectPrev() {
			return false
		}
		m.redraw()
		return true

	case ev.IsKey(terminal.KeyDown):
		if !m.list.SelectNext() {
			return false
		}
		m.redraw()
		return true

	case ev.IsKey(terminal.KeyEnter), ev.IsRune(' '):
		m.cancelled = false
		m.commit(m.list.Selection)
		return true

	case ev.IsKey(terminal.KeyEscape):
		m.cancelled = true
		m.commit(len(m.items) - 1)
		return true

	case ev.Type == terminal.EventMouse && ev.MouseBtn == terminal.MouseBtnLeft:
		return m.click(ev.MouseY, ev.MouseX)
	}
	return false
}

// click selects and commits the item on the clicked row
func (m *Menu) click(y, x int) bool {
	r := m.InnerRect()
	if !r.Contains(y, x) {
		return false
	}
	idx := m.list.Offset + y - r.Y
	if idx >= len(m.items) {
		return false
	}
	m.list.Select(idx)
	m.cancelled = false
	m.redraw()
	m.commit(idx)
	return true
}

func (m *Menu) redraw() {
	h := m.visible()
	for row := 0; row < h; row++ {
		m.ClearLine(row)
		i := m.list.Offset + row
		if i >= len(m.items) {
			continue
		}
		if i == m.list.Selection {
			m.Putc(row, menuMarkerCol, menuMarker)
		}
		m.Print(row, menuItemCol, m.items[i])
	}
}
