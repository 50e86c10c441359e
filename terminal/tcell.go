package terminal

import (
	"fmt"
	"sync"

	"github.com/gdamore/tcell/v2"
)

// tcellTerminal implements Terminal over a tcell.Screen
type tcellTerminal struct {
	screen tcell.Screen

	mu          sync.Mutex
	initialized bool
	finalized   bool

	cursorX, cursorY int
	cursorVisible    bool
}

// New creates a Terminal on the controlling tty
func New() (Terminal, error) {
	s, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("create screen: %w", err)
	}
	return NewWithScreen(s), nil
}

// NewWithScreen wraps an existing screen, typically a tcell.SimulationScreen in tests
func NewWithScreen(s tcell.Screen) Terminal {
	return &tcellTerminal{screen: s}
}

func (t *tcellTerminal) Init() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.initialized {
		return nil
	}
	if err := t.screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	t.screen.SetStyle(tcell.StyleDefault)
	t.screen.HideCursor()
	t.screen.Clear()
	t.initialized = true
	return nil
}

func (t *tcellTerminal) Fini() {
	t.mu.Lock()
	defer t.mu.Unlock()

	if !t.initialized || t.finalized {
		return
	}
	t.screen.DisableMouse()
	t.screen.ShowCursor(0, 0)
	t.screen.Fini()
	t.finalized = true
}

func (t *tcellTerminal) Size() (width, height int) {
	return t.screen.Size()
}

func (t *tcellTerminal) SetCell(x, y int, r rune, attr Attr) {
	t.screen.SetContent(x, y, r, nil, styleFor(attr))
}

func styleFor(attr Attr) tcell.Style {
	st := tcell.StyleDefault
	if attr&AttrBold != 0 {
		st = st.Bold(true)
	}
	if attr&AttrDim != 0 {
		st = st.Dim(true)
	}
	if attr&AttrUnderline != 0 {
		st = st.Underline(true)
	}
	if attr&AttrReverse != 0 {
		st = st.Reverse(true)
	}
	return st
}

func (t *tcellTerminal) MoveCursor(x, y int) {
	t.cursorX, t.cursorY = x, y
}

func (t *tcellTerminal) SetCursorVisible(visible bool) {
	t.cursorVisible = visible
}

func (t *tcellTerminal) Flush() {
	if t.cursorVisible {
		t.screen.ShowCursor(t.cursorX, t.cursorY)
	} else {
		t.screen.HideCursor()
	}
	t.screen.Show()
}

func (t *tcellTerminal) PollEvent() Event {
	for {
		ev := t.screen.PollEvent()
		if ev == nil {
			return Event{Type: EventClosed}
		}
		if e, ok := decode(ev); ok {
			return e
		}
	}
}

func (t *tcellTerminal) PostEvent(e Event) error {
	return t.screen.PostEvent(tcell.NewEventInterrupt(e))
}

func (t *tcellTerminal) EnableMouse(on bool) {
	if on {
		t.screen.EnableMouse(tcell.MouseButtonEvents)
	} else {
		t.screen.DisableMouse()
	}
}

// decode maps a tcell event to an Event; false for events with no meaning here
func decode(ev tcell.Event) (Event, bool) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return decodeKey(ev), true

	case *tcell.EventMouse:
		btn := decodeButtons(ev.Buttons())
		if btn == MouseBtnNone {
			return Event{}, false
		}
		x, y := ev.Position()
		return Event{
			Type:      EventMouse,
			MouseX:    x,
			MouseY:    y,
			MouseBtn:  btn,
			Modifiers: decodeMods(ev.Modifiers()),
		}, true

	case *tcell.EventResize:
		w, h := ev.Size()
		return Event{Type: EventResize, Width: w, Height: h}, true

	case *tcell.EventInterrupt:
		if e, ok := ev.Data().(Event); ok {
			return e, true
		}
		return Event{Type: EventInterrupt}, true

	case *tcell.EventError:
		return Event{Type: EventError, Err: ev}, true
	}
	return Event{}, false
}

var specialKeys = map[tcell.Key]Key{
	tcell.KeyEscape:     KeyEscape,
	tcell.KeyEnter:      KeyEnter,
	tcell.KeyLF:         KeyEnter,
	tcell.KeyTab:        KeyTab,
	tcell.KeyBacktab:    KeyBacktab,
	tcell.KeyBackspace:  KeyBackspace,
	tcell.KeyBackspace2: KeyBackspace,
	tcell.KeyDelete:     KeyDelete,
	tcell.KeyUp:         KeyUp,
	tcell.KeyDown:       KeyDown,
	tcell.KeyLeft:       KeyLeft,
	tcell.KeyRight:      KeyRight,
	tcell.KeyHome:       KeyHome,
	tcell.KeyEnd:        KeyEnd,
	tcell.KeyPgUp:       KeyPageUp,
	tcell.KeyPgDn:       KeyPageDown,
	tcell.KeyInsert:     KeyInsert,
}

func decodeKey(ev *tcell.EventKey) Event {
	e := Event{Type: EventKey, Modifiers: decodeMods(ev.Modifiers())}
	tk := ev.Key()

	switch {
	case tk == tcell.KeyRune:
		e.Key = KeyRune
		e.Rune = ev.Rune()
	case tk >= tcell.KeyF1 && tk <= tcell.KeyF12:
		e.Key = KeyF1 + Key(tk-tcell.KeyF1)
	case tk >= tcell.KeyCtrlA && tk <= tcell.KeyCtrlZ:
		e.Key = KeyCtrlA + Key(tk-tcell.KeyCtrlA)
	default:
		if k, ok := specialKeys[tk]; ok {
			e.Key = k
		}
	}
	if e.Key == KeyBacktab {
		e.Modifiers |= ModShift
	}
	return e
}

func decodeMods(m tcell.ModMask) Modifier {
	var mod Modifier
	if m&tcell.ModShift != 0 {
		mod |= ModShift
	}
	if m&tcell.ModAlt != 0 {
		mod |= ModAlt
	}
	if m&tcell.ModCtrl != 0 {
		mod |= ModCtrl
	}
	return mod
}

func decodeButtons(b tcell.ButtonMask) MouseButton {
	switch {
	case b&tcell.Button1 != 0:
		return MouseBtnLeft
	case b&tcell.Button2 != 0:
		return MouseBtnRight
	case b&tcell.Button3 != 0:
		return MouseBtnMiddle
	case b&tcell.WheelUp != 0:
		return MouseBtnWheelUp
	case b&tcell.WheelDown != 0:
		return MouseBtnWheelDown
	}
	return MouseBtnNone
}
