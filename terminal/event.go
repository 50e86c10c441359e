package terminal

// EventType distinguishes input event categories
type EventType uint8

const (
	EventKey EventType = iota
	EventMouse
	EventResize
	EventInterrupt // Synthetic wakeup; carries Quit when posted by a signal handler
	EventError
	EventClosed // Input closed, the terminal is finalized
)

func (t EventType) String() string {
	switch t {
	case EventKey:
		return "key"
	case EventMouse:
		return "mouse"
	case EventResize:
		return "resize"
	case EventInterrupt:
		return "interrupt"
	case EventError:
		return "error"
	case EventClosed:
		return "closed"
	default:
		return "unknown"
	}
}

// Event is one decoded input event
type Event struct {
	Type      EventType
	Key       Key
	Rune      rune
	Modifiers Modifier
	Width     int   // For EventResize
	Height    int   // For EventResize
	Err       error // For EventError
	Quit      bool  // For EventInterrupt

	// Mouse event fields, screen coordinates
	MouseX   int
	MouseY   int
	MouseBtn MouseButton
}

// KeyEvent builds a key event
func KeyEvent(k Key) Event {
	return Event{Type: EventKey, Key: k}
}

// RuneEvent builds a printable-character key event
func RuneEvent(r rune) Event {
	return Event{Type: EventKey, Key: KeyRune, Rune: r}
}

// ClickEvent builds a left-button press at screen (y, x)
func ClickEvent(y, x int) Event {
	return Event{Type: EventMouse, MouseX: x, MouseY: y, MouseBtn: MouseBtnLeft}
}

// QuitEvent asks the loop to stop
func QuitEvent() Event {
	return Event{Type: EventInterrupt, Quit: true}
}

// IsKey reports whether e is an unmodified press of k
func (e Event) IsKey(k Key) bool {
	return e.Type == EventKey && e.Key == k
}

// IsRune reports whether e is the printable character r
func (e Event) IsRune(r rune) bool {
	return e.Type == EventKey && e.Key == KeyRune && e.Rune == r
}

// MouseButton represents mouse button identity
type MouseButton uint8

const (
	MouseBtnNone MouseButton = iota
	MouseBtnLeft
	MouseBtnMiddle
	MouseBtnRight
	MouseBtnWheelUp
	MouseBtnWheelDown
)

func (b MouseButton) String() string {
	switch b {
	case MouseBtnLeft:
		return "left"
	case MouseBtnMiddle:
		return "middle"
	case MouseBtnRight:
		return "right"
	case MouseBtnWheelUp:
		return "wheel_up"
	case MouseBtnWheelDown:
		return "wheel_down"
	default:
		return "none"
	}
}
