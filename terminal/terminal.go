package terminal

// Attr represents text attributes (bitmask)
type Attr uint8

const (
	AttrNone      Attr = 0
	AttrBold      Attr = 1 << 0
	AttrDim       Attr = 1 << 1
	AttrUnderline Attr = 1 << 2
	AttrReverse   Attr = 1 << 3
)

// Terminal provides the output and input primitives the compositor needs
// Coordinates are 0-indexed, column first as terminals address them
type Terminal interface {
	// Init enters raw mode and the alternate screen and hides the cursor
	Init() error

	// Fini restores terminal state. Safe to call multiple times
	Fini()

	// Size returns current terminal dimensions
	Size() (width, height int)

	// SetCell stages one cell for the next Flush
	SetCell(x, y int, r rune, attr Attr)

	// MoveCursor positions the hardware cursor
	MoveCursor(x, y int)

	// SetCursorVisible shows or hides the hardware cursor
	SetCursorVisible(visible bool)

	// Flush makes staged cells and cursor state visible
	Flush()

	// PollEvent blocks until the next input event
	// Returns EventClosed once the terminal is finalized
	PollEvent() Event

	// PostEvent injects a synthetic event; safe from any goroutine
	PostEvent(Event) error

	// EnableMouse turns click reporting on or off
	EnableMouse(on bool)
}
