package terminal

import (
	"io"
	"os"
)

var (
	seqMouseOff      = []byte("\x1b[?1000l\x1b[?1002l\x1b[?1003l\x1b[?1006l")
	seqCursorShow    = []byte("\x1b[?25h")
	seqAltScreenExit = []byte("\x1b[?1049l")
	seqSGR0          = []byte("\x1b[0m")
	seqAutoWrapOn    = []byte("\x1b[?7h")
)

// EmergencyReset writes the sequences that undo raw-mode screen state to w and
// re-enables cooked input on the controlling tty
// For crash paths where Terminal.Fini may not have run or may itself have failed
func EmergencyReset(w io.Writer) {
	w.Write(seqMouseOff)
	w.Write(seqCursorShow)
	w.Write(seqAltScreenExit)
	w.Write(seqSGR0)
	w.Write(seqAutoWrapOn)

	if f, ok := w.(*os.File); ok {
		f.Sync()
	}

	// Escape sequences alone don't restore termios; best-effort
	resetTerminalMode()
}
