package app

import (
	"fmt"
	"io"
	"log"
	"os"
	"runtime/debug"

	"github.com/lixenwraith/cellui/terminal"
)

// Crash output targets, replaced in tests
var (
	resetOut io.Writer = os.Stdout
	crashOut io.Writer = os.Stderr
)

// HandleCrash restores the terminal and reports a recovered panic with its stack
// Uses \r\n so the report reads correctly if raw mode survived the reset
func HandleCrash(r any) {
	if r == nil {
		return
	}
	terminal.EmergencyReset(resetOut)

	stack := debug.Stack()
	log.Printf("app: crash: %v\n%s", r, stack)
	fmt.Fprintf(crashOut, "\r\n\x1b[31mCRASH DETECTED: %v\x1b[0m\r\n", r)
	fmt.Fprintf(crashOut, "Stack Trace:\r\n%s\r\n", stack)
	if f, ok := crashOut.(*os.File); ok {
		f.Sync()
	}
}

// Go runs fn on a new goroutine; a panic there restores the terminal and exits
// the process, since nothing is left to return an error to
func Go(fn func()) {
	go func() {
		defer func() {
			if r := recover(); r != nil {
				HandleCrash(r)
				os.Exit(1)
			}
		}()
		fn()
	}()
}
