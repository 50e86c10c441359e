// Package app runs the cooperative event loop: draw, refresh, wait for one event,
// hand it to the application, repeat until something maps to quit
package app

import (
	"errors"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/lixenwraith/cellui/screen"
	"github.com/lixenwraith/cellui/terminal"
)

// ErrCrashed is wrapped by the error Run returns after recovering a panic
var ErrCrashed = errors.New("app: crashed")

// Updater consumes one event and reports whether the application is done
type Updater interface {
	Update(ev terminal.Event) (quit bool)
}

// UpdateFunc adapts a function to Updater
type UpdateFunc func(terminal.Event) bool

func (f UpdateFunc) Update(ev terminal.Event) bool { return f(ev) }

// Loop owns the screen for the duration of Run
type Loop struct {
	screen  *screen.Screen
	updater Updater

	// Signals posted as quit events; nil disables signal handling
	Signals []os.Signal

	frames int
}

// NewLoop builds a loop over an initialized screen
func NewLoop(s *screen.Screen, u Updater) *Loop {
	return &Loop{
		screen:  s,
		updater: u,
		Signals: []os.Signal{syscall.SIGINT, syscall.SIGTERM},
	}
}

// Frames returns the number of frames drawn so far
func (l *Loop) Frames() int { return l.frames }

// Step draws and flushes one frame, waits for the next event and dispatches it
// Returns true when the event ended the loop
func (l *Loop) Step() bool {
	l.screen.Draw()
	l.screen.Refresh()
	l.frames++

	ev := l.screen.Terminal().PollEvent()
	if isQuit(ev) {
		log.Printf("app: quit on %s event", ev.Type)
		return true
	}
	if ev.Type == terminal.EventError {
		log.Printf("app: input error: %v", ev.Err)
		return false
	}
	return l.updater.Update(ev)
}

// Run steps until quit and releases the screen on every exit path
// A panic in a handler is recovered: the terminal is restored, the stack goes to
// stderr and Run returns an error wrapping ErrCrashed
func (l *Loop) Run() (err error) {
	stop := l.watchSignals()
	defer stop()

	defer func() {
		if r := recover(); r != nil {
			l.screen.Fini()
			HandleCrash(r)
			err = fmt.Errorf("%w: %v", ErrCrashed, r)
			return
		}
		l.screen.Fini()
	}()

	for !l.Step() {
	}
	return nil
}

// watchSignals posts a quit event for each configured signal until stop is called
func (l *Loop) watchSignals() (stop func()) {
	if len(l.Signals) == 0 {
		return func() {}
	}

	sigCh := make(chan os.Signal, 1)
	done := make(chan struct{})
	signal.Notify(sigCh, l.Signals...)

	term := l.screen.Terminal()
	Go(func() {
		for {
			select {
			case sig := <-sigCh:
				log.Printf("app: received %v", sig)
				if err := term.PostEvent(terminal.QuitEvent()); err != nil {
					log.Printf("app: post quit: %v", err)
				}
			case <-done:
				return
			}
		}
	})

	return func() {
		signal.Stop(sigCh)
		close(done)
	}
}

// isQuit reports events that end the loop regardless of the application
func isQuit(ev terminal.Event) bool {
	switch {
	case ev.Type == terminal.EventClosed:
		return true
	case ev.Type == terminal.EventInterrupt && ev.Quit:
		return true
	case ev.IsKey(terminal.KeyCtrlC):
		return true
	}
	return false
}
