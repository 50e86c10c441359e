package control

import (
	"errors"

	"github.com/lixenwraith/cellui/terminal"
)

var (
	// ErrOutputNotReady is returned when reading a control that has not committed
	ErrOutputNotReady = errors.New("control: output not ready")

	// ErrOutputConsumed is returned after the committed value was taken
	ErrOutputConsumed = errors.New("control: output already taken")
)

// State is the lifecycle of an interactive control
type State uint8

const (
	StateInactive State = iota // Visible, not accepting input
	StateActive                // Editing
	StateReady                 // Committed; terminal until Reset
	StateConsumed              // Committed value handed over by Take
)

func (s State) String() string {
	switch s {
	case StateInactive:
		return "inactive"
	case StateActive:
		return "active"
	case StateReady:
		return "ready"
	case StateConsumed:
		return "consumed"
	default:
		return "unknown"
	}
}

// Interactive consumes input events
// HandleEvent reports whether the event was used
type Interactive interface {
	HandleEvent(ev terminal.Event) bool
}

// Output is an interactive control that commits a value of type T
type Output[T any] interface {
	Interactive
	Peek() (T, error)
	Take() (T, error)
	Ready() bool
	State() State
	Reset()
}

// result holds the commit state shared by every control
type result[T any] struct {
	state State
	value T
}

func (r *result[T]) commit(v T) {
	r.value = v
	r.state = StateReady
}

func (r *result[T]) clear() {
	var zero T
	r.value = zero
	r.state = StateActive
}

// done reports whether the control has committed and ignores further input
func (r *result[T]) done() bool {
	return r.state == StateReady || r.state == StateConsumed
}

// Ready reports whether a committed value is waiting
func (r *result[T]) Ready() bool {
	return r.state == StateReady
}

// Peek returns the committed value without consuming it
func (r *result[T]) Peek() (T, error) {
	var zero T
	switch r.state {
	case StateReady:
		return r.value, nil
	case StateConsumed:
		return zero, ErrOutputConsumed
	default:
		return zero, ErrOutputNotReady
	}
}

// Take returns the committed value once and marks the control consumed
func (r *result[T]) Take() (T, error) {
	v, err := r.Peek()
	if err != nil {
		return v, err
	}
	var zero T
	r.value = zero
	r.state = StateConsumed
	return v, nil
}
