package widget

import (
	"errors"
	"fmt"
)

var (
	// ErrTooSmall is returned when a border is requested on a node under 2x2
	ErrTooSmall = errors.New("widget: too small for border")

	// ErrStaleID reports use of a released or never-allocated node
	ErrStaleID = errors.New("widget: stale node id")

	// ErrHasParent is returned when attaching a node that already has a parent
	ErrHasParent = errors.New("widget: node already has a parent")

	// ErrCycle is returned when attaching a node under itself or a descendant
	ErrCycle = errors.New("widget: attachment would create a cycle")
)

// BorrowError is the panic value raised when a node is accessed while already borrowed
type BorrowError struct {
	ID ID
}

func (e *BorrowError) Error() string {
	return fmt.Sprintf("widget: node %v already borrowed", e.ID)
}
