// Package screen composites a widget tree into a character grid and writes it to a terminal.
package screen

import (
	"errors"
	"fmt"
	"log"
	"slices"

	"github.com/mattn/go-runewidth"

	"github.com/lixenwraith/cellui/layout"
	"github.com/lixenwraith/cellui/terminal"
	"github.com/lixenwraith/cellui/widget"
)

// ErrTerminalTooSmall is wrapped by *SizeError when the terminal cannot hold the requested grid
var ErrTerminalTooSmall = errors.New("screen: terminal too small")

// SizeError reports the requested and available dimensions
type SizeError struct {
	Rows, Cols         int
	HaveRows, HaveCols int
}

func (e *SizeError) Error() string {
	return fmt.Sprintf("screen: terminal is %dx%d, need at least %dx%d", e.HaveRows, e.HaveCols, e.Rows, e.Cols)
}

func (e *SizeError) Unwrap() error { return ErrTerminalTooSmall }

// Widget is anything registered with the compositor by its root node
type Widget interface {
	ID() widget.ID
}

// Screen owns the full-frame grid and the root widget list
// Every frame is a full repaint: Draw recomposes the grid, Refresh writes all of it
type Screen struct {
	term terminal.Terminal
	tree *widget.Tree

	rows, cols int
	grid       []rune
	paired     []bool // Continuation cell whose head at x-1 came from the same node
	roots      []widget.ID

	cursor    layout.Point
	hasCursor bool
}

// New creates a compositor over tree writing to term; call Init before drawing
func New(term terminal.Terminal, tree *widget.Tree) *Screen {
	return &Screen{term: term, tree: tree}
}

// Init takes over the terminal and allocates a rows×cols grid
// If the terminal is smaller the terminal is released again and a *SizeError returned
func (s *Screen) Init(rows, cols int) error {
	if err := s.term.Init(); err != nil {
		return err
	}

	w, h := s.term.Size()
	if h < rows || w < cols {
		s.term.Fini()
		return &SizeError{Rows: rows, Cols: cols, HaveRows: h, HaveCols: w}
	}

	s.rows, s.cols = max(rows, 0), max(cols, 0)
	s.grid = make([]rune, s.rows*s.cols)
	s.paired = make([]bool, s.rows*s.cols)
	s.term.SetCursorVisible(false)
	log.Printf("screen: %dx%d grid on %dx%d terminal", s.rows, s.cols, h, w)
	return nil
}

// Fini releases the terminal
func (s *Screen) Fini() {
	s.term.Fini()
}

// Tree returns the arena the compositor paints from
func (s *Screen) Tree() *widget.Tree { return s.tree }

// Terminal returns the output collaborator
func (s *Screen) Terminal() terminal.Terminal { return s.term }

// Rows returns the grid height
func (s *Screen) Rows() int { return s.rows }

// Cols returns the grid width
func (s *Screen) Cols() int { return s.cols }

// OuterRect is the whole grid, so widgets can align to the screen
func (s *Screen) OuterRect() layout.Rect { return layout.NewRect(0, 0, s.rows, s.cols) }

// InnerRect equals OuterRect
func (s *Screen) InnerRect() layout.Rect { return s.OuterRect() }

// AddWidget registers a root; registering the same node twice is a no-op
func (s *Screen) AddWidget(w Widget) {
	id := w.ID()
	if !slices.Contains(s.roots, id) {
		s.roots = append(s.roots, id)
	}
}

// RemoveWidget unregisters a root by identity
func (s *Screen) RemoveWidget(w Widget) {
	id := w.ID()
	s.roots = slices.DeleteFunc(s.roots, func(r widget.ID) bool { return r == id })
}

// Roots returns the registered roots in insertion order
func (s *Screen) Roots() []widget.ID { return slices.Clone(s.roots) }

// Cell returns the composited rune at (y, x), widget.Transparent where nothing painted
func (s *Screen) Cell(y, x int) rune {
	if y < 0 || y >= s.rows || x < 0 || x >= s.cols {
		return widget.Transparent
	}
	return s.grid[y*s.cols+x]
}

// Cursor returns the frame's cursor position and whether any widget showed one
func (s *Screen) Cursor() (layout.Point, bool) {
	return s.cursor, s.hasCursor
}

// Draw recomposes the grid from the registered roots
func (s *Screen) Draw() {
	clear(s.grid)
	clear(s.paired)
	s.hasCursor = false

	// Roots released elsewhere drop out of the frame
	s.roots = slices.DeleteFunc(s.roots, func(id widget.ID) bool { return !s.tree.Alive(id) })
	for _, id := range s.zOrdered(s.roots) {
		s.paint(id)
	}
}

// zOrdered returns ids sorted by z, insertion order kept among equals
func (s *Screen) zOrdered(ids []widget.ID) []widget.ID {
	sorted := slices.Clone(ids)
	slices.SortStableFunc(sorted, func(a, b widget.ID) int {
		return s.tree.Z(a) - s.tree.Z(b)
	})
	return sorted
}

// paint composites one node and then its children
func (s *Screen) paint(id widget.ID) {
	if !s.tree.Visible(id) {
		return
	}

	s.tree.Edit(id, func(n *widget.Node) {
		r := n.Rect()
		clip := r.Intersect(s.OuterRect())
		for y := clip.Y; y < clip.Bottom(); y++ {
			for x := clip.X; x < clip.Right(); x++ {
				c, _ := n.Cell(y-r.Y, x-r.X)
				if c == widget.Transparent {
					continue
				}
				i := y*s.cols + x
				s.grid[i] = c
				if c == widget.Continuation {
					head, _ := n.Cell(y-r.Y, x-1-r.X)
					s.paired[i] = x > clip.X && head != widget.Transparent && head != widget.Continuation
					continue
				}
				s.paired[i] = false
				if x+1 < s.cols {
					// Any tail right of a replaced head is orphaned
					s.paired[i+1] = false
				}
			}
		}

		if cur := n.Cursor(); !cur.Hidden {
			y, x := r.Y+cur.Y, r.X+cur.X
			if s.OuterRect().Contains(y, x) {
				s.cursor = layout.Point{Y: y, X: x}
				s.hasCursor = true
			}
		}
	})

	for _, c := range s.zOrdered(s.tree.Children(id)) {
		s.paint(c)
	}
}

// Refresh writes the grid to the terminal, the cursor cell in reverse video, and flushes
func (s *Screen) Refresh() {
	for y := 0; y < s.rows; y++ {
		for x := 0; x < s.cols; x++ {
			r, ok := s.visibleRune(y, x)
			if !ok {
				continue
			}
			attr := terminal.AttrNone
			if s.hasCursor && s.cursor.Y == y && s.cursor.X == x {
				attr = terminal.AttrReverse
			}
			s.term.SetCell(x, y, r, attr)
		}
	}
	if s.hasCursor {
		s.term.MoveCursor(s.cursor.X, s.cursor.Y)
	}
	s.term.Flush()
}

// visibleRune maps a grid cell to what the terminal shows
// A wide character shows only when its own tail survived compositing; the tail is then
// skipped. Heads and tails split by clipping or overlap show blank
func (s *Screen) visibleRune(y, x int) (rune, bool) {
	i := y*s.cols + x
	c := s.grid[i]
	switch c {
	case widget.Transparent:
		return ' ', true
	case widget.Continuation:
		if s.paired[i] {
			return 0, false
		}
		return ' ', true
	}
	if runewidth.RuneWidth(c) == 2 && (x+1 >= s.cols || !s.paired[i+1]) {
		return ' ', true
	}
	return c, true
}
