// Package mapfile reads and writes the binary map format
//
// Layout, all integers little-endian u32:
//
//	[Height][Width][StartY][StartX][FinishY][FinishX] then Height*Width cell bytes, row-major
package mapfile

import (
	"bufio"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/lixenwraith/cellui/layout"
)

// HeaderSize is the fixed header length in bytes
const HeaderSize = 24

// MaxCells caps Height*Width so a corrupt header cannot force a huge allocation
const MaxCells = 1 << 24

var (
	ErrTruncated  = errors.New("mapfile: truncated")
	ErrDimensions = errors.New("mapfile: invalid dimensions")
)

// Map is a grid of cell codes with start and finish points
type Map struct {
	Height, Width int
	Start         layout.Point
	Finish        layout.Point
	Cells         []byte // Row-major, len Height*Width
}

// New allocates a zero-filled map
func New(height, width int) *Map {
	return &Map{Height: height, Width: width, Cells: make([]byte, height*width)}
}

// At returns the cell code at (y, x), 0 outside the grid
func (m *Map) At(y, x int) byte {
	if y < 0 || y >= m.Height || x < 0 || x >= m.Width {
		return 0
	}
	return m.Cells[y*m.Width+x]
}

// Set writes a cell code; writes outside the grid are dropped
func (m *Map) Set(y, x int, v byte) {
	if y < 0 || y >= m.Height || x < 0 || x >= m.Width {
		return
	}
	m.Cells[y*m.Width+x] = v
}

// Bounds returns the grid as a rect at the origin
func (m *Map) Bounds() layout.Rect {
	return layout.NewRect(0, 0, m.Height, m.Width)
}

// CheckPoints reports ErrDimensions when start or finish lies off the grid
func (m *Map) CheckPoints() error {
	b := m.Bounds()
	for _, p := range []struct {
		name string
		pt   layout.Point
	}{{"start", m.Start}, {"finish", m.Finish}} {
		if !b.Contains(p.pt.Y, p.pt.X) {
			return fmt.Errorf("%w: %s (%d,%d) outside %dx%d", ErrDimensions, p.name, p.pt.Y, p.pt.X, m.Height, m.Width)
		}
	}
	return nil
}

// Decode reads one map
func Decode(r io.Reader) (*Map, error) {
	header := make([]byte, HeaderSize)
	if _, err := io.ReadFull(r, header); err != nil {
		return nil, fmt.Errorf("%w: header: %w", ErrTruncated, err)
	}

	h := binary.LittleEndian.Uint32(header[0:4])
	w := binary.LittleEndian.Uint32(header[4:8])
	if h == 0 || w == 0 || uint64(h)*uint64(w) > MaxCells {
		return nil, fmt.Errorf("%w: %dx%d", ErrDimensions, h, w)
	}

	m := New(int(h), int(w))
	m.Start = layout.Point{
		Y: int(binary.LittleEndian.Uint32(header[8:12])),
		X: int(binary.LittleEndian.Uint32(header[12:16])),
	}
	m.Finish = layout.Point{
		Y: int(binary.LittleEndian.Uint32(header[16:20])),
		X: int(binary.LittleEndian.Uint32(header[20:24])),
	}
	if err := m.CheckPoints(); err != nil {
		return nil, err
	}

	if _, err := io.ReadFull(r, m.Cells); err != nil {
		return nil, fmt.Errorf("%w: cells: %w", ErrTruncated, err)
	}
	return m, nil
}

// Encode writes m; the cell slice must match the dimensions
func Encode(w io.Writer, m *Map) error {
	if m.Height <= 0 || m.Width <= 0 || len(m.Cells) != m.Height*m.Width {
		return fmt.Errorf("%w: %dx%d with %d cells", ErrDimensions, m.Height, m.Width, len(m.Cells))
	}
	if err := m.CheckPoints(); err != nil {
		return err
	}

	header := make([]byte, HeaderSize)
	for i, v := range []int{m.Height, m.Width, m.Start.Y, m.Start.X, m.Finish.Y, m.Finish.X} {
		binary.LittleEndian.PutUint32(header[i*4:], uint32(v))
	}

	bw := bufio.NewWriter(w)
	if _, err := bw.Write(header); err != nil {
		return err
	}
	if _, err := bw.Write(m.Cells); err != nil {
		return err
	}
	return bw.Flush()
}

// Load decodes the file at path
func Load(path string) (*Map, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	m, err := Decode(bufio.NewReader(f))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return m, nil
}

// Save writes m to path, replacing any existing file
func Save(path string, m *Map) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := Encode(f, m); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// NumberField builds the generator's test map: every cell holds its row index
// truncated to a byte, start on the middle row at the right edge, finish on the
// middle row at the left edge
func NumberField(height, width int) (*Map, error) {
	if height <= 0 || width <= 1 {
		return nil, fmt.Errorf("%w: %dx%d", ErrDimensions, height, width)
	}
	m := New(height, width)
	for y := range height {
		for x := range width {
			m.Cells[y*width+x] = byte(y)
		}
	}
	m.Start = layout.Point{Y: height / 2, X: width - 1}
	m.Finish = layout.Point{Y: height / 2, X: 0}
	return m, nil
}
