package layout

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRectInset(t *testing.T) {
	r := NewRect(2, 3, 5, 8)
	assert.Equal(t, Rect{Y: 3, X: 4, H: 3, W: 6}, r.Inset(1))

	small := NewRect(0, 0, 1, 1).Inset(1)
	assert.True(t, small.Empty())
	assert.Equal(t, 0, small.H)
	assert.Equal(t, 0, small.W)
}

func TestRectContainsAndIntersect(t *testing.T) {
	r := NewRect(1, 1, 3, 3)
	assert.True(t, r.Contains(1, 1))
	assert.True(t, r.Contains(3, 3))
	assert.False(t, r.Contains(4, 1))
	assert.False(t, r.Contains(0, 2))

	assert.Equal(t, Rect{Y: 2, X: 2, H: 2, W: 2}, r.Intersect(NewRect(2, 2, 10, 10)))
	assert.True(t, r.Intersect(NewRect(10, 10, 2, 2)).Empty())
}

func TestNewRectClampsNegativeSize(t *testing.T) {
	r := NewRect(0, 0, -1, -4)
	assert.True(t, r.Empty())
	assert.Equal(t, 0, r.W)
}

func TestOffsetAndDelta(t *testing.T) {
	p, err := Offset(Point{Y: 2, X: 2}, -1, 3)
	require.NoError(t, err)
	assert.Equal(t, Point{Y: 1, X: 5}, p)

	p, err = Offset(Point{Y: 2, X: 2}, -3, 0)
	assert.ErrorIs(t, err, ErrNegativeOrigin)
	assert.Equal(t, Point{Y: 2, X: 2}, p)

	dy, dx := Delta(Point{Y: 4, X: 1}, Point{Y: 1, X: 6})
	assert.Equal(t, -3, dy)
	assert.Equal(t, 5, dx)
}
