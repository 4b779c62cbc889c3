package state

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizePointer(t *testing.T) {
	p := Normalize(Input{Client: Point{X: 120, Y: 80}}, Point{X: 20, Y: 30})
	assert.Equal(t, Point{X: 100, Y: 50}, p)
}

func TestNormalizePrefersFirstTouch(t *testing.T) {
	in := Input{
		Client:  Point{X: 500, Y: 500},
		Touches: []Point{{X: 15, Y: 25}, {X: 90, Y: 90}},
	}
	assert.Equal(t, Point{X: 5, Y: 5}, Normalize(in, Point{X: 10, Y: 20}))
}

func TestNormalizeEmptyTouchesUsesPointer(t *testing.T) {
	in := Input{Client: Point{X: 7, Y: 9}, Touches: []Point{}}
	assert.Equal(t, Point{X: 7, Y: 9}, Normalize(in, Point{}))
}

func TestToolString(t *testing.T) {
	assert.Equal(t, "pen", ToolPen.String())
	assert.Equal(t, "eraser", ToolEraser.String())
	assert.Equal(t, "Tool(7)", Tool(7).String())

	var zero Tool
	assert.Equal(t, ToolPen, zero)
}

func TestStrokeLifecycle(t *testing.T) {
	var s Stroke
	assert.False(t, s.Active())

	_, _, ok := s.Advance(Point{X: 1, Y: 1})
	assert.False(t, ok, "moves while idle are ignored")

	s.Begin(Point{X: 10, Y: 10})
	assert.True(t, s.Active())
	assert.NotEmpty(t, s.ID())

	from, to, ok := s.Advance(Point{X: 20, Y: 10})
	assert.True(t, ok)
	assert.Equal(t, Point{X: 10, Y: 10}, from)
	assert.Equal(t, Point{X: 20, Y: 10}, to)
	assert.Equal(t, Point{X: 20, Y: 10}, s.Last())

	_, _, ok = s.Advance(Point{X: 20, Y: 10})
	assert.False(t, ok, "a move to the last point is not a segment")

	from, _, ok = s.Advance(Point{X: 20, Y: 30})
	assert.True(t, ok)
	assert.Equal(t, Point{X: 20, Y: 10}, from)

	assert.True(t, s.End())
	assert.False(t, s.End())
	_, _, ok = s.Advance(Point{X: 0, Y: 0})
	assert.False(t, ok)
}

func TestStrokeBeginAssignsFreshID(t *testing.T) {
	var s Stroke
	s.Begin(Point{})
	first := s.ID()
	s.End()
	s.Begin(Point{})
	assert.NotEqual(t, first, s.ID())
}
