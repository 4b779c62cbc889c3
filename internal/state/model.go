package state

import "fmt"

type Point struct{ X, Y float32 }

// Sub returns p translated by -o.
func (p Point) Sub(o Point) Point {
	return Point{X: p.X - o.X, Y: p.Y - o.Y}
}

func (p Point) String() string {
	return fmt.Sprintf("(%.1f, %.1f)", p.X, p.Y)
}

// Tool is the active drawing behavior. The zero value is Pen.
type Tool int

const (
	ToolPen Tool = iota
	ToolEraser
)

func (t Tool) String() string {
	switch t {
	case ToolPen:
		return "pen"
	case ToolEraser:
		return "eraser"
	}
	return fmt.Sprintf("Tool(%d)", int(t))
}

// Input is one raw pointer or touch event in window coordinates.
type Input struct {
	Client  Point
	Touches []Point
}

// Normalize converts an input event to coordinates local to a surface whose
// top-left corner sits at origin. The first touch point wins over the
// pointer coordinates when any touches are present.
func Normalize(in Input, origin Point) Point {
	if len(in.Touches) > 0 {
		return in.Touches[0].Sub(origin)
	}
	return in.Client.Sub(origin)
}
