package shape

import (
	"fmt"

	"github.com/philipparndt/blueprint/pkg/geometry"
)

// Kind identifies a shape type and doubles as the draw mode
type Kind int

const (
	KindLine Kind = iota
	KindCircle
	KindBezier
)

func (k Kind) String() string {
	switch k {
	case KindLine:
		return "LINE"
	case KindCircle:
		return "CIRCLE"
	case KindBezier:
		return "BEZIER"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// MinBezierPoints is the smallest control polygon accepted for a curve
const MinBezierPoints = 3

// Shape is a completed, immutable canvas element. Only Line, Circle and
// Bezier implement it.
type Shape interface {
	Kind() Kind
	Equal(other Shape) bool
	isShape()
}

// Line is a straight segment between two grid points
type Line struct {
	Start geometry.Point
	End   geometry.Point
}

// Circle is an outline around Center. Radius keeps the exact distance it
// was built from so redraws are stable.
type Circle struct {
	Center geometry.Point
	Radius float64
}

// Bezier is a curve defined by at least MinBezierPoints control points
type Bezier struct {
	points []geometry.Point
}

// NewBezier builds a curve from a copy of the control points
func NewBezier(points []geometry.Point) (Bezier, error) {
	if len(points) < MinBezierPoints {
		return Bezier{}, fmt.Errorf("bezier needs at least %d control points, got %d", MinBezierPoints, len(points))
	}
	return Bezier{points: append([]geometry.Point(nil), points...)}, nil
}

func (Line) Kind() Kind   { return KindLine }
func (Circle) Kind() Kind { return KindCircle }
func (Bezier) Kind() Kind { return KindBezier }

func (Line) isShape()   {}
func (Circle) isShape() {}
func (Bezier) isShape() {}

// Length returns the segment length
func (l Line) Length() float64 {
	return geometry.Distance(l.Start, l.End)
}

// ControlPoints returns a copy of the control polygon
func (b Bezier) ControlPoints() []geometry.Point {
	return append([]geometry.Point(nil), b.points...)
}

// Equal reports whether other is a line with the same endpoints
func (l Line) Equal(other Shape) bool {
	o, ok := other.(Line)
	return ok && o == l
}

// Equal reports whether other is a circle with the same center and radius
func (c Circle) Equal(other Shape) bool {
	o, ok := other.(Circle)
	return ok && o == c
}

// Equal reports whether other is a curve with the same control points
func (b Bezier) Equal(other Shape) bool {
	o, ok := other.(Bezier)
	if !ok || len(o.points) != len(b.points) {
		return false
	}
	for i := range b.points {
		if b.points[i] != o.points[i] {
			return false
		}
	}
	return true
}

func (l Line) String() string {
	return fmt.Sprintf("Line{%v -> %v}", l.Start, l.End)
}

func (c Circle) String() string {
	return fmt.Sprintf("Circle{%v r=%g}", c.Center, c.Radius)
}

func (b Bezier) String() string {
	return fmt.Sprintf("Bezier%v", b.points)
}
