// Package builder turns successive point placements into completed shapes.
package builder

import (
	"github.com/philipparndt/blueprint/internal/shape"
	"github.com/philipparndt/blueprint/pkg/geometry"
)

// State is the builder's progress through the current element
type State int

const (
	Empty State = iota
	OnePoint
	TwoPlusPoints
)

func (s State) String() string {
	switch s {
	case Empty:
		return "empty"
	case OnePoint:
		return "one-point"
	case TwoPlusPoints:
		return "two-plus-points"
	default:
		return "unknown"
	}
}

// Pending is a snapshot of the element under construction. It is never a
// shape: it only becomes one when the builder commits.
type Pending struct {
	Kind   shape.Kind
	Points []geometry.Point
}

// Empty reports whether no point has been placed
func (p Pending) Empty() bool {
	return len(p.Points) == 0
}

// Anchor returns the first placed point
func (p Pending) Anchor() (geometry.Point, bool) {
	if len(p.Points) == 0 {
		return geometry.Point{}, false
	}
	return p.Points[0], true
}

// Builder accumulates placed points for the current draw mode
type Builder struct {
	mode   shape.Kind
	points []geometry.Point
}

// New creates an empty builder in the given draw mode
func New(mode shape.Kind) *Builder {
	return &Builder{mode: mode}
}

// Mode returns the current draw mode
func (b *Builder) Mode() shape.Kind {
	return b.mode
}

// State returns the builder state
func (b *Builder) State() State {
	switch len(b.points) {
	case 0:
		return Empty
	case 1:
		return OnePoint
	default:
		return TwoPlusPoints
	}
}

// Previewing reports whether at least one point is placed
func (b *Builder) Previewing() bool {
	return len(b.points) > 0
}

// Pending returns a copy of the element under construction
func (b *Builder) Pending() Pending {
	return Pending{
		Kind:   b.mode,
		Points: append([]geometry.Point(nil), b.points...),
	}
}

// Place places a point. When the point completes an element the builder
// resets and returns the finished shape with ok set.
//
// Lines and circles complete on their second point. Curves complete when a
// point repeats the previously placed one; a curve with fewer than
// shape.MinBezierPoints points is discarded instead.
func (b *Builder) Place(p geometry.Point) (sh shape.Shape, ok bool) {
	switch b.mode {
	case shape.KindLine:
		if len(b.points) == 0 {
			b.points = append(b.points, p)
			return nil, false
		}
		sh = shape.Line{Start: b.points[0], End: p}
		b.Reset()
		return sh, true

	case shape.KindCircle:
		if len(b.points) == 0 {
			b.points = append(b.points, p)
			return nil, false
		}
		center := b.points[0]
		sh = shape.Circle{Center: center, Radius: geometry.Distance(center, p)}
		b.Reset()
		return sh, true

	case shape.KindBezier:
		if n := len(b.points); n > 0 && b.points[n-1] == p {
			curve, err := shape.NewBezier(b.points)
			b.Reset()
			if err != nil {
				return nil, false
			}
			return curve, true
		}
		b.points = append(b.points, p)
		return nil, false
	}

	return nil, false
}

// Reset discards the element under construction
func (b *Builder) Reset() {
	b.points = nil
}

// SetMode switches the draw mode. Switching to a line or circle keeps at
// most the first placed point as the new anchor; switching to a curve keeps
// every placed point as a control point.
func (b *Builder) SetMode(mode shape.Kind) {
	b.mode = mode
	if mode != shape.KindBezier && len(b.points) > 1 {
		b.points = b.points[:1:1]
	}
}
