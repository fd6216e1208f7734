package shape

import (
	"testing"

	"github.com/philipparndt/blueprint/pkg/geometry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pt(x, y int) geometry.Point {
	return geometry.NewPoint(x, y)
}

func mustBezier(t *testing.T, points ...geometry.Point) Bezier {
	t.Helper()
	b, err := NewBezier(points)
	require.NoError(t, err)
	return b
}

func TestAppendUndoInverse(t *testing.T) {
	shapes := []Shape{
		Line{Start: pt(0, 0), End: pt(10, 10)},
		Circle{Center: pt(5, 5), Radius: 3},
		mustBezier(t, pt(0, 0), pt(10, 20), pt(20, 0)),
	}

	s := NewScene()
	s.Append(Line{Start: pt(1, 1), End: pt(2, 2)})
	for _, sh := range shapes {
		before := s.Shapes()
		s.Append(sh)

		removed, ok := s.UndoLast()
		require.True(t, ok)
		assert.True(t, removed.Equal(sh))
		assert.Equal(t, before, s.Shapes())
	}
}

func TestUndoIsLIFO(t *testing.T) {
	s := NewScene()
	first := Line{Start: pt(0, 0), End: pt(1, 0)}
	second := Circle{Center: pt(0, 0), Radius: 1}
	s.Append(first)
	s.Append(second)

	removed, ok := s.UndoLast()
	require.True(t, ok)
	assert.Equal(t, second, removed)
	assert.Equal(t, []Shape{first}, s.Shapes())
}

func TestUndoEmptyIsNoop(t *testing.T) {
	s := NewScene()
	removed, ok := s.UndoLast()
	assert.False(t, ok)
	assert.Nil(t, removed)
	assert.Equal(t, 0, s.Len())
}

func TestCommitRejectsDuplicateLinesAndCircles(t *testing.T) {
	s := NewScene()
	line := Line{Start: pt(100, 100), End: pt(200, 100)}
	circle := Circle{Center: pt(500, 500), Radius: 30}

	assert.True(t, s.Commit(line))
	assert.True(t, s.Commit(circle))
	before := s.Shapes()

	assert.False(t, s.Commit(Line{Start: pt(100, 100), End: pt(200, 100)}))
	assert.False(t, s.Commit(Circle{Center: pt(500, 500), Radius: 30}))
	assert.Equal(t, before, s.Shapes())

	// Reversed endpoints are a different line
	assert.True(t, s.Commit(Line{Start: pt(200, 100), End: pt(100, 100)}))
}

func TestCommitKeepsDuplicateCurves(t *testing.T) {
	s := NewScene()
	curve := mustBezier(t, pt(0, 0), pt(10, 20), pt(20, 0))

	assert.True(t, s.Commit(curve))
	assert.True(t, s.Commit(mustBezier(t, pt(0, 0), pt(10, 20), pt(20, 0))))
	assert.Equal(t, 2, s.Len())
}

func TestClear(t *testing.T) {
	s := NewScene()
	s.Append(Line{Start: pt(0, 0), End: pt(1, 1)})
	s.Append(Circle{Center: pt(0, 0), Radius: 0})
	s.Clear()
	assert.Equal(t, 0, s.Len())
	assert.Empty(t, s.Shapes())

	s.Clear()
	assert.Equal(t, 0, s.Len())
}

func TestShapesIsCopy(t *testing.T) {
	s := NewScene()
	s.Append(Line{Start: pt(0, 0), End: pt(1, 1)})
	shapes := s.Shapes()
	shapes[0] = Circle{}
	assert.Equal(t, KindLine, s.Shapes()[0].Kind())
}

func TestEquality(t *testing.T) {
	line := Line{Start: pt(0, 0), End: pt(3, 4)}
	assert.True(t, line.Equal(Line{Start: pt(0, 0), End: pt(3, 4)}))
	assert.False(t, line.Equal(Circle{Center: pt(0, 0), Radius: 5}))
	assert.InDelta(t, 5.0, line.Length(), 1e-12)

	a := mustBezier(t, pt(0, 0), pt(1, 1), pt(2, 0))
	b := mustBezier(t, pt(0, 0), pt(1, 1), pt(2, 0), pt(3, 3))
	assert.False(t, a.Equal(b))
	assert.False(t, a.Equal(line))
}

func TestNewBezierRequiresThreePoints(t *testing.T) {
	_, err := NewBezier([]geometry.Point{pt(0, 0), pt(1, 1)})
	assert.Error(t, err)

	src := []geometry.Point{pt(0, 0), pt(1, 1), pt(2, 2)}
	b, err := NewBezier(src)
	require.NoError(t, err)
	src[0] = pt(9, 9)
	assert.Equal(t, pt(0, 0), b.ControlPoints()[0])
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "LINE", KindLine.String())
	assert.Equal(t, "CIRCLE", KindCircle.String())
	assert.Equal(t, "BEZIER", KindBezier.String())
	assert.Equal(t, "Kind(7)", Kind(7).String())
}
