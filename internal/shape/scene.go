// Package shape holds the completed canvas shapes and the scene that
// orders them.
package shape

// Scene is the ordered list of committed shapes. Insertion order is draw
// order: later shapes paint on top.
type Scene struct {
	shapes []Shape
}

// NewScene creates an empty scene
func NewScene() *Scene {
	return &Scene{shapes: make([]Shape, 0)}
}

// Append adds s on top of the scene unconditionally
func (s *Scene) Append(sh Shape) {
	s.shapes = append(s.shapes, sh)
}

// Commit appends sh unless it is a line or circle already present in the
// scene. Curves are always appended. It reports whether sh was appended.
func (s *Scene) Commit(sh Shape) bool {
	if sh.Kind() != KindBezier && s.Contains(sh) {
		return false
	}
	s.Append(sh)
	return true
}

// Contains reports whether an equal shape is in the scene
func (s *Scene) Contains(sh Shape) bool {
	for _, existing := range s.shapes {
		if existing.Equal(sh) {
			return true
		}
	}
	return false
}

// UndoLast removes and returns the most recently appended shape. It is a
// no-op on an empty scene.
func (s *Scene) UndoLast() (Shape, bool) {
	if len(s.shapes) == 0 {
		return nil, false
	}
	last := s.shapes[len(s.shapes)-1]
	s.shapes[len(s.shapes)-1] = nil
	s.shapes = s.shapes[:len(s.shapes)-1]
	return last, true
}

// Clear removes every shape
func (s *Scene) Clear() {
	s.shapes = make([]Shape, 0)
}

// Len returns the number of shapes
func (s *Scene) Len() int {
	return len(s.shapes)
}

// Shapes returns the shapes in draw order. The slice is a copy.
func (s *Scene) Shapes() []Shape {
	return append([]Shape(nil), s.shapes...)
}
