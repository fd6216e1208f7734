package geometry

// BezierAt evaluates the Bézier curve defined by the control points at t in
// [0, 1] using de Casteljau's algorithm. Any number of control points is
// accepted; a single point evaluates to itself and no points to the origin.
func BezierAt(ctrl []Point, t float64) Vec2 {
	if len(ctrl) == 0 {
		return Vec2{}
	}

	work := make([]Vec2, len(ctrl))
	for i, p := range ctrl {
		work[i] = p.Vec2()
	}

	for n := len(work) - 1; n > 0; n-- {
		for i := 0; i < n; i++ {
			work[i] = work[i].Lerp(work[i+1], t)
		}
	}
	return work[0]
}

// FlattenBezier approximates the curve with segments+1 evenly spaced
// samples, first and last sample coinciding with the end control points.
func FlattenBezier(ctrl []Point, segments int) []Vec2 {
	if len(ctrl) == 0 {
		return nil
	}
	if segments < 1 {
		segments = 1
	}

	out := make([]Vec2, 0, segments+1)
	for i := 0; i <= segments; i++ {
		t := float64(i) / float64(segments)
		out = append(out, BezierAt(ctrl, t))
	}
	return out
}
