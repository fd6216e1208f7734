package grid

import (
	"testing"

	"github.com/philipparndt/blueprint/pkg/geometry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComputeZoomCycle1080p(t *testing.T) {
	assert.Equal(t, []int{1, 2, 4, 8, 16, 32, 64}, ComputeZoomCycle(1920, 1080))
}

func TestComputeZoomCycleProperties(t *testing.T) {
	sizes := [][2]int{
		{1920, 1080}, {2560, 1440}, {1366, 768}, {1280, 1024},
		{3840, 2160}, {800, 600}, {1, 1}, {7, 3}, {1024, 1024},
	}
	for _, s := range sizes {
		w, h := s[0], s[1]
		cycle := ComputeZoomCycle(w, h)
		require.NotEmpty(t, cycle, "cycle for %dx%d", w, h)
		assert.Equal(t, 1, cycle[0], "cycle for %dx%d starts at 1", w, h)

		limit := gcd(w, h)
		for i, c := range cycle {
			assert.Zero(t, w%c, "%d does not divide width %d", c, w)
			assert.LessOrEqual(t, c, limit, "%d exceeds gcd(%d, %d)", c, w, h)
			if i > 0 {
				assert.Equal(t, cycle[i-1]*2, c, "cycle for %dx%d must double", w, h)
			}
		}
	}
}

func TestComputeZoomCycleDegenerate(t *testing.T) {
	assert.Nil(t, ComputeZoomCycle(0, 1080))
	assert.Equal(t, []int{1}, ComputeZoomCycle(1921, 1080))
}

func TestSnap(t *testing.T) {
	tests := []struct {
		cell     int
		raw      geometry.Point
		expected geometry.Point
	}{
		{10, geometry.NewPoint(104, 96), geometry.NewPoint(100, 100)},
		{10, geometry.NewPoint(106, 94), geometry.NewPoint(110, 90)},
		{1, geometry.NewPoint(123, 456), geometry.NewPoint(123, 456)},
		{16, geometry.NewPoint(0, 0), geometry.NewPoint(0, 0)},
		// Ties round half to even
		{10, geometry.NewPoint(5, 15), geometry.NewPoint(0, 20)},
		{10, geometry.NewPoint(25, 35), geometry.NewPoint(20, 40)},
		{10, geometry.NewPoint(-5, -15), geometry.NewPoint(0, -20)},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.expected, Snap(tt.cell, tt.raw), "snap(%d, %v)", tt.cell, tt.raw)
	}
}

func TestSnapIdempotent(t *testing.T) {
	for _, cell := range []int{1, 2, 4, 8, 16, 32, 64, 3, 7, 120} {
		for x := -130; x <= 130; x += 7 {
			for y := -130; y <= 130; y += 11 {
				p := geometry.NewPoint(x, y)
				once := Snap(cell, p)
				assert.Equal(t, once, Snap(cell, once), "snap(%d, %v)", cell, p)
			}
		}
	}
}

func TestSnapInvalidCellPanics(t *testing.T) {
	assert.Panics(t, func() { Snap(0, geometry.NewPoint(1, 1)) })
}

func TestZoomWraps(t *testing.T) {
	z := NewZoom([]int{1, 2, 4}, 0)

	z.Down()
	assert.Equal(t, 2, z.Index())
	assert.Equal(t, 4, z.CellSize())

	z.Up()
	assert.Equal(t, 0, z.Index())
	assert.Equal(t, 1, z.CellSize())

	z.Up()
	z.Up()
	assert.Equal(t, 4, z.CellSize())
}

func TestZoomForDisplayStartsCoarse(t *testing.T) {
	z := NewZoomForDisplay(1920, 1080)
	assert.Equal(t, 64, z.CellSize())
	assert.Equal(t, geometry.NewPoint(128, 64), z.Snap(geometry.NewPoint(140, 70)))
}

func TestZoomInvalidPanics(t *testing.T) {
	assert.Panics(t, func() { NewZoom(nil, 0) })
	assert.Panics(t, func() { NewZoom([]int{1, 2}, 2) })
	assert.Panics(t, func() { NewZoom([]int{1, 2}, -1) })
}

func TestZoomLevelsIsCopy(t *testing.T) {
	z := NewZoom([]int{1, 2}, 1)
	levels := z.Levels()
	levels[1] = 99
	assert.Equal(t, 2, z.CellSize())
}
