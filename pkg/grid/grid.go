// Package grid derives the zoom levels of the drawing grid from the display
// size and snaps raw cursor coordinates onto the active grid.
package grid

import (
	"fmt"
	"math"

	"github.com/philipparndt/blueprint/pkg/geometry"
)

// ComputeZoomCycle returns every power-of-two cell size d that divides width
// and does not exceed gcd(width, height), in ascending order. The result
// always contains 1 when width >= 1.
func ComputeZoomCycle(width, height int) []int {
	if width < 1 {
		return nil
	}

	limit := gcd(width, height)
	cycle := make([]int, 0, 8)
	for d := 1; width%d == 0; d *= 2 {
		if d <= limit {
			cycle = append(cycle, d)
		}
	}
	return cycle
}

func gcd(a, b int) int {
	if a < 0 {
		a = -a
	}
	if b < 0 {
		b = -b
	}
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

// Snap maps a raw coordinate onto the nearest grid intersection. Ties at .5
// round half to even, so a coordinate exactly between two grid lines snaps
// to the line with an even cell index.
func Snap(cellSize int, raw geometry.Point) geometry.Point {
	if cellSize <= 0 {
		panic(fmt.Sprintf("grid: invalid cell size %d", cellSize))
	}
	return geometry.Point{
		X: snapAxis(cellSize, raw.X),
		Y: snapAxis(cellSize, raw.Y),
	}
}

func snapAxis(cellSize, v int) int {
	return cellSize * int(math.RoundToEven(float64(v)/float64(cellSize)))
}

// Zoom is a position in a zoom cycle. The zero value is not usable; create
// one with NewZoom.
type Zoom struct {
	cycle []int
	index int
}

// NewZoom creates a zoom over the cycle starting at index. It panics when
// the cycle is empty or index is out of range: a wrong cell size would
// silently corrupt every snapped coordinate that follows.
func NewZoom(cycle []int, index int) *Zoom {
	z := &Zoom{cycle: append([]int(nil), cycle...), index: index}
	z.check()
	return z
}

// NewZoomForDisplay creates a zoom over the display's cycle, starting at the
// coarsest level.
func NewZoomForDisplay(width, height int) *Zoom {
	cycle := ComputeZoomCycle(width, height)
	return NewZoom(cycle, len(cycle)-1)
}

func (z *Zoom) check() {
	if len(z.cycle) == 0 {
		panic("grid: empty zoom cycle")
	}
	if z.index < 0 || z.index >= len(z.cycle) {
		panic(fmt.Sprintf("grid: zoom index %d out of range [0, %d)", z.index, len(z.cycle)))
	}
}

// Index returns the current zoom level
func (z *Zoom) Index() int {
	return z.index
}

// Levels returns a copy of the zoom cycle
func (z *Zoom) Levels() []int {
	return append([]int(nil), z.cycle...)
}

// CellSize returns the cell size at the current zoom level
func (z *Zoom) CellSize() int {
	z.check()
	return z.cycle[z.index]
}

// Up moves to the next larger cell size, wrapping to the smallest.
func (z *Zoom) Up() {
	z.index = (z.index + 1) % len(z.cycle)
}

// Down moves to the next smaller cell size, wrapping to the largest.
func (z *Zoom) Down() {
	z.index = (z.index - 1 + len(z.cycle)) % len(z.cycle)
}

// Snap snaps raw using the current cell size
func (z *Zoom) Snap(raw geometry.Point) geometry.Point {
	return Snap(z.CellSize(), raw)
}
