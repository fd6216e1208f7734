// Package render decides what each frame shows and hands the drawing to a
// Renderer backend.
package render

import (
	"fmt"
	"image"
	"image/color"

	"github.com/philipparndt/blueprint/internal/builder"
	"github.com/philipparndt/blueprint/internal/config"
	"github.com/philipparndt/blueprint/internal/controller"
	"github.com/philipparndt/blueprint/internal/shape"
	"github.com/philipparndt/blueprint/pkg/geometry"
)

// Renderer paints primitives. ClearFrame starts a frame and Present ends
// it; every other call happens between the two.
type Renderer interface {
	ClearFrame(c color.RGBA)
	DrawGridLines(cellSize int, c color.RGBA)
	DrawShape(s shape.Shape, c color.RGBA)
	DrawPreview(p builder.Pending, cursor geometry.Point, c color.RGBA)
	DrawText(text string, pos geometry.Point, fg, bg color.RGBA)
	DrawImage(img image.Image, pos geometry.Point)
	Present()
}

// Frame is everything the painter needs for one frame
type Frame struct {
	State   controller.State
	Shapes  []shape.Shape
	Pending builder.Pending
	Menu    image.Image
}

// Style holds the appearance settings
type Style struct {
	Palette          config.Palette
	ReadoutPrecision int
	CursorRadius     int
	LineHeight       int
}

// StyleFromConfig builds a style from the configuration
func StyleFromConfig(cfg *config.Config, lineHeight int) Style {
	return Style{
		Palette:          cfg.Palette,
		ReadoutPrecision: cfg.ReadoutPrecision,
		CursorRadius:     cfg.CursorRadius,
		LineHeight:       lineHeight,
	}
}

var transparent = color.RGBA{}

// Paint draws one complete frame: the menu when it is shown, otherwise the
// grid, committed shapes, the preview of the pending element, the overlay
// and the cursor, in that order.
func Paint(r Renderer, f Frame, st Style) {
	pal := st.Palette

	if f.State.ShowMenu {
		r.ClearFrame(pal.MenuBackground.Color())
		if f.Menu != nil {
			r.DrawImage(f.Menu, geometry.Point{})
		}
		r.Present()
		return
	}

	r.ClearFrame(pal.Background.Color())

	if f.State.ShowGrid {
		r.DrawGridLines(f.State.CellSize, pal.Grid.Color())
	}

	for _, s := range f.Shapes {
		r.DrawShape(s, pal.Shape.Color())
	}

	cursor := f.State.CursorPos
	if f.State.PreviewActive && !f.Pending.Empty() {
		r.DrawPreview(f.Pending, cursor, pal.Preview.Color())
		label := Readout(f.Pending, cursor, st.ReadoutPrecision)
		r.DrawText(label, geometry.Point{X: cursor.X + st.CursorRadius, Y: cursor.Y}, pal.Shape.Color(), transparent)
	}

	if f.State.ShowGUI {
		lines := Overlay(f.State)
		r.DrawText(lines[0], geometry.Point{}, pal.ModeText.Color(), pal.TextBackground.Color())
		for i, line := range lines[1:] {
			r.DrawText(line, geometry.Point{Y: (i + 1) * st.LineHeight}, pal.Text.Color(), pal.TextBackground.Color())
		}
	}

	if f.State.ShowCursor {
		r.DrawShape(shape.Circle{Center: cursor, Radius: float64(st.CursorRadius)}, pal.Cursor.Color())
	}

	r.Present()
}

// Overlay returns the status lines: draw mode first, then the snapped
// cursor position and the grid cell size.
func Overlay(s controller.State) []string {
	return []string{
		"DRAW MODE: " + s.DrawMode.String(),
		s.CursorPos.String(),
		fmt.Sprintf("GRID: %dpx", s.CellSize),
	}
}

// Readout describes the pending element measured to the cursor: the line
// length, the circle radius, or the number of curve control points.
func Readout(p builder.Pending, cursor geometry.Point, precision int) string {
	anchor, ok := p.Anchor()
	if !ok {
		return ""
	}
	switch p.Kind {
	case shape.KindLine:
		return fmt.Sprintf("len=%.*f", precision, geometry.Distance(anchor, cursor))
	case shape.KindCircle:
		return fmt.Sprintf("r=%.*f", precision, geometry.Distance(anchor, cursor))
	case shape.KindBezier:
		return fmt.Sprintf("pts=%d", len(p.Points))
	}
	return ""
}
