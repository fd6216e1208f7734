package render

import (
	"fmt"
	"image"
	"image/color"
	"testing"

	"github.com/philipparndt/blueprint/internal/builder"
	"github.com/philipparndt/blueprint/internal/config"
	"github.com/philipparndt/blueprint/internal/controller"
	"github.com/philipparndt/blueprint/internal/shape"
	"github.com/philipparndt/blueprint/pkg/geometry"
	"github.com/philipparndt/blueprint/pkg/grid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recorder is a Renderer that logs each call
type recorder struct {
	calls []string
	texts []string
}

func (r *recorder) ClearFrame(c color.RGBA) {
	r.calls = append(r.calls, "clear")
}

func (r *recorder) DrawGridLines(cellSize int, c color.RGBA) {
	r.calls = append(r.calls, fmt.Sprintf("grid %d", cellSize))
}

func (r *recorder) DrawShape(s shape.Shape, c color.RGBA) {
	r.calls = append(r.calls, "shape "+s.Kind().String())
}

func (r *recorder) DrawPreview(p builder.Pending, cursor geometry.Point, c color.RGBA) {
	r.calls = append(r.calls, "preview "+p.Kind.String())
}

func (r *recorder) DrawText(text string, pos geometry.Point, fg, bg color.RGBA) {
	r.calls = append(r.calls, "text")
	r.texts = append(r.texts, text)
}

func (r *recorder) DrawImage(img image.Image, pos geometry.Point) {
	r.calls = append(r.calls, "image")
}

func (r *recorder) Present() {
	r.calls = append(r.calls, "present")
}

func testStyle() Style {
	return StyleFromConfig(config.Default(), 50)
}

func canvasController(t *testing.T) *controller.Controller {
	t.Helper()
	c := controller.New(grid.NewZoom([]int{10}, 0), nil)
	c.Frame([]controller.Event{controller.KeyEvent{Action: controller.ActionToggleMenu}})
	return c
}

func frameOf(c *controller.Controller, menu image.Image) Frame {
	return Frame{State: c.State(), Shapes: c.Shapes(), Pending: c.Pending(), Menu: menu}
}

func TestPaintMenu(t *testing.T) {
	c := controller.New(grid.NewZoom([]int{10}, 0), nil)
	r := &recorder{}

	Paint(r, frameOf(c, image.NewRGBA(image.Rect(0, 0, 4, 4))), testStyle())
	assert.Equal(t, []string{"clear", "image", "present"}, r.calls)

	r = &recorder{}
	Paint(r, frameOf(c, nil), testStyle())
	assert.Equal(t, []string{"clear", "present"}, r.calls)
}

func TestPaintCanvasOrder(t *testing.T) {
	c := canvasController(t)
	c.Frame([]controller.Event{
		controller.MoveEvent{Pos: geometry.NewPoint(100, 100)},
		controller.ClickEvent{Button: controller.ButtonLeft},
		controller.MoveEvent{Pos: geometry.NewPoint(200, 100)},
		controller.ClickEvent{Button: controller.ButtonLeft},
		controller.MoveEvent{Pos: geometry.NewPoint(300, 300)},
		controller.ClickEvent{Button: controller.ButtonLeft},
		controller.MoveEvent{Pos: geometry.NewPoint(330, 340)},
	})

	r := &recorder{}
	Paint(r, frameOf(c, nil), testStyle())

	assert.Equal(t, []string{
		"clear",
		"grid 10",
		"shape LINE",
		"preview LINE",
		"text",
		"text", "text", "text",
		"shape CIRCLE",
		"present",
	}, r.calls)
	assert.Equal(t, []string{
		"len=50.0000",
		"DRAW MODE: LINE",
		"(330, 340)",
		"GRID: 10px",
	}, r.texts)
}

func TestPaintHonorsToggles(t *testing.T) {
	c := canvasController(t)
	c.Frame([]controller.Event{
		controller.KeyEvent{Action: controller.ActionToggleGrid},
		controller.KeyEvent{Action: controller.ActionToggleGUI},
		controller.KeyEvent{Action: controller.ActionToggleCursor},
	})

	r := &recorder{}
	Paint(r, frameOf(c, nil), testStyle())
	assert.Equal(t, []string{"clear", "present"}, r.calls)
}

func TestReadout(t *testing.T) {
	anchor := geometry.NewPoint(0, 0)
	cursor := geometry.NewPoint(1, 1)

	line := builder.Pending{Kind: shape.KindLine, Points: []geometry.Point{anchor}}
	assert.Equal(t, "len=1.4142", Readout(line, cursor, 4))
	assert.Equal(t, "len=1", Readout(line, cursor, 0))

	circle := builder.Pending{Kind: shape.KindCircle, Points: []geometry.Point{anchor}}
	assert.Equal(t, "r=1.41", Readout(circle, cursor, 2))

	curve := builder.Pending{Kind: shape.KindBezier, Points: []geometry.Point{anchor, cursor}}
	assert.Equal(t, "pts=2", Readout(curve, cursor, 4))

	assert.Equal(t, "", Readout(builder.Pending{Kind: shape.KindLine}, cursor, 4))
}

func TestReadoutMatchesCommittedLine(t *testing.T) {
	c := canvasController(t)
	c.Frame([]controller.Event{
		controller.MoveEvent{Pos: geometry.NewPoint(10, 10)},
		controller.ClickEvent{Button: controller.ButtonLeft},
		controller.MoveEvent{Pos: geometry.NewPoint(40, 50)},
	})
	previewed := Readout(c.Pending(), c.State().CursorPos, 4)

	c.Frame([]controller.Event{controller.ClickEvent{Button: controller.ButtonLeft}})
	shapes := c.Shapes()
	require.Len(t, shapes, 1)
	assert.Equal(t, previewed, fmt.Sprintf("len=%.4f", shapes[0].(shape.Line).Length()))
}

func TestOverlay(t *testing.T) {
	s := controller.State{DrawMode: shape.KindBezier, CursorPos: geometry.NewPoint(64, 128), CellSize: 64}
	assert.Equal(t, []string{"DRAW MODE: BEZIER", "(64, 128)", "GRID: 64px"}, Overlay(s))
}
