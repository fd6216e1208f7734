// Package controller owns the interaction state of the drawing tool and
// routes input events to the grid, the element builder and the scene.
package controller

import (
	"github.com/hashicorp/go-hclog"
	"github.com/philipparndt/blueprint/internal/builder"
	"github.com/philipparndt/blueprint/internal/shape"
	"github.com/philipparndt/blueprint/pkg/geometry"
	"github.com/philipparndt/blueprint/pkg/grid"
)

// State is a snapshot of the interaction state
type State struct {
	ShowMenu      bool
	ShowGUI       bool
	ShowGrid      bool
	ShowCursor    bool
	DrawMode      shape.Kind
	ZoomIndex     int
	CellSize      int
	CursorPos     geometry.Point // Grid snapped
	PreviewActive bool
}

// Controller applies input events to the drawing state. It is not safe for
// concurrent use; the frame loop is its only caller.
type Controller struct {
	showMenu   bool
	showGUI    bool
	showGrid   bool
	showCursor bool

	zoom    *grid.Zoom
	builder *builder.Builder
	scene   *shape.Scene

	raw      geometry.Point
	cursor   geometry.Point
	quitting bool

	logger hclog.Logger
}

// New creates a controller with the start-up defaults: menu shown, overlay,
// grid and cursor visible, line mode.
func New(zoom *grid.Zoom, logger hclog.Logger) *Controller {
	if logger == nil {
		logger = hclog.NewNullLogger()
	}
	c := &Controller{
		showMenu:   true,
		showGUI:    true,
		showGrid:   true,
		showCursor: true,
		zoom:       zoom,
		builder:    builder.New(shape.KindLine),
		scene:      shape.NewScene(),
		logger:     logger,
	}
	c.resnap()
	return c
}

// Frame applies one frame's worth of events in order. The cursor is
// snapped before the first event so clicks always land on the grid.
func (c *Controller) Frame(events []Event) {
	c.resnap()
	for _, ev := range events {
		c.Handle(ev)
	}
}

// Handle applies a single event. Events with no meaning in the current
// state are ignored.
func (c *Controller) Handle(ev Event) {
	switch e := ev.(type) {
	case MoveEvent:
		c.raw = e.Pos
		c.resnap()
	case KeyEvent:
		c.handleKey(e.Action)
	case ClickEvent:
		if !c.showMenu {
			c.handleClick(e.Button)
		}
	}
}

func (c *Controller) handleKey(a Action) {
	switch a {
	case ActionQuit:
		c.logger.Debug("quit requested")
		c.quitting = true
		return
	case ActionToggleMenu:
		c.showMenu = !c.showMenu
		c.logger.Debug("menu toggled", "visible", c.showMenu)
		return
	}

	if c.showMenu {
		return
	}

	switch a {
	case ActionZoomUp:
		c.zoom.Up()
		c.resnap()
		c.logger.Debug("zoom changed", "index", c.zoom.Index(), "cell", c.zoom.CellSize())
	case ActionZoomDown:
		c.zoom.Down()
		c.resnap()
		c.logger.Debug("zoom changed", "index", c.zoom.Index(), "cell", c.zoom.CellSize())
	case ActionToggleGUI:
		c.showGUI = !c.showGUI
	case ActionToggleGrid:
		c.showGrid = !c.showGrid
	case ActionToggleCursor:
		c.showCursor = !c.showCursor
	case ActionModeLine:
		c.setMode(shape.KindLine)
	case ActionModeCircle:
		c.setMode(shape.KindCircle)
	case ActionModeBezier:
		c.setMode(shape.KindBezier)
	}
}

func (c *Controller) setMode(mode shape.Kind) {
	c.builder.SetMode(mode)
	c.logger.Debug("draw mode", "mode", mode, "pending", len(c.builder.Pending().Points))
}

func (c *Controller) handleClick(b Button) {
	switch b {
	case ButtonLeft:
		sh, ok := c.builder.Place(c.cursor)
		if !ok {
			return
		}
		if c.scene.Commit(sh) {
			c.logger.Debug("committed", "shape", sh, "count", c.scene.Len())
		} else {
			c.logger.Debug("duplicate rejected", "shape", sh)
		}
	case ButtonRight:
		if c.builder.Previewing() {
			c.builder.Reset()
			c.logger.Debug("pending element cancelled")
			return
		}
		if sh, ok := c.scene.UndoLast(); ok {
			c.logger.Debug("undo", "shape", sh, "count", c.scene.Len())
		}
	case ButtonMiddle:
		c.scene.Clear()
		c.logger.Debug("scene cleared")
	}
}

func (c *Controller) resnap() {
	c.cursor = c.zoom.Snap(c.raw)
}

// State returns a snapshot of the interaction state
func (c *Controller) State() State {
	return State{
		ShowMenu:      c.showMenu,
		ShowGUI:       c.showGUI,
		ShowGrid:      c.showGrid,
		ShowCursor:    c.showCursor,
		DrawMode:      c.builder.Mode(),
		ZoomIndex:     c.zoom.Index(),
		CellSize:      c.zoom.CellSize(),
		CursorPos:     c.cursor,
		PreviewActive: c.builder.Previewing(),
	}
}

// Pending returns the element under construction
func (c *Controller) Pending() builder.Pending {
	return c.builder.Pending()
}

// Shapes returns the committed shapes in draw order
func (c *Controller) Shapes() []shape.Shape {
	return c.scene.Shapes()
}

// Quitting reports whether quit was requested
func (c *Controller) Quitting() bool {
	return c.quitting
}
