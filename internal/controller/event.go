package controller

import (
	"fmt"
	"strings"

	"github.com/philipparndt/blueprint/pkg/geometry"
)

// Action is a keyboard command, independent of the physical key bound to it
type Action int

const (
	ActionNone Action = iota
	ActionQuit
	ActionToggleMenu
	ActionZoomUp
	ActionZoomDown
	ActionToggleGUI
	ActionToggleGrid
	ActionToggleCursor
	ActionModeLine
	ActionModeCircle
	ActionModeBezier
)

var actionNames = map[Action]string{
	ActionQuit:         "quit",
	ActionToggleMenu:   "menu",
	ActionZoomUp:       "zoom_up",
	ActionZoomDown:     "zoom_down",
	ActionToggleGUI:    "gui",
	ActionToggleGrid:   "grid",
	ActionToggleCursor: "cursor",
	ActionModeLine:     "mode_line",
	ActionModeCircle:   "mode_circle",
	ActionModeBezier:   "mode_bezier",
}

func (a Action) String() string {
	if name, ok := actionNames[a]; ok {
		return name
	}
	return "none"
}

// Actions returns every bindable action
func Actions() []Action {
	return []Action{
		ActionQuit, ActionToggleMenu, ActionZoomUp, ActionZoomDown,
		ActionToggleGUI, ActionToggleGrid, ActionToggleCursor,
		ActionModeLine, ActionModeCircle, ActionModeBezier,
	}
}

// ParseAction resolves an action by its configuration name
func ParseAction(name string) (Action, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for a, n := range actionNames {
		if n == name {
			return a, nil
		}
	}
	return ActionNone, fmt.Errorf("unknown action %q", name)
}

// Button is a mouse button
type Button int

const (
	ButtonLeft Button = iota
	ButtonRight
	ButtonMiddle
)

// Event is one discrete input. The concrete types are KeyEvent, ClickEvent
// and MoveEvent.
type Event interface {
	isEvent()
}

// KeyEvent is a key press already resolved to its action
type KeyEvent struct {
	Action Action
}

// ClickEvent is a mouse button press
type ClickEvent struct {
	Button Button
}

// MoveEvent carries the raw, unsnapped cursor position
type MoveEvent struct {
	Pos geometry.Point
}

func (KeyEvent) isEvent()   {}
func (ClickEvent) isEvent() {}
func (MoveEvent) isEvent()  {}
