package app

import (
	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/philipparndt/blueprint/internal/controller"
	"github.com/philipparndt/blueprint/pkg/geometry"
)

var mouseButtons = []struct {
	rl     rl.MouseButton
	button controller.Button
}{
	{rl.MouseLeftButton, controller.ButtonLeft},
	{rl.MouseRightButton, controller.ButtonRight},
	{rl.MouseMiddleButton, controller.ButtonMiddle},
}

// pollEvents collects this frame's input: the cursor position first, then
// bound key presses, then mouse button presses.
func (app *App) pollEvents() []controller.Event {
	mouse := rl.GetMousePosition()
	events := []controller.Event{
		controller.MoveEvent{Pos: geometry.NewPoint(int(mouse.X), int(mouse.Y))},
	}

	for _, b := range app.Input.bindings {
		if rl.IsKeyPressed(b.key) {
			events = append(events, controller.KeyEvent{Action: b.action})
		}
	}

	for _, m := range mouseButtons {
		if rl.IsMouseButtonPressed(m.rl) {
			events = append(events, controller.ClickEvent{Button: m.button})
		}
	}

	return events
}
