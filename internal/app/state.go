package app

import (
	"image"
	"sync"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/philipparndt/blueprint/internal/config"
	"github.com/philipparndt/blueprint/internal/render"
	"github.com/philipparndt/blueprint/pkg/watcher"
)

// DisplayState holds the display size queried once at start-up
type DisplayState struct {
	width  int
	height int
}

// ConfigState holds the active configuration and hot reload state
type ConfigState struct {
	cfg         *config.Config
	path        string               // Config file path, empty when running on defaults
	overrides   config.Overrides     // Command line settings, reapplied on reload
	fileWatcher *watcher.FileWatcher // Watches path for edits
	mu          sync.Mutex           // Guards pending and needsReload
	pending     *config.Config       // Parsed by the watcher goroutine
	needsReload bool
}

// InputState holds key bindings and cursor visibility tracking
type InputState struct {
	bindings      []keyBinding
	cursorVisible bool
}

// UIState holds UI-related state
type UIState struct {
	font       rl.Font
	fontSize   float32
	lineHeight int
	menu       image.Image // Menu overlay scaled to the display
	style      render.Style
}
