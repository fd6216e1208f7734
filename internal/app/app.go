package app

import (
	"image"
	"image/color"
	"os"
	"path/filepath"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/hashicorp/go-hclog"
	"github.com/philipparndt/blueprint/internal/config"
	"github.com/philipparndt/blueprint/internal/controller"
	"github.com/philipparndt/blueprint/internal/menu"
	"github.com/philipparndt/blueprint/internal/render"
	"github.com/philipparndt/blueprint/pkg/grid"
	"github.com/pkg/errors"
)

const (
	windowTitle     = "Blueprint"
	overlayFontSize = 40
	overlayLineStep = 50
)

// Options are the start-up settings coming from the command line
type Options struct {
	ConfigPath string
	Windowed   bool
	FrameRate  int // Overrides the config when positive
	Logger     hclog.Logger
}

// App is the process-wide context: window, font, renderer and the
// interaction controller. It is created once by Run.
type App struct {
	Display DisplayState
	Config  ConfigState
	Input   InputState
	UI      UIState

	controller *controller.Controller
	renderer   *raylibRenderer
	logger     hclog.Logger
}

// Run opens the drawing window and runs the frame loop until quit
func Run(opts Options) error {
	logger := opts.Logger
	if logger == nil {
		logger = hclog.NewNullLogger()
	}

	cfg, err := config.LoadOptional(opts.ConfigPath)
	if err != nil {
		return err
	}
	overrides := config.Overrides{FrameRate: opts.FrameRate, Windowed: opts.Windowed}
	overrides.Apply(cfg)

	app := &App{
		Config: ConfigState{cfg: cfg, path: opts.ConfigPath, overrides: overrides},
		logger: logger,
	}

	bindings, err := resolveBindings(cfg.Bindings())
	if err != nil {
		return errors.Wrap(err, "key bindings")
	}
	app.Input.bindings = bindings

	rl.SetTraceLogLevel(rl.LogWarning)
	rl.SetConfigFlags(rl.FlagMsaa4xHint) // Must be before InitWindow
	rl.InitWindow(0, 0, windowTitle)
	defer rl.CloseWindow()

	app.Display.width, app.Display.height = displaySize()
	logger.Info("display", "width", app.Display.width, "height", app.Display.height)
	rl.SetWindowSize(app.Display.width, app.Display.height)
	if cfg.Fullscreen && !rl.IsWindowFullscreen() {
		rl.ToggleFullscreen()
	}

	// ESC is an ordinary binding, not raylib's implicit exit key
	rl.SetExitKey(rl.KeyNull)
	rl.SetTargetFPS(int32(cfg.FrameRate))

	zoom := grid.NewZoomForDisplay(app.Display.width, app.Display.height)
	logger.Debug("zoom cycle", "levels", zoom.Levels())
	app.controller = controller.New(zoom, logger.Named("controller"))

	app.UI.font = rl.GetFontDefault()
	app.UI.fontSize = overlayFontSize
	app.UI.lineHeight = overlayLineStep
	app.UI.style = render.StyleFromConfig(cfg, app.UI.lineHeight)
	app.UI.menu = app.loadMenu(cfg)

	app.renderer = newRaylibRenderer(app.Display.width, app.Display.height, app.UI.font, app.UI.fontSize, cfg.CurveSegments)
	defer app.renderer.Close()

	if app.Config.path != "" {
		if !dirExists(filepath.Dir(app.Config.path)) {
			logger.Debug("config directory missing, auto-reload disabled", "path", app.Config.path)
		} else if err := app.setupConfigWatcher(); err != nil {
			logger.Warn("config auto-reload disabled", "error", err)
		} else {
			defer app.Config.fileWatcher.Close()
		}
	}

	app.syncCursorVisibility(true)

	for !app.controller.Quitting() {
		if rl.WindowShouldClose() {
			break
		}

		app.applyReloadedConfig()

		app.controller.Frame(app.pollEvents())
		state := app.controller.State()
		app.syncCursorVisibility(state.ShowMenu)

		render.Paint(app.renderer, render.Frame{
			State:   state,
			Shapes:  app.controller.Shapes(),
			Pending: app.controller.Pending(),
			Menu:    app.UI.menu,
		}, app.UI.style)
	}

	logger.Info("exiting")
	return nil
}

func dirExists(dir string) bool {
	info, err := os.Stat(dir)
	return err == nil && info.IsDir()
}

// displaySize returns the resolution of the monitor the window opened on
func displaySize() (int, int) {
	monitor := rl.GetCurrentMonitor()
	return rl.GetMonitorWidth(monitor), rl.GetMonitorHeight(monitor)
}

// loadMenu loads the configured menu image, falling back to a generated
// help card when none is configured or it cannot be read.
func (app *App) loadMenu(cfg *config.Config) image.Image {
	w, h := app.Display.width, app.Display.height
	if cfg.MenuImage != "" {
		img, err := menu.Load(cfg.MenuImage, w, h)
		if err == nil {
			return img
		}
		app.logger.Warn("menu image unavailable, using help card", "error", err)
	}

	entries := make([]menu.Entry, 0, len(cfg.Keys)+3)
	for _, action := range controller.Actions() {
		if key, ok := cfg.Keys[action.String()]; ok {
			entries = append(entries, menu.Entry{Key: key, Action: action.String()})
		}
	}
	entries = append(entries,
		menu.Entry{Key: "left click", Action: "place point"},
		menu.Entry{Key: "right click", Action: "cancel / undo"},
		menu.Entry{Key: "middle click", Action: "clear"},
	)
	return menu.HelpCard(w, h, "BLUEPRINT", entries,
		cfg.Palette.MenuBackground.Color(), color.RGBA{A: 255})
}

// syncCursorVisibility shows the OS cursor in the menu and hides it over
// the canvas, where the snapped cursor ring replaces it.
func (app *App) syncCursorVisibility(menuShown bool) {
	if menuShown == app.Input.cursorVisible {
		return
	}
	if menuShown {
		rl.ShowCursor()
	} else {
		rl.HideCursor()
	}
	app.Input.cursorVisible = menuShown
}
