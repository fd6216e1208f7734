package app

import (
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/philipparndt/blueprint/internal/config"
	"github.com/philipparndt/blueprint/internal/render"
	"github.com/philipparndt/blueprint/pkg/watcher"
	"github.com/pkg/errors"
)

const configDebounce = 300 * time.Millisecond

// setupConfigWatcher reloads the config file whenever it changes. Parsing
// happens on the watcher goroutine; the result is applied by the frame
// loop.
func (app *App) setupConfigWatcher() error {
	logger := app.logger.Named("config")

	fw, err := watcher.NewFileWatcher(configDebounce, logger)
	if err != nil {
		return err
	}

	callback := func(changedFile string) {
		cfg, err := config.Load(changedFile)
		if err != nil {
			logger.Warn("ignoring invalid config", "file", changedFile, "error", err)
			return
		}
		logger.Info("config changed", "file", changedFile)

		app.Config.mu.Lock()
		app.Config.pending = cfg
		app.Config.needsReload = true
		app.Config.mu.Unlock()
	}

	if err := fw.Watch([]string{app.Config.path}, callback); err != nil {
		fw.Close()
		return errors.Wrap(err, "failed to watch config")
	}

	fw.Start()
	app.Config.fileWatcher = fw
	return nil
}

// applyReloadedConfig swaps in a config parsed by the watcher. Command line
// overrides are reapplied; fullscreen and settings derived from the display
// size are kept.
func (app *App) applyReloadedConfig() {
	app.Config.mu.Lock()
	if !app.Config.needsReload {
		app.Config.mu.Unlock()
		return
	}
	cfg := app.Config.pending
	app.Config.pending = nil
	app.Config.needsReload = false
	app.Config.mu.Unlock()

	bindings, err := resolveBindings(cfg.Bindings())
	if err != nil {
		app.logger.Warn("ignoring reloaded config", "error", err)
		return
	}
	app.Input.bindings = bindings

	old := app.Config.cfg
	app.Config.overrides.Apply(cfg)
	cfg.Fullscreen = old.Fullscreen
	if cfg.FrameRate != old.FrameRate {
		rl.SetTargetFPS(int32(cfg.FrameRate))
	}
	app.renderer.curveSegments = cfg.CurveSegments
	app.UI.style = render.StyleFromConfig(cfg, app.UI.lineHeight)

	if cfg.MenuImage != old.MenuImage || cfg.Palette.MenuBackground != old.Palette.MenuBackground || !sameKeys(cfg.Keys, old.Keys) {
		app.renderer.Forget(app.UI.menu)
		app.UI.menu = app.loadMenu(cfg)
	}

	app.Config.cfg = cfg
}

func sameKeys(a, b map[string]string) bool {
	if len(a) != len(b) {
		return false
	}
	for k, v := range a {
		if b[k] != v {
			return false
		}
	}
	return true
}
