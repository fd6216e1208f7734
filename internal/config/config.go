// Package config loads the optional TOML configuration of the drawing tool.
package config

import (
	"image/color"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/philipparndt/blueprint/internal/controller"
	"github.com/pkg/errors"
)

// RGB is an opaque color written as [r, g, b] in the config file
type RGB [3]uint8

// Color converts to an opaque RGBA color
func (c RGB) Color() color.RGBA {
	return color.RGBA{R: c[0], G: c[1], B: c[2], A: 255}
}

// Palette holds every color the renderer uses
type Palette struct {
	Background     RGB `toml:"background"`
	Grid           RGB `toml:"grid"`
	Shape          RGB `toml:"shape"`
	Preview        RGB `toml:"preview"`
	Cursor         RGB `toml:"cursor"`
	Text           RGB `toml:"text"`
	TextBackground RGB `toml:"text_background"`
	ModeText       RGB `toml:"mode_text"`
	MenuBackground RGB `toml:"menu_background"`
}

// Config is the complete tool configuration
type Config struct {
	FrameRate        int               `toml:"frame_rate"`
	Fullscreen       bool              `toml:"fullscreen"`
	ReadoutPrecision int               `toml:"readout_precision"`
	CursorRadius     int               `toml:"cursor_radius"`
	CurveSegments    int               `toml:"curve_segments"`
	MenuImage        string            `toml:"menu_image"`
	Palette          Palette           `toml:"palette"`
	Keys             map[string]string `toml:"keys"` // action name -> key name
}

// Default returns the built-in configuration
func Default() *Config {
	return &Config{
		FrameRate:        60,
		Fullscreen:       true,
		ReadoutPrecision: 4,
		CursorRadius:     10,
		CurveSegments:    64,
		Palette: Palette{
			Background:     RGB{0, 20, 132},
			Grid:           RGB{100, 100, 100},
			Shape:          RGB{255, 255, 255},
			Preview:        RGB{0, 255, 0},
			Cursor:         RGB{255, 0, 0},
			Text:           RGB{0, 0, 0},
			TextBackground: RGB{255, 255, 255},
			ModeText:       RGB{255, 0, 0},
			MenuBackground: RGB{255, 255, 255},
		},
		Keys: DefaultKeys(),
	}
}

// DefaultKeys returns the default action bindings
func DefaultKeys() map[string]string {
	return map[string]string{
		controller.ActionQuit.String():         "escape",
		controller.ActionToggleMenu.String():   "m",
		controller.ActionZoomUp.String():       "up",
		controller.ActionZoomDown.String():     "down",
		controller.ActionToggleGUI.String():    "f",
		controller.ActionToggleGrid.String():   "g",
		controller.ActionToggleCursor.String(): "v",
		controller.ActionModeLine.String():     "l",
		controller.ActionModeCircle.String():   "c",
		controller.ActionModeBezier.String():   "b",
	}
}

// DefaultPath returns the per-user config file location
func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "blueprint", "config.toml")
}

// Load reads path on top of the defaults. Bindings absent from the file keep
// their default key.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "read config")
	}
	cfg, err := Parse(string(data))
	if err != nil {
		return nil, errors.Wrapf(err, "config %s", path)
	}
	return cfg, nil
}

// LoadOptional loads path when it exists and falls back to the defaults
// otherwise. An empty path means defaults.
func LoadOptional(path string) (*Config, error) {
	if path == "" {
		return Default(), nil
	}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return Default(), nil
	}
	return Load(path)
}

// Parse decodes TOML text on top of the defaults and validates the result
func Parse(text string) (*Config, error) {
	cfg := Default()
	cfg.Keys = nil

	md, err := toml.Decode(text, cfg)
	if err != nil {
		return nil, errors.Wrap(err, "decode")
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, 0, len(undecoded))
		for _, k := range undecoded {
			keys = append(keys, k.String())
		}
		return nil, errors.Errorf("unknown settings: %s", strings.Join(keys, ", "))
	}

	keys := DefaultKeys()
	for action, key := range cfg.Keys {
		keys[strings.ToLower(strings.TrimSpace(action))] = strings.ToLower(strings.TrimSpace(key))
	}
	cfg.Keys = keys

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks ranges and bindings
func (c *Config) Validate() error {
	if c.FrameRate < 1 || c.FrameRate > 1000 {
		return errors.Errorf("frame_rate %d out of range [1, 1000]", c.FrameRate)
	}
	if c.ReadoutPrecision < 0 || c.ReadoutPrecision > 10 {
		return errors.Errorf("readout_precision %d out of range [0, 10]", c.ReadoutPrecision)
	}
	if c.CursorRadius < 1 {
		return errors.Errorf("cursor_radius must be positive, got %d", c.CursorRadius)
	}
	if c.CurveSegments < 1 || c.CurveSegments > 1024 {
		return errors.Errorf("curve_segments %d out of range [1, 1024]", c.CurveSegments)
	}

	seen := make(map[string]string, len(c.Keys))
	actions := make([]string, 0, len(c.Keys))
	for action := range c.Keys {
		actions = append(actions, action)
	}
	sort.Strings(actions)
	for _, action := range actions {
		key := c.Keys[action]
		if _, err := controller.ParseAction(action); err != nil {
			return errors.Wrap(err, "keys")
		}
		if key == "" {
			return errors.Errorf("keys: %s has no key", action)
		}
		if !KnownKey(key) {
			return errors.Errorf("keys: unknown key name %q for %s", key, action)
		}
		if other, dup := seen[key]; dup {
			return errors.Errorf("keys: %q bound to both %s and %s", key, other, action)
		}
		seen[key] = action
	}
	return nil
}

// Bindings resolves the key table to actions, keyed by key name
func (c *Config) Bindings() map[string]controller.Action {
	out := make(map[string]controller.Action, len(c.Keys))
	for action, key := range c.Keys {
		a, err := controller.ParseAction(action)
		if err != nil {
			continue
		}
		out[key] = a
	}
	return out
}
