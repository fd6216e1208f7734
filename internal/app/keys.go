package app

import (
	"sort"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/philipparndt/blueprint/internal/controller"
	"github.com/pkg/errors"
)

// keyCodes maps config key names to raylib key codes. It covers every
// name accepted by config.KnownKey.
var keyCodes = map[string]int32{
	"escape": rl.KeyEscape, "enter": rl.KeyEnter, "space": rl.KeySpace,
	"tab": rl.KeyTab, "backspace": rl.KeyBackspace, "delete": rl.KeyDelete,
	"up": rl.KeyUp, "down": rl.KeyDown, "left": rl.KeyLeft, "right": rl.KeyRight,
	"home": rl.KeyHome, "end": rl.KeyEnd, "pageup": rl.KeyPageUp, "pagedown": rl.KeyPageDown,
	"minus": rl.KeyMinus, "equal": rl.KeyEqual,
	"f1": rl.KeyF1, "f2": rl.KeyF2, "f3": rl.KeyF3, "f4": rl.KeyF4,
	"f5": rl.KeyF5, "f6": rl.KeyF6, "f7": rl.KeyF7, "f8": rl.KeyF8,
	"f9": rl.KeyF9, "f10": rl.KeyF10, "f11": rl.KeyF11, "f12": rl.KeyF12,
}

func init() {
	for c := 'a'; c <= 'z'; c++ {
		keyCodes[string(c)] = rl.KeyA + (c - 'a')
	}
	for c := '0'; c <= '9'; c++ {
		keyCodes[string(c)] = rl.KeyZero + (c - '0')
	}
}

// keyBinding is one physical key mapped to an action
type keyBinding struct {
	key    int32
	action controller.Action
}

// resolveBindings turns key names into raylib codes, sorted by key code so
// that keys pressed in the same frame are always reported in the same order.
func resolveBindings(byName map[string]controller.Action) ([]keyBinding, error) {
	out := make([]keyBinding, 0, len(byName))
	for name, action := range byName {
		code, ok := keyCodes[name]
		if !ok {
			return nil, errors.Errorf("unknown key %q for action %s", name, action)
		}
		out = append(out, keyBinding{key: code, action: action})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].key < out[j].key })
	return out, nil
}
