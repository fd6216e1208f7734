package config

import "fmt"

var keyNames = map[string]bool{
	"escape": true, "enter": true, "space": true, "tab": true,
	"backspace": true, "delete": true,
	"up": true, "down": true, "left": true, "right": true,
	"home": true, "end": true, "pageup": true, "pagedown": true,
	"minus": true, "equal": true,
}

func init() {
	for c := 'a'; c <= 'z'; c++ {
		keyNames[string(c)] = true
	}
	for c := '0'; c <= '9'; c++ {
		keyNames[string(c)] = true
	}
	for n := 1; n <= 12; n++ {
		keyNames[fmt.Sprintf("f%d", n)] = true
	}
}

// KnownKey reports whether name is a key that can be bound to an action
func KnownKey(name string) bool {
	return keyNames[name]
}

// KeyNames returns every bindable key name
func KeyNames() []string {
	out := make([]string, 0, len(keyNames))
	for name := range keyNames {
		out = append(out, name)
	}
	return out
}

// Overrides are settings given on the command line. They win over the
// config file, including after a reload.
type Overrides struct {
	FrameRate int // Applied when positive
	Windowed  bool
}

// Apply writes the overrides into cfg
func (o Overrides) Apply(cfg *Config) {
	if o.FrameRate > 0 {
		cfg.FrameRate = o.FrameRate
	}
	if o.Windowed {
		cfg.Fullscreen = false
	}
}
