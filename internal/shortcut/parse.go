// Package shortcut parses hotkey strings such as "ctrl+alt+d" and binds
// them as global hotkeys for the lifetime of the process.
package shortcut

import (
	"fmt"
	"slices"
	"strings"
)

// Modifier names after normalisation.
const (
	ModCtrl  = "ctrl"
	ModShift = "shift"
	ModAlt   = "alt"
	ModSuper = "super"
)

var modifierAliases = map[string]string{
	"ctrl":    ModCtrl,
	"control": ModCtrl,
	"shift":   ModShift,
	"alt":     ModAlt,
	"option":  ModAlt,
	"win":     ModSuper,
	"windows": ModSuper,
	"super":   ModSuper,
	"cmd":     ModSuper,
	"command": ModSuper,
	"meta":    ModSuper,
}

var keyAliases = map[string]string{
	"return": "enter",
	"escape": "esc",
	"del":    "delete",
}

// Binding is a parsed hotkey: sorted, de-duplicated modifiers plus one key.
type Binding struct {
	Modifiers []string
	Key       string
}

func (b Binding) String() string {
	return strings.Join(append(slices.Clone(b.Modifiers), b.Key), "+")
}

// Parse reads a "+"-separated hotkey string. Names are case-insensitive.
func Parse(s string) (Binding, error) {
	var b Binding
	if strings.TrimSpace(s) == "" {
		return b, fmt.Errorf("empty hotkey")
	}
	for _, part := range strings.Split(s, "+") {
		name := strings.ToLower(strings.TrimSpace(part))
		if name == "" {
			return b, fmt.Errorf("hotkey %q: empty component", s)
		}
		if mod, ok := modifierAliases[name]; ok {
			if !slices.Contains(b.Modifiers, mod) {
				b.Modifiers = append(b.Modifiers, mod)
			}
			continue
		}
		if alias, ok := keyAliases[name]; ok {
			name = alias
		}
		if !isKnownKey(name) {
			return b, fmt.Errorf("hotkey %q: unknown key %q", s, part)
		}
		if b.Key != "" {
			return b, fmt.Errorf("hotkey %q: more than one key", s)
		}
		b.Key = name
	}
	if b.Key == "" {
		return b, fmt.Errorf("hotkey %q: no key", s)
	}
	slices.Sort(b.Modifiers)
	return b, nil
}

func isKnownKey(name string) bool {
	_, ok := keyCodes[name]
	return ok
}
