//go:build linux || windows || darwin

package shortcut

import (
	"fmt"

	"golang.design/x/hotkey"
)

// Register grabs b system-wide and calls fn on every key press. The grab
// lives until the process exits; fn runs on a dedicated goroutine and
// should only hand the press off.
func Register(b Binding, fn func()) error {
	mods := make([]hotkey.Modifier, 0, len(b.Modifiers))
	for _, m := range b.Modifiers {
		code, ok := modifierCodes[m]
		if !ok {
			return fmt.Errorf("hotkey %s: unsupported modifier %q", b, m)
		}
		mods = append(mods, code)
	}
	key, ok := keyCodes[b.Key]
	if !ok {
		return fmt.Errorf("hotkey %s: unsupported key %q", b, b.Key)
	}

	hk := hotkey.New(mods, key)
	if err := hk.Register(); err != nil {
		return fmt.Errorf("failed to register hotkey %s: %w", b, err)
	}
	go func() {
		for range hk.Keydown() {
			fn()
		}
	}()
	return nil
}
