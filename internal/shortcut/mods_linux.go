//go:build linux

package shortcut

import "golang.design/x/hotkey"

// X11 modifier masks: Mod1 is Alt and Mod4 is Super on common layouts.
var modifierCodes = map[string]hotkey.Modifier{
	ModCtrl:  hotkey.ModCtrl,
	ModShift: hotkey.ModShift,
	ModAlt:   hotkey.Mod1,
	ModSuper: hotkey.Mod4,
}
