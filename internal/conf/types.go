package conf

import "time"

// Config is the typed view of the configuration document.
type Config struct {
	Window         WindowSpec
	Style          string
	UpdateInterval time.Duration
	IdleAfter      time.Duration
	Shortcuts      Shortcuts
}

// WindowSpec is the overlay geometry in screen pixels.
type WindowSpec struct {
	X int
	Y int
	W int
	H int
}

// Shortcuts holds the global hotkey strings.
type Shortcuts struct {
	ToggleDrag string
	ToggleHide string
}

// Document keys.
const (
	keyWindow     = "window_spec"
	keyQt         = "qt"
	keyStylesheet = "qlabel_stylesheet"
	keyInterval   = "update_interval_s"
	keyIdleAfter  = "idle_after_s"
	keyShortcut   = "shortcut"
	keyToggleDrag = "toggle_drag"
	keyToggleHide = "toggle_hide"
)
