package overlay

// Event is anything the controller queue carries.
type Event interface {
	event()
}

// TickKind identifies which timer fired.
type TickKind uint8

const (
	TickSample TickKind = iota
	TickIdle
)

func (k TickKind) String() string {
	if k == TickIdle {
		return "idle"
	}
	return "sample"
}

// Tick is posted by a running timer.
type Tick struct {
	Kind TickKind
}

// Action is a hotkey-bound command.
type Action uint8

const (
	ActionToggleDrag Action = iota
	ActionToggleHide
)

func (a Action) String() string {
	if a == ActionToggleHide {
		return "toggle_hide"
	}
	return "toggle_drag"
}

// Hotkey is posted when a global hotkey fires.
type Hotkey struct {
	Action Action
}

// MouseKind is the phase of a mouse interaction.
type MouseKind uint8

const (
	MousePress MouseKind = iota
	MouseMove
	MouseRelease
)

// Mouse carries the cursor in global screen coordinates. For press and
// release Left reports whether the left button changed; for move it
// reports whether the left button is held.
type Mouse struct {
	Kind MouseKind
	X, Y int
	Left bool
}

func (Tick) event()   {}
func (Hotkey) event() {}
func (Mouse) event()  {}
