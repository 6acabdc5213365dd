package overlay

import "strings"

// State packs the three independent UI flags into one value. The zero
// value is the initial state: locked, visible, active.
type State uint8

const (
	stateUnlocked State = 1 << iota
	stateHidden
	stateIdle
)

// Initial is the state a controller starts in.
const Initial State = 0

// Status texts.
const (
	StatusInitializing = "Initializing..."
	StatusUnlocked     = "UNLOCKED: Drag to move"
	StatusIdled        = "IDLED: Suspended"
)

func (s State) Draggable() bool { return s&stateUnlocked != 0 }
func (s State) Visible() bool   { return s&stateHidden == 0 }
func (s State) Idle() bool      { return s&stateIdle != 0 }

func (s State) String() string {
	parts := []string{"locked", "visible", "active"}
	if s.Draggable() {
		parts[0] = "unlocked"
	}
	if !s.Visible() {
		parts[1] = "hidden"
	}
	if s.Idle() {
		parts[2] = "idle"
	}
	return strings.Join(parts, "|")
}

// Input is a state machine stimulus.
type Input uint8

const (
	InputToggleDrag Input = iota
	InputToggleHide
	InputIdleSeen   // Idle duration above the threshold
	InputActiveSeen // Idle duration at or below the threshold
)

// TimerOp tells the controller what to do with a timer.
type TimerOp uint8

const (
	TimerKeep TimerOp = iota
	TimerStart
	TimerStop
)

// Effects are the side effects a transition asks the controller to run.
type Effects struct {
	Sampling  TimerOp
	IdleCheck TimerOp

	SetStatus bool
	Status    string

	SetPassthrough bool
	Passthrough    bool

	SetVisible bool
	Visible    bool
}

// Apply returns the state after in and the effects to perform. It has no
// side effects of its own.
func (s State) Apply(in Input) (State, Effects) {
	var fx Effects
	switch in {
	case InputToggleDrag:
		s ^= stateUnlocked
		fx.SetPassthrough, fx.Passthrough = true, !s.Draggable()
		fx.SetStatus = true
		if s.Draggable() {
			fx.Status = StatusUnlocked
		}

	case InputToggleHide:
		s ^= stateHidden
		fx.SetVisible, fx.Visible = true, s.Visible()
		// Showing resumes both timers even if the user is still idle.
		if s.Visible() {
			fx.Sampling, fx.IdleCheck = TimerStart, TimerStart
		} else {
			fx.Sampling, fx.IdleCheck = TimerStop, TimerStop
		}

	case InputIdleSeen:
		if !s.Visible() {
			break
		}
		if !s.Idle() {
			s |= stateIdle
			fx.SetStatus, fx.Status = true, StatusIdled
		}
		fx.Sampling = TimerStop

	case InputActiveSeen:
		if !s.Visible() || !s.Idle() {
			break
		}
		s &^= stateIdle
		fx.Sampling = TimerStart
		fx.SetStatus = true
	}
	return s, fx
}
