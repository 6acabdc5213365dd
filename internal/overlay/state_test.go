package overlay

import (
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

func TestState_Accessors(t *testing.T) {
	if !Initial.Visible() || Initial.Draggable() || Initial.Idle() {
		t.Errorf("Initial = %s, want locked|visible|active", Initial)
	}
	s := stateUnlocked | stateHidden | stateIdle
	if got, want := s.String(), "unlocked|hidden|idle"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestState_Apply(t *testing.T) {
	tests := []struct {
		name   string
		from   State
		in     Input
		want   State
		wantFx Effects
	}{
		{
			name: "unlock",
			from: Initial,
			in:   InputToggleDrag,
			want: stateUnlocked,
			wantFx: Effects{
				SetStatus: true, Status: StatusUnlocked,
				SetPassthrough: true, Passthrough: false,
			},
		},
		{
			name: "lock clears status",
			from: stateUnlocked | stateIdle,
			in:   InputToggleDrag,
			want: stateIdle,
			wantFx: Effects{
				SetStatus: true, Status: "",
				SetPassthrough: true, Passthrough: true,
			},
		},
		{
			name: "hide stops both timers",
			from: Initial,
			in:   InputToggleHide,
			want: stateHidden,
			wantFx: Effects{
				Sampling: TimerStop, IdleCheck: TimerStop,
				SetVisible: true, Visible: false,
			},
		},
		{
			name: "show while idle resumes both timers and keeps idle",
			from: stateHidden | stateIdle,
			in:   InputToggleHide,
			want: stateIdle,
			wantFx: Effects{
				Sampling: TimerStart, IdleCheck: TimerStart,
				SetVisible: true, Visible: true,
			},
		},
		{
			name: "go idle",
			from: Initial,
			in:   InputIdleSeen,
			want: stateIdle,
			wantFx: Effects{
				Sampling:  TimerStop,
				SetStatus: true, Status: StatusIdled,
			},
		},
		{
			name:   "still idle keeps status, re-stops sampling",
			from:   stateIdle | stateUnlocked,
			in:     InputIdleSeen,
			want:   stateIdle | stateUnlocked,
			wantFx: Effects{Sampling: TimerStop},
		},
		{
			name: "wake",
			from: stateIdle,
			in:   InputActiveSeen,
			want: Initial,
			wantFx: Effects{
				Sampling:  TimerStart,
				SetStatus: true, Status: "",
			},
		},
		{
			name: "active while active is a no-op",
			from: stateUnlocked,
			in:   InputActiveSeen,
			want: stateUnlocked,
		},
		{
			name: "idle observations ignored while hidden",
			from: stateHidden,
			in:   InputIdleSeen,
			want: stateHidden,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, fx := tt.from.Apply(tt.in)
			if got != tt.want {
				t.Errorf("state = %s, want %s", got, tt.want)
			}
			if fx != tt.wantFx {
				t.Errorf("effects = %+v, want %+v", fx, tt.wantFx)
			}
		})
	}
}

func TestState_Properties(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200
	properties := gopter.NewProperties(parameters)

	anyState := gen.UInt8Range(0, 7).Map(func(v uint8) State { return State(v) })

	properties.Property("toggling drag twice restores the state", prop.ForAll(
		func(s State) bool {
			mid, _ := s.Apply(InputToggleDrag)
			end, fx := mid.Apply(InputToggleDrag)
			wantStatus := ""
			if end.Draggable() {
				wantStatus = StatusUnlocked
			}
			return end == s && mid.Draggable() != s.Draggable() &&
				fx.SetStatus && fx.Status == wantStatus
		},
		anyState,
	))

	properties.Property("toggle hide never changes idle or drag", prop.ForAll(
		func(s State) bool {
			next, _ := s.Apply(InputToggleHide)
			return next.Idle() == s.Idle() && next.Draggable() == s.Draggable() && next.Visible() != s.Visible()
		},
		anyState,
	))

	properties.Property("idle transitions only touch the idle bit", prop.ForAll(
		func(s State, seen bool) bool {
			in := InputActiveSeen
			if seen {
				in = InputIdleSeen
			}
			next, _ := s.Apply(in)
			return next&^stateIdle == s&^stateIdle
		},
		anyState, gen.Bool(),
	))

	properties.Property("input sequences stay within the three flags", prop.ForAll(
		func(inputs []uint8) bool {
			s := Initial
			for _, in := range inputs {
				s, _ = s.Apply(Input(in % 4))
			}
			return s <= stateUnlocked|stateHidden|stateIdle
		},
		gen.SliceOf(gen.UInt8()),
	))

	properties.TestingRun(t)
}
