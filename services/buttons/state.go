package buttons

import (
	"sync/atomic"

	"joycursor-go/types"
)

// State is the toggle state shared between the button interrupts (writers)
// and the foreground loop (reader). Each field is a single atomic word.
type State struct {
	pwmEnabled atomic.Bool
	border     atomic.Uint32
	greenOn    atomic.Bool
}

// NewState returns the power-on state: PWM enabled, no border, green LED off.
func NewState() *State {
	s := &State{}
	s.pwmEnabled.Store(true)
	return s
}

func (s *State) PWMEnabled() bool { return s.pwmEnabled.Load() }
func (s *State) GreenOn() bool    { return s.greenOn.Load() }

// Border returns the current border style; it is always a valid style.
func (s *State) Border() types.BorderStyle {
	return types.BorderStyle(s.border.Load())
}

// Snapshot copies every field for one loop iteration.
func (s *State) Snapshot() types.Toggles {
	return types.Toggles{
		PWMEnabled: s.PWMEnabled(),
		Border:     s.Border(),
		GreenOn:    s.GreenOn(),
	}
}

func (s *State) togglePWM() bool {
	for {
		old := s.pwmEnabled.Load()
		if s.pwmEnabled.CompareAndSwap(old, !old) {
			return !old
		}
	}
}

func (s *State) toggleGreen() bool {
	for {
		old := s.greenOn.Load()
		if s.greenOn.CompareAndSwap(old, !old) {
			return !old
		}
	}
}

func (s *State) advanceBorder() types.BorderStyle {
	for {
		old := s.border.Load()
		next := types.BorderStyle(old).Next()
		if s.border.CompareAndSwap(old, uint32(next)) {
			return next
		}
	}
}
