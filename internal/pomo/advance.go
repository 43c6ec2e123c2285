package pomo

import "fmt"

// Notification is the user-facing payload emitted at a phase boundary.
type Notification struct {
	Title   string
	Message string
}

// Step is the result of one phase transition: the state to persist, the
// notification to emit, and the delay until the next phase boundary.
type Step struct {
	State        State
	Notification Notification
	DelayMinutes int
}

// Advance computes the next phase from the current state and settings.
// It is a pure function with no side effects; persistence, notification
// delivery, and timer registration are owned by the driver.
//
// Transitions:
//
//	idle  -> focus         cycle set to 1
//	focus -> short | long  long when cycle is a multiple of LongBreakEvery
//	short -> focus         cycle incremented
//	long  -> focus         cycle unchanged
//
// Any other phase value is data corruption and yields ErrUnknownPhase.
func Advance(st State, s Settings) (Step, error) {
	switch st.Phase {
	case PhaseIdle:
		return Step{
			State: State{Cycle: 1, Phase: PhaseFocus},
			Notification: Notification{
				Title:   "Pomodoro started",
				Message: fmt.Sprintf("Focus for %d minutes.", s.FocusMinutes),
			},
			DelayMinutes: s.FocusMinutes,
		}, nil

	case PhaseFocus:
		// Cadence is evaluated on the cycle value before any increment:
		// the Nth, 2Nth, ... completed focus interval earns the long break.
		if st.Cycle%s.LongBreakEvery == 0 {
			return Step{
				State: State{Cycle: st.Cycle, Phase: PhaseLong},
				Notification: Notification{
					Title:   "Long break",
					Message: fmt.Sprintf("Relax for %d minutes.", s.LongBreakMinutes),
				},
				DelayMinutes: s.LongBreakMinutes,
			}, nil
		}
		return Step{
			State: State{Cycle: st.Cycle, Phase: PhaseShort},
			Notification: Notification{
				Title:   "Break",
				Message: fmt.Sprintf("Relax for %d minutes.", s.ShortBreakMinutes),
			},
			DelayMinutes: s.ShortBreakMinutes,
		}, nil

	case PhaseShort:
		return Step{
			State: State{Cycle: st.Cycle + 1, Phase: PhaseFocus},
			Notification: Notification{
				Title:   "Back to focus",
				Message: fmt.Sprintf("Focus for %d minutes.", s.FocusMinutes),
			},
			DelayMinutes: s.FocusMinutes,
		}, nil

	case PhaseLong:
		return Step{
			State: State{Cycle: st.Cycle, Phase: PhaseFocus},
			Notification: Notification{
				Title:   "Back to focus",
				Message: fmt.Sprintf("Focus for %d minutes.", s.FocusMinutes),
			},
			DelayMinutes: s.FocusMinutes,
		}, nil

	default:
		return Step{}, fmt.Errorf("%w: %q", ErrUnknownPhase, st.Phase)
	}
}
