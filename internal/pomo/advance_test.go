package pomo

import (
	"errors"
	"testing"
)

func testSettings() Settings {
	return Settings{
		FocusMinutes:      25,
		ShortBreakMinutes: 5,
		LongBreakMinutes:  15,
		LongBreakEvery:    4,
	}
}

func TestAdvance_StartFromIdle(t *testing.T) {
	step, err := Advance(Idle(), testSettings())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if step.State.Phase != PhaseFocus || step.State.Cycle != 1 {
		t.Fatalf("expected focus/1, got %s/%d", step.State.Phase, step.State.Cycle)
	}
	if step.DelayMinutes != 25 {
		t.Errorf("expected delay 25, got %d", step.DelayMinutes)
	}
	if step.Notification.Title != "Pomodoro started" {
		t.Errorf("unexpected title %q", step.Notification.Title)
	}
}

func TestAdvance_LongBreakPredicate(t *testing.T) {
	s := testSettings()
	for cycle := 1; cycle <= 12; cycle++ {
		step, err := Advance(State{Cycle: cycle, Phase: PhaseFocus}, s)
		if err != nil {
			t.Fatalf("cycle %d: unexpected error: %v", cycle, err)
		}
		wantLong := cycle%s.LongBreakEvery == 0
		gotLong := step.State.Phase == PhaseLong
		if gotLong != wantLong {
			t.Errorf("cycle %d: long=%v, want %v", cycle, gotLong, wantLong)
		}
		if step.State.Cycle != cycle {
			t.Errorf("cycle %d: cycle changed to %d on focus exit", cycle, step.State.Cycle)
		}
	}
}

func TestAdvance_CycleCounting(t *testing.T) {
	s := testSettings()

	// A short break completion increments the cycle by exactly one.
	step, err := Advance(State{Cycle: 2, Phase: PhaseShort}, s)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if step.State.Cycle != 3 || step.State.Phase != PhaseFocus {
		t.Errorf("short->focus: got %s/%d, want focus/3", step.State.Phase, step.State.Cycle)
	}

	// A long break completion never changes the cycle.
	step, err = Advance(State{Cycle: 4, Phase: PhaseLong}, s)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if step.State.Cycle != 4 || step.State.Phase != PhaseFocus {
		t.Errorf("long->focus: got %s/%d, want focus/4", step.State.Phase, step.State.Cycle)
	}
	if step.Notification.Title != "Back to focus" {
		t.Errorf("unexpected title %q", step.Notification.Title)
	}
}

// The canonical 25/5/15-every-4 run: phases and delays over ten steps.
func TestAdvance_CanonicalSequence(t *testing.T) {
	s := testSettings()
	want := []struct {
		phase Phase
		cycle int
		delay int
	}{
		{PhaseFocus, 1, 25},
		{PhaseShort, 1, 5},
		{PhaseFocus, 2, 25},
		{PhaseShort, 2, 5},
		{PhaseFocus, 3, 25},
		{PhaseShort, 3, 5},
		{PhaseFocus, 4, 25},
		{PhaseLong, 4, 15},
		{PhaseFocus, 5, 25},
		{PhaseShort, 5, 5},
	}

	st := Idle()
	for i, w := range want {
		step, err := Advance(st, s)
		if err != nil {
			t.Fatalf("step %d: unexpected error: %v", i, err)
		}
		if step.State.Phase != w.phase || step.State.Cycle != w.cycle {
			t.Fatalf("step %d: got %s/%d, want %s/%d",
				i, step.State.Phase, step.State.Cycle, w.phase, w.cycle)
		}
		if step.DelayMinutes != w.delay {
			t.Fatalf("step %d: got delay %d, want %d", i, step.DelayMinutes, w.delay)
		}
		st = step.State
	}
}

func TestAdvance_EveryOneAlwaysLong(t *testing.T) {
	s := testSettings()
	s.LongBreakEvery = 1
	step, err := Advance(State{Cycle: 1, Phase: PhaseFocus}, s)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if step.State.Phase != PhaseLong {
		t.Errorf("expected long break with cadence 1, got %s", step.State.Phase)
	}
}

func TestAdvance_UnknownPhase(t *testing.T) {
	_, err := Advance(State{Cycle: 3, Phase: Phase("napping")}, testSettings())
	if !errors.Is(err, ErrUnknownPhase) {
		t.Fatalf("expected ErrUnknownPhase, got %v", err)
	}
}
