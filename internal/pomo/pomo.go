// Package pomo implements the pomodoro phase machine: the data model for
// settings and phase state, and the pure transition function that decides
// the next phase, its duration, and the user-facing notification.
package pomo

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Phase is the kind of interval currently running.
type Phase string

const (
	PhaseIdle  Phase = "idle"
	PhaseFocus Phase = "focus"
	PhaseShort Phase = "short"
	PhaseLong  Phase = "long"
)

// State is the single persisted record of the running pomodoro.
// Cycle counts completed focus intervals within the current run; an idle
// state always carries cycle 0. Absence of a persisted State is
// equivalent to idle.
type State struct {
	Cycle int   `json:"cycle"`
	Phase Phase `json:"phase"`
}

// Idle returns the state representing "no run in progress".
func Idle() State {
	return State{Cycle: 0, Phase: PhaseIdle}
}

// Reminder is a user-defined daily notification at a fixed local time.
type Reminder struct {
	ID    string `json:"id"`
	Label string `json:"label"`
	Time  string `json:"time"` // "HH:MM", local 24h clock
}

// Settings is the process-wide user configuration.
type Settings struct {
	FocusMinutes      int        `json:"focusMinutes"`
	ShortBreakMinutes int        `json:"shortBreakMinutes"`
	LongBreakMinutes  int        `json:"longBreakMinutes"`
	LongBreakEvery    int        `json:"longBreakEvery"`
	Sound             bool       `json:"sound"`
	Reminders         []Reminder `json:"reminders"`
}

// DefaultSettings returns the out-of-the-box configuration: the classic
// 25/5 rhythm with a 15 minute long break every 4th cycle.
func DefaultSettings() Settings {
	return Settings{
		FocusMinutes:      25,
		ShortBreakMinutes: 5,
		LongBreakMinutes:  15,
		LongBreakEvery:    4,
		Sound:             false,
		Reminders:         []Reminder{},
	}
}

var (
	// ErrUnknownPhase reports a persisted phase value outside the state
	// machine. Callers must treat it as data corruption, not default it away.
	ErrUnknownPhase = errors.New("unknown phase")

	// ErrInvalidClock reports a reminder time that does not parse as "HH:MM".
	ErrInvalidClock = errors.New("invalid clock time")
)

// ParseClock parses a "HH:MM" local clock time into hour and minute.
func ParseClock(clock string) (hour, minute int, err error) {
	parts := strings.SplitN(clock, ":", 2)
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("%w: %q", ErrInvalidClock, clock)
	}
	hour, err = strconv.Atoi(parts[0])
	if err != nil || hour < 0 || hour > 23 {
		return 0, 0, fmt.Errorf("%w: %q", ErrInvalidClock, clock)
	}
	minute, err = strconv.Atoi(parts[1])
	if err != nil || minute < 0 || minute > 59 {
		return 0, 0, fmt.Errorf("%w: %q", ErrInvalidClock, clock)
	}
	return hour, minute, nil
}

// Validate checks the settings invariants: positive durations, a cadence
// of at least 1, unique reminder ids, and parseable reminder times.
func (s Settings) Validate() error {
	if s.FocusMinutes <= 0 {
		return fmt.Errorf("focus minutes must be positive, got %d", s.FocusMinutes)
	}
	if s.ShortBreakMinutes <= 0 {
		return fmt.Errorf("short break minutes must be positive, got %d", s.ShortBreakMinutes)
	}
	if s.LongBreakMinutes <= 0 {
		return fmt.Errorf("long break minutes must be positive, got %d", s.LongBreakMinutes)
	}
	if s.LongBreakEvery < 1 {
		return fmt.Errorf("long break cadence must be at least 1, got %d", s.LongBreakEvery)
	}
	seen := make(map[string]struct{}, len(s.Reminders))
	for _, r := range s.Reminders {
		if r.ID == "" {
			return errors.New("reminder with empty id")
		}
		if _, dup := seen[r.ID]; dup {
			return fmt.Errorf("duplicate reminder id %q", r.ID)
		}
		seen[r.ID] = struct{}{}
		if _, _, err := ParseClock(r.Time); err != nil {
			return err
		}
	}
	return nil
}

// ReminderByID returns the reminder with the given id, or false if no
// such reminder exists.
func (s Settings) ReminderByID(id string) (Reminder, bool) {
	for _, r := range s.Reminders {
		if r.ID == id {
			return r, true
		}
	}
	return Reminder{}, false
}
