package common

import "time"

// StateResponse is the wire form of the persisted phase state.
// An absent persisted record is reported as cycle 0, phase "idle".
type StateResponse struct {
	Cycle int    `json:"cycle"`
	Phase string `json:"phase"`
}

// TimerInfo describes one active trigger registration.
type TimerInfo struct {
	Key       string    `json:"key"`
	At        time.Time `json:"at"`
	Recurring bool      `json:"recurring,omitempty"`
}

// TimersResponse lists all active trigger registrations.
type TimersResponse struct {
	Timers []TimerInfo `json:"timers"`
}

// ReminderInfo is the wire form of a daily clock-time reminder.
type ReminderInfo struct {
	Id    string `json:"id"`
	Label string `json:"label"`
	Time  string `json:"time"`
}

// SettingsResponse is the wire form of the full user settings record.
type SettingsResponse struct {
	FocusMinutes      int            `json:"focus_minutes"`
	ShortBreakMinutes int            `json:"short_break_minutes"`
	LongBreakMinutes  int            `json:"long_break_minutes"`
	LongBreakEvery    int            `json:"long_break_every"`
	Sound             bool           `json:"sound"`
	Reminders         []ReminderInfo `json:"reminders"`
}

// SetSettingsParams patches the timer settings. Nil fields are left
// unchanged (shallow last-writer-wins overwrite); reminders are managed
// through the dedicated reminder methods.
type SetSettingsParams struct {
	FocusMinutes      *int  `json:"focus_minutes,omitempty"`
	ShortBreakMinutes *int  `json:"short_break_minutes,omitempty"`
	LongBreakMinutes  *int  `json:"long_break_minutes,omitempty"`
	LongBreakEvery    *int  `json:"long_break_every,omitempty"`
	Sound             *bool `json:"sound,omitempty"`
}

// AddReminderParams creates a new reminder; the id is generated by the
// daemon and returned in the ReminderInfo response.
type AddReminderParams struct {
	Label string `json:"label"`
	Time  string `json:"time"`
}

// UpdateReminderParams mutates an existing reminder in place.
// Nil fields are left unchanged.
type UpdateReminderParams struct {
	Id    string  `json:"id"`
	Label *string `json:"label,omitempty"`
	Time  *string `json:"time,omitempty"`
}

// RemoveReminderParams removes a reminder by id.
type RemoveReminderParams struct {
	Id string `json:"id"`
}

// VersionResponse reports daemon build information.
type VersionResponse struct {
	Version   string `json:"version"`
	BuildType string `json:"build_type,omitempty"`
}
