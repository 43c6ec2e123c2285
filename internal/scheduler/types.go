package scheduler

import "time"

// Event is a pending trigger in the scheduler heap.
type Event struct {
	// Key identifies the trigger ("pomo" or "reminder:<id>"). Adding an
	// event with an existing key replaces the pending one.
	Key string
	// TriggerAt is the wall-clock time when the trigger fires.
	TriggerAt time.Time
	// CronExpr is the recurrence expression. Empty means one-shot.
	CronExpr string
}

// Active is a snapshot entry of a pending trigger, used by the popup
// countdown and the reminder refresh.
type Active struct {
	Key       string
	TriggerAt time.Time
	Recurring bool
}
