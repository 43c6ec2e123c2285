// Package planner derives trigger registrations for daily clock-time
// reminders. Given the reminder list and "now", it computes each
// reminder's next local fire time and the recurring cron expression that
// keeps it firing at the same local time every day.
package planner

import (
	"fmt"
	"time"

	"github.com/adhocore/gronx"

	"github.com/pomod/pomod/common"
	"github.com/pomod/pomod/internal/pomo"
)

// Trigger is one reminder registration to hand to the scheduler.
type Trigger struct {
	Key      string
	At       time.Time
	CronExpr string
}

// CronExpr returns the daily cron expression for a "HH:MM" clock time.
func CronExpr(clock string) (string, error) {
	hour, minute, err := pomo.ParseClock(clock)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%d %d * * *", minute, hour), nil
}

// NextFire computes the next occurrence of the given clock time strictly
// after now. A reminder created after its time has passed today fires at
// the same local time tomorrow, never immediately.
func NextFire(clock string, now time.Time) (time.Time, error) {
	expr, err := CronExpr(clock)
	if err != nil {
		return time.Time{}, err
	}
	return gronx.NextTickAfter(expr, now, false)
}

// Key returns the scheduler key for a reminder id.
func Key(id string) string {
	return common.ReminderKeyPrefix + id
}

// Plan maps the current reminder list to the exact set of triggers that
// should be active. The result is deterministic for a given (reminders,
// now) pair, which makes trigger refresh idempotent.
func Plan(reminders []pomo.Reminder, now time.Time) ([]Trigger, error) {
	triggers := make([]Trigger, 0, len(reminders))
	for _, r := range reminders {
		expr, err := CronExpr(r.Time)
		if err != nil {
			return nil, fmt.Errorf("reminder %s: %w", r.ID, err)
		}
		at, err := gronx.NextTickAfter(expr, now, false)
		if err != nil {
			return nil, fmt.Errorf("reminder %s: %w", r.ID, err)
		}
		triggers = append(triggers, Trigger{
			Key:      Key(r.ID),
			At:       at,
			CronExpr: expr,
		})
	}
	return triggers, nil
}
