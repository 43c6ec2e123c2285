package api

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/pomod/pomod/common"
	"github.com/pomod/pomod/internal/planner"
	"github.com/pomod/pomod/internal/pomo"
	"github.com/pomod/pomod/internal/scheduler"
)

// ScheduleNext runs one step of the phase machine: load state (absent
// means idle), advance, persist, notify, and register the next
// phase-boundary trigger. Persistence must succeed before the trigger is
// registered so a crash in between leaves a resumable state.
func (a *Api) ScheduleNext() (common.StateResponse, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.scheduleNextLocked()
}

func (a *Api) scheduleNextLocked() (common.StateResponse, error) {
	settings, err := a.store.EnsureSettings()
	if err != nil {
		return common.StateResponse{}, err
	}
	st, err := a.store.GetState()
	if err != nil {
		return common.StateResponse{}, err
	}
	if st == nil {
		idle := pomo.Idle()
		st = &idle
	}

	step, err := pomo.Advance(*st, settings)
	if errors.Is(err, pomo.ErrUnknownPhase) {
		// Data corruption: reset to idle and surface the diagnostic
		// instead of crashing or silently defaulting.
		a.log.Error("corrupt phase state %q, resetting to idle", st.Phase)
		if derr := a.store.DeleteState(); derr != nil {
			a.log.Error("resetting corrupt state: %v", derr)
		}
		a.gw.Remove(common.TimerKeyPomo)
		return common.StateResponse{}, err
	}
	if err != nil {
		return common.StateResponse{}, err
	}

	if err := a.store.PutState(step.State); err != nil {
		// State unchanged and reportable; the next trigger or command
		// re-attempts with fresh data.
		return common.StateResponse{}, fmt.Errorf("persist state: %w", err)
	}

	if nerr := a.notifier.Notify(step.Notification.Title, step.Notification.Message, settings.Sound); nerr != nil {
		a.log.Warning("notification failed: %v", nerr)
	}

	a.gw.Add(scheduler.Event{
		Key:       common.TimerKeyPomo,
		TriggerAt: time.Now().Add(time.Duration(step.DelayMinutes) * time.Minute),
	})

	return stateResponse(&step.State), nil
}

// Start seeds a fresh idle state and immediately advances into the first
// focus interval.
func (a *Api) Start() (common.StateResponse, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if err := a.store.PutState(pomo.Idle()); err != nil {
		return common.StateResponse{}, fmt.Errorf("persist state: %w", err)
	}
	return a.scheduleNextLocked()
}

// StopRun deletes the phase state and cancels the phase-boundary
// trigger. Reminder triggers are unaffected.
func (a *Api) StopRun() error {
	a.mu.Lock()
	defer a.mu.Unlock()

	if err := a.store.DeleteState(); err != nil {
		return err
	}
	a.gw.Remove(common.TimerKeyPomo)
	return nil
}

// RefreshReminders synchronizes the active reminder triggers with the
// current settings: every reminder-class trigger is cancelled, then
// exactly one trigger per reminder is created. Idempotent.
func (a *Api) RefreshReminders() error {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.refreshRemindersLocked()
}

func (a *Api) refreshRemindersLocked() error {
	settings, err := a.store.EnsureSettings()
	if err != nil {
		return err
	}
	triggers, err := planner.Plan(settings.Reminders, time.Now())
	if err != nil {
		return err
	}

	// Cancel before create so stale triggers for deleted reminders never
	// survive a refresh.
	for _, active := range a.gw.List() {
		if strings.HasPrefix(active.Key, common.ReminderKeyPrefix) {
			a.gw.Remove(active.Key)
		}
	}
	for _, tr := range triggers {
		a.gw.Add(scheduler.Event{
			Key:       tr.Key,
			TriggerAt: tr.At,
			CronExpr:  tr.CronExpr,
		})
	}
	return nil
}

// reminderFired delivers a reminder notification. A reminder deleted
// after scheduling but before firing falls back to a generic label.
func (a *Api) reminderFired(id string) {
	a.mu.Lock()
	defer a.mu.Unlock()

	label := "Reminder"
	settings, found, err := a.store.GetSettings()
	if err != nil {
		a.log.Warning("loading settings for reminder %s: %v", id, err)
	}
	sound := false
	if err == nil && found {
		sound = settings.Sound
		if r, ok := settings.ReminderByID(id); ok {
			label = r.Label
		} else {
			a.log.Warning("reminder %s fired but is no longer configured", id)
		}
	}
	if nerr := a.notifier.Notify("Reminder", label, sound); nerr != nil {
		a.log.Warning("reminder notification failed: %v", nerr)
	}
}

// Reconcile restores a consistent trigger set after daemon startup:
// defaults are written if absent, reminder triggers are rebuilt from
// settings, and a phase-boundary trigger is re-registered when the
// persisted state is mid-run (without re-notifying).
func (a *Api) Reconcile() error {
	a.mu.Lock()
	defer a.mu.Unlock()

	settings, err := a.store.EnsureSettings()
	if err != nil {
		return err
	}
	if err := a.refreshRemindersLocked(); err != nil {
		return err
	}

	st, err := a.store.GetState()
	if err != nil {
		return err
	}
	if st == nil || st.Phase == pomo.PhaseIdle {
		return nil
	}

	minutes, err := phaseMinutes(st.Phase, settings)
	if err != nil {
		a.log.Error("corrupt phase state %q during reconcile, resetting to idle", st.Phase)
		return a.store.DeleteState()
	}
	a.log.Info("resuming %s phase (cycle %d) after restart", st.Phase, st.Cycle)
	a.gw.Add(scheduler.Event{
		Key:       common.TimerKeyPomo,
		TriggerAt: time.Now().Add(time.Duration(minutes) * time.Minute),
	})
	return nil
}

// phaseMinutes returns the configured duration of a non-idle phase.
func phaseMinutes(phase pomo.Phase, s pomo.Settings) (int, error) {
	switch phase {
	case pomo.PhaseFocus:
		return s.FocusMinutes, nil
	case pomo.PhaseShort:
		return s.ShortBreakMinutes, nil
	case pomo.PhaseLong:
		return s.LongBreakMinutes, nil
	default:
		return 0, fmt.Errorf("%w: %q", pomo.ErrUnknownPhase, phase)
	}
}

// AddReminder creates a reminder with a generated id, persists it, and
// refreshes the trigger set.
func (a *Api) AddReminder(label, clock string) (pomo.Reminder, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if _, _, err := pomo.ParseClock(clock); err != nil {
		return pomo.Reminder{}, err
	}
	if label == "" {
		label = "Reminder"
	}
	settings, err := a.store.EnsureSettings()
	if err != nil {
		return pomo.Reminder{}, err
	}
	r := pomo.Reminder{
		ID:    uuid.NewString(),
		Label: label,
		Time:  clock,
	}
	settings.Reminders = append(settings.Reminders, r)
	if err := a.store.PutSettings(settings); err != nil {
		return pomo.Reminder{}, err
	}
	return r, a.refreshRemindersLocked()
}

// UpdateReminder mutates a reminder's label and/or time in place.
func (a *Api) UpdateReminder(id string, label, clock *string) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	settings, err := a.store.EnsureSettings()
	if err != nil {
		return err
	}
	idx := -1
	for i, r := range settings.Reminders {
		if r.ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return fmt.Errorf("no reminder with id %q", id)
	}
	if clock != nil {
		if _, _, err := pomo.ParseClock(*clock); err != nil {
			return err
		}
		settings.Reminders[idx].Time = *clock
	}
	if label != nil && *label != "" {
		settings.Reminders[idx].Label = *label
	}
	if err := a.store.PutSettings(settings); err != nil {
		return err
	}
	return a.refreshRemindersLocked()
}

// RemoveReminder deletes a reminder and its trigger.
func (a *Api) RemoveReminder(id string) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	settings, err := a.store.EnsureSettings()
	if err != nil {
		return err
	}
	kept := settings.Reminders[:0]
	removed := false
	for _, r := range settings.Reminders {
		if r.ID == id {
			removed = true
			continue
		}
		kept = append(kept, r)
	}
	if !removed {
		return fmt.Errorf("no reminder with id %q", id)
	}
	settings.Reminders = kept
	if err := a.store.PutSettings(settings); err != nil {
		return err
	}
	return a.refreshRemindersLocked()
}
