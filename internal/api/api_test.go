package api

import (
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pomod/pomod/common"
	"github.com/pomod/pomod/internal/notify"
	"github.com/pomod/pomod/internal/pomo"
	"github.com/pomod/pomod/internal/scheduler"
	"github.com/pomod/pomod/internal/store"
	"github.com/pomod/pomod/pkg/logger"
)

// fakeGateway records trigger registrations without running a clock.
type fakeGateway struct {
	events map[string]scheduler.Event
}

func newFakeGateway() *fakeGateway {
	return &fakeGateway{events: make(map[string]scheduler.Event)}
}

func (g *fakeGateway) Add(event scheduler.Event) {
	g.events[event.Key] = event
}

func (g *fakeGateway) Remove(key string) {
	delete(g.events, key)
}

func (g *fakeGateway) List() []scheduler.Active {
	actives := make([]scheduler.Active, 0, len(g.events))
	for _, e := range g.events {
		actives = append(actives, scheduler.Active{
			Key:       e.Key,
			TriggerAt: e.TriggerAt,
			Recurring: e.CronExpr != "",
		})
	}
	return actives
}

func newTestApi(t *testing.T) (*Api, *fakeGateway, *notify.MockNotifier, *store.Store) {
	t.Helper()
	st, err := store.Open(filepath.Join(t.TempDir(), "pomod.db"))
	if err != nil {
		t.Fatalf("opening store: %v", err)
	}
	t.Cleanup(func() { st.Close() })
	gw := newFakeGateway()
	n := &notify.MockNotifier{}
	a := NewApi(logger.NewNopLogger(), st, gw, n, "test", "dev")
	return a, gw, n, st
}

func TestStart_EntersFocus(t *testing.T) {
	a, gw, n, _ := newTestApi(t)

	resp, err := a.Start()
	if err != nil {
		t.Fatalf("start: %v", err)
	}
	if resp.Phase != "focus" || resp.Cycle != 1 {
		t.Fatalf("got phase=%s cycle=%d, want focus/1", resp.Phase, resp.Cycle)
	}
	if _, ok := gw.events[common.TimerKeyPomo]; !ok {
		t.Fatal("phase trigger not registered")
	}
	if len(n.Notifications) != 1 {
		t.Fatalf("got %d notifications, want 1", len(n.Notifications))
	}
	if n.Notifications[0].Title != "Pomodoro started" {
		t.Errorf("title = %q", n.Notifications[0].Title)
	}
	if n.Notifications[0].Message != "Focus for 25 minutes." {
		t.Errorf("message = %q", n.Notifications[0].Message)
	}
}

func TestScheduleNext_CanonicalSequence(t *testing.T) {
	a, _, n, _ := newTestApi(t)

	if _, err := a.Start(); err != nil {
		t.Fatalf("start: %v", err)
	}

	// With long breaks every 4th cycle the run walks
	// focus#1 short#1 focus#2 short#2 focus#3 short#3 focus#4 long#4 focus#5.
	want := []struct {
		phase string
		cycle int
		title string
	}{
		{"short", 1, "Break"},
		{"focus", 2, "Back to focus"},
		{"short", 2, "Break"},
		{"focus", 3, "Back to focus"},
		{"short", 3, "Break"},
		{"focus", 4, "Back to focus"},
		{"long", 4, "Long break"},
		{"focus", 5, "Back to focus"},
	}
	for i, w := range want {
		resp, err := a.ScheduleNext()
		if err != nil {
			t.Fatalf("step %d: %v", i, err)
		}
		if resp.Phase != w.phase || resp.Cycle != w.cycle {
			t.Fatalf("step %d: got %s#%d, want %s#%d", i, resp.Phase, resp.Cycle, w.phase, w.cycle)
		}
		last := n.Notifications[len(n.Notifications)-1]
		if last.Title != w.title {
			t.Errorf("step %d: title = %q, want %q", i, last.Title, w.title)
		}
	}
}

func TestStopRun_ResetsToIdle(t *testing.T) {
	a, gw, _, _ := newTestApi(t)

	if _, err := a.Start(); err != nil {
		t.Fatalf("start: %v", err)
	}
	if err := a.StopRun(); err != nil {
		t.Fatalf("stop: %v", err)
	}
	if _, ok := gw.events[common.TimerKeyPomo]; ok {
		t.Error("phase trigger survived stop")
	}
	resp, err := a.StateSnapshot()
	if err != nil {
		t.Fatalf("state: %v", err)
	}
	if resp.Phase != "idle" || resp.Cycle != 0 {
		t.Errorf("got %s#%d after stop, want idle#0", resp.Phase, resp.Cycle)
	}
}

func TestStopRun_KeepsReminderTriggers(t *testing.T) {
	a, gw, _, _ := newTestApi(t)

	if _, err := a.AddReminder("Standup", "09:30"); err != nil {
		t.Fatalf("add reminder: %v", err)
	}
	if _, err := a.Start(); err != nil {
		t.Fatalf("start: %v", err)
	}
	if err := a.StopRun(); err != nil {
		t.Fatalf("stop: %v", err)
	}
	reminders := 0
	for key := range gw.events {
		if strings.HasPrefix(key, common.ReminderKeyPrefix) {
			reminders++
		}
	}
	if reminders != 1 {
		t.Errorf("got %d reminder triggers after stop, want 1", reminders)
	}
}

func TestScheduleNext_CorruptPhase(t *testing.T) {
	a, gw, _, st := newTestApi(t)

	if _, err := a.Start(); err != nil {
		t.Fatalf("start: %v", err)
	}
	if err := st.PutState(pomo.State{Cycle: 3, Phase: pomo.Phase("nap")}); err != nil {
		t.Fatalf("seeding corrupt state: %v", err)
	}

	_, err := a.ScheduleNext()
	if !errors.Is(err, pomo.ErrUnknownPhase) {
		t.Fatalf("got err %v, want ErrUnknownPhase", err)
	}
	if _, ok := gw.events[common.TimerKeyPomo]; ok {
		t.Error("phase trigger survived corrupt-state reset")
	}
	resp, err := a.StateSnapshot()
	if err != nil {
		t.Fatalf("state: %v", err)
	}
	if resp.Phase != "idle" {
		t.Errorf("got phase %q after reset, want idle", resp.Phase)
	}
}

func TestRefreshReminders_Idempotent(t *testing.T) {
	a, gw, _, _ := newTestApi(t)

	if _, err := a.AddReminder("Standup", "09:30"); err != nil {
		t.Fatalf("add reminder: %v", err)
	}
	if _, err := a.AddReminder("Lunch", "12:00"); err != nil {
		t.Fatalf("add reminder: %v", err)
	}
	for i := 0; i < 3; i++ {
		if err := a.RefreshReminders(); err != nil {
			t.Fatalf("refresh %d: %v", i, err)
		}
	}
	if len(gw.events) != 2 {
		t.Errorf("got %d triggers after repeated refresh, want 2", len(gw.events))
	}
}

func TestRemoveReminder_DeletesTrigger(t *testing.T) {
	a, gw, _, _ := newTestApi(t)

	r, err := a.AddReminder("Standup", "09:30")
	if err != nil {
		t.Fatalf("add reminder: %v", err)
	}
	if _, ok := gw.events[common.ReminderKeyPrefix+r.ID]; !ok {
		t.Fatal("trigger not registered on add")
	}
	if err := a.RemoveReminder(r.ID); err != nil {
		t.Fatalf("remove: %v", err)
	}
	if _, ok := gw.events[common.ReminderKeyPrefix+r.ID]; ok {
		t.Error("trigger survived removal")
	}
	if err := a.RemoveReminder(r.ID); err == nil {
		t.Error("removing an absent reminder should fail")
	}
}

func TestAddReminder_RejectsBadClock(t *testing.T) {
	a, _, _, _ := newTestApi(t)

	if _, err := a.AddReminder("x", "25:00"); err == nil {
		t.Error("25:00 accepted")
	}
	if _, err := a.AddReminder("x", "0930"); err == nil {
		t.Error("0930 accepted")
	}
}

func TestUpdateReminder(t *testing.T) {
	a, _, _, _ := newTestApi(t)

	r, err := a.AddReminder("Standup", "09:30")
	if err != nil {
		t.Fatalf("add reminder: %v", err)
	}
	label := "Daily standup"
	clock := "10:00"
	if err := a.UpdateReminder(r.ID, &label, &clock); err != nil {
		t.Fatalf("update: %v", err)
	}
	settings, err := a.SettingsSnapshot()
	if err != nil {
		t.Fatalf("settings: %v", err)
	}
	if len(settings.Reminders) != 1 {
		t.Fatalf("got %d reminders, want 1", len(settings.Reminders))
	}
	got := settings.Reminders[0]
	if got.Label != label || got.Time != clock {
		t.Errorf("got %q@%s, want %q@%s", got.Label, got.Time, label, clock)
	}
}

func TestReminderFired_FallbackLabel(t *testing.T) {
	a, _, n, _ := newTestApi(t)

	// A reminder deleted between scheduling and firing still yields a
	// generic notification.
	a.OnTrigger(common.ReminderKeyPrefix + "gone")
	if len(n.Notifications) != 1 {
		t.Fatalf("got %d notifications, want 1", len(n.Notifications))
	}
	if n.Notifications[0].Title != "Reminder" || n.Notifications[0].Message != "Reminder" {
		t.Errorf("got %q/%q, want Reminder/Reminder", n.Notifications[0].Title, n.Notifications[0].Message)
	}
}

func TestReminderFired_UsesLabel(t *testing.T) {
	a, _, n, _ := newTestApi(t)

	r, err := a.AddReminder("Stretch", "15:00")
	if err != nil {
		t.Fatalf("add reminder: %v", err)
	}
	a.OnTrigger(common.ReminderKeyPrefix + r.ID)
	last := n.Notifications[len(n.Notifications)-1]
	if last.Title != "Reminder" || last.Message != "Stretch" {
		t.Errorf("got %q/%q, want Reminder/Stretch", last.Title, last.Message)
	}
}

func TestReconcile_ResumesMidRun(t *testing.T) {
	a, gw, n, st := newTestApi(t)

	if err := st.PutState(pomo.State{Cycle: 2, Phase: pomo.PhaseFocus}); err != nil {
		t.Fatalf("seeding state: %v", err)
	}
	if err := a.Reconcile(); err != nil {
		t.Fatalf("reconcile: %v", err)
	}
	if _, ok := gw.events[common.TimerKeyPomo]; !ok {
		t.Error("phase trigger not re-registered")
	}
	if len(n.Notifications) != 0 {
		t.Errorf("reconcile re-notified %d times", len(n.Notifications))
	}
}

func TestReconcile_IdleRegistersNoPhaseTrigger(t *testing.T) {
	a, gw, _, _ := newTestApi(t)

	if err := a.Reconcile(); err != nil {
		t.Fatalf("reconcile: %v", err)
	}
	if _, ok := gw.events[common.TimerKeyPomo]; ok {
		t.Error("phase trigger registered with no persisted run")
	}
}

func TestReconcile_CorruptStateResets(t *testing.T) {
	a, _, _, st := newTestApi(t)

	if err := st.PutState(pomo.State{Cycle: 1, Phase: pomo.Phase("siesta")}); err != nil {
		t.Fatalf("seeding state: %v", err)
	}
	if err := a.Reconcile(); err != nil {
		t.Fatalf("reconcile: %v", err)
	}
	resp, err := a.StateSnapshot()
	if err != nil {
		t.Fatalf("state: %v", err)
	}
	if resp.Phase != "idle" {
		t.Errorf("got phase %q after reconcile, want idle", resp.Phase)
	}
}

func TestPatchSettings(t *testing.T) {
	a, _, _, _ := newTestApi(t)

	focus := 50
	sound := true
	resp, err := a.PatchSettings(common.SetSettingsParams{
		FocusMinutes: &focus,
		Sound:        &sound,
	})
	if err != nil {
		t.Fatalf("patch: %v", err)
	}
	if resp.FocusMinutes != 50 || !resp.Sound {
		t.Errorf("patch not applied: %+v", resp)
	}
	if resp.ShortBreakMinutes != 5 || resp.LongBreakEvery != 4 {
		t.Errorf("untouched fields changed: %+v", resp)
	}

	bad := 0
	if _, err := a.PatchSettings(common.SetSettingsParams{FocusMinutes: &bad}); err == nil {
		t.Error("zero focus minutes accepted")
	}
}

func TestOnTrigger_PhaseKey(t *testing.T) {
	a, _, n, _ := newTestApi(t)

	a.OnTrigger(common.TimerKeyPomo)
	if len(n.Notifications) != 1 || n.Notifications[0].Title != "Pomodoro started" {
		t.Fatalf("phase trigger from idle: %+v", n.Notifications)
	}
}
