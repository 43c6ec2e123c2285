package scheduler

import (
	"context"
	"sync"
	"testing"
	"time"
)

type firedRecorder struct {
	mu    sync.Mutex
	fired map[string]int
}

func newFiredRecorder() *firedRecorder {
	return &firedRecorder{fired: make(map[string]int)}
}

func (r *firedRecorder) onTrigger(key string) {
	r.mu.Lock()
	r.fired[key]++
	r.mu.Unlock()
}

func (r *firedRecorder) count(key string) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.fired[key]
}

func TestScheduler_AddAndFire(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	rec := newFiredRecorder()
	s := New(ctx, rec.onTrigger)

	s.Add(Event{Key: "pomo", TriggerAt: time.Now().Add(100 * time.Millisecond)})

	time.Sleep(300 * time.Millisecond)
	if rec.count("pomo") != 1 {
		t.Fatalf("expected pomo to fire once, fired %d times", rec.count("pomo"))
	}
}

func TestScheduler_RemoveBeforeFire(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	rec := newFiredRecorder()
	s := New(ctx, rec.onTrigger)

	s.Add(Event{Key: "reminder:r1", TriggerAt: time.Now().Add(200 * time.Millisecond)})
	s.Remove("reminder:r1")

	time.Sleep(400 * time.Millisecond)
	if rec.count("reminder:r1") != 0 {
		t.Fatal("removed event must not fire")
	}
}

func TestScheduler_AddReplacesSameKey(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	rec := newFiredRecorder()
	s := New(ctx, rec.onTrigger)

	// Re-registering under the same key cancels the prior trigger, so
	// only one firing may occur.
	s.Add(Event{Key: "pomo", TriggerAt: time.Now().Add(100 * time.Millisecond)})
	s.Add(Event{Key: "pomo", TriggerAt: time.Now().Add(250 * time.Millisecond)})

	time.Sleep(150 * time.Millisecond)
	if rec.count("pomo") != 0 {
		t.Fatal("replaced trigger fired at its old time")
	}

	time.Sleep(300 * time.Millisecond)
	if rec.count("pomo") != 1 {
		t.Fatalf("expected exactly one firing, got %d", rec.count("pomo"))
	}
}

func TestScheduler_List(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	s := New(ctx, func(string) {})

	s.Add(Event{Key: "pomo", TriggerAt: time.Now().Add(time.Hour)})
	s.Add(Event{Key: "reminder:r1", TriggerAt: time.Now().Add(2 * time.Hour), CronExpr: "15 11 * * *"})

	// Give the goroutine a moment to drain the add channel.
	time.Sleep(50 * time.Millisecond)

	actives := s.List()
	if len(actives) != 2 {
		t.Fatalf("expected 2 active triggers, got %d", len(actives))
	}
	byKey := make(map[string]Active, len(actives))
	for _, a := range actives {
		byKey[a.Key] = a
	}
	if _, ok := byKey["pomo"]; !ok {
		t.Error("missing pomo trigger")
	}
	r1, ok := byKey["reminder:r1"]
	if !ok {
		t.Fatal("missing reminder:r1 trigger")
	}
	if !r1.Recurring {
		t.Error("reminder trigger must be recurring")
	}
}

func TestScheduler_RecurringReadded(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	rec := newFiredRecorder()
	s := New(ctx, rec.onTrigger)

	// Every-minute cron; the event fires once now and the next occurrence
	// goes back on the heap.
	s.Add(Event{
		Key:       "reminder:r1",
		TriggerAt: time.Now().Add(50 * time.Millisecond),
		CronExpr:  "* * * * *",
	})

	time.Sleep(200 * time.Millisecond)
	if rec.count("reminder:r1") != 1 {
		t.Fatalf("expected one firing, got %d", rec.count("reminder:r1"))
	}

	actives := s.List()
	if len(actives) != 1 || actives[0].Key != "reminder:r1" {
		t.Fatalf("expected recurring event back on the heap, got %+v", actives)
	}
	if !actives[0].TriggerAt.After(time.Now()) {
		t.Error("re-added occurrence must be in the future")
	}
}

func TestScheduler_RemoveThenReAddSameKey(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	rec := newFiredRecorder()
	s := New(ctx, rec.onTrigger)

	// The cancel-then-create sequence used when reminder triggers are
	// resynced: the Remove must land before the Add, so the fresh trigger
	// survives and fires exactly once.
	s.Add(Event{Key: "reminder:r1", TriggerAt: time.Now().Add(time.Hour)})
	s.Remove("reminder:r1")
	s.Add(Event{Key: "reminder:r1", TriggerAt: time.Now().Add(100 * time.Millisecond)})

	time.Sleep(300 * time.Millisecond)
	if rec.count("reminder:r1") != 1 {
		t.Fatalf("expected the re-added trigger to fire once, fired %d times", rec.count("reminder:r1"))
	}
}

func TestScheduler_ListWhileCallbackHoldsCallerLock(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Mirrors the driver pattern: the trigger callback takes the same
	// mutex the List caller already holds. List must still complete, which
	// requires the callback to run off the scheduler goroutine.
	var mu sync.Mutex
	s := New(ctx, func(string) {
		mu.Lock()
		mu.Unlock()
	})

	mu.Lock()
	s.Add(Event{Key: "pomo", TriggerAt: time.Now().Add(50 * time.Millisecond)})
	time.Sleep(150 * time.Millisecond)

	done := make(chan []Active, 1)
	go func() { done <- s.List() }()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		mu.Unlock()
		t.Fatal("List blocked while a trigger callback waited on the caller's lock")
	}
	mu.Unlock()
}

func TestScheduler_ShutdownStopsFiring(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())

	rec := newFiredRecorder()
	s := New(ctx, rec.onTrigger)

	s.Add(Event{Key: "pomo", TriggerAt: time.Now().Add(150 * time.Millisecond)})
	cancel()

	time.Sleep(300 * time.Millisecond)
	if rec.count("pomo") != 0 {
		t.Fatal("event fired after shutdown")
	}
	if got := s.List(); got != nil {
		t.Fatalf("List after shutdown should be nil, got %+v", got)
	}
}
