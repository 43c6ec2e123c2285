package scheduler

import (
	"container/heap"
	"context"
	"time"

	"github.com/adhocore/gronx"
)

const maxSleepCap = 60 * time.Second

type opKind int

const (
	opAdd opKind = iota
	opRemove
	opList
)

// command is one queued operation for the scheduler goroutine. All
// operations travel on a single channel so their relative order is
// preserved: an Add issued before a Remove is always applied first.
type command struct {
	kind  opKind
	event Event
	key   string
	reply chan []Active
}

// Scheduler manages pending triggers using a min-heap. It runs a
// background goroutine that sleeps until the next event's trigger time,
// then calls the onTrigger callback with the event key.
type Scheduler struct {
	cmdChan chan command
	ctx     context.Context
}

// New creates and starts a Scheduler. The onTrigger callback runs on its
// own goroutine per firing, so it may block or call back into the
// scheduler without stalling the heap. The scheduler exits when ctx is
// cancelled.
func New(ctx context.Context, onTrigger func(string)) *Scheduler {
	s := &Scheduler{
		cmdChan: make(chan command, 64),
		ctx:     ctx,
	}
	go s.run(onTrigger)
	return s
}

// Add registers a trigger, replacing any pending trigger under the same key.
func (s *Scheduler) Add(event Event) {
	select {
	case s.cmdChan <- command{kind: opAdd, event: event}:
	case <-s.ctx.Done():
	}
}

// Remove cancels a pending trigger by key.
func (s *Scheduler) Remove(key string) {
	select {
	case s.cmdChan <- command{kind: opRemove, key: key}:
	case <-s.ctx.Done():
	}
}

// List returns a snapshot of all pending triggers. Returns nil after the
// scheduler has shut down.
func (s *Scheduler) List() []Active {
	reply := make(chan []Active, 1)
	select {
	case s.cmdChan <- command{kind: opList, reply: reply}:
	case <-s.ctx.Done():
		return nil
	}
	select {
	case actives := <-reply:
		return actives
	case <-s.ctx.Done():
		return nil
	}
}

// run is the scheduler goroutine. It maintains the event heap and sleeps
// with a 60s max-sleep-cap. Recurring events (CronExpr != "") are
// re-added with their next occurrence after firing.
func (s *Scheduler) run(onTrigger func(string)) {
	h := &eventHeap{}
	heap.Init(h)

	var timer *time.Timer
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	resetTimer := func() <-chan time.Time {
		if timer != nil {
			timer.Stop()
		}
		if h.Len() == 0 {
			// No events, block on the channels alone.
			return nil
		}
		dur := time.Until((*h)[0].TriggerAt)
		if dur > maxSleepCap {
			dur = maxSleepCap
		}
		if dur < 0 {
			dur = 0
		}
		timer = time.NewTimer(dur)
		return timer.C
	}

	timerCh := resetTimer()

	for {
		select {
		case <-s.ctx.Done():
			return

		case cmd := <-s.cmdChan:
			switch cmd.kind {
			case opAdd:
				heapRemoveByKey(h, cmd.event.Key)
				heapPush(h, cmd.event)
			case opRemove:
				heapRemoveByKey(h, cmd.key)
			case opList:
				actives := make([]Active, 0, h.Len())
				for _, e := range *h {
					actives = append(actives, Active{
						Key:       e.Key,
						TriggerAt: e.TriggerAt,
						Recurring: e.CronExpr != "",
					})
				}
				cmd.reply <- actives
			}
			timerCh = resetTimer()

		case <-timerCh:
			now := time.Now()
			for h.Len() > 0 && !(*h)[0].TriggerAt.After(now) {
				event := heapPop(h)
				// The callback gets its own goroutine so a handler that
				// blocks, or that calls Add/Remove/List, cannot stall the
				// heap or deadlock against a List caller.
				go onTrigger(event.Key)
				if event.CronExpr != "" {
					next, err := gronx.NextTickAfter(event.CronExpr, time.Now(), false)
					if err == nil {
						heapPush(h, Event{
							Key:       event.Key,
							TriggerAt: next,
							CronExpr:  event.CronExpr,
						})
					}
				}
			}
			timerCh = resetTimer()
		}
	}
}
