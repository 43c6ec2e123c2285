package scheduler

import (
	"container/heap"
	"testing"
	"time"
)

func TestHeapOrdering(t *testing.T) {
	h := &eventHeap{}
	heap.Init(h)

	now := time.Now()
	heapPush(h, Event{Key: "c", TriggerAt: now.Add(3 * time.Hour)})
	heapPush(h, Event{Key: "a", TriggerAt: now.Add(1 * time.Hour)})
	heapPush(h, Event{Key: "b", TriggerAt: now.Add(2 * time.Hour)})

	for _, want := range []string{"a", "b", "c"} {
		got := heapPop(h)
		if got.Key != want {
			t.Fatalf("popped %q, want %q", got.Key, want)
		}
	}
	if h.Len() != 0 {
		t.Fatalf("heap not empty after pops: %d", h.Len())
	}
}

func TestHeapRemoveByKey(t *testing.T) {
	h := &eventHeap{}
	heap.Init(h)

	now := time.Now()
	heapPush(h, Event{Key: "pomo", TriggerAt: now.Add(time.Minute)})
	heapPush(h, Event{Key: "reminder:r1", TriggerAt: now.Add(2 * time.Minute)})

	if !heapRemoveByKey(h, "reminder:r1") {
		t.Fatal("expected removal to succeed")
	}
	if heapRemoveByKey(h, "reminder:r1") {
		t.Fatal("expected second removal to fail")
	}
	if h.Len() != 1 || (*h)[0].Key != "pomo" {
		t.Fatalf("unexpected heap contents: %+v", *h)
	}
}

func TestHeapRemoveFromEmpty(t *testing.T) {
	h := &eventHeap{}
	heap.Init(h)
	if heapRemoveByKey(h, "pomo") {
		t.Fatal("removal from empty heap must report false")
	}
}
