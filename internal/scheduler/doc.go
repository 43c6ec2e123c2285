// Package scheduler provides the trigger gateway for pomod. It implements
// a single-goroutine scheduler using a min-heap of keyed events sorted by
// trigger time, with a 60-second max-sleep-cap to handle NTP steps, DST
// transitions, and system sleep.
//
// Adding an event under an existing key replaces the pending event, so
// the phase-boundary trigger is always a singleton. Recurring events
// carry a cron expression; after firing, the next occurrence is computed
// and re-added automatically. All operations travel on one command
// channel, so Add/Remove/List apply in the order issued, and the trigger
// callback runs on its own goroutine per firing. The heap is in-memory
// only and is rebuilt by the driver from persisted state on daemon
// restart.
package scheduler
