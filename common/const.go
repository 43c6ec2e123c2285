// Package common provides shared types and constants used across the pomod
// client-daemon communication layer.
package common

import "time"

// Method identifies a daemon command on the socket protocol.
type Method string

const (
	MethodScheduleNext     Method = "schedule-next"
	MethodStart            Method = "start"
	MethodStop             Method = "stop"
	MethodRefreshReminders Method = "refresh-reminders"
	MethodEnsureDailyStart Method = "ensure-daily-start"
	MethodTestSound        Method = "test-sound"
	MethodState            Method = "state"
	MethodTimers           Method = "timers"
	MethodGetSettings      Method = "get-settings"
	MethodSetSettings      Method = "set-settings"
	MethodAddReminder      Method = "add-reminder"
	MethodUpdateReminder   Method = "update-reminder"
	MethodRemoveReminder   Method = "remove-reminder"
	MethodVersion          Method = "version"
)

// Timer keys used with the trigger scheduler. The phase-boundary trigger
// is a singleton; reminder triggers are keyed by reminder id.
const (
	TimerKeyPomo      = "pomo"
	ReminderKeyPrefix = "reminder:"
)

// MaxMessageSize bounds a single framed message on the socket protocol.
const MaxMessageSize = 4 << 20

// Transport defaults shared by the daemon and the client.
const (
	TCPHost        = "localhost"
	DefaultTCPPort = 4600
	DefaultWebPort = 4601
)

// DefaultDialTimeout bounds named-pipe dialing on Windows.
const DefaultDialTimeout = 2 * time.Second
