package cmd

const DESCRIPTION = `
Pomod is a pomodoro daemon for your desktop. It keeps the focus and
break cadence running in the background, sends desktop notifications
at every phase boundary, and fires your daily reminders even when no
popup is open.
`

const (
	StartDescription = `The start command begins a fresh pomodoro run: the first
focus interval starts immediately and the daemon keeps
alternating focus and break phases until stopped.

Example:
        pomod start

`
	StopDescription = `The stop command ends the current pomodoro run and returns
the state to idle. Daily reminders keep firing.

Example:
        pomod stop

`
	StatusDescription = `The status command prints the current phase, cycle number,
and the time remaining until the next phase boundary. With
--watch it renders a live countdown bar.

Example:
        pomod status
        pomod status --watch

`
	NextDescription = `The next command skips ahead one phase boundary: the current
phase ends now and the following phase begins immediately.

Example:
        pomod next

`
	PopupDescription = `The popup command opens an interactive terminal view with a
live countdown, phase and cycle display, and keys to start
or stop the run.

Example:
        pomod popup

`
	ReminderDescription = `The reminder command manages daily clock-time reminders.
Reminders fire every day at the given 24-hour wall time.

Example:
        pomod reminder add --time 09:30 --label "Standup"
        pomod reminder list
        pomod reminder remove <id>

`
	SettingsDescription = `The settings command shows or changes the timer durations,
the long break cadence, and the notification sound toggle.

Example:
        pomod settings
        pomod settings set --focus 50 --long 20

`
)
