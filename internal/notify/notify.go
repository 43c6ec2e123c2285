// Package notify delivers user-facing notifications for phase boundaries
// and reminders. Delivery is best effort: audio and presentation failures
// are logged and never propagate into the state machine.
package notify

import (
	"fmt"

	"github.com/godbus/dbus/v5"

	"github.com/pomod/pomod/pkg/logger"
)

// Notifier presents a visual alert and, optionally, an audible cue.
type Notifier interface {
	// Notify shows a persistent alert. When sound is true an audible cue
	// is requested alongside; failure to play it must not fail the call.
	Notify(title, message string, sound bool) error

	// Beep plays the audible cue alone (the test-sound command).
	Beep() error
}

const (
	notifyService   = "org.freedesktop.Notifications"
	notifyPath      = dbus.ObjectPath("/org/freedesktop/Notifications")
	notifyMethod    = "org.freedesktop.Notifications.Notify"
	soundHint       = "alarm-clock-elapsed"
	neverExpire     = int32(0)
	transientExpire = int32(3000)
)

// DesktopNotifier sends notifications over the D-Bus session bus using
// the org.freedesktop.Notifications interface.
type DesktopNotifier struct {
	log logger.Logger
}

// NewDesktopNotifier creates a notifier backed by the desktop
// notification service.
func NewDesktopNotifier(log logger.Logger) *DesktopNotifier {
	return &DesktopNotifier{log: log}
}

func (n *DesktopNotifier) send(title, message string, sound bool, expire int32) error {
	conn, err := dbus.SessionBus()
	if err != nil {
		return fmt.Errorf("session bus: %w", err)
	}
	hints := map[string]dbus.Variant{
		"urgency": dbus.MakeVariant(byte(1)),
	}
	if sound {
		// Best effort: servers without sound support ignore the hint.
		hints["sound-name"] = dbus.MakeVariant(soundHint)
	}
	obj := conn.Object(notifyService, notifyPath)
	call := obj.Call(notifyMethod, 0,
		"pomod",            // app name
		uint32(0),          // no notification replaced
		"",                 // no icon
		title,
		message,
		[]string{},         // no actions
		hints,
		expire,
	)
	if call.Err != nil {
		return fmt.Errorf("notify: %w", call.Err)
	}
	return nil
}

// Notify shows a persistent alert; it stays until dismissed.
func (n *DesktopNotifier) Notify(title, message string, sound bool) error {
	if err := n.send(title, message, sound, neverExpire); err != nil {
		n.log.Warning("notification delivery failed: %v", err)
		return err
	}
	return nil
}

// Beep requests the audible cue via a short-lived notification.
func (n *DesktopNotifier) Beep() error {
	if err := n.send("Pomodoro", "Test sound", true, transientExpire); err != nil {
		n.log.Warning("test sound failed: %v", err)
		return err
	}
	return nil
}

// NopNotifier discards all notifications. Used when no notification
// service is reachable and in tests.
type NopNotifier struct{}

func (NopNotifier) Notify(title, message string, sound bool) error { return nil }
func (NopNotifier) Beep() error                                    { return nil }

// MockNotifier records notifications for verification in tests.
type MockNotifier struct {
	Notifications []MockNotification
	Beeps         int
}

// MockNotification is one recorded Notify call.
type MockNotification struct {
	Title   string
	Message string
	Sound   bool
}

func (m *MockNotifier) Notify(title, message string, sound bool) error {
	m.Notifications = append(m.Notifications, MockNotification{title, message, sound})
	return nil
}

func (m *MockNotifier) Beep() error {
	m.Beeps++
	return nil
}

var (
	_ Notifier = (*DesktopNotifier)(nil)
	_ Notifier = (NopNotifier{})
	_ Notifier = (*MockNotifier)(nil)
)
