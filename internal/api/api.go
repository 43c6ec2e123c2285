// Package api implements the scheduler driver: the glue that, on every
// trigger firing or client command, loads persisted state, runs the pure
// decision functions, persists the result, registers the next trigger,
// and requests a notification.
package api

import (
	"strings"
	"sync"

	"github.com/pomod/pomod/common"
	"github.com/pomod/pomod/internal/notify"
	"github.com/pomod/pomod/internal/scheduler"
	"github.com/pomod/pomod/internal/server"
	"github.com/pomod/pomod/internal/store"
	"github.com/pomod/pomod/pkg/logger"
)

// Gateway is the trigger facility the driver schedules against.
// Implemented by scheduler.Scheduler; faked in tests.
type Gateway interface {
	Add(event scheduler.Event)
	Remove(key string)
	List() []scheduler.Active
}

// Api is the scheduler driver. All command and trigger handling is
// serialized by a single mutex: there is one logical writer of the phase
// state at a time.
type Api struct {
	log       logger.Logger
	store     *store.Store
	gw        Gateway
	notifier  notify.Notifier
	version   string
	buildType string
	mu        sync.Mutex
}

// NewApi creates the driver.
func NewApi(l logger.Logger, st *store.Store, gw Gateway, n notify.Notifier, version, buildType string) *Api {
	return &Api{
		log:       l,
		store:     st,
		gw:        gw,
		notifier:  n,
		version:   version,
		buildType: buildType,
	}
}

// RegisterHandlers wires the command channel onto the socket server.
func (a *Api) RegisterHandlers(srv *server.Server) {
	srv.RegisterHandler(common.MethodScheduleNext, a.scheduleNextHandler)
	srv.RegisterHandler(common.MethodStart, a.startHandler)
	srv.RegisterHandler(common.MethodStop, a.stopHandler)
	srv.RegisterHandler(common.MethodRefreshReminders, a.refreshRemindersHandler)
	srv.RegisterHandler(common.MethodEnsureDailyStart, a.ensureDailyStartHandler)
	srv.RegisterHandler(common.MethodTestSound, a.testSoundHandler)
	srv.RegisterHandler(common.MethodState, a.stateHandler)
	srv.RegisterHandler(common.MethodTimers, a.timersHandler)
	srv.RegisterHandler(common.MethodGetSettings, a.getSettingsHandler)
	srv.RegisterHandler(common.MethodSetSettings, a.setSettingsHandler)
	srv.RegisterHandler(common.MethodAddReminder, a.addReminderHandler)
	srv.RegisterHandler(common.MethodUpdateReminder, a.updateReminderHandler)
	srv.RegisterHandler(common.MethodRemoveReminder, a.removeReminderHandler)
	srv.RegisterHandler(common.MethodVersion, a.versionHandler)
}

// OnTrigger is the scheduler callback. It dispatches the phase-boundary
// trigger to the state machine and reminder triggers to notification
// delivery.
func (a *Api) OnTrigger(key string) {
	switch {
	case key == common.TimerKeyPomo:
		if _, err := a.ScheduleNext(); err != nil {
			a.log.Error("phase trigger: %v", err)
		}
	case strings.HasPrefix(key, common.ReminderKeyPrefix):
		a.reminderFired(strings.TrimPrefix(key, common.ReminderKeyPrefix))
	default:
		a.log.Warning("trigger with unknown key %q", key)
	}
}

// Close releases the driver's storage.
func (a *Api) Close() error {
	return a.store.Close()
}
