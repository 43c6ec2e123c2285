package api

import (
	"encoding/json"
	"fmt"

	"github.com/pomod/pomod/common"
)

// okResponse is the payload for commands with no data to return.
type okResponse struct {
	Ok bool `json:"ok"`
}

func (a *Api) scheduleNextHandler(_ json.RawMessage) (any, error) {
	return a.ScheduleNext()
}

func (a *Api) startHandler(_ json.RawMessage) (any, error) {
	return a.Start()
}

func (a *Api) stopHandler(_ json.RawMessage) (any, error) {
	if err := a.StopRun(); err != nil {
		return nil, err
	}
	return okResponse{Ok: true}, nil
}

func (a *Api) refreshRemindersHandler(_ json.RawMessage) (any, error) {
	if err := a.RefreshReminders(); err != nil {
		return nil, err
	}
	return okResponse{Ok: true}, nil
}

// ensureDailyStartHandler is a reserved no-op retained for interface
// stability.
func (a *Api) ensureDailyStartHandler(_ json.RawMessage) (any, error) {
	return okResponse{Ok: true}, nil
}

func (a *Api) testSoundHandler(_ json.RawMessage) (any, error) {
	if err := a.notifier.Beep(); err != nil {
		// Best effort only; report success so the command never fails a
		// client over a missing audio subsystem.
		a.log.Warning("test sound: %v", err)
	}
	return okResponse{Ok: true}, nil
}

func (a *Api) stateHandler(_ json.RawMessage) (any, error) {
	return a.StateSnapshot()
}

func (a *Api) timersHandler(_ json.RawMessage) (any, error) {
	return a.TimersSnapshot(), nil
}

func (a *Api) getSettingsHandler(_ json.RawMessage) (any, error) {
	return a.SettingsSnapshot()
}

func (a *Api) setSettingsHandler(body json.RawMessage) (any, error) {
	var p common.SetSettingsParams
	if err := json.Unmarshal(body, &p); err != nil {
		return nil, fmt.Errorf("invalid settings payload: %w", err)
	}
	return a.PatchSettings(p)
}

func (a *Api) addReminderHandler(body json.RawMessage) (any, error) {
	var p common.AddReminderParams
	if err := json.Unmarshal(body, &p); err != nil {
		return nil, fmt.Errorf("invalid reminder payload: %w", err)
	}
	r, err := a.AddReminder(p.Label, p.Time)
	if err != nil {
		return nil, err
	}
	return common.ReminderInfo{Id: r.ID, Label: r.Label, Time: r.Time}, nil
}

func (a *Api) updateReminderHandler(body json.RawMessage) (any, error) {
	var p common.UpdateReminderParams
	if err := json.Unmarshal(body, &p); err != nil {
		return nil, fmt.Errorf("invalid reminder payload: %w", err)
	}
	if err := a.UpdateReminder(p.Id, p.Label, p.Time); err != nil {
		return nil, err
	}
	return okResponse{Ok: true}, nil
}

func (a *Api) removeReminderHandler(body json.RawMessage) (any, error) {
	var p common.RemoveReminderParams
	if err := json.Unmarshal(body, &p); err != nil {
		return nil, fmt.Errorf("invalid reminder payload: %w", err)
	}
	if err := a.RemoveReminder(p.Id); err != nil {
		return nil, err
	}
	return okResponse{Ok: true}, nil
}

func (a *Api) versionHandler(_ json.RawMessage) (any, error) {
	return a.Version(), nil
}
