package api

import (
	"github.com/pomod/pomod/common"
	"github.com/pomod/pomod/internal/pomo"
)

func stateResponse(st *pomo.State) common.StateResponse {
	if st == nil {
		return common.StateResponse{Cycle: 0, Phase: string(pomo.PhaseIdle)}
	}
	return common.StateResponse{Cycle: st.Cycle, Phase: string(st.Phase)}
}

func settingsResponse(s pomo.Settings) common.SettingsResponse {
	reminders := make([]common.ReminderInfo, 0, len(s.Reminders))
	for _, r := range s.Reminders {
		reminders = append(reminders, common.ReminderInfo{
			Id:    r.ID,
			Label: r.Label,
			Time:  r.Time,
		})
	}
	return common.SettingsResponse{
		FocusMinutes:      s.FocusMinutes,
		ShortBreakMinutes: s.ShortBreakMinutes,
		LongBreakMinutes:  s.LongBreakMinutes,
		LongBreakEvery:    s.LongBreakEvery,
		Sound:             s.Sound,
		Reminders:         reminders,
	}
}

// StateSnapshot reports the persisted phase state; absence is idle.
func (a *Api) StateSnapshot() (common.StateResponse, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	st, err := a.store.GetState()
	if err != nil {
		return common.StateResponse{}, err
	}
	return stateResponse(st), nil
}

// TimersSnapshot reports all active trigger registrations.
func (a *Api) TimersSnapshot() common.TimersResponse {
	actives := a.gw.List()
	timers := make([]common.TimerInfo, 0, len(actives))
	for _, t := range actives {
		timers = append(timers, common.TimerInfo{
			Key:       t.Key,
			At:        t.TriggerAt,
			Recurring: t.Recurring,
		})
	}
	return common.TimersResponse{Timers: timers}
}

// SettingsSnapshot reports the effective settings record.
func (a *Api) SettingsSnapshot() (common.SettingsResponse, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	settings, err := a.store.EnsureSettings()
	if err != nil {
		return common.SettingsResponse{}, err
	}
	return settingsResponse(settings), nil
}

// Version reports build information.
func (a *Api) Version() common.VersionResponse {
	return common.VersionResponse{Version: a.version, BuildType: a.buildType}
}

// PatchSettings applies a shallow last-writer-wins overwrite of the
// timer settings. Reminders are not touched here; they are managed by
// the reminder operations.
func (a *Api) PatchSettings(p common.SetSettingsParams) (common.SettingsResponse, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	settings, err := a.store.EnsureSettings()
	if err != nil {
		return common.SettingsResponse{}, err
	}
	if p.FocusMinutes != nil {
		settings.FocusMinutes = *p.FocusMinutes
	}
	if p.ShortBreakMinutes != nil {
		settings.ShortBreakMinutes = *p.ShortBreakMinutes
	}
	if p.LongBreakMinutes != nil {
		settings.LongBreakMinutes = *p.LongBreakMinutes
	}
	if p.LongBreakEvery != nil {
		settings.LongBreakEvery = *p.LongBreakEvery
	}
	if p.Sound != nil {
		settings.Sound = *p.Sound
	}
	if err := settings.Validate(); err != nil {
		return common.SettingsResponse{}, err
	}
	if err := a.store.PutSettings(settings); err != nil {
		return common.SettingsResponse{}, err
	}
	return settingsResponse(settings), nil
}
