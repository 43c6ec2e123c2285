package pomocli

import (
	"encoding/json"

	"github.com/pomod/pomod/common"
)

func invoke[T any](c *Client, method common.Method, message any) (*T, error) {
	resp, err := c.invoke(method, message)
	if err != nil {
		return nil, err
	}
	var d T
	return &d, json.Unmarshal(resp, &d)
}

// ScheduleNext advances the phase machine by one step and returns the
// new state.
func (c *Client) ScheduleNext() (*common.StateResponse, error) {
	return invoke[common.StateResponse](c, common.MethodScheduleNext, nil)
}

// Start begins a fresh run from idle.
func (c *Client) Start() (*common.StateResponse, error) {
	return invoke[common.StateResponse](c, common.MethodStart, nil)
}

// Stop ends the current run and returns the state to idle.
func (c *Client) Stop() error {
	_, err := c.invoke(common.MethodStop, nil)
	return err
}

// RefreshReminders rebuilds the reminder trigger set from settings.
func (c *Client) RefreshReminders() error {
	_, err := c.invoke(common.MethodRefreshReminders, nil)
	return err
}

// EnsureDailyStart is a reserved no-op command.
func (c *Client) EnsureDailyStart() error {
	_, err := c.invoke(common.MethodEnsureDailyStart, nil)
	return err
}

// TestSound asks the daemon to play the notification sound.
func (c *Client) TestSound() error {
	_, err := c.invoke(common.MethodTestSound, nil)
	return err
}

// State returns the current phase state.
func (c *Client) State() (*common.StateResponse, error) {
	return invoke[common.StateResponse](c, common.MethodState, nil)
}

// Timers returns all active trigger registrations.
func (c *Client) Timers() (*common.TimersResponse, error) {
	return invoke[common.TimersResponse](c, common.MethodTimers, nil)
}

// GetSettings returns the full settings record.
func (c *Client) GetSettings() (*common.SettingsResponse, error) {
	return invoke[common.SettingsResponse](c, common.MethodGetSettings, nil)
}

// SetSettings patches the timer settings; nil fields are left unchanged.
func (c *Client) SetSettings(params *common.SetSettingsParams) (*common.SettingsResponse, error) {
	return invoke[common.SettingsResponse](c, common.MethodSetSettings, params)
}

// AddReminder creates a daily reminder and returns it with its
// generated id.
func (c *Client) AddReminder(label, clock string) (*common.ReminderInfo, error) {
	return invoke[common.ReminderInfo](c, common.MethodAddReminder, &common.AddReminderParams{
		Label: label,
		Time:  clock,
	})
}

// UpdateReminder mutates a reminder's label and/or time.
func (c *Client) UpdateReminder(id string, label, clock *string) error {
	_, err := c.invoke(common.MethodUpdateReminder, &common.UpdateReminderParams{
		Id:    id,
		Label: label,
		Time:  clock,
	})
	return err
}

// RemoveReminder deletes a reminder by id.
func (c *Client) RemoveReminder(id string) error {
	_, err := c.invoke(common.MethodRemoveReminder, &common.RemoveReminderParams{Id: id})
	return err
}

// Version returns the daemon's build information.
func (c *Client) Version() (*common.VersionResponse, error) {
	return invoke[common.VersionResponse](c, common.MethodVersion, nil)
}
