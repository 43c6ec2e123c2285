package server

import (
	"context"

	"github.com/creachadair/jrpc2"
	"github.com/creachadair/jrpc2/handler"
	"github.com/creachadair/jrpc2/jhttp"

	"github.com/pomod/pomod/common"
)

// JSON-RPC error codes for pomodoro operations.
const (
	codeCorruptState  = jrpc2.Code(-32001)
	codeInvalidParams = jrpc2.Code(-32602)
)

// Driver is the command surface the web bridge exposes. It is
// implemented by the scheduler driver.
type Driver interface {
	StateSnapshot() (common.StateResponse, error)
	TimersSnapshot() common.TimersResponse
	SettingsSnapshot() (common.SettingsResponse, error)
	ScheduleNext() (common.StateResponse, error)
	StopRun() error
	Version() common.VersionResponse
}

// newRPCBridge builds the jhttp bridge serving the JSON-RPC methods.
func newRPCBridge(d Driver) jhttp.Bridge {
	methods := handler.Map{
		"system.getVersion": handler.New(func(_ context.Context) (common.VersionResponse, error) {
			return d.Version(), nil
		}),
		"pomo.state": handler.New(func(_ context.Context) (common.StateResponse, error) {
			st, err := d.StateSnapshot()
			if err != nil {
				return common.StateResponse{}, &jrpc2.Error{Code: codeCorruptState, Message: err.Error()}
			}
			return st, nil
		}),
		"pomo.timers": handler.New(func(_ context.Context) (common.TimersResponse, error) {
			return d.TimersSnapshot(), nil
		}),
		"pomo.settings": handler.New(func(_ context.Context) (common.SettingsResponse, error) {
			s, err := d.SettingsSnapshot()
			if err != nil {
				return common.SettingsResponse{}, &jrpc2.Error{Code: codeCorruptState, Message: err.Error()}
			}
			return s, nil
		}),
		"pomo.scheduleNext": handler.New(func(_ context.Context) (common.StateResponse, error) {
			st, err := d.ScheduleNext()
			if err != nil {
				return common.StateResponse{}, &jrpc2.Error{Code: codeCorruptState, Message: err.Error()}
			}
			return st, nil
		}),
		"pomo.stop": handler.New(func(_ context.Context) (struct{}, error) {
			if err := d.StopRun(); err != nil {
				return struct{}{}, &jrpc2.Error{Code: codeCorruptState, Message: err.Error()}
			}
			return struct{}{}, nil
		}),
	}
	return jhttp.NewBridge(methods, nil)
}
