package pomocli

import (
	"encoding/json"

	"github.com/pomod/pomod/common"
)

// Request is one framed command sent to the daemon.
type Request struct {
	Method  common.Method `json:"method"`
	Message any           `json:"message,omitempty"`
}

// Response is the framed reply from the daemon.
type Response struct {
	Ok      bool            `json:"ok"`
	Error   string          `json:"error,omitempty"`
	Message json.RawMessage `json:"message,omitempty"`
}

// OkResponse is the payload of commands with no data to return.
type OkResponse struct {
	Ok bool `json:"ok"`
}
