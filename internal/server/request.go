package server

import (
	"encoding/json"

	"github.com/pomod/pomod/common"
)

// Request is one framed command from a client.
type Request struct {
	Method  common.Method   `json:"method"`
	Message json.RawMessage `json:"message,omitempty"`
}

// ParseRequest decodes a framed request body.
func ParseRequest(b []byte) (*Request, error) {
	var r Request
	return &r, json.Unmarshal(b, &r)
}
