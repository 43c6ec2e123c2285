package server

import "encoding/json"

// HandlerFunc is the signature for socket command handlers. It receives
// the raw JSON message body and returns the response payload.
type HandlerFunc func(body json.RawMessage) (any, error)
