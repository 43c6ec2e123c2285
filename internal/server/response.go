package server

import "encoding/json"

// Response is the framed reply to a Request.
type Response struct {
	Ok      bool   `json:"ok"`
	Error   string `json:"error,omitempty"`
	Message any    `json:"message,omitempty"`
}

// MakeResult encodes a successful response carrying res.
func MakeResult(res any) []byte {
	b, _ := json.Marshal(Response{
		Ok:      true,
		Message: res,
	})
	return b
}

// InitError encodes an error response from err.
func InitError(err error) []byte {
	if err == nil {
		return CreateError("Unknown")
	}
	return CreateError(err.Error())
}

// CreateError encodes an error response from a message string.
func CreateError(err string) []byte {
	b, _ := json.Marshal(Response{
		Ok:    false,
		Error: err,
	})
	return b
}
