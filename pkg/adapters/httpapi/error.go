package httpapi

import (
	"encoding/json"
	"fmt"
)

// Error is a non-2xx answer from the remote API.
type Error struct {
	Status  int
	Message string // server-provided "message" field, if any
	Body    string
}

func newError(status int, body []byte) *Error {
	e := &Error{Status: status, Body: string(body)}

	// NestJS-style bodies carry either a string or a list of strings.
	var payload struct {
		Message json.RawMessage `json:"message"`
	}
	if json.Unmarshal(body, &payload) == nil && len(payload.Message) > 0 {
		var s string
		var list []string
		switch {
		case json.Unmarshal(payload.Message, &s) == nil:
			e.Message = s
		case json.Unmarshal(payload.Message, &list) == nil && len(list) > 0:
			e.Message = list[0]
		}
	}
	return e
}

func (e *Error) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("API error: status=%d, message=%s", e.Status, e.Message)
	}
	return fmt.Sprintf("API error: status=%d, body=%s", e.Status, e.Body)
}

// ServerMessage returns the message the server put in the error body.
// It makes *Error usable with core.ServerMessage.
func (e *Error) ServerMessage() string {
	return e.Message
}
