package core

import "errors"

// Common errors.
var (
	ErrNotAuthenticated  = errors.New("session is not authenticated")
	ErrMalformedResponse = errors.New("malformed server response")
	ErrEmptyToken        = errors.New("server returned an empty access token")
)

// Messages reported to users in failed Results.
const (
	MsgInvalidCredentials = "Invalid credentials"
	MsgRegistrationFailed = "Registration failed"
	MsgFetchFailed        = "Failed to fetch notes"
	MsgCreateFailed       = "Failed to create note"
	MsgUpdateFailed       = "Failed to update note"
	MsgDeleteFailed       = "Failed to delete note"
	MsgBadServerAnswer    = "Bad server answer"
)

// ServerMessage extracts the user-facing message a remote error carried,
// if err is or wraps one. Adapters opt in by implementing
// ServerMessage() string on their error type.
func ServerMessage(err error) (string, bool) {
	var carrier interface{ ServerMessage() string }
	if errors.As(err, &carrier) {
		if msg := carrier.ServerMessage(); msg != "" {
			return msg, true
		}
	}
	return "", false
}
