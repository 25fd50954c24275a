package core

import (
	"bytes"
	"encoding/json"
	"strconv"
	"time"
)

// Note is the central entity of the domain.
// ID is empty until the remote API assigns one and never changes afterwards.
type Note struct {
	ID        string     `json:"id,omitempty"`
	Title     string     `json:"title"`
	Content   string     `json:"content"`
	CreatedAt *time.Time `json:"createdAt,omitempty"`
	UpdatedAt *time.Time `json:"updatedAt,omitempty"`
}

// UnmarshalJSON decodes a note from the server. Timestamps are best effort:
// RFC 3339 strings, "2006-01-02 15:04:05" strings and Unix epoch numbers
// (seconds or milliseconds) are understood, anything else leaves the field nil.
func (n *Note) UnmarshalJSON(data []byte) error {
	type plain Note
	var aux struct {
		plain
		CreatedAt json.RawMessage `json:"createdAt"`
		UpdatedAt json.RawMessage `json:"updatedAt"`
	}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	*n = Note(aux.plain)
	n.CreatedAt = parseTimestamp(aux.CreatedAt)
	n.UpdatedAt = parseTimestamp(aux.UpdatedAt)
	return nil
}

var timestampLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05Z07:00",
	"2006-01-02 15:04:05",
}

// epochMillisThreshold separates epoch seconds from epoch milliseconds.
const epochMillisThreshold = 1e11

func parseTimestamp(raw json.RawMessage) *time.Time {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return nil
	}

	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		for _, layout := range timestampLayouts {
			if t, err := time.Parse(layout, s); err == nil {
				return &t
			}
		}
		return nil
	}

	f, err := strconv.ParseFloat(string(raw), 64)
	if err != nil {
		return nil
	}
	var t time.Time
	if f >= epochMillisThreshold || f <= -epochMillisThreshold {
		t = time.UnixMilli(int64(f)).UTC()
	} else {
		t = time.Unix(int64(f), 0).UTC()
	}
	return &t
}

// NoteDraft is a note that has not been assigned an ID yet.
type NoteDraft struct {
	Title     string     `json:"title"`
	Content   string     `json:"content"`
	CreatedAt *time.Time `json:"createdAt,omitempty"`
	UpdatedAt *time.Time `json:"updatedAt,omitempty"`
}

// NotePatch is a partial note. Nil fields are left out of the request body.
type NotePatch struct {
	ID        *string    `json:"id,omitempty"`
	Title     *string    `json:"title,omitempty"`
	Content   *string    `json:"content,omitempty"`
	CreatedAt *time.Time `json:"createdAt,omitempty"`
	UpdatedAt *time.Time `json:"updatedAt,omitempty"`
}

// LoginCredentials is sent to the login endpoint. Never persisted.
type LoginCredentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// RegisterCredentials is sent to the registration endpoint. Never persisted.
type RegisterCredentials struct {
	Email    string `json:"email"`
	Name     string `json:"name"`
	Password string `json:"password"`
}

// Result is the outcome of a store action as reported to its caller.
// Failures carry a message suitable for showing to the user.
type Result struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
}

// OK returns a successful Result.
func OK() Result {
	return Result{Success: true}
}

// Fail returns a failed Result carrying msg.
func Fail(msg string) Result {
	return Result{Success: false, Message: msg}
}

// String is a shorthand for building NotePatch fields.
func String(s string) *string {
	return &s
}
