package core

import (
	"encoding/json"
	"fmt"
)

// IsNote reports whether v has the shape of a Note: an object with string
// id, title and content fields. createdAt and updatedAt are not checked.
//
// v may be a decoded JSON value (map[string]any), raw JSON bytes
// (json.RawMessage or []byte), a Note or a *Note.
func IsNote(v any) bool {
	switch t := v.(type) {
	case nil:
		return false
	case json.RawMessage:
		return isNoteJSON(t)
	case []byte:
		return isNoteJSON(t)
	case map[string]any:
		return isStringField(t, "id") && isStringField(t, "title") && isStringField(t, "content")
	case Note:
		// A typed Note always has string id, title and content fields.
		return true
	case *Note:
		return t != nil
	default:
		return false
	}
}

func isNoteJSON(raw []byte) bool {
	var obj map[string]any
	if err := json.Unmarshal(raw, &obj); err != nil {
		return false
	}
	// "null" decodes into a nil map without error.
	if obj == nil {
		return false
	}
	return IsNote(obj)
}

func isStringField(obj map[string]any, key string) bool {
	v, ok := obj[key]
	if !ok {
		return false
	}
	_, ok = v.(string)
	return ok
}

// DecodeNote validates raw against the Note shape and decodes it.
// It returns ErrMalformedResponse if the shape check fails. Timestamps are
// not part of the shape; unreadable ones decode to nil.
func DecodeNote(raw []byte) (Note, error) {
	if !IsNote(json.RawMessage(raw)) {
		return Note{}, ErrMalformedResponse
	}
	var n Note
	if err := json.Unmarshal(raw, &n); err != nil {
		return Note{}, fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}
	return n, nil
}
