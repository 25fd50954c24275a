package core_test

import (
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/aretw0/notely/pkg/core"
)

func TestIsNote(t *testing.T) {
	tests := []struct {
		name  string
		value any
		want  bool
	}{
		{"nil", nil, false},
		{"string", "note", false},
		{"number", 42, false},
		{"slice", []any{"1", "T", "C"}, false},
		{"complete map", map[string]any{"id": "1", "title": "T", "content": "C"}, true},
		{"extra fields", map[string]any{"id": "1", "title": "T", "content": "C", "createdAt": 12}, true},
		{"missing id", map[string]any{"title": "T", "content": "C"}, false},
		{"missing content", map[string]any{"id": "1", "title": "T"}, false},
		{"numeric id", map[string]any{"id": 1.0, "title": "T", "content": "C"}, false},
		{"null title", map[string]any{"id": "1", "title": nil, "content": "C"}, false},
		{"raw object", json.RawMessage(`{"id":"1","title":"T","content":"C"}`), true},
		{"raw bytes", []byte(`{"id":"1","title":"","content":""}`), true},
		{"raw null", json.RawMessage(`null`), false},
		{"raw array", json.RawMessage(`[{"id":"1","title":"T","content":"C"}]`), false},
		{"raw garbage", json.RawMessage(`<html>`), false},
		{"typed note", core.Note{ID: "1", Title: "T"}, true},
		{"typed note with empty id", core.Note{Title: "T"}, true},
		{"raw empty id", json.RawMessage(`{"id":"","title":"","content":""}`), true},
		{"nil note pointer", (*core.Note)(nil), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := core.IsNote(tt.value); got != tt.want {
				t.Errorf("IsNote(%#v) = %v, want %v", tt.value, got, tt.want)
			}
		})
	}
}

func TestDecodeNote(t *testing.T) {
	t.Run("Valid", func(t *testing.T) {
		n, err := core.DecodeNote([]byte(`{"id":"1","title":"T","content":"C","createdAt":"2024-01-02T03:04:05Z"}`))
		if err != nil {
			t.Fatalf("DecodeNote failed: %v", err)
		}
		if n.ID != "1" || n.Title != "T" || n.Content != "C" {
			t.Errorf("unexpected note: %+v", n)
		}
		if n.CreatedAt == nil || n.CreatedAt.Year() != 2024 {
			t.Errorf("expected createdAt to be decoded, got %v", n.CreatedAt)
		}
	})

	t.Run("Missing Content", func(t *testing.T) {
		_, err := core.DecodeNote([]byte(`{"id":"1","title":"T"}`))
		if !errors.Is(err, core.ErrMalformedResponse) {
			t.Errorf("expected ErrMalformedResponse, got %v", err)
		}
	})

	t.Run("Unreadable Timestamps", func(t *testing.T) {
		tests := []struct {
			name string
			raw  string
		}{
			{"word", `{"id":"1","title":"T","content":"C","updatedAt":"yesterday"}`},
			{"object", `{"id":"1","title":"T","content":"C","createdAt":{"at":1}}`},
			{"bool", `{"id":"1","title":"T","content":"C","createdAt":true}`},
		}
		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				n, err := core.DecodeNote([]byte(tt.raw))
				if err != nil {
					t.Fatalf("DecodeNote failed: %v", err)
				}
				if n.ID != "1" || n.CreatedAt != nil || n.UpdatedAt != nil {
					t.Errorf("expected note with nil timestamps, got %+v", n)
				}
			})
		}
	})

	t.Run("Lenient Timestamps", func(t *testing.T) {
		want := time.Date(2023, 11, 14, 22, 13, 20, 0, time.UTC)
		tests := []struct {
			name string
			raw  string
		}{
			{"epoch seconds", `{"id":"1","title":"T","content":"C","createdAt":1700000000}`},
			{"epoch millis", `{"id":"1","title":"T","content":"C","createdAt":1700000000000}`},
			{"space separated", `{"id":"1","title":"T","content":"C","createdAt":"2023-11-14 22:13:20"}`},
		}
		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				n, err := core.DecodeNote([]byte(tt.raw))
				if err != nil {
					t.Fatalf("DecodeNote failed: %v", err)
				}
				if n.CreatedAt == nil || !n.CreatedAt.Equal(want) {
					t.Errorf("createdAt = %v, want %v", n.CreatedAt, want)
				}
			})
		}
	})

	t.Run("List With Numeric Timestamps", func(t *testing.T) {
		var list []core.Note
		raw := `[{"id":"1","title":"a","content":"","createdAt":1700000000},{"id":"2","title":"b","content":"","updatedAt":"2024-01-02 03:04:05"}]`
		if err := json.Unmarshal([]byte(raw), &list); err != nil {
			t.Fatalf("Unmarshal failed: %v", err)
		}
		if len(list) != 2 || list[0].CreatedAt == nil || list[1].UpdatedAt == nil {
			t.Errorf("unexpected list: %+v", list)
		}
	})
}

func TestResult(t *testing.T) {
	if r := core.OK(); !r.Success || r.Message != "" {
		t.Errorf("unexpected OK result: %+v", r)
	}
	if r := core.Fail(core.MsgDeleteFailed); r.Success || r.Message != "Failed to delete note" {
		t.Errorf("unexpected Fail result: %+v", r)
	}
}
