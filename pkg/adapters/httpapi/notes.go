package httpapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"github.com/aretw0/notely/pkg/core"
)

func notePath(id string) string {
	return "notes/" + url.PathEscape(id)
}

// ListNotes returns every note visible to the current session, in server order.
func (c *Client) ListNotes(ctx context.Context) ([]core.Note, error) {
	resp, err := c.doRequest(ctx, http.MethodGet, "notes", nil)
	if err != nil {
		return nil, fmt.Errorf("list notes request failed: %w", err)
	}

	body, err := readResponse(resp)
	if err != nil {
		return nil, err
	}

	var result []core.Note
	if err := json.Unmarshal(body, &result); err != nil {
		return nil, fmt.Errorf("%w: %v", core.ErrMalformedResponse, err)
	}
	// "null" is not a list.
	if result == nil {
		if !bytes.Equal(bytes.TrimSpace(body), []byte("[]")) {
			return nil, fmt.Errorf("%w: expected a JSON array", core.ErrMalformedResponse)
		}
		result = []core.Note{}
	}
	return result, nil
}

// CreateNote posts a new note and returns the raw created note.
func (c *Client) CreateNote(ctx context.Context, draft core.NoteDraft) (json.RawMessage, error) {
	resp, err := c.doRequest(ctx, http.MethodPost, "notes", draft)
	if err != nil {
		return nil, fmt.Errorf("create note request failed: %w", err)
	}
	return readResponse(resp)
}

// UpdateNote puts a partial note at id and returns the raw updated note.
func (c *Client) UpdateNote(ctx context.Context, id string, patch core.NotePatch) (json.RawMessage, error) {
	resp, err := c.doRequest(ctx, http.MethodPut, notePath(id), patch)
	if err != nil {
		return nil, fmt.Errorf("update note request failed: %w", err)
	}
	return readResponse(resp)
}

// DeleteNote removes the note with id.
func (c *Client) DeleteNote(ctx context.Context, id string) error {
	resp, err := c.doRequest(ctx, http.MethodDelete, notePath(id), nil)
	if err != nil {
		return fmt.Errorf("delete note request failed: %w", err)
	}
	return decodeResponse(resp, nil)
}
