package httpapi

import (
	"github.com/aretw0/introspection"
)

// ClientState exposes internal state for observability.
type ClientState struct {
	BaseURL string `json:"base_url"`
	Timeout string `json:"timeout"`
	Hooks   int    `json:"hooks"`
}

// State implements introspection.Introspectable.
func (c *Client) State() any {
	return ClientState{
		BaseURL: c.baseURL.String(),
		Timeout: c.httpClient.Timeout.String(),
		Hooks:   len(c.hooks),
	}
}

// ComponentType implements introspection.Component.
func (c *Client) ComponentType() string {
	return "api-client"
}

var _ introspection.Introspectable = (*Client)(nil)
var _ introspection.Component = (*Client)(nil)
