package httpapi

import (
	"context"
	"fmt"
	"net/http"

	"github.com/aretw0/notely/pkg/core"
)

// Login exchanges credentials for an access token.
func (c *Client) Login(ctx context.Context, creds core.LoginCredentials) (core.LoginResponse, error) {
	resp, err := c.doRequest(ctx, http.MethodPost, "auth/login", creds)
	if err != nil {
		return core.LoginResponse{}, fmt.Errorf("login request failed: %w", err)
	}

	var result core.LoginResponse
	if err := decodeResponse(resp, &result); err != nil {
		return core.LoginResponse{}, fmt.Errorf("login failed: %w", err)
	}
	return result, nil
}

// Register creates an account. It does not log the user in.
func (c *Client) Register(ctx context.Context, creds core.RegisterCredentials) error {
	resp, err := c.doRequest(ctx, http.MethodPost, "auth/register", creds)
	if err != nil {
		return fmt.Errorf("register request failed: %w", err)
	}

	if err := decodeResponse(resp, nil); err != nil {
		return fmt.Errorf("register failed: %w", err)
	}
	return nil
}
