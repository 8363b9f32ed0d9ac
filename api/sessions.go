package api

import (
	"context"
	"net/http"

	"trimbook/models"
)

// SessionPayload is the sign-in response: the authenticated user plus the
// bearer token for subsequent requests.
type SessionPayload struct {
	User  models.User `json:"user"`
	Token string      `json:"token"`
}

// SignIn authenticates with email and password. On success the returned token
// is installed on the client.
func (c *Client) SignIn(ctx context.Context, email, password string) (*SessionPayload, error) {
	input := struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}{Email: email, Password: password}

	var payload SessionPayload
	if err := c.send(ctx, http.MethodPost, "sessions", input, &payload); err != nil {
		return nil, err
	}
	c.SetToken(payload.Token)
	return &payload, nil
}
