package api

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"

	"trimbook/models"
)

// UpdateProfile submits profile changes and returns the updated account record.
func (c *Client) UpdateProfile(ctx context.Context, upd models.ProfileUpdate) (*models.User, error) {
	var user models.User
	if err := c.send(ctx, http.MethodPut, "profile", upd, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// UpdateAvatar uploads a replacement avatar image as multipart form data and
// returns the updated account record.
func (c *Client) UpdateAvatar(ctx context.Context, filename string, image io.Reader) (*models.User, error) {
	if filename == "" {
		return nil, fmt.Errorf("api: avatar filename is required")
	}

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	part, err := writer.CreateFormFile("avatar", filename)
	if err != nil {
		return nil, fmt.Errorf("api: build avatar form: %w", err)
	}
	if _, err := io.Copy(part, image); err != nil {
		return nil, fmt.Errorf("api: read avatar image: %w", err)
	}
	if err := writer.Close(); err != nil {
		return nil, fmt.Errorf("api: finalize avatar form: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPatch, c.baseURL+"/users/avatar", &body)
	if err != nil {
		return nil, fmt.Errorf("api: build request: %w", err)
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())

	var user models.User
	if err := c.do(req, &user); err != nil {
		return nil, err
	}
	return &user, nil
}
