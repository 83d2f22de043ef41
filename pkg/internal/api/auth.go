package api

import (
	"context"

	"github.com/chyrp-pro/chyrp-client/pkg/internal/models"
)

type authResponse struct {
	Username string `json:"username"`
	IDToken  string `json:"idToken"`
	LocalID  string `json:"localId"`
}

func (c *Client) Signup(ctx context.Context, username, email, password string) (models.Session, error) {
	payload := map[string]any{
		"username": username,
		"email":    email,
		"password": password,
	}

	// RequestError is handed back as-is so the form can show the backend's
	// detail message.
	var data authResponse
	if err := c.postJSON(ctx, "/signup", payload, &data, "Signup failed"); err != nil {
		return models.Session{}, err
	}

	return models.Session{
		Username: username,
		Email:    email,
		IDToken:  data.IDToken,
		UserID:   data.LocalID,
	}, nil
}

func (c *Client) Login(ctx context.Context, email, password string) (models.Session, error) {
	payload := map[string]any{
		"email":    email,
		"password": password,
	}

	var data authResponse
	if err := c.postJSON(ctx, "/login", payload, &data, "Invalid credentials"); err != nil {
		return models.Session{}, err
	}

	return models.Session{
		Username: data.Username,
		Email:    email,
		IDToken:  data.IDToken,
		UserID:   data.LocalID,
	}, nil
}
