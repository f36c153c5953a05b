package api

import (
	"context"

	"sportshop-client/internal/session"
)

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Login implements session.API.
func (c *Client) Login(ctx context.Context, email, password string) (*session.AuthResult, error) {
	var res session.AuthResult
	if err := c.post(ctx, "/login", loginRequest{Email: email, Password: password}, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

// Register implements session.API.
func (c *Client) Register(ctx context.Context, input session.RegisterInput) (*session.AuthResult, error) {
	var res session.AuthResult
	if err := c.post(ctx, "/register", input, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

// Logout implements session.API.
func (c *Client) Logout(ctx context.Context) error {
	return c.post(ctx, "/logout", nil, nil)
}

// CurrentUser implements session.API.
func (c *Client) CurrentUser(ctx context.Context) (*session.User, error) {
	var user session.User
	if err := c.get(ctx, "/user", nil, &user); err != nil {
		return nil, err
	}
	return &user, nil
}
