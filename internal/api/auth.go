package api

import (
	"context"
	"net/http"
)

// Login authenticates with email and password and returns the issued
// token together with the account identity.
func (c *Client) Login(ctx context.Context, email, password string) (*AuthResponse, error) {
	var resp AuthResponse
	body := map[string]string{"email": email, "password": password}
	if err := c.do(ctx, http.MethodPost, "/auth/login", "", body, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Register creates an account and logs it in within the same call.
func (c *Client) Register(ctx context.Context, req RegisterRequest) (*AuthResponse, error) {
	var resp AuthResponse
	if err := c.do(ctx, http.MethodPost, "/auth/register", "", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// ForgotPassword asks the backend to mail a reset link.
func (c *Client) ForgotPassword(ctx context.Context, email string) (*Message, error) {
	var resp Message
	body := map[string]string{"email": email}
	if err := c.do(ctx, http.MethodPost, "/auth/forgot-password", "", body, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// ResetPassword sets a new password using the single-use token from the
// reset link.
func (c *Client) ResetPassword(ctx context.Context, resetToken, password string) (*Message, error) {
	var resp Message
	body := map[string]string{"password": password}
	if err := c.do(ctx, http.MethodPut, "/auth/reset-password/"+resetToken, "", body, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// ChangePassword changes the password of the authenticated account. The
// bearer token stays valid afterwards.
func (c *Client) ChangePassword(ctx context.Context, token, current, next, confirm string) (*Message, error) {
	var resp Message
	body := map[string]string{
		"currentPassword":    current,
		"newPassword":        next,
		"confirmNewPassword": confirm,
	}
	if err := c.do(ctx, http.MethodPut, "/auth/change-password", token, body, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Me returns the identity behind the bearer token.
func (c *Client) Me(ctx context.Context, token string) (*User, error) {
	var resp User
	if err := c.do(ctx, http.MethodGet, "/auth/me", token, nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}
