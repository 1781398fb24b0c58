package api

import (
	"context"
	"net/http"
)

// ListUsers returns every account. Admin only; the backend enforces it.
func (c *Client) ListUsers(ctx context.Context, token string) ([]User, error) {
	var resp []User
	if err := c.do(ctx, http.MethodGet, "/auth/users", token, nil, &resp); err != nil {
		return nil, err
	}
	return resp, nil
}

// UpdateUser edits identity fields of the account with the given id and
// returns the updated record.
func (c *Client) UpdateUser(ctx context.Context, token, id string, req UpdateUserRequest) (*User, error) {
	var resp User
	if err := c.do(ctx, http.MethodPut, "/auth/users/"+id, token, req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// DeleteUser removes the account with the given id.
func (c *Client) DeleteUser(ctx context.Context, token, id string) error {
	return c.do(ctx, http.MethodDelete, "/auth/users/"+id, token, nil, nil)
}
