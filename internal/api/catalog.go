package api

import (
	"context"
	"net/http"
)

// ListCourses returns the full course catalog. No credential is needed.
func (c *Client) ListCourses(ctx context.Context) ([]Course, error) {
	var resp []Course
	if err := c.do(ctx, http.MethodGet, "/courses", "", nil, &resp); err != nil {
		return nil, err
	}
	return resp, nil
}

// CreateCourse adds a course to the catalog. Admin only.
func (c *Client) CreateCourse(ctx context.Context, token string, form CourseForm) (*Course, error) {
	var resp Course
	if err := c.do(ctx, http.MethodPost, "/courses", token, form, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// UpdateCourse edits the course with the given id. Admin only.
func (c *Client) UpdateCourse(ctx context.Context, token, id string, form CourseForm) (*Course, error) {
	var resp Course
	if err := c.do(ctx, http.MethodPut, "/courses/"+id, token, form, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// DeleteCourse removes the course with the given id. Admin only.
func (c *Client) DeleteCourse(ctx context.Context, token, id string) error {
	return c.do(ctx, http.MethodDelete, "/courses/"+id, token, nil, nil)
}

// ListPrograms returns the full program catalog. No credential is needed.
func (c *Client) ListPrograms(ctx context.Context) ([]Program, error) {
	var resp []Program
	if err := c.do(ctx, http.MethodGet, "/programs", "", nil, &resp); err != nil {
		return nil, err
	}
	return resp, nil
}

// GetProgram returns a single program for the enrollment detail page.
func (c *Client) GetProgram(ctx context.Context, id string) (*Program, error) {
	var resp Program
	if err := c.do(ctx, http.MethodGet, "/programs/"+id, "", nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// CreateProgram adds a program to the catalog. Admin only.
func (c *Client) CreateProgram(ctx context.Context, token string, form ProgramForm) (*Program, error) {
	var resp Program
	if err := c.do(ctx, http.MethodPost, "/programs", token, form, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// UpdateProgram edits the program with the given id. Admin only.
func (c *Client) UpdateProgram(ctx context.Context, token, id string, form ProgramForm) (*Program, error) {
	var resp Program
	if err := c.do(ctx, http.MethodPut, "/programs/"+id, token, form, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// DeleteProgram removes the program with the given id. Admin only.
func (c *Client) DeleteProgram(ctx context.Context, token, id string) error {
	return c.do(ctx, http.MethodDelete, "/programs/"+id, token, nil, nil)
}
