package api

import (
	"context"
	"net/http"
)

// EnrollCourse submits a pending course enrollment for the user behind
// the token.
func (c *Client) EnrollCourse(ctx context.Context, token, courseID string) error {
	body := map[string]string{"courseId": courseID}
	return c.do(ctx, http.MethodPost, "/course-enrollments", token, body, nil)
}

// MyCourseEnrollments lists the course enrollments of the user behind
// the token.
func (c *Client) MyCourseEnrollments(ctx context.Context, token string) ([]CourseEnrollment, error) {
	var resp []CourseEnrollment
	if err := c.do(ctx, http.MethodGet, "/course-enrollments/my", token, nil, &resp); err != nil {
		return nil, err
	}
	return resp, nil
}

// ListCourseEnrollments lists every course enrollment. Admin only.
func (c *Client) ListCourseEnrollments(ctx context.Context, token string) ([]CourseEnrollment, error) {
	var resp []CourseEnrollment
	if err := c.do(ctx, http.MethodGet, "/course-enrollments", token, nil, &resp); err != nil {
		return nil, err
	}
	return resp, nil
}

// UpdateCourseEnrollmentStatus issues the targeted status PUT for an
// approval decision. Admin only.
func (c *Client) UpdateCourseEnrollmentStatus(ctx context.Context, token, id, status string) error {
	body := map[string]string{"status": status}
	return c.do(ctx, http.MethodPut, "/course-enrollments/"+id, token, body, nil)
}

// DeleteCourseEnrollment removes a course enrollment record. Admin only.
func (c *Client) DeleteCourseEnrollment(ctx context.Context, token, id string) error {
	return c.do(ctx, http.MethodDelete, "/course-enrollments/"+id, token, nil, nil)
}

// EnrollProgram submits a pending program enrollment for the user
// behind the token.
func (c *Client) EnrollProgram(ctx context.Context, token, programID string) error {
	body := map[string]string{"programId": programID}
	return c.do(ctx, http.MethodPost, "/enrollments", token, body, nil)
}

// MyProgramEnrollments lists the program enrollments of the user behind
// the token.
func (c *Client) MyProgramEnrollments(ctx context.Context, token string) ([]ProgramEnrollment, error) {
	var resp []ProgramEnrollment
	if err := c.do(ctx, http.MethodGet, "/enrollments/my", token, nil, &resp); err != nil {
		return nil, err
	}
	return resp, nil
}

// ListProgramEnrollments lists every program enrollment. Admin only.
func (c *Client) ListProgramEnrollments(ctx context.Context, token string) ([]ProgramEnrollment, error) {
	var resp []ProgramEnrollment
	if err := c.do(ctx, http.MethodGet, "/enrollments", token, nil, &resp); err != nil {
		return nil, err
	}
	return resp, nil
}

// UpdateProgramEnrollmentStatus issues the targeted status PUT for an
// approval decision. Admin only.
func (c *Client) UpdateProgramEnrollmentStatus(ctx context.Context, token, id, status string) error {
	body := map[string]string{"status": status}
	return c.do(ctx, http.MethodPut, "/enrollments/"+id, token, body, nil)
}

// DeleteProgramEnrollment removes a program enrollment record. Admin only.
func (c *Client) DeleteProgramEnrollment(ctx context.Context, token, id string) error {
	return c.do(ctx, http.MethodDelete, "/enrollments/"+id, token, nil, nil)
}
