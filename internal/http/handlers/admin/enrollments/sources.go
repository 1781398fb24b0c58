package enrollments

import (
	"context"

	"github.com/TheoNshimyimana/success-frontend/internal/api"
	"github.com/TheoNshimyimana/success-frontend/internal/web"
)

// CourseClient is the slice of the backend client the course panel uses.
type CourseClient interface {
	ListCourseEnrollments(ctx context.Context, token string) ([]api.CourseEnrollment, error)
	UpdateCourseEnrollmentStatus(ctx context.Context, token, id, status string) error
	DeleteCourseEnrollment(ctx context.Context, token, id string) error
}

// ProgramClient is the slice of the backend client the program panel uses.
type ProgramClient interface {
	ListProgramEnrollments(ctx context.Context, token string) ([]api.ProgramEnrollment, error)
	UpdateProgramEnrollmentStatus(ctx context.Context, token, id, status string) error
	DeleteProgramEnrollment(ctx context.Context, token, id string) error
}

// CourseSource adapts course enrollments to the shared panel.
type CourseSource struct {
	Client CourseClient
}

func (CourseSource) Heading() string  { return "Course Enrollments" }
func (CourseSource) ItemKind() string { return "Course" }
func (CourseSource) BasePath() string { return "/admin/course-enrollments" }

func (s CourseSource) List(ctx context.Context, token string) ([]web.EnrollmentRow, error) {
	records, err := s.Client.ListCourseEnrollments(ctx, token)
	if err != nil {
		return nil, err
	}
	rows := make([]web.EnrollmentRow, 0, len(records))
	for _, rec := range records {
		rows = append(rows, web.EnrollmentRow{
			ID:        rec.ID,
			UserName:  rec.User.Name,
			UserEmail: rec.User.Email,
			ItemTitle: rec.Course.Title,
			Status:    rec.Status,
			CreatedAt: rec.CreatedAt,
		})
	}
	return rows, nil
}

func (s CourseSource) UpdateStatus(ctx context.Context, token, id, status string) error {
	return s.Client.UpdateCourseEnrollmentStatus(ctx, token, id, status)
}

func (s CourseSource) Delete(ctx context.Context, token, id string) error {
	return s.Client.DeleteCourseEnrollment(ctx, token, id)
}

// ProgramSource adapts program enrollments to the shared panel.
type ProgramSource struct {
	Client ProgramClient
}

func (ProgramSource) Heading() string  { return "Program Enrollments" }
func (ProgramSource) ItemKind() string { return "Program" }
func (ProgramSource) BasePath() string { return "/admin/program-enrollments" }

func (s ProgramSource) List(ctx context.Context, token string) ([]web.EnrollmentRow, error) {
	records, err := s.Client.ListProgramEnrollments(ctx, token)
	if err != nil {
		return nil, err
	}
	rows := make([]web.EnrollmentRow, 0, len(records))
	for _, rec := range records {
		rows = append(rows, web.EnrollmentRow{
			ID:        rec.ID,
			UserName:  rec.User.Name,
			UserEmail: rec.User.Email,
			ItemTitle: rec.Program.Title,
			Status:    rec.Status,
			CreatedAt: rec.CreatedAt,
		})
	}
	return rows, nil
}

func (s ProgramSource) UpdateStatus(ctx context.Context, token, id, status string) error {
	return s.Client.UpdateProgramEnrollmentStatus(ctx, token, id, status)
}

func (s ProgramSource) Delete(ctx context.Context, token, id string) error {
	return s.Client.DeleteProgramEnrollment(ctx, token, id)
}
