package web

import (
	"time"

	"github.com/TheoNshimyimana/success-frontend/internal/api"
	"github.com/TheoNshimyimana/success-frontend/internal/enroll"
)

// CourseCard pairs a course with its projected enrollment status.
type CourseCard struct {
	Course api.Course
	Status enroll.Status
}

// ProgramCard pairs a program with its projected enrollment status.
type ProgramCard struct {
	Program api.Program
	Status  enroll.Status
}

// TrainingView feeds the training page.
type TrainingView struct {
	Courses []CourseCard
}

// ProgramsView feeds the programs page.
type ProgramsView struct {
	Programs []ProgramCard
}

// ProgramEnrollView feeds the enrollment confirmation page.
type ProgramEnrollView struct {
	Program api.Program
}

// HomeView feeds the landing page with the featured course strip.
type HomeView struct {
	Featured []CourseCard
}

// LoginView feeds the login form. From is the page to return to after
// a successful login.
type LoginView struct {
	Email string
	From  string
}

// SignupView feeds the signup form, echoing entered values back on a
// validation failure.
type SignupView struct {
	Name  string
	Email string
	Phone string
}

// ResetPasswordView carries the single-use token from the reset link.
type ResetPasswordView struct {
	Token string
}

// ProfileView feeds the profile page.
type ProfileView struct {
	User api.User
}

// ContactView feeds the contact page. The form posts straight to the
// third-party form service with this access key.
type ContactView struct {
	AccessKey string
}

// UsersAdminView feeds the user admin panel.
type UsersAdminView struct {
	Users   []api.User
	Editing *api.User
}

// CoursesAdminView feeds the course admin panel.
type CoursesAdminView struct {
	Courses []api.Course
	Editing *api.Course
}

// ProgramsAdminView feeds the program admin panel.
type ProgramsAdminView struct {
	Programs []api.Program
	Editing  *api.Program
}

// EnrollmentRow is one line of an approval panel, flattened for
// display.
type EnrollmentRow struct {
	ID        string
	UserName  string
	UserEmail string
	ItemTitle string
	Status    string
	CreatedAt time.Time
}

// EnrollmentsAdminView feeds both approval panels; BasePath points the
// form posts at the right resource.
type EnrollmentsAdminView struct {
	Heading  string
	ItemKind string
	BasePath string
	Rows     []EnrollmentRow
}
