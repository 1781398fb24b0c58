package api

import "time"

// User roles as reported by the backend. The client only reflects them;
// authorization is enforced server-side.
const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)

// Enrollment statuses as stored by the backend.
const (
	StatusPending  = "pending"
	StatusApproved = "approved"
	StatusRejected = "rejected"
)

// User is an account as returned by the auth endpoints.
type User struct {
	ID             string    `json:"_id"`
	Name           string    `json:"name"`
	Email          string    `json:"email"`
	Phone          string    `json:"phone,omitempty"`
	Role           string    `json:"role"`
	ProfilePicture string    `json:"profilePicture,omitempty"`
	CreatedAt      time.Time `json:"createdAt,omitempty"`
}

// Course is a catalog item offered on the training page.
type Course struct {
	ID          string   `json:"_id"`
	Title       string   `json:"title"`
	Level       string   `json:"level"`
	Description string   `json:"description"`
	Duration    string   `json:"duration"`
	Students    int      `json:"students"`
	Price       string   `json:"price"`
	Topics      []string `json:"topics"`
	Schedule    string   `json:"schedule"`
}

// Program is a catalog item offered on the programs page.
type Program struct {
	ID          string   `json:"_id"`
	Title       string   `json:"title"`
	Subtitle    string   `json:"subtitle"`
	Description string   `json:"description"`
	Features    []string `json:"features"`
	Icon        string   `json:"icon"`
	ThemeColor  string   `json:"themeColor"`
	Image       string   `json:"image,omitempty"`
}

// EnrolledUser is the owner reference embedded in enrollment records.
type EnrolledUser struct {
	ID    string `json:"_id,omitempty"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// CourseRef is the catalog-item reference embedded in a course
// enrollment record.
type CourseRef struct {
	ID    string `json:"_id"`
	Title string `json:"title,omitempty"`
}

// ProgramRef is the catalog-item reference embedded in a program
// enrollment record.
type ProgramRef struct {
	ID    string `json:"_id"`
	Title string `json:"title,omitempty"`
}

// CourseEnrollment links a user to a course with an approval status.
// The backend guarantees at most one record per (user, course) pair.
type CourseEnrollment struct {
	ID        string       `json:"_id"`
	Status    string       `json:"status"`
	CreatedAt time.Time    `json:"createdAt"`
	User      EnrolledUser `json:"user"`
	Course    CourseRef    `json:"course"`
}

// ProgramEnrollment links a user to a program with an approval status.
type ProgramEnrollment struct {
	ID        string       `json:"_id"`
	Status    string       `json:"status"`
	CreatedAt time.Time    `json:"createdAt"`
	User      EnrolledUser `json:"user"`
	Program   ProgramRef   `json:"program"`
}

// AuthResponse is the body of a successful login or register call.
type AuthResponse struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}

// Message is the generic acknowledgment body used by the password
// endpoints.
type Message struct {
	Message string `json:"message"`
}

// RegisterRequest is the signup payload.
type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phone,omitempty"`
	Password string `json:"password"`
}

// UpdateUserRequest is the payload for the admin user edit and the
// profile page. Zero-value fields are omitted so the backend keeps
// their current values.
type UpdateUserRequest struct {
	Name  string `json:"name,omitempty"`
	Email string `json:"email,omitempty"`
	Phone string `json:"phone,omitempty"`
	Role  string `json:"role,omitempty"`
}

// CourseForm is the create/update payload for courses.
type CourseForm struct {
	Title       string   `json:"title"`
	Level       string   `json:"level"`
	Description string   `json:"description"`
	Duration    string   `json:"duration"`
	Students    int      `json:"students"`
	Price       string   `json:"price"`
	Topics      []string `json:"topics"`
	Schedule    string   `json:"schedule"`
}

// ProgramForm is the create/update payload for programs.
type ProgramForm struct {
	Title       string   `json:"title"`
	Subtitle    string   `json:"subtitle"`
	Description string   `json:"description"`
	Features    []string `json:"features"`
	Icon        string   `json:"icon"`
	ThemeColor  string   `json:"themeColor"`
	Image       string   `json:"image,omitempty"`
}
