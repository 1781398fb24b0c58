// Package enroll derives the per-item UI state of catalog pages from
// the current user's enrollment records. The projection is a pure
// function of its inputs and is recomputed on every render.
package enroll

import "github.com/TheoNshimyimana/success-frontend/internal/api"

// Status is the UI state of one catalog item for the current user.
type Status string

const (
	// Enrollable: no record exists, the enroll action is available.
	Enrollable Status = "enrollable"
	Pending    Status = "pending"
	Approved   Status = "approved"
	Rejected   Status = "rejected"
)

// Label is the button text shown for the status.
func (s Status) Label() string {
	switch s {
	case Pending:
		return "Pending Approval"
	case Approved:
		return "Approved"
	case Rejected:
		return "Rejected"
	default:
		return "Enroll Now"
	}
}

// Disabled reports whether the enroll action is blocked for the status.
// Cancellation and resubmission are not supported, so every non-
// enrollable state disables the button.
func (s Status) Disabled() bool {
	return s != Enrollable
}

func statusOf(recorded string) Status {
	switch recorded {
	case api.StatusPending:
		return Pending
	case api.StatusApproved:
		return Approved
	case api.StatusRejected:
		return Rejected
	default:
		// Unknown statuses read as pending: the record exists, so the
		// item is not enrollable, and pending is the least surprising
		// thing to show.
		return Pending
	}
}

// ProjectCourses maps each course id to its status for the user owning
// records. Courses without a record are Enrollable. The backend keeps
// at most one record per (user, course) pair.
func ProjectCourses(courses []api.Course, records []api.CourseEnrollment) map[string]Status {
	byCourse := make(map[string]string, len(records))
	for _, rec := range records {
		byCourse[rec.Course.ID] = rec.Status
	}

	states := make(map[string]Status, len(courses))
	for _, course := range courses {
		if recorded, ok := byCourse[course.ID]; ok {
			states[course.ID] = statusOf(recorded)
		} else {
			states[course.ID] = Enrollable
		}
	}
	return states
}

// ProjectPrograms maps each program id to its status for the user
// owning records.
func ProjectPrograms(programs []api.Program, records []api.ProgramEnrollment) map[string]Status {
	byProgram := make(map[string]string, len(records))
	for _, rec := range records {
		byProgram[rec.Program.ID] = rec.Status
	}

	states := make(map[string]Status, len(programs))
	for _, program := range programs {
		if recorded, ok := byProgram[program.ID]; ok {
			states[program.ID] = statusOf(recorded)
		} else {
			states[program.ID] = Enrollable
		}
	}
	return states
}
