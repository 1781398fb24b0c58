// Package courses implements the course admin panel.
package courses

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi"

	"github.com/TheoNshimyimana/success-frontend/internal/api"
	"github.com/TheoNshimyimana/success-frontend/internal/http/handlers/helpers"
	"github.com/TheoNshimyimana/success-frontend/internal/http/middlewarectx"
	"github.com/TheoNshimyimana/success-frontend/internal/lib/search"
	"github.com/TheoNshimyimana/success-frontend/internal/lib/sl"
	"github.com/TheoNshimyimana/success-frontend/internal/session"
	"github.com/TheoNshimyimana/success-frontend/internal/web"
)

type Service interface {
	ListCourses(ctx context.Context) ([]api.Course, error)
	CreateCourse(ctx context.Context, token string, form api.CourseForm) (*api.Course, error)
	UpdateCourse(ctx context.Context, token, id string, form api.CourseForm) (*api.Course, error)
	DeleteCourse(ctx context.Context, token, id string) error
}

type Handler struct {
	log      *slog.Logger
	service  Service
	sessions *session.Store
	renderer *web.Renderer
}

func New(log *slog.Logger, service Service, sessions *session.Store, renderer *web.Renderer) *Handler {
	return &Handler{log: log, service: service, sessions: sessions, renderer: renderer}
}

// List handles GET /admin/courses.
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.admin.courses.List"
	log := helpers.RequestLogger(h.log, op, r)

	page := helpers.NewPage(r, "Manage Courses")

	all, err := h.service.ListCourses(r.Context())
	if err != nil {
		log.Error("course listing failed", sl.Err(err))
		page.Error = api.UserMessage(err, "Could not load courses")
		page.Data = web.CoursesAdminView{}
		h.renderer.HTML(w, http.StatusBadGateway, "admin_courses.html", page)
		return
	}

	q := r.URL.Query().Get("q")
	courses := make([]api.Course, 0, len(all))
	for _, c := range all {
		if search.Matches(q, c.Title, c.Level, c.Description) {
			courses = append(courses, c)
		}
	}

	var editing *api.Course
	if editID := r.URL.Query().Get("edit"); editID != "" {
		for i := range courses {
			if courses[i].ID == editID {
				editing = &courses[i]
				break
			}
		}
	}

	page.Data = web.CoursesAdminView{Courses: courses, Editing: editing}
	h.renderer.HTML(w, http.StatusOK, "admin_courses.html", page)
}

// Create handles POST /admin/courses.
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.admin.courses.Create"
	log := helpers.RequestLogger(h.log, op, r)

	sess, _ := middlewarectx.SessionFrom(r.Context())

	if _, err := h.service.CreateCourse(r.Context(), sess.Token, formFrom(r)); err != nil {
		if helpers.HandleAuthFault(w, r, h.sessions, err) {
			return
		}
		log.Error("course create failed", sl.Err(err))
	}

	http.Redirect(w, r, "/admin/courses", http.StatusSeeOther)
}

// Update handles POST /admin/courses/{id}.
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.admin.courses.Update"
	log := helpers.RequestLogger(h.log, op, r)

	sess, _ := middlewarectx.SessionFrom(r.Context())
	id := chi.URLParam(r, "id")

	if _, err := h.service.UpdateCourse(r.Context(), sess.Token, id, formFrom(r)); err != nil {
		if helpers.HandleAuthFault(w, r, h.sessions, err) {
			return
		}
		log.Error("course update failed", sl.Err(err), slog.String("course_id", id))
	}

	http.Redirect(w, r, "/admin/courses", http.StatusSeeOther)
}

// Delete handles POST /admin/courses/{id}/delete.
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.admin.courses.Delete"
	log := helpers.RequestLogger(h.log, op, r)

	sess, _ := middlewarectx.SessionFrom(r.Context())
	id := chi.URLParam(r, "id")

	if err := h.service.DeleteCourse(r.Context(), sess.Token, id); err != nil {
		if helpers.HandleAuthFault(w, r, h.sessions, err) {
			return
		}
		log.Error("course delete failed", sl.Err(err), slog.String("course_id", id))
	}

	http.Redirect(w, r, "/admin/courses", http.StatusSeeOther)
}

// formFrom builds the payload from the panel form. Topics arrive as a
// comma-separated line.
func formFrom(r *http.Request) api.CourseForm {
	students, _ := strconv.Atoi(r.FormValue("students"))
	return api.CourseForm{
		Title:       r.FormValue("title"),
		Level:       r.FormValue("level"),
		Description: r.FormValue("description"),
		Duration:    r.FormValue("duration"),
		Students:    students,
		Price:       r.FormValue("price"),
		Topics:      splitList(r.FormValue("topics")),
		Schedule:    r.FormValue("schedule"),
	}
}

func splitList(line string) []string {
	parts := strings.Split(line, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
