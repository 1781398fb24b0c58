// Package training renders the course catalog. For signed-in users the
// page also fires any pending enrollment intent recorded before login
// and folds the user's enrollment records into per-course button states.
package training

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/TheoNshimyimana/success-frontend/internal/api"
	"github.com/TheoNshimyimana/success-frontend/internal/enroll"
	"github.com/TheoNshimyimana/success-frontend/internal/http/handlers/helpers"
	"github.com/TheoNshimyimana/success-frontend/internal/http/middlewarectx"
	"github.com/TheoNshimyimana/success-frontend/internal/lib/sl"
	"github.com/TheoNshimyimana/success-frontend/internal/metrics"
	"github.com/TheoNshimyimana/success-frontend/internal/session"
	"github.com/TheoNshimyimana/success-frontend/internal/web"
)

type Service interface {
	ListCourses(ctx context.Context) ([]api.Course, error)
	MyCourseEnrollments(ctx context.Context, token string) ([]api.CourseEnrollment, error)
	EnrollCourse(ctx context.Context, token, courseID string) error
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

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.catalog.training"
	log := helpers.RequestLogger(h.log, op, r)

	page := helpers.NewPage(r, "Training")

	courses, err := h.service.ListCourses(r.Context())
	if err != nil {
		log.Error("course catalog fetch failed", sl.Err(err))
		page.Error = api.UserMessage(err, "Could not load courses. Please try again later.")
		page.Data = web.TrainingView{}
		h.renderer.HTML(w, http.StatusBadGateway, "training.html", page)
		return
	}

	sess, hasSession := middlewarectx.SessionFrom(r.Context())
	sid := middlewarectx.SIDFrom(r.Context())

	var records []api.CourseEnrollment
	if hasSession {
		if _, err := h.sessions.TryReplay(r.Context(), sid, r.URL.Path, true, func(intent session.Intent) {
			if intent.Kind != session.IntentCourse {
				return
			}
			if err := h.service.EnrollCourse(r.Context(), sess.Token, intent.ItemID); err != nil {
				metrics.EnrollmentsSubmitted.WithLabelValues("course", "error").Inc()
				log.Error("deferred enrollment failed", sl.Err(err))
				page.Error = api.UserMessage(err, "Your enrollment could not be submitted. Please try again.")
				return
			}
			metrics.EnrollmentsSubmitted.WithLabelValues("course", "ok").Inc()
			page.Notice = "Thank you! Your enrollment has been submitted successfully, and our staff will be in touch with you shortly."
		}); err != nil {
			log.Error("intent replay failed", sl.Err(err))
		}

		records, err = h.service.MyCourseEnrollments(r.Context(), sess.Token)
		if err != nil {
			if helpers.HandleAuthFault(w, r, h.sessions, err) {
				return
			}
			// Degrade to all-enrollable rather than failing the page.
			log.Warn("enrollment records unavailable", sl.Err(err))
			records = nil
		}
	}

	states := enroll.ProjectCourses(courses, records)
	cards := make([]web.CourseCard, 0, len(courses))
	for _, course := range courses {
		cards = append(cards, web.CourseCard{Course: course, Status: states[course.ID]})
	}

	page.Data = web.TrainingView{Courses: cards}
	h.renderer.HTML(w, http.StatusOK, "training.html", page)
}
