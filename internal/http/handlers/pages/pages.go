// Package pages serves the marketing pages. The home page carries a
// live featured-course strip, so it shares the catalog behavior of the
// training page: deferred-intent replay for signed-in users and status
// projection onto the cards. The rest render straight from templates.
package pages

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/TheoNshimyimana/success-frontend/internal/api"
	"github.com/TheoNshimyimana/success-frontend/internal/config"
	"github.com/TheoNshimyimana/success-frontend/internal/enroll"
	"github.com/TheoNshimyimana/success-frontend/internal/http/handlers/helpers"
	"github.com/TheoNshimyimana/success-frontend/internal/http/middlewarectx"
	"github.com/TheoNshimyimana/success-frontend/internal/lib/sl"
	"github.com/TheoNshimyimana/success-frontend/internal/metrics"
	"github.com/TheoNshimyimana/success-frontend/internal/session"
	"github.com/TheoNshimyimana/success-frontend/internal/web"
)

// featuredCount is how many courses the landing page shows.
const featuredCount = 3

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
	contact  config.ContactForm
}

func New(log *slog.Logger, service Service, sessions *session.Store, renderer *web.Renderer, contact config.ContactForm) *Handler {
	return &Handler{log: log, service: service, sessions: sessions, renderer: renderer, contact: contact}
}

func (h *Handler) Home(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.pages.Home"
	log := helpers.RequestLogger(h.log, op, r)

	page := helpers.NewPage(r, "Success Tech Lab")

	courses, err := h.service.ListCourses(r.Context())
	if err != nil {
		// The landing page still renders without the strip.
		log.Warn("featured courses unavailable", sl.Err(err))
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
			log.Warn("enrollment records unavailable", sl.Err(err))
			records = nil
		}
	}

	if len(courses) > featuredCount {
		courses = courses[:featuredCount]
	}

	states := enroll.ProjectCourses(courses, records)
	featured := make([]web.CourseCard, 0, len(courses))
	for _, course := range courses {
		featured = append(featured, web.CourseCard{Course: course, Status: states[course.ID]})
	}

	page.Data = web.HomeView{Featured: featured}
	h.renderer.HTML(w, http.StatusOK, "home.html", page)
}

func (h *Handler) About(w http.ResponseWriter, r *http.Request) {
	h.renderer.HTML(w, http.StatusOK, "about.html", helpers.NewPage(r, "About Us"))
}

func (h *Handler) Services(w http.ResponseWriter, r *http.Request) {
	h.renderer.HTML(w, http.StatusOK, "services.html", helpers.NewPage(r, "Our Services"))
}

func (h *Handler) Contact(w http.ResponseWriter, r *http.Request) {
	page := helpers.NewPage(r, "Contact Us")
	page.Data = web.ContactView{AccessKey: h.contact.AccessKey}
	h.renderer.HTML(w, http.StatusOK, "contact.html", page)
}

func (h *Handler) NotFound(w http.ResponseWriter, r *http.Request) {
	page := helpers.NewPage(r, "Not Found")
	page.Error = "Page not found"
	h.renderer.NotFound(w, page)
}
