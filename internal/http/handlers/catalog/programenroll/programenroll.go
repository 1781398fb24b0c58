// Package programenroll implements the per-program enrollment
// confirmation page. The route sits behind the auth middleware, so a
// session is always present here.
package programenroll

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi"

	"github.com/TheoNshimyimana/success-frontend/internal/api"
	"github.com/TheoNshimyimana/success-frontend/internal/http/handlers/helpers"
	"github.com/TheoNshimyimana/success-frontend/internal/http/middlewarectx"
	"github.com/TheoNshimyimana/success-frontend/internal/lib/sl"
	"github.com/TheoNshimyimana/success-frontend/internal/metrics"
	"github.com/TheoNshimyimana/success-frontend/internal/session"
	"github.com/TheoNshimyimana/success-frontend/internal/web"
)

type Service interface {
	GetProgram(ctx context.Context, id string) (*api.Program, error)
	EnrollProgram(ctx context.Context, token, programID string) error
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

func (h *Handler) Show(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.catalog.programenroll.Show"
	log := helpers.RequestLogger(h.log, op, r)

	id := chi.URLParam(r, "id")
	program, err := h.service.GetProgram(r.Context(), id)
	if err != nil {
		log.Warn("program lookup failed", sl.Err(err), slog.String("program_id", id))
		page := helpers.NewPage(r, "Not Found")
		page.Error = "Program not found"
		h.renderer.NotFound(w, page)
		return
	}

	page := helpers.NewPage(r, program.Title)
	page.Data = web.ProgramEnrollView{Program: *program}
	h.renderer.HTML(w, http.StatusOK, "program_enroll.html", page)
}

func (h *Handler) Submit(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.catalog.programenroll.Submit"
	log := helpers.RequestLogger(h.log, op, r)

	sess, ok := middlewarectx.SessionFrom(r.Context())
	if !ok {
		http.Redirect(w, r, "/login", http.StatusSeeOther)
		return
	}

	id := chi.URLParam(r, "id")
	if err := h.service.EnrollProgram(r.Context(), sess.Token, id); err != nil {
		metrics.EnrollmentsSubmitted.WithLabelValues("program", "error").Inc()
		if helpers.HandleAuthFault(w, r, h.sessions, err) {
			return
		}
		log.Error("program enrollment failed", sl.Err(err), slog.String("program_id", id))

		program, lookupErr := h.service.GetProgram(r.Context(), id)
		if lookupErr != nil {
			page := helpers.NewPage(r, "Not Found")
			page.Error = "Program not found"
			h.renderer.NotFound(w, page)
			return
		}
		page := helpers.NewPage(r, program.Title)
		page.Error = api.UserMessage(err, "Your enrollment could not be submitted. Please try again.")
		page.Data = web.ProgramEnrollView{Program: *program}
		h.renderer.HTML(w, http.StatusBadGateway, "program_enroll.html", page)
		return
	}

	metrics.EnrollmentsSubmitted.WithLabelValues("program", "ok").Inc()
	log.Info("program enrollment submitted", slog.String("program_id", id))

	http.Redirect(w, r, "/profile?notice=enrolled", http.StatusSeeOther)
}
