// Package programs renders the program catalog, mirroring the training
// page: deferred-intent replay for signed-in users plus per-program
// button states derived from the user's enrollment records.
package programs

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
	ListPrograms(ctx context.Context) ([]api.Program, error)
	MyProgramEnrollments(ctx context.Context, token string) ([]api.ProgramEnrollment, error)
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

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.catalog.programs"
	log := helpers.RequestLogger(h.log, op, r)

	page := helpers.NewPage(r, "Programs")

	programs, err := h.service.ListPrograms(r.Context())
	if err != nil {
		log.Error("program catalog fetch failed", sl.Err(err))
		page.Error = api.UserMessage(err, "Could not load programs. Please try again later.")
		page.Data = web.ProgramsView{}
		h.renderer.HTML(w, http.StatusBadGateway, "programs.html", page)
		return
	}

	sess, hasSession := middlewarectx.SessionFrom(r.Context())
	sid := middlewarectx.SIDFrom(r.Context())

	var records []api.ProgramEnrollment
	if hasSession {
		if _, err := h.sessions.TryReplay(r.Context(), sid, r.URL.Path, true, func(intent session.Intent) {
			if intent.Kind != session.IntentProgram {
				return
			}
			if err := h.service.EnrollProgram(r.Context(), sess.Token, intent.ItemID); err != nil {
				metrics.EnrollmentsSubmitted.WithLabelValues("program", "error").Inc()
				log.Error("deferred enrollment failed", sl.Err(err))
				page.Error = api.UserMessage(err, "Your enrollment could not be submitted. Please try again.")
				return
			}
			metrics.EnrollmentsSubmitted.WithLabelValues("program", "ok").Inc()
			page.Notice = "Thank you! Your enrollment has been submitted successfully, and our staff will be in touch with you shortly."
		}); err != nil {
			log.Error("intent replay failed", sl.Err(err))
		}

		records, err = h.service.MyProgramEnrollments(r.Context(), sess.Token)
		if err != nil {
			if helpers.HandleAuthFault(w, r, h.sessions, err) {
				return
			}
			log.Warn("enrollment records unavailable", sl.Err(err))
			records = nil
		}
	}

	states := enroll.ProjectPrograms(programs, records)
	cards := make([]web.ProgramCard, 0, len(programs))
	for _, program := range programs {
		cards = append(cards, web.ProgramCard{Program: program, Status: states[program.ID]})
	}

	page.Data = web.ProgramsView{Programs: cards}
	h.renderer.HTML(w, http.StatusOK, "programs.html", page)
}
