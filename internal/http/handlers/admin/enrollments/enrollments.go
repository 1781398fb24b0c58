// Package enrollments implements the two approval panels. Course and
// program enrollments share the workflow, so one handler runs against a
// Source that adapts the backend calls for either record kind.
package enrollments

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi"

	"github.com/TheoNshimyimana/success-frontend/internal/api"
	"github.com/TheoNshimyimana/success-frontend/internal/http/handlers/helpers"
	"github.com/TheoNshimyimana/success-frontend/internal/http/middlewarectx"
	"github.com/TheoNshimyimana/success-frontend/internal/lib/search"
	"github.com/TheoNshimyimana/success-frontend/internal/lib/sl"
	"github.com/TheoNshimyimana/success-frontend/internal/session"
	"github.com/TheoNshimyimana/success-frontend/internal/web"
)

// Source adapts one enrollment kind to the shared panel.
type Source interface {
	// Heading is the panel title, ItemKind the column label, BasePath
	// the route prefix the panel forms post to.
	Heading() string
	ItemKind() string
	BasePath() string

	List(ctx context.Context, token string) ([]web.EnrollmentRow, error)
	UpdateStatus(ctx context.Context, token, id, status string) error
	Delete(ctx context.Context, token, id string) error
}

type Handler struct {
	log      *slog.Logger
	source   Source
	sessions *session.Store
	renderer *web.Renderer
}

func New(log *slog.Logger, source Source, sessions *session.Store, renderer *web.Renderer) *Handler {
	return &Handler{log: log, source: source, sessions: sessions, renderer: renderer}
}

// List handles GET {BasePath}.
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.admin.enrollments.List"
	log := helpers.RequestLogger(h.log, op, r)

	sess, _ := middlewarectx.SessionFrom(r.Context())
	page := helpers.NewPage(r, h.source.Heading())

	view := web.EnrollmentsAdminView{
		Heading:  h.source.Heading(),
		ItemKind: h.source.ItemKind(),
		BasePath: h.source.BasePath(),
	}

	all, err := h.source.List(r.Context(), sess.Token)
	if err != nil {
		if helpers.HandleAuthFault(w, r, h.sessions, err) {
			return
		}
		log.Error("enrollment listing failed", sl.Err(err))
		page.Error = api.UserMessage(err, "Could not load enrollments")
		page.Data = view
		h.renderer.HTML(w, http.StatusBadGateway, "admin_enrollments.html", page)
		return
	}

	q := r.URL.Query().Get("q")
	rows := make([]web.EnrollmentRow, 0, len(all))
	for _, row := range all {
		if search.Matches(q, row.UserName, row.UserEmail, row.ItemTitle, row.Status) {
			rows = append(rows, row)
		}
	}

	view.Rows = rows
	page.Data = view
	h.renderer.HTML(w, http.StatusOK, "admin_enrollments.html", page)
}

// UpdateStatus handles POST {BasePath}/{id}/status with an approve or
// reject decision.
func (h *Handler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.admin.enrollments.UpdateStatus"
	log := helpers.RequestLogger(h.log, op, r)

	sess, _ := middlewarectx.SessionFrom(r.Context())
	id := chi.URLParam(r, "id")

	status := r.FormValue("status")
	if status != api.StatusApproved && status != api.StatusRejected {
		http.Redirect(w, r, h.source.BasePath(), http.StatusSeeOther)
		return
	}

	if err := h.source.UpdateStatus(r.Context(), sess.Token, id, status); err != nil {
		if helpers.HandleAuthFault(w, r, h.sessions, err) {
			return
		}
		log.Error("enrollment status update failed", sl.Err(err),
			slog.String("enrollment_id", id), slog.String("status", status))
	} else {
		log.Info("enrollment decided",
			slog.String("enrollment_id", id), slog.String("status", status))
	}

	http.Redirect(w, r, h.source.BasePath(), http.StatusSeeOther)
}

// Delete handles POST {BasePath}/{id}/delete.
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.admin.enrollments.Delete"
	log := helpers.RequestLogger(h.log, op, r)

	sess, _ := middlewarectx.SessionFrom(r.Context())
	id := chi.URLParam(r, "id")

	if err := h.source.Delete(r.Context(), sess.Token, id); err != nil {
		if helpers.HandleAuthFault(w, r, h.sessions, err) {
			return
		}
		log.Error("enrollment delete failed", sl.Err(err), slog.String("enrollment_id", id))
	}

	http.Redirect(w, r, h.source.BasePath(), http.StatusSeeOther)
}
