// Package programs implements the program admin panel.
package programs

import (
	"context"
	"log/slog"
	"net/http"
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
	ListPrograms(ctx context.Context) ([]api.Program, error)
	CreateProgram(ctx context.Context, token string, form api.ProgramForm) (*api.Program, error)
	UpdateProgram(ctx context.Context, token, id string, form api.ProgramForm) (*api.Program, error)
	DeleteProgram(ctx context.Context, token, id string) error
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

// List handles GET /admin/programs.
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.admin.programs.List"
	log := helpers.RequestLogger(h.log, op, r)

	page := helpers.NewPage(r, "Manage Programs")

	all, err := h.service.ListPrograms(r.Context())
	if err != nil {
		log.Error("program listing failed", sl.Err(err))
		page.Error = api.UserMessage(err, "Could not load programs")
		page.Data = web.ProgramsAdminView{}
		h.renderer.HTML(w, http.StatusBadGateway, "admin_programs.html", page)
		return
	}

	q := r.URL.Query().Get("q")
	programs := make([]api.Program, 0, len(all))
	for _, p := range all {
		if search.Matches(q, p.Title, p.Subtitle, p.Description) {
			programs = append(programs, p)
		}
	}

	var editing *api.Program
	if editID := r.URL.Query().Get("edit"); editID != "" {
		for i := range programs {
			if programs[i].ID == editID {
				editing = &programs[i]
				break
			}
		}
	}

	page.Data = web.ProgramsAdminView{Programs: programs, Editing: editing}
	h.renderer.HTML(w, http.StatusOK, "admin_programs.html", page)
}

// Create handles POST /admin/programs.
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.admin.programs.Create"
	log := helpers.RequestLogger(h.log, op, r)

	sess, _ := middlewarectx.SessionFrom(r.Context())

	if _, err := h.service.CreateProgram(r.Context(), sess.Token, formFrom(r)); err != nil {
		if helpers.HandleAuthFault(w, r, h.sessions, err) {
			return
		}
		log.Error("program create failed", sl.Err(err))
	}

	http.Redirect(w, r, "/admin/programs", http.StatusSeeOther)
}

// Update handles POST /admin/programs/{id}.
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.admin.programs.Update"
	log := helpers.RequestLogger(h.log, op, r)

	sess, _ := middlewarectx.SessionFrom(r.Context())
	id := chi.URLParam(r, "id")

	if _, err := h.service.UpdateProgram(r.Context(), sess.Token, id, formFrom(r)); err != nil {
		if helpers.HandleAuthFault(w, r, h.sessions, err) {
			return
		}
		log.Error("program update failed", sl.Err(err), slog.String("program_id", id))
	}

	http.Redirect(w, r, "/admin/programs", http.StatusSeeOther)
}

// Delete handles POST /admin/programs/{id}/delete.
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.admin.programs.Delete"
	log := helpers.RequestLogger(h.log, op, r)

	sess, _ := middlewarectx.SessionFrom(r.Context())
	id := chi.URLParam(r, "id")

	if err := h.service.DeleteProgram(r.Context(), sess.Token, id); err != nil {
		if helpers.HandleAuthFault(w, r, h.sessions, err) {
			return
		}
		log.Error("program delete failed", sl.Err(err), slog.String("program_id", id))
	}

	http.Redirect(w, r, "/admin/programs", http.StatusSeeOther)
}

// formFrom builds the payload from the panel form. Features arrive as a
// comma-separated line.
func formFrom(r *http.Request) api.ProgramForm {
	return api.ProgramForm{
		Title:       r.FormValue("title"),
		Subtitle:    r.FormValue("subtitle"),
		Description: r.FormValue("description"),
		Features:    splitList(r.FormValue("features")),
		Icon:        r.FormValue("icon"),
		ThemeColor:  r.FormValue("theme_color"),
		Image:       r.FormValue("image"),
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
