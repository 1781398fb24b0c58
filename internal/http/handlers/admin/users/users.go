// Package users implements the user admin panel: a filterable listing
// with inline edit and delete. Filtering happens here, against the
// already-fetched list; the backend never sees the query.
package users

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
	"github.com/TheoNshimyimana/success-frontend/internal/validation"
	"github.com/TheoNshimyimana/success-frontend/internal/web"
)

type Service interface {
	ListUsers(ctx context.Context, token string) ([]api.User, error)
	UpdateUser(ctx context.Context, token, id string, upd api.UpdateUserRequest) (*api.User, error)
	DeleteUser(ctx context.Context, token, id string) error
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

// List handles GET /admin/users. The q parameter narrows the listing,
// edit selects a row for the inline form.
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.admin.users.List"
	log := helpers.RequestLogger(h.log, op, r)

	sess, _ := middlewarectx.SessionFrom(r.Context())
	page := helpers.NewPage(r, "Manage Users")

	all, err := h.service.ListUsers(r.Context(), sess.Token)
	if err != nil {
		if helpers.HandleAuthFault(w, r, h.sessions, err) {
			return
		}
		log.Error("user listing failed", sl.Err(err))
		page.Error = api.UserMessage(err, "Could not load users")
		page.Data = web.UsersAdminView{}
		h.renderer.HTML(w, http.StatusBadGateway, "admin_users.html", page)
		return
	}

	q := r.URL.Query().Get("q")
	users := make([]api.User, 0, len(all))
	for _, u := range all {
		if search.Matches(q, u.Name, u.Email, u.Role) {
			users = append(users, u)
		}
	}

	var editing *api.User
	if editID := r.URL.Query().Get("edit"); editID != "" {
		for i := range users {
			if users[i].ID == editID {
				editing = &users[i]
				break
			}
		}
	}

	page.Data = web.UsersAdminView{Users: users, Editing: editing}
	h.renderer.HTML(w, http.StatusOK, "admin_users.html", page)
}

// Update handles POST /admin/users/{id}.
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.admin.users.Update"
	log := helpers.RequestLogger(h.log, op, r)

	sess, _ := middlewarectx.SessionFrom(r.Context())
	id := chi.URLParam(r, "id")

	upd := api.UpdateUserRequest{
		Name:  r.FormValue("name"),
		Email: r.FormValue("email"),
		Role:  r.FormValue("role"),
	}
	if err := validation.Email(upd.Email); err != nil {
		http.Redirect(w, r, "/admin/users?edit="+id, http.StatusSeeOther)
		return
	}

	if _, err := h.service.UpdateUser(r.Context(), sess.Token, id, upd); err != nil {
		if helpers.HandleAuthFault(w, r, h.sessions, err) {
			return
		}
		log.Error("user update failed", sl.Err(err), slog.String("user_id", id))
	}

	http.Redirect(w, r, "/admin/users", http.StatusSeeOther)
}

// Delete handles POST /admin/users/{id}/delete.
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.admin.users.Delete"
	log := helpers.RequestLogger(h.log, op, r)

	sess, _ := middlewarectx.SessionFrom(r.Context())
	id := chi.URLParam(r, "id")

	if err := h.service.DeleteUser(r.Context(), sess.Token, id); err != nil {
		if helpers.HandleAuthFault(w, r, h.sessions, err) {
			return
		}
		log.Error("user delete failed", sl.Err(err), slog.String("user_id", id))
	}

	http.Redirect(w, r, "/admin/users", http.StatusSeeOther)
}
