// Package profile implements the authenticated account page: viewing and
// editing the signed-in user's details. The displayed identity is always
// re-fetched from the backend so that changes made elsewhere (for example by
// an administrator) show up on the next load.
package profile

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/TheoNshimyimana/success-frontend/internal/api"
	"github.com/TheoNshimyimana/success-frontend/internal/http/handlers/helpers"
	"github.com/TheoNshimyimana/success-frontend/internal/http/middlewarectx"
	"github.com/TheoNshimyimana/success-frontend/internal/lib/sl"
	"github.com/TheoNshimyimana/success-frontend/internal/session"
	"github.com/TheoNshimyimana/success-frontend/internal/validation"
	"github.com/TheoNshimyimana/success-frontend/internal/web"
)

type Service interface {
	Me(ctx context.Context, token string) (*api.User, error)
	UpdateUser(ctx context.Context, token, id string, upd api.UpdateUserRequest) (*api.User, error)
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
	const op = "handlers.auth.profile.Show"
	log := helpers.RequestLogger(h.log, op, r)

	sess, ok := middlewarectx.SessionFrom(r.Context())
	if !ok {
		http.Redirect(w, r, "/login?from=%2Fprofile", http.StatusSeeOther)
		return
	}

	user, err := h.service.Me(r.Context(), sess.Token)
	if err != nil {
		if helpers.HandleAuthFault(w, r, h.sessions, err) {
			return
		}
		log.Warn("profile fetch failed, showing cached identity", sl.Err(err))
		user = &sess.User
	}

	page := helpers.NewPage(r, "My Profile")
	page.User = user
	if r.URL.Query().Get("notice") == "enrolled" {
		page.Notice = "Thank you! Your enrollment has been submitted successfully, and our staff will be in touch with you shortly."
	}
	page.Data = web.ProfileView{User: *user}
	h.renderer.HTML(w, http.StatusOK, "profile.html", page)
}

func (h *Handler) Submit(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.auth.profile.Submit"
	log := helpers.RequestLogger(h.log, op, r)

	sess, ok := middlewarectx.SessionFrom(r.Context())
	sid := middlewarectx.SIDFrom(r.Context())
	if !ok {
		http.Redirect(w, r, "/login?from=%2Fprofile", http.StatusSeeOther)
		return
	}

	page := helpers.NewPage(r, "My Profile")
	page.Data = web.ProfileView{User: sess.User}

	fail := func(status int, msg string) {
		page.Error = msg
		h.renderer.HTML(w, status, "profile.html", page)
	}

	upd := api.UpdateUserRequest{
		Name:  r.FormValue("name"),
		Email: r.FormValue("email"),
		Phone: r.FormValue("phone"),
	}
	if err := validation.Email(upd.Email); err != nil {
		fail(http.StatusUnprocessableEntity, err.Error())
		return
	}
	if err := validation.EmailDomain(upd.Email); err != nil {
		fail(http.StatusUnprocessableEntity, err.Error())
		return
	}

	user, err := h.service.UpdateUser(r.Context(), sess.Token, sess.User.ID, upd)
	if err != nil {
		if helpers.HandleAuthFault(w, r, h.sessions, err) {
			return
		}
		log.Error("profile update failed", sl.Err(err))
		fail(http.StatusBadGateway, api.UserMessage(err, "Could not update profile"))
		return
	}

	// Token is unchanged; only the identity half of the session moves.
	if err := h.sessions.Set(r.Context(), sid, session.Session{User: *user, Token: sess.Token}); err != nil {
		log.Error("failed to refresh session identity", sl.Err(err))
	}

	log.Info("profile updated", slog.String("user_id", user.ID))

	http.Redirect(w, r, "/profile", http.StatusSeeOther)
}
