// Package changepassword implements the authenticated password change page.
package changepassword

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
	ChangePassword(ctx context.Context, token, current, next, confirm string) (*api.Message, error)
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
	h.renderer.HTML(w, http.StatusOK, "change_password.html", helpers.NewPage(r, "Change Password"))
}

func (h *Handler) Submit(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.auth.changepassword"
	log := helpers.RequestLogger(h.log, op, r)

	sess, ok := middlewarectx.SessionFrom(r.Context())
	if !ok {
		http.Redirect(w, r, "/login?from=%2Fchange-password", http.StatusSeeOther)
		return
	}

	page := helpers.NewPage(r, "Change Password")

	current := r.FormValue("current_password")
	next := r.FormValue("new_password")
	confirm := r.FormValue("confirm_new_password")

	fail := func(status int, msg string) {
		page.Error = msg
		h.renderer.HTML(w, status, "change_password.html", page)
	}

	if err := validation.PasswordsMatch(next, confirm); err != nil {
		fail(http.StatusUnprocessableEntity, err.Error())
		return
	}
	if err := validation.Password(next); err != nil {
		fail(http.StatusUnprocessableEntity, err.Error())
		return
	}

	resp, err := h.service.ChangePassword(r.Context(), sess.Token, current, next, confirm)
	if err != nil {
		if helpers.HandleAuthFault(w, r, h.sessions, err) {
			return
		}
		log.Warn("password change rejected", sl.Err(err))
		fail(http.StatusBadGateway, api.UserMessage(err, "Could not change password"))
		return
	}

	page.Notice = resp.Message
	if page.Notice == "" {
		page.Notice = "Password changed successfully"
	}
	h.renderer.HTML(w, http.StatusOK, "change_password.html", page)
}
