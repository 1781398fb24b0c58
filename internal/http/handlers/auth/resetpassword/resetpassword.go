// Package resetpassword implements the token-based password reset page.
package resetpassword

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi"

	"github.com/TheoNshimyimana/success-frontend/internal/api"
	"github.com/TheoNshimyimana/success-frontend/internal/http/handlers/helpers"
	"github.com/TheoNshimyimana/success-frontend/internal/lib/sl"
	"github.com/TheoNshimyimana/success-frontend/internal/validation"
	"github.com/TheoNshimyimana/success-frontend/internal/web"
)

type Service interface {
	ResetPassword(ctx context.Context, token, password string) (*api.Message, error)
}

type Handler struct {
	log      *slog.Logger
	service  Service
	renderer *web.Renderer
}

func New(log *slog.Logger, service Service, renderer *web.Renderer) *Handler {
	return &Handler{log: log, service: service, renderer: renderer}
}

func (h *Handler) Show(w http.ResponseWriter, r *http.Request) {
	page := helpers.NewPage(r, "Reset Password")
	page.Data = web.ResetPasswordView{Token: chi.URLParam(r, "token")}
	h.renderer.HTML(w, http.StatusOK, "reset_password.html", page)
}

func (h *Handler) Submit(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.auth.resetpassword"
	log := helpers.RequestLogger(h.log, op, r)

	token := chi.URLParam(r, "token")
	page := helpers.NewPage(r, "Reset Password")
	page.Data = web.ResetPasswordView{Token: token}

	password := r.FormValue("password")
	confirm := r.FormValue("confirm_password")

	if err := validation.PasswordsMatch(password, confirm); err != nil {
		page.Error = err.Error()
		h.renderer.HTML(w, http.StatusUnprocessableEntity, "reset_password.html", page)
		return
	}
	if err := validation.Password(password); err != nil {
		page.Error = err.Error()
		h.renderer.HTML(w, http.StatusUnprocessableEntity, "reset_password.html", page)
		return
	}

	if _, err := h.service.ResetPassword(r.Context(), token, password); err != nil {
		log.Warn("password reset failed", sl.Err(err))
		page.Error = api.UserMessage(err, "Could not reset password. The link may have expired.")
		h.renderer.HTML(w, http.StatusBadGateway, "reset_password.html", page)
		return
	}

	http.Redirect(w, r, "/login?notice=reset", http.StatusSeeOther)
}
