// Package forgotpassword implements the reset-link request page.
package forgotpassword

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/TheoNshimyimana/success-frontend/internal/api"
	"github.com/TheoNshimyimana/success-frontend/internal/http/handlers/helpers"
	"github.com/TheoNshimyimana/success-frontend/internal/lib/sl"
	"github.com/TheoNshimyimana/success-frontend/internal/validation"
	"github.com/TheoNshimyimana/success-frontend/internal/web"
)

// Service is the slice of the backend client this handler needs.
type Service interface {
	ForgotPassword(ctx context.Context, email string) (*api.Message, error)
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
	h.renderer.HTML(w, http.StatusOK, "forgot_password.html", helpers.NewPage(r, "Forgot Password"))
}

func (h *Handler) Submit(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.auth.forgotpassword"
	log := helpers.RequestLogger(h.log, op, r)

	page := helpers.NewPage(r, "Forgot Password")

	email := r.FormValue("email")
	if err := validation.Email(email); err != nil {
		page.Error = err.Error()
		h.renderer.HTML(w, http.StatusUnprocessableEntity, "forgot_password.html", page)
		return
	}

	resp, err := h.service.ForgotPassword(r.Context(), email)
	if err != nil {
		log.Warn("forgot-password request failed", sl.Err(err))
		page.Error = api.UserMessage(err, "Something went wrong")
		h.renderer.HTML(w, http.StatusBadGateway, "forgot_password.html", page)
		return
	}

	page.Notice = resp.Message
	if page.Notice == "" {
		page.Notice = "Reset link sent to your email"
	}
	h.renderer.HTML(w, http.StatusOK, "forgot_password.html", page)
}
