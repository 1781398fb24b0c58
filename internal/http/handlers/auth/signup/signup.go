// Package signup implements the account creation page. All client-side
// checks (password rules, email provider allow-list) run before the
// backend is contacted; a successful registration logs the account in
// within the same request.
package signup

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

// Service is the slice of the backend client this handler needs.
type Service interface {
	Register(ctx context.Context, req api.RegisterRequest) (*api.AuthResponse, error)
}

type Handler struct {
	log      *slog.Logger
	service  Service
	sessions *session.Store
	renderer *web.Renderer
}

func New(log *slog.Logger, service Service, sessions *session.Store, renderer *web.Renderer) *Handler {
	return &Handler{
		log:      log,
		service:  service,
		sessions: sessions,
		renderer: renderer,
	}
}

// Show renders the signup form.
func (h *Handler) Show(w http.ResponseWriter, r *http.Request) {
	if _, ok := middlewarectx.SessionFrom(r.Context()); ok {
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}

	page := helpers.NewPage(r, "Sign Up")
	page.Data = web.SignupView{}
	h.renderer.HTML(w, http.StatusOK, "signup.html", page)
}

// Submit validates the form locally, registers the account and
// installs the fresh session.
func (h *Handler) Submit(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.auth.signup"
	log := helpers.RequestLogger(h.log, op, r)

	form := validation.SignupForm{
		Name:            r.FormValue("name"),
		Email:           r.FormValue("email"),
		Phone:           r.FormValue("phone"),
		Password:        r.FormValue("password"),
		ConfirmPassword: r.FormValue("confirm_password"),
	}
	view := web.SignupView{Name: form.Name, Email: form.Email, Phone: form.Phone}

	fail := func(status int, msg string) {
		page := helpers.NewPage(r, "Sign Up")
		page.Error = msg
		page.Data = view
		h.renderer.HTML(w, status, "signup.html", page)
	}

	// Local checks block the submission entirely; the backend never
	// sees an invalid form.
	if err := validation.Signup(form); err != nil {
		log.Info("signup rejected locally", sl.Err(err))
		fail(http.StatusUnprocessableEntity, err.Error())
		return
	}

	resp, err := h.service.Register(r.Context(), api.RegisterRequest{
		Name:     form.Name,
		Email:    form.Email,
		Phone:    form.Phone,
		Password: form.Password,
	})
	if err != nil {
		log.Warn("signup failed", sl.Err(err))
		fail(http.StatusBadGateway, api.UserMessage(err, "Signup failed"))
		return
	}

	oldSID := middlewarectx.SIDFrom(r.Context())
	sid := h.sessions.IssueCookie(w)
	if err := h.sessions.Set(r.Context(), sid, session.Session{User: resp.User, Token: resp.Token}); err != nil {
		log.Error("failed to store session", sl.Err(err))
		fail(http.StatusInternalServerError, "Signup failed")
		return
	}
	if err := h.sessions.MigrateIntent(r.Context(), oldSID, sid); err != nil {
		log.Warn("failed to migrate pending intent", sl.Err(err))
	}
	if oldSID != "" {
		_ = h.sessions.Clear(r.Context(), oldSID)
	}

	log.Info("account created", slog.String("user_id", resp.User.ID))
	http.Redirect(w, r, "/", http.StatusSeeOther)
}
