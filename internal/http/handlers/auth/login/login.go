// Package login implements the login page: rendering the form,
// exchanging credentials with the backend and installing the session.
// A successful login rotates the session id and carries any pending
// enrollment intent over to the new one.
package login

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"github.com/TheoNshimyimana/success-frontend/internal/api"
	"github.com/TheoNshimyimana/success-frontend/internal/http/handlers/helpers"
	"github.com/TheoNshimyimana/success-frontend/internal/http/middlewarectx"
	"github.com/TheoNshimyimana/success-frontend/internal/lib/sl"
	"github.com/TheoNshimyimana/success-frontend/internal/metrics"
	"github.com/TheoNshimyimana/success-frontend/internal/session"
	"github.com/TheoNshimyimana/success-frontend/internal/web"
)

// Service is the slice of the backend client this handler needs.
type Service interface {
	Login(ctx context.Context, email, password string) (*api.AuthResponse, error)
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

func (h *Handler) view(r *http.Request) web.LoginView {
	return web.LoginView{
		Email: r.FormValue("email"),
		From:  r.FormValue("from"),
	}
}

// Show renders the login form. Already-authenticated visitors are sent
// home.
func (h *Handler) Show(w http.ResponseWriter, r *http.Request) {
	if _, ok := middlewarectx.SessionFrom(r.Context()); ok {
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}

	page := helpers.NewPage(r, "Login")
	if r.URL.Query().Get("notice") == "reset" {
		page.Notice = "Password reset successful. Please log in."
	}
	page.Data = web.LoginView{From: r.URL.Query().Get("from")}
	h.renderer.HTML(w, http.StatusOK, "login.html", page)
}

// Submit authenticates against the backend and redirects to the page
// the visitor came from.
func (h *Handler) Submit(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.auth.login"
	log := helpers.RequestLogger(h.log, op, r)

	email := r.FormValue("email")
	password := r.FormValue("password")

	resp, err := h.service.Login(r.Context(), email, password)
	if err != nil {
		metrics.Logins.WithLabelValues("error").Inc()
		log.Warn("login failed", sl.Err(err))

		page := helpers.NewPage(r, "Login")
		page.Error = api.UserMessage(err, "Login failed")
		page.Data = h.view(r)
		h.renderer.HTML(w, http.StatusUnauthorized, "login.html", page)
		return
	}

	oldSID := middlewarectx.SIDFrom(r.Context())
	sid := h.sessions.IssueCookie(w)
	if err := h.sessions.Set(r.Context(), sid, session.Session{User: resp.User, Token: resp.Token}); err != nil {
		log.Error("failed to store session", sl.Err(err))

		page := helpers.NewPage(r, "Login")
		page.Error = "Login failed"
		page.Data = h.view(r)
		h.renderer.HTML(w, http.StatusInternalServerError, "login.html", page)
		return
	}
	if err := h.sessions.MigrateIntent(r.Context(), oldSID, sid); err != nil {
		log.Warn("failed to migrate pending intent", sl.Err(err))
	}
	if oldSID != "" {
		_ = h.sessions.Clear(r.Context(), oldSID)
	}

	metrics.Logins.WithLabelValues("ok").Inc()
	log.Info("login success", slog.String("user_id", resp.User.ID))

	target := r.FormValue("from")
	// Only site-local paths: "//host" is scheme-relative and would
	// leave the site.
	if target == "" || target[0] != '/' || strings.HasPrefix(target, "//") {
		target = "/"
	}
	http.Redirect(w, r, target, http.StatusSeeOther)
}
