// Package logout destroys the browser session.
package logout

import (
	"log/slog"
	"net/http"

	"github.com/TheoNshimyimana/success-frontend/internal/http/handlers/helpers"
	"github.com/TheoNshimyimana/success-frontend/internal/http/middlewarectx"
	"github.com/TheoNshimyimana/success-frontend/internal/lib/sl"
	"github.com/TheoNshimyimana/success-frontend/internal/session"
)

type Handler struct {
	log      *slog.Logger
	sessions *session.Store
}

func New(log *slog.Logger, sessions *session.Store) *Handler {
	return &Handler{log: log, sessions: sessions}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.auth.logout"
	log := helpers.RequestLogger(h.log, op, r)

	sid := middlewarectx.SIDFrom(r.Context())
	if err := h.sessions.Clear(r.Context(), sid); err != nil {
		log.Warn("failed to clear session", sl.Err(err))
	}
	h.sessions.ClearCookie(w)
	http.Redirect(w, r, "/", http.StatusSeeOther)
}
