// Package helpers carries the small pieces shared by every page
// handler: building the base page data from the request context and the
// single auth-fault policy.
package helpers

import (
	"log/slog"
	"net/http"
	"net/url"

	"github.com/go-chi/chi/middleware"

	"github.com/TheoNshimyimana/success-frontend/internal/api"
	"github.com/TheoNshimyimana/success-frontend/internal/http/middlewarectx"
	"github.com/TheoNshimyimana/success-frontend/internal/session"
	"github.com/TheoNshimyimana/success-frontend/internal/web"
)

// NewPage builds the page skeleton for the current request, carrying
// the logged-in identity into the layout.
func NewPage(r *http.Request, title string) web.Page {
	page := web.Page{
		Title: title,
		Path:  r.URL.Path,
		Query: r.URL.Query().Get("q"),
	}
	if sess, ok := middlewarectx.SessionFrom(r.Context()); ok {
		page.User = &sess.User
	}
	return page
}

// RequestLogger returns log annotated with op and the chi request id.
func RequestLogger(log *slog.Logger, op string, r *http.Request) *slog.Logger {
	return log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)
}

// HandleAuthFault applies the one auth-fault policy of the app: when
// the backend rejects the credential, the stale session is cleared and
// the user is sent back to the login page with a return path. Reports
// whether it consumed the error.
func HandleAuthFault(w http.ResponseWriter, r *http.Request, store *session.Store, err error) bool {
	if !api.IsAuth(err) {
		return false
	}
	_ = store.Clear(r.Context(), middlewarectx.SIDFrom(r.Context()))
	store.ClearCookie(w)
	http.Redirect(w, r, "/login?from="+url.QueryEscape(r.URL.Path), http.StatusSeeOther)
	return true
}
