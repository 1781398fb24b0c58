// Package middlewarectx contains the HTTP middleware that loads the
// browser session into the request context and gates the pages that
// need an identity or the admin role.
package middlewarectx

import (
	"context"
	"log/slog"
	"net/http"
	"net/url"

	"github.com/go-chi/chi/middleware"

	"github.com/TheoNshimyimana/success-frontend/internal/session"
)

// Key is the type for request context keys set by this package.
type Key string

const (
	// SessionKey holds the *session.Session, nil when logged out.
	SessionKey Key = "session"
	// SIDKey holds the session id from the cookie, "" when absent.
	SIDKey Key = "sid"
)

// LoadSession reads the session cookie and puts the session id and the
// session itself (when present and well formed) into the context. It
// never rejects a request: pages that work logged-out keep working.
func LoadSession(store *session.Store, log *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			const op = "middlewarectx.LoadSession"

			sid := store.SID(r)
			ctx := context.WithValue(r.Context(), SIDKey, sid)

			if sess, ok := store.Get(ctx, sid); ok {
				ctx = context.WithValue(ctx, SessionKey, sess)
			} else if sid != "" {
				log.Debug("no session for cookie",
					slog.String("op", op),
					slog.String("request_id", middleware.GetReqID(r.Context())))
			}
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// SessionFrom returns the session loaded for this request, if any.
func SessionFrom(ctx context.Context) (*session.Session, bool) {
	sess, ok := ctx.Value(SessionKey).(*session.Session)
	return sess, ok && sess != nil
}

// SIDFrom returns the session id from the request cookie, or "".
func SIDFrom(ctx context.Context) string {
	sid, _ := ctx.Value(SIDKey).(string)
	return sid
}

// RequireAuth redirects logged-out visitors to the login page with a
// return path back to where they were.
func RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, ok := SessionFrom(r.Context()); !ok {
			http.Redirect(w, r, "/login?from="+url.QueryEscape(r.URL.Path), http.StatusSeeOther)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// RequireAdmin hides the admin pages from everyone but admins. The
// backend enforces authorization on every call regardless; this only
// keeps the pages out of sight.
func RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sess, ok := SessionFrom(r.Context())
		if !ok {
			http.Redirect(w, r, "/login?from="+url.QueryEscape(r.URL.Path), http.StatusSeeOther)
			return
		}
		if sess.User.Role != "admin" {
			http.NotFound(w, r)
			return
		}
		next.ServeHTTP(w, r)
	})
}
