// Package session implements the browser session store and the pending
// enrollment intent tracker. Both live in redis keyed by a random
// session id carried in an HttpOnly cookie, so a page reload
// reconstructs the same state without a backend call.
package session

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/TheoNshimyimana/success-frontend/internal/api"
	"github.com/TheoNshimyimana/success-frontend/internal/config"
	"github.com/TheoNshimyimana/success-frontend/internal/lib/sl"
	"github.com/TheoNshimyimana/success-frontend/internal/lib/token"
)

// Cache is the durable store behind sessions and intents.
type Cache interface {
	// Get reads the value under key into result and reports presence.
	Get(ctx context.Context, key string, result any) (bool, error)
	// Set stores value under key for the given TTL.
	Set(ctx context.Context, key string, value any, expiration time.Duration) error
	// Invalidate removes key.
	Invalidate(ctx context.Context, key string) error
}

// Session is the local record of an authenticated identity and its
// bearer credential. It is either fully present or fully absent;
// a record missing either half reads as absent.
type Session struct {
	User  api.User `json:"user"`
	Token string   `json:"token"`
}

type Store struct {
	cache Cache
	cfg   config.SessionStore
	log   *slog.Logger
}

func NewStore(cache Cache, cfg config.SessionStore, log *slog.Logger) *Store {
	return &Store{
		cache: cache,
		cfg:   cfg,
		log:   log,
	}
}

func sessionKey(sid string) string { return "session:" + sid }

// Get returns the session for sid, or absent. Malformed or partial
// stored data reads as absent: the user is simply logged out, never
// shown an error.
func (s *Store) Get(ctx context.Context, sid string) (*Session, bool) {
	const op = "session.Get"
	if sid == "" {
		return nil, false
	}

	var sess Session
	found, err := s.cache.Get(ctx, sessionKey(sid), &sess)
	if err != nil {
		s.log.Warn("failed to read session, treating as logged out",
			slog.String("op", op), sl.Err(err))
		return nil, false
	}
	if !found || sess.Token == "" || sess.User.ID == "" {
		return nil, false
	}
	return &sess, true
}

// Set stores sess under sid. The TTL follows the bearer token's expiry
// when the token is a JWT, otherwise the configured session TTL.
func (s *Store) Set(ctx context.Context, sid string, sess Session) error {
	const op = "session.Set"
	ttl := token.ExpiresIn(sess.Token, s.cfg.TTL)
	if err := s.cache.Set(ctx, sessionKey(sid), sess, ttl); err != nil {
		return err
	}
	s.log.Info("session stored",
		slog.String("op", op),
		slog.String("user_id", sess.User.ID),
		slog.String("role", sess.User.Role))
	return nil
}

// Clear removes the session under sid. Clearing an absent session is a
// no-op.
func (s *Store) Clear(ctx context.Context, sid string) error {
	return s.cache.Invalidate(ctx, sessionKey(sid))
}

// SID extracts the session id from the request cookie. The empty
// string means the browser has no session cookie yet.
func (s *Store) SID(r *http.Request) string {
	cookie, err := r.Cookie(s.cfg.CookieName)
	if err != nil {
		return ""
	}
	return cookie.Value
}

// IssueCookie creates a fresh session id, sets its cookie on the
// response and returns the id.
func (s *Store) IssueCookie(w http.ResponseWriter) string {
	sid := uuid.NewString()
	http.SetCookie(w, &http.Cookie{
		Name:     s.cfg.CookieName,
		Value:    sid,
		Path:     "/",
		HttpOnly: true,
		Secure:   s.cfg.Secure,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   int(s.cfg.TTL / time.Second),
	})
	return sid
}

// ClearCookie expires the session cookie on the response.
func (s *Store) ClearCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     s.cfg.CookieName,
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		Secure:   s.cfg.Secure,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   -1,
	})
}
