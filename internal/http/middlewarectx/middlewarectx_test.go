package middlewarectx

import (
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/time/rate"

	"github.com/TheoNshimyimana/success-frontend/internal/api"
	"github.com/TheoNshimyimana/success-frontend/internal/session"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

func withSession(r *http.Request, sess *session.Session) *http.Request {
	ctx := r.Context()
	if sess != nil {
		ctx = context.WithValue(ctx, SessionKey, sess)
	}
	return r.WithContext(ctx)
}

func adminSession() *session.Session {
	return &session.Session{
		User:  api.User{ID: "u1", Name: "Alice", Role: api.RoleAdmin},
		Token: "tok",
	}
}

func userSession() *session.Session {
	return &session.Session{
		User:  api.User{ID: "u2", Name: "Bob", Role: api.RoleUser},
		Token: "tok",
	}
}

func TestRequireAuth(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	t.Run("logged out redirects to login with return path", func(t *testing.T) {
		r := httptest.NewRequest(http.MethodGet, "/profile", nil)
		w := httptest.NewRecorder()

		RequireAuth(next).ServeHTTP(w, r)

		assert.Equal(t, http.StatusSeeOther, w.Code)
		assert.Equal(t, "/login?from=%2Fprofile", w.Header().Get("Location"))
	})

	t.Run("logged in passes through", func(t *testing.T) {
		r := withSession(httptest.NewRequest(http.MethodGet, "/profile", nil), userSession())
		w := httptest.NewRecorder()

		RequireAuth(next).ServeHTTP(w, r)

		assert.Equal(t, http.StatusOK, w.Code)
	})
}

func TestRequireAdmin(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	t.Run("logged out redirects to login", func(t *testing.T) {
		r := httptest.NewRequest(http.MethodGet, "/admin/users", nil)
		w := httptest.NewRecorder()

		RequireAdmin(next).ServeHTTP(w, r)

		assert.Equal(t, http.StatusSeeOther, w.Code)
	})

	t.Run("plain user gets not found", func(t *testing.T) {
		r := withSession(httptest.NewRequest(http.MethodGet, "/admin/users", nil), userSession())
		w := httptest.NewRecorder()

		RequireAdmin(next).ServeHTTP(w, r)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("admin passes through", func(t *testing.T) {
		r := withSession(httptest.NewRequest(http.MethodGet, "/admin/users", nil), adminSession())
		w := httptest.NewRecorder()

		RequireAdmin(next).ServeHTTP(w, r)

		assert.Equal(t, http.StatusOK, w.Code)
	})
}

func TestLoadSession(t *testing.T) {
	cfg := testSessionConfig()
	store, cookie := seededStore(t, cfg)

	var got *session.Session
	var gotSID string
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got, _ = SessionFrom(r.Context())
		gotSID = SIDFrom(r.Context())
		w.WriteHeader(http.StatusOK)
	})

	t.Run("cookie with live session loads identity", func(t *testing.T) {
		r := httptest.NewRequest(http.MethodGet, "/", nil)
		r.AddCookie(cookie)
		w := httptest.NewRecorder()

		LoadSession(store, testLogger())(next).ServeHTTP(w, r)

		require.NotNil(t, got)
		assert.Equal(t, "u1", got.User.ID)
		assert.Equal(t, cookie.Value, gotSID)
	})

	t.Run("no cookie means logged out", func(t *testing.T) {
		got, gotSID = nil, "unset"
		r := httptest.NewRequest(http.MethodGet, "/", nil)
		w := httptest.NewRecorder()

		LoadSession(store, testLogger())(next).ServeHTTP(w, r)

		assert.Nil(t, got)
		assert.Empty(t, gotSID)
	})
}

func TestRateLimit(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	limited := RateLimit(testLogger(), rate.NewLimiter(rate.Every(time.Hour), 2))(next)

	for i := 0; i < 2; i++ {
		w := httptest.NewRecorder()
		limited.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/login", nil))
		assert.Equal(t, http.StatusOK, w.Code)
	}

	w := httptest.NewRecorder()
	limited.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/login", nil))
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
}
