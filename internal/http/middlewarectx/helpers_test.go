package middlewarectx

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/TheoNshimyimana/success-frontend/internal/api"
	"github.com/TheoNshimyimana/success-frontend/internal/config"
	"github.com/TheoNshimyimana/success-frontend/internal/session"
)

type memCache struct {
	data map[string][]byte
}

func (m *memCache) Get(_ context.Context, key string, result any) (bool, error) {
	raw, ok := m.data[key]
	if !ok {
		return false, nil
	}
	return true, json.Unmarshal(raw, result)
}

func (m *memCache) Set(_ context.Context, key string, value any, _ time.Duration) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	m.data[key] = raw
	return nil
}

func (m *memCache) Invalidate(_ context.Context, key string) error {
	delete(m.data, key)
	return nil
}

func testSessionConfig() config.SessionStore {
	return config.SessionStore{CookieName: "stl_session", TTL: time.Hour}
}

// seededStore returns a store holding one logged-in session and the
// cookie pointing at it.
func seededStore(t *testing.T, cfg config.SessionStore) (*session.Store, *http.Cookie) {
	t.Helper()

	store := session.NewStore(&memCache{data: map[string][]byte{}}, cfg, testLogger())

	w := httptest.NewRecorder()
	sid := store.IssueCookie(w)
	require.NoError(t, store.Set(context.Background(), sid, session.Session{
		User:  api.User{ID: "u1", Name: "Alice", Email: "alice@gmail.com", Role: api.RoleAdmin},
		Token: "tok",
	}))
	return store, w.Result().Cookies()[0]
}
