package session

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/TheoNshimyimana/success-frontend/internal/api"
	"github.com/TheoNshimyimana/success-frontend/internal/config"
)

// fakeCache mimics the redis wrapper: values are stored as JSON so the
// round trip through (de)serialization is exercised for real.
type fakeCache struct {
	data map[string][]byte
	ttls map[string]time.Duration
}

func newFakeCache() *fakeCache {
	return &fakeCache{
		data: make(map[string][]byte),
		ttls: make(map[string]time.Duration),
	}
}

func (f *fakeCache) Get(_ context.Context, key string, result any) (bool, error) {
	raw, ok := f.data[key]
	if !ok {
		return false, nil
	}
	if err := json.Unmarshal(raw, result); err != nil {
		return false, err
	}
	return true, nil
}

func (f *fakeCache) Set(_ context.Context, key string, value any, expiration time.Duration) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	f.data[key] = raw
	f.ttls[key] = expiration
	return nil
}

func (f *fakeCache) Invalidate(_ context.Context, key string) error {
	delete(f.data, key)
	delete(f.ttls, key)
	return nil
}

func newTestStore() (*Store, *fakeCache) {
	cache := newFakeCache()
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
	store := NewStore(cache, config.SessionStore{
		CookieName: "stl_session",
		TTL:        24 * time.Hour,
	}, logger)
	return store, cache
}

func testSession() Session {
	return Session{
		User: api.User{
			ID:    "u1",
			Name:  "Alice",
			Email: "alice@gmail.com",
			Role:  api.RoleUser,
		},
		Token: "tok-123",
	}
}

func TestStore_SetGetRoundTrip(t *testing.T) {
	store, _ := newTestStore()
	ctx := context.Background()

	want := testSession()
	require.NoError(t, store.Set(ctx, "sid-1", want))

	got, ok := store.Get(ctx, "sid-1")
	require.True(t, ok)
	assert.Equal(t, want, *got)
}

func TestStore_GetAbsent(t *testing.T) {
	store, _ := newTestStore()

	_, ok := store.Get(context.Background(), "sid-unknown")
	assert.False(t, ok)

	_, ok = store.Get(context.Background(), "")
	assert.False(t, ok)
}

func TestStore_MalformedDataReadsAsAbsent(t *testing.T) {
	store, cache := newTestStore()
	ctx := context.Background()

	cache.data[sessionKey("sid-1")] = []byte("{not json")

	_, ok := store.Get(ctx, "sid-1")
	assert.False(t, ok)
}

func TestStore_PartialSessionReadsAsAbsent(t *testing.T) {
	store, cache := newTestStore()
	ctx := context.Background()

	tests := []struct {
		name string
		sess Session
	}{
		{name: "token without identity", sess: Session{Token: "tok-123"}},
		{name: "identity without token", sess: Session{User: api.User{ID: "u1"}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.NoError(t, cache.Set(ctx, sessionKey("sid-1"), tt.sess, time.Hour))

			_, ok := store.Get(ctx, "sid-1")
			assert.False(t, ok)
		})
	}
}

func TestStore_ClearIsIdempotent(t *testing.T) {
	store, _ := newTestStore()
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, "sid-1", testSession()))
	require.NoError(t, store.Clear(ctx, "sid-1"))

	_, ok := store.Get(ctx, "sid-1")
	assert.False(t, ok)

	require.NoError(t, store.Clear(ctx, "sid-1"))

	_, ok = store.Get(ctx, "sid-1")
	assert.False(t, ok)
}

func TestStore_CookieLifecycle(t *testing.T) {
	store, _ := newTestStore()

	w := httptest.NewRecorder()
	sid := store.IssueCookie(w)
	require.NotEmpty(t, sid)

	resp := w.Result()
	require.Len(t, resp.Cookies(), 1)
	issued := resp.Cookies()[0]
	assert.Equal(t, "stl_session", issued.Name)
	assert.Equal(t, sid, issued.Value)
	assert.True(t, issued.HttpOnly)

	r := httptest.NewRequest(http.MethodGet, "/", nil)
	r.AddCookie(issued)
	assert.Equal(t, sid, store.SID(r))

	w = httptest.NewRecorder()
	store.ClearCookie(w)
	cleared := w.Result().Cookies()[0]
	assert.Equal(t, -1, cleared.MaxAge)
	assert.Empty(t, cleared.Value)
}

func TestStore_NoCookieMeansNoSID(t *testing.T) {
	store, _ := newTestStore()
	r := httptest.NewRequest(http.MethodGet, "/", nil)
	assert.Empty(t, store.SID(r))
}
