package enrollact

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/TheoNshimyimana/success-frontend/internal/api"
	"github.com/TheoNshimyimana/success-frontend/internal/config"
	"github.com/TheoNshimyimana/success-frontend/internal/http/middlewarectx"
	"github.com/TheoNshimyimana/success-frontend/internal/session"
)

type ServiceMock struct {
	mock.Mock
}

func (m *ServiceMock) EnrollCourse(ctx context.Context, token, courseID string) error {
	args := m.Called(ctx, token, courseID)
	return args.Error(0)
}

func (m *ServiceMock) EnrollProgram(ctx context.Context, token, programID string) error {
	args := m.Called(ctx, token, programID)
	return args.Error(0)
}

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

func newTestHandler(service Service) (*Handler, *memCache) {
	logger := slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{}))
	cache := &memCache{data: map[string][]byte{}}
	store := session.NewStore(cache, config.SessionStore{CookieName: "stl_session", TTL: time.Hour}, logger)
	return New(logger, service, store), cache
}

// enrollRequest builds a POST /enroll/course/{id} request carrying the
// page path, with the chi route parameter and optional session context
// installed.
func enrollRequest(id, path string, sess *session.Session, sid string) *http.Request {
	body := strings.NewReader(`{"path":"` + path + `"}`)
	req := httptest.NewRequest(http.MethodPost, "/enroll/course/"+id, body)

	rctx := chi.NewRouteContext()
	rctx.URLParams.Add("id", id)
	ctx := context.WithValue(req.Context(), chi.RouteCtxKey, rctx)
	ctx = context.WithValue(ctx, middlewarectx.SIDKey, sid)
	if sess != nil {
		ctx = context.WithValue(ctx, middlewarectx.SessionKey, sess)
	}
	return req.WithContext(ctx)
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var got map[string]any
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&got))
	return got
}

func TestEnrollCourse_SignedOutRecordsIntent(t *testing.T) {
	handler, cache := newTestHandler(new(ServiceMock))

	rec := httptest.NewRecorder()
	handler.EnrollCourse(rec, enrollRequest("c1", "/training", nil, ""))

	assert.Equal(t, http.StatusOK, rec.Code)

	got := decodeBody(t, rec)
	assert.Equal(t, "OK", got["status"])
	data := got["data"].(map[string]any)
	assert.Equal(t, "/login?from=%2Ftraining", data["redirect"])

	// The click survives as an intent under the freshly issued cookie.
	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)

	var intent session.Intent
	found, err := cache.Get(context.Background(), "intent:"+cookies[0].Value, &intent)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, session.Intent{ItemID: "c1", Kind: session.IntentCourse, Path: "/training"}, intent)
}

func TestEnrollCourse_SchemeRelativePathFallsBack(t *testing.T) {
	handler, cache := newTestHandler(new(ServiceMock))

	rec := httptest.NewRecorder()
	handler.EnrollCourse(rec, enrollRequest("c1", "//evil.example/phish", nil, "sid1"))

	got := decodeBody(t, rec)
	data := got["data"].(map[string]any)
	assert.Equal(t, "/login?from=%2F", data["redirect"])

	var intent session.Intent
	found, err := cache.Get(context.Background(), "intent:sid1", &intent)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, "/", intent.Path)
}

func TestEnrollCourse_SignedOutReusesCookie(t *testing.T) {
	handler, cache := newTestHandler(new(ServiceMock))

	rec := httptest.NewRecorder()
	handler.EnrollCourse(rec, enrollRequest("c1", "/training", nil, "existing-sid"))

	assert.Empty(t, rec.Result().Cookies())

	var intent session.Intent
	found, err := cache.Get(context.Background(), "intent:existing-sid", &intent)
	require.NoError(t, err)
	assert.True(t, found)
}

func TestEnrollCourse_SignedInSubmits(t *testing.T) {
	serviceMock := new(ServiceMock)
	serviceMock.On("EnrollCourse", mock.Anything, "tok", "c1").Return(nil).Once()

	handler, _ := newTestHandler(serviceMock)
	sess := &session.Session{User: api.User{ID: "u1"}, Token: "tok"}

	rec := httptest.NewRecorder()
	handler.EnrollCourse(rec, enrollRequest("c1", "/training", sess, "sid1"))

	got := decodeBody(t, rec)
	assert.Equal(t, "OK", got["status"])
	data := got["data"].(map[string]any)
	assert.Contains(t, data["message"], "enrollment has been submitted successfully")

	serviceMock.AssertExpectations(t)
}

func TestEnrollCourse_ExpiredTokenClearsSession(t *testing.T) {
	serviceMock := new(ServiceMock)
	serviceMock.On("EnrollCourse", mock.Anything, "tok", "c1").
		Return(&api.Fault{Kind: api.FaultAuth, Status: http.StatusUnauthorized, Message: "Token expired"}).Once()

	handler, cache := newTestHandler(serviceMock)

	sess := session.Session{User: api.User{ID: "u1"}, Token: "tok"}
	require.NoError(t, cache.Set(context.Background(), "session:sid1", sess, time.Hour))

	rec := httptest.NewRecorder()
	handler.EnrollCourse(rec, enrollRequest("c1", "/training", &sess, "sid1"))

	got := decodeBody(t, rec)
	assert.Equal(t, "OK", got["status"])
	data := got["data"].(map[string]any)
	assert.Equal(t, "/login?from=%2Ftraining", data["redirect"])

	_, found := cache.data["session:sid1"]
	assert.False(t, found)
}

func TestEnrollCourse_BackendError(t *testing.T) {
	serviceMock := new(ServiceMock)
	serviceMock.On("EnrollCourse", mock.Anything, "tok", "c1").
		Return(&api.Fault{Kind: api.FaultServer, Status: http.StatusConflict, Message: "Already enrolled"}).Once()

	handler, _ := newTestHandler(serviceMock)
	sess := &session.Session{User: api.User{ID: "u1"}, Token: "tok"}

	rec := httptest.NewRecorder()
	handler.EnrollCourse(rec, enrollRequest("c1", "/training", sess, "sid1"))

	assert.Equal(t, http.StatusBadGateway, rec.Code)
	got := decodeBody(t, rec)
	assert.Equal(t, "Error", got["status"])
	assert.Equal(t, "Already enrolled", got["error"])
}

func TestEnrollProgram_SignedOutRecordsProgramIntent(t *testing.T) {
	handler, cache := newTestHandler(new(ServiceMock))

	body := strings.NewReader(`{"path":"/programs"}`)
	req := httptest.NewRequest(http.MethodPost, "/enroll/program/p1", body)
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add("id", "p1")
	req = req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))

	rec := httptest.NewRecorder()
	handler.EnrollProgram(rec, req)

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)

	var intent session.Intent
	found, err := cache.Get(context.Background(), "intent:"+cookies[0].Value, &intent)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, session.IntentProgram, intent.Kind)
	assert.Equal(t, "p1", intent.ItemID)
}
