package signup

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/TheoNshimyimana/success-frontend/internal/api"
	"github.com/TheoNshimyimana/success-frontend/internal/config"
	"github.com/TheoNshimyimana/success-frontend/internal/session"
	"github.com/TheoNshimyimana/success-frontend/internal/web"
)

type ServiceMock struct {
	mock.Mock
}

func (m *ServiceMock) Register(ctx context.Context, req api.RegisterRequest) (*api.AuthResponse, error) {
	args := m.Called(ctx, req)
	resp, _ := args.Get(0).(*api.AuthResponse)
	return resp, args.Error(1)
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

func newTestHandler(t *testing.T, service Service) (*Handler, *memCache) {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{}))
	renderer, err := web.NewRenderer(logger)
	require.NoError(t, err)

	cache := &memCache{data: map[string][]byte{}}
	store := session.NewStore(cache, config.SessionStore{CookieName: "stl_session", TTL: time.Hour}, logger)

	return New(logger, service, store, renderer), cache
}

func postForm(form url.Values) *http.Request {
	req := httptest.NewRequest(http.MethodPost, "/signup", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return req
}

func validForm() url.Values {
	return url.Values{
		"name":             {"Alice"},
		"email":            {"alice@gmail.com"},
		"phone":            {"0788000000"},
		"password":         {"pass1word"},
		"confirm_password": {"pass1word"},
	}
}

func TestSubmit_Success(t *testing.T) {
	serviceMock := new(ServiceMock)
	serviceMock.On("Register", mock.Anything, api.RegisterRequest{
		Name:     "Alice",
		Email:    "alice@gmail.com",
		Phone:    "0788000000",
		Password: "pass1word",
	}).Return(&api.AuthResponse{
		Token: "tok",
		User:  api.User{ID: "u1", Name: "Alice", Email: "alice@gmail.com", Role: api.RoleUser},
	}, nil).Once()

	handler, cache := newTestHandler(t, serviceMock)

	rec := httptest.NewRecorder()
	handler.Submit(rec, postForm(validForm()))

	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/", rec.Header().Get("Location"))

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)

	var sess session.Session
	found, err := cache.Get(context.Background(), "session:"+cookies[0].Value, &sess)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, "u1", sess.User.ID)

	serviceMock.AssertExpectations(t)
}

func TestSubmit_LocalValidation(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(url.Values)
		wantMsg string
	}{
		{
			name:    "password mismatch",
			mutate:  func(f url.Values) { f.Set("confirm_password", "other1pass") },
			wantMsg: "Passwords do not match",
		},
		{
			name:    "weak password",
			mutate:  func(f url.Values) { f.Set("password", "abc"); f.Set("confirm_password", "abc") },
			wantMsg: "Password must be at least 5 characters and include both letters and numbers",
		},
		{
			name:    "bad email",
			mutate:  func(f url.Values) { f.Set("email", "not-an-email") },
			wantMsg: "Invalid email format",
		},
		{
			name:    "unsupported provider",
			mutate:  func(f url.Values) { f.Set("email", "alice@corp.example") },
			wantMsg: "Email provider not supported. Use Gmail, Yahoo, Outlook, AOL, etc.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// The backend must never see an invalid form.
			serviceMock := new(ServiceMock)
			handler, _ := newTestHandler(t, serviceMock)

			form := validForm()
			tt.mutate(form)

			rec := httptest.NewRecorder()
			handler.Submit(rec, postForm(form))

			assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
			assert.Contains(t, rec.Body.String(), tt.wantMsg)
			serviceMock.AssertNotCalled(t, "Register", mock.Anything, mock.Anything)
		})
	}
}

func TestSubmit_BackendRejects(t *testing.T) {
	serviceMock := new(ServiceMock)
	serviceMock.On("Register", mock.Anything, mock.Anything).
		Return(nil, &api.Fault{Kind: api.FaultValidation, Status: http.StatusConflict, Message: "Email already registered"}).Once()

	handler, cache := newTestHandler(t, serviceMock)

	rec := httptest.NewRecorder()
	handler.Submit(rec, postForm(validForm()))

	assert.Equal(t, http.StatusBadGateway, rec.Code)
	assert.Contains(t, rec.Body.String(), "Email already registered")
	assert.Empty(t, cache.data)
}
