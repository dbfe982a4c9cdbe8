package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	apperrors "paintbooking/pkg/errors"
	"paintbooking/pkg/logger"
	"paintbooking/pkg/model"
	"paintbooking/pkg/session"

	"github.com/julienschmidt/httprouter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mockAuthService struct {
	registerFunc func(ctx context.Context, reg *model.Registration) error
	loginFunc    func(ctx context.Context, email, password string) (*model.User, error)
}

func (m *mockAuthService) Register(ctx context.Context, reg *model.Registration) error {
	if m.registerFunc != nil {
		return m.registerFunc(ctx, reg)
	}
	return nil
}

func (m *mockAuthService) Login(ctx context.Context, email, password string) (*model.User, error) {
	if m.loginFunc != nil {
		return m.loginFunc(ctx, email, password)
	}
	return nil, nil
}

func testLogger() *logger.Logger {
	return logger.New(logger.Config{Level: logger.ERROR, Service: "test"})
}

func postForm(path string, form url.Values) *http.Request {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return req
}

func TestRegister_RedirectsToLogin(t *testing.T) {
	var got *model.Registration
	svc := &mockAuthService{
		registerFunc: func(ctx context.Context, reg *model.Registration) error {
			got = reg
			return nil
		},
	}
	store := session.NewStore(time.Hour)
	defer store.Stop()
	h := NewAuthHandler(svc, store, testLogger())

	w := httptest.NewRecorder()
	h.Register(w, postForm("/register", url.Values{
		"fullname":         {"Jane Doe"},
		"email":            {"jane@x.com"},
		"password":         {"pw123"},
		"confirm_password": {"pw123"},
	}), httprouter.Params{})

	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/login", w.Header().Get("Location"))

	require.NotNil(t, got)
	assert.Equal(t, "Jane Doe", got.FullName)
	assert.Equal(t, "pw123", got.ConfirmPassword)
}

func TestRegister_PasswordMismatchBody(t *testing.T) {
	svc := &mockAuthService{
		registerFunc: func(ctx context.Context, reg *model.Registration) error {
			return apperrors.Validation("Passwords do not match")
		},
	}
	store := session.NewStore(time.Hour)
	defer store.Stop()
	h := NewAuthHandler(svc, store, testLogger())

	w := httptest.NewRecorder()
	h.Register(w, postForm("/register", url.Values{
		"fullname":         {"Jane Doe"},
		"email":            {"jane@x.com"},
		"password":         {"pw123"},
		"confirm_password": {"pw124"},
	}), httprouter.Params{})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Passwords do not match", w.Body.String())
}

func TestRegister_ConflictPrefixed(t *testing.T) {
	svc := &mockAuthService{
		registerFunc: func(ctx context.Context, reg *model.Registration) error {
			return apperrors.Conflict("a user with that email already exists")
		},
	}
	store := session.NewStore(time.Hour)
	defer store.Stop()
	h := NewAuthHandler(svc, store, testLogger())

	w := httptest.NewRecorder()
	h.Register(w, postForm("/register", url.Values{
		"fullname":         {"Jane Doe"},
		"email":            {"jane@x.com"},
		"password":         {"pw123"},
		"confirm_password": {"pw123"},
	}), httprouter.Params{})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Error registering user: a user with that email already exists", w.Body.String())
}

func TestLogin_EstablishesSessionAndRedirects(t *testing.T) {
	svc := &mockAuthService{
		loginFunc: func(ctx context.Context, email, password string) (*model.User, error) {
			return &model.User{ID: "user-1", Email: email}, nil
		},
	}
	store := session.NewStore(time.Hour)
	defer store.Stop()
	h := NewAuthHandler(svc, store, testLogger())

	w := httptest.NewRecorder()
	h.Login(w, postForm("/login", url.Values{
		"email":    {"jane@x.com"},
		"password": {"pw123"},
	}), httprouter.Params{})

	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/", w.Header().Get("Location"))

	var cookie *http.Cookie
	for _, c := range w.Result().Cookies() {
		if c.Name == session.CookieName {
			cookie = c
		}
	}
	require.NotNil(t, cookie, "login must set the session cookie")

	// The session bearing that token now holds the user's identifier.
	follow := httptest.NewRequest(http.MethodGet, "/", nil)
	follow.AddCookie(cookie)
	record := store.GetOrCreate(httptest.NewRecorder(), follow)
	assert.Equal(t, "user-1", record.UserID())
}

func TestLogin_Failures(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantBody   string
	}{
		{
			name:       "unknown email",
			err:        apperrors.NotFound("No user found with that email"),
			wantStatus: http.StatusBadRequest,
			wantBody:   "No user found with that email",
		},
		{
			name:       "wrong password",
			err:        apperrors.Unauthorized("Incorrect password"),
			wantStatus: http.StatusBadRequest,
			wantBody:   "Incorrect password",
		},
		{
			name:       "persistence failure",
			err:        apperrors.Internal("Failed to look up user", assert.AnError),
			wantStatus: http.StatusInternalServerError,
			wantBody:   "Server error: Failed to look up user",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &mockAuthService{
				loginFunc: func(ctx context.Context, email, password string) (*model.User, error) {
					return nil, tt.err
				},
			}
			store := session.NewStore(time.Hour)
			defer store.Stop()
			h := NewAuthHandler(svc, store, testLogger())

			w := httptest.NewRecorder()
			h.Login(w, postForm("/login", url.Values{
				"email":    {"jane@x.com"},
				"password": {"pw123"},
			}), httprouter.Params{})

			assert.Equal(t, tt.wantStatus, w.Code)
			assert.Equal(t, tt.wantBody, w.Body.String())

			for _, c := range w.Result().Cookies() {
				assert.NotEqual(t, session.CookieName, c.Name, "failed login must not establish a session")
			}
		})
	}
}
