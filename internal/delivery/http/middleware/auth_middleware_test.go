package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"medico-backend/config"
	"medico-backend/pkg/jwt"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestJWTService() *jwt.JWTService {
	return jwt.NewJWTService(config.JWTConfig{
		Secret:        "test-secret",
		AccessExpiry:  30 * time.Minute,
		RefreshExpiry: 7 * 24 * time.Hour,
	})
}

func okHandler(called *bool) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		*called = true
		w.WriteHeader(http.StatusOK)
	})
}

func TestAuthenticateValidToken(t *testing.T) {
	svc := newTestJWTService()
	m := NewAuthMiddleware(svc)
	userID := uuid.New()

	token, err := svc.GenerateAccessToken(userID, "patient@example.com", "patient")
	require.NoError(t, err)

	var gotID uuid.UUID
	var gotRole string
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotID, _ = GetUserIDFromContext(r.Context())
		gotRole, _ = GetRoleFromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	})

	r := httptest.NewRequest("GET", "/auth/me", nil)
	r.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()

	m.Authenticate(next).ServeHTTP(w, r)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, userID, gotID)
	assert.Equal(t, "patient", gotRole)
}

func TestAuthenticateMissingHeader(t *testing.T) {
	m := NewAuthMiddleware(newTestJWTService())

	called := false
	r := httptest.NewRequest("GET", "/auth/me", nil)
	w := httptest.NewRecorder()

	m.Authenticate(okHandler(&called)).ServeHTTP(w, r)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.False(t, called)
}

func TestAuthenticateMalformedHeader(t *testing.T) {
	m := NewAuthMiddleware(newTestJWTService())

	called := false
	r := httptest.NewRequest("GET", "/auth/me", nil)
	r.Header.Set("Authorization", "Token abc")
	w := httptest.NewRecorder()

	m.Authenticate(okHandler(&called)).ServeHTTP(w, r)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.False(t, called)
}

func TestAuthenticateRejectsRefreshToken(t *testing.T) {
	svc := newTestJWTService()
	m := NewAuthMiddleware(svc)

	token, err := svc.GenerateRefreshToken(uuid.New(), "patient@example.com", "patient")
	require.NoError(t, err)

	called := false
	r := httptest.NewRequest("GET", "/auth/me", nil)
	r.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()

	m.Authenticate(okHandler(&called)).ServeHTTP(w, r)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.False(t, called)
}
