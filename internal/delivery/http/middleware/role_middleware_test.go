package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"medico-backend/internal/domain/entity"

	"github.com/stretchr/testify/assert"
)

func requestWithRole(role string) *http.Request {
	r := httptest.NewRequest("GET", "/admin/users", nil)
	ctx := context.WithValue(r.Context(), UserRoleKey, role)
	return r.WithContext(ctx)
}

func TestRequireRoleAllowed(t *testing.T) {
	called := false
	w := httptest.NewRecorder()

	RequireRole(entity.RoleAdmin)(okHandler(&called)).ServeHTTP(w, requestWithRole("admin"))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.True(t, called)
}

func TestRequireRoleForbidden(t *testing.T) {
	called := false
	w := httptest.NewRecorder()

	RequireRole(entity.RoleAdmin)(okHandler(&called)).ServeHTTP(w, requestWithRole("patient"))

	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.False(t, called)
}

func TestRequireRoleMissingClaim(t *testing.T) {
	called := false
	w := httptest.NewRecorder()
	r := httptest.NewRequest("GET", "/admin/users", nil)

	RequireAdmin(okHandler(&called)).ServeHTTP(w, r)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.False(t, called)
}

func TestRequireAdminSecret(t *testing.T) {
	called := false
	w := httptest.NewRecorder()
	r := httptest.NewRequest("POST", "/internal/notifications/send", nil)
	r.Header.Set("X-Admin-Secret", "s3cret")

	RequireAdminSecret("s3cret")(okHandler(&called)).ServeHTTP(w, r)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.True(t, called)
}

func TestRequireAdminSecretWrongValue(t *testing.T) {
	called := false
	w := httptest.NewRecorder()
	r := httptest.NewRequest("POST", "/internal/notifications/send", nil)
	r.Header.Set("X-Admin-Secret", "wrong")

	RequireAdminSecret("s3cret")(okHandler(&called)).ServeHTTP(w, r)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.False(t, called)
}

func TestRequireAdminSecretDisabledWhenEmpty(t *testing.T) {
	called := false
	w := httptest.NewRecorder()
	r := httptest.NewRequest("POST", "/internal/notifications/send", nil)
	r.Header.Set("X-Admin-Secret", "")

	RequireAdminSecret("")(okHandler(&called)).ServeHTTP(w, r)

	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.False(t, called)
}
