package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"medico-backend/internal/delivery/http/handler"
	"medico-backend/internal/delivery/http/middleware"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRouter() *mux.Router {
	r := NewRouter(
		handler.NewAuthHandler(nil, nil),
		handler.NewUserHandler(nil, nil),
		handler.NewAppointmentHandler(nil, nil),
		handler.NewDoctorHandler(nil, nil),
		handler.NewClinicHandler(nil, nil),
		handler.NewPharmacyHandler(nil, nil),
		handler.NewNotificationHandler(nil, nil),
		handler.NewAdminHandler(nil),
		handler.NewEnvironmentHandler(nil),
		handler.NewHealthHandler(nil, nil, "test"),
		middleware.NewAuthMiddleware(nil),
		middleware.NewCORSMiddleware([]string{"*"}),
		middleware.NewIPRateLimiter(1000),
		"machine-secret",
	)
	return r.Setup()
}

// pathTemplate resolves a request to the route that would serve it,
// without invoking the handler.
func pathTemplate(t *testing.T, router *mux.Router, method, target string) string {
	t.Helper()
	req := httptest.NewRequest(method, target, nil)
	var match mux.RouteMatch
	require.True(t, router.Match(req, &match), "%s %s did not match any route", method, target)
	template, err := match.Route.GetPathTemplate()
	require.NoError(t, err)
	return template
}

func TestNearbySearchRoutes(t *testing.T) {
	router := newTestRouter()

	assert.Equal(t, "/api/v1/pharmacies/search/nearby",
		pathTemplate(t, router, http.MethodGet, "/api/v1/pharmacies/search/nearby?latitude=-6.2&longitude=106.81"))
	assert.Equal(t, "/api/v1/doctors/nearby",
		pathTemplate(t, router, http.MethodGet, "/api/v1/doctors/nearby"))
	assert.Equal(t, "/api/v1/clinics/nearby",
		pathTemplate(t, router, http.MethodGet, "/api/v1/clinics/nearby"))
}

func TestAdminSendRouteBypassesSessionAuth(t *testing.T) {
	router := newTestRouter()

	assert.Equal(t, "/api/v1/notifications/admin-send",
		pathTemplate(t, router, http.MethodPost, "/api/v1/notifications/admin-send"))
}
