package http

import (
	"net/http"

	"medico-backend/internal/delivery/http/handler"
	"medico-backend/internal/delivery/http/middleware"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type Router struct {
	router              *mux.Router
	authHandler         *handler.AuthHandler
	userHandler         *handler.UserHandler
	appointmentHandler  *handler.AppointmentHandler
	doctorHandler       *handler.DoctorHandler
	clinicHandler       *handler.ClinicHandler
	pharmacyHandler     *handler.PharmacyHandler
	notificationHandler *handler.NotificationHandler
	adminHandler        *handler.AdminHandler
	environmentHandler  *handler.EnvironmentHandler
	healthHandler       *handler.HealthHandler
	authMiddleware      *middleware.AuthMiddleware
	corsMiddleware      *middleware.CORSMiddleware
	rateLimiter         *middleware.IPRateLimiter
	adminAPISecret      string
}

func NewRouter(
	authHandler *handler.AuthHandler,
	userHandler *handler.UserHandler,
	appointmentHandler *handler.AppointmentHandler,
	doctorHandler *handler.DoctorHandler,
	clinicHandler *handler.ClinicHandler,
	pharmacyHandler *handler.PharmacyHandler,
	notificationHandler *handler.NotificationHandler,
	adminHandler *handler.AdminHandler,
	environmentHandler *handler.EnvironmentHandler,
	healthHandler *handler.HealthHandler,
	authMiddleware *middleware.AuthMiddleware,
	corsMiddleware *middleware.CORSMiddleware,
	rateLimiter *middleware.IPRateLimiter,
	adminAPISecret string,
) *Router {
	return &Router{
		router:              mux.NewRouter(),
		authHandler:         authHandler,
		userHandler:         userHandler,
		appointmentHandler:  appointmentHandler,
		doctorHandler:       doctorHandler,
		clinicHandler:       clinicHandler,
		pharmacyHandler:     pharmacyHandler,
		notificationHandler: notificationHandler,
		adminHandler:        adminHandler,
		environmentHandler:  environmentHandler,
		healthHandler:       healthHandler,
		authMiddleware:      authMiddleware,
		corsMiddleware:      corsMiddleware,
		rateLimiter:         rateLimiter,
		adminAPISecret:      adminAPISecret,
	}
}

func (r *Router) Setup() *mux.Router {
	// Health and metrics sit outside the versioned API.
	r.router.HandleFunc("/health", r.healthHandler.Health).Methods(http.MethodGet)
	r.router.HandleFunc("/health/detailed", r.healthHandler.DetailedHealth).Methods(http.MethodGet)
	r.router.Handle("/metrics", promhttp.Handler()).Methods(http.MethodGet)

	// API versioning
	api := r.router.PathPrefix("/api/v1").Subrouter()

	// Auth routes (public)
	auth := api.PathPrefix("/auth").Subrouter()
	auth.HandleFunc("/firebase/verify", r.authHandler.FirebaseLogin).Methods(http.MethodPost)
	auth.HandleFunc("/refresh", r.authHandler.RefreshToken).Methods(http.MethodPost)
	auth.HandleFunc("/logout", r.authHandler.Logout).Methods(http.MethodPost)

	// Auth routes (protected)
	authProtected := api.PathPrefix("/auth").Subrouter()
	authProtected.Use(r.authMiddleware.Authenticate)
	authProtected.HandleFunc("/me", r.authHandler.GetCurrentUser).Methods(http.MethodGet)

	// Profile routes (protected)
	users := api.PathPrefix("/users").Subrouter()
	users.Use(r.authMiddleware.Authenticate)
	users.HandleFunc("/me", r.userHandler.UpdateProfile).Methods(http.MethodPatch)
	users.HandleFunc("/me/patient-profile", r.userHandler.UpdatePatientProfile).Methods(http.MethodPatch)

	// Appointment routes (protected - patients act on their own rows)
	appointments := api.PathPrefix("/appointments").Subrouter()
	appointments.Use(r.authMiddleware.Authenticate)
	appointments.Use(middleware.RequirePatient)
	appointments.HandleFunc("", r.appointmentHandler.Create).Methods(http.MethodPost)
	appointments.HandleFunc("", r.appointmentHandler.ListMine).Methods(http.MethodGet)
	appointments.HandleFunc("/{id}", r.appointmentHandler.GetByID).Methods(http.MethodGet)
	appointments.HandleFunc("/{id}", r.appointmentHandler.Update).Methods(http.MethodPut)
	appointments.HandleFunc("/{id}/status", r.appointmentHandler.UpdateStatus).Methods(http.MethodPatch)
	appointments.HandleFunc("/{id}", r.appointmentHandler.Delete).Methods(http.MethodDelete)

	// Directory routes (public reads)
	doctors := api.PathPrefix("/doctors").Subrouter()
	doctors.HandleFunc("", r.doctorHandler.List).Methods(http.MethodGet)
	doctors.HandleFunc("/nearby", r.doctorHandler.SearchNearby).Methods(http.MethodGet)
	doctors.HandleFunc("/{id}", r.doctorHandler.GetByID).Methods(http.MethodGet)

	clinics := api.PathPrefix("/clinics").Subrouter()
	clinics.HandleFunc("", r.clinicHandler.List).Methods(http.MethodGet)
	clinics.HandleFunc("/nearby", r.clinicHandler.SearchNearby).Methods(http.MethodGet)
	clinics.HandleFunc("/{id}", r.clinicHandler.GetByID).Methods(http.MethodGet)

	pharmacies := api.PathPrefix("/pharmacies").Subrouter()
	pharmacies.HandleFunc("", r.pharmacyHandler.List).Methods(http.MethodGet)
	pharmacies.HandleFunc("/search/nearby", r.pharmacyHandler.SearchNearby).Methods(http.MethodGet)
	pharmacies.HandleFunc("/{id}", r.pharmacyHandler.GetByID).Methods(http.MethodGet)

	// Environmental conditions (public)
	api.HandleFunc("/environment/conditions", r.environmentHandler.GetLocalConditions).Methods(http.MethodGet)

	// Machine send endpoint, guarded by a shared secret instead of a user
	// session so backend jobs can call it. Registered before the
	// session-scoped notification routes so the auth middleware never sees
	// it.
	adminSend := api.PathPrefix("/notifications/admin-send").Subrouter()
	adminSend.Use(middleware.RequireAdminSecret(r.adminAPISecret))
	adminSend.HandleFunc("", r.notificationHandler.Send).Methods(http.MethodPost)

	// Notification routes (protected)
	notifications := api.PathPrefix("/notifications").Subrouter()
	notifications.Use(r.authMiddleware.Authenticate)
	notifications.HandleFunc("/tokens", r.notificationHandler.RegisterToken).Methods(http.MethodPost)
	notifications.HandleFunc("/tokens", r.notificationHandler.DeactivateToken).Methods(http.MethodDelete)
	notifications.HandleFunc("", r.notificationHandler.ListMine).Methods(http.MethodGet)
	notifications.HandleFunc("/{id}/read", r.notificationHandler.MarkRead).Methods(http.MethodPatch)

	// Admin routes (protected - admin only)
	admin := api.PathPrefix("/admin").Subrouter()
	admin.Use(r.authMiddleware.Authenticate)
	admin.Use(middleware.RequireAdmin)

	admin.HandleFunc("/users", r.adminHandler.ListUsers).Methods(http.MethodGet)
	admin.HandleFunc("/users/{id}", r.userHandler.GetUser).Methods(http.MethodGet)
	admin.HandleFunc("/users/{id}/role", r.userHandler.UpdateRole).Methods(http.MethodPatch)
	admin.HandleFunc("/users/{id}/deactivate", r.userHandler.DeactivateUser).Methods(http.MethodPost)
	admin.HandleFunc("/users/{id}/reactivate", r.userHandler.ReactivateUser).Methods(http.MethodPost)
	admin.HandleFunc("/dashboard", r.adminHandler.DashboardStats).Methods(http.MethodGet)

	admin.HandleFunc("/appointments", r.appointmentHandler.ListAll).Methods(http.MethodGet)
	admin.HandleFunc("/appointments/{id}", r.appointmentHandler.HardDelete).Methods(http.MethodDelete)

	admin.HandleFunc("/doctors", r.doctorHandler.Create).Methods(http.MethodPost)
	admin.HandleFunc("/doctors/{id}", r.doctorHandler.Update).Methods(http.MethodPut)
	admin.HandleFunc("/doctors/{id}", r.doctorHandler.Delete).Methods(http.MethodDelete)
	admin.HandleFunc("/doctors/{id}/verify", r.doctorHandler.Verify).Methods(http.MethodPost)
	admin.HandleFunc("/doctors/{id}/clinics", r.doctorHandler.AssignClinic).Methods(http.MethodPost)
	admin.HandleFunc("/doctors/{id}/clinics/{associationId}", r.doctorHandler.EndClinicAssociation).Methods(http.MethodDelete)

	admin.HandleFunc("/clinics", r.clinicHandler.Create).Methods(http.MethodPost)
	admin.HandleFunc("/clinics/{id}", r.clinicHandler.Update).Methods(http.MethodPut)
	admin.HandleFunc("/clinics/{id}", r.clinicHandler.Delete).Methods(http.MethodDelete)

	admin.HandleFunc("/pharmacies", r.pharmacyHandler.Create).Methods(http.MethodPost)
	admin.HandleFunc("/pharmacies/{id}", r.pharmacyHandler.Update).Methods(http.MethodPut)
	admin.HandleFunc("/pharmacies/{id}", r.pharmacyHandler.Deactivate).Methods(http.MethodDelete)
	admin.HandleFunc("/pharmacies/{id}/verify", r.pharmacyHandler.Verify).Methods(http.MethodPost)

	admin.HandleFunc("/notifications/broadcast", r.notificationHandler.Broadcast).Methods(http.MethodPost)
	admin.HandleFunc("/notifications/logs", r.notificationHandler.ListLogs).Methods(http.MethodGet)

	// Global middleware
	r.router.Use(r.corsMiddleware.Handle)
	r.router.Use(r.rateLimiter.Handle)
	r.router.Use(middleware.Metrics)

	return r.router
}
