package http

import (
	"net/http"

	"hospital-admin-api/internal/delivery/http/handler"
	"hospital-admin-api/internal/delivery/http/middleware"
	"hospital-admin-api/pkg/response"

	"github.com/gorilla/mux"
)

type Router struct {
	router             *mux.Router
	authHandler        *handler.AuthHandler
	userHandler        *handler.UserHandler
	patientHandler     *handler.PatientHandler
	doctorHandler      *handler.DoctorHandler
	appointmentHandler *handler.AppointmentHandler
	dashboardHandler   *handler.DashboardHandler
	auditLogHandler    *handler.AuditLogHandler
	authMiddleware     *middleware.AuthMiddleware
	corsMiddleware     *middleware.CORSMiddleware
	recoveryMiddleware *middleware.RecoveryMiddleware
	loggingMiddleware  *middleware.LoggingMiddleware
	authRateLimiter    *middleware.RateLimiter
}

func NewRouter(
	authHandler *handler.AuthHandler,
	userHandler *handler.UserHandler,
	patientHandler *handler.PatientHandler,
	doctorHandler *handler.DoctorHandler,
	appointmentHandler *handler.AppointmentHandler,
	dashboardHandler *handler.DashboardHandler,
	auditLogHandler *handler.AuditLogHandler,
	authMiddleware *middleware.AuthMiddleware,
	corsMiddleware *middleware.CORSMiddleware,
	recoveryMiddleware *middleware.RecoveryMiddleware,
	loggingMiddleware *middleware.LoggingMiddleware,
	authRateLimiter *middleware.RateLimiter,
) *Router {
	return &Router{
		router:             mux.NewRouter(),
		authHandler:        authHandler,
		userHandler:        userHandler,
		patientHandler:     patientHandler,
		doctorHandler:      doctorHandler,
		appointmentHandler: appointmentHandler,
		dashboardHandler:   dashboardHandler,
		auditLogHandler:    auditLogHandler,
		authMiddleware:     authMiddleware,
		corsMiddleware:     corsMiddleware,
		recoveryMiddleware: recoveryMiddleware,
		loggingMiddleware:  loggingMiddleware,
		authRateLimiter:    authRateLimiter,
	}
}

// Setup registers every route and wraps the mux with the global middleware chain.
// CORS sits outside the mux so preflight requests never need a matching route.
func (r *Router) Setup() http.Handler {
	r.router.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		response.NotFound(w, req, "Route not found")
	})
	r.router.MethodNotAllowedHandler = http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		response.Error(w, req, http.StatusMethodNotAllowed, "Method not allowed")
	})

	// API versioning
	api := r.router.PathPrefix("/api/v1").Subrouter()

	// Health check
	api.HandleFunc("/health", r.healthCheck).Methods(http.MethodGet)

	// Auth routes (public, rate limited)
	auth := api.PathPrefix("/auth").Subrouter()
	auth.Handle("/register", r.authRateLimiter.Handle(http.HandlerFunc(r.authHandler.Register))).Methods(http.MethodPost)
	auth.Handle("/login", r.authRateLimiter.Handle(http.HandlerFunc(r.authHandler.Login))).Methods(http.MethodPost)
	auth.HandleFunc("/refresh-token", r.authHandler.RefreshToken).Methods(http.MethodPost)

	// Everything below requires a live access token
	protected := api.NewRoute().Subrouter()
	protected.Use(r.authMiddleware.Authenticate)

	protected.HandleFunc("/auth/profile", r.authHandler.Profile).Methods(http.MethodGet)
	protected.HandleFunc("/auth/logout", r.authHandler.Logout).Methods(http.MethodPost)

	// Users
	protected.HandleFunc("/users", r.userHandler.GetAllUsers).Methods(http.MethodGet)
	protected.HandleFunc("/users/me", r.userHandler.GetMe).Methods(http.MethodGet)
	protected.HandleFunc("/users/me", r.userHandler.UpdateMe).Methods(http.MethodPatch, http.MethodPut)
	protected.HandleFunc("/users/{id}", r.userHandler.GetUser).Methods(http.MethodGet)
	protected.HandleFunc("/users/{id}", r.userHandler.UpdateUser).Methods(http.MethodPatch, http.MethodPut)
	protected.HandleFunc("/users/{id}", r.userHandler.DeleteUser).Methods(http.MethodDelete)

	// Patients
	protected.HandleFunc("/patients", r.patientHandler.CreatePatient).Methods(http.MethodPost)
	protected.HandleFunc("/patients", r.patientHandler.GetAllPatients).Methods(http.MethodGet)
	protected.HandleFunc("/patients/{id}", r.patientHandler.GetPatient).Methods(http.MethodGet)
	protected.HandleFunc("/patients/{id}", r.patientHandler.UpdatePatient).Methods(http.MethodPatch, http.MethodPut)
	protected.HandleFunc("/patients/{id}", r.patientHandler.DeletePatient).Methods(http.MethodDelete)

	// Doctors
	protected.HandleFunc("/doctors", r.doctorHandler.CreateDoctor).Methods(http.MethodPost)
	protected.HandleFunc("/doctors", r.doctorHandler.GetAllDoctors).Methods(http.MethodGet)
	protected.HandleFunc("/doctors/{id}", r.doctorHandler.GetDoctor).Methods(http.MethodGet)
	protected.HandleFunc("/doctors/{id}/schedule", r.doctorHandler.GetSchedule).Methods(http.MethodGet)
	protected.HandleFunc("/doctors/{id}", r.doctorHandler.UpdateDoctor).Methods(http.MethodPatch, http.MethodPut)
	protected.HandleFunc("/doctors/{id}", r.doctorHandler.DeleteDoctor).Methods(http.MethodDelete)

	// Appointments
	protected.HandleFunc("/appointments", r.appointmentHandler.CreateAppointment).Methods(http.MethodPost)
	protected.HandleFunc("/appointments", r.appointmentHandler.GetAllAppointments).Methods(http.MethodGet)
	protected.HandleFunc("/appointments/doctor/{doctorId}", r.appointmentHandler.GetAppointmentsByDoctor).Methods(http.MethodGet)
	protected.HandleFunc("/appointments/patient/{patientId}", r.appointmentHandler.GetAppointmentsByPatient).Methods(http.MethodGet)
	protected.HandleFunc("/appointments/{id}", r.appointmentHandler.GetAppointment).Methods(http.MethodGet)
	protected.HandleFunc("/appointments/{id}", r.appointmentHandler.UpdateAppointment).Methods(http.MethodPatch, http.MethodPut)
	protected.HandleFunc("/appointments/{id}/confirm", r.appointmentHandler.ConfirmAppointment).Methods(http.MethodPatch)
	protected.HandleFunc("/appointments/{id}/cancel", r.appointmentHandler.CancelAppointment).Methods(http.MethodPatch)
	protected.HandleFunc("/appointments/{id}/complete", r.appointmentHandler.CompleteAppointment).Methods(http.MethodPatch)
	protected.HandleFunc("/appointments/{id}", r.appointmentHandler.DeleteAppointment).Methods(http.MethodDelete)

	// Dashboard
	protected.HandleFunc("/dashboard", r.dashboardHandler.GetSummary).Methods(http.MethodGet)

	// Audit logs
	protected.HandleFunc("/audit-logs", r.auditLogHandler.GetAllAuditLogs).Methods(http.MethodGet)
	protected.HandleFunc("/audit-logs/{id}", r.auditLogHandler.GetAuditLog).Methods(http.MethodGet)

	var h http.Handler = r.router
	h = r.corsMiddleware.Handle(h)
	h = r.loggingMiddleware.Handle(h)
	h = r.recoveryMiddleware.Handle(h)
	return h
}

func (r *Router) healthCheck(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status": "ok"}`))
}
