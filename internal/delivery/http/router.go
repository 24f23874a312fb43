package http

import (
	"net/http"

	"medibook-portal/internal/delivery/http/handler"
	"medibook-portal/internal/delivery/http/middleware"
	"medibook-portal/pkg/response"

	"github.com/gorilla/mux"
)

type Router struct {
	router             *mux.Router
	authHandler        *handler.AuthHandler
	doctorHandler      *handler.DoctorHandler
	appointmentHandler *handler.AppointmentHandler
	sessionMiddleware  *middleware.SessionMiddleware
	corsMiddleware     *middleware.CORSMiddleware
}

func NewRouter(
	authHandler *handler.AuthHandler,
	doctorHandler *handler.DoctorHandler,
	appointmentHandler *handler.AppointmentHandler,
	sessionMiddleware *middleware.SessionMiddleware,
	corsMiddleware *middleware.CORSMiddleware,
) *Router {
	return &Router{
		router:             mux.NewRouter(),
		authHandler:        authHandler,
		doctorHandler:      doctorHandler,
		appointmentHandler: appointmentHandler,
		sessionMiddleware:  sessionMiddleware,
		corsMiddleware:     corsMiddleware,
	}
}

func (r *Router) Setup() *mux.Router {
	// API versioning
	api := r.router.PathPrefix("/api/v1").Subrouter()

	// Health check
	api.HandleFunc("/health", r.healthCheck).Methods(http.MethodGet)

	// Auth routes (public)
	auth := api.PathPrefix("/auth").Subrouter()
	auth.HandleFunc("/register", r.authHandler.Register).Methods(http.MethodPost)
	auth.HandleFunc("/login", r.authHandler.Login).Methods(http.MethodPost)

	// Auth routes (protected)
	authProtected := api.PathPrefix("/auth").Subrouter()
	authProtected.Use(r.sessionMiddleware.RequireAuth)
	authProtected.HandleFunc("/logout", r.authHandler.Logout).Methods(http.MethodPost)
	authProtected.HandleFunc("/me", r.authHandler.GetCurrentUser).Methods(http.MethodGet)

	// Doctor catalog (public browse)
	api.HandleFunc("/doctors", r.doctorHandler.GetAllDoctors).Methods(http.MethodGet)
	api.HandleFunc("/doctors/{id}", r.doctorHandler.GetDoctor).Methods(http.MethodGet)

	// Admin routes (protected - admin only)
	admin := api.PathPrefix("/admin").Subrouter()
	admin.Use(r.sessionMiddleware.RequireAdmin)
	admin.HandleFunc("/doctors", r.doctorHandler.CreateDoctor).Methods(http.MethodPost)
	admin.HandleFunc("/appointments", r.appointmentHandler.GetAllAppointments).Methods(http.MethodGet)

	// Booking flow (protected)
	protected := api.PathPrefix("").Subrouter()
	protected.Use(r.sessionMiddleware.RequireAuth)
	protected.HandleFunc("/doctors/{id}/select", r.doctorHandler.SelectDoctor).Methods(http.MethodPost)
	protected.HandleFunc("/appointments", r.appointmentHandler.GetMyAppointments).Methods(http.MethodGet)
	protected.HandleFunc("/appointments", r.appointmentHandler.BookAppointment).Methods(http.MethodPost)
	protected.HandleFunc("/appointments/confirmation", r.appointmentHandler.GetConfirmation).Methods(http.MethodGet)
	protected.HandleFunc("/appointments/confirmation/confirm", r.appointmentHandler.ConfirmPending).Methods(http.MethodPost)
	protected.HandleFunc("/appointments/confirmation/dismiss", r.appointmentHandler.DismissPending).Methods(http.MethodPost)
	protected.HandleFunc("/appointments/{id}", r.appointmentHandler.RequestUpdate).Methods(http.MethodPut)
	protected.HandleFunc("/appointments/{id}", r.appointmentHandler.RequestDelete).Methods(http.MethodDelete)

	// Add CORS middleware
	r.router.Use(r.corsMiddleware.Handle)

	return r.router
}

func (r *Router) healthCheck(w http.ResponseWriter, req *http.Request) {
	response.Success(w, http.StatusOK, "Service is healthy", nil)
}
