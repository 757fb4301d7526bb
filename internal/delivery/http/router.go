package http

import (
	"net/http"

	"doctor-booking-api/internal/delivery/http/handler"
	"doctor-booking-api/internal/delivery/http/middleware"

	"github.com/gorilla/mux"
)

type Router struct {
	router             *mux.Router
	authHandler        *handler.AuthHandler
	doctorHandler      *handler.DoctorHandler
	appointmentHandler *handler.AppointmentHandler
	authMiddleware     *middleware.AuthMiddleware
	corsMiddleware     *middleware.CORSMiddleware
}

func NewRouter(
	authHandler *handler.AuthHandler,
	doctorHandler *handler.DoctorHandler,
	appointmentHandler *handler.AppointmentHandler,
	authMiddleware *middleware.AuthMiddleware,
	corsMiddleware *middleware.CORSMiddleware,
) *Router {
	return &Router{
		router:             mux.NewRouter(),
		authHandler:        authHandler,
		doctorHandler:      doctorHandler,
		appointmentHandler: appointmentHandler,
		authMiddleware:     authMiddleware,
		corsMiddleware:     corsMiddleware,
	}
}

func (r *Router) Setup() *mux.Router {
	api := r.router.PathPrefix("/api").Subrouter()

	// Health check
	api.HandleFunc("/health", r.healthCheck).Methods(http.MethodGet)

	// Auth routes (public)
	auth := api.PathPrefix("/auth").Subrouter()
	auth.HandleFunc("/register", r.authHandler.Register).Methods(http.MethodPost)
	auth.HandleFunc("/login", r.authHandler.Login).Methods(http.MethodPost)

	// User routes (protected)
	users := api.PathPrefix("/users").Subrouter()
	users.Use(r.authMiddleware.Authenticate)
	users.HandleFunc("/profile", r.authHandler.GetCurrentUser).Methods(http.MethodGet)

	// Public doctor directory
	api.HandleFunc("/doctors", r.doctorHandler.ListApproved).Methods(http.MethodGet)

	// Protected doctor routes, role-gated per endpoint
	doctors := api.PathPrefix("/doctors").Subrouter()
	doctors.Use(r.authMiddleware.Authenticate)
	doctors.Handle("/profile", middleware.RequireDoctor(http.HandlerFunc(r.doctorHandler.GetOwnProfile))).Methods(http.MethodGet)
	doctors.Handle("/profile", middleware.RequireDoctor(http.HandlerFunc(r.doctorHandler.UpdateOwnProfile))).Methods(http.MethodPut)
	doctors.Handle("/pending", middleware.RequireAdmin(http.HandlerFunc(r.doctorHandler.ListPending))).Methods(http.MethodGet)
	doctors.Handle("/approve/{id}", middleware.RequireAdmin(http.HandlerFunc(r.doctorHandler.Approve))).Methods(http.MethodPut)

	// Appointment routes (protected)
	appointments := api.PathPrefix("/appointments").Subrouter()
	appointments.Use(r.authMiddleware.Authenticate)
	appointments.HandleFunc("/book", r.appointmentHandler.Book).Methods(http.MethodPost)
	appointments.HandleFunc("/my-appointments", r.appointmentHandler.ListMine).Methods(http.MethodGet)
	appointments.HandleFunc("/{id}/status", r.appointmentHandler.UpdateStatus).Methods(http.MethodPut)

	// Add CORS middleware
	r.router.Use(r.corsMiddleware.Handle)

	return r.router
}

func (r *Router) healthCheck(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status": "ok"}`))
}
