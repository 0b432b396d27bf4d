package api

import (
	"net/http"

	"github.com/gorilla/mux"

	"ev-trip-service/internal/api/handlers"
	"ev-trip-service/internal/ports"
)

// NewRouter wires HTTP handlers with their dependencies and returns an http.Handler.
// This is the API composition root (handlers stay unaware of concrete adapters).
func NewRouter(
	users ports.UserRepository,
	vehicles ports.VehicleRepository,
	stations ports.StationRepository,
	bookings ports.BookingRepository,
	pricingPlans ports.PricingPlanRepository,
) http.Handler {
	userHandler := &handlers.UserHandler{Repo: users}
	vehicleHandler := &handlers.VehicleHandler{Repo: vehicles}
	stationHandler := &handlers.StationHandler{Repo: stations}
	bookingHandler := &handlers.BookingHandler{Stations: stations, Bookings: bookings}
	pricingHandler := &handlers.PricingPlanHandler{Repo: pricingPlans}
	tripHandler := &handlers.TripHandler{Stations: stations}

	r := mux.NewRouter()

	r.HandleFunc("/", handlers.Root).Methods(http.MethodGet)
	r.HandleFunc("/health", handlers.Health).Methods(http.MethodGet)

	apiRouter := r.PathPrefix("/api").Subrouter()
	apiRouter.HandleFunc("/users", userHandler.Create).Methods(http.MethodPost)
	apiRouter.HandleFunc("/vehicles", vehicleHandler.Create).Methods(http.MethodPost)
	apiRouter.HandleFunc("/vehicles", vehicleHandler.List).Methods(http.MethodGet)
	apiRouter.HandleFunc("/stations", stationHandler.List).Methods(http.MethodGet)
	apiRouter.HandleFunc("/plans", pricingHandler.List).Methods(http.MethodGet)
	apiRouter.HandleFunc("/bookings", bookingHandler.Create).Methods(http.MethodPost)
	apiRouter.HandleFunc("/bookings", bookingHandler.List).Methods(http.MethodGet)
	apiRouter.HandleFunc("/plan-trip", tripHandler.Plan).Methods(http.MethodPost)

	return loggingMiddleware(corsMiddleware(r))
}
