package handlers

import "net/http"

// Root returns the service banner.
func Root(w http.ResponseWriter, r *http.Request) {
	res := map[string]string{
		"name":    "Ampora",
		"message": "EV Trip Planner & Intelligent Charging API",
	}
	writeJSON(w, r, http.StatusOK, res)
}

// Health provides a minimal liveness check endpoint.
func Health(w http.ResponseWriter, r *http.Request) {
	res := map[string]string{"status": "ok"}
	writeJSON(w, r, http.StatusOK, res)
}
