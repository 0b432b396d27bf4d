package handlers

import (
	"log"
	"net/http"
	"strings"

	"ev-trip-service/internal/api/dto"
	"ev-trip-service/internal/domain"
	"ev-trip-service/internal/ports"
)

// VehicleHandler exposes vehicle registration and listing.
type VehicleHandler struct {
	Repo ports.VehicleRepository
}

func (h *VehicleHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateVehicleRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	if strings.TrimSpace(req.UserEmail) == "" {
		writeError(w, r, http.StatusBadRequest, "user_email is required")
		return
	}
	if req.BatteryKWh <= 0 {
		writeError(w, r, http.StatusBadRequest, "battery_kwh must be greater than 0")
		return
	}
	if req.EfficiencyKWhPer100Km <= 0 {
		writeError(w, r, http.StatusBadRequest, "efficiency_kwh_per_100km must be greater than 0")
		return
	}
	if req.MaxRangeKm <= 0 {
		writeError(w, r, http.StatusBadRequest, "max_range_km must be greater than 0")
		return
	}

	vehicle := &domain.Vehicle{
		UserEmail:             req.UserEmail,
		Make:                  req.Make,
		Model:                 req.Model,
		BatteryKWh:            req.BatteryKWh,
		EfficiencyKWhPer100Km: req.EfficiencyKWhPer100Km,
		MaxRangeKm:            req.MaxRangeKm,
	}

	id, err := h.Repo.CreateVehicle(r.Context(), vehicle)
	if err != nil {
		log.Printf("create vehicle failed: %v", err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	writeJSON(w, r, http.StatusOK, dto.CreateResponse{ID: id})
}

func (h *VehicleHandler) List(w http.ResponseWriter, r *http.Request) {
	userEmail := r.URL.Query().Get("user_email")

	vehicles, err := h.Repo.ListVehicles(r.Context(), userEmail)
	if err != nil {
		log.Printf("list vehicles failed: %v", err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	res := dto.ListVehiclesResponse{
		Vehicles: make([]dto.VehicleResponse, 0, len(vehicles)),
	}
	for _, v := range vehicles {
		res.Vehicles = append(res.Vehicles, dto.VehicleResponse{
			ID:                    v.ID,
			UserEmail:             v.UserEmail,
			Make:                  v.Make,
			Model:                 v.Model,
			BatteryKWh:            v.BatteryKWh,
			EfficiencyKWhPer100Km: v.EfficiencyKWhPer100Km,
			MaxRangeKm:            v.MaxRangeKm,
		})
	}

	writeJSON(w, r, http.StatusOK, res)
}
