package handlers

import (
	"errors"
	"log"
	"net/http"

	"ev-trip-service/internal/api/dto"
	"ev-trip-service/internal/domain"
	"ev-trip-service/internal/ports"
	"ev-trip-service/internal/services"
)

const defaultTargetArrivalSOC = 10

// TripHandler exposes the heuristic route planner.
type TripHandler struct {
	Stations ports.StationLister
}

// Plan validates the trip request and runs the planning heuristic.
// All field validation happens here, before any planning logic executes.
func (h *TripHandler) Plan(w http.ResponseWriter, r *http.Request) {
	var req dto.PlanTripRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	if req.VehicleBatteryKWh <= 0 {
		writeError(w, r, http.StatusBadRequest, "vehicle_battery_kwh must be greater than 0")
		return
	}
	if req.VehicleEfficiencyKWh100 <= 0 {
		writeError(w, r, http.StatusBadRequest, "vehicle_efficiency_kwh_per_100km must be greater than 0")
		return
	}
	if req.CurrentSOCPercent < 0 || req.CurrentSOCPercent > 100 {
		writeError(w, r, http.StatusBadRequest, "current_soc_percent must be between 0 and 100")
		return
	}

	targetSOC := float64(defaultTargetArrivalSOC)
	if req.TargetArrivalSOCPercent != nil {
		targetSOC = *req.TargetArrivalSOCPercent
	}
	if targetSOC < 0 || targetSOC > 100 {
		writeError(w, r, http.StatusBadRequest, "target_arrival_soc_percent must be between 0 and 100")
		return
	}

	tripReq := domain.TripRequest{
		Origin:                  domain.Coordinates{Lat: req.OriginLat, Lng: req.OriginLng},
		Destination:             domain.Coordinates{Lat: req.DestLat, Lng: req.DestLng},
		BatteryKWh:              req.VehicleBatteryKWh,
		EfficiencyKWhPer100Km:   req.VehicleEfficiencyKWh100,
		CurrentSOCPercent:       req.CurrentSOCPercent,
		TargetArrivalSOCPercent: targetSOC,
	}

	plan, err := services.PlanTrip(r.Context(), tripReq, h.Stations)
	if err != nil {
		if errors.Is(err, services.ErrNoStationsAvailable) {
			writeError(w, r, http.StatusBadRequest, "No stations available to plan route")
			return
		}
		log.Printf("plan trip failed: %v", err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	stops := make([]dto.RoutePlanStopResponse, 0, len(plan.Stops))
	for _, s := range plan.Stops {
		stops = append(stops, dto.RoutePlanStopResponse{
			StationID:     s.StationID,
			StationName:   s.StationName,
			Latitude:      s.Latitude,
			Longitude:     s.Longitude,
			ChargeMinutes: s.ChargeMinutes,
			Notes:         s.Notes,
		})
	}

	res := dto.RoutePlanResponse{
		OriginLat:                plan.Request.Origin.Lat,
		OriginLng:                plan.Request.Origin.Lng,
		DestLat:                  plan.Request.Destination.Lat,
		DestLng:                  plan.Request.Destination.Lng,
		VehicleBatteryKWh:        plan.Request.BatteryKWh,
		VehicleEfficiencyKWh100:  plan.Request.EfficiencyKWhPer100Km,
		CurrentSOCPercent:        plan.Request.CurrentSOCPercent,
		TargetArrivalSOCPercent:  plan.Request.TargetArrivalSOCPercent,
		TotalDistanceKm:          plan.TotalDistanceKm,
		EstimatedDurationMinutes: plan.EstimatedDurationMinutes,
		Stops:                    stops,
	}

	writeJSON(w, r, http.StatusOK, res)
}
