package handlers

import (
	"errors"
	"log"
	"net/http"
	"strings"

	"ev-trip-service/internal/api/dto"
	"ev-trip-service/internal/ports"
	"ev-trip-service/internal/services"
)

// BookingHandler exposes charging slot reservation and listing.
type BookingHandler struct {
	Stations ports.StationRepository
	Bookings ports.BookingRepository
}

func (h *BookingHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateBookingRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	if strings.TrimSpace(req.UserEmail) == "" {
		writeError(w, r, http.StatusBadRequest, "user_email is required")
		return
	}
	if req.StationID <= 0 {
		writeError(w, r, http.StatusBadRequest, "station_id is required")
		return
	}
	if req.StartTime.IsZero() {
		writeError(w, r, http.StatusBadRequest, "start_time is required")
		return
	}
	if req.DurationMinutes <= 0 {
		writeError(w, r, http.StatusBadRequest, "duration_minutes must be greater than 0")
		return
	}

	svcReq := services.BookStationRequest{
		UserEmail:       req.UserEmail,
		StationID:       req.StationID,
		VehicleMake:     req.VehicleMake,
		VehicleModel:    req.VehicleModel,
		StartTime:       req.StartTime,
		DurationMinutes: req.DurationMinutes,
	}

	id, err := services.BookStation(r.Context(), svcReq, h.Stations, h.Bookings)
	if err != nil {
		if errors.Is(err, services.ErrStationNotFound) {
			writeError(w, r, http.StatusNotFound, "Station not found")
			return
		}
		log.Printf("book station failed: %v", err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	writeJSON(w, r, http.StatusOK, dto.CreateResponse{ID: id})
}

func (h *BookingHandler) List(w http.ResponseWriter, r *http.Request) {
	userEmail := r.URL.Query().Get("user_email")

	bookings, err := h.Bookings.ListBookings(r.Context(), userEmail)
	if err != nil {
		log.Printf("list bookings failed: %v", err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	res := dto.ListBookingsResponse{
		Bookings: make([]dto.BookingResponse, 0, len(bookings)),
	}
	for _, b := range bookings {
		res.Bookings = append(res.Bookings, dto.BookingResponse{
			ID:              b.ID,
			UserEmail:       b.UserEmail,
			StationID:       b.StationID,
			VehicleMake:     b.VehicleMake,
			VehicleModel:    b.VehicleModel,
			StartTime:       b.StartTime,
			DurationMinutes: b.DurationMinutes,
			Status:          b.Status,
		})
	}

	writeJSON(w, r, http.StatusOK, res)
}
