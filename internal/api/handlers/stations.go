package handlers

import (
	"log"
	"net/http"
	"strconv"

	"ev-trip-service/internal/api/dto"
	"ev-trip-service/internal/ports"
)

// StationHandler exposes read-only station listing.
type StationHandler struct {
	Repo ports.StationLister
}

func (h *StationHandler) List(w http.ResponseWriter, r *http.Request) {
	city := r.URL.Query().Get("city")

	limit := 50
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			writeError(w, r, http.StatusBadRequest, "limit must be an integer")
			return
		}
		limit = parsed
	}
	if limit < 1 || limit > 200 {
		writeError(w, r, http.StatusBadRequest, "limit must be between 1 and 200")
		return
	}

	stations, err := h.Repo.ListStations(r.Context(), ports.StationFilter{City: city, Limit: limit})
	if err != nil {
		log.Printf("list stations failed: %v", err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	res := dto.ListStationsResponse{
		Stations: make([]dto.StationResponse, 0, len(stations)),
	}
	for _, st := range stations {
		res.Stations = append(res.Stations, dto.StationResponse{
			ID:             st.ID,
			Name:           st.Name,
			Operator:       st.Operator,
			Latitude:       st.Latitude,
			Longitude:      st.Longitude,
			PowerKW:        st.PowerKW,
			PricePerKWh:    st.PricePerKWh,
			AvailablePorts: st.AvailablePorts,
			Address:        st.Address,
			City:           st.City,
		})
	}

	writeJSON(w, r, http.StatusOK, res)
}
