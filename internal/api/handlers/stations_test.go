package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"ev-trip-service/internal/api/dto"
	"ev-trip-service/internal/domain"
	"ev-trip-service/internal/ports"
)

type recordingStationLister struct {
	stations   []*domain.ChargingStation
	lastFilter ports.StationFilter
}

func (s *recordingStationLister) ListStations(_ context.Context, filter ports.StationFilter) ([]*domain.ChargingStation, error) {
	s.lastFilter = filter
	return s.stations, nil
}

func listStations(h *StationHandler, target string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, target, nil)
	rec := httptest.NewRecorder()
	h.List(rec, req)
	return rec
}

func TestStationHandlerListDefaults(t *testing.T) {
	lister := &recordingStationLister{stations: []*domain.ChargingStation{
		{ID: 1, Name: "Downtown", Operator: "Ampora"},
	}}
	h := &StationHandler{Repo: lister}

	rec := listStations(h, "/api/stations")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	if lister.lastFilter.Limit != 50 {
		t.Errorf("limit = %d, want default 50", lister.lastFilter.Limit)
	}
	if lister.lastFilter.City != "" {
		t.Errorf("city = %q, want empty", lister.lastFilter.City)
	}

	var res dto.ListStationsResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &res); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(res.Stations) != 1 || res.Stations[0].Name != "Downtown" {
		t.Errorf("unexpected stations: %+v", res.Stations)
	}
}

func TestStationHandlerCityFilterPassedThrough(t *testing.T) {
	lister := &recordingStationLister{}
	h := &StationHandler{Repo: lister}

	rec := listStations(h, "/api/stations?city=San+Francisco&limit=10")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if lister.lastFilter.City != "San Francisco" || lister.lastFilter.Limit != 10 {
		t.Errorf("filter = %+v, want city San Francisco limit 10", lister.lastFilter)
	}
}

func TestStationHandlerLimitBounds(t *testing.T) {
	h := &StationHandler{Repo: &recordingStationLister{}}

	for _, target := range []string{
		"/api/stations?limit=0",
		"/api/stations?limit=-3",
		"/api/stations?limit=201",
		"/api/stations?limit=abc",
	} {
		rec := listStations(h, target)
		if rec.Code != http.StatusBadRequest {
			t.Errorf("%s: status = %d, want 400", target, rec.Code)
		}
	}
}
