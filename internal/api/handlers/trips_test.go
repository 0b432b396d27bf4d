package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"ev-trip-service/internal/api/dto"
	"ev-trip-service/internal/domain"
	"ev-trip-service/internal/ports"
)

type stubStationLister struct {
	stations []*domain.ChargingStation
}

func (s *stubStationLister) ListStations(_ context.Context, _ ports.StationFilter) ([]*domain.ChargingStation, error) {
	return s.stations, nil
}

func planTrip(t *testing.T, h *TripHandler, body string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(http.MethodPost, "/api/plan-trip", strings.NewReader(body))
	rec := httptest.NewRecorder()
	h.Plan(rec, req)
	return rec
}

const feasibleBody = `{
	"origin_lat": 37.7749, "origin_lng": -122.4194,
	"dest_lat": 37.3875, "dest_lng": -122.0575,
	"vehicle_battery_kwh": 75,
	"vehicle_efficiency_kwh_per_100km": 18,
	"current_soc_percent": 90
}`

const infeasibleBody = `{
	"origin_lat": 37.7749, "origin_lng": -122.4194,
	"dest_lat": 37.3875, "dest_lng": -122.0575,
	"vehicle_battery_kwh": 40,
	"vehicle_efficiency_kwh_per_100km": 20,
	"current_soc_percent": 10
}`

func TestTripHandlerDirectPlan(t *testing.T) {
	h := &TripHandler{Stations: &stubStationLister{}}

	rec := planTrip(t, h, feasibleBody)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200 (body: %s)", rec.Code, rec.Body.String())
	}

	var res dto.RoutePlanResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &res); err != nil {
		t.Fatalf("decode response: %v", err)
	}

	if len(res.Stops) != 0 {
		t.Errorf("stops = %d, want 0", len(res.Stops))
	}
	if res.TargetArrivalSOCPercent != 10 {
		t.Errorf("target soc = %v, want default 10", res.TargetArrivalSOCPercent)
	}
	if res.TotalDistanceKm <= 0 {
		t.Errorf("total distance = %v, want positive", res.TotalDistanceKm)
	}
	if res.OriginLat != 37.7749 || res.DestLng != -122.0575 {
		t.Errorf("response does not echo request coordinates: %+v", res)
	}
}

func TestTripHandlerSingleStopPlan(t *testing.T) {
	power := 150.0
	lat, lng := 37.6, -122.3
	h := &TripHandler{Stations: &stubStationLister{stations: []*domain.ChargingStation{
		{ID: 2, Name: "Fast Hub", PowerKW: &power, Latitude: &lat, Longitude: &lng},
	}}}

	rec := planTrip(t, h, infeasibleBody)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200 (body: %s)", rec.Code, rec.Body.String())
	}

	var res dto.RoutePlanResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &res); err != nil {
		t.Fatalf("decode response: %v", err)
	}

	if len(res.Stops) != 1 {
		t.Fatalf("stops = %d, want 1", len(res.Stops))
	}
	if res.Stops[0].ChargeMinutes != 25 {
		t.Errorf("charge minutes = %d, want 25", res.Stops[0].ChargeMinutes)
	}
	if res.Stops[0].StationID != 2 {
		t.Errorf("station id = %d, want 2", res.Stops[0].StationID)
	}
}

func TestTripHandlerNoStations(t *testing.T) {
	h := &TripHandler{Stations: &stubStationLister{}}

	rec := planTrip(t, h, infeasibleBody)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "No stations available to plan route") {
		t.Errorf("body = %s, want the no-stations message", rec.Body.String())
	}
}

func TestTripHandlerValidation(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"not json", `{`},
		{"unknown field", `{"bogus": 1}`},
		{
			"zero battery",
			`{"origin_lat":0,"origin_lng":0,"dest_lat":1,"dest_lng":1,"vehicle_battery_kwh":0,"vehicle_efficiency_kwh_per_100km":18,"current_soc_percent":50}`,
		},
		{
			"negative efficiency",
			`{"origin_lat":0,"origin_lng":0,"dest_lat":1,"dest_lng":1,"vehicle_battery_kwh":75,"vehicle_efficiency_kwh_per_100km":-1,"current_soc_percent":50}`,
		},
		{
			"soc above 100",
			`{"origin_lat":0,"origin_lng":0,"dest_lat":1,"dest_lng":1,"vehicle_battery_kwh":75,"vehicle_efficiency_kwh_per_100km":18,"current_soc_percent":150}`,
		},
		{
			"target soc below 0",
			`{"origin_lat":0,"origin_lng":0,"dest_lat":1,"dest_lng":1,"vehicle_battery_kwh":75,"vehicle_efficiency_kwh_per_100km":18,"current_soc_percent":50,"target_arrival_soc_percent":-5}`,
		},
	}

	h := &TripHandler{Stations: &stubStationLister{}}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := planTrip(t, h, tt.body)
			if rec.Code != http.StatusBadRequest {
				t.Fatalf("status = %d, want 400 (body: %s)", rec.Code, rec.Body.String())
			}
		})
	}
}
