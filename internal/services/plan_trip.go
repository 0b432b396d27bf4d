package services

import (
	"context"
	"errors"
	"fmt"
	"math"

	"ev-trip-service/internal/domain"
	"ev-trip-service/internal/ports"
)

// Returned when the infeasible branch finds no candidate stations.
// Handlers map it to a client-facing failure.
var ErrNoStationsAvailable = errors.New("no stations available to plan route")

// Fixed planning parameters. These are design constants, not configuration.
const (
	averageSpeedKmh       = 90
	safetyBufferFactor    = 1.05
	stationCandidateLimit = 50
	fastChargePowerKW     = 150
	fastChargeMinutes     = 25
	slowChargeMinutes     = 35
	defaultPowerKW        = 50
)

const stopNote = "Heuristic stop based on fastest available charger"

// PlanTrip computes a heuristic route plan between the request's origin and
// destination, inserting at most one charging stop.
//
// The trip is driveable without charging when the vehicle's usable energy
// covers the straight-line distance plus a 5% safety buffer. Otherwise the
// highest-power station (of up to 50 candidates) is inserted as a single
// stop. The duration estimate assumes a constant 90 km/h average speed and
// does not split the drive around the stop.
//
// The function is stateless and performs at most one read through the
// station port; identical inputs against unchanged station data yield
// identical plans.
func PlanTrip(ctx context.Context, req domain.TripRequest, stations ports.StationLister) (*domain.RoutePlan, error) {
	distanceKm := req.Origin.DistanceKm(req.Destination)

	usableKWh := req.BatteryKWh * req.CurrentSOCPercent / 100
	kwhPerKm := req.EfficiencyKWhPer100Km / 100

	// Zero efficiency is rejected at the API boundary; the fallback keeps
	// the arithmetic total if that validation is ever relaxed.
	maxKmNow := distanceKm
	if kwhPerKm != 0 {
		maxKmNow = usableKWh / kwhPerKm
	}

	if maxKmNow >= distanceKm*safetyBufferFactor {
		return buildPlan(req, distanceKm, driveMinutes(distanceKm), nil), nil
	}

	candidates, err := stations.ListStations(ctx, ports.StationFilter{Limit: stationCandidateLimit})
	if err != nil {
		return nil, fmt.Errorf("plan trip: list stations: %w", err)
	}
	if len(candidates) == 0 {
		return nil, ErrNoStationsAvailable
	}

	// Highest rated power wins; the first candidate in repository order
	// keeps the slot on ties.
	best := candidates[0]
	for _, s := range candidates[1:] {
		if ratedPower(s, 0) > ratedPower(best, 0) {
			best = s
		}
	}

	chargeMinutes := slowChargeMinutes
	if ratedPower(best, defaultPowerKW) >= fastChargePowerKW {
		chargeMinutes = fastChargeMinutes
	}

	stop := domain.RoutePlanStop{
		StationID:     best.ID,
		StationName:   best.Name,
		Latitude:      coordOrDefault(best.Latitude, req.Origin.Lat),
		Longitude:     coordOrDefault(best.Longitude, req.Origin.Lng),
		ChargeMinutes: chargeMinutes,
		Notes:         stopNote,
	}

	duration := int(distanceKm/averageSpeedKmh*60 + float64(chargeMinutes))
	return buildPlan(req, distanceKm, duration, []domain.RoutePlanStop{stop}), nil
}

func buildPlan(req domain.TripRequest, distanceKm float64, durationMinutes int, stops []domain.RoutePlanStop) *domain.RoutePlan {
	if stops == nil {
		stops = []domain.RoutePlanStop{}
	}
	return &domain.RoutePlan{
		Request:                  req,
		TotalDistanceKm:          math.Round(distanceKm*10) / 10,
		EstimatedDurationMinutes: durationMinutes,
		Stops:                    stops,
	}
}

// Drive time at the assumed average speed, truncated to whole minutes.
func driveMinutes(distanceKm float64) int {
	return int(distanceKm / averageSpeedKmh * 60)
}

func ratedPower(s *domain.ChargingStation, fallback float64) float64 {
	if s.PowerKW != nil {
		return *s.PowerKW
	}
	return fallback
}

func coordOrDefault(v *float64, fallback float64) float64 {
	if v != nil {
		return *v
	}
	return fallback
}
