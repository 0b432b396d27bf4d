package domain

// Trip planning input: where the vehicle is going and how much energy it
// has to get there. TargetArrivalSOCPercent is accepted for forward
// compatibility but does not affect the current heuristic.
type TripRequest struct {
	Origin                  Coordinates
	Destination             Coordinates
	BatteryKWh              float64
	EfficiencyKWhPer100Km   float64
	CurrentSOCPercent       float64
	TargetArrivalSOCPercent float64
}

// A single charging stop inserted into a route plan.
type RoutePlanStop struct {
	StationID     int64
	StationName   string
	Latitude      float64
	Longitude     float64
	ChargeMinutes int
	Notes         string
}

// Computed route plan for one trip request.
//
// A RoutePlan echoes the request it was built from, carries aggregate
// distance/duration estimates, and holds zero or one charging stop. It is
// constructed once per request and never persisted.
type RoutePlan struct {
	Request                  TripRequest
	TotalDistanceKm          float64
	EstimatedDurationMinutes int
	Stops                    []RoutePlanStop
}
