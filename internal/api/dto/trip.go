package dto

// PlanTripRequest carries the trip planning input. TargetArrivalSOCPercent
// is a pointer so an absent field can take its documented default of 10.
type PlanTripRequest struct {
	OriginLat               float64  `json:"origin_lat"`
	OriginLng               float64  `json:"origin_lng"`
	DestLat                 float64  `json:"dest_lat"`
	DestLng                 float64  `json:"dest_lng"`
	VehicleBatteryKWh       float64  `json:"vehicle_battery_kwh"`
	VehicleEfficiencyKWh100 float64  `json:"vehicle_efficiency_kwh_per_100km"`
	CurrentSOCPercent       float64  `json:"current_soc_percent"`
	TargetArrivalSOCPercent *float64 `json:"target_arrival_soc_percent"`
}

type RoutePlanStopResponse struct {
	StationID     int64   `json:"station_id"`
	StationName   string  `json:"station_name"`
	Latitude      float64 `json:"latitude"`
	Longitude     float64 `json:"longitude"`
	ChargeMinutes int     `json:"charge_minutes"`
	Notes         string  `json:"notes"`
}

// RoutePlanResponse echoes the request fields alongside the computed
// distance, duration, and stop sequence.
type RoutePlanResponse struct {
	OriginLat                float64                 `json:"origin_lat"`
	OriginLng                float64                 `json:"origin_lng"`
	DestLat                  float64                 `json:"dest_lat"`
	DestLng                  float64                 `json:"dest_lng"`
	VehicleBatteryKWh        float64                 `json:"vehicle_battery_kwh"`
	VehicleEfficiencyKWh100  float64                 `json:"vehicle_efficiency_kwh_per_100km"`
	CurrentSOCPercent        float64                 `json:"current_soc_percent"`
	TargetArrivalSOCPercent  float64                 `json:"target_arrival_soc_percent"`
	TotalDistanceKm          float64                 `json:"total_distance_km"`
	EstimatedDurationMinutes int                     `json:"estimated_duration_minutes"`
	Stops                    []RoutePlanStopResponse `json:"stops"`
}
