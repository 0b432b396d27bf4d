package dto

type CreateVehicleRequest struct {
	UserEmail             string  `json:"user_email"`
	Make                  string  `json:"make"`
	Model                 string  `json:"model"`
	BatteryKWh            float64 `json:"battery_kwh"`
	EfficiencyKWhPer100Km float64 `json:"efficiency_kwh_per_100km"`
	MaxRangeKm            float64 `json:"max_range_km"`
}

type VehicleResponse struct {
	ID                    int64   `json:"id"`
	UserEmail             string  `json:"user_email"`
	Make                  string  `json:"make"`
	Model                 string  `json:"model"`
	BatteryKWh            float64 `json:"battery_kwh"`
	EfficiencyKWhPer100Km float64 `json:"efficiency_kwh_per_100km"`
	MaxRangeKm            float64 `json:"max_range_km"`
}

type ListVehiclesResponse struct {
	Vehicles []VehicleResponse `json:"vehicles"`
}
