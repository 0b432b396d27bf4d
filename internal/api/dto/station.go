package dto

type StationResponse struct {
	ID             int64    `json:"id"`
	Name           string   `json:"name"`
	Operator       string   `json:"operator"`
	Latitude       *float64 `json:"latitude"`
	Longitude      *float64 `json:"longitude"`
	PowerKW        *float64 `json:"power_kw"`
	PricePerKWh    float64  `json:"price_per_kwh"`
	AvailablePorts int      `json:"available_ports"`
	Address        *string  `json:"address"`
	City           *string  `json:"city"`
}

type ListStationsResponse struct {
	Stations []StationResponse `json:"stations"`
}
