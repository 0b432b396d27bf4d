package domain

// Public charging station record.
//
// The trip planner treats stations as read-only input. Pointer fields are
// optional in the source data; the planner substitutes documented defaults
// when they are absent. AvailablePorts is only mutated through the booking
// flow's repository decrement.
type ChargingStation struct {
	ID             int64
	Name           string
	Operator       string
	Latitude       *float64
	Longitude      *float64
	PowerKW        *float64
	PricePerKWh    float64
	AvailablePorts int
	Address        *string
	City           *string
}
