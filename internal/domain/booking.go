package domain

import "time"

// Booking statuses.
const (
	BookingStatusReserved  = "reserved"
	BookingStatusCompleted = "completed"
	BookingStatusCancelled = "cancelled"
)

// Reservation of a charging slot at a station.
type Booking struct {
	ID              int64
	UserEmail       string
	StationID       int64
	VehicleMake     *string
	VehicleModel    *string
	StartTime       time.Time
	DurationMinutes int
	Status          string
}
