package ports

import (
	"context"

	"ev-trip-service/internal/domain"
)

// Filter for station listings. An empty City matches all stations.
// Limit caps the number of rows returned; implementations apply a
// sane default when it is not positive.
type StationFilter struct {
	City  string
	Limit int
}

// Port: read-only station listing, the only collaborator the trip
// planner depends on.
type StationLister interface {
	// Return up to filter.Limit stations matching the filter.
	ListStations(ctx context.Context, filter StationFilter) ([]*domain.ChargingStation, error)
}

// Port: a boundary for retrieving and reserving ChargingStation records.
type StationRepository interface {
	StationLister

	// Return the station with the given id, or nil when none matches.
	GetStation(ctx context.Context, id int64) (*domain.ChargingStation, error)

	// Reduce the station's available port count by one. The decrement is
	// optimistic: no lock is taken and the count may go negative under
	// concurrent bookings.
	DecrementAvailablePorts(ctx context.Context, id int64) error
}
