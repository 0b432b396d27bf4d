package ports

import (
	"context"

	"ev-trip-service/internal/domain"
)

// Port: a boundary for persisting and retrieving Vehicle records.
type VehicleRepository interface {
	// Store a new vehicle and return its assigned id.
	CreateVehicle(ctx context.Context, vehicle *domain.Vehicle) (int64, error)

	// Return vehicles, optionally restricted to one owner.
	// An empty userEmail matches all vehicles.
	ListVehicles(ctx context.Context, userEmail string) ([]*domain.Vehicle, error)
}
