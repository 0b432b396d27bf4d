package ports

import (
	"context"

	"ev-trip-service/internal/domain"
)

// Port: a boundary for persisting and retrieving Booking records.
type BookingRepository interface {
	// Store a new booking and return its assigned id.
	CreateBooking(ctx context.Context, booking *domain.Booking) (int64, error)

	// Return bookings, optionally restricted to one user.
	// An empty userEmail matches all bookings.
	ListBookings(ctx context.Context, userEmail string) ([]*domain.Booking, error)
}
