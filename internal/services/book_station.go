package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"ev-trip-service/internal/domain"
	"ev-trip-service/internal/ports"
)

// Returned when a booking names a station id that does not exist.
var ErrStationNotFound = errors.New("station not found")

type BookStationRequest struct {
	UserEmail       string
	StationID       int64
	VehicleMake     *string
	VehicleModel    *string
	StartTime       time.Time
	DurationMinutes int
}

// BookStation reserves a charging slot at a station.
//
// The available-port decrement is optimistic: it runs after the booking is
// stored, without a transaction, so concurrent bookings can oversell a
// station. That matches the current product behavior; a compare-and-swap
// belongs here if the booking flow is ever hardened.
func BookStation(
	ctx context.Context,
	req BookStationRequest,
	stations ports.StationRepository,
	bookings ports.BookingRepository,
) (int64, error) {
	station, err := stations.GetStation(ctx, req.StationID)
	if err != nil {
		return 0, fmt.Errorf("book station: get station %d: %w", req.StationID, err)
	}
	if station == nil {
		return 0, ErrStationNotFound
	}

	booking := &domain.Booking{
		UserEmail:       req.UserEmail,
		StationID:       req.StationID,
		VehicleMake:     req.VehicleMake,
		VehicleModel:    req.VehicleModel,
		StartTime:       req.StartTime,
		DurationMinutes: req.DurationMinutes,
		Status:          domain.BookingStatusReserved,
	}

	id, err := bookings.CreateBooking(ctx, booking)
	if err != nil {
		return 0, fmt.Errorf("book station: create booking: %w", err)
	}

	if err := stations.DecrementAvailablePorts(ctx, req.StationID); err != nil {
		return 0, fmt.Errorf("book station: decrement ports for station %d: %w", req.StationID, err)
	}

	return id, nil
}
