package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"ev-trip-service/internal/domain"
)

type fakeStationRepo struct {
	fakeStationLister
	byID        map[int64]*domain.ChargingStation
	decremented []int64
}

func (f *fakeStationRepo) GetStation(_ context.Context, id int64) (*domain.ChargingStation, error) {
	return f.byID[id], nil
}

func (f *fakeStationRepo) DecrementAvailablePorts(_ context.Context, id int64) error {
	f.decremented = append(f.decremented, id)
	return nil
}

type fakeBookingRepo struct {
	created []*domain.Booking
	nextID  int64
	err     error
}

func (f *fakeBookingRepo) CreateBooking(_ context.Context, b *domain.Booking) (int64, error) {
	if f.err != nil {
		return 0, f.err
	}
	f.created = append(f.created, b)
	f.nextID++
	return f.nextID, nil
}

func (f *fakeBookingRepo) ListBookings(_ context.Context, _ string) ([]*domain.Booking, error) {
	return nil, nil
}

func TestBookStationReservesAndDecrementsPorts(t *testing.T) {
	stations := &fakeStationRepo{byID: map[int64]*domain.ChargingStation{
		5: {ID: 5, Name: "Fast Hub", AvailablePorts: 4},
	}}
	bookings := &fakeBookingRepo{}

	req := BookStationRequest{
		UserEmail:       "driver@example.com",
		StationID:       5,
		StartTime:       time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC),
		DurationMinutes: 45,
	}

	id, err := BookStation(context.Background(), req, stations, bookings)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if id != 1 {
		t.Errorf("booking id = %d, want 1", id)
	}

	if len(bookings.created) != 1 {
		t.Fatalf("expected 1 booking created, got %d", len(bookings.created))
	}
	b := bookings.created[0]
	if b.Status != domain.BookingStatusReserved {
		t.Errorf("status = %q, want %q", b.Status, domain.BookingStatusReserved)
	}
	if b.StationID != 5 || b.UserEmail != "driver@example.com" {
		t.Errorf("booking fields wrong: %+v", b)
	}

	if len(stations.decremented) != 1 || stations.decremented[0] != 5 {
		t.Errorf("port decrement calls = %v, want one call for station 5", stations.decremented)
	}
}

func TestBookStationUnknownStation(t *testing.T) {
	stations := &fakeStationRepo{byID: map[int64]*domain.ChargingStation{}}
	bookings := &fakeBookingRepo{}

	req := BookStationRequest{
		UserEmail:       "driver@example.com",
		StationID:       99,
		StartTime:       time.Now(),
		DurationMinutes: 30,
	}

	_, err := BookStation(context.Background(), req, stations, bookings)
	if !errors.Is(err, ErrStationNotFound) {
		t.Fatalf("error = %v, want ErrStationNotFound", err)
	}
	if len(bookings.created) != 0 {
		t.Errorf("no booking should be created for an unknown station")
	}
	if len(stations.decremented) != 0 {
		t.Errorf("no decrement should happen for an unknown station")
	}
}

func TestBookStationCreateFailureSkipsDecrement(t *testing.T) {
	stations := &fakeStationRepo{byID: map[int64]*domain.ChargingStation{
		5: {ID: 5, Name: "Fast Hub"},
	}}
	bookings := &fakeBookingRepo{err: errors.New("insert failed")}

	req := BookStationRequest{
		UserEmail:       "driver@example.com",
		StationID:       5,
		StartTime:       time.Now(),
		DurationMinutes: 30,
	}

	if _, err := BookStation(context.Background(), req, stations, bookings); err == nil {
		t.Fatal("expected error when booking insert fails")
	}
	if len(stations.decremented) != 0 {
		t.Errorf("decrement must not run when the booking insert fails")
	}
}
