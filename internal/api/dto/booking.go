package dto

import "time"

type CreateBookingRequest struct {
	UserEmail       string    `json:"user_email"`
	StationID       int64     `json:"station_id"`
	VehicleMake     *string   `json:"vehicle_make"`
	VehicleModel    *string   `json:"vehicle_model"`
	StartTime       time.Time `json:"start_time"`
	DurationMinutes int       `json:"duration_minutes"`
}

type BookingResponse struct {
	ID              int64     `json:"id"`
	UserEmail       string    `json:"user_email"`
	StationID       int64     `json:"station_id"`
	VehicleMake     *string   `json:"vehicle_make"`
	VehicleModel    *string   `json:"vehicle_model"`
	StartTime       time.Time `json:"start_time"`
	DurationMinutes int       `json:"duration_minutes"`
	Status          string    `json:"status"`
}

type ListBookingsResponse struct {
	Bookings []BookingResponse `json:"bookings"`
}
