package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"ev-trip-service/internal/domain"
)

// SQLite-backed implementation of the BookingRepository port.
// Timestamps are stored as RFC 3339 text.
type SqliteBookingRepository struct{ DB *sql.DB }

func NewSqliteBookingRepository(db *sql.DB) *SqliteBookingRepository {
	return &SqliteBookingRepository{DB: db}
}

// Store a new booking and return its assigned id.
func (s *SqliteBookingRepository) CreateBooking(ctx context.Context, booking *domain.Booking) (int64, error) {
	if s.DB == nil {
		return 0, errors.New("sqlite booking repository: DB is nil")
	}

	query := `
	INSERT INTO bookings (
		user_email,
		station_id,
		vehicle_make,
		vehicle_model,
		start_time,
		duration_minutes,
		status
	)
	VALUES (?, ?, ?, ?, ?, ?, ?);
	`
	res, err := s.DB.ExecContext(
		ctx,
		query,
		booking.UserEmail,
		booking.StationID,
		booking.VehicleMake,
		booking.VehicleModel,
		booking.StartTime.UTC().Format(time.RFC3339),
		booking.DurationMinutes,
		booking.Status,
	)
	if err != nil {
		return 0, fmt.Errorf("create booking: insert: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("create booking: last insert id: %w", err)
	}

	return id, nil
}

// Return bookings, optionally restricted to one user.
func (s *SqliteBookingRepository) ListBookings(ctx context.Context, userEmail string) ([]*domain.Booking, error) {
	if s.DB == nil {
		return nil, errors.New("sqlite booking repository: DB is nil")
	}

	query := `
	SELECT
		booking_id,
		user_email,
		station_id,
		vehicle_make,
		vehicle_model,
		start_time,
		duration_minutes,
		status
	FROM bookings
	`
	args := []any{}
	if userEmail != "" {
		query += "WHERE user_email = ?\n"
		args = append(args, userEmail)
	}
	query += "ORDER BY booking_id;"

	rows, err := s.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list bookings: query bookings table: %w", err)
	}
	defer rows.Close()

	bookings := make([]*domain.Booking, 0, 16)
	for rows.Next() {
		var (
			b            domain.Booking
			make_, model sql.NullString
			startTime    string
		)
		err := rows.Scan(
			&b.ID,
			&b.UserEmail,
			&b.StationID,
			&make_,
			&model,
			&startTime,
			&b.DurationMinutes,
			&b.Status,
		)
		if err != nil {
			return nil, fmt.Errorf("list bookings: scan row: %w", err)
		}

		b.StartTime, err = time.Parse(time.RFC3339, startTime)
		if err != nil {
			return nil, fmt.Errorf("list bookings: parse start_time %q: %w", startTime, err)
		}

		if make_.Valid {
			b.VehicleMake = &make_.String
		}
		if model.Valid {
			b.VehicleModel = &model.String
		}

		bookings = append(bookings, &b)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list bookings: row iteration: %w", err)
	}

	return bookings, nil
}
