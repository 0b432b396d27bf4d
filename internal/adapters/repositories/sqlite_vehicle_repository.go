package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"ev-trip-service/internal/domain"
)

// SQLite-backed implementation of the VehicleRepository port.
type SqliteVehicleRepository struct{ DB *sql.DB }

func NewSqliteVehicleRepository(db *sql.DB) *SqliteVehicleRepository {
	return &SqliteVehicleRepository{DB: db}
}

// Store a new vehicle and return its assigned id.
func (s *SqliteVehicleRepository) CreateVehicle(ctx context.Context, vehicle *domain.Vehicle) (int64, error) {
	if s.DB == nil {
		return 0, errors.New("sqlite vehicle repository: DB is nil")
	}

	query := `
	INSERT INTO vehicles (
		user_email,
		make,
		model,
		battery_kwh,
		efficiency_kwh_per_100km,
		max_range_km
	)
	VALUES (?, ?, ?, ?, ?, ?);
	`
	res, err := s.DB.ExecContext(
		ctx,
		query,
		vehicle.UserEmail,
		vehicle.Make,
		vehicle.Model,
		vehicle.BatteryKWh,
		vehicle.EfficiencyKWhPer100Km,
		vehicle.MaxRangeKm,
	)
	if err != nil {
		return 0, fmt.Errorf("create vehicle: insert: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("create vehicle: last insert id: %w", err)
	}

	return id, nil
}

// Return vehicles, optionally restricted to one owner.
func (s *SqliteVehicleRepository) ListVehicles(ctx context.Context, userEmail string) ([]*domain.Vehicle, error) {
	if s.DB == nil {
		return nil, errors.New("sqlite vehicle repository: DB is nil")
	}

	query := `
	SELECT
		vehicle_id,
		user_email,
		make,
		model,
		battery_kwh,
		efficiency_kwh_per_100km,
		max_range_km
	FROM vehicles
	`
	args := []any{}
	if userEmail != "" {
		query += "WHERE user_email = ?\n"
		args = append(args, userEmail)
	}
	query += "ORDER BY vehicle_id;"

	rows, err := s.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list vehicles: query vehicles table: %w", err)
	}
	defer rows.Close()

	vehicles := make([]*domain.Vehicle, 0, 16)
	for rows.Next() {
		var v domain.Vehicle
		err := rows.Scan(
			&v.ID,
			&v.UserEmail,
			&v.Make,
			&v.Model,
			&v.BatteryKWh,
			&v.EfficiencyKWhPer100Km,
			&v.MaxRangeKm,
		)
		if err != nil {
			return nil, fmt.Errorf("list vehicles: scan row: %w", err)
		}
		vehicles = append(vehicles, &v)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list vehicles: row iteration: %w", err)
	}

	return vehicles, nil
}
