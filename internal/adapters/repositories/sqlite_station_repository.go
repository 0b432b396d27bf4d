package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"ev-trip-service/internal/domain"
	"ev-trip-service/internal/ports"
)

const defaultStationLimit = 50

// SQLite-backed implementation of the StationRepository port.
type SqliteStationRepository struct{ DB *sql.DB }

func NewSqliteStationRepository(db *sql.DB) *SqliteStationRepository {
	return &SqliteStationRepository{DB: db}
}

// Return up to filter.Limit stations, optionally restricted to one city.
// Rows come back in insertion order, which the trip planner relies on as
// its (arbitrary) tie-break order.
func (s *SqliteStationRepository) ListStations(ctx context.Context, filter ports.StationFilter) ([]*domain.ChargingStation, error) {
	if s.DB == nil {
		return nil, errors.New("sqlite station repository: DB is nil")
	}

	limit := filter.Limit
	if limit <= 0 {
		limit = defaultStationLimit
	}

	query := `
	SELECT
		station_id,
		name,
		operator,
		latitude,
		longitude,
		power_kw,
		price_per_kwh,
		available_ports,
		address,
		city
	FROM charging_stations
	`
	args := []any{}
	if filter.City != "" {
		query += "WHERE city = ?\n"
		args = append(args, filter.City)
	}
	query += "ORDER BY station_id\nLIMIT ?;"
	args = append(args, limit)

	rows, err := s.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list stations: query charging_stations table: %w", err)
	}
	defer rows.Close()

	stations := make([]*domain.ChargingStation, 0, limit)
	for rows.Next() {
		st, err := scanStation(rows)
		if err != nil {
			return nil, fmt.Errorf("list stations: %w", err)
		}
		stations = append(stations, st)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list stations: row iteration: %w", err)
	}

	return stations, nil
}

// Return the station with the given id, or nil when none matches.
func (s *SqliteStationRepository) GetStation(ctx context.Context, id int64) (*domain.ChargingStation, error) {
	if s.DB == nil {
		return nil, errors.New("sqlite station repository: DB is nil")
	}

	query := `
	SELECT
		station_id,
		name,
		operator,
		latitude,
		longitude,
		power_kw,
		price_per_kwh,
		available_ports,
		address,
		city
	FROM charging_stations
	WHERE station_id = ?;
	`
	row := s.DB.QueryRowContext(ctx, query, id)

	st, err := scanStation(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get station %d: %w", id, err)
	}

	return st, nil
}

// Reduce the station's available port count by one, without locking.
func (s *SqliteStationRepository) DecrementAvailablePorts(ctx context.Context, id int64) error {
	if s.DB == nil {
		return errors.New("sqlite station repository: DB is nil")
	}

	query := `
	UPDATE charging_stations
	SET available_ports = available_ports - 1
	WHERE station_id = ?;
	`
	if _, err := s.DB.ExecContext(ctx, query, id); err != nil {
		return fmt.Errorf("decrement ports for station %d: %w", id, err)
	}

	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanStation(row rowScanner) (*domain.ChargingStation, error) {
	var (
		st       domain.ChargingStation
		lat, lng sql.NullFloat64
		power    sql.NullFloat64
		address  sql.NullString
		city     sql.NullString
	)

	err := row.Scan(
		&st.ID,
		&st.Name,
		&st.Operator,
		&lat,
		&lng,
		&power,
		&st.PricePerKWh,
		&st.AvailablePorts,
		&address,
		&city,
	)
	if err != nil {
		return nil, err
	}

	if lat.Valid {
		st.Latitude = &lat.Float64
	}
	if lng.Valid {
		st.Longitude = &lng.Float64
	}
	if power.Valid {
		st.PowerKW = &power.Float64
	}
	if address.Valid {
		st.Address = &address.String
	}
	if city.Valid {
		st.City = &city.String
	}

	return &st, nil
}
