package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"ev-trip-service/internal/domain"
	"ev-trip-service/internal/platform/obs"
	"ev-trip-service/internal/ports"
)

// Postgres-backed implementation of the StationRepository port, used by
// hosted deployments (the pgx stdlib driver). Placeholders and the
// conditional WHERE clause differ from the SQLite adapter; behavior is
// otherwise identical.
type SQLStationRepository struct{ DB *sql.DB }

func NewSQLStationRepository(db *sql.DB) *SQLStationRepository {
	return &SQLStationRepository{DB: db}
}

// Return up to filter.Limit stations, optionally restricted to one city.
func (s *SQLStationRepository) ListStations(ctx context.Context, filter ports.StationFilter) (_ []*domain.ChargingStation, err error) {
	defer obs.Time(ctx, "stations.sql.ListStations")(&err)

	if s.DB == nil {
		return nil, errors.New("sql station repository: DB is nil")
	}

	limit := filter.Limit
	if limit <= 0 {
		limit = defaultStationLimit
	}

	q := `
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
	WHERE ($1 = '' OR city = $1)
	ORDER BY station_id
	LIMIT $2;
	`

	rows, err := s.DB.QueryContext(ctx, q, filter.City, limit)
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
func (s *SQLStationRepository) GetStation(ctx context.Context, id int64) (_ *domain.ChargingStation, err error) {
	defer obs.Time(ctx, "stations.sql.GetStation")(&err)

	if s.DB == nil {
		return nil, errors.New("sql station repository: DB is nil")
	}

	q := `
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
	WHERE station_id = $1;
	`
	row := s.DB.QueryRowContext(ctx, q, id)

	st, scanErr := scanStation(row)
	if errors.Is(scanErr, sql.ErrNoRows) {
		return nil, nil
	}
	if scanErr != nil {
		return nil, fmt.Errorf("get station %d: %w", id, scanErr)
	}

	return st, nil
}

// Reduce the station's available port count by one, without locking.
func (s *SQLStationRepository) DecrementAvailablePorts(ctx context.Context, id int64) (err error) {
	defer obs.Time(ctx, "stations.sql.DecrementAvailablePorts")(&err)

	if s.DB == nil {
		return errors.New("sql station repository: DB is nil")
	}

	q := `
	UPDATE charging_stations
	SET available_ports = available_ports - 1
	WHERE station_id = $1;
	`
	if _, err := s.DB.ExecContext(ctx, q, id); err != nil {
		return fmt.Errorf("decrement ports for station %d: %w", id, err)
	}

	return nil
}
