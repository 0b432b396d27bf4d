package repositories

import (
	"database/sql"
	"errors"
	"fmt"
)

// Initialize the Postgres database schema. Mirrors InitSchema with
// Postgres column types and identity columns.
func InitSchemaPostgres(db *sql.DB) error {
	if db == nil {
		return errors.New("init postgres schema: DB is nil")
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("init postgres schema: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	statements := []string{
		`
		CREATE TABLE IF NOT EXISTS users (
			user_id BIGINT GENERATED ALWAYS AS IDENTITY PRIMARY KEY,
			name TEXT NOT NULL,
			email TEXT NOT NULL,
			role TEXT NOT NULL DEFAULT 'user'
		);
		`,
		`
		CREATE TABLE IF NOT EXISTS vehicles (
			vehicle_id BIGINT GENERATED ALWAYS AS IDENTITY PRIMARY KEY,
			user_email TEXT NOT NULL,
			make TEXT NOT NULL,
			model TEXT NOT NULL,
			battery_kwh DOUBLE PRECISION NOT NULL,
			efficiency_kwh_per_100km DOUBLE PRECISION NOT NULL,
			max_range_km DOUBLE PRECISION NOT NULL
		);
		`,
		`
		CREATE TABLE IF NOT EXISTS charging_stations (
			station_id BIGINT GENERATED ALWAYS AS IDENTITY PRIMARY KEY,
			name TEXT NOT NULL,
			operator TEXT NOT NULL,
			latitude DOUBLE PRECISION,
			longitude DOUBLE PRECISION,
			power_kw DOUBLE PRECISION,
			price_per_kwh DOUBLE PRECISION NOT NULL,
			available_ports INTEGER NOT NULL,
			address TEXT,
			city TEXT
		);
		`,
		`
		CREATE TABLE IF NOT EXISTS bookings (
			booking_id BIGINT GENERATED ALWAYS AS IDENTITY PRIMARY KEY,
			user_email TEXT NOT NULL,
			station_id BIGINT NOT NULL,
			vehicle_make TEXT,
			vehicle_model TEXT,
			start_time TIMESTAMPTZ NOT NULL,
			duration_minutes INTEGER NOT NULL,
			status TEXT NOT NULL DEFAULT 'reserved'
		);
		`,
		`
		CREATE TABLE IF NOT EXISTS pricing_plans (
			plan_id BIGINT GENERATED ALWAYS AS IDENTITY PRIMARY KEY,
			name TEXT NOT NULL,
			monthly_fee_usd DOUBLE PRECISION NOT NULL,
			kwh_included DOUBLE PRECISION NOT NULL,
			overage_price_per_kwh DOUBLE PRECISION NOT NULL
		);
		`,
		`
		CREATE INDEX IF NOT EXISTS idx_vehicles_user_email
		ON vehicles(user_email);
		`,
		`
		CREATE INDEX IF NOT EXISTS idx_bookings_user_email
		ON bookings(user_email);
		`,
	}

	for i, stmt := range statements {
		if _, err := tx.Exec(stmt); err != nil {
			return fmt.Errorf("init postgres schema: exec statement #%d: %w", i+1, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("init postgres schema: commit tx: %w", err)
	}

	return nil
}

// Seed pricing plans and demo stations into Postgres when their tables
// are empty. Running it against a populated database is a no-op.
func SeedDefaultsPostgres(db *sql.DB) error {
	var planCount int
	if err := db.QueryRow(`SELECT COUNT(*) FROM pricing_plans;`).Scan(&planCount); err != nil {
		return fmt.Errorf("seed postgres defaults: count pricing plans: %w", err)
	}

	if planCount == 0 {
		query := `
		INSERT INTO pricing_plans (
			name,
			monthly_fee_usd,
			kwh_included,
			overage_price_per_kwh
		)
		VALUES ($1, $2, $3, $4);
		`
		for _, p := range defaultPricingPlans {
			if _, err := db.Exec(query, p.Name, p.MonthlyFeeUSD, p.KWhIncluded, p.OveragePricePerKWh); err != nil {
				return fmt.Errorf("seed postgres defaults: insert pricing plan %q: %w", p.Name, err)
			}
		}
	}

	var stationCount int
	if err := db.QueryRow(`SELECT COUNT(*) FROM charging_stations;`).Scan(&stationCount); err != nil {
		return fmt.Errorf("seed postgres defaults: count stations: %w", err)
	}

	if stationCount == 0 {
		query := `
		INSERT INTO charging_stations (
			name,
			operator,
			latitude,
			longitude,
			power_kw,
			price_per_kwh,
			available_ports,
			address,
			city
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9);
		`
		for _, st := range defaultStations {
			_, err := db.Exec(
				query,
				st.Name,
				st.Operator,
				st.Latitude,
				st.Longitude,
				st.PowerKW,
				st.PricePerKWh,
				st.AvailablePorts,
				st.Address,
				st.City,
			)
			if err != nil {
				return fmt.Errorf("seed postgres defaults: insert station %q: %w", st.Name, err)
			}
		}
	}

	return nil
}
