package repositories

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"
)

// Initialize the SQLite database schema.
func InitSchema(db *sql.DB) error {
	if db == nil {
		return errors.New("init schema: DB is nil")
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("init schema: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	createUsersQuery := `
	CREATE TABLE IF NOT EXISTS users (
		user_id INTEGER PRIMARY KEY AUTOINCREMENT,
		name TEXT NOT NULL,
		email TEXT NOT NULL,
		role TEXT NOT NULL DEFAULT 'user'
	);
	`

	createVehiclesQuery := `
	CREATE TABLE IF NOT EXISTS vehicles (
		vehicle_id INTEGER PRIMARY KEY AUTOINCREMENT,
		user_email TEXT NOT NULL,
		make TEXT NOT NULL,
		model TEXT NOT NULL,
		battery_kwh REAL NOT NULL,
		efficiency_kwh_per_100km REAL NOT NULL,
		max_range_km REAL NOT NULL
	);
	`

	createStationsQuery := `
	CREATE TABLE IF NOT EXISTS charging_stations (
		station_id INTEGER PRIMARY KEY AUTOINCREMENT,
		name TEXT NOT NULL,
		operator TEXT NOT NULL,
		latitude REAL,
		longitude REAL,
		power_kw REAL,
		price_per_kwh REAL NOT NULL,
		available_ports INTEGER NOT NULL,
		address TEXT,
		city TEXT
	);
	`

	createBookingsQuery := `
	CREATE TABLE IF NOT EXISTS bookings (
		booking_id INTEGER PRIMARY KEY AUTOINCREMENT,
		user_email TEXT NOT NULL,
		station_id INTEGER NOT NULL,
		vehicle_make TEXT,
		vehicle_model TEXT,
		start_time TEXT NOT NULL,
		duration_minutes INTEGER NOT NULL,
		status TEXT NOT NULL DEFAULT 'reserved'
	);
	`

	createPricingPlansQuery := `
	CREATE TABLE IF NOT EXISTS pricing_plans (
		plan_id INTEGER PRIMARY KEY AUTOINCREMENT,
		name TEXT NOT NULL,
		monthly_fee_usd REAL NOT NULL,
		kwh_included REAL NOT NULL,
		overage_price_per_kwh REAL NOT NULL
	);
	`

	createVehicleIndexQuery := `
	CREATE INDEX IF NOT EXISTS idx_vehicles_user_email
	ON vehicles(user_email);
	`

	createBookingIndexQuery := `
	CREATE INDEX IF NOT EXISTS idx_bookings_user_email
	ON bookings(user_email);
	`

	statements := []string{
		createUsersQuery,
		createVehiclesQuery,
		createStationsQuery,
		createBookingsQuery,
		createPricingPlansQuery,
		createVehicleIndexQuery,
		createBookingIndexQuery,
	}

	for i, stmt := range statements {
		if _, err := tx.Exec(stmt); err != nil {
			return fmt.Errorf("init schema: exec statement #%d: %w", i+1, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("init schema: commit tx: %w", err)
	}

	return nil
}

// Built-in defaults inserted when the corresponding table is empty, so a
// fresh local database can serve pricing and demo planning out of the box.
var defaultPricingPlans = []struct {
	Name               string
	MonthlyFeeUSD      float64
	KWhIncluded        float64
	OveragePricePerKWh float64
}{
	{"Basic", 0, 0, 0.39},
	{"Plus", 9.99, 50, 0.33},
	{"Pro", 19.99, 120, 0.29},
}

var defaultStations = []StationSeed{
	{Name: "Ampora Supercharge - Downtown", Operator: "Ampora", Latitude: f(37.7749), Longitude: f(-122.4194), PowerKW: f(150), PricePerKWh: 0.35, AvailablePorts: 6, City: s("San Francisco")},
	{Name: "GreenVolt Hub - Silicon Valley", Operator: "GreenVolt", Latitude: f(37.3875), Longitude: f(-122.0575), PowerKW: f(100), PricePerKWh: 0.32, AvailablePorts: 4, City: s("Mountain View")},
	{Name: "ChargeX Express - Bay Bridge", Operator: "ChargeX", Latitude: f(37.798), Longitude: f(-122.377), PowerKW: f(250), PricePerKWh: 0.41, AvailablePorts: 8, City: s("San Francisco")},
}

func f(v float64) *float64 { return &v }
func s(v string) *string   { return &v }

// Seed pricing plans and demo stations when their tables are empty.
// Running it against a populated database is a no-op.
func SeedDefaults(db *sql.DB) error {
	var planCount int
	if err := db.QueryRow(`SELECT COUNT(*) FROM pricing_plans;`).Scan(&planCount); err != nil {
		return fmt.Errorf("seed defaults: count pricing plans: %w", err)
	}

	if planCount == 0 {
		query := `
		INSERT INTO pricing_plans (
			name,
			monthly_fee_usd,
			kwh_included,
			overage_price_per_kwh
		)
		VALUES (?, ?, ?, ?);
		`
		for _, p := range defaultPricingPlans {
			if _, err := db.Exec(query, p.Name, p.MonthlyFeeUSD, p.KWhIncluded, p.OveragePricePerKWh); err != nil {
				return fmt.Errorf("seed defaults: insert pricing plan %q: %w", p.Name, err)
			}
		}
	}

	var stationCount int
	if err := db.QueryRow(`SELECT COUNT(*) FROM charging_stations;`).Scan(&stationCount); err != nil {
		return fmt.Errorf("seed defaults: count stations: %w", err)
	}

	if stationCount == 0 {
		if err := insertStationSeeds(db, defaultStations); err != nil {
			return fmt.Errorf("seed defaults: %w", err)
		}
	}

	return nil
}

type StationSeed struct {
	Name           string   `json:"name"`
	Operator       string   `json:"operator"`
	Latitude       *float64 `json:"latitude"`
	Longitude      *float64 `json:"longitude"`
	PowerKW        *float64 `json:"power_kw"`
	PricePerKWh    float64  `json:"price_per_kwh"`
	AvailablePorts int      `json:"available_ports"`
	Address        *string  `json:"address"`
	City           *string  `json:"city"`
}

// Populate the station table from a JSON seed file.
func SeedStationsFromJSON(db *sql.DB, jsonPath string) error {
	bytes, err := os.ReadFile(jsonPath)
	if err != nil {
		return fmt.Errorf("seed stations: read %q: %w", jsonPath, err)
	}

	var data []StationSeed
	if err := json.Unmarshal(bytes, &data); err != nil {
		return fmt.Errorf("seed stations: parse json: %w", err)
	}

	for i, item := range data {
		if strings.TrimSpace(item.Name) == "" {
			return fmt.Errorf("seed stations: item at index %d: name cannot be empty", i+1)
		}
		if item.AvailablePorts < 0 {
			return fmt.Errorf("seed stations: item at index %d: available_ports cannot be negative", i+1)
		}
	}

	if err := insertStationSeeds(db, data); err != nil {
		return fmt.Errorf("seed stations: %w", err)
	}

	return nil
}

func insertStationSeeds(db *sql.DB, seeds []StationSeed) error {
	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("insert stations: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

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
	VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?);
	`
	stmt, err := tx.Prepare(query)
	if err != nil {
		return fmt.Errorf("insert stations: prepare insert: %w", err)
	}
	defer stmt.Close()

	for _, st := range seeds {
		_, err := stmt.Exec(
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
			return fmt.Errorf("insert stations: insert %q: %w", st.Name, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("insert stations: commit tx: %w", err)
	}

	return nil
}
