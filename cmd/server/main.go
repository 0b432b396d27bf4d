package main

import (
	"database/sql"
	"fmt"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	_ "modernc.org/sqlite"

	"ev-trip-service/internal/adapters/cache"
	"ev-trip-service/internal/adapters/repositories"
	"ev-trip-service/internal/api"
	"ev-trip-service/internal/config"
	"ev-trip-service/internal/ports"
)

// main is the application composition root.
// It wires concrete adapters (SQLite, optional Redis) behind ports and
// starts the HTTP server.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found (using environment variables)")
	}

	dbPath := config.Get("DB_PATH", "data/app.db")
	seedPath := os.Getenv("STATION_SEED_PATH")
	redisAddr := os.Getenv("REDIS_ADDR")
	port := config.Get("PORT", "8080")

	db, err := openDB(dbPath)
	if err != nil {
		log.Fatal(err)
	}
	defer db.Close()

	// Initialize schema and seed pricing plans plus demo stations so a
	// fresh local run can plan trips immediately.
	if err := initAndSeed(db, seedPath); err != nil {
		log.Fatal(err)
	}

	var stations ports.StationRepository = repositories.NewSqliteStationRepository(db)
	if redisAddr != "" {
		client := redis.NewClient(&redis.Options{Addr: redisAddr})
		stations = cache.NewRedisStationCache(client, stations, 30*time.Second)
		log.Printf("Station cache enabled addr=%s", redisAddr)
	}

	router := api.NewRouter(
		repositories.NewSqliteUserRepository(db),
		repositories.NewSqliteVehicleRepository(db),
		stations,
		repositories.NewSqliteBookingRepository(db),
		repositories.NewSqlitePricingPlanRepository(db),
	)

	log.Printf("Server listening addr=:%s", port)
	srv := &http.Server{
		Addr:              ":" + port,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
	log.Fatal(srv.ListenAndServe())
}

func openDB(dbPath string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("openDB: open sqlite database %q: %w", dbPath, err)
	}

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("openDB: verify sqlite connection to %q: %w", dbPath, err)
	}

	return db, nil
}

func initAndSeed(db *sql.DB, stationSeedPath string) error {
	if err := repositories.InitSchema(db); err != nil {
		return fmt.Errorf("init and seed: %w", err)
	}

	if err := repositories.SeedDefaults(db); err != nil {
		return fmt.Errorf("init and seed: %w", err)
	}

	if stationSeedPath != "" {
		if err := repositories.SeedStationsFromJSON(db, stationSeedPath); err != nil {
			return fmt.Errorf("init and seed: %w", err)
		}
	}

	return nil
}
