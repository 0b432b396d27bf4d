package repositories

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ev-trip-service/internal/domain"
)

func TestSqliteUserRepositoryCreateUser(t *testing.T) {
	db := openTestDB(t)
	repo := NewSqliteUserRepository(db)

	id, err := repo.CreateUser(context.Background(), &domain.User{
		Name:  "Ada",
		Email: "ada@example.com",
		Role:  "user",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1), id)
}

func TestSqliteVehicleRepositoryRoundTrip(t *testing.T) {
	db := openTestDB(t)
	repo := NewSqliteVehicleRepository(db)
	ctx := context.Background()

	_, err := repo.CreateVehicle(ctx, &domain.Vehicle{
		UserEmail:             "ada@example.com",
		Make:                  "Tesla",
		Model:                 "Model 3",
		BatteryKWh:            75,
		EfficiencyKWhPer100Km: 14.9,
		MaxRangeKm:            500,
	})
	require.NoError(t, err)

	_, err = repo.CreateVehicle(ctx, &domain.Vehicle{
		UserEmail:             "bob@example.com",
		Make:                  "Hyundai",
		Model:                 "Ioniq 5",
		BatteryKWh:            77.4,
		EfficiencyKWhPer100Km: 18,
		MaxRangeKm:            430,
	})
	require.NoError(t, err)

	all, err := repo.ListVehicles(ctx, "")
	require.NoError(t, err)
	assert.Len(t, all, 2)

	adas, err := repo.ListVehicles(ctx, "ada@example.com")
	require.NoError(t, err)
	require.Len(t, adas, 1)
	assert.Equal(t, "Model 3", adas[0].Model)
	assert.Equal(t, 75.0, adas[0].BatteryKWh)
}

func TestSqliteBookingRepositoryRoundTrip(t *testing.T) {
	db := openTestDB(t)
	repo := NewSqliteBookingRepository(db)
	ctx := context.Background()

	make_ := "Tesla"
	start := time.Date(2026, 3, 1, 9, 30, 0, 0, time.UTC)

	id, err := repo.CreateBooking(ctx, &domain.Booking{
		UserEmail:       "ada@example.com",
		StationID:       1,
		VehicleMake:     &make_,
		StartTime:       start,
		DurationMinutes: 45,
		Status:          domain.BookingStatusReserved,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1), id)

	bookings, err := repo.ListBookings(ctx, "ada@example.com")
	require.NoError(t, err)
	require.Len(t, bookings, 1)

	b := bookings[0]
	assert.Equal(t, domain.BookingStatusReserved, b.Status)
	assert.True(t, b.StartTime.Equal(start))
	require.NotNil(t, b.VehicleMake)
	assert.Equal(t, "Tesla", *b.VehicleMake)
	assert.Nil(t, b.VehicleModel)

	none, err := repo.ListBookings(ctx, "nobody@example.com")
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestSqlitePricingPlanRepositoryListPlans(t *testing.T) {
	db := openTestDB(t)
	require.NoError(t, SeedDefaults(db))

	repo := NewSqlitePricingPlanRepository(db)

	plans, err := repo.ListPricingPlans(context.Background())
	require.NoError(t, err)
	require.Len(t, plans, 3)

	assert.Equal(t, "Basic", plans[0].Name)
	assert.Equal(t, 0.39, plans[0].OveragePricePerKWh)
	assert.Equal(t, "Pro", plans[2].Name)
	assert.Equal(t, 19.99, plans[2].MonthlyFeeUSD)
}
