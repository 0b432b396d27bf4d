package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ev-trip-service/internal/domain"
	"ev-trip-service/internal/ports"
)

type countingStationRepo struct {
	stations  []*domain.ChargingStation
	listCalls int
	getCalls  int
	decrCalls int
}

func (c *countingStationRepo) ListStations(_ context.Context, _ ports.StationFilter) ([]*domain.ChargingStation, error) {
	c.listCalls++
	return c.stations, nil
}

func (c *countingStationRepo) GetStation(_ context.Context, id int64) (*domain.ChargingStation, error) {
	c.getCalls++
	for _, s := range c.stations {
		if s.ID == id {
			return s, nil
		}
	}
	return nil, nil
}

func (c *countingStationRepo) DecrementAvailablePorts(_ context.Context, _ int64) error {
	c.decrCalls++
	return nil
}

func newTestCache(t *testing.T, repo ports.StationRepository) (*RedisStationCache, *miniredis.Miniredis) {
	t.Helper()

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })

	return NewRedisStationCache(client, repo, 30*time.Second), mr
}

func TestRedisStationCacheReadThrough(t *testing.T) {
	power := 150.0
	repo := &countingStationRepo{stations: []*domain.ChargingStation{
		{ID: 1, Name: "Fast Hub", Operator: "Ampora", PowerKW: &power, AvailablePorts: 6},
	}}
	c, _ := newTestCache(t, repo)
	ctx := context.Background()

	filter := ports.StationFilter{Limit: 50}

	first, err := c.ListStations(ctx, filter)
	require.NoError(t, err)
	require.Len(t, first, 1)
	assert.Equal(t, 1, repo.listCalls)

	second, err := c.ListStations(ctx, filter)
	require.NoError(t, err)
	require.Len(t, second, 1)
	assert.Equal(t, 1, repo.listCalls, "second read should be served from cache")

	assert.Equal(t, "Fast Hub", second[0].Name)
	require.NotNil(t, second[0].PowerKW)
	assert.Equal(t, 150.0, *second[0].PowerKW)
}

func TestRedisStationCacheKeysByFilter(t *testing.T) {
	repo := &countingStationRepo{}
	c, _ := newTestCache(t, repo)
	ctx := context.Background()

	_, err := c.ListStations(ctx, ports.StationFilter{Limit: 50})
	require.NoError(t, err)
	_, err = c.ListStations(ctx, ports.StationFilter{City: "San Francisco", Limit: 50})
	require.NoError(t, err)

	assert.Equal(t, 2, repo.listCalls, "different filters must not share a cache entry")
}

func TestRedisStationCacheExpiry(t *testing.T) {
	repo := &countingStationRepo{}
	c, mr := newTestCache(t, repo)
	ctx := context.Background()

	filter := ports.StationFilter{Limit: 50}

	_, err := c.ListStations(ctx, filter)
	require.NoError(t, err)

	mr.FastForward(time.Minute)

	_, err = c.ListStations(ctx, filter)
	require.NoError(t, err)
	assert.Equal(t, 2, repo.listCalls, "expired entry should refetch")
}

func TestRedisStationCachePassThrough(t *testing.T) {
	repo := &countingStationRepo{stations: []*domain.ChargingStation{{ID: 7, Name: "Hub"}}}
	c, _ := newTestCache(t, repo)
	ctx := context.Background()

	st, err := c.GetStation(ctx, 7)
	require.NoError(t, err)
	require.NotNil(t, st)
	assert.Equal(t, 1, repo.getCalls)

	require.NoError(t, c.DecrementAvailablePorts(ctx, 7))
	assert.Equal(t, 1, repo.decrCalls)
}

func TestRedisStationCacheDegradesWhenRedisDown(t *testing.T) {
	repo := &countingStationRepo{stations: []*domain.ChargingStation{{ID: 1, Name: "Hub"}}}
	c, mr := newTestCache(t, repo)
	ctx := context.Background()

	mr.Close()

	stations, err := c.ListStations(ctx, ports.StationFilter{Limit: 50})
	require.NoError(t, err, "redis outage must not fail the listing")
	assert.Len(t, stations, 1)
	assert.Equal(t, 1, repo.listCalls)
}
