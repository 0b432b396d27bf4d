package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/redis/go-redis/v9"

	"ev-trip-service/internal/domain"
	"ev-trip-service/internal/ports"
)

// Redis-backed read-through cache for station listings, decorating a
// StationRepository. Only ListStations results are cached; point reads and
// the port decrement pass straight through. Port counts in cached listings
// may therefore lag reality by up to the TTL.
type RedisStationCache struct {
	Client *redis.Client
	Next   ports.StationRepository
	TTL    time.Duration
}

func NewRedisStationCache(client *redis.Client, next ports.StationRepository, ttl time.Duration) *RedisStationCache {
	return &RedisStationCache{Client: client, Next: next, TTL: ttl}
}

// Return stations from the cache, falling back to the wrapped repository
// on a miss. Redis failures degrade to the repository rather than erroring.
func (c *RedisStationCache) ListStations(ctx context.Context, filter ports.StationFilter) ([]*domain.ChargingStation, error) {
	key := listKey(filter)

	cached, err := c.Client.Get(ctx, key).Result()
	if err == nil {
		var stations []*domain.ChargingStation
		if err := json.Unmarshal([]byte(cached), &stations); err == nil {
			return stations, nil
		}
		log.Printf("station cache: corrupt entry key=%q, refetching", key)
	} else if err != redis.Nil {
		log.Printf("station cache: get key=%q err=%v", key, err)
	}

	stations, err := c.Next.ListStations(ctx, filter)
	if err != nil {
		return nil, err
	}

	payload, err := json.Marshal(stations)
	if err != nil {
		return nil, fmt.Errorf("station cache: marshal stations: %w", err)
	}
	if err := c.Client.Set(ctx, key, payload, c.TTL).Err(); err != nil {
		log.Printf("station cache: set key=%q err=%v", key, err)
	}

	return stations, nil
}

// Point reads are uncached.
func (c *RedisStationCache) GetStation(ctx context.Context, id int64) (*domain.ChargingStation, error) {
	return c.Next.GetStation(ctx, id)
}

// Pass through to the repository. Cached listings age out with the TTL.
func (c *RedisStationCache) DecrementAvailablePorts(ctx context.Context, id int64) error {
	return c.Next.DecrementAvailablePorts(ctx, id)
}

func listKey(filter ports.StationFilter) string {
	return fmt.Sprintf("stations:city=%s:limit=%d", filter.City, filter.Limit)
}
