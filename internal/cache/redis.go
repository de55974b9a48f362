package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/travelease/booking/config"
	"github.com/travelease/booking/internal/domain"
)

type RedisCache struct {
	client     *redis.Client
	flightsTTL time.Duration
}

func NewRedisCache(cfg config.RedisConfig, flightsTTL time.Duration) *RedisCache {
	return &RedisCache{
		client:     redis.NewClient(&redis.Options{Addr: cfg.Addr, Password: cfg.Password, DB: cfg.DB}),
		flightsTTL: flightsTTL,
	}
}

// Client exposes the underlying connection for middleware that shares it.
func (c *RedisCache) Client() *redis.Client {
	return c.client
}

func (c *RedisCache) GetFlights(ctx context.Context) ([]domain.Flight, error) {
	data, err := c.client.Get(ctx, flightsKey()).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, nil
		}
		return nil, err
	}

	var flights []domain.Flight
	if err := json.Unmarshal(data, &flights); err != nil {
		return nil, err
	}
	return flights, nil
}

func (c *RedisCache) SetFlights(ctx context.Context, flights []domain.Flight) error {
	payload, err := json.Marshal(flights)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, flightsKey(), payload, c.flightsTTL).Err()
}

// AcquireCancelLock serializes cancellations per booking reference so that at
// most one of two racing cancel calls reaches the store.
func (c *RedisCache) AcquireCancelLock(ctx context.Context, reference string, ttl time.Duration) (bool, error) {
	return c.client.SetNX(ctx, cancelLockKey(reference), "locked", ttl).Result()
}

func (c *RedisCache) ReleaseCancelLock(ctx context.Context, reference string) error {
	return c.client.Del(ctx, cancelLockKey(reference)).Err()
}

func flightsKey() string {
	return "cache:flights"
}

func cancelLockKey(reference string) string {
	return fmt.Sprintf("lock:booking:cancel:%s", reference)
}
