// Package cache provides the redis-backed per-vehicle booking lock and the
// short-lived dashboard cache.
package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"vehicle-rental-backend/internal/config"
	"vehicle-rental-backend/internal/domain"
)

type RedisCache struct {
	client       *redis.Client
	dashboardTTL time.Duration
}

func NewRedisCache(cfg config.RedisConfig, dashboardTTL time.Duration) *RedisCache {
	return &RedisCache{
		client:       redis.NewClient(&redis.Options{Addr: cfg.Addr, Password: cfg.Password, DB: cfg.DB}),
		dashboardTTL: dashboardTTL,
	}
}

// AcquireVehicleLock serializes check-then-book per vehicle. The lock TTL
// bounds how long a crashed holder can block a vehicle.
func (c *RedisCache) AcquireVehicleLock(ctx context.Context, vehicleID string, ttl time.Duration) (bool, error) {
	return c.client.SetNX(ctx, vehicleLockKey(vehicleID), "locked", ttl).Result()
}

func (c *RedisCache) ReleaseVehicleLock(ctx context.Context, vehicleID string) error {
	return c.client.Del(ctx, vehicleLockKey(vehicleID)).Err()
}

func (c *RedisCache) GetDashboard(ctx context.Context) (*domain.DashboardData, error) {
	data, err := c.client.Get(ctx, dashboardKey()).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, nil
		}
		return nil, err
	}

	var dashboard domain.DashboardData
	if err := json.Unmarshal(data, &dashboard); err != nil {
		return nil, err
	}
	return &dashboard, nil
}

func (c *RedisCache) SetDashboard(ctx context.Context, dashboard *domain.DashboardData) error {
	payload, err := json.Marshal(dashboard)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, dashboardKey(), payload, c.dashboardTTL).Err()
}

func (c *RedisCache) Close() error {
	return c.client.Close()
}

func vehicleLockKey(vehicleID string) string {
	return fmt.Sprintf("lock:vehicle:%s", vehicleID)
}

func dashboardKey() string {
	return "cache:dashboard"
}
