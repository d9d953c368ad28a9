package cache

import (
	"context"
	"encoding/json"
	"time"

	redis "github.com/redis/go-redis/v9"

	"github.com/jhoicas/Farmacia-api/internal/application/dto"
)

// RedisDashboardCache caché del dashboard sobre Redis.
type RedisDashboardCache struct {
	client *redis.Client
}

// NewRedisDashboardCache construye el cliente.
func NewRedisDashboardCache(addr, password string, db int) *RedisDashboardCache {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})
	return &RedisDashboardCache{client: client}
}

// Ping verifica conectividad.
func (c *RedisDashboardCache) Ping(ctx context.Context) error {
	return c.client.Ping(ctx).Err()
}

// Close cierra el cliente.
func (c *RedisDashboardCache) Close() error {
	return c.client.Close()
}

// Get devuelve el resumen cacheado; (nil, false, nil) en miss.
func (c *RedisDashboardCache) Get(ctx context.Context, key string) (*dto.DashboardSummaryDTO, bool, error) {
	val, err := c.client.Get(ctx, key).Result()
	if err == redis.Nil {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	var summary dto.DashboardSummaryDTO
	if err := json.Unmarshal([]byte(val), &summary); err != nil {
		return nil, false, err
	}
	return &summary, true, nil
}

// Set guarda el resumen con TTL.
func (c *RedisDashboardCache) Set(ctx context.Context, key string, value *dto.DashboardSummaryDTO, ttl time.Duration) error {
	if value == nil {
		return nil
	}
	payload, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, key, payload, ttl).Err()
}
