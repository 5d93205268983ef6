package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/BruksfildServices01/salon-scheduler/internal/models"
)

// Cache guarda a lista de serviços do catálogo por um TTL definido
// por quem cria o cache.
type Cache interface {
	Get(ctx context.Context) ([]models.Service, bool)
	Set(ctx context.Context, services []models.Service) error
	Invalidate(ctx context.Context) error
}

// --------------------------------------------------
// Memória
// --------------------------------------------------

type MemoryCache struct {
	mu       sync.RWMutex
	ttl      time.Duration
	now      func() time.Time
	services []models.Service
	expires  time.Time
}

func NewMemoryCache(ttl time.Duration, now func() time.Time) *MemoryCache {
	if now == nil {
		now = time.Now
	}
	return &MemoryCache{ttl: ttl, now: now}
}

func (c *MemoryCache) Get(_ context.Context) ([]models.Service, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if c.services == nil || !c.now().Before(c.expires) {
		return nil, false
	}

	out := make([]models.Service, len(c.services))
	copy(out, c.services)
	return out, true
}

func (c *MemoryCache) Set(_ context.Context, services []models.Service) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.services = make([]models.Service, len(services))
	copy(c.services, services)
	c.expires = c.now().Add(c.ttl)
	return nil
}

func (c *MemoryCache) Invalidate(_ context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.services = nil
	c.expires = time.Time{}
	return nil
}

// --------------------------------------------------
// Redis
// --------------------------------------------------

const redisKey = "catalog:services"

type RedisCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisCache(client *redis.Client, ttl time.Duration) *RedisCache {
	return &RedisCache{client: client, ttl: ttl}
}

func (c *RedisCache) Get(ctx context.Context) ([]models.Service, bool) {
	raw, err := c.client.Get(ctx, redisKey).Bytes()
	if err != nil {
		return nil, false
	}

	var services []models.Service
	if err := json.Unmarshal(raw, &services); err != nil {
		return nil, false
	}
	return services, true
}

func (c *RedisCache) Set(ctx context.Context, services []models.Service) error {
	raw, err := json.Marshal(services)
	if err != nil {
		return fmt.Errorf("failed to marshal catalog: %w", err)
	}

	if err := c.client.Set(ctx, redisKey, raw, c.ttl).Err(); err != nil {
		return fmt.Errorf("failed to cache catalog: %w", err)
	}
	return nil
}

func (c *RedisCache) Invalidate(ctx context.Context) error {
	if err := c.client.Del(ctx, redisKey).Err(); err != nil && !errors.Is(err, redis.Nil) {
		return fmt.Errorf("failed to invalidate catalog: %w", err)
	}
	return nil
}
