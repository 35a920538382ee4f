package redisx

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/vendora/marketplace-service/internal/domain"
)

const tenantKeyPrefix = "tenant:"

// TenantCache is the Redis read-through cache for tenant resolution. Every
// request hits Resolve, so white-label rows are cached with a short TTL;
// admin updates invalidate eagerly. Cache errors degrade to a repo read.
type TenantCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewTenantCache(addr, password string, db int, ttl time.Duration) *TenantCache {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})
	return &TenantCache{client: client, ttl: ttl}
}

func (c *TenantCache) Get(ctx context.Context, key string) (*domain.Tenant, bool) {
	raw, err := c.client.Get(ctx, tenantKeyPrefix+key).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			slog.Warn("tenant cache read failed", "tenant_key", key, "error", err.Error())
		}
		return nil, false
	}

	var tenant domain.Tenant
	if err := json.Unmarshal(raw, &tenant); err != nil {
		slog.Warn("tenant cache entry corrupt, dropping", "tenant_key", key, "error", err.Error())
		c.client.Del(ctx, tenantKeyPrefix+key)
		return nil, false
	}
	return &tenant, true
}

func (c *TenantCache) Set(ctx context.Context, tenant *domain.Tenant) {
	raw, err := json.Marshal(tenant)
	if err != nil {
		return
	}
	if err := c.client.Set(ctx, tenantKeyPrefix+tenant.Key, raw, c.ttl).Err(); err != nil {
		slog.Warn("tenant cache write failed", "tenant_key", tenant.Key, "error", err.Error())
	}
}

func (c *TenantCache) Invalidate(ctx context.Context, key string) {
	if err := c.client.Del(ctx, tenantKeyPrefix+key).Err(); err != nil {
		slog.Warn("tenant cache invalidation failed", "tenant_key", key, "error", err.Error())
	}
}

func (c *TenantCache) Close() error {
	return c.client.Close()
}
