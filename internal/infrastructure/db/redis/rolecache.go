package redis

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/gestorlabs/gestor/internal/api/metrics"
	"github.com/gestorlabs/gestor/internal/core/domain"
	"github.com/gestorlabs/gestor/internal/core/ports"
)

const roleCacheTTL = 5 * time.Minute

var errCacheMiss = errors.New("cache miss")

// cacheStore is the slice of redis the role cache needs. Get reports an
// absent key as errCacheMiss.
type cacheStore interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Del(ctx context.Context, key string) error
}

type redisStore struct {
	client *redis.Client
}

func (s redisStore) Get(ctx context.Context, key string) ([]byte, error) {
	raw, err := s.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, errCacheMiss
	}
	return raw, err
}

func (s redisStore) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	return s.client.Set(ctx, key, value, ttl).Err()
}

func (s redisStore) Del(ctx context.Context, key string) error {
	return s.client.Del(ctx, key).Err()
}

// RoleCache decorates a ports.RoleRepository with a read-through Redis
// cache on FindByUUID. Every request gate hits that lookup, so caching
// it keeps the hot path off the database. Writes invalidate the cached
// entry; listing and ordinal queries pass through untouched.
type RoleCache struct {
	inner ports.RoleRepository
	store cacheStore
}

// NewRoleCache wraps repo with a Redis-backed role cache.
func NewRoleCache(repo ports.RoleRepository, client *redis.Client) *RoleCache {
	return &RoleCache{inner: repo, store: redisStore{client: client}}
}

var _ ports.RoleRepository = (*RoleCache)(nil)

func (c *RoleCache) FindByUUID(ctx context.Context, id uuid.UUID) (*domain.Role, error) {
	key := c.key(id)

	raw, err := c.store.Get(ctx, key)
	if err == nil {
		var role domain.Role
		if err := json.Unmarshal(raw, &role); err == nil {
			metrics.RoleCacheTotal.WithLabelValues("hit").Inc()
			return &role, nil
		}
		// Corrupt entry: drop it and fall through to the database.
		_ = c.store.Del(ctx, key)
	}
	metrics.RoleCacheTotal.WithLabelValues("miss").Inc()

	role, err := c.inner.FindByUUID(ctx, id)
	if err != nil {
		return nil, err
	}

	if raw, err := json.Marshal(role); err == nil {
		_ = c.store.Set(ctx, key, raw, roleCacheTTL)
	}
	return role, nil
}

func (c *RoleCache) List(ctx context.Context, filter ports.RoleFilter) ([]domain.Role, error) {
	return c.inner.List(ctx, filter)
}

func (c *RoleCache) NextOrdinal(ctx context.Context) (int, error) {
	return c.inner.NextOrdinal(ctx)
}

func (c *RoleCache) Create(ctx context.Context, role *domain.Role) error {
	if err := c.inner.Create(ctx, role); err != nil {
		return err
	}
	_ = c.store.Del(ctx, c.key(role.UUID))
	return nil
}

func (c *RoleCache) Update(ctx context.Context, role *domain.Role) error {
	if err := c.inner.Update(ctx, role); err != nil {
		return err
	}
	_ = c.store.Del(ctx, c.key(role.UUID))
	return nil
}

func (c *RoleCache) Delete(ctx context.Context, id uuid.UUID) error {
	if err := c.inner.Delete(ctx, id); err != nil {
		return err
	}
	_ = c.store.Del(ctx, c.key(id))
	return nil
}

func (c *RoleCache) key(id uuid.UUID) string {
	return "role:" + id.String()
}
