// Package redis backs the role cache sitting in front of the role
// repository. The whole package is optional: when no address is
// configured the application runs without it.
package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	defaultTimeout  = 5 * time.Second
	defaultPoolSize = 10
)

// Config captures the settings for establishing a Redis connection.
type Config struct {
	Addr     string
	DB       int
	PoolSize int
	Timeout  time.Duration
}

// Connect initialises a Redis client and validates connectivity with a
// ping. Zero values fall back to the package defaults.
func Connect(ctx context.Context, cfg Config) (*redis.Client, error) {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	poolSize := cfg.PoolSize
	if poolSize <= 0 {
		poolSize = defaultPoolSize
	}

	client := redis.NewClient(&redis.Options{
		Addr:         cfg.Addr,
		DB:           cfg.DB,
		ClientName:   "gestor",
		PoolSize:     poolSize,
		DialTimeout:  timeout,
		ReadTimeout:  timeout,
		WriteTimeout: timeout,
	})

	pingCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("redis ping: %w", err)
	}

	return client, nil
}
