package config

import (
	"context"
	"fmt"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port          string `env:"PORT,           default=8080"`
	Env           string `env:"ENV,            default=development"`
	TokenSecret   string `env:"TOKEN_SECRET"`
	CookieDomain  string `env:"COOKIE_DOMAIN,  default=localhost"`
	CORSOrigin    string `env:"CORS_ORIGIN,    default=http://localhost:3000"`
	LogLevel      string `env:"LOG_LEVEL,      default=info"`
	AdminPassword string `env:"ADMIN_PASSWORD, default=Mudar123!"`

	Database DatabaseConfig
	Redis    RedisConfig
}

type DatabaseConfig struct {
	Path string `env:"DB_PATH, default=data/gestor.db"`
}

// RedisConfig is optional: an empty Addr disables the role cache.
type RedisConfig struct {
	Addr     string `env:"REDIS_ADDR"`
	DB       int    `env:"REDIS_DB, default=0"`
	PoolSize int    `env:"REDIS_POOL_SIZE, default=10"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load() *Config {
	var cfg Config
	if err := envconfig.Process(context.Background(), &cfg); err != nil {
		panic(fmt.Sprintf("config: failed to load configuration: %v", err))
	}
	return &cfg
}
