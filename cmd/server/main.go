package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"

	"github.com/gestorlabs/gestor/internal/api"
	"github.com/gestorlabs/gestor/internal/infrastructure/config"
	redisdb "github.com/gestorlabs/gestor/internal/infrastructure/db/redis"
	"github.com/gestorlabs/gestor/internal/infrastructure/db/sqlite"
	"github.com/gestorlabs/gestor/pkg/logger"
)

func main() {
	// A .env file is a convenience for local runs; absence is fine.
	_ = godotenv.Load()

	cfg := config.Load()

	log := logger.Init(logger.Options{
		Level:   cfg.LogLevel,
		Pretty:  cfg.Env == "development",
		Service: "gestor",
	})

	if cfg.TokenSecret == "" {
		log.Fatal().Msg("TOKEN_SECRET must be set")
	}

	db, err := sqlite.Connect(sqlite.Config{
		Path:  cfg.Database.Path,
		Debug: cfg.Env == "development",
	})
	if err != nil {
		log.Fatal().Err(err).Msg("database connection failed")
	}
	if err := sqlite.Seed(db, cfg.AdminPassword); err != nil {
		log.Fatal().Err(err).Msg("database seed failed")
	}

	rdb, err := connectRedis(cfg)
	if err != nil {
		log.Fatal().Err(err).Str("addr", cfg.Redis.Addr).Msg("redis connection failed")
	}
	if rdb == nil {
		log.Info().Msg("redis disabled, role cache off")
	}

	e := api.NewRouter(db, rdb, api.RouterConfig{
		TokenSecret:  cfg.TokenSecret,
		CookieDomain: cfg.CookieDomain,
		CORSOrigin:   cfg.CORSOrigin,
	}, log)

	go func() {
		log.Info().Str("port", cfg.Port).Msg("starting server")
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server stopped")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("shutdown failed")
	}
	log.Info().Msg("server stopped")
}

func connectRedis(cfg *config.Config) (*redis.Client, error) {
	if cfg.Redis.Addr == "" {
		return nil, nil
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return redisdb.Connect(ctx, redisdb.Config{
		Addr:     cfg.Redis.Addr,
		DB:       cfg.Redis.DB,
		PoolSize: cfg.Redis.PoolSize,
	})
}
