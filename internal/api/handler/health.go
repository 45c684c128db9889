package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// HealthHandler handles GET /health, the liveness probe. Returns 200
// immediately; confirms the process is alive.
type HealthHandler struct{}

func NewHealthHandler() *HealthHandler {
	return &HealthHandler{}
}

func (h *HealthHandler) Liveness(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{
		"status": "ok",
	})
}

// ReadinessHandler handles GET /health/ready, the readiness probe. Checks
// the relational store and, when configured, Redis before declaring
// the service ready.
type ReadinessHandler struct {
	db    *gorm.DB
	redis *redis.Client
}

func NewReadinessHandler(db *gorm.DB, rdb *redis.Client) *ReadinessHandler {
	return &ReadinessHandler{db: db, redis: rdb}
}

type dependencyStatus struct {
	Status string `json:"status"`
	Error  string `json:"error,omitempty"`
}

func (h *ReadinessHandler) Readiness(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 2*time.Second)
	defer cancel()

	deps := map[string]dependencyStatus{}
	healthy := true

	dbStatus := dependencyStatus{Status: "ok"}
	if sqlDB, err := h.db.DB(); err != nil {
		dbStatus = dependencyStatus{Status: "down", Error: err.Error()}
		healthy = false
	} else if err := sqlDB.PingContext(ctx); err != nil {
		dbStatus = dependencyStatus{Status: "down", Error: err.Error()}
		healthy = false
	}
	deps["database"] = dbStatus

	if h.redis != nil {
		redisStatus := dependencyStatus{Status: "ok"}
		if err := h.redis.Ping(ctx).Err(); err != nil {
			redisStatus = dependencyStatus{Status: "down", Error: err.Error()}
			healthy = false
		}
		deps["redis"] = redisStatus
	}

	code := http.StatusOK
	status := "ready"
	if !healthy {
		code = http.StatusServiceUnavailable
		status = "degraded"
	}

	return c.JSON(code, map[string]any{
		"status":       status,
		"dependencies": deps,
	})
}
