package handlers

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/hr-dashboard-service/internal/persistence"
)

// HealthHandler reports storage backend liveness.
type HealthHandler struct {
	serviceName string
	version     string
	postgres    *persistence.Postgres
	redis       *persistence.Redis
}

// NewHealthHandler returns a new handler instance.
func NewHealthHandler(serviceName, version string, postgres *persistence.Postgres, redis *persistence.Redis) *HealthHandler {
	return &HealthHandler{serviceName: serviceName, version: version, postgres: postgres, redis: redis}
}

// Check GET /api/health. One trivial round-trip query against the database;
// Redis reachability is reported but never fails the probe.
func (h *HealthHandler) Check(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.UserContext(), 2*time.Second)
	defer cancel()

	var now time.Time
	pool := h.postgres.PoolHandle()
	if pool == nil {
		return unhealthy(c, "database pool not configured")
	}
	if err := pool.QueryRow(ctx, "SELECT NOW()").Scan(&now); err != nil {
		return unhealthy(c, err.Error())
	}

	cache := "ok"
	if err := h.redis.Ping(ctx); err != nil {
		cache = "unreachable"
	}

	return c.JSON(fiber.Map{
		"status":    "ok",
		"service":   h.serviceName,
		"version":   h.version,
		"database":  "connected",
		"cache":     cache,
		"timestamp": now,
	})
}

func unhealthy(c *fiber.Ctx, detail string) error {
	return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
		"status":   "unhealthy",
		"database": "disconnected",
		"error":    detail,
	})
}
