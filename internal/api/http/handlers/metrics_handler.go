package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/hr-dashboard-service/internal/observability"
)

// MetricsHandler exposes the in-memory request counters.
type MetricsHandler struct {
	metrics *observability.Metrics
}

// NewMetricsHandler constructs handler.
func NewMetricsHandler(metrics *observability.Metrics) *MetricsHandler {
	return &MetricsHandler{metrics: metrics}
}

// Get GET /api/metrics.
func (h *MetricsHandler) Get(c *fiber.Ctx) error {
	routes, errCounts := h.metrics.Snapshot()
	return c.JSON(fiber.Map{
		"routes": routes,
		"errors": errCounts,
	})
}
