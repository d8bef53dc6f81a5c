package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/hr-dashboard-service/internal/domain"
	"github.com/spec-kit/hr-dashboard-service/internal/service"
)

// StatsHandler serves the aggregate statistics endpoint.
type StatsHandler struct {
	service *service.StatsService
}

// NewStatsHandler constructs handler.
func NewStatsHandler(statsService *service.StatsService) *StatsHandler {
	return &StatsHandler{service: statsService}
}

type statsResponse struct {
	domain.EmployeeStats
	Source service.StatsSource `json:"source"`
}

// Get GET /api/stats. The source flag distinguishes live data from the
// degraded cache fallback.
func (h *StatsHandler) Get(c *fiber.Ctx) error {
	stats, source, err := h.service.GetStats(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(statsResponse{EmployeeStats: *stats, Source: source})
}
