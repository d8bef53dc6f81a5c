package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/hr-dashboard-service/internal/service"
)

// SeedHandler triggers fixture population.
type SeedHandler struct {
	service *service.SeedService
}

// NewSeedHandler constructs handler.
func NewSeedHandler(seedService *service.SeedService) *SeedHandler {
	return &SeedHandler{service: seedService}
}

// Seed POST /api/seed. Idempotent.
func (h *SeedHandler) Seed(c *fiber.Ctx) error {
	if err := h.service.Seed(c.UserContext()); err != nil {
		return err
	}
	return c.JSON(fiber.Map{
		"message":   "seed data inserted",
		"timestamp": time.Now(),
	})
}
