package handlers

import (
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/hr-dashboard-service/internal/service"
)

// ReportHandler serves the downloadable JSON report.
type ReportHandler struct {
	service *service.ReportService
}

// NewReportHandler constructs handler.
func NewReportHandler(reportService *service.ReportService) *ReportHandler {
	return &ReportHandler{service: reportService}
}

// Get GET /api/report.
func (h *ReportHandler) Get(c *fiber.Ctx) error {
	report, err := h.service.BuildReport(c.UserContext())
	if err != nil {
		return err
	}
	c.Set(fiber.HeaderContentDisposition,
		fmt.Sprintf(`attachment; filename="hr-report-%s.json"`, time.Now().Format("2006-01-02")))
	return c.JSON(report)
}
