package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/hr-dashboard-service/internal/api/http/handlers"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health    *handlers.HealthHandler
	Employees *handlers.EmployeesHandler
	Stats     *handlers.StatsHandler
	Seed      *handlers.SeedHandler
	Upload    *handlers.UploadHandler
	Report    *handlers.ReportHandler
	Metrics   *handlers.MetricsHandler
}

// RegisterRoutes wires HTTP routes.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	api := app.Group("/api")

	api.Get("/health", cfg.Health.Check)
	api.Get("/metrics", cfg.Metrics.Get)

	api.Get("/employees", cfg.Employees.List)
	api.Post("/employees", cfg.Employees.Create)
	api.Get("/employees/:id/files", cfg.Upload.ListFiles)
	api.Post("/employees/:id/files", cfg.Upload.AttachFile)

	api.Get("/stats", cfg.Stats.Get)
	api.Post("/seed", cfg.Seed.Seed)
	api.Post("/upload", cfg.Upload.Upload)
	api.Get("/report", cfg.Report.Get)
}
