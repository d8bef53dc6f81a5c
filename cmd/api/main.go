package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	httptransport "github.com/spec-kit/hr-dashboard-service/internal/api/http"
	"github.com/spec-kit/hr-dashboard-service/internal/api/http/handlers"
	"github.com/spec-kit/hr-dashboard-service/internal/config"
	"github.com/spec-kit/hr-dashboard-service/internal/domain"
	"github.com/spec-kit/hr-dashboard-service/internal/events"
	"github.com/spec-kit/hr-dashboard-service/internal/observability"
	"github.com/spec-kit/hr-dashboard-service/internal/persistence"
	"github.com/spec-kit/hr-dashboard-service/internal/repository"
	"github.com/spec-kit/hr-dashboard-service/internal/service"
	"github.com/spec-kit/hr-dashboard-service/internal/storage"
	"github.com/spec-kit/hr-dashboard-service/internal/worker"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger, err := observability.NewLogger(cfg.Logger)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logger.Sync() //nolint:errcheck

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pg, err := persistence.NewPostgres(ctx, cfg.Postgres, logger)
	if err != nil {
		logger.Fatal("failed to connect postgres", zap.Error(err))
	}
	defer pg.Close()

	if cfg.Postgres.RunMigrations {
		if err := persistence.RunMigrations(ctx, pg.PoolHandle(), logger); err != nil {
			logger.Fatal("failed to run migrations", zap.Error(err))
		}
	}

	redis := persistence.NewRedis(cfg.Redis, logger)
	defer redis.Close()

	metrics := observability.NewMetrics()
	dispatcher := events.NewInMemoryDispatcher(logger)

	pool := pg.PoolHandle()
	departmentRepo := repository.NewDepartmentRepository(pool)
	employeeRepo := repository.NewEmployeeRepository(pool)
	statsRepo := repository.NewStatsRepository(pool)
	fileRepo := repository.NewEmployeeFileRepository(pool)

	employeeService := service.NewEmployeeService(service.EmployeeDependencies{
		EmployeeRepo:   employeeRepo,
		DepartmentRepo: departmentRepo,
		Dispatcher:     dispatcher,
		Duplicates:     cfg.Policy.Duplicate,
	})
	statsService := service.NewStatsService(statsRepo, redis, logger)
	statsService.RegisterHandlers(dispatcher)
	seedService := service.NewSeedService(departmentRepo, employeeRepo, dispatcher, logger, cfg.Seed)
	uploadService := service.NewUploadService(service.UploadDependencies{
		Store:        storage.NewLocalStorage(cfg.Upload.Dir, cfg.Upload.BaseURL),
		EmployeeRepo: employeeRepo,
		FileRepo:     fileRepo,
		Dispatcher:   dispatcher,
		MaxBytes:     cfg.Upload.MaxBytes,
	})
	reportService := service.NewReportService(statsService, employeeService)

	auditService := service.NewAuditService(dispatcher, logger)
	worker.StartAuditWorker(auditService)

	if err := seedService.Seed(ctx); err != nil {
		logger.Warn("initial seed failed", zap.Error(err))
	}

	// BodyLimit stays above the upload cap so oversized files are rejected
	// with the documented 400, not a transport-level 413.
	app := fiber.New(fiber.Config{
		AppName:               cfg.App.Name,
		BodyLimit:             int(2 * domain.MaxUploadBytes),
		DisableStartupMessage: cfg.App.Production(),
	})
	httptransport.RegisterMiddlewares(app, logger, metrics, cfg.App.RequestTimeout())

	app.Static(cfg.Upload.BaseURL, cfg.Upload.Dir)

	httptransport.RegisterRoutes(app, httptransport.RouteConfig{
		Health:    handlers.NewHealthHandler(cfg.App.Name, cfg.App.Version, pg, redis),
		Employees: handlers.NewEmployeesHandler(employeeService),
		Stats:     handlers.NewStatsHandler(statsService),
		Seed:      handlers.NewSeedHandler(seedService),
		Upload:    handlers.NewUploadHandler(uploadService),
		Report:    handlers.NewReportHandler(reportService),
		Metrics:   handlers.NewMetricsHandler(metrics),
	})

	go func() {
		if err := app.Listen(cfg.App.Addr()); err != nil {
			logger.Fatal("fiber listen", zap.Error(err))
		}
	}()

	waitForShutdown(logger)

	_ = app.Shutdown()
}

func waitForShutdown(logger *zap.Logger) {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	sig := <-sigCh
	logger.Info("shutting down", zap.String("signal", sig.String()))
}
