package service

import (
	"context"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/spec-kit/hr-dashboard-service/internal/domain"
	"github.com/spec-kit/hr-dashboard-service/internal/events"
	"github.com/spec-kit/hr-dashboard-service/internal/repository"
	apperrors "github.com/spec-kit/hr-dashboard-service/pkg/util/errorutil"
)

// StatsSource labels where a stats object came from. Degraded cache serving
// must be visible to callers, never silent.
type StatsSource string

const (
	StatsSourceLive  StatsSource = "live"
	StatsSourceCache StatsSource = "cache"
)

const (
	statsCacheKey = "hr:stats"
	statsCacheTTL = time.Minute
)

// StatsCache is the slice of the Redis wrapper the stats service needs.
// *persistence.Redis satisfies it; a nil cache disables caching entirely.
type StatsCache interface {
	GetJSON(ctx context.Context, key string, dest any) (bool, error)
	SetJSON(ctx context.Context, key string, value any, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
}

// StatsService assembles the dashboard aggregates.
type StatsService struct {
	stats  repository.StatsRepository
	cache  StatsCache
	logger *zap.Logger
}

// NewStatsService constructs the service.
func NewStatsService(stats repository.StatsRepository, cache StatsCache, logger *zap.Logger) *StatsService {
	return &StatsService{stats: stats, cache: cache, logger: logger}
}

// GetStats issues the four independent aggregate reads concurrently and joins
// their results. The object is atomic: any failed read fails the call, unless
// a previously cached object can be served as a flagged fallback.
func (s *StatsService) GetStats(ctx context.Context) (*domain.EmployeeStats, StatsSource, error) {
	var stats domain.EmployeeStats

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		active, err := s.stats.ActiveStats(gctx)
		if err != nil {
			return err
		}
		stats.Active = active
		return nil
	})
	g.Go(func() error {
		turnover, err := s.stats.TurnoverStats(gctx)
		if err != nil {
			return err
		}
		stats.Turnover = turnover
		return nil
	})
	g.Go(func() error {
		departments, err := s.stats.DepartmentCounts(gctx)
		if err != nil {
			return err
		}
		stats.Departments = departments
		return nil
	})
	g.Go(func() error {
		education, err := s.stats.EducationCounts(gctx)
		if err != nil {
			return err
		}
		stats.Education = education
		return nil
	})

	if err := g.Wait(); err != nil {
		if cached := s.cachedStats(ctx); cached != nil {
			s.logger.Warn("serving cached stats after live read failure", zap.Error(err))
			return cached, StatsSourceCache, nil
		}
		return nil, "", apperrors.MapError(err)
	}

	s.storeCache(ctx, &stats)
	return &stats, StatsSourceLive, nil
}

// RegisterHandlers invalidates the cache whenever the underlying data set
// changes.
func (s *StatsService) RegisterHandlers(dispatcher events.Dispatcher) {
	if dispatcher == nil {
		return
	}
	invalidate := func(ctx context.Context, _ events.Event) error {
		s.InvalidateCache(ctx)
		return nil
	}
	dispatcher.Subscribe(events.EventEmployeeCreated, invalidate)
	dispatcher.Subscribe(events.EventSeedCompleted, invalidate)
}

// InvalidateCache drops the cached stats object.
func (s *StatsService) InvalidateCache(ctx context.Context) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Delete(ctx, statsCacheKey); err != nil {
		s.logger.Warn("failed to invalidate stats cache", zap.Error(err))
	}
}

func (s *StatsService) storeCache(ctx context.Context, stats *domain.EmployeeStats) {
	if s.cache == nil {
		return
	}
	if err := s.cache.SetJSON(ctx, statsCacheKey, stats, statsCacheTTL); err != nil {
		s.logger.Debug("failed to cache stats", zap.Error(err))
	}
}

func (s *StatsService) cachedStats(ctx context.Context) *domain.EmployeeStats {
	if s.cache == nil {
		return nil
	}
	var stats domain.EmployeeStats
	hit, err := s.cache.GetJSON(ctx, statsCacheKey, &stats)
	if err != nil || !hit {
		return nil
	}
	return &stats
}
