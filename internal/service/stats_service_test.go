package service

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/spec-kit/hr-dashboard-service/internal/domain"
	apperrors "github.com/spec-kit/hr-dashboard-service/pkg/util/errorutil"
)

func TestGetStats(t *testing.T) {
	ctx := context.Background()

	t.Run("joins the four aggregates", func(t *testing.T) {
		avgAge := 34.5
		repo := &fakeStatsRepo{
			active:   domain.ActiveStats{TotalActive: 42, AvgAge: &avgAge},
			turnover: domain.TurnoverStats{LeftEmployees: 2, TotalEmployees: 10},
			departments: []domain.DepartmentCount{
				{Name: "Engineering", Count: 30},
				{Name: "HR", Count: 0},
			},
			education: []domain.EducationCount{
				{Education: "BSc", Count: 12},
			},
		}
		svc := NewStatsService(repo, nil, zap.NewNop())

		stats, source, err := svc.GetStats(ctx)
		require.NoError(t, err)
		assert.Equal(t, StatsSourceLive, source)
		assert.Equal(t, int64(42), stats.Active.TotalActive)
		assert.Equal(t, int64(10), stats.Turnover.TotalEmployees)
		assert.Len(t, stats.Departments, 2)
		assert.Len(t, stats.Education, 1)
	})

	t.Run("zero-count departments survive the join", func(t *testing.T) {
		repo := &fakeStatsRepo{
			departments: []domain.DepartmentCount{{Name: "Empty Dept", Count: 0}},
		}
		svc := NewStatsService(repo, nil, zap.NewNop())

		stats, _, err := svc.GetStats(ctx)
		require.NoError(t, err)
		require.Len(t, stats.Departments, 1)
		assert.Zero(t, stats.Departments[0].Count)
	})

	t.Run("any failed read fails the whole call without a cache", func(t *testing.T) {
		repo := &fakeStatsRepo{turnoverErr: errBoom}
		svc := NewStatsService(repo, nil, zap.NewNop())

		_, _, err := svc.GetStats(ctx)
		require.Error(t, err)
		assert.Equal(t, http.StatusInternalServerError, apperrors.ToDomainError(err).HTTPStatus)
	})

	t.Run("warm cache serves a flagged fallback when a read fails", func(t *testing.T) {
		repo := &fakeStatsRepo{
			active:      domain.ActiveStats{TotalActive: 7},
			departments: []domain.DepartmentCount{{Name: "Engineering", Count: 7}},
		}
		cache := newFakeStatsCache()
		svc := NewStatsService(repo, cache, zap.NewNop())

		// First call succeeds and warms the cache.
		_, source, err := svc.GetStats(ctx)
		require.NoError(t, err)
		require.Equal(t, StatsSourceLive, source)
		require.Contains(t, cache.entries, statsCacheKey)

		repo.turnoverErr = errBoom

		stats, source, err := svc.GetStats(ctx)
		require.NoError(t, err)
		assert.Equal(t, StatsSourceCache, source)
		assert.Equal(t, int64(7), stats.Active.TotalActive)
		require.Len(t, stats.Departments, 1)
		assert.Equal(t, "Engineering", stats.Departments[0].Name)
	})

	t.Run("cold cache does not mask a failed read", func(t *testing.T) {
		repo := &fakeStatsRepo{turnoverErr: errBoom}
		svc := NewStatsService(repo, newFakeStatsCache(), zap.NewNop())

		_, _, err := svc.GetStats(ctx)
		require.Error(t, err)
	})
}

func TestInvalidateCacheDropsEntry(t *testing.T) {
	ctx := context.Background()
	repo := &fakeStatsRepo{active: domain.ActiveStats{TotalActive: 3}}
	cache := newFakeStatsCache()
	svc := NewStatsService(repo, cache, zap.NewNop())

	_, _, err := svc.GetStats(ctx)
	require.NoError(t, err)
	require.Contains(t, cache.entries, statsCacheKey)

	svc.InvalidateCache(ctx)
	assert.NotContains(t, cache.entries, statsCacheKey)
}
