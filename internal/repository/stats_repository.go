package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/hr-dashboard-service/internal/domain"
)

// StatsRepository issues the aggregate reads behind the dashboard. The four
// queries are side-effect free and independent of one another.
type StatsRepository interface {
	ActiveStats(ctx context.Context) (domain.ActiveStats, error)
	TurnoverStats(ctx context.Context) (domain.TurnoverStats, error)
	DepartmentCounts(ctx context.Context) ([]domain.DepartmentCount, error)
	EducationCounts(ctx context.Context) ([]domain.EducationCount, error)
}

type statsRepository struct {
	pool *pgxpool.Pool
}

// NewStatsRepository builds the repository.
func NewStatsRepository(pool *pgxpool.Pool) StatsRepository {
	return &statsRepository{pool: pool}
}

func (r *statsRepository) ActiveStats(ctx context.Context) (domain.ActiveStats, error) {
	const query = `
        SELECT COUNT(*), AVG(age), AVG(absence_days)
        FROM employees
        WHERE is_active = TRUE`
	var stats domain.ActiveStats
	if err := r.pool.QueryRow(ctx, query).Scan(
		&stats.TotalActive,
		&stats.AvgAge,
		&stats.AvgAbsence,
	); err != nil {
		return domain.ActiveStats{}, err
	}
	return stats, nil
}

// TurnoverStats scopes the ratio to employees hired in the trailing year.
func (r *statsRepository) TurnoverStats(ctx context.Context) (domain.TurnoverStats, error) {
	const query = `
        SELECT COALESCE(SUM(CASE WHEN is_active = FALSE THEN 1 ELSE 0 END), 0), COUNT(*)
        FROM employees
        WHERE hire_date >= NOW() - INTERVAL '1 year'`
	var stats domain.TurnoverStats
	if err := r.pool.QueryRow(ctx, query).Scan(
		&stats.LeftEmployees,
		&stats.TotalEmployees,
	); err != nil {
		return domain.TurnoverStats{}, err
	}
	return stats, nil
}

// DepartmentCounts keeps zero-count departments in the distribution.
func (r *statsRepository) DepartmentCounts(ctx context.Context) ([]domain.DepartmentCount, error) {
	const query = `
        SELECT d.name, COUNT(e.id)
        FROM departments d
        LEFT JOIN employees e ON d.id = e.department_id AND e.is_active = TRUE
        GROUP BY d.id, d.name
        ORDER BY d.name`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.DepartmentCount
	for rows.Next() {
		var dc domain.DepartmentCount
		if err := rows.Scan(&dc.Name, &dc.Count); err != nil {
			return nil, err
		}
		result = append(result, dc)
	}
	return result, rows.Err()
}

func (r *statsRepository) EducationCounts(ctx context.Context) ([]domain.EducationCount, error) {
	const query = `
        SELECT education, COUNT(*)
        FROM employees
        WHERE is_active = TRUE AND education IS NOT NULL AND education != ''
        GROUP BY education
        ORDER BY education`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.EducationCount
	for rows.Next() {
		var ec domain.EducationCount
		if err := rows.Scan(&ec.Education, &ec.Count); err != nil {
			return nil, err
		}
		result = append(result, ec)
	}
	return result, rows.Err()
}
