package service

import (
	"context"
	"time"

	"github.com/spec-kit/hr-dashboard-service/internal/domain"
)

// Report is the downloadable JSON artifact. The field set is contractual;
// byte layout is not.
type Report struct {
	GeneratedAt            string           `json:"generatedAt"`
	TotalActive            int64            `json:"totalActive"`
	DepartmentDistribution map[string]int64 `json:"departmentDistribution"`
	EducationDistribution  map[string]int64 `json:"educationDistribution"`
	KPIs                   KPIs             `json:"kpis"`
}

// ReportService assembles the exported dashboard report.
type ReportService struct {
	stats     *StatsService
	employees *EmployeeService
	now       func() time.Time
}

// NewReportService constructs the service.
func NewReportService(stats *StatsService, employees *EmployeeService) *ReportService {
	return &ReportService{stats: stats, employees: employees, now: time.Now}
}

// BuildReport combines the aggregates and derived KPIs into one artifact.
func (s *ReportService) BuildReport(ctx context.Context) (*Report, error) {
	stats, _, err := s.stats.GetStats(ctx)
	if err != nil {
		return nil, err
	}
	employees, err := s.employees.ListEmployees(ctx, domain.EmployeeFilter{})
	if err != nil {
		return nil, err
	}

	departments := make(map[string]int64, len(stats.Departments))
	for _, dc := range stats.Departments {
		departments[dc.Name] = dc.Count
	}
	education := make(map[string]int64, len(stats.Education))
	for _, ec := range stats.Education {
		education[ec.Education] = ec.Count
	}

	now := s.now()
	return &Report{
		GeneratedAt:            now.Format("2006-01-02 15:04:05 MST"),
		TotalActive:            stats.Active.TotalActive,
		DepartmentDistribution: departments,
		EducationDistribution:  education,
		KPIs:                   DeriveKPIs(stats, employees, now),
	}, nil
}
