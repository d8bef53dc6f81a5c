package service

import (
	"math"
	"time"

	"github.com/spec-kit/hr-dashboard-service/internal/domain"
)

const (
	// standardWorkingDays is the assumed working-day count per year used by
	// the absence-rate derivation.
	standardWorkingDays = 250.0
	// tenureDaysPerYear uses a 365-day year for reproducibility with the
	// historical dashboards.
	tenureDaysPerYear = 365.0
)

// KPIs are the derived dashboard indicators. Percentages and years carry one
// decimal place.
type KPIs struct {
	TurnoverRatePct    float64 `json:"turnoverRatePct"`
	AbsenceRatePct     float64 `json:"absenceRatePct"`
	AverageTenureYears float64 `json:"averageTenureYears"`
}

// DeriveKPIs computes every indicator from a stats object and the current
// employee set. Pure function of its inputs.
func DeriveKPIs(stats *domain.EmployeeStats, employees []domain.Employee, now time.Time) KPIs {
	return KPIs{
		TurnoverRatePct:    TurnoverRatePct(stats.Turnover),
		AbsenceRatePct:     AbsenceRatePct(stats.Active.AvgAbsence),
		AverageTenureYears: AverageTenureYears(employees, now),
	}
}

// TurnoverRatePct is leavers over total hires in the trailing year, as a
// percentage. Zero hires yields 0.0, never a division by zero.
func TurnoverRatePct(t domain.TurnoverStats) float64 {
	if t.TotalEmployees == 0 {
		return 0.0
	}
	return round1(float64(t.LeftEmployees) / float64(t.TotalEmployees) * 100)
}

// AbsenceRatePct expresses average absence days against the standard working
// year. A missing average yields 0.0.
func AbsenceRatePct(avgAbsence *float64) float64 {
	if avgAbsence == nil {
		return 0.0
	}
	return round1(*avgAbsence / standardWorkingDays * 100)
}

// AverageTenureYears is the mean tenure of active employees in years. No
// active employees yields 0.0.
func AverageTenureYears(employees []domain.Employee, now time.Time) float64 {
	var totalYears float64
	var active int
	for _, emp := range employees {
		if !emp.IsActive {
			continue
		}
		days := now.Sub(emp.HireDate).Hours() / 24
		totalYears += days / tenureDaysPerYear
		active++
	}
	if active == 0 {
		return 0.0
	}
	return round1(totalYears / float64(active))
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
