package domain

// ActiveStats aggregates totals over active employees.
type ActiveStats struct {
	TotalActive int64    `json:"total_active"`
	AvgAge      *float64 `json:"avg_age"`
	AvgAbsence  *float64 `json:"avg_absence"`
}

// TurnoverStats counts leavers among employees hired in the trailing year.
type TurnoverStats struct {
	LeftEmployees  int64 `json:"left_employees"`
	TotalEmployees int64 `json:"total_employees"`
}

// DepartmentCount is one row of the department distribution. Departments with
// no active employees still appear with a zero count.
type DepartmentCount struct {
	Name  string `json:"name"`
	Count int64  `json:"count"`
}

// EducationCount is one row of the education distribution over active
// employees with a non-empty education field.
type EducationCount struct {
	Education string `json:"education"`
	Count     int64  `json:"count"`
}

// EmployeeStats combines the four independent aggregates. Callers treat it as
// atomic: a failure of any constituent read fails the whole object.
type EmployeeStats struct {
	Active      ActiveStats       `json:"active"`
	Turnover    TurnoverStats     `json:"turnover"`
	Departments []DepartmentCount `json:"departments"`
	Education   []EducationCount  `json:"education"`
}
