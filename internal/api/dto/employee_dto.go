package dto

import (
	"strconv"
	"strings"
	"time"

	"github.com/spec-kit/hr-dashboard-service/internal/domain"
)

// OptionalInt decodes a JSON number or numeric string. Unparseable input for
// an optional field is treated as absent, never as an error.
type OptionalInt struct {
	Value *int
}

func (o *OptionalInt) UnmarshalJSON(data []byte) error {
	s := strings.TrimSpace(string(data))
	if s == "null" {
		return nil
	}
	s = strings.TrimSpace(strings.Trim(s, `"`))
	if s == "" {
		return nil
	}
	if v, err := strconv.Atoi(s); err == nil {
		o.Value = &v
		return nil
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		v := int(f)
		o.Value = &v
	}
	return nil
}

// OptionalFloat decodes a JSON number or numeric string, absent when
// unparseable.
type OptionalFloat struct {
	Value *float64
}

func (o *OptionalFloat) UnmarshalJSON(data []byte) error {
	s := strings.TrimSpace(string(data))
	if s == "null" {
		return nil
	}
	s = strings.TrimSpace(strings.Trim(s, `"`))
	if s == "" {
		return nil
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		o.Value = &f
	}
	return nil
}

// CreateEmployeeRequest payload.
type CreateEmployeeRequest struct {
	Name       string        `json:"name"`
	Department string        `json:"department"`
	Position   string        `json:"position"`
	HireDate   string        `json:"hireDate"`
	Education  string        `json:"education"`
	Age        OptionalInt   `json:"age"`
	Salary     OptionalFloat `json:"salary"`
	Gender     string        `json:"gender"`
}

// EmployeeResponse mirrors the persisted row, department name embedded.
type EmployeeResponse struct {
	ID             int64     `json:"id"`
	Name           string    `json:"name"`
	DepartmentID   int64     `json:"department_id"`
	DepartmentName string    `json:"department_name"`
	Position       string    `json:"position"`
	HireDate       string    `json:"hire_date"`
	Education      string    `json:"education"`
	Age            *int      `json:"age"`
	Salary         *float64  `json:"salary"`
	Gender         string    `json:"gender"`
	IsActive       bool      `json:"is_active"`
	AbsenceDays    int       `json:"absence_days"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// NewEmployeeResponse converts a domain record.
func NewEmployeeResponse(emp *domain.Employee) EmployeeResponse {
	return EmployeeResponse{
		ID:             emp.ID,
		Name:           emp.Name,
		DepartmentID:   emp.DepartmentID,
		DepartmentName: emp.DepartmentName,
		Position:       emp.Position,
		HireDate:       emp.HireDate.Format("2006-01-02"),
		Education:      emp.Education,
		Age:            emp.Age,
		Salary:         emp.Salary,
		Gender:         emp.Gender,
		IsActive:       emp.IsActive,
		AbsenceDays:    emp.AbsenceDays,
		CreatedAt:      emp.CreatedAt,
		UpdatedAt:      emp.UpdatedAt,
	}
}
