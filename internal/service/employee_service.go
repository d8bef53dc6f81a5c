package service

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/hr-dashboard-service/internal/config"
	"github.com/spec-kit/hr-dashboard-service/internal/domain"
	"github.com/spec-kit/hr-dashboard-service/internal/events"
	"github.com/spec-kit/hr-dashboard-service/internal/repository"
	"github.com/spec-kit/hr-dashboard-service/internal/validation"
	apperrors "github.com/spec-kit/hr-dashboard-service/pkg/util/errorutil"
)

// EmployeeService coordinates employee workflows.
type EmployeeService struct {
	employees   repository.EmployeeRepository
	departments repository.DepartmentRepository
	dispatcher  events.Dispatcher
	duplicates  config.DuplicatePolicy
	now         func() time.Time
}

// EmployeeDependencies bundles collaborators for the employee service.
type EmployeeDependencies struct {
	EmployeeRepo   repository.EmployeeRepository
	DepartmentRepo repository.DepartmentRepository
	Dispatcher     events.Dispatcher
	Duplicates     config.DuplicatePolicy
}

// EmployeeCreateInput describes the employee creation payload after DTO
// coercion. Optional numerics arrive nil when absent or unparseable.
type EmployeeCreateInput struct {
	Name       string
	Department string
	Position   string
	HireDate   string
	Education  string
	Age        *int
	Salary     *float64
	Gender     string
}

// NewEmployeeService constructs the service.
func NewEmployeeService(deps EmployeeDependencies) *EmployeeService {
	return &EmployeeService{
		employees:   deps.EmployeeRepo,
		departments: deps.DepartmentRepo,
		dispatcher:  deps.Dispatcher,
		duplicates:  deps.Duplicates,
		now:         time.Now,
	}
}

// CreateEmployee validates the payload, resolves the department reference and
// persists the record, returning it as re-read from storage.
func (s *EmployeeService) CreateEmployee(ctx context.Context, input EmployeeCreateInput) (*domain.Employee, error) {
	result := validation.ValidateEmployee(validation.EmployeeInput{
		Name:       input.Name,
		Department: input.Department,
		Position:   input.Position,
		HireDate:   input.HireDate,
		Education:  input.Education,
		Age:        input.Age,
		Salary:     input.Salary,
		Gender:     strings.TrimSpace(input.Gender),
	}, s.now(), genderValues())
	if !result.Valid() {
		return nil, apperrors.NewValidationError("employee payload failed validation", result.Violations)
	}

	name := strings.TrimSpace(input.Name)
	departmentName := strings.TrimSpace(input.Department)

	dept, err := s.departments.GetByName(ctx, departmentName)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, departmentMissing()
		}
		return nil, apperrors.MapError(err)
	}

	if s.duplicates == config.DuplicateReject {
		exists, err := s.employees.HasActiveDuplicate(ctx, name, dept.ID)
		if err != nil {
			return nil, apperrors.MapError(err)
		}
		if exists {
			return nil, apperrors.NewConflict("an active employee with this name already exists in this department")
		}
	}

	emp := &domain.Employee{
		Name:         name,
		DepartmentID: dept.ID,
		Position:     strings.TrimSpace(input.Position),
		HireDate:     result.HireDate,
		Education:    strings.TrimSpace(input.Education),
		Age:          input.Age,
		Salary:       input.Salary,
		Gender:       strings.TrimSpace(input.Gender),
		IsActive:     true,
		AbsenceDays:  0,
	}
	if err := s.employees.Create(ctx, emp); err != nil {
		// A foreign-key violation here means the department vanished between
		// the lookup and the insert; the constraint is the source of truth.
		mapped := apperrors.ToDomainError(err)
		if mapped.HTTPStatus == http.StatusNotFound {
			return nil, departmentMissing()
		}
		return nil, mapped
	}

	persisted, err := s.employees.GetByID(ctx, emp.ID)
	if err != nil {
		return nil, apperrors.MapError(err)
	}

	if s.dispatcher != nil {
		_ = s.dispatcher.Publish(ctx, events.Event{
			ID:        uuid.NewString(),
			Type:      events.EventEmployeeCreated,
			Timestamp: s.now(),
			Payload: events.EmployeeCreatedPayload{
				EmployeeID:   persisted.ID,
				Name:         persisted.Name,
				DepartmentID: persisted.DepartmentID,
				Department:   persisted.DepartmentName,
			},
		})
	}

	return persisted, nil
}

// ListEmployees returns filtered employee records, newest first.
func (s *EmployeeService) ListEmployees(ctx context.Context, filter domain.EmployeeFilter) ([]domain.Employee, error) {
	employees, err := s.employees.List(ctx, filter)
	if err != nil {
		return nil, apperrors.MapError(err)
	}
	return employees, nil
}

func departmentMissing() error {
	return apperrors.NewDomainError("NOT_FOUND", "department does not exist", http.StatusNotFound, nil)
}

func genderValues() []string {
	values := make([]string, 0, len(domain.Genders))
	for _, g := range domain.Genders {
		values = append(values, string(g))
	}
	return values
}
