package service

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/hr-dashboard-service/internal/config"
	"github.com/spec-kit/hr-dashboard-service/internal/domain"
	apperrors "github.com/spec-kit/hr-dashboard-service/pkg/util/errorutil"
)

func newEmployeeService(departments *fakeDepartmentRepo, employees *fakeEmployeeRepo, policy config.DuplicatePolicy) *EmployeeService {
	return NewEmployeeService(EmployeeDependencies{
		EmployeeRepo:   employees,
		DepartmentRepo: departments,
		Duplicates:     policy,
	})
}

func createInput() EmployeeCreateInput {
	age := 30
	return EmployeeCreateInput{
		Name:       "Ahmed Ali",
		Department: "Engineering",
		Position:   "Engineer",
		HireDate:   "2021-05-01",
		Age:        &age,
	}
}

func TestCreateEmployee(t *testing.T) {
	ctx := context.Background()

	t.Run("persists and re-reads the record", func(t *testing.T) {
		departments := newFakeDepartmentRepo("Engineering")
		employees := newFakeEmployeeRepo(departments)
		svc := newEmployeeService(departments, employees, config.DuplicateReject)

		emp, err := svc.CreateEmployee(ctx, createInput())
		require.NoError(t, err)
		assert.NotZero(t, emp.ID)
		assert.Equal(t, "Ahmed Ali", emp.Name)
		assert.Equal(t, "Engineering", emp.DepartmentName)
		assert.True(t, emp.IsActive)
		assert.Zero(t, emp.AbsenceDays)
		assert.Equal(t, time.Date(2021, 5, 1, 0, 0, 0, 0, time.UTC), emp.HireDate)
	})

	t.Run("trims string fields before storage", func(t *testing.T) {
		departments := newFakeDepartmentRepo("Engineering")
		employees := newFakeEmployeeRepo(departments)
		svc := newEmployeeService(departments, employees, config.DuplicateReject)

		input := createInput()
		input.Name = "  Ahmed Ali  "
		input.Department = " Engineering "
		input.Position = " Engineer "
		emp, err := svc.CreateEmployee(ctx, input)
		require.NoError(t, err)
		assert.Equal(t, "Ahmed Ali", emp.Name)
		assert.Equal(t, "Engineer", emp.Position)
	})

	t.Run("unknown department fails with not found and inserts nothing", func(t *testing.T) {
		departments := newFakeDepartmentRepo("Engineering")
		employees := newFakeEmployeeRepo(departments)
		svc := newEmployeeService(departments, employees, config.DuplicateReject)

		input := createInput()
		input.Department = "Marketing"
		_, err := svc.CreateEmployee(ctx, input)
		require.Error(t, err)

		domainErr := apperrors.ToDomainError(err)
		assert.Equal(t, http.StatusNotFound, domainErr.HTTPStatus)
		assert.Equal(t, "department does not exist", domainErr.Message)
		assert.Empty(t, employees.rows)
	})

	t.Run("validation failures are collected and nothing is inserted", func(t *testing.T) {
		departments := newFakeDepartmentRepo("Engineering")
		employees := newFakeEmployeeRepo(departments)
		svc := newEmployeeService(departments, employees, config.DuplicateReject)

		age := 12
		input := createInput()
		input.Name = "Agent 47"
		input.Age = &age
		_, err := svc.CreateEmployee(ctx, input)
		require.Error(t, err)

		domainErr := apperrors.ToDomainError(err)
		assert.Equal(t, http.StatusBadRequest, domainErr.HTTPStatus)
		assert.Len(t, domainErr.Details, 2)
		assert.Empty(t, employees.rows)
	})

	t.Run("reject policy blocks a same-name same-department hire", func(t *testing.T) {
		departments := newFakeDepartmentRepo("Engineering")
		employees := newFakeEmployeeRepo(departments)
		svc := newEmployeeService(departments, employees, config.DuplicateReject)

		_, err := svc.CreateEmployee(ctx, createInput())
		require.NoError(t, err)

		_, err = svc.CreateEmployee(ctx, createInput())
		require.Error(t, err)
		assert.Equal(t, http.StatusConflict, apperrors.ToDomainError(err).HTTPStatus)
	})

	t.Run("allow policy admits the duplicate", func(t *testing.T) {
		departments := newFakeDepartmentRepo("Engineering")
		employees := newFakeEmployeeRepo(departments)
		svc := newEmployeeService(departments, employees, config.DuplicateAllow)

		_, err := svc.CreateEmployee(ctx, createInput())
		require.NoError(t, err)
		_, err = svc.CreateEmployee(ctx, createInput())
		require.NoError(t, err)
		assert.Len(t, employees.rows, 2)
	})

	t.Run("storage failure surfaces as a storage error", func(t *testing.T) {
		departments := newFakeDepartmentRepo("Engineering")
		employees := newFakeEmployeeRepo(departments)
		employees.createErr = errBoom
		svc := newEmployeeService(departments, employees, config.DuplicateReject)

		_, err := svc.CreateEmployee(ctx, createInput())
		require.Error(t, err)

		domainErr := apperrors.ToDomainError(err)
		assert.Equal(t, http.StatusInternalServerError, domainErr.HTTPStatus)
		assert.True(t, errors.Is(domainErr, errBoom))
	})
}

func TestListEmployees(t *testing.T) {
	ctx := context.Background()
	departments := newFakeDepartmentRepo("Engineering", "HR")
	employees := newFakeEmployeeRepo(departments)
	svc := newEmployeeService(departments, employees, config.DuplicateAllow)

	seed := []struct {
		name     string
		dept     string
		hireDate string
	}{
		{"Ahmed Ali", "Engineering", "2020-03-01"},
		{"Sara Omar", "HR", "2022-06-15"},
		{"Khalid Noor", "Engineering", "2024-01-10"},
	}
	for _, s := range seed {
		_, err := svc.CreateEmployee(ctx, EmployeeCreateInput{
			Name:       s.name,
			Department: s.dept,
			HireDate:   s.hireDate,
		})
		require.NoError(t, err)
	}

	t.Run("no filters returns everything newest first", func(t *testing.T) {
		result, err := svc.ListEmployees(ctx, domain.EmployeeFilter{})
		require.NoError(t, err)
		require.Len(t, result, 3)
		assert.Equal(t, "Khalid Noor", result[0].Name)
		assert.Equal(t, "Ahmed Ali", result[2].Name)
	})

	t.Run("date range is inclusive on both ends", func(t *testing.T) {
		from := time.Date(2020, 3, 1, 0, 0, 0, 0, time.UTC)
		to := time.Date(2022, 6, 15, 0, 0, 0, 0, time.UTC)
		result, err := svc.ListEmployees(ctx, domain.EmployeeFilter{DateFrom: &from, DateTo: &to})
		require.NoError(t, err)
		require.Len(t, result, 2)
		for _, emp := range result {
			assert.False(t, emp.HireDate.Before(from))
			assert.False(t, emp.HireDate.After(to))
		}
	})

	t.Run("department name filter", func(t *testing.T) {
		name := "Engineering"
		result, err := svc.ListEmployees(ctx, domain.EmployeeFilter{DepartmentName: &name})
		require.NoError(t, err)
		assert.Len(t, result, 2)
	})
}
