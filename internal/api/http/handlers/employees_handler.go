package handlers

import (
	"strconv"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/hr-dashboard-service/internal/api/dto"
	"github.com/spec-kit/hr-dashboard-service/internal/domain"
	"github.com/spec-kit/hr-dashboard-service/internal/service"
	apperrors "github.com/spec-kit/hr-dashboard-service/pkg/util/errorutil"
)

// EmployeesHandler manages employee CRUD endpoints.
type EmployeesHandler struct {
	service *service.EmployeeService
}

// NewEmployeesHandler constructs handler.
func NewEmployeesHandler(employeeService *service.EmployeeService) *EmployeesHandler {
	return &EmployeesHandler{service: employeeService}
}

// List GET /api/employees.
func (h *EmployeesHandler) List(c *fiber.Ctx) error {
	filter, err := parseEmployeeFilter(c)
	if err != nil {
		return err
	}
	employees, err := h.service.ListEmployees(c.UserContext(), filter)
	if err != nil {
		return err
	}
	items := make([]dto.EmployeeResponse, 0, len(employees))
	for i := range employees {
		items = append(items, dto.NewEmployeeResponse(&employees[i]))
	}
	return c.JSON(items)
}

// Create POST /api/employees.
func (h *EmployeesHandler) Create(c *fiber.Ctx) error {
	var req dto.CreateEmployeeRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", []string{"request body must be valid JSON"})
	}

	input := service.EmployeeCreateInput{
		Name:       req.Name,
		Department: req.Department,
		Position:   req.Position,
		HireDate:   req.HireDate,
		Education:  req.Education,
		Age:        req.Age.Value,
		Salary:     req.Salary.Value,
		Gender:     req.Gender,
	}
	employee, err := h.service.CreateEmployee(c.UserContext(), input)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success":  true,
		"employee": dto.NewEmployeeResponse(employee),
		"message":  "employee created",
	})
}

func parseEmployeeFilter(c *fiber.Ctx) (domain.EmployeeFilter, error) {
	var filter domain.EmployeeFilter

	if raw := strings.TrimSpace(c.Query("departmentId")); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return filter, apperrors.NewValidationError("invalid filter",
				[]string{"departmentId must be an integer"})
		}
		filter.DepartmentID = &id
	}
	if raw := strings.TrimSpace(c.Query("departmentName")); raw != "" {
		filter.DepartmentName = &raw
	}
	if raw := strings.TrimSpace(c.Query("dateFrom")); raw != "" {
		from, err := time.Parse("2006-01-02", raw)
		if err != nil {
			return filter, apperrors.NewValidationError("invalid filter",
				[]string{"dateFrom must be a date in YYYY-MM-DD format"})
		}
		filter.DateFrom = &from
	}
	if raw := strings.TrimSpace(c.Query("dateTo")); raw != "" {
		to, err := time.Parse("2006-01-02", raw)
		if err != nil {
			return filter, apperrors.NewValidationError("invalid filter",
				[]string{"dateTo must be a date in YYYY-MM-DD format"})
		}
		filter.DateTo = &to
	}
	return filter, nil
}
