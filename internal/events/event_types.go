package events

import (
	"time"

	"github.com/spec-kit/hr-dashboard-service/internal/domain"
)

// EventType enumerates supported event identifiers.
type EventType string

const (
	EventEmployeeCreated      EventType = "employee_created"
	EventEmployeeFileAttached EventType = "employee_file_attached"
	EventSeedCompleted        EventType = "seed_completed"
)

// Event represents a domain event emitted by services.
type Event struct {
	ID        string      `json:"id"`
	Type      EventType   `json:"type"`
	Timestamp time.Time   `json:"timestamp"`
	Payload   interface{} `json:"payload"`
}

// EmployeeCreatedPayload payload.
type EmployeeCreatedPayload struct {
	EmployeeID   int64  `json:"employee_id"`
	Name         string `json:"name"`
	DepartmentID int64  `json:"department_id"`
	Department   string `json:"department"`
}

// EmployeeFileAttachedPayload payload.
type EmployeeFileAttachedPayload struct {
	EmployeeID int64           `json:"employee_id"`
	FileURL    string          `json:"file_url"`
	FileType   domain.FileType `json:"file_type"`
}

// SeedCompletedPayload payload.
type SeedCompletedPayload struct {
	DepartmentsSeeded int `json:"departments_seeded"`
	EmployeesSeeded   int `json:"employees_seeded"`
}
