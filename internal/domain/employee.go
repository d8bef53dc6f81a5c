package domain

import "time"

// Gender enumerates the two accepted values. The catalog ships Arabic values
// to match the deployed departments and name pools.
type Gender string

const (
	GenderMale   Gender = "ذكر"
	GenderFemale Gender = "أنثى"
)

// Genders lists every accepted gender value.
var Genders = []Gender{GenderMale, GenderFemale}

// Employee is the persisted employee record.
type Employee struct {
	ID             int64
	Name           string
	DepartmentID   int64
	DepartmentName string
	Position       string
	HireDate       time.Time
	Education      string
	Age            *int
	Salary         *float64
	Gender         string
	IsActive       bool
	AbsenceDays    int
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// EmployeeFilter narrows employee listings. Nil/zero fields impose no
// constraint; set fields are AND-combined.
type EmployeeFilter struct {
	DepartmentID   *int64
	DepartmentName *string
	DateFrom       *time.Time
	DateTo         *time.Time
}
