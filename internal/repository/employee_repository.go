package repository

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/hr-dashboard-service/internal/domain"
)

// EmployeeRepository manages employee persistence.
type EmployeeRepository interface {
	Create(ctx context.Context, emp *domain.Employee) error
	GetByID(ctx context.Context, id int64) (*domain.Employee, error)
	List(ctx context.Context, filter domain.EmployeeFilter) ([]domain.Employee, error)
	Exists(ctx context.Context, id int64) (bool, error)
	HasActiveDuplicate(ctx context.Context, name string, departmentID int64) (bool, error)
	Count(ctx context.Context) (int64, error)
}

type employeeRepository struct {
	pool *pgxpool.Pool
}

// NewEmployeeRepository builds the repository.
func NewEmployeeRepository(pool *pgxpool.Pool) EmployeeRepository {
	return &employeeRepository{pool: pool}
}

func (r *employeeRepository) Create(ctx context.Context, emp *domain.Employee) error {
	const query = `
        INSERT INTO employees (name, department_id, position, hire_date, education, age, salary, gender, is_active, absence_days)
        VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10)
        RETURNING id, created_at, updated_at`
	return r.pool.QueryRow(ctx, query,
		emp.Name,
		emp.DepartmentID,
		emp.Position,
		emp.HireDate,
		emp.Education,
		emp.Age,
		emp.Salary,
		emp.Gender,
		emp.IsActive,
		emp.AbsenceDays,
	).Scan(&emp.ID, &emp.CreatedAt, &emp.UpdatedAt)
}

func (r *employeeRepository) GetByID(ctx context.Context, id int64) (*domain.Employee, error) {
	const query = `
        SELECT e.id, e.name, e.department_id, COALESCE(d.name, ''), e.position, e.hire_date,
               e.education, e.age, e.salary, e.gender, e.is_active, e.absence_days,
               e.created_at, e.updated_at
        FROM employees e
        LEFT JOIN departments d ON e.department_id = d.id
        WHERE e.id=$1`
	var emp domain.Employee
	if err := r.pool.QueryRow(ctx, query, id).Scan(
		&emp.ID,
		&emp.Name,
		&emp.DepartmentID,
		&emp.DepartmentName,
		&emp.Position,
		&emp.HireDate,
		&emp.Education,
		&emp.Age,
		&emp.Salary,
		&emp.Gender,
		&emp.IsActive,
		&emp.AbsenceDays,
		&emp.CreatedAt,
		&emp.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &emp, nil
}

// List applies the conjunctive filter; unset fields impose no constraint.
// Ordering by creation time descending is a committed contract.
func (r *employeeRepository) List(ctx context.Context, filter domain.EmployeeFilter) ([]domain.Employee, error) {
	var builder strings.Builder
	builder.WriteString(`
        SELECT e.id, e.name, e.department_id, COALESCE(d.name, ''), e.position, e.hire_date,
               e.education, e.age, e.salary, e.gender, e.is_active, e.absence_days,
               e.created_at, e.updated_at
        FROM employees e
        LEFT JOIN departments d ON e.department_id = d.id
        WHERE 1=1`)
	var args []any

	if filter.DepartmentID != nil {
		args = append(args, *filter.DepartmentID)
		builder.WriteString(fmt.Sprintf(" AND e.department_id = $%d", len(args)))
	}
	if filter.DateFrom != nil {
		args = append(args, *filter.DateFrom)
		builder.WriteString(fmt.Sprintf(" AND e.hire_date >= $%d", len(args)))
	}
	if filter.DateTo != nil {
		args = append(args, *filter.DateTo)
		builder.WriteString(fmt.Sprintf(" AND e.hire_date <= $%d", len(args)))
	}
	if filter.DepartmentName != nil {
		args = append(args, *filter.DepartmentName)
		builder.WriteString(fmt.Sprintf(" AND d.name = $%d", len(args)))
	}

	builder.WriteString(" ORDER BY e.created_at DESC")

	rows, err := r.pool.Query(ctx, builder.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.Employee
	for rows.Next() {
		var emp domain.Employee
		if err := rows.Scan(
			&emp.ID,
			&emp.Name,
			&emp.DepartmentID,
			&emp.DepartmentName,
			&emp.Position,
			&emp.HireDate,
			&emp.Education,
			&emp.Age,
			&emp.Salary,
			&emp.Gender,
			&emp.IsActive,
			&emp.AbsenceDays,
			&emp.CreatedAt,
			&emp.UpdatedAt,
		); err != nil {
			return nil, err
		}
		result = append(result, emp)
	}
	return result, rows.Err()
}

func (r *employeeRepository) Exists(ctx context.Context, id int64) (bool, error) {
	const query = `SELECT EXISTS (SELECT 1 FROM employees WHERE id=$1)`
	var exists bool
	if err := r.pool.QueryRow(ctx, query, id).Scan(&exists); err != nil {
		return false, err
	}
	return exists, nil
}

func (r *employeeRepository) HasActiveDuplicate(ctx context.Context, name string, departmentID int64) (bool, error) {
	const query = `
        SELECT EXISTS (
            SELECT 1 FROM employees
            WHERE name=$1 AND department_id=$2 AND is_active = TRUE
        )`
	var exists bool
	if err := r.pool.QueryRow(ctx, query, name, departmentID).Scan(&exists); err != nil {
		return false, err
	}
	return exists, nil
}

func (r *employeeRepository) Count(ctx context.Context) (int64, error) {
	const query = `SELECT COUNT(*) FROM employees`
	var count int64
	if err := r.pool.QueryRow(ctx, query).Scan(&count); err != nil {
		return 0, err
	}
	return count, nil
}
