package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/hr-dashboard-service/internal/domain"
)

// EmployeeFileRepository persists uploaded-file references.
type EmployeeFileRepository interface {
	Create(ctx context.Context, file *domain.EmployeeFile) error
	ListByEmployee(ctx context.Context, employeeID int64) ([]domain.EmployeeFile, error)
}

type employeeFileRepository struct {
	pool *pgxpool.Pool
}

// NewEmployeeFileRepository constructs repository.
func NewEmployeeFileRepository(pool *pgxpool.Pool) EmployeeFileRepository {
	return &employeeFileRepository{pool: pool}
}

func (r *employeeFileRepository) Create(ctx context.Context, file *domain.EmployeeFile) error {
	const query = `
        INSERT INTO employee_files (employee_id, file_url, file_name, file_type, size_bytes)
        VALUES ($1,$2,$3,$4,$5)
        RETURNING id, uploaded_at`
	return r.pool.QueryRow(ctx, query,
		file.EmployeeID,
		file.FileURL,
		file.FileName,
		file.FileType,
		file.SizeBytes,
	).Scan(&file.ID, &file.UploadedAt)
}

func (r *employeeFileRepository) ListByEmployee(ctx context.Context, employeeID int64) ([]domain.EmployeeFile, error) {
	const query = `
        SELECT id, employee_id, file_url, file_name, file_type, size_bytes, uploaded_at
        FROM employee_files WHERE employee_id=$1
        ORDER BY uploaded_at DESC`
	rows, err := r.pool.Query(ctx, query, employeeID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.EmployeeFile
	for rows.Next() {
		var file domain.EmployeeFile
		if err := rows.Scan(
			&file.ID,
			&file.EmployeeID,
			&file.FileURL,
			&file.FileName,
			&file.FileType,
			&file.SizeBytes,
			&file.UploadedAt,
		); err != nil {
			return nil, err
		}
		result = append(result, file)
	}
	return result, rows.Err()
}
