package service

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"sort"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/hr-dashboard-service/internal/domain"
)

type fakeDepartmentRepo struct {
	nextID      int64
	departments map[string]domain.Department
	listErr     error
}

func newFakeDepartmentRepo(names ...string) *fakeDepartmentRepo {
	repo := &fakeDepartmentRepo{departments: make(map[string]domain.Department)}
	for _, name := range names {
		_ = repo.InsertIfAbsent(context.Background(), name)
	}
	return repo
}

func (r *fakeDepartmentRepo) GetByName(_ context.Context, name string) (*domain.Department, error) {
	dept, ok := r.departments[name]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	return &dept, nil
}

func (r *fakeDepartmentRepo) InsertIfAbsent(_ context.Context, name string) error {
	if _, ok := r.departments[name]; ok {
		return nil
	}
	r.nextID++
	r.departments[name] = domain.Department{ID: r.nextID, Name: name, CreatedAt: time.Now()}
	return nil
}

func (r *fakeDepartmentRepo) List(_ context.Context) ([]domain.Department, error) {
	if r.listErr != nil {
		return nil, r.listErr
	}
	result := make([]domain.Department, 0, len(r.departments))
	for _, dept := range r.departments {
		result = append(result, dept)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Name < result[j].Name })
	return result, nil
}

func (r *fakeDepartmentRepo) nameByID(id int64) string {
	for _, dept := range r.departments {
		if dept.ID == id {
			return dept.Name
		}
	}
	return ""
}

type fakeEmployeeRepo struct {
	departments *fakeDepartmentRepo
	nextID      int64
	clock       time.Time
	rows        []domain.Employee
	createErr   error
}

func newFakeEmployeeRepo(departments *fakeDepartmentRepo) *fakeEmployeeRepo {
	return &fakeEmployeeRepo{
		departments: departments,
		clock:       time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
	}
}

func (r *fakeEmployeeRepo) Create(_ context.Context, emp *domain.Employee) error {
	if r.createErr != nil {
		return r.createErr
	}
	r.nextID++
	r.clock = r.clock.Add(time.Second)
	emp.ID = r.nextID
	emp.CreatedAt = r.clock
	emp.UpdatedAt = r.clock
	r.rows = append(r.rows, *emp)
	return nil
}

func (r *fakeEmployeeRepo) GetByID(_ context.Context, id int64) (*domain.Employee, error) {
	for _, row := range r.rows {
		if row.ID == id {
			row.DepartmentName = r.departments.nameByID(row.DepartmentID)
			return &row, nil
		}
	}
	return nil, pgx.ErrNoRows
}

func (r *fakeEmployeeRepo) List(_ context.Context, filter domain.EmployeeFilter) ([]domain.Employee, error) {
	var result []domain.Employee
	for _, row := range r.rows {
		if filter.DepartmentID != nil && row.DepartmentID != *filter.DepartmentID {
			continue
		}
		if filter.DateFrom != nil && row.HireDate.Before(*filter.DateFrom) {
			continue
		}
		if filter.DateTo != nil && row.HireDate.After(*filter.DateTo) {
			continue
		}
		name := r.departments.nameByID(row.DepartmentID)
		if filter.DepartmentName != nil && name != *filter.DepartmentName {
			continue
		}
		row.DepartmentName = name
		result = append(result, row)
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].CreatedAt.After(result[j].CreatedAt)
	})
	return result, nil
}

func (r *fakeEmployeeRepo) Exists(_ context.Context, id int64) (bool, error) {
	for _, row := range r.rows {
		if row.ID == id {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeEmployeeRepo) HasActiveDuplicate(_ context.Context, name string, departmentID int64) (bool, error) {
	for _, row := range r.rows {
		if row.IsActive && row.Name == name && row.DepartmentID == departmentID {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeEmployeeRepo) Count(_ context.Context) (int64, error) {
	return int64(len(r.rows)), nil
}

type fakeFileRepo struct {
	nextID int64
	rows   []domain.EmployeeFile
}

func (r *fakeFileRepo) Create(_ context.Context, file *domain.EmployeeFile) error {
	r.nextID++
	file.ID = r.nextID
	file.UploadedAt = time.Now()
	r.rows = append(r.rows, *file)
	return nil
}

func (r *fakeFileRepo) ListByEmployee(_ context.Context, employeeID int64) ([]domain.EmployeeFile, error) {
	var result []domain.EmployeeFile
	for _, row := range r.rows {
		if row.EmployeeID == employeeID {
			result = append(result, row)
		}
	}
	return result, nil
}

type fakeStorage struct {
	saved   map[string]string
	saveErr error
}

func newFakeStorage() *fakeStorage {
	return &fakeStorage{saved: make(map[string]string)}
}

func (s *fakeStorage) Save(_ context.Context, key string, _ string, r io.Reader) (string, error) {
	if s.saveErr != nil {
		return "", s.saveErr
	}
	content, err := io.ReadAll(r)
	if err != nil {
		return "", err
	}
	s.saved[key] = string(content)
	return "/uploads/" + key, nil
}

type fakeStatsCache struct {
	entries map[string][]byte
	getErr  error
	setErr  error
}

func newFakeStatsCache() *fakeStatsCache {
	return &fakeStatsCache{entries: make(map[string][]byte)}
}

func (c *fakeStatsCache) GetJSON(_ context.Context, key string, dest any) (bool, error) {
	if c.getErr != nil {
		return false, c.getErr
	}
	payload, ok := c.entries[key]
	if !ok {
		return false, nil
	}
	return true, json.Unmarshal(payload, dest)
}

func (c *fakeStatsCache) SetJSON(_ context.Context, key string, value any, _ time.Duration) error {
	if c.setErr != nil {
		return c.setErr
	}
	payload, err := json.Marshal(value)
	if err != nil {
		return err
	}
	c.entries[key] = payload
	return nil
}

func (c *fakeStatsCache) Delete(_ context.Context, key string) error {
	delete(c.entries, key)
	return nil
}

type fakeStatsRepo struct {
	active       domain.ActiveStats
	turnover     domain.TurnoverStats
	departments  []domain.DepartmentCount
	education    []domain.EducationCount
	activeErr    error
	turnoverErr  error
	educationErr error
}

func (r *fakeStatsRepo) ActiveStats(_ context.Context) (domain.ActiveStats, error) {
	return r.active, r.activeErr
}

func (r *fakeStatsRepo) TurnoverStats(_ context.Context) (domain.TurnoverStats, error) {
	return r.turnover, r.turnoverErr
}

func (r *fakeStatsRepo) DepartmentCounts(_ context.Context) ([]domain.DepartmentCount, error) {
	return r.departments, nil
}

func (r *fakeStatsRepo) EducationCounts(_ context.Context) ([]domain.EducationCount, error) {
	return r.education, r.educationErr
}

var errBoom = errors.New("boom")
