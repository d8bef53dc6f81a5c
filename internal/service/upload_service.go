package service

import (
	"context"
	"fmt"
	"io"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/spec-kit/hr-dashboard-service/internal/domain"
	"github.com/spec-kit/hr-dashboard-service/internal/events"
	"github.com/spec-kit/hr-dashboard-service/internal/repository"
	"github.com/spec-kit/hr-dashboard-service/internal/storage"
	apperrors "github.com/spec-kit/hr-dashboard-service/pkg/util/errorutil"
)

// unsafeFileNameChars matches everything outside the Latin/Arabic letter,
// digit, dot and dash set allowed in stored file names.
var unsafeFileNameChars = regexp.MustCompile(`[^a-zA-Z0-9\x{0600}-\x{06FF}.-]`)

// UploadService validates and stores employee file uploads.
type UploadService struct {
	store      storage.FileStorage
	employees  repository.EmployeeRepository
	files      repository.EmployeeFileRepository
	dispatcher events.Dispatcher
	maxBytes   int64
}

// UploadDependencies bundles collaborators for the upload service.
type UploadDependencies struct {
	Store        storage.FileStorage
	EmployeeRepo repository.EmployeeRepository
	FileRepo     repository.EmployeeFileRepository
	Dispatcher   events.Dispatcher
	MaxBytes     int64
}

// UploadInput describes one incoming multipart file.
type UploadInput struct {
	EmployeeID  int64
	FileType    domain.FileType
	FileName    string
	ContentType string
	SizeBytes   int64
	Reader      io.Reader
}

// UploadResult is returned to the client after a stored upload.
type UploadResult struct {
	FileURL    string
	FileName   string
	FileType   domain.FileType
	EmployeeID int64
	SizeBytes  int64
	UploadDate time.Time
}

// NewUploadService constructs the service.
func NewUploadService(deps UploadDependencies) *UploadService {
	maxBytes := deps.MaxBytes
	if maxBytes <= 0 {
		maxBytes = domain.MaxUploadBytes
	}
	return &UploadService{
		store:      deps.Store,
		employees:  deps.EmployeeRepo,
		files:      deps.FileRepo,
		dispatcher: deps.Dispatcher,
		maxBytes:   maxBytes,
	}
}

// Upload rejects invalid files before any storage side effect, then streams
// the file to the blob store and returns its URL.
func (s *UploadService) Upload(ctx context.Context, input UploadInput) (*UploadResult, error) {
	if input.EmployeeID <= 0 {
		return nil, apperrors.NewUploadError("employeeId is required")
	}
	if input.Reader == nil || input.FileName == "" {
		return nil, apperrors.NewUploadError("file is required")
	}
	if !domain.ValidFileType(input.FileType) {
		return nil, apperrors.NewUploadError(fmt.Sprintf("unknown fileType %q", input.FileType))
	}
	if input.SizeBytes > s.maxBytes {
		return nil, apperrors.NewUploadError(
			fmt.Sprintf("file exceeds the maximum size of %d bytes", s.maxBytes))
	}
	if !domain.MimeAllowed(input.FileType, input.ContentType) {
		return nil, apperrors.NewUploadError(
			fmt.Sprintf("content type %q is not allowed for fileType %q", input.ContentType, input.FileType))
	}

	exists, err := s.employees.Exists(ctx, input.EmployeeID)
	if err != nil {
		return nil, apperrors.MapError(err)
	}
	if !exists {
		return nil, apperrors.NewNotFound("employee")
	}

	key := fmt.Sprintf("%s/%d/%s_%s",
		input.FileType, input.EmployeeID, uuid.NewString(), sanitizeFileName(input.FileName))
	fileURL, err := s.store.Save(ctx, key, input.ContentType, input.Reader)
	if err != nil {
		return nil, apperrors.NewStorageError(err)
	}

	return &UploadResult{
		FileURL:    fileURL,
		FileName:   input.FileName,
		FileType:   input.FileType,
		EmployeeID: input.EmployeeID,
		SizeBytes:  input.SizeBytes,
		UploadDate: time.Now(),
	}, nil
}

// AttachFile links an uploaded file URL to an employee record.
func (s *UploadService) AttachFile(ctx context.Context, employeeID int64, fileURL string, fileType domain.FileType, fileName string, sizeBytes int64) error {
	if strings.TrimSpace(fileURL) == "" {
		return apperrors.NewUploadError("fileUrl is required")
	}
	if !domain.ValidFileType(fileType) {
		return apperrors.NewUploadError(fmt.Sprintf("unknown fileType %q", fileType))
	}

	exists, err := s.employees.Exists(ctx, employeeID)
	if err != nil {
		return apperrors.MapError(err)
	}
	if !exists {
		return apperrors.NewNotFound("employee")
	}

	file := &domain.EmployeeFile{
		EmployeeID: employeeID,
		FileURL:    fileURL,
		FileName:   fileName,
		FileType:   fileType,
		SizeBytes:  sizeBytes,
	}
	if err := s.files.Create(ctx, file); err != nil {
		return apperrors.MapError(err)
	}

	if s.dispatcher != nil {
		_ = s.dispatcher.Publish(ctx, events.Event{
			ID:        uuid.NewString(),
			Type:      events.EventEmployeeFileAttached,
			Timestamp: time.Now(),
			Payload: events.EmployeeFileAttachedPayload{
				EmployeeID: employeeID,
				FileURL:    fileURL,
				FileType:   fileType,
			},
		})
	}
	return nil
}

// ListFiles returns the files linked to an employee, newest first.
func (s *UploadService) ListFiles(ctx context.Context, employeeID int64) ([]domain.EmployeeFile, error) {
	exists, err := s.employees.Exists(ctx, employeeID)
	if err != nil {
		return nil, apperrors.MapError(err)
	}
	if !exists {
		return nil, apperrors.NewNotFound("employee")
	}
	files, err := s.files.ListByEmployee(ctx, employeeID)
	if err != nil {
		return nil, apperrors.MapError(err)
	}
	return files, nil
}

func sanitizeFileName(name string) string {
	return unsafeFileNameChars.ReplaceAllString(name, "_")
}
