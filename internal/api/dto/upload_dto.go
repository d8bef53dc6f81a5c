package dto

import (
	"time"

	"github.com/spec-kit/hr-dashboard-service/internal/domain"
	"github.com/spec-kit/hr-dashboard-service/internal/service"
)

// UploadResponse is returned after a stored upload.
type UploadResponse struct {
	Success    bool            `json:"success"`
	FileURL    string          `json:"fileUrl"`
	FileName   string          `json:"fileName"`
	FileType   domain.FileType `json:"fileType"`
	EmployeeID int64           `json:"employeeId"`
	FileSize   int64           `json:"fileSize"`
	UploadDate time.Time       `json:"uploadDate"`
}

// NewUploadResponse converts a service result.
func NewUploadResponse(result *service.UploadResult) UploadResponse {
	return UploadResponse{
		Success:    true,
		FileURL:    result.FileURL,
		FileName:   result.FileName,
		FileType:   result.FileType,
		EmployeeID: result.EmployeeID,
		FileSize:   result.SizeBytes,
		UploadDate: result.UploadDate,
	}
}

// EmployeeFileResponse is one linked file in a listing.
type EmployeeFileResponse struct {
	ID         int64           `json:"id"`
	EmployeeID int64           `json:"employee_id"`
	FileURL    string          `json:"file_url"`
	FileName   string          `json:"file_name"`
	FileType   domain.FileType `json:"file_type"`
	SizeBytes  int64           `json:"size_bytes"`
	UploadedAt time.Time       `json:"uploaded_at"`
}

// NewEmployeeFileResponse converts a domain record.
func NewEmployeeFileResponse(file *domain.EmployeeFile) EmployeeFileResponse {
	return EmployeeFileResponse{
		ID:         file.ID,
		EmployeeID: file.EmployeeID,
		FileURL:    file.FileURL,
		FileName:   file.FileName,
		FileType:   file.FileType,
		SizeBytes:  file.SizeBytes,
		UploadedAt: file.UploadedAt,
	}
}

// AttachFileRequest links an uploaded file URL to an employee.
type AttachFileRequest struct {
	FileURL    string          `json:"fileUrl"`
	FileType   domain.FileType `json:"fileType"`
	FileName   string          `json:"fileName"`
	SizeBytes  int64           `json:"sizeBytes"`
	UploadDate string          `json:"uploadDate"`
}
