package handlers

import (
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/hr-dashboard-service/internal/api/dto"
	"github.com/spec-kit/hr-dashboard-service/internal/domain"
	"github.com/spec-kit/hr-dashboard-service/internal/service"
	apperrors "github.com/spec-kit/hr-dashboard-service/pkg/util/errorutil"
)

// UploadHandler manages file uploads and file/employee association.
type UploadHandler struct {
	service *service.UploadService
}

// NewUploadHandler constructs handler.
func NewUploadHandler(uploadService *service.UploadService) *UploadHandler {
	return &UploadHandler{service: uploadService}
}

// Upload POST /api/upload. Multipart fields: file, employeeId, fileType.
func (h *UploadHandler) Upload(c *fiber.Ctx) error {
	employeeID, err := strconv.ParseInt(strings.TrimSpace(c.FormValue("employeeId")), 10, 64)
	if err != nil {
		return apperrors.NewUploadError("employeeId is required and must be an integer")
	}

	fileType := domain.FileType(strings.TrimSpace(c.FormValue("fileType")))
	if fileType == "" {
		return apperrors.NewUploadError("fileType is required")
	}

	header, err := c.FormFile("file")
	if err != nil {
		return apperrors.NewUploadError("file is required")
	}

	f, err := header.Open()
	if err != nil {
		return apperrors.NewUploadError("unable to read uploaded file")
	}
	defer f.Close()

	result, err := h.service.Upload(c.UserContext(), service.UploadInput{
		EmployeeID:  employeeID,
		FileType:    fileType,
		FileName:    header.Filename,
		ContentType: header.Header.Get("Content-Type"),
		SizeBytes:   header.Size,
		Reader:      f,
	})
	if err != nil {
		return err
	}
	return c.JSON(dto.NewUploadResponse(result))
}

// AttachFile POST /api/employees/:id/files.
func (h *UploadHandler) AttachFile(c *fiber.Ctx) error {
	employeeID, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return apperrors.NewValidationError("invalid employee id", []string{"id must be an integer"})
	}

	var req dto.AttachFileRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", []string{"request body must be valid JSON"})
	}

	if err := h.service.AttachFile(c.UserContext(), employeeID, req.FileURL, req.FileType, req.FileName, req.SizeBytes); err != nil {
		return err
	}
	return c.JSON(fiber.Map{
		"success": true,
		"message": "file associated with employee",
	})
}

// ListFiles GET /api/employees/:id/files.
func (h *UploadHandler) ListFiles(c *fiber.Ctx) error {
	employeeID, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return apperrors.NewValidationError("invalid employee id", []string{"id must be an integer"})
	}

	files, err := h.service.ListFiles(c.UserContext(), employeeID)
	if err != nil {
		return err
	}
	items := make([]dto.EmployeeFileResponse, 0, len(files))
	for i := range files {
		items = append(items, dto.NewEmployeeFileResponse(&files[i]))
	}
	return c.JSON(items)
}
