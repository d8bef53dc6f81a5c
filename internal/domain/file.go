package domain

import "time"

// FileType enumerates the upload slots an employee record supports.
type FileType string

const (
	FileTypePhoto       FileType = "photo"
	FileTypeResume      FileType = "resume"
	FileTypeDocument    FileType = "document"
	FileTypeCertificate FileType = "certificate"
	FileTypeContract    FileType = "contract"
)

// MaxUploadBytes caps upload size at 5 MiB.
const MaxUploadBytes = 5 * 1024 * 1024

var documentMimeTypes = []string{
	"application/pdf",
	"application/msword",
	"application/vnd.openxmlformats-officedocument.wordprocessingml.document",
	"text/plain",
	"application/rtf",
	"text/rtf",
}

// AllowedMimeTypes maps each file type to its content-type allowlist.
var AllowedMimeTypes = map[FileType][]string{
	FileTypePhoto: {
		"image/jpeg", "image/jpg", "image/png", "image/gif", "image/webp", "image/bmp",
	},
	FileTypeResume:   documentMimeTypes,
	FileTypeContract: documentMimeTypes,
	FileTypeCertificate: {
		"application/pdf",
		"image/jpeg", "image/jpg", "image/png", "image/gif", "image/webp",
		"application/msword",
		"application/vnd.openxmlformats-officedocument.wordprocessingml.document",
	},
	FileTypeDocument: append(append([]string{}, documentMimeTypes...),
		"application/vnd.ms-excel",
		"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
		"application/vnd.ms-powerpoint",
		"application/vnd.openxmlformats-officedocument.presentationml.presentation",
	),
}

// ValidFileType reports whether the given slot name is recognized.
func ValidFileType(t FileType) bool {
	_, ok := AllowedMimeTypes[t]
	return ok
}

// MimeAllowed reports whether contentType is acceptable for the slot.
func MimeAllowed(t FileType, contentType string) bool {
	for _, allowed := range AllowedMimeTypes[t] {
		if allowed == contentType {
			return true
		}
	}
	return false
}

// EmployeeFile links a stored file URL to an employee record.
type EmployeeFile struct {
	ID         int64
	EmployeeID int64
	FileURL    string
	FileName   string
	FileType   FileType
	SizeBytes  int64
	UploadedAt time.Time
}
