package form

import (
	"github.com/ProgrammedByHussain/LandLocks/internal/client/models"
	"github.com/ProgrammedByHussain/LandLocks/internal/common"
)

type FileValidator struct {
	mimeType string
	maxSize  int64
}

// NewFileValidator accepts PDF documents up to common.MaxDocumentSize.
func NewFileValidator() *FileValidator {
	return &FileValidator{mimeType: common.PDFMimeType, maxSize: common.MaxDocumentSize}
}

// Validate returns nil for an acceptable file. The type rule is checked
// before the size rule.
func (v *FileValidator) Validate(f models.UploadedFile) error {
	if f.MimeType != v.mimeType {
		return common.ErrUnsupportedFileType
	}
	if f.Size > v.maxSize {
		return common.ErrFileTooLarge
	}
	return nil
}
