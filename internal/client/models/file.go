// Package models defines client-side data models used by the LandLocks CLI.
package models

import (
	"errors"
	"io"
)

var ErrNoContent = errors.New("file has no content handle")

// UploadedFile is a document picked by the user. It is replaced or cleared
// as a whole and never modified in place.
type UploadedFile struct {
	Name     string
	Size     int64
	MimeType string

	// Open returns a fresh reader over the file content on every call.
	Open func() (io.ReadCloser, error)
}

// Reader opens the file content, failing with ErrNoContent when the file was
// built without a handle.
func (f UploadedFile) Reader() (io.ReadCloser, error) {
	if f.Open == nil {
		return nil, ErrNoContent
	}
	return f.Open()
}
