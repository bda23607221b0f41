// Package common contains constants and sentinel errors shared by the
// LandLocks client and registry server.
package common

const (
	// PDFMimeType is the only media type accepted for uploaded documents.
	PDFMimeType = "application/pdf"

	// MaxDocumentSize is the upper bound, inclusive, on an uploaded document.
	MaxDocumentSize int64 = 10 * 1024 * 1024
)
