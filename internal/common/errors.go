// Package common defines shared constants and sentinel errors. Callers should
// use errors.Is to match these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrorNotFound    = errors.New("not found")
	ErrAlreadyExists = errors.New("already exists")

	// File validation.
	ErrUnsupportedFileType = errors.New("unsupported file type")
	ErrFileTooLarge        = errors.New("file too large")

	// Step navigation.
	ErrNoDocument   = errors.New("upload a document first")
	ErrFirstStep    = errors.New("already at the first step")
	ErrLastStep     = errors.New("already at the last step")
	ErrNotFinalStep = errors.New("submission is only possible from the review step")

	// Form fields and submission.
	ErrUnknownField       = errors.New("unknown form field")
	ErrIncompleteForm     = errors.New("missing required fields")
	ErrSubmissionPending  = errors.New("submission already in progress")
	ErrMissingOwner       = errors.New("owner address is required")
	ErrIncorrectMintInput = errors.New("incorrect mint request")
)
