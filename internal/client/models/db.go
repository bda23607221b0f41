package models

import "time"

// Document is an encoded upload kept in the local key-value store.
type Document struct {
	Key       string
	Content   string
	UpdatedAt time.Time
}
