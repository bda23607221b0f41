// Package documents stores base64-encoded uploads in the local SQLite
// database, keyed by an opaque string. Missing keys are reported as
// common.ErrorNotFound.
package documents
