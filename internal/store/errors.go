// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import "errors"

// Sentinel errors returned by [DocumentStorage] implementations. Callers
// should use [errors.Is] to match against these values.
var (
	// ErrDocumentNotFound is returned when nothing exists at the configured
	// document path. The underlying [fs.ErrNotExist] stays in the chain.
	ErrDocumentNotFound = errors.New("document file not found")

	// ErrMalformedDocument is returned when the file exists but its contents
	// are not exactly one valid JSON value.
	ErrMalformedDocument = errors.New("document is not valid JSON")

	// ErrReadingDocument is returned for any other failure to open or read
	// the document file (permissions, path is a directory, I/O errors).
	ErrReadingDocument = errors.New("error reading document file")

	// ErrEmptyDocumentPath is returned by constructors when no document path
	// was configured.
	ErrEmptyDocumentPath = errors.New("document path is empty")
)
