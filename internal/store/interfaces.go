// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

//go:generate mockgen -source=interfaces.go -destination=../mock/document_storage_mock.go -package=mock

import (
	"context"

	"github.com/MKhiriev/go-doc-server/models"
)

// DocumentStorage reads the JSON document served by the application.
type DocumentStorage interface {
	// LoadDocument reads and parses the whole document. It is called once,
	// during application startup.
	LoadDocument(ctx context.Context) (models.Document, error)
}
