// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-doc-server/internal/logger"
	"github.com/MKhiriev/go-doc-server/internal/store"
	"github.com/MKhiriev/go-doc-server/models"
)

// documentService holds the document loaded once by NewDocumentService.
// The document is never written again, so concurrent reads need no locking.
type documentService struct {
	document models.Document

	logger *logger.Logger
}

// NewDocumentService loads the document from storage and returns a service
// serving it. This is the application's one-time startup load: an error here
// means the server must not start.
func NewDocumentService(ctx context.Context, storage store.DocumentStorage, logger *logger.Logger) (DocumentService, error) {
	document, err := storage.LoadDocument(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLoadingDocument, err)
	}

	logger.Info().Str("kind", string(document.Kind())).Msg("document loaded")

	return &documentService{
		document: document,
		logger:   logger,
	}, nil
}

func (s *documentService) GetDocument(ctx context.Context) models.Document {
	return s.document
}
