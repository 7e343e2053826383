// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/go-doc-server/internal/config"
	"github.com/MKhiriev/go-doc-server/internal/logger"
	"github.com/MKhiriev/go-doc-server/internal/store"
)

type Services struct {
	DocumentService DocumentService
	AppInfoService  AppInfoService
}

// NewServices builds every service. The document is read from storage here,
// exactly once, before any transport exists.
func NewServices(ctx context.Context, storages *store.Storages, cfg *config.StructuredConfig, logger *logger.Logger) (*Services, error) {
	logger.Info().Msg("creating new services...")

	documentService, err := NewDocumentService(ctx, storages.DocumentStorage, logger)
	if err != nil {
		return nil, err
	}

	appInfoService, err := NewAppInfoService(cfg.App, logger)
	if err != nil {
		return nil, err
	}

	return &Services{
		DocumentService: documentService,
		AppInfoService:  appInfoService,
	}, nil
}
