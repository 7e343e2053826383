// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"github.com/MKhiriev/go-doc-server/internal/config"
	"github.com/MKhiriev/go-doc-server/internal/logger"
)

// Storages aggregates every storage backend used by the server.
type Storages struct {
	DocumentStorage DocumentStorage
}

// NewStorages builds all storages from the storage configuration.
// Constructing a storage performs no I/O; the document is read later by the
// service layer.
func NewStorages(cfg config.Storage, logger *logger.Logger) (*Storages, error) {
	logger.Info().Msg("creating new storages...")

	documentStorage, err := NewDocumentFileStorage(cfg.Document, logger)
	if err != nil {
		return nil, err
	}

	return &Storages{
		DocumentStorage: documentStorage,
	}, nil
}
