// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

import (
	"context"

	"github.com/MKhiriev/go-doc-server/models"
)

// DocumentService gives read access to the document loaded at startup.
type DocumentService interface {
	// GetDocument returns the document. It performs no I/O and never fails.
	GetDocument(ctx context.Context) models.Document
}

// AppInfoService exposes build and runtime information about the server.
type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}
