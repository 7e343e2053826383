// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"github.com/MKhiriev/go-doc-server/internal/config"
	"github.com/MKhiriev/go-doc-server/internal/logger"
	"github.com/MKhiriev/go-doc-server/internal/service"
	"github.com/MKhiriev/go-doc-server/internal/utils"
)

type Handler struct {
	services *service.Services

	// hasher signs response bodies; nil when no hash key is configured
	hasher      *utils.Hasher
	idGenerator *utils.UUIDGenerator

	logger *logger.Logger
}

func NewHandler(services *service.Services, cfg config.App, logger *logger.Logger) *Handler {
	h := &Handler{
		services:    services,
		idGenerator: utils.NewUUIDGenerator(),
		logger:      logger,
	}

	if cfg.HashKey != "" {
		h.hasher = utils.NewHasher(cfg.HashKey)
	}

	logger.Info().Bool("signing", h.hasher != nil).Msg("http handler created")
	return h
}
