// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package grpc exposes the standard gRPC health checking service for the
// document server.
package grpc

import (
	"context"
	"time"

	"github.com/MKhiriev/go-doc-server/internal/logger"
	"github.com/MKhiriev/go-doc-server/internal/service"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/status"
)

// DocumentServiceName is the health service name reported while the loaded
// document is being served.
const DocumentServiceName = "godoc.Document"

// Handler is the root gRPC transport handler.
//
// A handler instance is created once at startup and shared by the gRPC server.
type Handler struct {
	services *service.Services
	health   *health.Server

	logger *logger.Logger
}

// NewHandler constructs a [Handler] with the provided service container and
// logger.
func NewHandler(services *service.Services, logger *logger.Logger) *Handler {
	logger.Debug().Msg("gRPC handler created")
	return &Handler{
		services: services,
		health:   health.NewServer(),
		logger:   logger,
	}
}

// Init builds a gRPC server with the health service registered. The
// document service reports SERVING only when a document service exists.
func (h *Handler) Init() *grpc.Server {
	s := grpc.NewServer(grpc.ChainUnaryInterceptor(h.withLogging))
	healthpb.RegisterHealthServer(s, h.health)

	h.health.SetServingStatus("", healthpb.HealthCheckResponse_SERVING)

	documentStatus := healthpb.HealthCheckResponse_NOT_SERVING
	if h.services != nil && h.services.DocumentService != nil {
		documentStatus = healthpb.HealthCheckResponse_SERVING
	}
	h.health.SetServingStatus(DocumentServiceName, documentStatus)

	return s
}

// Shutdown flips every service to NOT_SERVING so that watchers see the
// server going away before connections are closed.
func (h *Handler) Shutdown() {
	h.health.Shutdown()
}

// withLogging writes one access log entry per unary call.
func (h *Handler) withLogging(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
	start := time.Now()

	resp, err := handler(ctx, req)

	h.logger.Info().
		Str("method", info.FullMethod).
		Str("code", status.Code(err).String()).
		Dur("duration", time.Since(start)).
		Send()

	return resp, err
}
