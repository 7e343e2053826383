// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import (
	"errors"
	"net"

	"github.com/MKhiriev/go-doc-server/internal/config"
	myGRPC "github.com/MKhiriev/go-doc-server/internal/handler/grpc"
	"github.com/MKhiriev/go-doc-server/internal/logger"

	"google.golang.org/grpc"
)

type grpcServer struct {
	handler *myGRPC.Handler
	addr    string

	server *grpc.Server

	logger *logger.Logger
}

func newGRPCServer(handler *myGRPC.Handler, cfg config.Server, logger *logger.Logger) *grpcServer {
	return &grpcServer{
		handler: handler,
		addr:    cfg.GRPCAddress,
		server:  handler.Init(),
		logger:  logger,
	}
}

func (g *grpcServer) address() string {
	return g.addr
}

// serve blocks until the server is stopped. A nil error means a graceful
// stop.
func (g *grpcServer) serve(l net.Listener) error {
	if err := g.server.Serve(l); err != nil && !errors.Is(err, grpc.ErrServerStopped) {
		return err
	}
	return nil
}

func (g *grpcServer) Shutdown() {
	g.logger.Info().Msg("gRPC server Shutdown")
	g.handler.Shutdown()
	g.server.GracefulStop()
}
