// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import (
	"context"
	"fmt"
	"net"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-doc-server/internal/config"
	"github.com/MKhiriev/go-doc-server/internal/handler"
	"github.com/MKhiriev/go-doc-server/internal/logger"
)

type server struct {
	httpServer *httpServer
	gRPCServer *grpcServer
	logger     *logger.Logger
}

// transport is a server that serves on a listener bound by run.
type transport interface {
	address() string
	serve(l net.Listener) error
}

func NewServer(handlers *handler.Handlers, cfg config.Server, logger *logger.Logger) (Server, error) {
	logger.Info().Msg("creating new server...")
	servers := new(server)

	if cfg.HTTPAddress != "" && handlers.HTTP != nil {
		servers.httpServer = newHTTPServer(handlers.HTTP.Init(), cfg, logger)
	}
	if cfg.GRPCAddress != "" && handlers.GRPC != nil {
		servers.gRPCServer = newGRPCServer(handlers.GRPC, cfg, logger)
	}

	if servers.httpServer == nil && servers.gRPCServer == nil {
		return nil, errNoServersAreCreated
	}

	servers.logger = logger

	return servers, nil
}

func (s *server) RunServer() error {
	ctx, stop := signal.NotifyContext(
		context.Background(),
		syscall.SIGTERM,
		syscall.SIGINT,
		syscall.SIGQUIT,
	)
	defer stop()

	return s.run(ctx)
}

func (s *server) Shutdown() {
	// finish HTTP server
	if s.httpServer != nil {
		s.httpServer.Shutdown()
	}

	// finish gRPC server
	if s.gRPCServer != nil {
		s.gRPCServer.Shutdown()
	}
}

// run binds every created server before any of them starts serving, then
// blocks until ctx is done or a server stops on its own. Both cases end in
// Shutdown. A bind failure is returned without serving anything.
func (s *server) run(ctx context.Context) error {
	transports := s.transports()
	if len(transports) == 0 {
		return errNoServersToRun
	}

	listeners := make([]net.Listener, 0, len(transports))
	for _, t := range transports {
		l, err := net.Listen("tcp", t.address())
		if err != nil {
			for _, bound := range listeners {
				bound.Close()
			}
			return fmt.Errorf("%w on %s: %w", errListen, t.address(), err)
		}
		listeners = append(listeners, l)
	}

	serveErrors := make(chan error, len(transports))
	for i, t := range transports {
		s.logger.Info().Str("address", listeners[i].Addr().String()).Msg("Launching server")
		go func(t transport, l net.Listener) {
			serveErrors <- t.serve(l)
		}(t, listeners[i])
	}

	var err error
	select {
	case <-ctx.Done():
	case serveErr := <-serveErrors:
		// nothing has been shut down yet, so any return is a failure
		err = errServe
		if serveErr != nil {
			err = fmt.Errorf("%w: %w", errServe, serveErr)
		}
	}

	s.Shutdown()

	if err != nil {
		return err
	}

	s.logger.Info().Msg("server Shutdown gracefully")
	return nil
}

func (s *server) transports() []transport {
	var transports []transport
	if s.httpServer != nil {
		transports = append(transports, s.httpServer)
	}
	if s.gRPCServer != nil {
		transports = append(transports, s.gRPCServer)
	}
	return transports
}
