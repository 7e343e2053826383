// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package handler

import (
	"testing"

	"github.com/MKhiriev/go-doc-server/internal/config"
	"github.com/MKhiriev/go-doc-server/internal/logger"
	"github.com/MKhiriev/go-doc-server/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewHandlers(t *testing.T) {
	tests := []struct {
		name     string
		server   config.Server
		wantHTTP bool
		wantGRPC bool
	}{
		{name: "http only", server: config.Server{HTTPAddress: "localhost:8080"}, wantHTTP: true},
		{name: "grpc only", server: config.Server{GRPCAddress: "localhost:9090"}, wantGRPC: true},
		{
			name:     "both",
			server:   config.Server{HTTPAddress: "localhost:8080", GRPCAddress: "localhost:9090"},
			wantHTTP: true,
			wantGRPC: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &config.StructuredConfig{Server: tt.server}

			handlers, err := NewHandlers(&service.Services{}, cfg, logger.Nop())

			require.NoError(t, err)
			require.NotNil(t, handlers)
			assert.Equal(t, tt.wantHTTP, handlers.HTTP != nil)
			assert.Equal(t, tt.wantGRPC, handlers.GRPC != nil)
		})
	}
}

func TestNewHandlers_NoAddress(t *testing.T) {
	handlers, err := NewHandlers(&service.Services{}, &config.StructuredConfig{}, logger.Nop())

	assert.Nil(t, handlers)
	assert.ErrorIs(t, err, errNoHandlersAreCreated)
}
