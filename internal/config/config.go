// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"os"
	"time"
)

// StructuredConfig is the top-level configuration container for the
// go-doc-server application. It is populated by merging values from
// environment variables, command-line flags, an optional JSON file and,
// finally, built-in defaults.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds application-level settings such as the response hash key
	// and the application version.
	App App `envPrefix:"APP_"`

	// Storage holds configuration for the document source.
	Storage Storage `envPrefix:"STORAGE_"`

	// Server holds network address and timeout settings for the HTTP server.
	Server Server `envPrefix:"SERVER_"`

	// Adapter holds the settings used by the client to reach a running server.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App groups application-wide settings.
type App struct {
	// HashKey is the HMAC-SHA256 key used to sign response bodies.
	// Signing is disabled when empty.
	HashKey string `env:"HASH_KEY"`

	// Version is reported by the version endpoint.
	Version string `env:"VERSION"`

	// LogLevel is a zerolog level name; empty keeps debug.
	LogLevel string `env:"LOG_LEVEL"`
}

// Storage groups the configuration for all storage backends.
type Storage struct {
	Document Document `envPrefix:"DOCUMENT_"`
}

// Document describes where the served JSON document lives.
type Document struct {
	// Path is the location of the JSON file, relative paths resolve
	// against the working directory.
	Path string `env:"PATH"`
}

// Server groups HTTP server settings.
type Server struct {
	// HTTPAddress is the host:port the HTTP server listens on.
	HTTPAddress string `env:"ADDRESS"`

	// GRPCAddress is the host:port of the gRPC health endpoint.
	// The gRPC server is not started when empty.
	GRPCAddress string `env:"GRPC_ADDRESS"`

	// RequestTimeout bounds reading a request and writing its response.
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// ShutdownTimeout bounds graceful shutdown after a stop signal.
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT"`
}

// Adapter groups the settings of the HTTP client used by cmd/client.
type Adapter struct {
	// HTTPAddress is the base address of the server, with or without scheme.
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout bounds a single request to the server.
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// redactedValue replaces secrets in [StructuredConfig.Redacted].
const redactedValue = "[REDACTED]"

// Redacted returns a copy of cfg that is safe to log. A set HashKey is
// replaced with a placeholder.
func (cfg StructuredConfig) Redacted() StructuredConfig {
	if cfg.App.HashKey != "" {
		cfg.App.HashKey = redactedValue
	}
	return cfg
}

// GetStructuredConfig builds the server configuration from environment
// variables, command-line flags, the optional JSON file and defaults, in
// that priority order, and validates the result.
func GetStructuredConfig() (*StructuredConfig, error) {
	cfg, err := newConfigBuilder().
		withDotEnv(DefaultDotEnvPath).
		withEnv().
		withFlags(os.Args[1:]).
		withJSON().
		withDefaults().
		build()
	if err != nil {
		return nil, err
	}

	return cfg, cfg.validate()
}
