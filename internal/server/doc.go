// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package server runs the application's transports.
//
// It orchestrates the HTTP server and the optional gRPC health server:
// startup, signal handling and graceful shutdown of all enabled transports.
package server
