// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-doc-server/internal/adapter"
	"github.com/MKhiriev/go-doc-server/internal/config"
	"github.com/MKhiriev/go-doc-server/internal/logger"
	"github.com/MKhiriev/go-doc-server/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	// stdout carries only the document
	models.NewAppBuildInfo(buildVersion, buildDate, buildCommit).Print(os.Stderr)

	log := logger.NewClientLogger("go-doc-client")
	cfg, err := config.GetClientConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	serverAdapter, err := adapter.NewHTTPServerAdapter(cfg.Adapter, cfg.App, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create server adapter")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	if err = run(ctx, serverAdapter, os.Stdout); err != nil {
		log.Fatal().Err(err).Msg("client run error")
	}
}

// run fetches the document and writes it to out as indented JSON.
func run(ctx context.Context, serverAdapter adapter.ServerAdapter, out io.Writer) error {
	document, err := serverAdapter.FetchDocument(ctx)
	if err != nil {
		return fmt.Errorf("fetch document: %w", err)
	}

	b, err := json.MarshalIndent(document, "", "  ")
	if err != nil {
		return fmt.Errorf("encode document: %w", err)
	}

	_, err = fmt.Fprintln(out, string(b))
	return err
}
