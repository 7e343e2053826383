// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"

	"github.com/MKhiriev/go-doc-server/internal/config"
	"github.com/MKhiriev/go-doc-server/internal/logger"
	"github.com/MKhiriev/go-doc-server/internal/utils"
	"github.com/MKhiriev/go-doc-server/models"
)

const hashHeader = "HashSHA256"

type httpServerAdapter struct {
	client *utils.HTTPClient

	// hasher verifies response signatures; nil when no hash key is set
	hasher *utils.Hasher

	logger *logger.Logger
}

// NewHTTPServerAdapter constructs an HTTP implementation of [ServerAdapter].
// It normalises the base URL from adapterCfg.HTTPAddress and configures the
// underlying HTTP client with it and the request timeout. A non-empty
// appCfg.HashKey makes the HashSHA256 response header mandatory and verified.
//
// Returns an error if adapterCfg.HTTPAddress is empty or cannot be parsed as a
// valid URL.
func NewHTTPServerAdapter(adapterCfg config.ClientAdapter, appCfg config.ClientApp, logger *logger.Logger) (ServerAdapter, error) {
	baseURL, err := normalizeBaseURL(adapterCfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	client := utils.NewHTTPClient().Configure(baseURL, adapterCfg.RequestTimeout)

	a := &httpServerAdapter{client: client, logger: logger}
	if appCfg.HashKey != "" {
		a.hasher = utils.NewHasher(appCfg.HashKey)
	}

	return a, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// FetchDocument implements [ServerAdapter]. It GETs / and unwraps the
// "message" field of the response.
func (h *httpServerAdapter) FetchDocument(ctx context.Context) (models.Document, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		Get("/")
	if err != nil {
		return models.Document{}, fmt.Errorf("fetch document request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Document{}, err
	}

	body := resp.Body()

	if h.hasher != nil {
		sum := resp.Header().Get(hashHeader)
		if sum == "" {
			return models.Document{}, fmt.Errorf("%w: missing %s header", ErrIntegrityCheckFailed, hashHeader)
		}
		if !h.hasher.Verify(body, sum) {
			return models.Document{}, ErrIntegrityCheckFailed
		}
	}

	var root map[string]models.Document
	if err = json.Unmarshal(body, &root); err != nil {
		return models.Document{}, fmt.Errorf("%w: %w", ErrMalformedResponse, err)
	}
	document, ok := root["message"]
	if !ok {
		return models.Document{}, fmt.Errorf("%w: no message field", ErrMalformedResponse)
	}

	h.logger.Debug().
		Str("trace_id", resp.Header().Get("X-Trace-ID")).
		Str("kind", string(document.Kind())).
		Msg("document fetched")

	return document, nil
}
