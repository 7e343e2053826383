// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"unicode/utf8"

	"github.com/MKhiriev/go-doc-server/internal/config"
	"github.com/MKhiriev/go-doc-server/internal/logger"
	"github.com/MKhiriev/go-doc-server/models"
)

// documentFileStorage is the filesystem implementation of [DocumentStorage].
// It reads a single JSON file from a fixed path.
type documentFileStorage struct {
	path string

	logger *logger.Logger
}

// NewDocumentFileStorage constructs a [DocumentStorage] that reads the file
// at cfg.Path. The file is not touched until [DocumentStorage.LoadDocument]
// is called.
//
// Returns [ErrEmptyDocumentPath] if cfg.Path is empty.
func NewDocumentFileStorage(cfg config.Document, logger *logger.Logger) (DocumentStorage, error) {
	if cfg.Path == "" {
		return nil, ErrEmptyDocumentPath
	}

	return &documentFileStorage{
		path:   cfg.Path,
		logger: logger,
	}, nil
}

// LoadDocument opens the document file, decodes exactly one JSON value from
// it and closes the file on every exit path.
//
// Errors:
//   - [ErrDocumentNotFound] if the file does not exist;
//   - [ErrMalformedDocument] if the contents are empty, truncated, not
//     UTF-8, syntactically invalid or followed by anything but whitespace;
//   - [ErrReadingDocument] for other open/read failures.
func (s *documentFileStorage) LoadDocument(ctx context.Context) (models.Document, error) {
	if err := ctx.Err(); err != nil {
		return models.Document{}, err
	}

	file, err := os.Open(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return models.Document{}, fmt.Errorf("%w: %w", ErrDocumentNotFound, err)
		}
		return models.Document{}, fmt.Errorf("%w: %w", ErrReadingDocument, err)
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return models.Document{}, fmt.Errorf("%s: %w: %w", s.path, ErrReadingDocument, err)
	}

	document, err := decodeDocument(data)
	if err != nil {
		return models.Document{}, fmt.Errorf("%s: %w", s.path, err)
	}

	s.logger.Debug().
		Str("path", s.path).
		Str("kind", string(document.Kind())).
		Msg("document loaded from file")

	return document, nil
}

// decodeDocument parses data as exactly one JSON value. JSON text must be
// UTF-8; encoding/json would otherwise replace invalid bytes with U+FFFD.
func decodeDocument(data []byte) (models.Document, error) {
	if !utf8.Valid(data) {
		return models.Document{}, fmt.Errorf("%w: invalid UTF-8", ErrMalformedDocument)
	}

	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var value any
	if err := dec.Decode(&value); err != nil {
		return models.Document{}, classifyDecodeError(err)
	}

	// only whitespace may follow the value
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		if err == nil || isSyntaxError(err) {
			return models.Document{}, fmt.Errorf("%w: unexpected data after JSON value", ErrMalformedDocument)
		}
		return models.Document{}, fmt.Errorf("%w: %w", ErrReadingDocument, err)
	}

	return models.NewDocument(value), nil
}

func classifyDecodeError(err error) error {
	switch {
	case errors.Is(err, io.EOF):
		return fmt.Errorf("%w: file is empty", ErrMalformedDocument)
	case errors.Is(err, io.ErrUnexpectedEOF), isSyntaxError(err):
		return fmt.Errorf("%w: %w", ErrMalformedDocument, err)
	default:
		return fmt.Errorf("%w: %w", ErrReadingDocument, err)
	}
}

func isSyntaxError(err error) bool {
	var syntaxErr *json.SyntaxError
	return errors.As(err, &syntaxErr)
}
