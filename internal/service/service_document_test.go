// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"testing"

	"github.com/MKhiriev/go-doc-server/internal/config"
	"github.com/MKhiriev/go-doc-server/internal/logger"
	"github.com/MKhiriev/go-doc-server/internal/mock"
	"github.com/MKhiriev/go-doc-server/internal/store"
	"github.com/MKhiriev/go-doc-server/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func mustDocument(t *testing.T, raw string) models.Document {
	t.Helper()
	var d models.Document
	require.NoError(t, json.Unmarshal([]byte(raw), &d))
	return d
}

// ─────────────────────────────────────────────
// NewDocumentService
// ─────────────────────────────────────────────

func TestNewDocumentService_LoadsOnce(t *testing.T) {
	ctrl := gomock.NewController(t)
	storage := mock.NewMockDocumentStorage(ctrl)
	ctx := context.Background()

	doc := mustDocument(t, `{"a": 1, "b": [2, 3]}`)
	storage.EXPECT().LoadDocument(ctx).Return(doc, nil).Times(1)

	svc, err := NewDocumentService(ctx, storage, logger.Nop())
	require.NoError(t, err)
	require.NotNil(t, svc)

	// repeated reads never touch storage again
	for i := 0; i < 5; i++ {
		assert.Equal(t, doc, svc.GetDocument(ctx))
	}
}

func TestNewDocumentService_PropagatesStorageErrors(t *testing.T) {
	tests := []struct {
		name       string
		storageErr error
	}{
		{name: "missing file", storageErr: fmt.Errorf("%w: test.json", store.ErrDocumentNotFound)},
		{name: "malformed JSON", storageErr: fmt.Errorf("%w: bad", store.ErrMalformedDocument)},
		{name: "read failure", storageErr: store.ErrReadingDocument},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			storage := mock.NewMockDocumentStorage(ctrl)
			storage.EXPECT().LoadDocument(gomock.Any()).Return(models.Document{}, tt.storageErr)

			svc, err := NewDocumentService(context.Background(), storage, logger.Nop())

			assert.Nil(t, svc)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrLoadingDocument)
			assert.ErrorIs(t, err, tt.storageErr)
		})
	}
}

func TestDocumentService_ConcurrentReads(t *testing.T) {
	ctrl := gomock.NewController(t)
	storage := mock.NewMockDocumentStorage(ctrl)

	doc := mustDocument(t, `{"items": [1, 2, 3], "name": "x"}`)
	storage.EXPECT().LoadDocument(gomock.Any()).Return(doc, nil)

	svc, err := NewDocumentService(context.Background(), storage, logger.Nop())
	require.NoError(t, err)

	want, err := json.Marshal(doc)
	require.NoError(t, err)

	const readers = 32
	results := make([][]byte, readers)

	var wg sync.WaitGroup
	wg.Add(readers)
	for i := 0; i < readers; i++ {
		go func(i int) {
			defer wg.Done()
			b, _ := json.Marshal(svc.GetDocument(context.Background()))
			results[i] = b
		}(i)
	}
	wg.Wait()

	for _, got := range results {
		assert.Equal(t, want, got)
	}
}

// ─────────────────────────────────────────────
// NewServices
// ─────────────────────────────────────────────

func TestNewServices_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	storage := mock.NewMockDocumentStorage(ctrl)
	storage.EXPECT().LoadDocument(gomock.Any()).Return(mustDocument(t, `[true]`), nil)

	cfg := &config.StructuredConfig{App: config.App{Version: "1.0.0"}}
	services, err := NewServices(context.Background(), &store.Storages{DocumentStorage: storage}, cfg, logger.Nop())

	require.NoError(t, err)
	require.NotNil(t, services)
	assert.Equal(t, models.DocumentKindArray, services.DocumentService.GetDocument(context.Background()).Kind())
	assert.Equal(t, "1.0.0", services.AppInfoService.GetAppVersion(context.Background()))
}

func TestNewServices_DocumentError(t *testing.T) {
	ctrl := gomock.NewController(t)
	storage := mock.NewMockDocumentStorage(ctrl)
	storage.EXPECT().LoadDocument(gomock.Any()).Return(models.Document{}, store.ErrDocumentNotFound)

	cfg := &config.StructuredConfig{App: config.App{Version: "1.0.0"}}
	services, err := NewServices(context.Background(), &store.Storages{DocumentStorage: storage}, cfg, logger.Nop())

	assert.Nil(t, services)
	assert.ErrorIs(t, err, store.ErrDocumentNotFound)
}

func TestNewServices_MissingVersion(t *testing.T) {
	ctrl := gomock.NewController(t)
	storage := mock.NewMockDocumentStorage(ctrl)
	storage.EXPECT().LoadDocument(gomock.Any()).Return(mustDocument(t, `{}`), nil)

	services, err := NewServices(context.Background(), &store.Storages{DocumentStorage: storage}, &config.StructuredConfig{}, logger.Nop())

	assert.Nil(t, services)
	assert.ErrorIs(t, err, ErrVersionIsNotSpecified)
}
