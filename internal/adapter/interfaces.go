// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"

	"github.com/MKhiriev/go-doc-server/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/server_adapter_mock.go -package=mock

// ServerAdapter is the client-side view of a running document server.
type ServerAdapter interface {
	// FetchDocument retrieves the document served at the root endpoint.
	//
	// Returns [ErrUnexpectedStatus] for any status other than 200,
	// [ErrIntegrityCheckFailed] if a hash key is set and the response signature
	// is missing or does not match, and
	// [ErrMalformedResponse] if the body is not a {"message": ...} object.
	FetchDocument(ctx context.Context) (models.Document, error)
}
