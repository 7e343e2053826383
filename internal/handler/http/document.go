// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/go-doc-server/internal/logger"
	"github.com/MKhiriev/go-doc-server/internal/utils"
	"github.com/MKhiriev/go-doc-server/models"
)

// getDocument answers with the document loaded at startup wrapped as
// {"message": <document>}. Nothing from the request is read.
func (h *Handler) getDocument(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	document := h.services.DocumentService.GetDocument(r.Context())

	if _, err := utils.WriteJSON(w, models.RootResponse{Message: document}, http.StatusOK); err != nil {
		log.Err(err).Msg("failed to write document response")
	}
}
