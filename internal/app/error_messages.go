// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used across the
// go-doc-server handlers.
//
// All Msg* constants are human-readable message strings that are written into
// HTTP response bodies to describe the outcome of a request.
package app

const (
	// MsgInternalServerError is returned when the response body could not be
	// produced.
	MsgInternalServerError = "internal server error"
)
