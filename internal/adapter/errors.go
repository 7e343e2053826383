// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import "errors"

var (
	ErrUnexpectedStatus     = errors.New("unexpected response status")
	ErrIntegrityCheckFailed = errors.New("response integrity check failed")
	ErrMalformedResponse    = errors.New("malformed response body")
)
