// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package handler

import "errors"

// errNoHandlersAreCreated is returned by NewHandlers when no server address
// is configured, so no transport handler can be initialized. This is a fatal
// misconfiguration.
var errNoHandlersAreCreated = errors.New("no handlers are created")
