// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"bytes"
	"net/http"
)

// hashHeader carries the hex-encoded HMAC-SHA256 of the response body.
const hashHeader = "HashSHA256"

// withHashing signs response bodies when a hash key is configured. The body
// is buffered so the signature can be sent as a header before it.
func (h *Handler) withHashing(next http.Handler) http.Handler {
	if h.hasher == nil {
		return next
	}

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hw := &hashingResponseWriter{ResponseWriter: w}

		next.ServeHTTP(hw, r)

		body := hw.body.Bytes()
		w.Header().Set(hashHeader, h.hasher.HashHex(body))

		w.WriteHeader(hw.Status())
		if _, err := w.Write(body); err != nil {
			h.logger.Err(err).Msg("failed to write signed response")
		}
	})
}

// hashingResponseWriter holds back the status and body until the wrapped
// handler has finished.
type hashingResponseWriter struct {
	http.ResponseWriter

	status int
	body   bytes.Buffer
}

func (w *hashingResponseWriter) WriteHeader(statusCode int) {
	if w.status == 0 {
		w.status = statusCode
	}
}

func (w *hashingResponseWriter) Write(b []byte) (int, error) {
	if w.status == 0 {
		w.status = http.StatusOK
	}
	return w.body.Write(b)
}

func (w *hashingResponseWriter) Status() int {
	if w.status == 0 {
		return http.StatusOK
	}
	return w.status
}
