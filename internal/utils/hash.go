// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"hash"
	"sync"
)

// Hasher computes keyed HMAC-SHA256 digests. Hash instances are pooled per
// Hasher, so a single Hasher is safe for concurrent use.
type Hasher struct {
	hashKey []byte
	pool    sync.Pool
}

// NewHasher returns a Hasher keyed with hashKey.
//
// Example usage:
//
//	hasher := utils.NewHasher("my-secret-key")
//	signature := hasher.HashHex(body)
func NewHasher(hashKey string) *Hasher {
	h := &Hasher{hashKey: []byte(hashKey)}
	h.pool = sync.Pool{
		New: func() any {
			return hmac.New(sha256.New, h.hashKey)
		},
	}
	return h
}

// Hash computes an HMAC-SHA256 digest over data using a pooled hash.Hash.
func (h *Hasher) Hash(data []byte) []byte {
	hasher := h.pool.Get().(hash.Hash)
	hasher.Reset()

	hasher.Write(data)
	sum := hasher.Sum(nil)

	hasher.Reset()
	h.pool.Put(hasher)

	return sum
}

// HashHex is Hash with the digest hex-encoded.
func (h *Hasher) HashHex(data []byte) string {
	return hex.EncodeToString(h.Hash(data))
}

// Verify reports whether hexSum is the hex-encoded digest of data.
// The comparison is constant-time.
func (h *Hasher) Verify(data []byte, hexSum string) bool {
	sum, err := hex.DecodeString(hexSum)
	if err != nil {
		return false
	}
	return hmac.Equal(h.Hash(data), sum)
}
