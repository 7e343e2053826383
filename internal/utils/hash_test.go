// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"bytes"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"sync"
	"testing"
)

func TestHasher_Hash(t *testing.T) {
	key := "secret-key"
	hasher := NewHasher(key)

	data := []byte("test-data")

	sum1 := hasher.Hash(data)
	sum2 := hasher.Hash(data)

	if len(sum1) == 0 {
		t.Fatal("hash result is empty")
	}

	if !bytes.Equal(sum1, sum2) {
		t.Fatal("hash must be deterministic for the same input")
	}

	// verify against direct HMAC computation
	h := hmac.New(sha256.New, []byte(key))
	h.Write(data)
	expected := h.Sum(nil)

	if !bytes.Equal(sum1, expected) {
		t.Fatalf("unexpected hash value\nwant: %x\ngot:  %x", expected, sum1)
	}
}

func TestHasher_DifferentKeys(t *testing.T) {
	data := []byte("payload")

	a := NewHasher("key-a").HashHex(data)
	b := NewHasher("key-b").HashHex(data)

	if a == b {
		t.Fatal("different keys must produce different digests")
	}
}

func TestHasher_HashHexKnownVector(t *testing.T) {
	// RFC 4231, test case 2
	const want = "5bdcc146bf60754e6a042426089575c75a003f089d2739839dec58b964ec3843"

	if got := NewHasher("Jefe").HashHex([]byte("what do ya want for nothing?")); got != want {
		t.Fatalf("HashHex = %s, want %s", got, want)
	}
}

func TestHasher_Verify(t *testing.T) {
	hasher := NewHasher("verify-key")
	data := []byte("body")
	sum := hasher.HashHex(data)

	if !hasher.Verify(data, sum) {
		t.Fatal("expected matching digest to verify")
	}
	if hasher.Verify([]byte("other"), sum) {
		t.Fatal("expected digest of different data to fail")
	}
	if hasher.Verify(data, "not-hex") {
		t.Fatal("expected malformed digest to fail")
	}
	if hasher.Verify(data, hex.EncodeToString([]byte("short"))) {
		t.Fatal("expected wrong-length digest to fail")
	}
}

func TestHasher_Concurrent(t *testing.T) {
	hasher := NewHasher("concurrent")
	data := []byte("same input")
	want := hasher.HashHex(data)

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if got := hasher.HashHex(data); got != want {
				t.Errorf("concurrent hash mismatch: %s != %s", got, want)
			}
		}()
	}
	wg.Wait()
}
