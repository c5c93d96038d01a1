// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"testing"
)

const testHashKey = "test-secret-key"

func TestHashString_MatchesHMAC(t *testing.T) {
	h := hmac.New(sha256.New, []byte(testHashKey))
	h.Write([]byte("reset-token"))
	expected := hex.EncodeToString(h.Sum(nil))

	if got := HashString("reset-token", testHashKey); got != expected {
		t.Fatalf("unexpected hash value\nwant: %s\ngot:  %s", expected, got)
	}
}

func TestHashString_DependsOnKey(t *testing.T) {
	a := HashString("reset-token", "key-a")
	b := HashString("reset-token", "key-b")

	if a == b {
		t.Fatal("expected different digests for different keys")
	}
}

func TestHashString_Deterministic(t *testing.T) {
	if HashString("x", testHashKey) != HashString("x", testHashKey) {
		t.Fatal("hash must be deterministic for the same input")
	}
}
