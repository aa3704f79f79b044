// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHasher_MatchesDirectHMAC(t *testing.T) {
	h := NewHasher("secret-key")
	data := []byte(`{"fromUserId":1,"toUserId":2,"amount":"25.00"}`)

	mac := hmac.New(sha256.New, []byte("secret-key"))
	mac.Write(data)
	want := mac.Sum(nil)

	assert.Equal(t, want, h.Sum(data))
	assert.Equal(t, hex.EncodeToString(want), h.SumHex(data))
}

func TestHasher_Deterministic(t *testing.T) {
	h := NewHasher("k")
	assert.Equal(t, h.SumHex([]byte("a")), h.SumHex([]byte("a")))
	assert.NotEqual(t, h.SumHex([]byte("a")), h.SumHex([]byte("b")))
}

func TestHasher_DifferentKeys(t *testing.T) {
	data := []byte("payload")
	assert.NotEqual(t, NewHasher("k1").SumHex(data), NewHasher("k2").SumHex(data))
}

func TestHasher_ConcurrentUse(t *testing.T) {
	h := NewHasher("k")
	want := h.SumHex([]byte("same"))

	var wg sync.WaitGroup
	results := make([]string, 32)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i] = h.SumHex([]byte("same"))
		}(i)
	}
	wg.Wait()

	for _, got := range results {
		require.Equal(t, want, got)
	}
}
