// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testParams = Params{Time: 1, Memory: 8 * 1024, Threads: 1, SaltLen: 16, KeyLen: 32}

func TestHash_Format(t *testing.T) {
	h := NewPasswordHasherWithParams(testParams)

	encoded, err := h.Hash("pw1")
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(encoded, "$argon2id$v=19$m=8192,t=1,p=1$"), encoded)
	assert.Len(t, strings.Split(encoded, "$"), 6)
}

func TestHash_SaltIsRandom(t *testing.T) {
	h := NewPasswordHasherWithParams(testParams)

	a, err := h.Hash("same")
	require.NoError(t, err)
	b, err := h.Hash("same")
	require.NoError(t, err)

	assert.NotEqual(t, a, b)
}

func TestVerify(t *testing.T) {
	h := NewPasswordHasherWithParams(testParams)
	encoded, err := h.Hash("pw1")
	require.NoError(t, err)

	ok, err := h.Verify("pw1", encoded)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = h.Verify("pw2", encoded)
	require.NoError(t, err)
	assert.False(t, ok)
}

// TestVerify_ParamsFromHash verifies that a hasher with different settings
// still checks hashes produced under the old ones.
func TestVerify_ParamsFromHash(t *testing.T) {
	old := NewPasswordHasherWithParams(testParams)
	encoded, err := old.Hash("pw1")
	require.NoError(t, err)

	current := NewPasswordHasherWithParams(Params{Time: 2, Memory: 16 * 1024, Threads: 2, SaltLen: 8, KeyLen: 16})
	ok, err := current.Verify("pw1", encoded)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestVerify_Malformed(t *testing.T) {
	h := NewPasswordHasherWithParams(testParams)

	tests := []struct {
		name    string
		encoded string
		wantErr error
	}{
		{"empty", "", ErrMalformedHash},
		{"plain text", "pw1", ErrMalformedHash},
		{"wrong algorithm", "$argon2i$v=19$m=8192,t=1,p=1$c2FsdA$a2V5", ErrMalformedHash},
		{"wrong version", "$argon2id$v=16$m=8192,t=1,p=1$c2FsdA$a2V5", ErrIncompatibleVersion},
		{"bad params", "$argon2id$v=19$m=x,t=1,p=1$c2FsdA$a2V5", ErrMalformedHash},
		{"bad salt", "$argon2id$v=19$m=8192,t=1,p=1$!!!$a2V5", ErrMalformedHash},
		{"empty key", "$argon2id$v=19$m=8192,t=1,p=1$c2FsdA$", ErrMalformedHash},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ok, err := h.Verify("pw1", tt.encoded)
			assert.False(t, ok)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}
