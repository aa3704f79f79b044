// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package session

import (
	"strings"
	"sync"
)

// CredentialStore holds the opaque bearer token attached to outgoing ledger
// requests. The empty string means "absent". It is safe for concurrent use.
type CredentialStore struct {
	mu    sync.RWMutex
	token string
}

// NewCredentialStore returns an empty store.
func NewCredentialStore() *CredentialStore {
	return &CredentialStore{}
}

// Set stores token (whitespace-trimmed), replacing any prior value. A blank
// token leaves the store absent.
func (s *CredentialStore) Set(token string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = strings.TrimSpace(token)
}

// Get returns the current token and true, or "" and false when absent.
func (s *CredentialStore) Get() (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token, s.token != ""
}

// Clear makes the token absent. Calling it repeatedly is harmless.
func (s *CredentialStore) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = ""
}
