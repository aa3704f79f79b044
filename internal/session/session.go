// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package session

import (
	"sync"

	"github.com/MKhiriev/go-ledger/models"
)

// Session is the single interactive session of the process. It owns the
// credential store and remembers who is logged in.
type Session struct {
	credentials *CredentialStore

	mu       sync.RWMutex
	identity *models.Identity
}

// New returns an anonymous session with an empty credential store.
func New() *Session {
	return &Session{credentials: NewCredentialStore()}
}

// Credentials returns the store whose token is attached to ledger requests.
func (s *Session) Credentials() *CredentialStore {
	return s.credentials
}

// SetIdentity records the logged-in user. The credential store is not
// touched; callers propagate the token explicitly.
func (s *Session) SetIdentity(identity models.Identity) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.identity = &identity
}

// Identity returns the logged-in user, if any.
func (s *Session) Identity() (models.Identity, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.identity == nil {
		return models.Identity{}, false
	}
	return *s.identity, true
}

// Reset forgets the identity and clears the credential.
func (s *Session) Reset() {
	s.mu.Lock()
	s.identity = nil
	s.mu.Unlock()

	s.credentials.Clear()
}
