// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"github.com/MKhiriev/go-ledger/internal/adapter"
	"github.com/MKhiriev/go-ledger/internal/logger"
	"github.com/MKhiriev/go-ledger/internal/session"
)

// ClientServices is the client core wired around one session.
type ClientServices struct {
	Session    *session.Session
	Auth       ClientAuthService
	Ledger     ClientLedgerService
	Controller *SessionController
}

// NewClientServices wires the authenticator, ledger client and session
// controller over serverAdapter. serverAdapter must read its bearer token
// from sess.Credentials().
func NewClientServices(serverAdapter adapter.LedgerAdapter, sess *session.Session, logger *logger.Logger) *ClientServices {
	authSvc := NewClientAuthService(serverAdapter, sess, logger)
	ledgerSvc := NewClientLedgerService(serverAdapter, sess, logger)

	return &ClientServices{
		Session:    sess,
		Auth:       authSvc,
		Ledger:     ledgerSvc,
		Controller: NewSessionController(authSvc, ledgerSvc, logger),
	}
}
