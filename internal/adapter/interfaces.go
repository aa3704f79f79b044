// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter is the transport layer between the ledger client services
// and the remote ledger service.
//
// [LedgerAdapter] hides the wire protocol from the service layer. The package
// ships an HTTP/JSON implementation built on resty ([NewHTTPLedgerAdapter]).
// Every method performs exactly one request; there is no retry and no cache.
//
// Non-2xx responses are mapped by mapHTTPError onto the sentinels in
// errors.go (e.g. [ErrNotFound] for 404, [ErrUnprocessableEntity] for 422)
// with the plain-text response body appended, so the service layer can tell
// "insufficient funds" from "invalid recipient" using errors.Is plus the
// message.
package adapter

import (
	"context"

	"github.com/MKhiriev/go-ledger/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/ledger_adapter_mock.go -package=mock

// LedgerAdapter talks to the ledger service on behalf of one client session.
type LedgerAdapter interface {
	// Register creates an account. It does not log in.
	Register(ctx context.Context, user models.User) error

	// Login exchanges a username and password for a bearer token plus the
	// caller's identity. The token is returned, not stored.
	Login(ctx context.Context, user models.User) (models.LoginResponse, error)

	// GetBalance returns the balance of the caller's account.
	GetBalance(ctx context.Context) (models.AccountBalance, error)

	// ListUsers returns every user the caller may send funds to, in the
	// order the service sent them.
	ListUsers(ctx context.Context) ([]models.UserSummary, error)

	// ListTransfers returns the transfers the caller took part in.
	ListTransfers(ctx context.Context) ([]models.Transfer, error)

	// GetTransfer returns one transfer by ID. [ErrNotFound] if it does not
	// exist or the caller is not a party to it.
	GetTransfer(ctx context.Context, transferID int64) (models.Transfer, error)

	// SubmitTransfer asks the service to move funds and returns the
	// recorded transfer. req.IdempotencyKey, when set, is sent as the
	// Idempotency-Key header.
	SubmitTransfer(ctx context.Context, req models.TransferRequest) (models.Transfer, error)
}

// TokenSource supplies the bearer token attached to authenticated requests.
// [session.CredentialStore] satisfies it.
type TokenSource interface {
	Get() (string, bool)
}
