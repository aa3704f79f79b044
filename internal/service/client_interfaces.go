// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_services_mock.go -package=mock

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/MKhiriev/go-ledger/models"
)

// ClientAuthService registers users and opens or closes a session against
// the ledger service.
type ClientAuthService interface {
	// Register creates an account for user.Username. It does not log in.
	// Returns ErrInvalidCredentials for blank input, ErrUsernameTaken when
	// the name is in use, ErrTransport otherwise.
	Register(ctx context.Context, user models.User) error

	// Login authenticates and records the identity on the session. It does
	// not store the bearer credential; the returned Identity carries it.
	// Returns ErrWrongCredentials on a rejected pair.
	Login(ctx context.Context, user models.User) (models.Identity, error)

	// Logout forgets the identity and clears the credential. Idempotent.
	Logout()

	// Identity returns the logged-in user, if any.
	Identity() (models.Identity, bool)

	// IsLoggedIn reports whether an identity is recorded.
	IsLoggedIn() bool
}

// LedgerOperations are the authenticated calls of the ledger client. Each
// one fails with ErrCredentialAbsent, without touching the network, when no
// credential is stored.
type LedgerOperations interface {
	// GetBalance returns the caller's balance.
	GetBalance(ctx context.Context) (models.AccountBalance, error)

	// ListUsers returns every other account holder.
	ListUsers(ctx context.Context) ([]models.UserSummary, error)

	// ListTransfers returns transfers sent or received by the caller.
	ListTransfers(ctx context.Context) ([]models.Transfer, error)

	// GetTransferDetail returns one transfer or ErrTransferNotFound.
	GetTransferDetail(ctx context.Context, transferID int64) (models.Transfer, error)

	// SubmitTransfer sends amount from one user to another. amount <= 0
	// and fromUserID == toUserID are rejected locally with ErrValidation.
	// Remote refusals are ErrInsufficientFunds and ErrInvalidRecipient.
	SubmitTransfer(ctx context.Context, fromUserID, toUserID int64, amount decimal.Decimal) (models.Transfer, error)
}

// ClientLedgerService is the ledger client: [LedgerOperations] plus the
// hook the session controller uses to install or drop the credential.
type ClientLedgerService interface {
	LedgerOperations

	// UpdateToken stores token as the bearer credential; "" clears it.
	UpdateToken(token string)
}
