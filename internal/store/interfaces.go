// Package store persists users, accounts and transfers of the reference
// ledger server in PostgreSQL or SQLite.
package store

//go:generate mockgen -source=interfaces.go -destination=../mock/repositories_mock.go -package=mock

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/MKhiriev/go-ledger/models"
)

// UserRepository manages registered users.
type UserRepository interface {
	// CreateUser inserts the user and opens their account credited with
	// initialBalance, atomically. Returns the user with UserID and CreatedAt
	// filled. A taken username yields [ErrUsernameAlreadyExists].
	CreateUser(ctx context.Context, user models.User, initialBalance decimal.Decimal) (models.User, error)

	// FindUserByUsername returns the stored user including PasswordHash, or
	// [ErrNoUserWasFound].
	FindUserByUsername(ctx context.Context, username string) (models.User, error)

	// ListUsersExcept returns every user but userID, ordered by ID.
	ListUsersExcept(ctx context.Context, userID int64) ([]models.UserSummary, error)
}

// AccountRepository reads account balances.
type AccountRepository interface {
	GetBalance(ctx context.Context, userID int64) (models.AccountBalance, error)
}

// TransferRepository posts and reads transfers.
type TransferRepository interface {
	// CreateSendTransfer moves req.Amount from req.FromUserID to req.ToUserID
	// and records an approved Send transfer, all in one transaction.
	//
	// When req.IdempotencyKey was already used by the same sender, the stored
	// transfer is returned if fingerprint matches and
	// [ErrIdempotencyKeyReused] otherwise; no funds move in either case.
	CreateSendTransfer(ctx context.Context, req models.TransferRequest, fingerprint string) (models.Transfer, error)

	// ListTransfersForUser returns transfers sent or received by userID,
	// ordered by ID.
	ListTransfersForUser(ctx context.Context, userID int64) ([]models.Transfer, error)

	// GetTransferForUser returns the transfer if it involves userID, else
	// [ErrTransferNotFound].
	GetTransferForUser(ctx context.Context, userID, transferID int64) (models.Transfer, error)
}
