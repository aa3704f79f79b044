package service

//go:generate mockgen -source=interfaces.go -destination=../mock/services_mock.go -package=mock

import (
	"context"

	"github.com/MKhiriev/go-ledger/models"
)

// AuthService registers users and issues bearer tokens on the ledger server.
type AuthService interface {
	RegisterUser(ctx context.Context, user models.User) (models.User, error)
	Login(ctx context.Context, user models.User) (models.User, error)
	CreateToken(ctx context.Context, user models.User) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

// LedgerService answers the authenticated ledger endpoints. userID is always
// the caller taken from the verified token.
type LedgerService interface {
	GetBalance(ctx context.Context, userID int64) (models.AccountBalance, error)
	ListUsers(ctx context.Context, userID int64) ([]models.UserSummary, error)
	ListTransfers(ctx context.Context, userID int64) ([]models.Transfer, error)
	GetTransfer(ctx context.Context, userID, transferID int64) (models.Transfer, error)
	SendTransfer(ctx context.Context, userID int64, req models.TransferRequest) (models.Transfer, error)
}

// AppInfoService reports the server build.
type AppInfoService interface {
	GetBuildInfo(ctx context.Context) models.AppBuildInfo
}
