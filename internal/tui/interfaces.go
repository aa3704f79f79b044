package tui

import (
	"context"

	"github.com/MKhiriev/go-ledger/internal/service"
	"github.com/MKhiriev/go-ledger/models"
	"github.com/shopspring/decimal"
)

// Controller is the part of [service.SessionController] the screens drive.
type Controller interface {
	Register(ctx context.Context, user models.User) error
	Login(ctx context.Context, user models.User) (models.Identity, error)
	Logout()
	Identity() (models.Identity, bool)
	Ledger() (service.LedgerOperations, error)
	SendFunds(ctx context.Context, toUserID int64, amount decimal.Decimal) (models.Transfer, error)
}
