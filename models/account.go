package models

import "github.com/shopspring/decimal"

// AccountBalance is a read-only snapshot of one user's balance.
type AccountBalance struct {
	OwnerID int64           `json:"userId"`
	Balance decimal.Decimal `json:"balance"`
}

// Account is the server-side ledger row backing an [AccountBalance].
type Account struct {
	AccountID int64
	UserID    int64
	Balance   decimal.Decimal
}

// TableName returns the name of the database table
// associated with the Account model.
func (a Account) TableName() string {
	return "accounts"
}
