package validators

import (
	"context"
	"strings"
	"unicode/utf8"

	"github.com/shopspring/decimal"

	"github.com/MKhiriev/go-ledger/models"
)

// Field names accepted by [LedgerValidator].
const (
	FieldFromUserID = "from_user_id"
	FieldToUserID   = "to_user_id"
	FieldAmount     = "amount"
	FieldParties    = "parties"

	FieldUsername = "username"
	FieldPassword = "password"
)

// MaxAmountScale is the number of decimal places a money amount may carry.
const MaxAmountScale = 2

// MaxUsernameLength matches the users.username column width.
const MaxUsernameLength = 50

type LedgerValidator struct{}

func NewLedgerValidator() Validator {
	return &LedgerValidator{}
}

// Validate accepts models.TransferRequest and models.User (by value or
// pointer).
func (v *LedgerValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.TransferRequest:
		return v.validateTransferRequest(value, fields...)
	case *models.TransferRequest:
		return v.validateTransferRequest(*value, fields...)

	case models.User:
		return v.validateCredentials(value, fields...)
	case *models.User:
		return v.validateCredentials(*value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *LedgerValidator) validateTransferRequest(req models.TransferRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldFromUserID, FieldToUserID, FieldAmount, FieldParties}
	}

	for _, f := range fields {
		switch f {
		case FieldFromUserID:
			if req.FromUserID <= 0 {
				return ErrInvalidUserID
			}
		case FieldToUserID:
			if req.ToUserID <= 0 {
				return ErrInvalidUserID
			}
		case FieldAmount:
			if !req.Amount.IsPositive() {
				return ErrNonPositiveAmount
			}
			if !HasMoneyScale(req.Amount) {
				return ErrAmountPrecision
			}
		case FieldParties:
			if req.FromUserID == req.ToUserID {
				return ErrSelfTransfer
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

// HasMoneyScale reports whether d is representable in whole cents.
// Trailing zeros are allowed: "25.000" is fine, "25.001" is not.
func HasMoneyScale(d decimal.Decimal) bool {
	return d.Equal(d.Truncate(MaxAmountScale))
}

func (v *LedgerValidator) validateCredentials(user models.User, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldUsername, FieldPassword}
	}

	for _, f := range fields {
		switch f {
		case FieldUsername:
			username := strings.TrimSpace(user.Username)
			if username == "" {
				return ErrEmptyUsername
			}
			if utf8.RuneCountInString(username) > MaxUsernameLength {
				return ErrUsernameTooLong
			}
		case FieldPassword:
			if user.Password == "" {
				return ErrEmptyPassword
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}
