package store

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-ledger/internal/logger"
	"github.com/MKhiriev/go-ledger/models"
)

func balanceRows(userID int64, balance string) *sqlmock.Rows {
	return sqlmock.NewRows([]string{"user_id", "balance"}).AddRow(userID, balance)
}

func TestCreateSendTransfer_Mock_InsufficientFunds(t *testing.T) {
	db, mock := newMockDB(t)
	repo := &transferRepository{db: db, logger: logger.Nop()}

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT user_id, balance FROM accounts WHERE user_id = \$1 FOR UPDATE`).
		WithArgs(int64(1)).
		WillReturnRows(balanceRows(1, "100.00"))
	mock.ExpectQuery(`SELECT user_id, balance FROM accounts WHERE user_id = \$1 FOR UPDATE`).
		WithArgs(int64(2)).
		WillReturnRows(balanceRows(2, "0.00"))
	mock.ExpectRollback()

	req := models.TransferRequest{FromUserID: 1, ToUserID: 2, Amount: decimal.RequireFromString("500.00")}
	_, err := repo.CreateSendTransfer(context.Background(), req, "fp")
	assert.ErrorIs(t, err, ErrInsufficientFunds)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateSendTransfer_Mock_FractionOfCentTouchesNothing(t *testing.T) {
	db, mock := newMockDB(t)
	repo := &transferRepository{db: db, logger: logger.Nop()}

	req := models.TransferRequest{FromUserID: 1, ToUserID: 2, Amount: decimal.RequireFromString("0.005")}
	_, err := repo.CreateSendTransfer(context.Background(), req, "fp")

	assert.ErrorIs(t, err, ErrAmountPrecision)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestMoney(t *testing.T) {
	assert.Equal(t, "25.00", money(decimal.RequireFromString("25")))
	assert.Equal(t, "0.10", money(decimal.RequireFromString("0.1000")))
	assert.Equal(t, "0.005", money(decimal.RequireFromString("0.005")))
}

func TestCreateSendTransfer_Mock_LocksInUserIDOrder(t *testing.T) {
	db, mock := newMockDB(t)
	repo := &transferRepository{db: db, logger: logger.Nop()}

	mock.ExpectBegin()
	mock.ExpectQuery("FROM accounts").WithArgs(int64(2)).WillReturnRows(balanceRows(2, "10.00"))
	mock.ExpectQuery("FROM accounts").WithArgs(int64(5)).WillReturnRows(sqlmock.NewRows([]string{"user_id", "balance"}))
	mock.ExpectRollback()

	req := models.TransferRequest{FromUserID: 5, ToUserID: 2, Amount: decimal.NewFromInt(1)}
	_, err := repo.CreateSendTransfer(context.Background(), req, "fp")
	assert.ErrorIs(t, err, ErrAccountNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateSendTransfer_Mock_Success(t *testing.T) {
	db, mock := newMockDB(t)
	repo := &transferRepository{db: db, logger: logger.Nop()}

	mock.ExpectBegin()
	mock.ExpectQuery("FROM accounts").WithArgs(int64(1)).WillReturnRows(balanceRows(1, "100.00"))
	mock.ExpectQuery("FROM accounts").WithArgs(int64(2)).WillReturnRows(balanceRows(2, "50.00"))
	mock.ExpectExec("UPDATE accounts SET balance").WithArgs("75.00", int64(1)).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("UPDATE accounts SET balance").WithArgs("75.00", int64(2)).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery("INSERT INTO transfers").WillReturnRows(sqlmock.NewRows([]string{"transfer_id"}).AddRow(3001))
	mock.ExpectQuery("FROM transfers t").
		WithArgs(int64(3001), int64(1), int64(1)).
		WillReturnRows(sqlmock.NewRows(transferColumns).
			AddRow(3001, 1, "alice", 2, "bob", "25.00", "Approved", "Send", fixedTime))
	mock.ExpectCommit()

	req := models.TransferRequest{FromUserID: 1, ToUserID: 2, Amount: decimal.RequireFromString("25.00")}
	transfer, err := repo.CreateSendTransfer(context.Background(), req, "fp")
	require.NoError(t, err)

	assert.Equal(t, int64(3001), transfer.TransferID)
	assert.Equal(t, "bob", transfer.ToUsername)
	assert.True(t, transfer.Amount.Equal(decimal.RequireFromString("25")))
	assert.Equal(t, models.TransferStatusApproved, transfer.Status)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestGetTransferForUser_Mock_NotFound(t *testing.T) {
	db, mock := newMockDB(t)
	repo := &transferRepository{db: db, logger: logger.Nop()}

	mock.ExpectQuery("FROM transfers t").
		WithArgs(int64(9999), int64(1), int64(1)).
		WillReturnRows(sqlmock.NewRows(transferColumns))

	_, err := repo.GetTransferForUser(context.Background(), 1, 9999)
	assert.ErrorIs(t, err, ErrTransferNotFound)
}
