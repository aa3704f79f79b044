package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/shopspring/decimal"

	"github.com/MKhiriev/go-ledger/internal/validators"
	"github.com/MKhiriev/go-ledger/models"
)

// transferColumns is the projection every transfer read scans with
// scanTransfer.
var transferColumns = []string{
	"t.transfer_id",
	"t.user_from",
	"uf.username",
	"t.user_to",
	"ut.username",
	"t.amount",
	"t.transfer_status",
	"t.transfer_type",
	"t.created_at",
}

// money renders an amount the way the schema stores it, with two decimals.
// An amount finer than a cent is written in full, never rounded.
func money(d decimal.Decimal) string {
	if validators.HasMoneyScale(d) {
		return d.StringFixed(validators.MaxAmountScale)
	}
	return d.String()
}

func (db *DB) insertUserQuery(user models.User) sq.InsertBuilder {
	return db.builder.
		Insert(models.User{}.TableName()).
		Columns("username", "password_hash", "created_at").
		Values(user.Username, user.PasswordHash, user.CreatedAt).
		Suffix("RETURNING user_id")
}

func (db *DB) insertAccountQuery(userID int64, balance decimal.Decimal) sq.InsertBuilder {
	return db.builder.
		Insert(models.Account{}.TableName()).
		Columns("user_id", "balance").
		Values(userID, money(balance))
}

func (db *DB) findUserByUsernameQuery(username string) sq.SelectBuilder {
	return db.builder.
		Select("user_id", "username", "password_hash", "created_at").
		From(models.User{}.TableName()).
		Where(sq.Eq{"username": username})
}

func (db *DB) listUsersExceptQuery(userID int64) sq.SelectBuilder {
	return db.builder.
		Select("user_id", "username").
		From(models.User{}.TableName()).
		Where(sq.NotEq{"user_id": userID}).
		OrderBy("user_id")
}

func (db *DB) balanceQuery(userID int64) sq.SelectBuilder {
	return db.builder.
		Select("user_id", "balance").
		From(models.Account{}.TableName()).
		Where(sq.Eq{"user_id": userID})
}

// lockBalanceQuery is balanceQuery with a row lock where the driver has one.
// SQLite serialises writers on its single connection instead.
func (db *DB) lockBalanceQuery(userID int64) sq.SelectBuilder {
	query := db.balanceQuery(userID)
	if db.isPostgres() {
		query = query.Suffix("FOR UPDATE")
	}
	return query
}

func (db *DB) updateBalanceQuery(userID int64, balance decimal.Decimal) sq.UpdateBuilder {
	return db.builder.
		Update(models.Account{}.TableName()).
		Set("balance", money(balance)).
		Where(sq.Eq{"user_id": userID})
}

func (db *DB) insertTransferQuery(req models.TransferRequest, fingerprint string, createdAt time.Time) sq.InsertBuilder {
	var key any
	if req.IdempotencyKey != "" {
		key = req.IdempotencyKey
	}

	return db.builder.
		Insert(models.Transfer{}.TableName()).
		Columns(
			"transfer_type",
			"transfer_status",
			"user_from",
			"user_to",
			"amount",
			"idempotency_key",
			"request_fingerprint",
			"created_at",
		).
		Values(
			string(models.TransferTypeSend),
			string(models.TransferStatusApproved),
			req.FromUserID,
			req.ToUserID,
			money(req.Amount),
			key,
			fingerprint,
			createdAt,
		).
		Suffix("RETURNING transfer_id")
}

func (db *DB) selectTransfersQuery() sq.SelectBuilder {
	return db.builder.
		Select(transferColumns...).
		From(models.Transfer{}.TableName() + " t").
		Join("users uf ON uf.user_id = t.user_from").
		Join("users ut ON ut.user_id = t.user_to")
}

func involving(userID int64) sq.Or {
	return sq.Or{sq.Eq{"t.user_from": userID}, sq.Eq{"t.user_to": userID}}
}

func (db *DB) listTransfersForUserQuery(userID int64) sq.SelectBuilder {
	return db.selectTransfersQuery().
		Where(involving(userID)).
		OrderBy("t.transfer_id")
}

func (db *DB) getTransferForUserQuery(userID, transferID int64) sq.SelectBuilder {
	return db.selectTransfersQuery().
		Where(sq.Eq{"t.transfer_id": transferID}).
		Where(involving(userID))
}

func (db *DB) findByIdempotencyKeyQuery(fromUserID int64, key string) sq.SelectBuilder {
	return db.builder.
		Select("transfer_id", "request_fingerprint").
		From(models.Transfer{}.TableName()).
		Where(sq.Eq{"user_from": fromUserID, "idempotency_key": key})
}

// rowScanner is satisfied by *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanTransfer(row rowScanner) (models.Transfer, error) {
	var (
		t             models.Transfer
		status, ttype string
	)

	if err := row.Scan(
		&t.TransferID,
		&t.FromUserID,
		&t.FromUsername,
		&t.ToUserID,
		&t.ToUsername,
		&t.Amount,
		&status,
		&ttype,
		&t.CreatedAt,
	); err != nil {
		return models.Transfer{}, err
	}

	t.Status = models.TransferStatus(status)
	t.Type = models.TransferType(ttype)
	t.CreatedAt = t.CreatedAt.UTC()
	return t, nil
}

func queryRow(ctx context.Context, q queryer, b sq.Sqlizer) (*sql.Row, error) {
	query, args, err := b.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return q.QueryRowContext(ctx, query, args...), nil
}

func query(ctx context.Context, q queryer, b sq.Sqlizer) (*sql.Rows, error) {
	query, args, err := b.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	rows, err := q.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	return rows, nil
}

func exec(ctx context.Context, q queryer, b sq.Sqlizer) (sql.Result, error) {
	query, args, err := b.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	res, err := q.ExecContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	return res, nil
}
