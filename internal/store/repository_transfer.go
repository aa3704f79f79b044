package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/MKhiriev/go-ledger/internal/logger"
	"github.com/MKhiriev/go-ledger/internal/validators"
	"github.com/MKhiriev/go-ledger/models"
)

// transferRepository implements [TransferRepository] on the "transfers" and
// "accounts" tables.
type transferRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewTransferRepository constructs a [TransferRepository] backed by db.
func NewTransferRepository(db *DB, logger *logger.Logger) TransferRepository {
	logger.Debug().Msg("creating transfer repository")
	return &transferRepository{
		db:     db,
		logger: logger,
	}
}

// CreateSendTransfer posts a Send transfer. Amounts finer than a cent are
// refused with ErrAmountPrecision before the database is touched. Inside a
// single transaction it
//  1. replays a previous transfer carrying the same idempotency key,
//  2. locks both accounts in user ID order,
//  3. checks the sender's balance,
//  4. debits the sender and credits the recipient,
//  5. inserts the transfer row.
func (r *transferRepository) CreateSendTransfer(ctx context.Context, req models.TransferRequest, fingerprint string) (models.Transfer, error) {
	log := logger.FromContext(ctx)

	if !validators.HasMoneyScale(req.Amount) {
		return models.Transfer{}, ErrAmountPrecision
	}

	var transfer models.Transfer
	err := r.db.inTx(ctx, func(tx *sql.Tx) error {
		if req.IdempotencyKey != "" {
			replayed, found, err := r.replay(ctx, tx, req, fingerprint)
			if err != nil {
				return err
			}
			if found {
				transfer = replayed
				return nil
			}
		}

		balances, err := r.lockAccounts(ctx, tx, req.FromUserID, req.ToUserID)
		if err != nil {
			return err
		}

		from, to := balances[req.FromUserID], balances[req.ToUserID]
		if from.LessThan(req.Amount) {
			return ErrInsufficientFunds
		}

		if _, err = exec(ctx, tx, r.db.updateBalanceQuery(req.FromUserID, from.Sub(req.Amount))); err != nil {
			return err
		}
		if _, err = exec(ctx, tx, r.db.updateBalanceQuery(req.ToUserID, to.Add(req.Amount))); err != nil {
			return err
		}

		row, err := queryRow(ctx, tx, r.db.insertTransferQuery(req, fingerprint, time.Now().UTC()))
		if err != nil {
			return err
		}
		var transferID int64
		if err = row.Scan(&transferID); err != nil {
			return err
		}

		transfer, err = r.getTransfer(ctx, tx, req.FromUserID, transferID)
		return err
	})

	switch {
	case err == nil:
		return transfer, nil
	case errors.Is(err, ErrInsufficientFunds),
		errors.Is(err, ErrRecipientNotFound),
		errors.Is(err, ErrAccountNotFound),
		errors.Is(err, ErrIdempotencyKeyReused):
		return models.Transfer{}, err
	case req.IdempotencyKey != "" && r.db.classifier.Classify(err) == ErrorKindUniqueViolation:
		// a concurrent request with the same key committed first
		replayed, found, replayErr := r.replay(ctx, r.db, req, fingerprint)
		if replayErr == nil && found {
			return replayed, nil
		}
		return models.Transfer{}, ErrIdempotencyKeyReused
	default:
		log.Err(err).Str("func", "*transferRepository.CreateSendTransfer").Msg("error posting transfer")
		return models.Transfer{}, fmt.Errorf("unexpected DB error: %w", err)
	}
}

// replay looks up an earlier transfer by the sender's idempotency key.
func (r *transferRepository) replay(ctx context.Context, q queryer, req models.TransferRequest, fingerprint string) (models.Transfer, bool, error) {
	row, err := queryRow(ctx, q, r.db.findByIdempotencyKeyQuery(req.FromUserID, req.IdempotencyKey))
	if err != nil {
		return models.Transfer{}, false, err
	}

	var (
		transferID  int64
		storedPrint sql.NullString
	)
	if err = row.Scan(&transferID, &storedPrint); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Transfer{}, false, nil
		}
		return models.Transfer{}, false, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	if storedPrint.String != fingerprint {
		return models.Transfer{}, false, ErrIdempotencyKeyReused
	}

	transfer, err := r.getTransfer(ctx, q, req.FromUserID, transferID)
	if err != nil {
		return models.Transfer{}, false, err
	}
	return transfer, true, nil
}

// lockAccounts reads both balances, locking rows in ascending user ID order
// so that opposite transfers cannot deadlock.
func (r *transferRepository) lockAccounts(ctx context.Context, tx *sql.Tx, fromUserID, toUserID int64) (map[int64]decimal.Decimal, error) {
	order := []int64{fromUserID, toUserID}
	if toUserID < fromUserID {
		order = []int64{toUserID, fromUserID}
	}

	balances := make(map[int64]decimal.Decimal, 2)
	for _, userID := range order {
		row, err := queryRow(ctx, tx, r.db.lockBalanceQuery(userID))
		if err != nil {
			return nil, err
		}

		var (
			owner   int64
			balance decimal.Decimal
		)
		if err = row.Scan(&owner, &balance); err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				if userID == toUserID {
					return nil, ErrRecipientNotFound
				}
				return nil, ErrAccountNotFound
			}
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		balances[owner] = balance
	}

	return balances, nil
}

func (r *transferRepository) getTransfer(ctx context.Context, q queryer, userID, transferID int64) (models.Transfer, error) {
	row, err := queryRow(ctx, q, r.db.getTransferForUserQuery(userID, transferID))
	if err != nil {
		return models.Transfer{}, err
	}

	transfer, err := scanTransfer(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Transfer{}, ErrTransferNotFound
		}
		return models.Transfer{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}
	return transfer, nil
}

// GetTransferForUser returns the transfer when userID sent or received it.
func (r *transferRepository) GetTransferForUser(ctx context.Context, userID, transferID int64) (models.Transfer, error) {
	transfer, err := r.getTransfer(ctx, r.db, userID, transferID)
	if err != nil && !errors.Is(err, ErrTransferNotFound) {
		logger.FromContext(ctx).Err(err).Str("func", "*transferRepository.GetTransferForUser").Msg("error reading transfer")
	}
	return transfer, err
}

// ListTransfersForUser returns the user's transfers oldest first.
func (r *transferRepository) ListTransfersForUser(ctx context.Context, userID int64) ([]models.Transfer, error) {
	log := logger.FromContext(ctx)

	rows, err := query(ctx, r.db, r.db.listTransfersForUserQuery(userID))
	if err != nil {
		log.Err(err).Str("func", "*transferRepository.ListTransfersForUser").Msg("error querying transfers")
		return nil, err
	}
	defer rows.Close()

	transfers := make([]models.Transfer, 0)
	for rows.Next() {
		t, err := scanTransfer(rows)
		if err != nil {
			log.Err(err).Str("func", "*transferRepository.ListTransfersForUser").Msg("error scanning transfers")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		transfers = append(transfers, t)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return transfers, nil
}
