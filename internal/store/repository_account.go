package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-ledger/internal/logger"
	"github.com/MKhiriev/go-ledger/models"
)

type accountRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewAccountRepository constructs an [AccountRepository] backed by db.
func NewAccountRepository(db *DB, logger *logger.Logger) AccountRepository {
	logger.Debug().Msg("creating account repository")
	return &accountRepository{
		db:     db,
		logger: logger,
	}
}

func (r *accountRepository) GetBalance(ctx context.Context, userID int64) (models.AccountBalance, error) {
	log := logger.FromContext(ctx)

	row, err := queryRow(ctx, r.db, r.db.balanceQuery(userID))
	if err != nil {
		return models.AccountBalance{}, err
	}

	var balance models.AccountBalance
	if err = row.Scan(&balance.OwnerID, &balance.Balance); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.AccountBalance{}, ErrAccountNotFound
		}
		log.Err(err).Str("func", "*accountRepository.GetBalance").Msg("error: scanning error")
		return models.AccountBalance{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return balance, nil
}
