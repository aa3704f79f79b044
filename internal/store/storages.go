package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-ledger/internal/config"
	"github.com/MKhiriev/go-ledger/internal/logger"
)

// Storages groups the repositories of the ledger server over one [DB].
type Storages struct {
	UserRepository     UserRepository
	AccountRepository  AccountRepository
	TransferRepository TransferRepository

	db *DB
}

// NewStorages connects to the configured database, applies migrations and
// builds every repository.
func NewStorages(ctx context.Context, cfg config.DB, log *logger.Logger) (*Storages, error) {
	db, err := NewDB(ctx, cfg, log)
	if err != nil {
		return nil, fmt.Errorf("error connecting to %s database: %w", cfg.Driver, err)
	}

	if err = db.Migrate(); err != nil {
		log.Err(err).Str("func", "NewStorages").Msg("error migrating database")
		_ = db.Close()
		return nil, err
	}

	return newStorages(db, log), nil
}

func newStorages(db *DB, log *logger.Logger) *Storages {
	return &Storages{
		UserRepository:     NewUserRepository(db, log),
		AccountRepository:  NewAccountRepository(db, log),
		TransferRepository: NewTransferRepository(db, log),
		db:                 db,
	}
}

// Close releases the database connection.
func (s *Storages) Close() error {
	return s.db.Close()
}
