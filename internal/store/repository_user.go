package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/MKhiriev/go-ledger/internal/logger"
	"github.com/MKhiriev/go-ledger/models"
)

// userRepository implements [UserRepository] on the "users" and "accounts"
// tables.
type userRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewUserRepository constructs a [UserRepository] backed by db.
func NewUserRepository(db *DB, logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating user repository")
	return &userRepository{
		db:     db,
		logger: logger,
	}
}

// CreateUser inserts the user row and its account in one transaction.
//
// Error handling:
//   - unique violation on username → [ErrUsernameAlreadyExists].
//   - any other driver error → wrapped.
func (r *userRepository) CreateUser(ctx context.Context, user models.User, initialBalance decimal.Decimal) (models.User, error) {
	log := logger.FromContext(ctx)

	if user.CreatedAt.IsZero() {
		user.CreatedAt = time.Now().UTC()
	}

	err := r.db.inTx(ctx, func(tx *sql.Tx) error {
		row, err := queryRow(ctx, tx, r.db.insertUserQuery(user))
		if err != nil {
			return err
		}
		if err = row.Scan(&user.UserID); err != nil {
			return err
		}

		_, err = exec(ctx, tx, r.db.insertAccountQuery(user.UserID, initialBalance))
		return err
	})
	if err != nil {
		log.Err(err).Str("func", "*userRepository.CreateUser").Msg("error creating user")

		if r.db.classifier.Classify(err) == ErrorKindUniqueViolation {
			return models.User{}, ErrUsernameAlreadyExists
		}
		return models.User{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	user.Password = ""
	return user, nil
}

// FindUserByUsername loads the user with the given username, including the
// password hash. [sql.ErrNoRows] becomes [ErrNoUserWasFound].
func (r *userRepository) FindUserByUsername(ctx context.Context, username string) (models.User, error) {
	log := logger.FromContext(ctx)

	row, err := queryRow(ctx, r.db, r.db.findUserByUsernameQuery(username))
	if err != nil {
		return models.User{}, err
	}

	var found models.User
	if err = row.Scan(&found.UserID, &found.Username, &found.PasswordHash, &found.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.User{}, ErrNoUserWasFound
		}
		log.Err(err).Str("func", "*userRepository.FindUserByUsername").Msg("error: scanning error")
		return models.User{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return found, nil
}

// ListUsersExcept returns id/username pairs of everyone but userID.
func (r *userRepository) ListUsersExcept(ctx context.Context, userID int64) ([]models.UserSummary, error) {
	log := logger.FromContext(ctx)

	rows, err := query(ctx, r.db, r.db.listUsersExceptQuery(userID))
	if err != nil {
		log.Err(err).Str("func", "*userRepository.ListUsersExcept").Msg("error querying users")
		return nil, err
	}
	defer rows.Close()

	users := make([]models.UserSummary, 0)
	for rows.Next() {
		var u models.UserSummary
		if err = rows.Scan(&u.UserID, &u.Username); err != nil {
			log.Err(err).Str("func", "*userRepository.ListUsersExcept").Msg("error scanning users")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		users = append(users, u)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return users, nil
}
