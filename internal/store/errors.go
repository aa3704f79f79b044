package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrUsernameAlreadyExists is returned when registration fails because
	// another user already holds the username.
	ErrUsernameAlreadyExists = errors.New("username already exists")

	// ErrNoUserWasFound is returned when a user lookup matches nothing.
	ErrNoUserWasFound = errors.New("no user was found")

	// ErrAccountNotFound is returned when a user has no ledger account.
	ErrAccountNotFound = errors.New("account was not found")

	// ErrInsufficientFunds is returned when the sender's balance is below the
	// transfer amount. Nothing is written.
	ErrInsufficientFunds = errors.New("insufficient funds")

	// ErrAmountPrecision is returned when a transfer amount has fractions of a
	// cent. Nothing is written.
	ErrAmountPrecision = errors.New("amount has more than two decimal places")

	// ErrRecipientNotFound is returned when the recipient has no account.
	ErrRecipientNotFound = errors.New("recipient was not found")

	// ErrTransferNotFound is returned when a transfer does not exist or does
	// not involve the requesting user.
	ErrTransferNotFound = errors.New("transfer was not found")

	// ErrIdempotencyKeyReused is returned when a sender repeats an
	// Idempotency-Key with a different request body.
	ErrIdempotencyKeyReused = errors.New("idempotency key reused with a different request")

	// ErrUnsupportedDriver is returned by [NewDB] for an unknown driver name.
	ErrUnsupportedDriver = errors.New("unsupported database driver")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when squirrel cannot render a query.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT or similar
	// read-only query against the database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrBeginningTransaction is returned when the database driver cannot
	// start a new transaction.
	ErrBeginningTransaction = errors.New("failed to begin transaction")

	// ErrCommitingTransaction is returned when committing an open transaction
	// fails. The transaction is considered rolled back at this point.
	ErrCommitingTransaction = errors.New("failed to commit transaction")

	// ErrExecutingStatement is returned when an INSERT or UPDATE fails.
	ErrExecutingStatement = errors.New("failed to executing statement")

	// ErrScanningRow is returned when scanning a single result row fails.
	ErrScanningRow = errors.New("failed to scan row")

	// ErrScanningRows is returned when scanning fails mid result set.
	ErrScanningRows = errors.New("failed to scan rows")
)
