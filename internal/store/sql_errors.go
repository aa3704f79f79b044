package store

import (
	"errors"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/mattn/go-sqlite3"
)

// ErrorKind is what a repository needs to know about a failed statement.
type ErrorKind int

const (
	// ErrorKindOther covers everything without a domain meaning.
	ErrorKindOther ErrorKind = iota

	// ErrorKindUniqueViolation is a duplicate value in a UNIQUE column.
	ErrorKindUniqueViolation

	// ErrorKindForeignKeyViolation is a reference to a missing row.
	ErrorKindForeignKeyViolation

	// ErrorKindCheckViolation is a failed CHECK constraint.
	ErrorKindCheckViolation

	// ErrorKindTransient means the statement may succeed if the whole
	// transaction is retried (lost connection, deadlock, busy database).
	ErrorKindTransient
)

// ErrorClassifier maps a driver error to an [ErrorKind].
type ErrorClassifier interface {
	Classify(err error) ErrorKind
}

// PostgresErrorClassifier inspects the SQLSTATE of *pgconn.PgError.
// See https://www.postgresql.org/docs/current/errcodes-appendix.html.
type PostgresErrorClassifier struct{}

// NewPostgresErrorClassifier constructs a [PostgresErrorClassifier].
func NewPostgresErrorClassifier() *PostgresErrorClassifier {
	return &PostgresErrorClassifier{}
}

// Classify implements [ErrorClassifier].
func (c *PostgresErrorClassifier) Classify(err error) ErrorKind {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return ErrorKindOther
	}

	switch pgErr.Code {
	case pgerrcode.UniqueViolation:
		return ErrorKindUniqueViolation
	case pgerrcode.ForeignKeyViolation:
		return ErrorKindForeignKeyViolation
	case pgerrcode.CheckViolation:
		return ErrorKindCheckViolation

	// Class 08 connection exceptions, class 40 transaction rollback,
	// 57P03 cannot connect now
	case pgerrcode.ConnectionException,
		pgerrcode.ConnectionDoesNotExist,
		pgerrcode.ConnectionFailure,
		pgerrcode.TransactionRollback,
		pgerrcode.SerializationFailure,
		pgerrcode.DeadlockDetected,
		pgerrcode.CannotConnectNow:
		return ErrorKindTransient
	}

	return ErrorKindOther
}

// SQLiteErrorClassifier inspects sqlite3.Error result codes.
type SQLiteErrorClassifier struct{}

// NewSQLiteErrorClassifier constructs a [SQLiteErrorClassifier].
func NewSQLiteErrorClassifier() *SQLiteErrorClassifier {
	return &SQLiteErrorClassifier{}
}

// Classify implements [ErrorClassifier].
func (c *SQLiteErrorClassifier) Classify(err error) ErrorKind {
	var liteErr sqlite3.Error
	if !errors.As(err, &liteErr) {
		return ErrorKindOther
	}

	switch liteErr.ExtendedCode {
	case sqlite3.ErrConstraintUnique, sqlite3.ErrConstraintPrimaryKey:
		return ErrorKindUniqueViolation
	case sqlite3.ErrConstraintForeignKey:
		return ErrorKindForeignKeyViolation
	case sqlite3.ErrConstraintCheck:
		return ErrorKindCheckViolation
	}

	switch liteErr.Code {
	case sqlite3.ErrBusy, sqlite3.ErrLocked:
		return ErrorKindTransient
	}

	return ErrorKindOther
}
