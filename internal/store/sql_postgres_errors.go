package store

import (
	"errors"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
)

// ErrorClassification tells whether a failed database operation should be
// retried or abandoned.
type ErrorClassification int

const (
	// NonRetryable is the default for unrecognised errors, constraint
	// violations, syntax errors and data exceptions.
	NonRetryable ErrorClassification = iota

	// Retryable marks transient failures: connection loss, deadlock or
	// serialization rollback, a server that cannot accept connections yet.
	Retryable
)

// ConstraintViolation names the integrity constraint a write broke.
type ConstraintViolation int

const (
	NoViolation ConstraintViolation = iota
	UniqueViolation
	ForeignKeyViolation
	NotNullViolation
)

// PostgresErrorClassifier implements [ErrorClassificator] for PostgreSQL
// errors surfaced by pgx as *pgconn.PgError.
type PostgresErrorClassifier struct{}

// NewPostgresErrorClassifier constructs a [PostgresErrorClassifier].
func NewPostgresErrorClassifier() *PostgresErrorClassifier {
	return &PostgresErrorClassifier{}
}

// Classify implements [ErrorClassificator].
func (c *PostgresErrorClassifier) Classify(err error) ErrorClassification {
	if pgErr := postgresError(err); pgErr != nil {
		return ClassifyPgError(pgErr)
	}
	return NonRetryable
}

// Constraint implements [ErrorClassificator].
func (c *PostgresErrorClassifier) Constraint(err error) ConstraintViolation {
	pgErr := postgresError(err)
	if pgErr == nil {
		return NoViolation
	}

	switch pgErr.Code {
	case pgerrcode.UniqueViolation:
		return UniqueViolation
	case pgerrcode.ForeignKeyViolation:
		return ForeignKeyViolation
	case pgerrcode.NotNullViolation:
		return NotNullViolation
	}
	return NoViolation
}

// ClassifyPgError maps a PostgreSQL error code to an [ErrorClassification].
// See https://www.postgresql.org/docs/current/errcodes-appendix.html.
//
// Retryable: class 08 (connection), class 40 (rollback, serialization,
// deadlock) and 57P03 (cannot connect now). Everything else is NonRetryable.
func ClassifyPgError(pgErr *pgconn.PgError) ErrorClassification {
	switch pgErr.Code {
	// Class 08: connection exceptions
	case pgerrcode.ConnectionException,
		pgerrcode.ConnectionDoesNotExist,
		pgerrcode.ConnectionFailure:
		return Retryable

	// Class 40: transaction rollback
	case pgerrcode.TransactionRollback, // 40000
		pgerrcode.SerializationFailure, // 40001
		pgerrcode.DeadlockDetected:     // 40P01
		return Retryable

	// Class 57: operator intervention
	case pgerrcode.CannotConnectNow: // 57P03
		return Retryable
	}

	return NonRetryable
}

func postgresError(err error) *pgconn.PgError {
	var pgErr *pgconn.PgError
	if err != nil && errors.As(err, &pgErr) {
		return pgErr
	}
	return nil
}
