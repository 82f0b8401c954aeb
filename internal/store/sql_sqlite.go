package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/mattn/go-sqlite3"

	"github.com/MKhiriev/go-sales-keeper/internal/config"
	"github.com/MKhiriev/go-sales-keeper/internal/logger"
)

// NewConnectSQLite opens a SQLite database file (created on first use) with
// foreign keys enforced. SQLite is meant for local development and tests.
func NewConnectSQLite(ctx context.Context, cfg config.DB, log *logger.Logger) (*DB, error) {
	conn, err := sql.Open("sqlite3", sqliteDSN(cfg.DSN))
	if err != nil {
		log.Err(err).Str("func", "NewConnectSQLite").Msg("error connecting database")
		return nil, fmt.Errorf("error opening connection to DB: %w", err)
	}

	// one writer; also keeps a :memory: database alive and shared
	conn.SetMaxOpenConns(1)

	// ping database
	err = conn.PingContext(ctx)
	if err != nil {
		log.Err(err).Str("func", "NewConnectSQLite").Msg("error connecting database (ping)")
		_ = conn.Close()
		return nil, err
	}
	log.Debug().Str("func", "NewConnectSQLite").Msg("connected to database successfully")

	return &DB{
		DB:                 conn,
		dialect:            DialectSQLite,
		logger:             log,
		errorClassificator: NewSQLiteErrorClassifier(),
	}, nil
}

// sqliteDSN turns foreign key enforcement on unless dsn sets it already.
func sqliteDSN(dsn string) string {
	if strings.Contains(dsn, "_foreign_keys=") || strings.Contains(dsn, "_fk=") {
		return dsn
	}
	if strings.Contains(dsn, "?") {
		return dsn + "&_foreign_keys=on"
	}
	return dsn + "?_foreign_keys=on"
}

// SQLiteErrorClassifier implements [ErrorClassificator] for go-sqlite3.
type SQLiteErrorClassifier struct{}

// NewSQLiteErrorClassifier constructs a [SQLiteErrorClassifier].
func NewSQLiteErrorClassifier() *SQLiteErrorClassifier {
	return &SQLiteErrorClassifier{}
}

// Classify implements [ErrorClassificator]. Busy and locked databases are
// retryable.
func (c *SQLiteErrorClassifier) Classify(err error) ErrorClassification {
	var sqliteErr sqlite3.Error
	if !errors.As(err, &sqliteErr) {
		return NonRetryable
	}

	switch sqliteErr.Code {
	case sqlite3.ErrBusy, sqlite3.ErrLocked:
		return Retryable
	}
	return NonRetryable
}

// Constraint implements [ErrorClassificator].
func (c *SQLiteErrorClassifier) Constraint(err error) ConstraintViolation {
	var sqliteErr sqlite3.Error
	if !errors.As(err, &sqliteErr) || sqliteErr.Code != sqlite3.ErrConstraint {
		return NoViolation
	}

	switch sqliteErr.ExtendedCode {
	case sqlite3.ErrConstraintUnique, sqlite3.ErrConstraintPrimaryKey:
		return UniqueViolation
	case sqlite3.ErrConstraintForeignKey:
		return ForeignKeyViolation
	case sqlite3.ErrConstraintNotNull:
		return NotNullViolation
	}
	return NoViolation
}
