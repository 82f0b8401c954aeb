package store

import (
	"context"
	"database/sql"
	"strings"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-sales-keeper/internal/config"
	"github.com/MKhiriev/go-sales-keeper/internal/logger"
	"github.com/MKhiriev/go-sales-keeper/migrations"
)

// Dialect names the SQL backend behind a [DB].
type Dialect string

const (
	DialectPostgres Dialect = "postgres"
	DialectSQLite   Dialect = "sqlite3"
)

// DB is a database handle bound to one dialect.
type DB struct {
	*sql.DB
	dialect            Dialect
	errorClassificator ErrorClassificator
	logger             *logger.Logger
}

// NewDB opens the database named by cfg.DSN. postgres:// and postgresql://
// URIs are opened with pgx, anything else with SQLite.
func NewDB(ctx context.Context, cfg config.DB, log *logger.Logger) (*DB, error) {
	if IsPostgresDSN(cfg.DSN) {
		return NewConnectPostgres(ctx, cfg, log)
	}
	return NewConnectSQLite(ctx, cfg, log)
}

// IsPostgresDSN reports whether dsn is a PostgreSQL connection URI.
func IsPostgresDSN(dsn string) bool {
	return strings.HasPrefix(dsn, "postgres://") || strings.HasPrefix(dsn, "postgresql://")
}

// Dialect returns the SQL dialect of db.
func (db *DB) Dialect() Dialect {
	return db.dialect
}

// Migrate applies the embedded migrations of db's dialect.
func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB, string(db.dialect))
}

// IsRetryable reports whether err is a transient failure worth retrying.
func (db *DB) IsRetryable(err error) bool {
	return db.errorClassificator != nil && db.errorClassificator.Classify(err) == Retryable
}

// builder returns a squirrel statement builder using the placeholder format
// of db's dialect.
func (db *DB) builder() sq.StatementBuilderType {
	if db.dialect == DialectPostgres {
		return sq.StatementBuilder.PlaceholderFormat(sq.Dollar)
	}
	return sq.StatementBuilder.PlaceholderFormat(sq.Question)
}

// constraint reports the integrity constraint err violated.
func (db *DB) constraint(err error) ConstraintViolation {
	if db.errorClassificator == nil {
		return NoViolation
	}
	return db.errorClassificator.Constraint(err)
}
