// Package migrations holds the embedded schema of every supported SQL
// dialect and applies it with goose.
package migrations

import (
	"database/sql"
	"embed"
	"errors"
	"fmt"

	"github.com/pressly/goose/v3"
)

//go:embed postgres/*.sql sqlite/*.sql
var embedMigrations embed.FS

// ErrNilDB is returned by [Migrate] for a nil handle.
var ErrNilDB = errors.New("migration error: db is nil")

// dirByDialect maps a store dialect name to its goose dialect and the
// directory holding its migrations.
var dirByDialect = map[string]struct {
	gooseDialect string
	dir          string
}{
	"postgres": {gooseDialect: "pgx", dir: "postgres"},
	"sqlite3":  {gooseDialect: "sqlite3", dir: "sqlite"},
}

// Migrate applies every pending migration of dialect ("postgres" or
// "sqlite3") to db.
func Migrate(db *sql.DB, dialect string) error {
	if db == nil {
		return ErrNilDB
	}

	target, ok := dirByDialect[dialect]
	if !ok {
		return fmt.Errorf("migration error: unsupported dialect %q", dialect)
	}

	goose.SetBaseFS(embedMigrations)
	goose.SetLogger(goose.NopLogger())

	if err := goose.SetDialect(target.gooseDialect); err != nil {
		return fmt.Errorf("migration error setting dialect for db: %w", err)
	}

	if err := goose.Up(db, target.dir); err != nil {
		return fmt.Errorf("migration error: %w", err)
	}

	return nil
}
