// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package migrations

import (
	"database/sql"
	"errors"
	"strings"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	_ "github.com/mattn/go-sqlite3"
)

func TestMigrate_DBError(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	defer db.Close()

	_ = mock // no expectations: goose's first query fails

	err = Migrate(db, "postgres")
	if err == nil {
		t.Fatal("expected error from Migrate, got nil")
	}

	if !strings.Contains(err.Error(), "migration error") {
		t.Errorf("expected wrapped migration error, got: %v", err)
	}
}

func TestMigrate_NilDB(t *testing.T) {
	var db *sql.DB

	err := Migrate(db, "postgres")
	if !errors.Is(err, ErrNilDB) {
		t.Fatalf("expected ErrNilDB, got: %v", err)
	}

	if !strings.Contains(err.Error(), "db is nil") {
		t.Errorf("expected 'db is nil' error, got: %v", err)
	}
}

func TestMigrate_UnknownDialect(t *testing.T) {
	db, _, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	defer db.Close()

	if err := Migrate(db, "oracle"); err == nil {
		t.Fatal("expected error for unknown dialect")
	}
}

func TestMigrate_SQLite(t *testing.T) {
	db, err := sql.Open("sqlite3", ":memory:")
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	defer db.Close()
	db.SetMaxOpenConns(1)

	if err := Migrate(db, "sqlite3"); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	// idempotent
	if err := Migrate(db, "sqlite3"); err != nil {
		t.Fatalf("second migrate: %v", err)
	}

	for _, table := range []string{"users", "customers", "payment_methods"} {
		var name string
		err := db.QueryRow(`SELECT name FROM sqlite_master WHERE type = 'table' AND name = ?`, table).Scan(&name)
		if err != nil {
			t.Errorf("table %s not created: %v", table, err)
		}
	}
}
