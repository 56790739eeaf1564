// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package migrations

import (
	"database/sql"
	"strings"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	_ "github.com/mattn/go-sqlite3"
)

func TestMigrate_DBError(t *testing.T) {
	db, _, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	defer db.Close()

	// no expectations: the first goose query fails
	err = Migrate(db)
	if err == nil {
		t.Fatal("expected error from Migrate, got nil")
	}

	if !strings.Contains(err.Error(), "migration error") {
		t.Errorf("expected wrapped migration error, got: %v", err)
	}
}

func TestMigrate_NilDB(t *testing.T) {
	var db *sql.DB

	err := Migrate(db)
	if err == nil {
		t.Fatal("expected error when db is nil, got nil")
	}

	if !strings.Contains(err.Error(), "db is nil") {
		t.Errorf("expected 'db is nil' error, got: %v", err)
	}
}

func TestMigrate_CreatesCredentialsTable(t *testing.T) {
	db, err := sql.Open("sqlite3", ":memory:")
	if err != nil {
		t.Fatalf("failed to open sqlite: %v", err)
	}
	defer db.Close()
	db.SetMaxOpenConns(1)

	if err = Migrate(db); err != nil {
		t.Fatalf("Migrate error: %v", err)
	}
	// idempotent
	if err = Migrate(db); err != nil {
		t.Fatalf("second Migrate error: %v", err)
	}

	if _, err = db.Exec(`INSERT INTO credentials (key, value) VALUES ('access_token', x'00')`); err != nil {
		t.Fatalf("insert into credentials: %v", err)
	}

	var updatedAt string
	if err = db.QueryRow(`SELECT updated_at FROM credentials WHERE key = 'access_token'`).Scan(&updatedAt); err != nil {
		t.Fatalf("select from credentials: %v", err)
	}
	if updatedAt == "" {
		t.Error("expected updated_at default to be set")
	}
}
