// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The flashcards Authors

// Package migrations embeds the schema of the backend database and of the
// client's local store and applies it with goose.
package migrations

import (
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"sync"

	"github.com/pressly/goose/v3"
)

//go:embed postgres/*.sql sqlite/*.sql
var embedMigrations embed.FS

// ErrNilDB is returned when a migration is requested on a nil handle.
var ErrNilDB = errors.New("db is nil")

const (
	postgresDir = "postgres"
	sqliteDir   = "sqlite"
)

// goose keeps its filesystem and dialect in package globals.
var gooseMu sync.Mutex

// MigratePostgres brings the backend schema up to date.
func MigratePostgres(db *sql.DB) error {
	return migrate(db, "pgx", postgresDir)
}

// MigrateSQLite brings the client's local store schema up to date.
func MigrateSQLite(db *sql.DB) error {
	return migrate(db, "sqlite3", sqliteDir)
}

func migrate(db *sql.DB, dialect, dir string) error {
	if db == nil {
		return fmt.Errorf("migration error: %w", ErrNilDB)
	}

	gooseMu.Lock()
	defer gooseMu.Unlock()

	goose.SetBaseFS(embedMigrations)
	goose.SetLogger(goose.NopLogger())

	if err := goose.SetDialect(dialect); err != nil {
		return fmt.Errorf("migration error setting dialect for db: %w", err)
	}

	if err := goose.Up(db, dir); err != nil {
		return fmt.Errorf("migration error: %w", err)
	}

	return nil
}
