// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package migrations embeds the ledger schema for every supported database
// driver and applies it with goose.
package migrations

import (
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"sync"

	"github.com/pressly/goose/v3"

	"github.com/MKhiriev/go-ledger/internal/config"
)

//go:embed postgres/*.sql sqlite/*.sql
var embedMigrations embed.FS

var (
	// ErrNilDB is returned when Migrate is called without a connection.
	ErrNilDB = errors.New("db is nil")

	// ErrUnsupportedDriver is returned for a driver with no embedded schema.
	ErrUnsupportedDriver = errors.New("unsupported database driver")
)

// goose keeps its base FS and dialect in package state.
var gooseMu sync.Mutex

type dialect struct {
	goose string
	dir   string
}

var dialects = map[string]dialect{
	config.DriverPostgres: {goose: "pgx", dir: "postgres"},
	config.DriverSQLite:   {goose: "sqlite3", dir: "sqlite"},
}

// Migrate applies every pending migration for driver ("postgres" or
// "sqlite3") to db.
func Migrate(db *sql.DB, driver string) error {
	if db == nil {
		return ErrNilDB
	}

	d, ok := dialects[driver]
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnsupportedDriver, driver)
	}

	gooseMu.Lock()
	defer gooseMu.Unlock()

	goose.SetBaseFS(embedMigrations)

	if err := goose.SetDialect(d.goose); err != nil {
		return fmt.Errorf("migration error setting dialect for db: %w", err)
	}

	if err := goose.Up(db, d.dir); err != nil {
		return fmt.Errorf("migration error: %w", err)
	}

	return nil
}
