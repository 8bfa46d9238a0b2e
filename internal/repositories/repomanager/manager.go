// Package repomanager vends repository implementations for one database
// backend and applies that backend's schema migrations.
//
// Open is the usual entry point: it opens the database for a driver name
// taken from configuration, prepares the connection and returns the
// matching RepositoryManager.
package repomanager

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/opio/bpmonitor/internal/dbx"
	"github.com/opio/bpmonitor/internal/filex"
	"github.com/opio/bpmonitor/internal/migrations"
	"github.com/opio/bpmonitor/internal/repositories/accounts"
	"github.com/opio/bpmonitor/internal/repositories/readings"
	"github.com/opio/bpmonitor/internal/repositories/supporters"
)

// Driver names accepted by Open.
const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

type RepositoryManager interface {
	RunMigrations(context.Context, *sql.DB) error
	Accounts(db dbx.DBTX) accounts.Repository
	Readings(db dbx.DBTX) readings.Repository
	Supporters(db dbx.DBTX) supporters.Repository
}

// migrateUp is a seam for testing migrations.Up.
var migrateUp = migrations.Up

// sqlOpen is a seam for testing sql.Open.
var sqlOpen = sql.Open

// Open opens the database named by driver and dsn and returns it together
// with the matching RepositoryManager. Migrations are not applied.
func Open(ctx context.Context, driver, dsn string) (*sql.DB, RepositoryManager, error) {
	switch driver {
	case DriverSQLite:
		if dsn != ":memory:" && !strings.HasPrefix(dsn, "file:") {
			if err := filex.EnsureParentDir(dsn); err != nil {
				return nil, nil, fmt.Errorf("db dir error: %w", err)
			}
		}
		db, err := sqlOpen("sqlite", dsn)
		if err != nil {
			return nil, nil, fmt.Errorf("db open error: %w", err)
		}
		// a single connection keeps :memory: databases and PRAGMAs consistent
		db.SetMaxOpenConns(1)
		if _, err := db.ExecContext(ctx, `PRAGMA foreign_keys = ON`); err != nil {
			_ = db.Close()
			return nil, nil, fmt.Errorf("enable foreign keys: %w", err)
		}
		return db, NewSQLiteRepositoryManager(), nil

	case DriverPostgres:
		db, err := sqlOpen("pgx", dsn)
		if err != nil {
			return nil, nil, fmt.Errorf("db open error: %w", err)
		}
		if err := db.PingContext(ctx); err != nil {
			_ = db.Close()
			return nil, nil, fmt.Errorf("db ping error: %w", err)
		}
		return db, NewPostgresRepositoryManager(), nil
	}

	return nil, nil, fmt.Errorf("unsupported database driver %q", driver)
}
