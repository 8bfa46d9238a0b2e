package repomanager

import (
	"context"
	"database/sql"

	"github.com/opio/bpmonitor/internal/dbx"
	"github.com/opio/bpmonitor/internal/migrations"
	"github.com/opio/bpmonitor/internal/repositories/accounts"
	"github.com/opio/bpmonitor/internal/repositories/readings"
	"github.com/opio/bpmonitor/internal/repositories/supporters"
	_ "modernc.org/sqlite"
)

// SQLiteRepositoryManager vends SQLite-backed repositories for the
// on-device database.
type SQLiteRepositoryManager struct{}

func NewSQLiteRepositoryManager() *SQLiteRepositoryManager {
	return &SQLiteRepositoryManager{}
}

func (m *SQLiteRepositoryManager) Accounts(db dbx.DBTX) accounts.Repository {
	return accounts.NewSQLiteRepository(db)
}

func (m *SQLiteRepositoryManager) Readings(db dbx.DBTX) readings.Repository {
	return readings.NewSQLiteRepository(db)
}

func (m *SQLiteRepositoryManager) Supporters(db dbx.DBTX) supporters.Repository {
	return supporters.NewSQLiteRepository(db)
}

// RunMigrations applies the embedded SQLite schema.
func (m *SQLiteRepositoryManager) RunMigrations(ctx context.Context, db *sql.DB) error {
	return migrateUp(ctx, db, migrations.SQLite)
}
