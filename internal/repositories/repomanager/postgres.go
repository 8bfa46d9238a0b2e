package repomanager

import (
	"context"
	"database/sql"

	"github.com/opio/bpmonitor/internal/dbx"
	"github.com/opio/bpmonitor/internal/migrations"
	"github.com/opio/bpmonitor/internal/repositories/accounts"
	"github.com/opio/bpmonitor/internal/repositories/readings"
	"github.com/opio/bpmonitor/internal/repositories/supporters"
	_ "github.com/jackc/pgx/v5/stdlib"
)

// PostgresRepositoryManager vends PostgreSQL-backed repository implementations
// and exposes a schema migration hook.
type PostgresRepositoryManager struct{}

// NewPostgresRepositoryManager constructs a PostgreSQL-backed RepositoryManager.
func NewPostgresRepositoryManager() *PostgresRepositoryManager {
	return &PostgresRepositoryManager{}
}

// Accounts returns an accounts.Repository bound to the provided DBTX.
func (m *PostgresRepositoryManager) Accounts(db dbx.DBTX) accounts.Repository {
	return accounts.NewPostgresRepository(db)
}

// Readings returns a readings.Repository bound to the provided DBTX.
func (m *PostgresRepositoryManager) Readings(db dbx.DBTX) readings.Repository {
	return readings.NewPostgresRepository(db)
}

// Supporters returns a supporters.Repository bound to the provided DBTX.
func (m *PostgresRepositoryManager) Supporters(db dbx.DBTX) supporters.Repository {
	return supporters.NewPostgresRepository(db)
}

// RunMigrations applies the embedded PostgreSQL schema through goose.
func (m *PostgresRepositoryManager) RunMigrations(ctx context.Context, db *sql.DB) error {
	return migrateUp(ctx, db, migrations.Postgres)
}
