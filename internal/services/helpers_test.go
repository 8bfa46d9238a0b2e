package services

import (
	"context"
	"database/sql"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/opio/bpmonitor/internal/logging"
	"github.com/opio/bpmonitor/internal/repositories/repomanager"
	"github.com/opio/bpmonitor/internal/session"
	"github.com/opio/bpmonitor/internal/store"
	"github.com/stretchr/testify/require"
)

func discardLogger() logging.Logger {
	return logging.NewSlogLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

type testEnv struct {
	db    *sql.DB
	store *store.Store
	repo  *session.Repository
	ctrl  *Controller
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	return newTestEnvWithValidity(t, time.Hour)
}

// newTestEnvWithValidity uses session tokens valid for validity; a
// negative value makes every token expired on issue.
func newTestEnvWithValidity(t *testing.T, validity time.Duration) *testEnv {
	t.Helper()
	ctx := context.Background()

	db, m, err := repomanager.Open(ctx, repomanager.DriverSQLite, ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	require.NoError(t, m.RunMigrations(ctx, db))

	st := store.New(db, m)
	repo := session.NewRepository(st, session.New(session.NewIssuer([]byte("test-secret"), validity)))
	ctrl, err := NewController(ctx, repo, discardLogger())
	require.NoError(t, err)

	return &testEnv{db: db, store: st, repo: repo, ctrl: ctrl}
}

// register signs up a fresh account through the controller and returns its ID.
func (e *testEnv) register(t *testing.T, name, phone, patientID, pin string) int64 {
	t.Helper()
	ok, err := e.ctrl.Register(context.Background(), name, phone, patientID, pin)
	require.NoError(t, err)
	require.True(t, ok)
	return e.ctrl.CurrentAccount().ID
}
