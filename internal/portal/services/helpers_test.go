package services

import (
	"context"
	"database/sql"
	"io"
	"log/slog"
	"testing"

	"github.com/aquiroz/invoiceportal/internal/logging"
	"github.com/aquiroz/invoiceportal/internal/portal/repositories/records"
	"github.com/aquiroz/invoiceportal/internal/portal/store"
	"github.com/stretchr/testify/require"

	_ "modernc.org/sqlite"
)

func testLogger() logging.Logger {
	return logging.NewSlogLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

// setupSeededStore builds an in-memory record store populated with the demo
// accounts and invoices.
func setupSeededStore(t *testing.T) *store.RecordStore {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	_, err = db.Exec(`
CREATE TABLE records (
  key   TEXT PRIMARY KEY,
  value BLOB NOT NULL
);`)
	require.NoError(t, err)

	s := store.NewRecordStore(records.NewSQLiteRepository(db), testLogger())
	require.NoError(t, s.SeedIfEmpty(context.Background()))
	return s
}
