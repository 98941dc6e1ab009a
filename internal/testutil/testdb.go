package testutil

import (
	"database/sql"
	"testing"

	"github.com/alexanderramin/chronos/internal/db"
	"github.com/stretchr/testify/require"
)

// NewTestDB returns a migrated in-memory scenario store, closed when the
// test ends. It holds a single connection, so callers must close rows
// before issuing another query.
func NewTestDB(t *testing.T) *sql.DB {
	t.Helper()
	database, err := db.OpenDB(db.MemoryPath)
	require.NoError(t, err, "opening test database")
	t.Cleanup(func() { _ = database.Close() })
	return database
}

// NewTestUoW wraps database in a UnitOfWork.
func NewTestUoW(database *sql.DB) db.UnitOfWork {
	return db.NewSQLiteUnitOfWork(database)
}
