package db_test

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/alexanderramin/chronos/internal/db"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func tableColumns(t *testing.T, database db.DBTX, table string) []string {
	t.Helper()
	rows, err := database.QueryContext(context.Background(), `SELECT name FROM pragma_table_info(?)`, table)
	require.NoError(t, err)
	defer rows.Close()

	var cols []string
	for rows.Next() {
		var name string
		require.NoError(t, rows.Scan(&name))
		cols = append(cols, name)
	}
	require.NoError(t, rows.Err())
	return cols
}

func TestOpenDB_CreatesSchema(t *testing.T) {
	database, err := db.OpenDB(db.MemoryPath)
	require.NoError(t, err)
	defer database.Close()

	assert.Contains(t, tableColumns(t, database, "saved_scenarios"), "source")
	assert.Contains(t, tableColumns(t, database, "scenario_events"), "factions_json")
}

func TestMigrate_Idempotent(t *testing.T) {
	database, err := db.OpenDB(db.MemoryPath)
	require.NoError(t, err)
	defer database.Close()

	require.NoError(t, db.Migrate(database))
	require.NoError(t, db.Migrate(database))
}

func TestOpenDB_FileReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "chronos.db")

	first, err := db.OpenDB(path)
	require.NoError(t, err)
	_, err = first.Exec(`INSERT INTO saved_scenarios (id, scenario_name, saved_at) VALUES ('s1', 'Kept', 1)`)
	require.NoError(t, err)
	require.NoError(t, first.Close())

	second, err := db.OpenDB(path)
	require.NoError(t, err)
	defer second.Close()

	var name string
	require.NoError(t, second.QueryRow(`SELECT scenario_name FROM saved_scenarios WHERE id = 's1'`).Scan(&name))
	assert.Equal(t, "Kept", name)
}

func TestOpenDB_ForeignKeysCascade(t *testing.T) {
	database, err := db.OpenDB(db.MemoryPath)
	require.NoError(t, err)
	defer database.Close()

	_, err = database.Exec(`INSERT INTO saved_scenarios (id, scenario_name, saved_at) VALUES ('s1', 'A', 1)`)
	require.NoError(t, err)
	_, err = database.Exec(`INSERT INTO scenario_events (scenario_id, position, event_id) VALUES ('s1', 0, 'e1')`)
	require.NoError(t, err)

	_, err = database.Exec(`INSERT INTO scenario_events (scenario_id, position, event_id) VALUES ('missing', 0, 'e1')`)
	assert.Error(t, err, "orphan events must be rejected")

	_, err = database.Exec(`DELETE FROM saved_scenarios WHERE id = 's1'`)
	require.NoError(t, err)

	var n int
	require.NoError(t, database.QueryRow(`SELECT COUNT(*) FROM scenario_events`).Scan(&n))
	assert.Equal(t, 0, n)
}

func TestOpenDB_PragmasOnEveryConnection(t *testing.T) {
	database, err := db.OpenDB(filepath.Join(t.TempDir(), "chronos.db"))
	require.NoError(t, err)
	defer database.Close()

	ctx := context.Background()
	// Hold one connection so the pool has to open a second.
	first, err := database.Conn(ctx)
	require.NoError(t, err)
	defer first.Close()
	second, err := database.Conn(ctx)
	require.NoError(t, err)
	defer second.Close()

	for _, conn := range []*sql.Conn{first, second} {
		var fk, timeout int
		require.NoError(t, conn.QueryRowContext(ctx, `PRAGMA foreign_keys`).Scan(&fk))
		require.NoError(t, conn.QueryRowContext(ctx, `PRAGMA busy_timeout`).Scan(&timeout))
		assert.Equal(t, 1, fk)
		assert.Equal(t, 5000, timeout)
	}
}
