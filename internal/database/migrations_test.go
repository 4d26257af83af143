package database

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestConnection(t *testing.T) *DB {
	t.Helper()

	db, err := NewConnection(Config{Path: ":memory:"})
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	return db
}

func TestRunMigrations(t *testing.T) {
	db := newTestConnection(t)

	require.NoError(t, db.RunMigrations())

	// All domain tables exist afterwards
	for _, table := range []string{"countries", "brands", "drink_types", "drinks", "users", "tickets", "ticket_lines", "sales"} {
		var name string
		err := db.QueryRow(
			"SELECT name FROM sqlite_master WHERE type = 'table' AND name = ?", table,
		).Scan(&name)
		require.NoError(t, err, "table %s should exist", table)
	}

	// Running again is a no-op
	require.NoError(t, db.RunMigrations())

	var applied int
	require.NoError(t, db.QueryRow("SELECT COUNT(*) FROM schema_migrations").Scan(&applied))
	assert.Equal(t, 1, applied)
}

func TestForeignKeysEnforced(t *testing.T) {
	db := newTestConnection(t)
	require.NoError(t, db.RunMigrations())

	_, err := db.Exec(
		"INSERT INTO tickets (user_id, total, status, created_at, updated_at) VALUES (?, 0, 'created', '', '')",
		9999,
	)
	assert.Error(t, err)
}
