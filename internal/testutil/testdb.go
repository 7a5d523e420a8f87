package testutil

import (
	"database/sql"
	"testing"

	"github.com/juliakramer/slipway/internal/db"
	"github.com/stretchr/testify/require"
)

// NewTestDB opens an in-memory SQLite database with the full slipway schema
// migrated, closed automatically when the test finishes. Each call gets a
// private database, so parallel tests never share state.
func NewTestDB(t *testing.T) *sql.DB {
	t.Helper()
	conn, err := db.OpenDB(":memory:")
	require.NoError(t, err, "opening in-memory database")
	t.Cleanup(func() { conn.Close() })
	return conn
}

// NewTestUoW wraps a test database in the transactional unit of work used by
// the project service.
func NewTestUoW(conn *sql.DB) db.UnitOfWork {
	return db.NewSQLiteUnitOfWork(conn)
}
