package services

import (
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/isdelr/brainstash-be/internal/database"
	"github.com/stretchr/testify/require"
)

// newTestDB opens a throwaway sqlite database with the full schema applied.
func newTestDB(t *testing.T) *sql.DB {
	t.Helper()

	db, err := database.New(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	require.NoError(t, database.Migrate(db))
	return db
}
