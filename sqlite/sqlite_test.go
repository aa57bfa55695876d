package sqlite_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/fwojciec/artext/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestDB(t *testing.T) *sqlite.DB {
	t.Helper()
	db := sqlite.NewDB(":memory:")
	require.NoError(t, db.Open())
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func TestDB_Open(t *testing.T) {
	t.Parallel()

	t.Run("migrates a new database", func(t *testing.T) {
		t.Parallel()

		db := newTestDB(t)

		var count int
		err := db.QueryRowContext(context.Background(), "SELECT COUNT(*) FROM extractions").Scan(&count)
		require.NoError(t, err)
		assert.Zero(t, count)

		version, err := db.Version(context.Background())
		require.NoError(t, err)
		assert.Equal(t, 2, version)
	})

	t.Run("reopening skips applied migrations", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "history.db")
		first := sqlite.NewDB(path)
		require.NoError(t, first.Open())
		_, err := first.ExecContext(context.Background(),
			`INSERT INTO extractions (id, url, strategy, extracted_at) VALUES ('a', 'https://velog.io/@a/b', 'none', '2025-01-01T00:00:00.000000000Z')`)
		require.NoError(t, err)
		require.NoError(t, first.Close())

		second := sqlite.NewDB(path)
		require.NoError(t, second.Open())
		defer second.Close()

		var count int
		require.NoError(t, second.QueryRowContext(context.Background(), "SELECT COUNT(*) FROM extractions").Scan(&count))
		assert.Equal(t, 1, count)
	})

	t.Run("returns error for invalid path", func(t *testing.T) {
		t.Parallel()

		db := sqlite.NewDB("/nonexistent/path/db.sqlite")
		require.Error(t, db.Open())
	})

	t.Run("enables WAL mode for file-based databases", func(t *testing.T) {
		t.Parallel()

		db := sqlite.NewDB(filepath.Join(t.TempDir(), "test.db"))
		require.NoError(t, db.Open())
		defer db.Close()

		var journalMode string
		err := db.QueryRowContext(context.Background(), "PRAGMA journal_mode").Scan(&journalMode)
		require.NoError(t, err)
		assert.Equal(t, "wal", journalMode)
	})
}
