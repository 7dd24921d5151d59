package storage

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/require"

	_ "modernc.org/sqlite"
)

func setupDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", "file:storage_tests?mode=memory&cache=shared")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	_, err = db.Exec(`
CREATE TABLE IF NOT EXISTS state (
  key   TEXT PRIMARY KEY,
  value BLOB NOT NULL
);
DELETE FROM state;
`)
	require.NoError(t, err)
	return db
}

func TestSQLiteRepository_GetMissingKeyReturnsNil(t *testing.T) {
	repo := NewSQLiteRepository(setupDB(t))

	value, err := repo.Get(context.Background(), "session")
	require.NoError(t, err)
	require.Nil(t, value)
}

func TestSQLiteRepository_SetAndGet(t *testing.T) {
	repo := NewSQLiteRepository(setupDB(t))
	ctx := context.Background()

	require.NoError(t, repo.Set(ctx, "session", []byte(`{"token":"t"}`)))

	value, err := repo.Get(ctx, "session")
	require.NoError(t, err)
	require.Equal(t, []byte(`{"token":"t"}`), value)
}

func TestSQLiteRepository_SetOverwrites(t *testing.T) {
	repo := NewSQLiteRepository(setupDB(t))
	ctx := context.Background()

	require.NoError(t, repo.Set(ctx, "session", []byte("one")))
	require.NoError(t, repo.Set(ctx, "session", []byte("two")))

	value, err := repo.Get(ctx, "session")
	require.NoError(t, err)
	require.Equal(t, []byte("two"), value)
}

func TestSQLiteRepository_Delete(t *testing.T) {
	repo := NewSQLiteRepository(setupDB(t))
	ctx := context.Background()

	require.NoError(t, repo.Set(ctx, "session", []byte("x")))
	require.NoError(t, repo.Delete(ctx, "session"))

	value, err := repo.Get(ctx, "session")
	require.NoError(t, err)
	require.Nil(t, value)

	// Deleting an absent key is not an error.
	require.NoError(t, repo.Delete(ctx, "session"))
}

func TestSQLiteRepository_Clear(t *testing.T) {
	repo := NewSQLiteRepository(setupDB(t))
	ctx := context.Background()

	require.NoError(t, repo.Set(ctx, "a", []byte("1")))
	require.NoError(t, repo.Set(ctx, "b", []byte("2")))
	require.NoError(t, repo.Clear(ctx))

	for _, key := range []string{"a", "b"} {
		value, err := repo.Get(ctx, key)
		require.NoError(t, err)
		require.Nil(t, value)
	}
}

func TestOpen_AppliesMigrations(t *testing.T) {
	db, err := Open(context.Background(), "file:storage_open_test?mode=memory&cache=shared")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	repo := NewSQLiteRepository(db)
	require.NoError(t, repo.Set(context.Background(), "session", []byte("ok")))
}
