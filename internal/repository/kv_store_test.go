package repository_test

import (
	"context"
	"io/fs"
	"os"
	"testing"

	"github.com/google/uuid"
	elliotlab "github.com/set-night/elliotlab"
	"github.com/set-night/elliotlab/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Requires a reachable Postgres in TEST_DATABASE_URL.
func TestKVStorePostgres(t *testing.T) {
	databaseURL := os.Getenv("TEST_DATABASE_URL")
	if databaseURL == "" {
		t.Skip("TEST_DATABASE_URL not set")
	}

	ctx := context.Background()
	migrationsFS, err := fs.Sub(elliotlab.MigrationsFS, "migrations")
	require.NoError(t, err)
	require.NoError(t, repository.RunMigrations(databaseURL, migrationsFS))

	pool, err := repository.NewPool(ctx, databaseURL)
	require.NoError(t, err)
	defer pool.Close()

	store := repository.NewKVStore(pool)
	key := "test:" + uuid.NewString()

	_, ok, err := store.Get(ctx, key)
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, store.Set(ctx, key, "dark"))
	require.NoError(t, store.Set(ctx, key, "light"))
	v, ok, err := store.Get(ctx, key)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "light", v)

	require.NoError(t, store.Remove(ctx, key))
	_, ok, err = store.Get(ctx, key)
	require.NoError(t, err)
	assert.False(t, ok)
}
