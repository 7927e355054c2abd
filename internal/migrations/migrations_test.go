package migrations_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Clark-Hu/theater-movies/internal/migrations"
	"github.com/Clark-Hu/theater-movies/internal/testutil"
)

func TestSourceFindsEmbeddedFiles(t *testing.T) {
	found, err := migrations.Source().FindMigrations()
	require.NoError(t, err)
	require.NotEmpty(t, found)
	assert.Equal(t, "0001_create_movies.sql", found[0].Id)
}

func TestUpDownRoundTrip(t *testing.T) {
	pg := testutil.StartPostgres(t, "movies_migrations")
	ctx := context.Background()

	// StartPostgres already migrated; a second Up is a no-op.
	n, err := migrations.Up(pg.DSN)
	require.NoError(t, err)
	assert.Zero(t, n)

	n, err = migrations.Down(pg.DSN)
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	var exists bool
	require.NoError(t, pg.Pool.QueryRow(ctx, `SELECT to_regclass('public.movies') IS NOT NULL`).Scan(&exists))
	assert.False(t, exists)

	n, err = migrations.Up(pg.DSN)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}
