package db

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMigrateLifecycle(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "migrate.db")
	database, err := NewDB(dbPath)
	require.NoError(t, err)
	defer database.Close()

	migrationsDir := filepath.Join("..", "..", "migrations")

	version, dirty, err := database.MigrateVersion(migrationsDir)
	require.NoError(t, err)
	assert.Zero(t, version, "fresh database has no applied migrations")
	assert.False(t, dirty)

	require.NoError(t, database.MigrateUp(migrationsDir))

	version, dirty, err = database.MigrateVersion(migrationsDir)
	require.NoError(t, err)
	assert.EqualValues(t, 1, version)
	assert.False(t, dirty)

	// Up again is a no-op.
	require.NoError(t, database.MigrateUp(migrationsDir))

	// Schema is usable after migration.
	require.NoError(t, database.RecordSession(&Session{Label: "smoke", FrameCount: 1, SampleRateHz: 60}))

	require.NoError(t, database.MigrateDown(migrationsDir))
	version, _, err = database.MigrateVersion(migrationsDir)
	require.NoError(t, err)
	assert.Zero(t, version, "down migration rolls back to empty schema")
}
