package data

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadCatalogFromDirectory_ShippedRooms(t *testing.T) {
	catalog, err := LoadCatalogFromDirectory("rooms")
	require.NoError(t, err)

	for _, role := range []string{RoleSpawn, RoleExit, RoleGeneric, RoleTreasure, RoleShop} {
		require.NotNil(t, catalog.Rooms[role], "role %s missing", role)
	}
	assert.Equal(t, "treasure_chest", catalog.Content(RoleTreasure).Feature)
	assert.True(t, catalog.Content(RoleGeneric).CanSpawnEnemies)
	assert.Equal(t, PlaceNearWall, catalog.Content(RoleShop).Objects[0].Placement)
	assert.Equal(t, 2, catalog.Content(RoleExit).Objects[2].UnlockLevel)
}

func TestLoadCatalogFromDirectory_Errors(t *testing.T) {
	t.Run("duplicate_role", func(t *testing.T) {
		dir := t.TempDir()
		require.NoError(t, os.WriteFile(filepath.Join(dir, "shop.yaml"), []byte("feature: merchant\n"), 0o644))
		require.NoError(t, os.WriteFile(filepath.Join(dir, "shop.json"), []byte(`{"feature": "merchant"}`), 0o644))

		_, err := LoadCatalogFromDirectory(dir)
		assert.ErrorIs(t, err, ErrInvalidCatalog)
	})

	t.Run("invalid_content", func(t *testing.T) {
		dir := t.TempDir()
		require.NoError(t, os.WriteFile(filepath.Join(dir, "generic.yaml"), []byte("can_spawn_enemies: true\n"), 0o644))

		_, err := LoadCatalogFromDirectory(dir)
		assert.ErrorIs(t, err, ErrInvalidCatalog)
	})

	t.Run("missing_directory", func(t *testing.T) {
		_, err := LoadCatalogFromDirectory(filepath.Join(t.TempDir(), "nope"))
		assert.Error(t, err)
	})
}

func TestLoadCatalogFromDirectory_IgnoresOtherFiles(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "README.md"), []byte("# rooms"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "exit.yml"), []byte("feature: exit\n"), 0o644))
	require.NoError(t, os.Mkdir(filepath.Join(dir, "old"), 0o755))

	catalog, err := LoadCatalogFromDirectory(dir)
	require.NoError(t, err)

	assert.Len(t, catalog.Rooms, 1)
	assert.Equal(t, "exit", catalog.Content(RoleExit).Feature)
}

func TestLoadCatalog_DispatchesOnPath(t *testing.T) {
	fromDir, err := LoadCatalog("rooms")
	require.NoError(t, err)
	assert.Len(t, fromDir.Rooms, 5)

	file := filepath.Join(t.TempDir(), "catalog.yaml")
	require.NoError(t, os.WriteFile(file, []byte("rooms:\n  spawn:\n    feature: player\n"), 0o644))
	fromFile, err := LoadCatalog(file)
	require.NoError(t, err)
	assert.Equal(t, "player", fromFile.Content(RoleSpawn).Feature)

	_, err = LoadCatalog(filepath.Join(t.TempDir(), "missing"))
	assert.Error(t, err)
}
