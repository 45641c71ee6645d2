package snapshot_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tarhses/cdeps/internal/adapters/snapshot"
	"github.com/tarhses/cdeps/internal/core/domain"
)

func TestStore_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".cdeps", "snapshot.json")
	store := snapshot.NewStore(path)

	saved := &domain.Snapshot{
		Units: domain.DependencyMap{
			"main":  domain.NewSet("stdio", "a"),
			"sub/b": domain.NewSet(),
		},
		Hashes: map[string]string{
			"main.c":  "0011223344556677",
			"sub/b.h": "8899aabbccddeeff",
		},
	}
	require.NoError(t, store.Save(saved))

	loaded, err := store.Load()
	require.NoError(t, err)
	require.NotNil(t, loaded)

	assert.Equal(t, saved.Hashes, loaded.Hashes)
	require.Len(t, loaded.Units, 2)
	assert.True(t, loaded.Units["main"].Equal(saved.Units["main"]))
	assert.True(t, loaded.Units["sub/b"].Equal(saved.Units["sub/b"]))
}

func TestStore_LoadMissing(t *testing.T) {
	store := snapshot.NewStore(filepath.Join(t.TempDir(), "nope.json"))

	loaded, err := store.Load()
	require.NoError(t, err)
	assert.Nil(t, loaded)
}

func TestStore_SaveOverwrites(t *testing.T) {
	path := filepath.Join(t.TempDir(), "snapshot.json")
	store := snapshot.NewStore(path)

	require.NoError(t, store.Save(&domain.Snapshot{Hashes: map[string]string{"a.c": "1"}}))
	require.NoError(t, store.Save(&domain.Snapshot{Hashes: map[string]string{"b.c": "2"}}))

	loaded, err := store.Load()
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"b.c": "2"}, loaded.Hashes)
}
