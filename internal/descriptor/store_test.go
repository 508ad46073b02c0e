package descriptor

import (
	"testing"

	"github.com/jhughes-dev/mcmod/internal/filesystem"
	"github.com/jhughes-dev/mcmod/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testDescriptor() *models.Descriptor {
	return &models.Descriptor{
		ModInfo: models.ModInfo{
			ModID:       "mymod",
			ModName:     "My Mod",
			Package:     "com.example.mymod",
			Author:      "TestAuthor",
			Description: "A test mod",
			Language:    models.LanguageJava,
		},
		Loaders:  models.Loaders{Fabric: true, NeoForge: true},
		Features: models.Features{CI: false},
		Versions: models.DefaultVersions(),
	}
}

func TestStore_LoadMissing(t *testing.T) {
	fs := filesystem.NewMockFileSystem()
	fs.AddDir("/project")

	store := NewStore(fs)
	_, err := store.Load("/project")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestStore_SaveLoadRoundtrip(t *testing.T) {
	fs := filesystem.NewMockFileSystem()
	fs.AddDir("/project")

	store := NewStore(fs)
	d := testDescriptor()
	require.NoError(t, store.Save(d, "/project"))

	loaded, err := store.Load("/project")
	require.NoError(t, err)
	assert.Equal(t, d, loaded)
}

// save(load(save(D))) must be byte-for-byte stable.
func TestStore_SaveIsByteStable(t *testing.T) {
	fs := filesystem.NewMockFileSystem()
	fs.AddDir("/project")

	store := NewStore(fs)
	require.NoError(t, store.Save(testDescriptor(), "/project"))

	first, err := fs.ReadFile("/project/mcmod.toml")
	require.NoError(t, err)

	loaded, err := store.Load("/project")
	require.NoError(t, err)
	require.NoError(t, store.Save(loaded, "/project"))

	second, err := fs.ReadFile("/project/mcmod.toml")
	require.NoError(t, err)
	assert.Equal(t, string(first), string(second))
}

func TestStore_LoadCorrupt(t *testing.T) {
	fs := filesystem.NewMockFileSystem()
	fs.AddFile("/project/mcmod.toml", []byte("not [valid toml"))

	store := NewStore(fs)
	_, err := store.Load("/project")
	assert.Error(t, err)
	assert.NotErrorIs(t, err, ErrNotFound)
}

func TestStore_SaveOverwritesWholesale(t *testing.T) {
	fs := filesystem.NewMockFileSystem()
	fs.AddDir("/project")

	store := NewStore(fs)
	d := testDescriptor()
	require.NoError(t, store.Save(d, "/project"))

	d.Loaders.NeoForge = false
	d.Features.CI = true
	require.NoError(t, store.Save(d, "/project"))

	loaded, err := store.Load("/project")
	require.NoError(t, err)
	assert.False(t, loaded.Loaders.NeoForge)
	assert.True(t, loaded.Features.CI)
}
