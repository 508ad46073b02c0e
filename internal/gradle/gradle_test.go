package gradle

import (
	"testing"

	"github.com/jhughes-dev/mcmod/internal/filesystem"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newProject(t *testing.T) *filesystem.MockFileSystem {
	t.Helper()
	fs := filesystem.NewMockFileSystem()
	fs.AddFile("/project/settings.gradle", []byte("include(\"common\")\nrootProject.name = 'mymod'\n"))
	fs.AddFile("/project/gradle.properties", []byte("mod_id=mymod\nenabled_platforms=fabric\n"))
	return fs
}

func TestAddInclude(t *testing.T) {
	fs := newProject(t)
	e := NewEditor(fs)

	require.NoError(t, e.AddInclude("/project", "neoforge"))

	data, err := fs.ReadFile("/project/settings.gradle")
	require.NoError(t, err)
	assert.Equal(t, "include(\"common\")\ninclude(\"neoforge\")\nrootProject.name = 'mymod'\n", string(data))
}

func TestAddInclude_Idempotent(t *testing.T) {
	fs := newProject(t)
	e := NewEditor(fs)

	require.NoError(t, e.AddInclude("/project", "neoforge"))
	first, err := fs.ReadFile("/project/settings.gradle")
	require.NoError(t, err)

	require.NoError(t, e.AddInclude("/project", "neoforge"))
	second, err := fs.ReadFile("/project/settings.gradle")
	require.NoError(t, err)
	assert.Equal(t, string(first), string(second))
}

func TestAddInclude_MissingSettings(t *testing.T) {
	fs := filesystem.NewMockFileSystem()
	e := NewEditor(fs)

	err := e.AddInclude("/project", "fabric")
	assert.Error(t, err)
}

func TestAddPlatform(t *testing.T) {
	fs := newProject(t)
	e := NewEditor(fs)

	require.NoError(t, e.AddPlatform("/project", "neoforge"))

	data, err := fs.ReadFile("/project/gradle.properties")
	require.NoError(t, err)
	assert.Equal(t, "mod_id=mymod\nenabled_platforms=fabric,neoforge\n", string(data))
}

func TestAddPlatform_AlreadyPresent(t *testing.T) {
	fs := newProject(t)
	e := NewEditor(fs)

	require.NoError(t, e.AddPlatform("/project", "fabric"))

	data, err := fs.ReadFile("/project/gradle.properties")
	require.NoError(t, err)
	assert.Equal(t, "mod_id=mymod\nenabled_platforms=fabric\n", string(data))
}

func TestSetProperty(t *testing.T) {
	fs := newProject(t)
	e := NewEditor(fs)

	require.NoError(t, e.SetProperty("/project", "mod_language", "kotlin"))
	require.NoError(t, e.SetProperty("/project", "mod_language", "kotlin"))

	data, err := fs.ReadFile("/project/gradle.properties")
	require.NoError(t, err)
	assert.Equal(t, "mod_id=mymod\nenabled_platforms=fabric\nmod_language=kotlin\n", string(data))
}
