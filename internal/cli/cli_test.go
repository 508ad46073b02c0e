package cli

import (
	"bytes"
	"testing"

	"github.com/jhughes-dev/mcmod/internal/descriptor"
	"github.com/jhughes-dev/mcmod/internal/feature"
	"github.com/jhughes-dev/mcmod/internal/filesystem"
	"github.com/jhughes-dev/mcmod/internal/github"
	"github.com/jhughes-dev/mcmod/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runCommand(t *testing.T, fs filesystem.FileSystem, ghClient github.GitHubClient, args ...string) (string, error) {
	t.Helper()

	var out bytes.Buffer
	root := NewRootCommand(fs, ghClient, "1.0.0")
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)

	err := root.Execute()
	return out.String(), err
}

func TestInit_NonInteractiveOffline(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/cfg")
	fs := filesystem.NewMockFileSystem()

	out, err := runCommand(t, fs, nil, "init",
		"--dir", "/work",
		"--mod-id", "my_mod",
		"--package", "com.example.my_mod",
		"--author", "TestAuthor",
		"--loader", "fabric",
		"--ci",
		"--offline",
	)
	require.NoError(t, err)
	assert.Contains(t, out, "My Mod")

	for _, path := range []string{
		"/work/my_mod/mcmod.toml",
		"/work/my_mod/build.gradle",
		"/work/my_mod/settings.gradle",
		"/work/my_mod/gradle.properties",
		"/work/my_mod/common/build.gradle",
		"/work/my_mod/common/src/main/java/com/example/my_mod/MyModMod.java",
		"/work/my_mod/fabric/src/main/resources/fabric.mod.json",
		"/work/my_mod/.github/workflows/build.yml",
		"/work/my_mod/run/options.txt",
		"/work/my_mod/run/world/datapacks/dev-defaults/pack.mcmeta",
	} {
		assert.True(t, fs.Exists(path), "missing %s", path)
	}

	settings, err := fs.ReadFile("/work/my_mod/settings.gradle")
	require.NoError(t, err)
	assert.Contains(t, string(settings), `include("common")`)
	assert.Contains(t, string(settings), `include("fabric")`)

	d, err := descriptor.NewStore(fs).Load("/work/my_mod")
	require.NoError(t, err)
	assert.Equal(t, "My Mod", d.ModInfo.ModName, "name derives from the mod id")
	assert.True(t, d.Loaders.Fabric)
	assert.False(t, d.Loaders.NeoForge)
	assert.True(t, d.Features.CI)
	assert.Equal(t, models.DefaultVersions(), d.Versions, "offline runs use the pinned versions")
}

func TestInit_RejectsInvalidModID(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/cfg")
	fs := filesystem.NewMockFileSystem()

	_, err := runCommand(t, fs, nil, "init",
		"--mod-id", "My-Mod",
		"--package", "com.example.my_mod",
		"--loader", "fabric",
		"--offline",
	)

	var idErr *models.InvalidModIDError
	assert.ErrorAs(t, err, &idErr)
}

func TestInit_RequiresLoader(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/cfg")
	fs := filesystem.NewMockFileSystem()

	_, err := runCommand(t, fs, nil, "init",
		"--mod-id", "my_mod",
		"--package", "com.example.my_mod",
		"--offline",
	)
	assert.ErrorContains(t, err, "at least one loader")
}

func TestInit_SeedsAnswersFromPrefs(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/cfg")
	fs := filesystem.NewMockFileSystem()
	fs.AddFile("/cfg/mcmod/config.toml", []byte("[defaults]\nauthor = \"PrefAuthor\"\nlanguage = \"kotlin\"\n"))

	_, err := runCommand(t, fs, nil, "init",
		"--dir", "/work",
		"--mod-id", "my_mod",
		"--package", "com.example.my_mod",
		"--loader", "fabric",
		"--offline",
	)
	require.NoError(t, err)

	d, err := descriptor.NewStore(fs).Load("/work/my_mod")
	require.NoError(t, err)
	assert.Equal(t, "PrefAuthor", d.ModInfo.Author)
	assert.Equal(t, models.LanguageKotlin, d.ModInfo.Language)
	assert.True(t, fs.Exists("/work/my_mod/common/src/main/kotlin/com/example/my_mod/MyModMod.kt"))
}

func TestAdd_AlreadyEnabledFails(t *testing.T) {
	fs := filesystem.NewMockFileSystem()
	setupProject(t, fs)

	_, err := runCommand(t, fs, nil, "add", "fabric", "--dir", "/work/my_mod")

	var enabledErr *feature.AlreadyEnabledError
	require.ErrorAs(t, err, &enabledErr, "a second add of the same feature must surface the state error")
	assert.Equal(t, "fabric", enabledErr.Feature)
}

func TestAdd_EnablesCI(t *testing.T) {
	fs := filesystem.NewMockFileSystem()
	setupProject(t, fs)

	out, err := runCommand(t, fs, nil, "add", "ci", "--dir", "/work/my_mod")
	require.NoError(t, err)
	assert.Contains(t, out, "Enabled ci")
	assert.True(t, fs.Exists("/work/my_mod/.github/workflows/build.yml"))
}

func TestAdd_UnknownFeature(t *testing.T) {
	fs := filesystem.NewMockFileSystem()
	setupProject(t, fs)

	_, err := runCommand(t, fs, nil, "add", "forge", "--dir", "/work/my_mod")
	assert.ErrorContains(t, err, "unknown feature")
}

func TestConfig_SetGetList(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/cfg")
	fs := filesystem.NewMockFileSystem()

	_, err := runCommand(t, fs, nil, "config", "set", "author", "TestAuthor")
	require.NoError(t, err)
	assert.True(t, fs.Exists("/cfg/mcmod/config.toml"))

	out, err := runCommand(t, fs, nil, "config", "get", "author")
	require.NoError(t, err)
	assert.Contains(t, out, "TestAuthor")

	out, err = runCommand(t, fs, nil, "config", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "author")
	assert.Contains(t, out, "time_of_day")
}

func TestConfig_GetUnknownKey(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/cfg")
	fs := filesystem.NewMockFileSystem()

	_, err := runCommand(t, fs, nil, "config", "get", "no_such_key")
	assert.ErrorContains(t, err, "unknown config key")
}

// A valid key with no stored value succeeds and reports "(not set)"
// instead of being mistaken for an unknown key.
func TestConfig_GetUnsetKey(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/cfg")
	fs := filesystem.NewMockFileSystem()

	out, err := runCommand(t, fs, nil, "config", "get", "gamma")
	require.NoError(t, err)
	assert.Contains(t, out, "(not set)")

	out, err = runCommand(t, fs, nil, "config", "get", "author")
	require.NoError(t, err)
	assert.Contains(t, out, "(not set)")
}

func TestUpdate_AlreadyUpToDate(t *testing.T) {
	fs := filesystem.NewMockFileSystem()
	client := github.NewMockClient()
	client.LatestRelease = &github.Release{TagName: "v1.0.0"}

	out, err := runCommand(t, fs, client, "update")
	require.NoError(t, err)
	assert.Contains(t, out, "Already up to date")
}

// setupProject creates a minimal fabric project via the init command
func setupProject(t *testing.T, fs filesystem.FileSystem) {
	t.Helper()
	t.Setenv("XDG_CONFIG_HOME", "/cfg")

	_, err := runCommand(t, fs, nil, "init",
		"--dir", "/work",
		"--mod-id", "my_mod",
		"--package", "com.example.my_mod",
		"--loader", "fabric",
		"--offline",
	)
	require.NoError(t, err)
}
