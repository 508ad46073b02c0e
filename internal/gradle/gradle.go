// Package gradle performs text surgery on the generated Gradle build
// configuration: the settings.gradle include list and the
// gradle.properties key/value file.
package gradle

import (
	"fmt"
	"path/filepath"

	"github.com/jhughes-dev/mcmod/internal/filesystem"
	"github.com/jhughes-dev/mcmod/internal/textpatch"
)

const (
	SettingsFile   = "settings.gradle"
	PropertiesFile = "gradle.properties"

	// PlatformsKey holds the comma-separated enabled-module list
	PlatformsKey = "enabled_platforms"
)

// Editor mutates a project's Gradle build configuration in place
type Editor struct {
	fs filesystem.FileSystem
}

// NewEditor creates a gradle editor over the given filesystem
func NewEditor(fs filesystem.FileSystem) *Editor {
	return &Editor{fs: fs}
}

// AddInclude registers a module in settings.gradle. The include line is
// inserted after the last existing include, else before the
// rootProject.name declaration, else appended. Idempotent.
func (e *Editor) AddInclude(projectRoot, module string) error {
	path := filepath.Join(projectRoot, SettingsFile)
	content, err := e.fs.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", SettingsFile, err)
	}

	line := fmt.Sprintf("include(%q)", module)
	patched := textpatch.InsertUniqueLine(string(content), line, "include(", "rootProject.name")
	if patched == string(content) {
		return nil
	}

	if err := e.fs.WriteFile(path, []byte(patched), 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", SettingsFile, err)
	}
	return nil
}

// AddPlatform adds a platform token to the enabled_platforms property,
// preserving the order of already-enabled platforms. Idempotent.
func (e *Editor) AddPlatform(projectRoot, platform string) error {
	return e.patchProperties(projectRoot, func(content string) string {
		return textpatch.UpsertListKey(content, PlatformsKey, platform)
	})
}

// SetProperty sets or adds a key in gradle.properties, reactivating a
// commented-out `# key=` line when present.
func (e *Editor) SetProperty(projectRoot, key, value string) error {
	return e.patchProperties(projectRoot, func(content string) string {
		return textpatch.UpsertKey(content, key, value)
	})
}

func (e *Editor) patchProperties(projectRoot string, patch func(string) string) error {
	path := filepath.Join(projectRoot, PropertiesFile)
	content, err := e.fs.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", PropertiesFile, err)
	}

	patched := patch(string(content))
	if patched == string(content) {
		return nil
	}

	if err := e.fs.WriteFile(path, []byte(patched), 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", PropertiesFile, err)
	}
	return nil
}
