package feature

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/jhughes-dev/mcmod/internal/models"
	"github.com/jhughes-dev/mcmod/internal/scaffold"
)

// migrateToKotlin rewrites every module's entry source from java to
// kotlin, then records the language switch in gradle.properties. Each
// step is idempotent so the migration can be re-run after a partial
// failure.
func (e *Engine) migrateToKotlin(projectRoot string, d *models.Descriptor) error {
	data := scaffold.DataFromDescriptor(d)
	data.Language = models.LanguageKotlin

	modules := append([]string{"common"}, d.EnabledPlatforms()...)
	for _, module := range modules {
		if err := e.migrateModule(projectRoot, module, data); err != nil {
			return err
		}
	}

	if err := e.gradle.SetProperty(projectRoot, "mod_language", models.LanguageKotlin); err != nil {
		return err
	}
	return e.gradle.SetProperty(projectRoot, "kotlin_version", scaffold.KotlinVersion)
}

// migrateModule replaces one module's java entry source with its kotlin
// counterpart. The fabric mixin package-info is regenerated afterwards
// because it must stay in the java tree.
func (e *Engine) migrateModule(projectRoot, module string, data scaffold.Data) error {
	javaPath := scaffold.ModuleSourcePath(projectRoot, module, models.LanguageJava, data)
	if e.fs.Exists(javaPath) {
		if err := e.fs.Remove(javaPath); err != nil {
			return fmt.Errorf("failed to remove %s: %w", javaPath, err)
		}
		stop := filepath.Join(projectRoot, module, "src", "main")
		e.cleanupEmptyDirs(filepath.Dir(javaPath), stop)
	}

	if err := e.scaffold.WriteModuleSource(projectRoot, module, data); err != nil {
		return err
	}

	if module == models.LoaderFabric {
		return e.scaffold.EnsureMixinPackageInfo(projectRoot, data)
	}
	return nil
}

// cleanupEmptyDirs removes now-empty package directories left behind by
// a source removal, walking up from dir and stopping before stop. A
// directory holding anything else, such as the fabric mixin package,
// ends the walk.
func (e *Engine) cleanupEmptyDirs(dir, stop string) {
	for dir != stop && strings.HasPrefix(dir, stop+string(filepath.Separator)) {
		entries, err := e.fs.ReadDir(dir)
		if err != nil || len(entries) > 0 {
			return
		}
		if err := e.fs.Remove(dir); err != nil {
			return
		}
		dir = filepath.Dir(dir)
	}
}
