// Package scaffold renders the embedded project templates and writes
// the generated file sets for the base project, the shared module, the
// loader modules, and the CI workflow.
package scaffold

import (
	"fmt"
	"path/filepath"

	"github.com/jhughes-dev/mcmod/internal/filesystem"
	"github.com/jhughes-dev/mcmod/internal/models"
)

// KotlinVersion is the Kotlin toolchain version pinned into generated
// and migrated projects.
const KotlinVersion = "2.1.0"

// Scaffolder writes generated project files
type Scaffolder struct {
	fs filesystem.FileSystem
}

// New creates a Scaffolder over the given filesystem
func New(fs filesystem.FileSystem) *Scaffolder {
	return &Scaffolder{fs: fs}
}

// WriteBaseFiles writes the root build files shared by every project:
// build.gradle, settings.gradle, gradle.properties, .gitignore,
// LICENSE, README.md and the gradle wrapper properties.
func (s *Scaffolder) WriteBaseFiles(projectRoot string, data Data) error {
	files := map[string]string{
		"build.gradle":                              "build.gradle.root.tmpl",
		"settings.gradle":                           "settings.gradle.tmpl",
		"gradle.properties":                         "gradle.properties.tmpl",
		".gitignore":                                "gitignore.tmpl",
		"LICENSE":                                   "LICENSE.tmpl",
		"README.md":                                 "README.md.tmpl",
		"gradle/wrapper/gradle-wrapper.properties": "gradle-wrapper.properties.tmpl",
	}
	for path, tmpl := range files {
		if err := s.writeRendered(filepath.Join(projectRoot, path), tmpl, data); err != nil {
			return err
		}
	}
	return nil
}

// WriteCommonModule writes the shared module: build file, entry source
// in the descriptor's language, and the icon placeholder.
func (s *Scaffolder) WriteCommonModule(projectRoot string, data Data) error {
	if err := s.writeRendered(filepath.Join(projectRoot, "common/build.gradle"), "common/build.gradle.tmpl", data); err != nil {
		return err
	}

	if err := s.WriteModuleSource(projectRoot, "common", data); err != nil {
		return err
	}

	iconNote := filepath.Join(projectRoot, "common/src/main/resources/assets", data.ModID, "icon.png.txt")
	return s.writeRaw(iconNote, []byte("Replace this file with your mod icon (icon.png)\n"))
}

// WriteFabricModule writes the fabric loader module file set. The mixin
// package-info always lives in the java tree, even for kotlin projects.
func (s *Scaffolder) WriteFabricModule(projectRoot string, data Data) error {
	rendered := map[string]string{
		"fabric/build.gradle":      "fabric/build.gradle.tmpl",
		"fabric/gradle.properties": "fabric/gradle.properties.tmpl",
		"fabric/src/main/resources/fabric.mod.json": "fabric/fabric.mod.json.tmpl",
		filepath.Join("fabric/src/main/resources", data.ModID+".mixins.json"): "fabric/mixins.json.tmpl",
	}
	for path, tmpl := range rendered {
		if err := s.writeRendered(filepath.Join(projectRoot, path), tmpl, data); err != nil {
			return err
		}
	}

	if err := s.WriteModuleSource(projectRoot, models.LoaderFabric, data); err != nil {
		return err
	}

	return s.writeRendered(s.MixinPackageInfoPath(projectRoot, data), "fabric/package-info.java.tmpl", data)
}

// WriteNeoForgeModule writes the neoforge loader module file set
func (s *Scaffolder) WriteNeoForgeModule(projectRoot string, data Data) error {
	rendered := map[string]string{
		"neoforge/build.gradle":      "neoforge/build.gradle.tmpl",
		"neoforge/gradle.properties": "neoforge/gradle.properties.tmpl",
		"neoforge/src/main/resources/META-INF/neoforge.mods.toml": "neoforge/neoforge.mods.toml.tmpl",
	}
	for path, tmpl := range rendered {
		if err := s.writeRendered(filepath.Join(projectRoot, path), tmpl, data); err != nil {
			return err
		}
	}

	return s.WriteModuleSource(projectRoot, models.LoaderNeoForge, data)
}

// WriteCIWorkflow writes the GitHub Actions build workflow
func (s *Scaffolder) WriteCIWorkflow(projectRoot string, data Data) error {
	return s.writeRendered(filepath.Join(projectRoot, ".github/workflows/build.yml"), "ci/build.yml.tmpl", data)
}

// WriteModuleSource writes a module's entry source file in the language
// carried by data, rendered from that module's source template.
func (s *Scaffolder) WriteModuleSource(projectRoot, module string, data Data) error {
	tmpl, err := sourceTemplate(module, data.Language)
	if err != nil {
		return err
	}
	return s.writeRendered(ModuleSourcePath(projectRoot, module, data.Language, data), tmpl, data)
}

// EnsureMixinPackageInfo regenerates the fabric mixin package-info.java
// if it is missing. The file must survive in the java source tree even
// after the module's primary source migrates to kotlin.
func (s *Scaffolder) EnsureMixinPackageInfo(projectRoot string, data Data) error {
	path := s.MixinPackageInfoPath(projectRoot, data)
	if s.fs.Exists(path) {
		return nil
	}
	return s.writeRendered(path, "fabric/package-info.java.tmpl", data)
}

// MixinPackageInfoPath returns the path of the fabric mixin package-info
func (s *Scaffolder) MixinPackageInfoPath(projectRoot string, data Data) string {
	return filepath.Join(projectRoot, "fabric/src/main/java", data.PackagePath, "mixin/package-info.java")
}

// ModuleSourcePath returns the path of a module's entry source file for
// the given language.
func ModuleSourcePath(projectRoot, module, language string, data Data) string {
	ext := "java"
	if language == models.LanguageKotlin {
		ext = "kt"
	}
	return filepath.Join(
		projectRoot, module, "src/main", sourceTree(language),
		ModulePackagePath(module, data),
		ModuleClassName(module, data)+"."+ext,
	)
}

// ModuleClassName returns the entry class name for a module; loader
// modules suffix the shared class name with their loader identifier.
func ModuleClassName(module string, data Data) string {
	switch module {
	case models.LoaderFabric:
		return data.ClassName + "Fabric"
	case models.LoaderNeoForge:
		return data.ClassName + "NeoForge"
	}
	return data.ClassName
}

// ModulePackagePath returns the source package path for a module; loader
// modules nest below the shared package.
func ModulePackagePath(module string, data Data) string {
	switch module {
	case models.LoaderFabric, models.LoaderNeoForge:
		return data.PackagePath + "/" + module
	}
	return data.PackagePath
}

func sourceTree(language string) string {
	if language == models.LanguageKotlin {
		return "kotlin"
	}
	return "java"
}

func sourceTemplate(module, language string) (string, error) {
	ext := "java"
	if language == models.LanguageKotlin {
		ext = "kt"
	}
	switch module {
	case "common":
		return "common/CommonMod." + ext + ".tmpl", nil
	case models.LoaderFabric:
		return "fabric/FabricMod." + ext + ".tmpl", nil
	case models.LoaderNeoForge:
		return "neoforge/NeoForgeMod." + ext + ".tmpl", nil
	}
	return "", fmt.Errorf("no source template for module %q", module)
}

func (s *Scaffolder) writeRendered(path, tmplName string, data Data) error {
	content, err := render(tmplName, data)
	if err != nil {
		return err
	}
	return s.writeRaw(path, content)
}

func (s *Scaffolder) writeRaw(path string, content []byte) error {
	if err := s.fs.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create %s: %w", filepath.Dir(path), err)
	}
	if err := s.fs.WriteFile(path, content, 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}
