// Package feature implements the feature state machine: it turns the
// monotonic flags of the project descriptor on, performing every
// dependent file mutation before the flag flip is persisted.
package feature

import (
	"fmt"

	"github.com/jhughes-dev/mcmod/internal/descriptor"
	"github.com/jhughes-dev/mcmod/internal/filesystem"
	"github.com/jhughes-dev/mcmod/internal/gradle"
	"github.com/jhughes-dev/mcmod/internal/models"
	"github.com/jhughes-dev/mcmod/internal/scaffold"
)

// Feature names accepted by Add.
const (
	Fabric   = models.LoaderFabric
	NeoForge = models.LoaderNeoForge
	CI       = "ci"
	Kotlin   = models.LanguageKotlin
)

// AlreadyEnabledError signals that a feature flag is already set. No
// file is touched when this is returned.
type AlreadyEnabledError struct {
	Feature string
}

func (e *AlreadyEnabledError) Error() string {
	return fmt.Sprintf("feature %q is already enabled", e.Feature)
}

// UnknownFeatureError signals a feature name outside the accepted set
type UnknownFeatureError struct {
	Name string
}

func (e *UnknownFeatureError) Error() string {
	return fmt.Sprintf("unknown feature %q, expected one of: fabric, neoforge, ci, kotlin", e.Name)
}

// Engine enables features on an existing project
type Engine struct {
	fs       filesystem.FileSystem
	store    *descriptor.Store
	scaffold *scaffold.Scaffolder
	gradle   *gradle.Editor
}

// NewEngine creates a feature engine over the given filesystem
func NewEngine(fs filesystem.FileSystem) *Engine {
	return &Engine{
		fs:       fs,
		store:    descriptor.NewStore(fs),
		scaffold: scaffold.New(fs),
		gradle:   gradle.NewEditor(fs),
	}
}

// Add enables a feature on the project at projectRoot. The descriptor
// flag is checked before any file is touched and flipped only after
// every file mutation has succeeded, so a failed run leaves the flag
// clear and the command can simply be re-run.
func (e *Engine) Add(projectRoot, name string) error {
	d, err := e.store.Load(projectRoot)
	if err != nil {
		return err
	}

	switch name {
	case Fabric:
		if d.Loaders.Fabric {
			return &AlreadyEnabledError{Feature: Fabric}
		}
		if err := e.addLoader(projectRoot, d, Fabric); err != nil {
			return err
		}
		d.Loaders.Fabric = true

	case NeoForge:
		if d.Loaders.NeoForge {
			return &AlreadyEnabledError{Feature: NeoForge}
		}
		if err := e.addLoader(projectRoot, d, NeoForge); err != nil {
			return err
		}
		d.Loaders.NeoForge = true

	case CI:
		if d.Features.CI {
			return &AlreadyEnabledError{Feature: CI}
		}
		if err := e.scaffold.WriteCIWorkflow(projectRoot, scaffold.DataFromDescriptor(d)); err != nil {
			return err
		}
		d.Features.CI = true

	case Kotlin:
		if d.ModInfo.Language == models.LanguageKotlin {
			return &AlreadyEnabledError{Feature: Kotlin}
		}
		if err := e.migrateToKotlin(projectRoot, d); err != nil {
			return err
		}
		d.ModInfo.Language = models.LanguageKotlin

	default:
		return &UnknownFeatureError{Name: name}
	}

	return e.store.Save(d, projectRoot)
}

// addLoader writes the loader module's file set and registers it in the
// Gradle build configuration.
func (e *Engine) addLoader(projectRoot string, d *models.Descriptor, loader string) error {
	data := scaffold.DataFromDescriptor(d)

	var err error
	switch loader {
	case Fabric:
		err = e.scaffold.WriteFabricModule(projectRoot, data)
	case NeoForge:
		err = e.scaffold.WriteNeoForgeModule(projectRoot, data)
	}
	if err != nil {
		return err
	}

	if err := e.gradle.AddInclude(projectRoot, loader); err != nil {
		return err
	}
	return e.gradle.AddPlatform(projectRoot, loader)
}
