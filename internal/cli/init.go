package cli

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	huh "github.com/charmbracelet/huh"
	"github.com/jhughes-dev/mcmod/internal/descriptor"
	"github.com/jhughes-dev/mcmod/internal/filesystem"
	"github.com/jhughes-dev/mcmod/internal/gradle"
	"github.com/jhughes-dev/mcmod/internal/models"
	"github.com/jhughes-dev/mcmod/internal/prefs"
	"github.com/jhughes-dev/mcmod/internal/scaffold"
	"github.com/jhughes-dev/mcmod/internal/versions"
	"github.com/spf13/cobra"
)

// InitCommand handles the init command
type InitCommand struct {
	fs filesystem.FileSystem

	dir         string
	modID       string
	modName     string
	pkg         string
	author      string
	description string
	language    string
	loaders     []string
	ci          bool
	offline     bool
}

// NewInitCommand creates a new init command
func NewInitCommand(fs filesystem.FileSystem) *cobra.Command {
	cmd := &InitCommand{fs: fs}

	cobraCmd := &cobra.Command{
		Use:   "init",
		Short: "Generate a new mod project",
		Long: `Generate a new multi-loader mod project. Without --mod-id the
command runs an interactive form; with it, every answer comes from flags.`,
		RunE: cmd.Run,
	}

	flags := cobraCmd.Flags()
	flags.StringVar(&cmd.dir, "dir", "", "parent directory for the project (default: current directory)")
	flags.StringVar(&cmd.modID, "mod-id", "", "mod identifier (lowercase letters, digits, underscores)")
	flags.StringVar(&cmd.modName, "name", "", "display name (default: derived from the mod id)")
	flags.StringVar(&cmd.pkg, "package", "", "java package, e.g. com.example.mymod")
	flags.StringVar(&cmd.author, "author", "", "author recorded in the mod metadata")
	flags.StringVar(&cmd.description, "description", "", "short mod description")
	flags.StringVar(&cmd.language, "language", "", "source language: java or kotlin (default: java)")
	flags.StringSliceVar(&cmd.loaders, "loader", nil, "loader to enable: fabric or neoforge (repeatable)")
	flags.BoolVar(&cmd.ci, "ci", false, "generate a GitHub Actions build workflow")
	flags.BoolVar(&cmd.offline, "offline", false, "skip online version discovery, use pinned defaults")

	return cobraCmd
}

// Run executes the init command
func (c *InitCommand) Run(cmd *cobra.Command, args []string) error {
	userPrefs := c.loadPrefs()

	if c.modID == "" {
		ok, err := c.runForm(userPrefs)
		if err != nil {
			return err
		}
		if !ok {
			return nil
		}
	}
	c.applyDefaults(userPrefs)

	if err := models.ValidateModID(c.modID); err != nil {
		return err
	}
	if err := models.ValidatePackage(c.pkg); err != nil {
		return err
	}
	if len(c.loaders) == 0 {
		return fmt.Errorf("at least one loader is required (--loader fabric and/or --loader neoforge)")
	}
	if c.language != models.LanguageJava && c.language != models.LanguageKotlin {
		return fmt.Errorf("unknown language %q, expected java or kotlin", c.language)
	}

	d := &models.Descriptor{
		ModInfo: models.ModInfo{
			ModID:       c.modID,
			ModName:     c.modName,
			Package:     c.pkg,
			Author:      c.author,
			Description: c.description,
			Language:    c.language,
		},
		Features: models.Features{CI: c.ci},
	}
	for _, loader := range c.loaders {
		switch loader {
		case models.LoaderFabric:
			d.Loaders.Fabric = true
		case models.LoaderNeoForge:
			d.Loaders.NeoForge = true
		default:
			return fmt.Errorf("unknown loader %q, expected fabric or neoforge", loader)
		}
	}

	d.Versions = c.resolveVersions(cmd)

	projectRoot := filepath.Join(c.dir, c.modID)
	if err := c.generate(projectRoot, d, userPrefs); err != nil {
		return err
	}

	// Persisting the descriptor is the final step so that a failed run
	// leaves no descriptor behind and can simply be re-run.
	if err := descriptor.NewStore(c.fs).Save(d, projectRoot); err != nil {
		return err
	}

	c.printSummary(cmd, projectRoot, d)
	return nil
}

func (c *InitCommand) generate(projectRoot string, d *models.Descriptor, userPrefs *prefs.Prefs) error {
	data := scaffold.DataFromDescriptor(d)
	s := scaffold.New(c.fs)

	if err := s.WriteBaseFiles(projectRoot, data); err != nil {
		return err
	}
	if err := s.WriteCommonModule(projectRoot, data); err != nil {
		return err
	}

	editor := gradle.NewEditor(c.fs)
	if d.Loaders.Fabric {
		if err := s.WriteFabricModule(projectRoot, data); err != nil {
			return err
		}
		if err := editor.AddInclude(projectRoot, models.LoaderFabric); err != nil {
			return err
		}
	}
	if d.Loaders.NeoForge {
		if err := s.WriteNeoForgeModule(projectRoot, data); err != nil {
			return err
		}
		if err := editor.AddInclude(projectRoot, models.LoaderNeoForge); err != nil {
			return err
		}
	}

	if d.Features.CI {
		if err := s.WriteCIWorkflow(projectRoot, data); err != nil {
			return err
		}
	}

	if err := prefs.WriteRunOptions(c.fs, filepath.Join(projectRoot, "run/options.txt"), userPrefs); err != nil {
		return err
	}
	return prefs.WriteDevDatapack(c.fs, projectRoot, userPrefs, d.Versions.Minecraft)
}

// loadPrefs loads the user preferences, degrading to the structural
// defaults when no config directory is available.
func (c *InitCommand) loadPrefs() *prefs.Prefs {
	store, err := prefs.NewStore(c.fs)
	if err != nil {
		return prefs.Default()
	}
	return store.Load()
}

// applyDefaults fills unset answers from derivable values and the user
// preferences.
func (c *InitCommand) applyDefaults(userPrefs *prefs.Prefs) {
	if c.modName == "" && c.modID != "" {
		c.modName = models.DefaultModName(c.modID)
	}
	if c.author == "" && userPrefs.Defaults.Author != nil {
		c.author = *userPrefs.Defaults.Author
	}
	if c.language == "" && userPrefs.Defaults.Language != nil {
		c.language = *userPrefs.Defaults.Language
	}
	if c.language == "" {
		c.language = models.LanguageJava
	}
}

// runForm collects the project answers interactively. Returns false
// when the user aborts.
func (c *InitCommand) runForm(userPrefs *prefs.Prefs) (bool, error) {
	if c.author == "" && userPrefs.Defaults.Author != nil {
		c.author = *userPrefs.Defaults.Author
	}
	if c.language == "" && userPrefs.Defaults.Language != nil {
		c.language = *userPrefs.Defaults.Language
	}
	if c.language == "" {
		c.language = models.LanguageJava
	}
	if len(c.loaders) == 0 {
		c.loaders = []string{models.LoaderFabric}
	}

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Mod ID").
				Description("Lowercase letters, digits and underscores, e.g. my_mod.").
				Value(&c.modID).
				Validate(models.ValidateModID),
			huh.NewInput().
				Title("Mod Name").
				Description("Display name. Leave empty to derive it from the mod id.").
				Value(&c.modName),
			huh.NewInput().
				Title("Package").
				Description("Java package, e.g. com.example.my_mod.").
				Value(&c.pkg).
				Validate(models.ValidatePackage),
			huh.NewInput().
				Title("Author").
				Value(&c.author),
			huh.NewInput().
				Title("Description").
				Value(&c.description),
		),
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Language").
				Options(
					huh.NewOption("Java", models.LanguageJava),
					huh.NewOption("Kotlin", models.LanguageKotlin),
				).
				Value(&c.language),
			huh.NewMultiSelect[string]().
				Title("Loaders").
				Options(
					huh.NewOption("Fabric", models.LoaderFabric),
					huh.NewOption("NeoForge", models.LoaderNeoForge),
				).
				Value(&c.loaders).
				Validate(func(selected []string) error {
					if len(selected) == 0 {
						return fmt.Errorf("select at least one loader")
					}
					return nil
				}),
			huh.NewConfirm().
				Title("GitHub Actions workflow?").
				Value(&c.ci),
		),
	)

	if err := form.Run(); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

// resolveVersions discovers the latest platform versions unless the run
// is offline. Discovery failures degrade to the pinned defaults with a
// warning per field.
func (c *InitCommand) resolveVersions(cmd *cobra.Command) models.Versions {
	if c.offline {
		return models.DefaultVersions()
	}

	resolved, warnings := versions.NewResolver(nil).Resolve(cmd.Context())
	for _, w := range warnings {
		fmt.Fprintln(cmd.ErrOrStderr(), warnStyle.Render("warning: ")+w)
	}
	return resolved
}

func (c *InitCommand) printSummary(cmd *cobra.Command, projectRoot string, d *models.Descriptor) {
	out := cmd.OutOrStdout()

	fmt.Fprintln(out, successStyle.Render("Created "+d.ModInfo.ModName)+subtleStyle.Render(" ("+projectRoot+")"))
	fmt.Fprintln(out, headerStyle.Render("  loaders:  ")+strings.Join(d.EnabledPlatforms(), ", "))
	fmt.Fprintln(out, headerStyle.Render("  language: ")+d.ModInfo.Language)
	fmt.Fprintln(out, headerStyle.Render("  minecraft:")+" "+d.Versions.Minecraft)
	fmt.Fprintln(out)
	fmt.Fprintln(out, subtleStyle.Render("Run `gradle wrapper` inside the project to pin a Gradle version."))
}
