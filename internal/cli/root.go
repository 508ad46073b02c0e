// Package cli wires the mcmod commands.
package cli

import (
	"github.com/jhughes-dev/mcmod/internal/filesystem"
	"github.com/jhughes-dev/mcmod/internal/github"
	"github.com/spf13/cobra"
)

// NewRootCommand creates the root command
func NewRootCommand(fs filesystem.FileSystem, ghClient github.GitHubClient, version string) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "mcmod",
		Short: "Scaffold and grow multi-loader Minecraft mod projects",
		Long: `mcmod generates Gradle-based Minecraft mod projects that build for
multiple loaders from a shared common module, and grows them in place:
add a loader, CI, or migrate the sources to Kotlin at any point later.`,
		Version:      version,
		SilenceUsage: true,
	}

	rootCmd.AddCommand(NewInitCommand(fs))
	rootCmd.AddCommand(NewAddCommand(fs))
	rootCmd.AddCommand(NewConfigCommand(fs))
	rootCmd.AddCommand(NewUpdateCommand(fs, ghClient, version))

	return rootCmd
}

// Execute runs the root command
func Execute(version string) error {
	fs := filesystem.NewOSFileSystem()
	ghClient := github.NewClientFromEnv()

	return NewRootCommand(fs, ghClient, version).Execute()
}
