package cli

import (
	"fmt"
	"os"

	"github.com/jhughes-dev/mcmod/internal/filesystem"
	"github.com/jhughes-dev/mcmod/internal/github"
	"github.com/jhughes-dev/mcmod/internal/selfupdate"
	"github.com/spf13/cobra"
)

// UpdateCommand handles the update command
type UpdateCommand struct {
	fs       filesystem.FileSystem
	ghClient github.GitHubClient
	version  string
}

// NewUpdateCommand creates a new update command
func NewUpdateCommand(fs filesystem.FileSystem, ghClient github.GitHubClient, version string) *cobra.Command {
	cmd := &UpdateCommand{fs: fs, ghClient: ghClient, version: version}

	cobraCmd := &cobra.Command{
		Use:   "update",
		Short: "Update mcmod to the latest release",
		RunE:  cmd.Run,
	}

	return cobraCmd
}

// Run executes the update command
func (c *UpdateCommand) Run(cmd *cobra.Command, args []string) error {
	execPath, err := os.Executable()
	if err != nil {
		return fmt.Errorf("failed to locate the running binary: %w", err)
	}

	updater := selfupdate.NewUpdater(c.fs, c.ghClient, c.version)
	result, err := updater.Run(cmd.Context(), execPath)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if !result.Updated {
		fmt.Fprintln(out, subtleStyle.Render(fmt.Sprintf("Already up to date (%s).", result.CurrentVersion)))
		return nil
	}

	fmt.Fprintln(out, successStyle.Render(fmt.Sprintf("Updated %s -> %s", result.CurrentVersion, result.LatestVersion)))
	return nil
}
