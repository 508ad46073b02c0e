package cli

import (
	"fmt"

	"github.com/jhughes-dev/mcmod/internal/feature"
	"github.com/jhughes-dev/mcmod/internal/filesystem"
	"github.com/spf13/cobra"
)

// AddCommand handles the add command
type AddCommand struct {
	fs filesystem.FileSystem

	dir string
}

// NewAddCommand creates a new add command
func NewAddCommand(fs filesystem.FileSystem) *cobra.Command {
	cmd := &AddCommand{fs: fs}

	cobraCmd := &cobra.Command{
		Use:   "add <fabric|neoforge|ci|kotlin>",
		Short: "Enable a feature on an existing project",
		Long: `Enable a feature on an existing project: another loader module,
a CI workflow, or a migration of the sources to Kotlin.`,
		Args: cobra.ExactArgs(1),
		RunE: cmd.Run,
	}

	cobraCmd.Flags().StringVar(&cmd.dir, "dir", ".", "project directory")

	return cobraCmd
}

// Run executes the add command
func (c *AddCommand) Run(cmd *cobra.Command, args []string) error {
	name := args[0]

	if err := feature.NewEngine(c.fs).Add(c.dir, name); err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), successStyle.Render("Enabled "+name))
	return nil
}
