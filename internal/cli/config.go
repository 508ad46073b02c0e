package cli

import (
	"fmt"

	"github.com/jhughes-dev/mcmod/internal/filesystem"
	"github.com/jhughes-dev/mcmod/internal/prefs"
	"github.com/spf13/cobra"
)

// ConfigCommand handles the config command group
type ConfigCommand struct {
	fs filesystem.FileSystem
}

// NewConfigCommand creates the config command and its subcommands
func NewConfigCommand(fs filesystem.FileSystem) *cobra.Command {
	cmd := &ConfigCommand{fs: fs}

	cobraCmd := &cobra.Command{
		Use:   "config",
		Short: "Manage user preferences",
		Long: `Manage the user-scope preferences that seed init prompts and the
generated run/options.txt and dev-defaults data pack.`,
	}

	cobraCmd.AddCommand(&cobra.Command{
		Use:   "get <key>",
		Short: "Print one preference value",
		Args:  cobra.ExactArgs(1),
		RunE:  cmd.RunGet,
	})
	cobraCmd.AddCommand(&cobra.Command{
		Use:   "set <key> <value>",
		Short: "Set one preference value",
		Args:  cobra.ExactArgs(2),
		RunE:  cmd.RunSet,
	})
	cobraCmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "Print all preferences",
		Args:  cobra.NoArgs,
		RunE:  cmd.RunList,
	})

	return cobraCmd
}

func (c *ConfigCommand) store() (*prefs.Store, error) {
	store, err := prefs.NewStore(c.fs)
	if err != nil {
		return nil, fmt.Errorf("failed to locate the config directory: %w", err)
	}
	return store, nil
}

// RunGet executes `config get`. A known key with no value is not an
// error; it prints "(not set)".
func (c *ConfigCommand) RunGet(cmd *cobra.Command, args []string) error {
	if !prefs.KnownKey(args[0]) {
		return fmt.Errorf("unknown config key %q, run 'mcmod config list' to see valid keys", args[0])
	}

	store, err := c.store()
	if err != nil {
		return err
	}

	value, ok := store.Load().Get(args[0])
	if !ok {
		value = "(not set)"
	}

	fmt.Fprintln(cmd.OutOrStdout(), value)
	return nil
}

// RunSet executes `config set`
func (c *ConfigCommand) RunSet(cmd *cobra.Command, args []string) error {
	store, err := c.store()
	if err != nil {
		return err
	}

	if err := store.Set(args[0], args[1]); err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), successStyle.Render("Saved ")+subtleStyle.Render(store.Path()))
	return nil
}

// RunList executes `config list`
func (c *ConfigCommand) RunList(cmd *cobra.Command, args []string) error {
	store, err := c.store()
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	section := ""
	for _, entry := range store.Load().List() {
		if entry.Section != section {
			section = entry.Section
			fmt.Fprintln(out, headerStyle.Render("["+section+"]"))
		}
		fmt.Fprintf(out, "  %s = %s\n", entry.Key, entry.Value)
	}
	return nil
}
