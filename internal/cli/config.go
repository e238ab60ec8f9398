// config.go implements the "boxofports config" command family: named
// gateway profiles that other commands use to tag exports and, in the
// transport layer, to reach devices.

package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/altheasignals/boxofports/internal/config"
	"github.com/altheasignals/boxofports/internal/model"
	"github.com/altheasignals/boxofports/internal/table"
)

// NewConfigCommand creates the "config" parent command with its
// subcommands.
func NewConfigCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage gateway profiles",
	}

	cmd.AddCommand(newConfigAddCommand())
	cmd.AddCommand(newConfigListCommand())
	cmd.AddCommand(newConfigUseCommand())
	cmd.AddCommand(newConfigRemoveCommand())
	cmd.AddCommand(newConfigCurrentCommand())

	return cmd
}

// openStore wraps store construction failures into a config exit code.
func openStore() (*config.Store, error) {
	store, err := config.NewStore()
	if err != nil {
		return nil, model.WrapCLIError(model.ExitConfigError, "cannot open profile store", err)
	}
	return store, nil
}

// currentProfileName returns the selected profile name for export file
// naming, empty when the store is unreadable — naming must never fail a
// render.
func currentProfileName() string {
	store, err := config.NewStore()
	if err != nil {
		return ""
	}
	name, err := store.Current()
	if err != nil {
		return ""
	}
	return name
}

type configAddFlags struct {
	host     string
	port     int
	username string
}

func newConfigAddCommand() *cobra.Command {
	flags := &configAddFlags{}

	cmd := &cobra.Command{
		Use:   "add <name>",
		Short: "Add or replace a gateway profile",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := openStore()
			if err != nil {
				return err
			}
			p := config.Profile{
				Name:     args[0],
				Host:     flags.host,
				Port:     flags.port,
				Username: flags.username,
			}
			if err := store.Add(p); err != nil {
				return model.WrapCLIError(model.ExitConfigError, "cannot save profile", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Profile %q saved.\n", p.Name)
			return nil
		},
	}

	cmd.Flags().StringVar(&flags.host, "host", "", "Gateway host or IP")
	cmd.Flags().IntVar(&flags.port, "port", 80, "Gateway HTTP port")
	cmd.Flags().StringVar(&flags.username, "username", "", "Gateway username")
	_ = cmd.MarkFlagRequired("host")

	return cmd
}

func newConfigListCommand() *cobra.Command {
	flags := &tableFlags{}

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List gateway profiles",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConfigList(cmd, flags)
		},
	}

	addTableFlags(cmd, flags)
	return cmd
}

// runConfigList renders the profile table through the same pipeline every
// other table command uses, inheriting sorting and console-only exports.
func runConfigList(cmd *cobra.Command, flags *tableFlags) error {
	store, err := openStore()
	if err != nil {
		return err
	}
	profiles, err := store.List()
	if err != nil {
		return model.WrapCLIError(model.ExitConfigError, "cannot read profiles", err)
	}
	current, err := store.Current()
	if err != nil {
		return model.WrapCLIError(model.ExitConfigError, "cannot read profiles", err)
	}

	rows := make([]table.Row, len(profiles))
	for i, p := range profiles {
		status := ""
		if p.Name == current {
			status = "current"
		}
		rows[i] = table.Row{
			"name":     p.Name,
			"hostport": fmt.Sprintf("%s:%d", p.Host, p.Port),
			"username": p.Username,
			"status":   status,
		}
	}

	pipeline := &table.Pipeline{}
	consoleOnly, err := pipeline.Render(table.Request{
		Title: "Gateway Profiles",
		Columns: []table.ColumnSpec{
			{Title: "Name", Key: "name"},
			{Title: "Host:Port", Key: "hostport"},
			{Title: "Username", Key: "username"},
			{Title: "Status", Key: "status"},
		},
		Rows:       rows,
		SortOption: flags.sort,
		Profile:    current,
		Command:    "config-list",
		Mode:       exportMode(cmd, flags),
	})
	if err != nil {
		return model.WrapCLIError(model.ExitFileError, "export failed", err)
	}

	if !consoleOnly && len(profiles) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No profiles configured. Add one with 'boxofports config add'.")
	}
	return nil
}

func newConfigUseCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "use <name>",
		Short: "Select the current profile",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := openStore()
			if err != nil {
				return err
			}
			if err := store.Use(args[0]); err != nil {
				return model.WrapCLIError(model.ExitConfigError, "cannot switch profile", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Now using profile %q.\n", args[0])
			return nil
		},
	}
}

func newConfigRemoveCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "remove <name>",
		Short: "Remove a profile",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := openStore()
			if err != nil {
				return err
			}
			removed, err := store.Remove(args[0])
			if err != nil {
				return model.WrapCLIError(model.ExitConfigError, "cannot remove profile", err)
			}
			if !removed {
				return model.NewCLIError(model.ExitConfigError, fmt.Sprintf("no such profile %q", args[0]))
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Profile %q removed.\n", args[0])
			return nil
		},
	}
}

func newConfigCurrentCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "current",
		Short: "Show the current profile name",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := openStore()
			if err != nil {
				return err
			}
			current, err := store.Current()
			if err != nil {
				return model.WrapCLIError(model.ExitConfigError, "cannot read profiles", err)
			}
			if current == "" {
				fmt.Fprintln(cmd.OutOrStdout(), "No profile selected.")
				return nil
			}
			fmt.Fprintln(cmd.OutOrStdout(), current)
			return nil
		},
	}
}
