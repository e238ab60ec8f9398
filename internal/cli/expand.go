// expand.go implements the "boxofports expand" command.
//
// expand resolves a port specification (inline fragments, wildcard, or a
// CSV port file) into the canonical deduplicated port set and presents it
// through the shared table pipeline, so the result can be eyeballed, piped
// as CSV/JSON, or exported to files.

package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/altheasignals/boxofports/internal/inventory"
	"github.com/altheasignals/boxofports/internal/model"
	"github.com/altheasignals/boxofports/internal/ports"
	"github.com/altheasignals/boxofports/internal/table"
)

// expandFlags holds the flag values for the expand command.
type expandFlags struct {
	// inventoryPath points at the device inventory file used to expand
	// wildcard specs. Without it, "*" is an error.
	inventoryPath string

	tableFlags
}

// NewExpandCommand creates the "expand" cobra command.
func NewExpandCommand() *cobra.Command {
	flags := &expandFlags{}

	cmd := &cobra.Command{
		Use:   "expand <port-spec>",
		Short: "Resolve a port specification into canonical ports",
		Long: `Resolve a port specification into the canonical, deduplicated port set.

Specifications are comma-separated fragments: single ports ("1A", "2.02",
"3"), ranges ("1A-1D", "2.01-2.04", "1-4"), the wildcard ("*" or "all",
requires --inventory), or a path to a CSV port file with a 'port' column
and an optional 'slot' column.

Examples:
  boxofports expand "1A,2B,4-8"
  boxofports expand "2.01-2.04" --sort 1d --csv
  boxofports expand "*" --inventory rack.yaml --json ports.json
  boxofports expand ports.csv`,

		Args: cobra.ExactArgs(1),

		RunE: func(cmd *cobra.Command, args []string) error {
			return runExpand(cmd, args[0], flags)
		},
	}

	cmd.Flags().StringVar(&flags.inventoryPath, "inventory", "",
		"Device inventory file (YAML or JSONC) used to expand wildcard specs")
	addTableFlags(cmd, &flags.tableFlags)

	return cmd
}

// runExpand is the main logic function for the expand command.
func runExpand(cmd *cobra.Command, spec string, flags *expandFlags) error {
	// Step 1: Load the wildcard inventory if one was given. The resolver
	// itself never touches the filesystem for topology.
	var inv []ports.Port
	if flags.inventoryPath != "" {
		loaded, err := inventory.Load(flags.inventoryPath)
		if err != nil {
			return model.WrapCLIError(model.ExitFileError, "cannot load inventory", err)
		}
		inv = loaded
		VerboseLog("Loaded %d inventory ports from %s", len(inv), flags.inventoryPath)
	}

	// Step 2: Resolve the specification. Any resolution error is fatal —
	// acting on a misunderstood port set is worse than stopping.
	set, warnings, err := ports.Resolve(spec, inv)
	if err != nil {
		return specError(err)
	}
	VerboseLog("Resolved %d port(s)", len(set))

	// Step 3: Surface resolution warnings. They go to stderr so they never
	// mix into a console-only stream.
	for _, w := range warnings {
		warnLog("%s", w.Message)
	}

	// Step 4: Render through the shared pipeline.
	profile := currentProfileName()
	rows := make([]table.Row, len(set))
	for i, p := range set {
		rows[i] = table.Row{
			"port":    p.String(),
			"board":   p.Board,
			"slot":    p.Slot,
			"decimal": p.Decimal(),
		}
	}

	pipeline := &table.Pipeline{}
	consoleOnly, err := pipeline.Render(table.Request{
		Title: "Resolved Ports",
		Columns: []table.ColumnSpec{
			{Title: "Port", Key: "port", IsPort: true},
			{Title: "Board", Key: "board"},
			{Title: "Slot", Key: "slot"},
			{Title: "Decimal", Key: "decimal"},
		},
		Rows:       rows,
		SortOption: flags.sort,
		Profile:    profile,
		Command:    "expand",
		Mode:       exportMode(cmd, &flags.tableFlags),
	})
	if err != nil {
		return model.WrapCLIError(model.ExitFileError, "export failed", err)
	}

	// Step 5: Print the summary unless a console stream owns stdout.
	if !consoleOnly {
		fmt.Fprintf(cmd.OutOrStdout(), "%d port(s)\n", len(set))
	}
	return nil
}

// specError maps a resolution failure onto the right exit code, keeping
// the grammar-bearing ParseError message intact.
func specError(err error) error {
	var pe *ports.ParseError
	if errors.As(err, &pe) && pe.Kind == ports.FileNotFound {
		return model.WrapCLIError(model.ExitFileError, "cannot read port specification", err)
	}
	return model.WrapCLIError(model.ExitSpecError, "invalid port specification", err)
}
