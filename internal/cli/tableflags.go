// tableflags.go wires the shared --sort/--csv/--json flags.
//
// Every table-producing command takes the same three flags and feeds them
// into the one table.Pipeline, so the console-only suppression rule lives
// in exactly one place and cannot drift between commands.

package cli

import (
	"github.com/spf13/cobra"

	"github.com/altheasignals/boxofports/internal/table"
)

// tableFlags holds the raw flag values shared by table-producing commands.
type tableFlags struct {
	// sort is the compact sort directive, e.g. "2,1d,4".
	sort string

	// csv / json are export targets. The flags use an optional value:
	// bare --csv streams to stdout (console-only), --csv FILE writes FILE,
	// and --csv auto picks a generated {profile}-{command}-{timestamp}
	// name.
	csv  string
	json string
}

// autoTarget is the flag value selecting a generated export filename.
const autoTarget = "auto"

// addTableFlags registers the shared flags on a command.
func addTableFlags(cmd *cobra.Command, f *tableFlags) {
	cmd.Flags().StringVar(&f.sort, "sort", "",
		"Sort by column numbers, e.g. '2,1d,4'. Use 'a' & 'd' for ascending/descending.")

	cmd.Flags().StringVar(&f.csv, "csv", "",
		"Export table data to CSV: give a filename for file output, none for console output, 'auto' for a generated name")
	cmd.Flags().Lookup("csv").NoOptDefVal = table.Stdout

	cmd.Flags().StringVar(&f.json, "json", "",
		"Export table data to JSON: give a filename for file output, none for console output, 'auto' for a generated name")
	cmd.Flags().Lookup("json").NoOptDefVal = table.Stdout
}

// exportMode translates the flags of one invocation into a render mode.
// The interactive table is always requested; the pipeline suppresses it
// when a facet owns stdout.
func exportMode(cmd *cobra.Command, f *tableFlags) table.Mode {
	mode := table.Mode{ShowTable: true}

	if cmd.Flags().Changed("csv") {
		path := f.csv
		if path == autoTarget {
			path = ""
		}
		mode.CSV = &table.Target{Path: path}
	}
	if cmd.Flags().Changed("json") {
		path := f.json
		if path == autoTarget {
			path = ""
		}
		mode.JSON = &table.Target{Path: path}
	}
	return mode
}
