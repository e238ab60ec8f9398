package table

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"
	"time"
)

// Stdout is the Target path that streams a facet to standard output,
// putting the invocation in console-only mode.
const Stdout = "-"

// Target names the destination of one export facet. An empty Path asks
// for a generated filename ({profile}-{command}-{timestamp}.{ext});
// Stdout streams to the console.
type Target struct {
	Path string
}

func (t Target) stdout() bool { return t.Path == Stdout }

// Mode carries the independent output facets of one render: the
// interactive table plus optional CSV and JSON exports.
type Mode struct {
	// ShowTable requests the interactive console table.
	ShowTable bool

	// CSV and JSON, when non-nil, request the corresponding export.
	CSV  *Target
	JSON *Target
}

// ConsoleOnly reports whether any facet streams to stdout. Console-only is
// all-or-nothing: one machine-readable stream owns stdout and every other
// human-readable write for the invocation is suppressed, never partially
// mixed.
func (m Mode) ConsoleOnly() bool {
	return (m.CSV != nil && m.CSV.stdout()) || (m.JSON != nil && m.JSON.stdout())
}

// Request is one render pass: the columns, the raw rows, the operator's
// sort directive (empty selects the default policy), and naming inputs for
// generated export filenames.
type Request struct {
	Title   string
	Columns []ColumnSpec
	Rows    []Row

	// SortOption is the raw --sort directive text.
	SortOption string

	// Profile and Command name generated export files.
	Profile string
	Command string

	Mode Mode
}

// renderer is one output facet. Every renderer receives the same sorted
// row slice, which is what guarantees identical row order across the
// table, CSV, and JSON targets.
type renderer interface {
	render(w io.Writer, columns []ColumnSpec, rows []Row) error
}

// Pipeline renders sorted rows to every requested facet. The zero values
// of Out/ErrOut default to the process streams; tests inject buffers.
type Pipeline struct {
	// Out receives the interactive table, stdout exports, and
	// confirmations.
	Out io.Writer

	// ErrOut receives non-fatal diagnostics, which are kept off Out so
	// they never interleave with a console-only stream.
	ErrOut io.Writer

	// Now stamps generated export filenames. Defaults to time.Now.
	Now func() time.Time
}

// Render sorts the rows once and forks the identical ordered sequence to
// every requested facet. It reports whether the invocation was
// console-only so the caller can suppress its own summaries.
//
// Directive problems degrade to dropped tokens and a per-cell coercion
// problem degrades that cell to text; neither aborts the render. A failed
// file export does abort — a partial file plus a confirmation would lie.
func (p *Pipeline) Render(req Request) (consoleOnly bool, err error) {
	out := p.Out
	if out == nil {
		out = os.Stdout
	}
	errOut := p.ErrOut
	if errOut == nil {
		errOut = os.Stderr
	}
	now := p.Now
	if now == nil {
		now = time.Now
	}

	mode := req.Mode
	if mode.CSV != nil && mode.CSV.stdout() && mode.JSON != nil && mode.JSON.stdout() {
		return false, fmt.Errorf("CSV and JSON cannot both stream to the console; give one of them a filename")
	}
	consoleOnly = mode.ConsoleOnly()

	terms, diags := ParseSortOption(req.SortOption, req.Columns)
	for _, d := range diags {
		fmt.Fprintf(errOut, "[warn] %s\n", d)
	}
	rows := SortRows(req.Rows, req.Columns, terms)

	if mode.ShowTable && !consoleOnly {
		if err := (textRenderer{title: req.Title}).render(out, req.Columns, rows); err != nil {
			return consoleOnly, err
		}
	}

	if mode.CSV != nil {
		if err := p.export(out, errOut, req, rows, *mode.CSV, "csv", csvRenderer{}, consoleOnly, now); err != nil {
			return consoleOnly, err
		}
	}
	if mode.JSON != nil {
		if err := p.export(out, errOut, req, rows, *mode.JSON, "json", jsonRenderer{}, consoleOnly, now); err != nil {
			return consoleOnly, err
		}
	}
	return consoleOnly, nil
}

// export writes one facet to stdout or a file. File targets print a single
// confirmation line naming the file — unless another facet owns stdout.
func (p *Pipeline) export(out, errOut io.Writer, req Request, rows []Row, target Target, format string, r renderer, consoleOnly bool, now func() time.Time) error {
	if target.stdout() {
		return r.render(out, req.Columns, rows)
	}

	path := target.Path
	if path == "" {
		path = exportFilename(req.Profile, req.Command, format, now())
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("cannot write %s export: %w", strings.ToUpper(format), err)
	}
	renderErr := r.render(f, req.Columns, rows)
	closeErr := f.Close()
	if renderErr != nil {
		return fmt.Errorf("cannot write %s export to %s: %w", strings.ToUpper(format), path, renderErr)
	}
	if closeErr != nil {
		return fmt.Errorf("cannot write %s export to %s: %w", strings.ToUpper(format), path, closeErr)
	}

	if !consoleOnly {
		fmt.Fprintf(out, "%s export written to: %s\n", strings.ToUpper(format), path)
	}
	return nil
}

// exportFilename builds the default export name:
// {profile}-{command}-{timestamp}.{format}, profile falling back to
// "default".
func exportFilename(profile, command, format string, now time.Time) string {
	if profile == "" {
		profile = "default"
	}
	return fmt.Sprintf("%s-%s-%s.%s", profile, command, now.Format("20060102_150405"), format)
}

// textRenderer prints the interactive table with tab-aligned columns.
type textRenderer struct {
	title string
}

func (t textRenderer) render(w io.Writer, columns []ColumnSpec, rows []Row) error {
	if t.title != "" {
		if _, err := fmt.Fprintln(w, t.title); err != nil {
			return err
		}
	}
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)

	titles := make([]string, len(columns))
	for i, col := range columns {
		titles[i] = col.Title
	}
	fmt.Fprintln(tw, strings.Join(titles, "\t"))

	cells := make([]string, len(columns))
	for _, row := range rows {
		for i, col := range columns {
			cells[i] = cellText(row[col.Key])
		}
		fmt.Fprintln(tw, strings.Join(cells, "\t"))
	}
	return tw.Flush()
}

// csvRenderer emits an RFC 4180 stream: a header row of column titles,
// then one line per sorted row.
type csvRenderer struct{}

func (csvRenderer) render(w io.Writer, columns []ColumnSpec, rows []Row) error {
	cw := csv.NewWriter(w)

	header := make([]string, len(columns))
	for i, col := range columns {
		header[i] = col.Title
	}
	if err := cw.Write(header); err != nil {
		return err
	}

	record := make([]string, len(columns))
	for _, row := range rows {
		for i, col := range columns {
			record[i] = cellText(row[col.Key])
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// jsonRenderer emits an array of objects keyed by column title, in column
// order. encoding/json maps sort keys alphabetically, so the objects are
// assembled field by field to keep key order identical to the CSV and
// table facets.
type jsonRenderer struct{}

func (jsonRenderer) render(w io.Writer, columns []ColumnSpec, rows []Row) error {
	var b strings.Builder
	b.WriteString("[")
	for i, row := range rows {
		if i > 0 {
			b.WriteString(",")
		}
		b.WriteString("\n  {")
		for j, col := range columns {
			if j > 0 {
				b.WriteString(",")
			}
			key, err := json.Marshal(col.Title)
			if err != nil {
				return err
			}
			val, err := marshalCell(row[col.Key])
			if err != nil {
				return err
			}
			b.WriteString("\n    ")
			b.Write(key)
			b.WriteString(": ")
			b.Write(val)
		}
		b.WriteString("\n  }")
	}
	if len(rows) > 0 {
		b.WriteString("\n")
	}
	b.WriteString("]\n")

	_, err := io.WriteString(w, b.String())
	return err
}

// marshalCell serializes one cell value. Times become RFC 3339 strings to
// match the other facets; anything encoding/json cannot handle degrades to
// its display text.
func marshalCell(v any) ([]byte, error) {
	if t, ok := v.(time.Time); ok {
		return json.Marshal(t.Format(time.RFC3339))
	}
	data, err := json.Marshal(v)
	if err != nil {
		return json.Marshal(cellText(v))
	}
	return data, nil
}
