package table

import (
	"fmt"
	"strconv"
	"time"
)

// ColumnSpec describes one output column. The column list fixes both the
// arity and the left-to-right order of every row.
type ColumnSpec struct {
	// Title is the display name used for the table header, the CSV header
	// row, and the JSON object keys.
	Title string

	// Key is the row-map key this column reads its cell from.
	Key string

	// IsTimestamp marks the column as time-valued. The flag is a semantic
	// hint that short-circuits per-cell classification for columns whose
	// literal text could be misread as another type.
	IsTimestamp bool

	// IsPort marks the column as port-valued, sorting it with the
	// canonical (board, slot) comparator. Port cells may be loose text —
	// lists and ranges sort by their first port.
	IsPort bool
}

// Row is one result row: raw cell values keyed by ColumnSpec.Key. Cells
// are opaque to the pipeline beyond type coercion for sorting; rendering
// stringifies them with cellText.
type Row map[string]any

// cellText renders a raw cell for display and export. Times use RFC 3339
// so exported data round-trips; nil renders empty.
func cellText(v any) string {
	switch x := v.(type) {
	case nil:
		return ""
	case string:
		return x
	case time.Time:
		return x.Format(time.RFC3339)
	case int:
		return strconv.Itoa(x)
	case int64:
		return strconv.FormatInt(x, 10)
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(x)
	default:
		return fmt.Sprint(x)
	}
}
