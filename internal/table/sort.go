package table

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// SortTerm is one (column, direction) pair of a sort key. Col is a 0-based
// column index into the column list.
type SortTerm struct {
	Col       int
	Ascending bool
}

// ParseSortOption parses the compact sort directive into ordered sort
// terms. The grammar is comma-separated tokens "<1-based column><a|d>?",
// direction defaulting to ascending: "2,1d,4" sorts by column 2 ascending,
// ties by column 1 descending, then column 4 ascending.
//
// Sorting is a display affordance, never a hard failure: a malformed or
// out-of-range token is individually discarded and reported in the
// returned diagnostics while the rest of the directive still applies. An
// empty directive — or one with no usable token — falls back to
// DefaultSortTerms.
func ParseSortOption(text string, columns []ColumnSpec) ([]SortTerm, []string) {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return DefaultSortTerms(columns), nil
	}

	var (
		terms []SortTerm
		diags []string
	)
	for _, token := range strings.Split(trimmed, ",") {
		token = strings.TrimSpace(token)
		if token == "" {
			continue
		}

		numPart, ascending := token, true
		switch token[len(token)-1] {
		case 'a', 'A':
			numPart = token[:len(token)-1]
		case 'd', 'D':
			numPart = token[:len(token)-1]
			ascending = false
		}

		col, err := strconv.Atoi(numPart)
		if err != nil || col < 1 || col > len(columns) {
			diags = append(diags, fmt.Sprintf(
				"ignoring sort token %q: expected a column number 1-%d with optional a/d suffix",
				token, len(columns)))
			continue
		}
		terms = append(terms, SortTerm{Col: col - 1, Ascending: ascending})
	}

	if len(terms) == 0 {
		return DefaultSortTerms(columns), diags
	}
	return terms, diags
}

// DefaultSortTerms derives the sort key when the operator gave no
// directive. First match wins:
//
//  1. first timestamp column, descending (newest results first)
//  2. first port column, ascending
//  3. the second column, ascending (the first is usually an ID)
//  4. the first column, ascending
//
// An empty column list yields no terms.
func DefaultSortTerms(columns []ColumnSpec) []SortTerm {
	for i, col := range columns {
		if col.IsTimestamp {
			return []SortTerm{{Col: i, Ascending: false}}
		}
	}
	for i, col := range columns {
		if col.IsPort {
			return []SortTerm{{Col: i, Ascending: true}}
		}
	}
	if len(columns) >= 2 {
		return []SortTerm{{Col: 1, Ascending: true}}
	}
	if len(columns) == 1 {
		return []SortTerm{{Col: 0, Ascending: true}}
	}
	return nil
}

// SortRows stable-sorts rows by the given terms and returns a new slice;
// the input order is never mutated. Each term compares via cell coercion,
// ties fall through to the next term, and rows equal under the full key
// keep their relative input order. Terms with an out-of-range column are
// skipped defensively.
//
// Missing and unparseable cells sort to the tail of the ascending order
// regardless of the requested direction: direction reorders valid values
// among themselves only.
func SortRows(rows []Row, columns []ColumnSpec, terms []SortTerm) []Row {
	sorted := make([]Row, len(rows))
	copy(sorted, rows)
	if len(terms) == 0 || len(rows) < 2 {
		return sorted
	}

	sort.SliceStable(sorted, func(i, j int) bool {
		for _, term := range terms {
			if term.Col < 0 || term.Col >= len(columns) {
				continue
			}
			col := columns[term.Col]
			a := cellKey(col, sorted[i][col.Key])
			b := cellKey(col, sorted[j][col.Key])

			// Tail cells pin to the end before direction applies.
			switch {
			case a.tail && b.tail:
				continue
			case a.tail:
				return false
			case b.tail:
				return true
			}

			cmp := compareKeys(a, b)
			if cmp == 0 {
				continue
			}
			if !term.Ascending {
				cmp = -cmp
			}
			return cmp < 0
		}
		return false
	})
	return sorted
}
