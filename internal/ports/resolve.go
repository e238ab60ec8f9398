package ports

import (
	"fmt"
	"strings"
)

// PortSet is an ordered, duplicate-free sequence of ports in the order the
// operator first mentioned them. It is deliberately never sorted: sorting
// is a presentation concern that applies to result rows, not to the
// operator's port selection.
type PortSet []Port

// Strings renders every port in its normalized surface form.
func (s PortSet) Strings() []string {
	out := make([]string, len(s))
	for i, p := range s {
		out[i] = p.String()
	}
	return out
}

// Resolve expands a full port specification into a PortSet.
//
// The specification is either a path to a CSV port file (detected by a
// ".csv" suffix or by sniffing an existing file's header) or a
// comma-separated list of fragments:
//
//	single   "2B", "2.02", "2"
//	range    "1A-1D", "2.01-2.04" (same board), "1-4" (board by board)
//	wildcard "*" or "all", expanded against the injected inventory
//
// inventory is the full device port list for wildcard expansion; Resolve
// never queries a device itself, so a wildcard with a nil inventory fails
// with UnresolvedWildcard.
//
// Repeated ports — including overlap between ranges — are kept at first
// occurrence only. Bare-board tokens assume slot 1 and are reported in one
// aggregated DefaultSlotAssumed warning. All errors are *ParseError and
// are fatal: a spec that cannot be fully understood resolves to nothing.
func Resolve(spec string, inventory []Port) (PortSet, []Warning, error) {
	trimmed := strings.TrimSpace(spec)
	if trimmed == "" {
		return nil, nil, malformed(spec, "empty port specification")
	}

	var (
		expanded []Port
		assumed  int
	)

	if isCSVFile(trimmed) {
		filePorts, fileAssumed, err := readCSVPorts(trimmed)
		if err != nil {
			return nil, nil, err
		}
		expanded, assumed = filePorts, fileAssumed
	} else {
		for _, fragment := range strings.Split(trimmed, ",") {
			fragment = strings.TrimSpace(fragment)
			if fragment == "" {
				continue
			}

			switch {
			case isWildcard(fragment):
				if len(inventory) == 0 {
					return nil, nil, &ParseError{
						Kind:    UnresolvedWildcard,
						Token:   fragment,
						Message: "wildcard requires a device inventory (see --inventory)",
					}
				}
				expanded = append(expanded, inventory...)

			case isRange(fragment):
				rangePorts, err := expandRange(fragment)
				if err != nil {
					return nil, nil, err
				}
				expanded = append(expanded, rangePorts...)

			default:
				p, wasAssumed, err := parseToken(fragment)
				if err != nil {
					return nil, nil, err
				}
				if wasAssumed {
					assumed++
				}
				expanded = append(expanded, p)
			}
		}
	}

	if len(expanded) == 0 {
		return nil, nil, malformed(spec, "no ports found in specification")
	}

	// First-occurrence deduplication. Port is a comparable value type, so
	// a plain map keyed by Port collapses "1A" and "1.01" automatically.
	seen := make(map[Port]struct{}, len(expanded))
	set := make(PortSet, 0, len(expanded))
	for _, p := range expanded {
		if _, dup := seen[p]; dup {
			continue
		}
		seen[p] = struct{}{}
		set = append(set, p)
	}

	var warnings []Warning
	if assumed > 0 {
		warnings = append(warnings, Warning{
			Kind:  DefaultSlotAssumed,
			Count: assumed,
			Message: fmt.Sprintf(
				"%d token(s) named only a board; assumed slot 1 (single-slot device)", assumed),
		})
	}
	return set, warnings, nil
}

// isWildcard reports whether a fragment selects the whole inventory.
func isWildcard(fragment string) bool {
	return fragment == "*" || strings.EqualFold(fragment, "all")
}

// isRange reports whether a fragment is a range. A leading or trailing
// dash is not a range separator; it falls through to token parsing and
// fails there with the grammar message.
func isRange(fragment string) bool {
	i := strings.IndexByte(fragment, '-')
	return i > 0 && i < len(fragment)-1
}

// tokenForm distinguishes the three surface grammars so range endpoints
// can be required to match.
type tokenForm int

const (
	formBare tokenForm = iota
	formLetter
	formDecimal
)

func formOf(token string) tokenForm {
	switch {
	case strings.IndexByte(token, '.') >= 0:
		return formDecimal
	case len(token) > 0 && isLetter(token[len(token)-1]):
		return formLetter
	default:
		return formBare
	}
}

// expandRange expands "start-end" inclusively.
//
// Slotted endpoints (letter or decimal form) must share a surface form and
// a board; the range walks slots in ascending order. Bare endpoints name
// boards and the range walks boards, one default slot each. An end that
// precedes its start in the (board, slot) total order is InvertedRange.
func expandRange(fragment string) ([]Port, error) {
	dash := strings.IndexByte(fragment, '-')
	startTok := strings.TrimSpace(fragment[:dash])
	endTok := strings.TrimSpace(fragment[dash+1:])

	startForm, endForm := formOf(startTok), formOf(endTok)
	if startForm != endForm {
		return nil, malformed(fragment, "range endpoints must use the same form (1A-1D, 2.01-2.04, or 1-4)")
	}

	start, _, err := parseToken(startTok)
	if err != nil {
		return nil, err
	}
	end, _, err := parseToken(endTok)
	if err != nil {
		return nil, err
	}

	if Compare(end, start) < 0 {
		return nil, &ParseError{
			Kind:    InvertedRange,
			Token:   fragment,
			Message: fmt.Sprintf("range end %s precedes start %s", end, start),
		}
	}

	// Bare form ranges span boards.
	if startForm == formBare {
		out := make([]Port, 0, end.Board-start.Board+1)
		for board := start.Board; board <= end.Board; board++ {
			out = append(out, Port{Board: board, Slot: 1})
		}
		return out, nil
	}

	// Slotted ranges stay on one board and span slots.
	if start.Board != end.Board {
		return nil, malformed(fragment, "slotted range endpoints must be on the same board")
	}
	out := make([]Port, 0, end.Slot-start.Slot+1)
	for slot := start.Slot; slot <= end.Slot; slot++ {
		out = append(out, Port{Board: start.Board, Slot: slot})
	}
	return out, nil
}
