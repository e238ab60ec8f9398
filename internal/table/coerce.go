package table

import (
	"strconv"
	"strings"
	"time"

	"github.com/altheasignals/boxofports/internal/ports"
)

// Cell classification for sorting. Within one column every valid cell
// normally lands in the same class; when a column mixes classes the class
// rank below keeps the order deterministic.
const (
	classPort = iota
	classTime
	classNumber
	classText
)

// sortKey is the coerced, comparable form of one cell. A key with tail set
// sorts after every valid key in ascending order — and stays at the tail
// under descending order too, because direction reorders valid values
// among themselves and never relocates missing or unparseable ones.
type sortKey struct {
	tail  bool
	class int
	port  ports.Port
	when  time.Time
	num   float64
	text  string
}

// Epoch-second bounds for numeric timestamp cells. Values outside this
// window (roughly 1973–33658) are far more likely row counters or
// milliseconds from some other epoch than times, so they stay numeric.
const (
	epochMin = 1e8
	epochMax = 1e12
)

// timeLayouts are the accepted non-RFC3339 date-time shapes, most specific
// first. The year-less form appears in gateway inbox timestamps.
var timeLayouts = []string{
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	"2006-01-02",
	"2006/01/02 15:04:05",
	"01-02 15:04",
}

// cellKey coerces one raw cell into its sortable form.
//
// A hinted column short-circuits classification: IsTimestamp and IsPort
// columns coerce only to their declared class, and a cell that fails lands
// at the tail. Without a hint the classification order is: canonical port
// token, then timestamp, then number, then case-folded text. Classification
// can degrade but never error — the worst case is text.
func cellKey(col ColumnSpec, v any) sortKey {
	switch {
	case col.IsTimestamp:
		if when, ok := coerceTimestamp(v); ok {
			return sortKey{class: classTime, when: when}
		}
		return sortKey{tail: true}

	case col.IsPort:
		if p, ok := coercePortLoose(v); ok {
			return sortKey{class: classPort, port: p}
		}
		return sortKey{tail: true}
	}

	if v == nil {
		return sortKey{tail: true}
	}
	s, isString := v.(string)
	if isString && strings.TrimSpace(s) == "" {
		return sortKey{tail: true}
	}

	if isString {
		if p, ok := coercePortStrict(s); ok {
			return sortKey{class: classPort, port: p}
		}
	}
	if when, ok := coerceTimestamp(v); ok {
		return sortKey{class: classTime, when: when}
	}
	if n, ok := coerceNumber(v); ok {
		return sortKey{class: classNumber, num: n}
	}
	return sortKey{class: classText, text: strings.ToLower(cellText(v))}
}

// coercePortStrict classifies a cell as a port only when it is
// unambiguously one: letter form or two-digit decimal form. A bare integer
// is a valid port *token* when an operator types it, but inside a data
// cell it is just a number and classifies as generic-numeric.
func coercePortStrict(s string) (ports.Port, bool) {
	t := strings.TrimSpace(s)
	if t == "" {
		return ports.Port{}, false
	}
	allDigits := true
	for i := 0; i < len(t); i++ {
		if t[i] < '0' || t[i] > '9' {
			allDigits = false
			break
		}
	}
	if allDigits {
		return ports.Port{}, false
	}
	p, err := ports.Parse(t)
	if err != nil {
		return ports.Port{}, false
	}
	return p, true
}

// coercePortLoose coerces a port-hinted cell. Port columns often carry
// loose text — "1A-1D" ranges or "1A,2B" lists — which sort by their first
// port. Bare integers are accepted here because the hint removes the
// ambiguity.
func coercePortLoose(v any) (ports.Port, bool) {
	s := strings.TrimSpace(cellText(v))
	if s == "" {
		return ports.Port{}, false
	}
	if i := strings.IndexByte(s, ','); i >= 0 {
		s = strings.TrimSpace(s[:i])
	}
	if i := strings.IndexByte(s, '-'); i > 0 {
		s = strings.TrimSpace(s[:i])
	}
	p, err := ports.Parse(s)
	if err != nil {
		return ports.Port{}, false
	}
	return p, true
}

// coerceTimestamp interprets a cell as a point in time: a time.Time value,
// integer epoch seconds within the plausible window, an RFC 3339 string,
// or one of the common date-time layouts.
func coerceTimestamp(v any) (time.Time, bool) {
	switch x := v.(type) {
	case time.Time:
		return x, true
	case int:
		return epochSeconds(float64(x))
	case int64:
		return epochSeconds(float64(x))
	case float64:
		return epochSeconds(x)
	case string:
		s := strings.TrimSpace(x)
		if s == "" {
			return time.Time{}, false
		}
		if n, err := strconv.ParseFloat(s, 64); err == nil {
			return epochSeconds(n)
		}
		if when, err := time.Parse(time.RFC3339, s); err == nil {
			return when, true
		}
		for _, layout := range timeLayouts {
			if when, err := time.Parse(layout, s); err == nil {
				return when, true
			}
		}
	}
	return time.Time{}, false
}

func epochSeconds(n float64) (time.Time, bool) {
	if n < epochMin || n >= epochMax {
		return time.Time{}, false
	}
	return time.Unix(int64(n), 0).UTC(), true
}

// coerceNumber interprets a cell as a number for generic-numeric ordering.
func coerceNumber(v any) (float64, bool) {
	switch x := v.(type) {
	case int:
		return float64(x), true
	case int64:
		return float64(x), true
	case float64:
		return x, true
	case string:
		n, err := strconv.ParseFloat(strings.TrimSpace(x), 64)
		return n, err == nil
	default:
		return 0, false
	}
}

// compareKeys orders two coerced cells for an ascending pass. Tail keys
// are handled by the caller so direction never moves them.
func compareKeys(a, b sortKey) int {
	if a.class != b.class {
		if a.class < b.class {
			return -1
		}
		return 1
	}
	switch a.class {
	case classPort:
		return ports.Compare(a.port, b.port)
	case classTime:
		switch {
		case a.when.Before(b.when):
			return -1
		case a.when.After(b.when):
			return 1
		default:
			return 0
		}
	case classNumber:
		switch {
		case a.num < b.num:
			return -1
		case a.num > b.num:
			return 1
		default:
			return 0
		}
	default:
		return strings.Compare(a.text, b.text)
	}
}
