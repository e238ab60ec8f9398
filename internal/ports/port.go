package ports

import (
	"fmt"
	"strconv"
	"strings"
)

// maxLetterSlot is the highest slot expressible in letter form ("Z" = 26).
// Higher slots exist on some chassis and render in decimal form only.
const maxLetterSlot = 26

// Port is the canonical identifier of one addressable port: a board number
// and a slot on that board, both 1-based. It is an immutable value type —
// "1A" and "1.01" are the same Port, and equality and ordering depend only
// on the two fields.
type Port struct {
	Board int
	Slot  int
}

// String renders the normalized surface form: letter form ("2B") for slots
// that fit the letter alphabet, decimal form ("2.27") beyond it.
func (p Port) String() string {
	if p.Slot >= 1 && p.Slot <= maxLetterSlot {
		return fmt.Sprintf("%d%c", p.Board, 'A'+rune(p.Slot-1))
	}
	return p.Decimal()
}

// Decimal renders the decimal surface form with a zero-padded two-digit
// slot ("1A" → "1.01"), the notation some gateway endpoints require.
func (p Port) Decimal() string {
	return fmt.Sprintf("%d.%02d", p.Board, p.Slot)
}

// Compare is the total order over ports: lexicographic on (Board, Slot),
// both compared numerically, so board 10 sorts after board 2. Range
// expansion and port-column sorting both use this single comparator.
// It returns -1, 0, or 1.
func Compare(a, b Port) int {
	switch {
	case a.Board != b.Board:
		if a.Board < b.Board {
			return -1
		}
		return 1
	case a.Slot != b.Slot:
		if a.Slot < b.Slot {
			return -1
		}
		return 1
	default:
		return 0
	}
}

// Parse converts a single surface token into a canonical Port.
//
// Accepted grammars:
//   - letter form "<digits><letter>" (case-insensitive): "2b" → board 2, slot 2
//   - decimal form "<digits>.<two digits>": "2.02" → board 2, slot 2
//   - bare board "<digits>": "2" → board 2, slot 1
//
// A single-digit fractional part such as "2.2" is ambiguous between slot 2
// and slot 20 and is rejected rather than guessed. Bare-board tokens
// silently assume slot 1; Resolve surfaces that assumption as a warning.
func Parse(token string) (Port, error) {
	p, _, err := parseToken(token)
	return p, err
}

// parseToken is Parse plus a report of whether the slot was defaulted,
// which the resolver aggregates into a DefaultSlotAssumed warning.
func parseToken(token string) (p Port, assumed bool, err error) {
	t := strings.TrimSpace(token)
	if t == "" {
		return Port{}, false, malformed(token, "empty token; expected forms like 2B, 2.02, or 2")
	}

	if i := strings.IndexByte(t, '.'); i >= 0 {
		return parseDecimal(t, i)
	}

	// Letter form: all digits followed by exactly one letter.
	last := t[len(t)-1]
	if isLetter(last) {
		board, ok := parseDigits(t[:len(t)-1])
		if !ok {
			return Port{}, false, malformed(t, "expected digits before the slot letter, as in 2B")
		}
		if board < 1 {
			return Port{}, false, malformed(t, "board numbers start at 1")
		}
		return Port{Board: board, Slot: letterSlot(last)}, false, nil
	}

	// Bare board: digits only, slot defaults to 1.
	board, ok := parseDigits(t)
	if !ok {
		return Port{}, false, malformed(t, "expected forms like 2B, 2.02, or 2")
	}
	if board < 1 {
		return Port{}, false, malformed(t, "board numbers start at 1")
	}
	return Port{Board: board, Slot: 1}, true, nil
}

// parseDecimal handles the "<digits>.<two digits>" grammar. The fractional
// part must be exactly two digits: "2.2" could mean slot 2 or slot 20 and
// is never coerced silently.
func parseDecimal(t string, dot int) (Port, bool, error) {
	boardPart, slotPart := t[:dot], t[dot+1:]

	board, ok := parseDigits(boardPart)
	if !ok || board < 1 {
		return Port{}, false, malformed(t, "expected a board number before the dot, as in 2.02")
	}
	if len(slotPart) != 2 {
		return Port{}, false, malformed(t,
			"decimal slots use exactly two digits (write 2.02, not 2.2 — a one-digit slot is ambiguous)")
	}
	slot, ok := parseDigits(slotPart)
	if !ok {
		return Port{}, false, malformed(t, "expected two slot digits after the dot, as in 2.02")
	}
	if slot < 1 {
		return Port{}, false, malformed(t, "slot numbers start at 01")
	}
	return Port{Board: board, Slot: slot}, false, nil
}

// parseDigits converts an all-digit string. It rejects empty strings and
// anything strconv would accept that the port grammar should not (signs,
// whitespace, hex prefixes).
func parseDigits(s string) (int, bool) {
	if s == "" {
		return 0, false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return 0, false
		}
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, false
	}
	return n, true
}

func isLetter(c byte) bool {
	return (c >= 'A' && c <= 'Z') || (c >= 'a' && c <= 'z')
}

// letterSlot maps a slot letter to its 1-based ordinal (A=1 ... Z=26),
// case-insensitively.
func letterSlot(c byte) int {
	if c >= 'a' {
		c -= 'a' - 'A'
	}
	return int(c-'A') + 1
}
