package ports

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// expectKind asserts that err is a *ParseError of the given kind.
func expectKind(t *testing.T, err error, kind ErrorKind) *ParseError {
	t.Helper()
	require.Error(t, err)
	pe := &ParseError{}
	require.ErrorAs(t, err, &pe)
	assert.Equal(t, kind, pe.Kind)
	return pe
}

// TestResolve_SingleTokens verifies a plain comma-separated list.
func TestResolve_SingleTokens(t *testing.T) {
	set, warnings, err := Resolve("1A,2B,3.04", nil)
	require.NoError(t, err)
	assert.Empty(t, warnings)
	assert.Equal(t, []string{"1A", "2B", "3D"}, set.Strings())
}

// TestResolve_Dedup verifies first-occurrence deduplication, including
// across surface forms: "1.01" is the same port as "1A".
func TestResolve_Dedup(t *testing.T) {
	set, _, err := Resolve("1A,1A,1B", nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"1A", "1B"}, set.Strings())

	set, _, err = Resolve("1A,1.01,1B,1b", nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"1A", "1B"}, set.Strings())
}

// TestResolve_FirstOccurrenceOrder verifies the set preserves the order the
// operator wrote, never a sorted order.
func TestResolve_FirstOccurrenceOrder(t *testing.T) {
	set, _, err := Resolve("4D,1A,2B", nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"4D", "1A", "2B"}, set.Strings())
}

// TestResolve_LetterRange verifies inclusive slot-by-slot expansion.
func TestResolve_LetterRange(t *testing.T) {
	set, _, err := Resolve("1A-1D", nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"1A", "1B", "1C", "1D"}, set.Strings())
}

// TestResolve_DecimalRange verifies decimal-form ranges expand the same way.
func TestResolve_DecimalRange(t *testing.T) {
	set, _, err := Resolve("2.01-2.04", nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"2A", "2B", "2C", "2D"}, set.Strings())
}

// TestResolve_BareRange verifies board-by-board expansion at the default
// slot, with no per-token warning: the bare range grammar is explicit.
func TestResolve_BareRange(t *testing.T) {
	set, warnings, err := Resolve("1-4", nil)
	require.NoError(t, err)
	assert.Empty(t, warnings)
	assert.Equal(t, []string{"1A", "2A", "3A", "4A"}, set.Strings())
}

// TestResolve_InvertedRange verifies end-before-start fails loudly for
// every range form.
func TestResolve_InvertedRange(t *testing.T) {
	for _, spec := range []string{"1D-1A", "2.04-2.01", "4-1"} {
		_, _, err := Resolve(spec, nil)
		expectKind(t, err, InvertedRange)
	}
}

// TestResolve_RangeFormMismatch verifies that endpoints must share a
// surface form and, for slotted forms, a board.
func TestResolve_RangeFormMismatch(t *testing.T) {
	for _, spec := range []string{"1A-2.04", "1-1D", "2.01-3", "1A-4D", "1.01-2.04"} {
		_, _, err := Resolve(spec, nil)
		expectKind(t, err, MalformedToken)
	}
}

// TestResolve_RangeOverlapDedup verifies overlapping ranges collapse to
// first occurrence.
func TestResolve_RangeOverlapDedup(t *testing.T) {
	set, _, err := Resolve("1A-1C,1B-1D", nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"1A", "1B", "1C", "1D"}, set.Strings())
}

// TestResolve_Wildcard verifies wildcard expansion against the injected
// inventory, both spellings, and the failure without one.
func TestResolve_Wildcard(t *testing.T) {
	inventory := []Port{{1, 1}, {1, 2}, {2, 1}}

	for _, spec := range []string{"*", "all", "ALL"} {
		set, _, err := Resolve(spec, inventory)
		require.NoError(t, err, "spec %q", spec)
		assert.Equal(t, []string{"1A", "1B", "2A"}, set.Strings(), "spec %q", spec)
	}

	_, _, err := Resolve("*", nil)
	expectKind(t, err, UnresolvedWildcard)
}

// TestResolve_WildcardMixedWithTokens verifies a wildcard composes with
// explicit fragments and stays duplicate-free.
func TestResolve_WildcardMixedWithTokens(t *testing.T) {
	inventory := []Port{{1, 1}, {1, 2}}
	set, _, err := Resolve("2A,*", inventory)
	require.NoError(t, err)
	assert.Equal(t, []string{"2A", "1A", "1B"}, set.Strings())
}

// TestResolve_DefaultSlotWarning verifies bare boards default to slot 1
// and produce exactly one aggregated warning no matter how many tokens
// contributed.
func TestResolve_DefaultSlotWarning(t *testing.T) {
	set, warnings, err := Resolve("1A,3,5.02", nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"1A", "3A", "5B"}, set.Strings())
	require.Len(t, warnings, 1)
	assert.Equal(t, DefaultSlotAssumed, warnings[0].Kind)
	assert.Equal(t, 1, warnings[0].Count)

	_, warnings, err = Resolve("3,7,9", nil)
	require.NoError(t, err)
	require.Len(t, warnings, 1, "warnings aggregate, never one per token")
	assert.Equal(t, 3, warnings[0].Count)
}

// TestResolve_EmptySpec verifies empty and all-blank specifications fail.
func TestResolve_EmptySpec(t *testing.T) {
	for _, spec := range []string{"", "   ", ",,,"} {
		_, _, err := Resolve(spec, nil)
		expectKind(t, err, MalformedToken)
	}
}

// TestResolve_MalformedFragmentIsFatal verifies one bad fragment poisons
// the whole resolution: the tool must never act on a partial port set.
func TestResolve_MalformedFragmentIsFatal(t *testing.T) {
	_, _, err := Resolve("1A,bogus,2B", nil)
	pe := expectKind(t, err, MalformedToken)
	assert.Equal(t, "bogus", pe.Token, "error names the offending token")
}

// TestResolve_WhitespaceTolerance verifies fragments may carry spaces.
func TestResolve_WhitespaceTolerance(t *testing.T) {
	set, _, err := Resolve(" 1A , 1B , 2.01 ", nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"1A", "1B", "2A"}, set.Strings())
}
