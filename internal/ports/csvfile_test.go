package ports

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// writeCSV drops a CSV file into a temp dir and returns its path.
func writeCSV(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

// TestResolve_CSVPortColumnOnly verifies the minimal file shape: a header
// and one complete port token per row.
func TestResolve_CSVPortColumnOnly(t *testing.T) {
	path := writeCSV(t, "ports.csv", "port\n1A\n2B\n3.01\n")

	set, warnings, err := Resolve(path, nil)
	require.NoError(t, err)
	assert.Empty(t, warnings)
	assert.Equal(t, []string{"1A", "2B", "3A"}, set.Strings())
}

// TestResolve_CSVWithSlotColumn verifies port+slot combination: numeric
// slots take the decimal form, letter slots the letter form.
func TestResolve_CSVWithSlotColumn(t *testing.T) {
	path := writeCSV(t, "ports.csv", "port,slot\n1,A\n2,B\n3,01\n4,12\n")

	set, _, err := Resolve(path, nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"1A", "2B", "3A", "4L"}, set.Strings())
}

// TestResolve_CSVDefaultSlotAggregated verifies rows without a slot default
// to slot 1 and contribute to one aggregated warning, never one per row.
func TestResolve_CSVDefaultSlotAggregated(t *testing.T) {
	path := writeCSV(t, "ports.csv", "port,slot\n1,\n2,\n3,B\n")

	set, warnings, err := Resolve(path, nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"1A", "2A", "3B"}, set.Strings())
	require.Len(t, warnings, 1)
	assert.Equal(t, DefaultSlotAssumed, warnings[0].Kind)
	assert.Equal(t, 2, warnings[0].Count)
}

// TestResolve_CSVSkipsBlankRows verifies rows with an empty port cell are
// skipped rather than treated as errors.
func TestResolve_CSVSkipsBlankRows(t *testing.T) {
	path := writeCSV(t, "ports.csv", "port\n1A\n\n2B\n")

	set, _, err := Resolve(path, nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"1A", "2B"}, set.Strings())
}

// TestResolve_CSVDedup verifies file rows deduplicate like inline specs.
func TestResolve_CSVDedup(t *testing.T) {
	path := writeCSV(t, "ports.csv", "port\n1A\n1.01\n1B\n")

	set, _, err := Resolve(path, nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"1A", "1B"}, set.Strings())
}

// TestResolve_CSVInvalidRow verifies a malformed row fails with its
// 1-based line number.
func TestResolve_CSVInvalidRow(t *testing.T) {
	path := writeCSV(t, "ports.csv", "port\n1A\nnonsense\n")

	_, _, err := Resolve(path, nil)
	pe := expectKind(t, err, InvalidCSVRow)
	assert.Equal(t, 3, pe.Row)
}

// TestResolve_CSVBadSlotCell verifies a slot cell that is neither numeric
// nor a single letter fails with its row number.
func TestResolve_CSVBadSlotCell(t *testing.T) {
	path := writeCSV(t, "ports.csv", "port,slot\n1,A\n2,XY\n")

	_, _, err := Resolve(path, nil)
	pe := expectKind(t, err, InvalidCSVRow)
	assert.Equal(t, 3, pe.Row)
}

// TestResolve_CSVMissingPortColumn verifies the required header check.
func TestResolve_CSVMissingPortColumn(t *testing.T) {
	path := writeCSV(t, "ports.csv", "device,slot\nfoo,A\n")

	_, _, err := Resolve(path, nil)
	pe := expectKind(t, err, InvalidCSVRow)
	assert.Equal(t, 1, pe.Row)
}

// TestResolve_CSVFileNotFound verifies a .csv path that does not exist is
// FileNotFound, not a malformed inline token.
func TestResolve_CSVFileNotFound(t *testing.T) {
	_, _, err := Resolve("no/such/ports.csv", nil)
	expectKind(t, err, FileNotFound)
}

// TestResolve_CSVSniffWithoutExtension verifies an extensionless file is
// recognized by its header.
func TestResolve_CSVSniffWithoutExtension(t *testing.T) {
	path := writeCSV(t, "portlist", "port,slot\n1,A\n2,B\n")

	set, _, err := Resolve(path, nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"1A", "2B"}, set.Strings())
}

// TestIsCSVFile verifies detection never mistakes inline specs for paths.
func TestIsCSVFile(t *testing.T) {
	assert.True(t, isCSVFile("ports.csv"))
	assert.True(t, isCSVFile("Ports.CSV"))
	assert.False(t, isCSVFile("1A,2B"))
	assert.False(t, isCSVFile("1A-4A"))
	assert.False(t, isCSVFile("*"))
}
