package ports

import (
	"bufio"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// isCSVFile reports whether a port specification is a CSV port-file path
// rather than an inline fragment list. A ".csv" suffix always wins; for
// extensionless paths an existing file is sniffed for a header that
// mentions a port column. Inline specs never contain path separators or
// survive the sniff, so false positives stay theoretical.
func isCSVFile(spec string) bool {
	if strings.HasSuffix(strings.ToLower(spec), ".csv") {
		return true
	}

	f, err := os.Open(spec)
	if err != nil {
		return false
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil || info.IsDir() {
		return false
	}
	header, err := bufio.NewReader(f).ReadString('\n')
	if err != nil && err != io.EOF {
		return false
	}
	header = strings.TrimSpace(strings.ToLower(header))
	return strings.Contains(header, "port") &&
		(strings.Contains(header, ",") || len(strings.Fields(header)) <= 3)
}

// readCSVPorts reads a UTF-8, comma-delimited, header-row CSV port file.
//
// The header must contain a "port" column (case-insensitive) and may
// contain a "slot" column. A row with both combines them: a numeric slot
// becomes decimal form ("3" + "01" → 3.01), a letter slot becomes letter
// form ("1" + "A" → 1A). A row whose slot cell is empty or absent falls
// back to the port cell alone; if that cell is a bare board number the
// default slot 1 applies and counts toward the aggregated
// DefaultSlotAssumed warning. Blank port cells skip the row. Anything
// else is InvalidCSVRow with the offending 1-based line number.
func readCSVPorts(path string) (out []Port, assumed int, err error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, 0, &ParseError{
				Kind:    FileNotFound,
				Token:   path,
				Message: "CSV port file not found",
			}
		}
		return nil, 0, &ParseError{
			Kind:    FileNotFound,
			Token:   path,
			Message: fmt.Sprintf("cannot open CSV port file: %v", err),
		}
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.TrimLeadingSpace = true

	header, err := r.Read()
	if err == io.EOF {
		return nil, 0, &ParseError{Kind: InvalidCSVRow, Row: 1, Message: "CSV file is empty; expected a header row with a 'port' column"}
	}
	if err != nil {
		return nil, 0, csvRowError(err, "unreadable header row")
	}

	portCol, slotCol := -1, -1
	for i, name := range header {
		switch strings.ToLower(strings.TrimSpace(name)) {
		case "port":
			portCol = i
		case "slot":
			slotCol = i
		}
	}
	if portCol < 0 {
		return nil, 0, &ParseError{Kind: InvalidCSVRow, Row: 1, Message: "CSV file must contain a 'port' column"}
	}

	for row := 2; ; row++ {
		record, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, 0, csvRowError(err, "malformed CSV row")
		}

		portCell := strings.TrimSpace(record[portCol])
		if portCell == "" {
			continue
		}

		slotCell := ""
		if slotCol >= 0 && slotCol < len(record) {
			slotCell = strings.TrimSpace(record[slotCol])
		}

		token := portCell
		if slotCell != "" {
			combined, err := combinePortAndSlot(portCell, slotCell)
			if err != nil {
				return nil, 0, &ParseError{Kind: InvalidCSVRow, Row: row, Token: portCell + "," + slotCell, Message: err.Error()}
			}
			token = combined
		}

		p, wasAssumed, err := parseToken(token)
		if err != nil {
			var pe *ParseError
			msg := err.Error()
			if errors.As(err, &pe) {
				msg = pe.Message
			}
			return nil, 0, &ParseError{Kind: InvalidCSVRow, Row: row, Token: token, Message: msg}
		}
		if wasAssumed && slotCell == "" {
			assumed++
		}
		out = append(out, p)
	}

	if len(out) == 0 {
		return nil, 0, &ParseError{Kind: InvalidCSVRow, Row: 1, Message: "no ports found in CSV file"}
	}
	return out, assumed, nil
}

// combinePortAndSlot joins separate port and slot cells into one token in
// the matching surface form: numeric slots produce decimal form, single
// letters produce letter form.
func combinePortAndSlot(portCell, slotCell string) (string, error) {
	board, ok := parseDigits(portCell)
	if !ok {
		// The port cell already carries a slot ("1A" plus a slot column);
		// a second slot would be a conflicting address.
		return "", fmt.Errorf("port cell %q must be a bare board number when a slot is given", portCell)
	}

	if n, ok := parseDigits(slotCell); ok {
		return fmt.Sprintf("%d.%02d", board, n), nil
	}
	if len(slotCell) == 1 && isLetter(slotCell[0]) {
		return strconv.Itoa(board) + strings.ToUpper(slotCell), nil
	}
	return "", fmt.Errorf("slot cell %q must be a number or a single letter", slotCell)
}

// csvRowError converts an encoding/csv error into InvalidCSVRow, keeping
// the line number csv.ParseError tracks.
func csvRowError(err error, fallback string) *ParseError {
	var ce *csv.ParseError
	if errors.As(err, &ce) {
		return &ParseError{Kind: InvalidCSVRow, Row: ce.Line, Message: err.Error()}
	}
	return &ParseError{Kind: InvalidCSVRow, Row: 0, Message: fallback + ": " + err.Error()}
}
