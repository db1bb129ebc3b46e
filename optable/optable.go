// Package optable reads the declarative opcode table that drives dispatch
// code generation. One record per line, comma-separated fields:
//
//	mnemonic,operandPattern,addressingModeCode,size,cycles
//
// Lines starting with '#' are comments and do not consume an opcode slot.
package optable

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"dispatchgen/log"
)

// Pattern classifies how an instruction handler expects its arguments
// shaped, independently of the specific addressing mode in use.
//
//go:generate go tool stringer -type=Pattern
type Pattern int

const (
	// PatternResolved passes the address through the addressing mode
	// helper: MNEM(MODE(address)).
	PatternResolved Pattern = iota
	// PatternModeArg passes the raw address plus the mode helper itself:
	// MNEM(address, MODE).
	PatternModeArg
	// PatternRawAddr passes the raw address only: MNEM(address).
	PatternRawAddr
	// PatternIndexed passes both resolved and raw address plus a literal 1:
	// MNEM(MODE(address), address, 1).
	PatternIndexed
)

// Record is one row of the opcode table.
type Record struct {
	// Index is the opcode value derived from the record's zero-based
	// position among non-comment lines. It must match the instruction's
	// hardware encoding; the table carries no explicit opcode column.
	Index int

	// Line is the 1-based source line, kept for error reporting.
	Line int

	Mnemonic string
	Pattern  Pattern
	ModeCode int

	// Size is the instruction encoding length in bytes. Emitted verbatim
	// as an annotation, never interpreted.
	Size string

	// Cycles is the raw cycle-count field. Only its first byte is emitted;
	// suffix markers like "*" are carried here untouched so that callers
	// can still see them.
	Cycles string
}

// Table is the parsed opcode table.
type Table struct {
	Records  []Record
	Comments int
}

// MalformedRecordError reports a structurally invalid table line.
type MalformedRecordError struct {
	Line   int
	Text   string
	Reason string
}

func (e *MalformedRecordError) Error() string {
	return fmt.Sprintf("line %d: malformed record %q: %s", e.Line, e.Text, e.Reason)
}

// ParseTable reads the opcode table in one pass. Each record is paired with
// its derived opcode index as it is parsed: comment lines bump no counter.
// The first malformed line aborts the parse.
func ParseTable(r io.Reader) (Table, error) {
	var t Table

	sc := bufio.NewScanner(r)
	lineno := 0
	for sc.Scan() {
		lineno++
		line := sc.Text()
		if strings.HasPrefix(line, "#") {
			t.Comments++
			continue
		}

		rec, err := parseRecord(lineno, line)
		if err != nil {
			return Table{}, err
		}
		rec.Index = len(t.Records)
		t.Records = append(t.Records, rec)
	}
	if err := sc.Err(); err != nil {
		return Table{}, fmt.Errorf("reading opcode table: %w", err)
	}

	log.ModTable.Debugf("parsed %d records, skipped %d comment lines", len(t.Records), t.Comments)
	return t, nil
}

func parseRecord(lineno int, line string) (Record, error) {
	malformed := func(format string, args ...any) error {
		return &MalformedRecordError{
			Line:   lineno,
			Text:   line,
			Reason: fmt.Sprintf(format, args...),
		}
	}

	fields := strings.Split(line, ",")
	if len(fields) < 5 {
		return Record{}, malformed("got %d fields, want at least 5", len(fields))
	}
	for i := range fields {
		fields[i] = strings.TrimSpace(fields[i])
	}

	pat, err := strconv.Atoi(fields[1])
	if err != nil {
		return Record{}, malformed("operand pattern %q is not a number", fields[1])
	}
	mode, err := strconv.Atoi(fields[2])
	if err != nil {
		return Record{}, malformed("addressing mode code %q is not a number", fields[2])
	}
	if fields[4] == "" {
		return Record{}, malformed("empty cycle count")
	}

	return Record{
		Line:     lineno,
		Mnemonic: fields[0],
		Pattern:  Pattern(pat),
		ModeCode: mode,
		Size:     fields[3],
		Cycles:   fields[4],
	}, nil
}
