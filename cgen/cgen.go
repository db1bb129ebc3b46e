// Package cgen turns a parsed opcode table into the C source text of the
// perform_instruction dispatch function. Building the arm descriptors and
// rendering them to text are two separate steps.
package cgen

import (
	"fmt"

	"dispatchgen/log"
	"dispatchgen/optable"
)

// Arm describes one case of the dispatch switch, content only, no layout.
type Arm struct {
	Opcode   int
	Mnemonic string

	// Args is the argument list of the handler call, shaped according to
	// the record's operand pattern.
	Args string

	// Size is emitted as a comment, verbatim from the table.
	Size string

	// Cycles is the base cycle count: the first byte of the table's cycles
	// field. Suffix markers (e.g. "*" for page-cross penalties) are
	// intentionally dropped; the hand-written handlers account for them.
	Cycles byte
}

// UnsupportedPatternError reports an operand pattern outside {0,1,2,3}.
type UnsupportedPatternError struct {
	Line     int
	Mnemonic string
	Pattern  optable.Pattern
}

func (e *UnsupportedPatternError) Error() string {
	return fmt.Sprintf("line %d: %s: unsupported operand pattern %d", e.Line, e.Mnemonic, e.Pattern)
}

// Build converts records into dispatch arms, in table order. Any record
// with an out-of-range operand pattern, or an out-of-range addressing mode
// code under a pattern that needs one, fails the whole build.
func Build(recs []optable.Record) ([]Arm, error) {
	arms := make([]Arm, 0, len(recs))
	for _, rec := range recs {
		args, err := callArgs(rec)
		if err != nil {
			return nil, err
		}
		arms = append(arms, Arm{
			Opcode:   rec.Index,
			Mnemonic: rec.Mnemonic,
			Args:     args,
			Size:     rec.Size,
			Cycles:   rec.Cycles[0],
		})
	}

	log.ModGen.Debugf("built %d dispatch arms", len(arms))
	return arms, nil
}

// callArgs shapes the handler call arguments for one record. The addressing
// mode code is resolved only under the patterns that name a mode; pattern 2
// never consults the mode table, whatever the code column holds.
func callArgs(rec optable.Record) (string, error) {
	mode := func() (optable.AddrMode, error) {
		m, err := optable.ModeByCode(rec.ModeCode)
		if err != nil {
			return 0, fmt.Errorf("line %d: %s: %w", rec.Line, rec.Mnemonic, err)
		}
		return m, nil
	}

	switch rec.Pattern {
	case optable.PatternResolved:
		m, err := mode()
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("%s(address)", m), nil
	case optable.PatternModeArg:
		m, err := mode()
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("address, %s", m), nil
	case optable.PatternRawAddr:
		return "address", nil
	case optable.PatternIndexed:
		m, err := mode()
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("%s(address), address, 1", m), nil
	}

	return "", &UnsupportedPatternError{
		Line:     rec.Line,
		Mnemonic: rec.Mnemonic,
		Pattern:  rec.Pattern,
	}
}

// Generate is the whole emission pass: records in, function text out.
func Generate(recs []optable.Record) (string, error) {
	arms, err := Build(recs)
	if err != nil {
		return "", err
	}
	return Render(arms), nil
}
