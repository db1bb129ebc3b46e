package optable

import (
	"fmt"
	"strconv"
)

// AddrMode is one of the 11 addressing modes the opcode table can refer to.
// The String form is the name of the addressing helper function in the
// emulator the generated code is destined for.
type AddrMode int

const (
	ZeroPage AddrMode = iota
	IndZeroPageX
	IndZeroPageY
	Absolute
	IndAbsoluteX
	IndAbsoluteY
	Indirect
	Relative
	IndexedIndirectX
	IndexedIndirectY
	Immediate

	numModes
)

var modeNames = [numModes]string{
	ZeroPage:         "ZERO_PAGE",
	IndZeroPageX:     "IND_ZERO_PAGE_X",
	IndZeroPageY:     "IND_ZERO_PAGE_Y",
	Absolute:         "ABSOLUTE",
	IndAbsoluteX:     "IND_ABSOLUTE_X",
	IndAbsoluteY:     "IND_ABSOLUTE_Y",
	Indirect:         "INDIRECT",
	Relative:         "RELATIVE",
	IndexedIndirectX: "INDEXED_INDIRECT_X",
	IndexedIndirectY: "INDEXED_INDIRECT_Y",
	Immediate:        "IMMEDIATE",
}

func (m AddrMode) String() string {
	if m < 0 || m >= numModes {
		return "AddrMode(" + strconv.Itoa(int(m)) + ")"
	}
	return modeNames[m]
}

// UnknownAddrModeError reports an addressing mode code outside [0,10].
type UnknownAddrModeError struct {
	Code int
}

func (e *UnknownAddrModeError) Error() string {
	return fmt.Sprintf("unknown addressing mode code %d (valid codes are 0-%d)", e.Code, numModes-1)
}

// ModeByCode resolves a table addressing mode code into an AddrMode.
// Out-of-range codes are rejected, never defaulted.
func ModeByCode(code int) (AddrMode, error) {
	if code < 0 || code >= int(numModes) {
		return 0, &UnknownAddrModeError{Code: code}
	}
	return AddrMode(code), nil
}
