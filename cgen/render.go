package cgen

import (
	"fmt"
	"strings"
)

// Render lays out the dispatch arms as the complete text of the C dispatch
// function. Layout only: arm content is fixed by Build. Tab indentation and
// two-hex-digit opcode literals are part of the output contract.
func Render(arms []Arm) string {
	var sb strings.Builder

	sb.WriteString("void perform_instruction(uint8_t opcode, uint16_t address)\n")
	sb.WriteString("{\n")
	sb.WriteString("\tswitch (opcode) {\n")

	for _, a := range arms {
		fmt.Fprintf(&sb, "\t\tcase 0x%02X:\n", a.Opcode)
		fmt.Fprintf(&sb, "\t\t\t%s(%s);\n", a.Mnemonic, a.Args)
		fmt.Fprintf(&sb, "\t\t\t/* size = %s; */\n", a.Size)
		fmt.Fprintf(&sb, "\t\t\tcycles = %c;\n", a.Cycles)
		sb.WriteString("\t\t\tbreak;\n")
	}

	sb.WriteString("\t\tdefault:\n")
	sb.WriteString("\t\t\tbreak;\n")
	sb.WriteString("\t}\n")
	sb.WriteString("}\n")

	return sb.String()
}
