package cgen

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestRender(t *testing.T) {
	arms := []Arm{
		{Opcode: 0x00, Mnemonic: "LDA", Args: "IMMEDIATE(address)", Size: "2", Cycles: '2'},
		{Opcode: 0x01, Mnemonic: "JMP", Args: "address", Size: "3", Cycles: '3'},
	}

	want := strings.Join([]string{
		"void perform_instruction(uint8_t opcode, uint16_t address)",
		"{",
		"\tswitch (opcode) {",
		"\t\tcase 0x00:",
		"\t\t\tLDA(IMMEDIATE(address));",
		"\t\t\t/* size = 2; */",
		"\t\t\tcycles = 2;",
		"\t\t\tbreak;",
		"\t\tcase 0x01:",
		"\t\t\tJMP(address);",
		"\t\t\t/* size = 3; */",
		"\t\t\tcycles = 3;",
		"\t\t\tbreak;",
		"\t\tdefault:",
		"\t\t\tbreak;",
		"\t}",
		"}",
		"",
	}, "\n")

	if diff := cmp.Diff(want, Render(arms)); diff != "" {
		t.Errorf("Render mismatch (-want +got):\n%s", diff)
	}
}

func TestRenderArmCount(t *testing.T) {
	arms := make([]Arm, 40)
	for i := range arms {
		arms[i] = Arm{Opcode: i, Mnemonic: "NOP", Args: "address", Size: "1", Cycles: '2'}
	}

	out := Render(arms)
	if got := strings.Count(out, "\t\tcase 0x"); got != len(arms) {
		t.Errorf("got %d case arms, want %d", got, len(arms))
	}
	if got := strings.Count(out, "default:"); got != 1 {
		t.Errorf("got %d default arms, want 1", got)
	}
}

func TestRenderNoRecords(t *testing.T) {
	out := Render(nil)
	if !strings.Contains(out, "default:") {
		t.Errorf("empty table must still render the default arm:\n%s", out)
	}
	if strings.Contains(out, "case") {
		t.Errorf("empty table must render no case arm:\n%s", out)
	}
}

func TestRenderTwoHexDigits(t *testing.T) {
	out := Render([]Arm{{Opcode: 0x0A, Mnemonic: "ASL", Args: "address", Size: "1", Cycles: '2'}})
	if !strings.Contains(out, "case 0x0A:") {
		t.Errorf("opcode literal not zero-padded to two hex digits:\n%s", out)
	}
}
