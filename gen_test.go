package main

import (
	"os"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"dispatchgen/cgen"
)

func TestGenerateGolden(t *testing.T) {
	tbl, err := readTable("testdata/opcode")
	if err != nil {
		t.Fatal(err)
	}

	src, err := cgen.Generate(tbl.Records)
	if err != nil {
		t.Fatal(err)
	}

	want, err := os.ReadFile("testdata/perform_instruction.c")
	if err != nil {
		t.Fatal(err)
	}

	if diff := cmp.Diff(string(want), src); diff != "" {
		t.Errorf("perform_instruction.c mismatch (-want +got):\n%s", diff)
	}
}

func TestGenerateFirstArms(t *testing.T) {
	const table = `# header comment
LDA,0,10,2,2
JMP,2,3,3,3
`
	tmp := t.TempDir() + "/opcode"
	if err := os.WriteFile(tmp, []byte(table), 0644); err != nil {
		t.Fatal(err)
	}

	tbl, err := readTable(tmp)
	if err != nil {
		t.Fatal(err)
	}
	src, err := cgen.Generate(tbl.Records)
	if err != nil {
		t.Fatal(err)
	}

	for _, want := range []string{
		"\t\tcase 0x00:\n\t\t\tLDA(IMMEDIATE(address));\n\t\t\t/* size = 2; */\n\t\t\tcycles = 2;\n\t\t\tbreak;\n",
		"\t\tcase 0x01:\n\t\t\tJMP(address);\n\t\t\t/* size = 3; */\n\t\t\tcycles = 3;\n\t\t\tbreak;\n",
	} {
		if !strings.Contains(src, want) {
			t.Errorf("generated code missing arm:\n%s\n\nfull output:\n%s", want, src)
		}
	}
}

func TestGenerateAbortsBeforeOutput(t *testing.T) {
	// Mode code 11 is out of range: the whole run must fail, with no arms
	// emitted in a partial state.
	tmp := t.TempDir() + "/opcode"
	if err := os.WriteFile(tmp, []byte("LDA,0,11,2,2\n"), 0644); err != nil {
		t.Fatal(err)
	}

	tbl, err := readTable(tmp)
	if err != nil {
		t.Fatal(err)
	}
	src, err := cgen.Generate(tbl.Records)
	if err == nil {
		t.Fatal("want error, got nil")
	}
	if src != "" {
		t.Errorf("got partial output alongside an error:\n%s", src)
	}
}
