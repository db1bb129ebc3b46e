package main

import (
	"encoding/json"
	"testing"

	"github.com/google/go-cmp/cmp"

	"dispatchgen/optable"
)

func TestRecordsJSON(t *testing.T) {
	tbl := optable.Table{
		Records: []optable.Record{
			{Index: 0, Line: 1, Mnemonic: "LDA", Pattern: optable.PatternResolved, ModeCode: 10, Size: "2", Cycles: "2"},
			{Index: 1, Line: 2, Mnemonic: "ADC", Pattern: optable.PatternResolved, ModeCode: 5, Size: "3", Cycles: "4*"},
		},
	}

	var got []struct {
		Opcode   int    `json:"opcode"`
		Mnemonic string `json:"mnemonic"`
		Pattern  int    `json:"pattern"`
		Mode     int    `json:"mode"`
		Size     string `json:"size"`
		Cycles   string `json:"cycles"`
	}
	if err := json.Unmarshal(recordsJSON(tbl), &got); err != nil {
		t.Fatal(err)
	}

	if len(got) != 2 {
		t.Fatalf("got %d records, want 2", len(got))
	}
	if diff := cmp.Diff(got[1].Mnemonic, "ADC"); diff != "" {
		t.Errorf("mnemonic mismatch:\n%s", diff)
	}
	if got[0].Opcode != 0 || got[1].Opcode != 1 {
		t.Errorf("opcodes = %d, %d, want 0, 1", got[0].Opcode, got[1].Opcode)
	}
	if got[1].Cycles != "4*" {
		t.Errorf("cycles = %q, want %q (raw field, marker included)", got[1].Cycles, "4*")
	}
}
