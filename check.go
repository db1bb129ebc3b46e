package main

import (
	"fmt"
	"os"

	"github.com/davecgh/go-spew/spew"

	"dispatchgen/cgen"
)

// runCheck parses and validates the table exactly like gen would, but stops
// short of rendering any code.
func runCheck(cmd Check, cfg Config) {
	path := cmd.Table
	if path == "" {
		path = cfg.Table.Path
	}

	tbl, err := readTable(path)
	checkf(err, "failed to read opcode table %s", path)

	// Exercises every pattern and addressing mode code the table refers to.
	if _, err := cgen.Build(tbl.Records); err != nil {
		checkf(err, "invalid opcode table %s", path)
	}

	switch {
	case cmd.Dump:
		spew.Fdump(os.Stdout, tbl.Records)
	case cmd.JSON:
		os.Stdout.Write(recordsJSON(tbl))
	default:
		fmt.Printf("%s: ok, %d opcodes, %d comment lines\n", path, len(tbl.Records), tbl.Comments)
	}
}
