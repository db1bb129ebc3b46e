package main

import (
	"io"
	"os"

	"dispatchgen/cgen"
	"dispatchgen/log"
	"dispatchgen/optable"
)

// readTable opens and parses the opcode table. The file is held open only
// for the duration of the parse.
func readTable(path string) (optable.Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return optable.Table{}, err
	}
	defer f.Close()

	return optable.ParseTable(f)
}

func runGen(cmd Gen, cfg Config) {
	path := cmd.Table
	if path == "" {
		path = cfg.Table.Path
	}

	tbl, err := readTable(path)
	checkf(err, "failed to read opcode table %s", path)

	src, err := cgen.Generate(tbl.Records)
	checkf(err, "failed to generate dispatch function")

	var w io.Writer = os.Stdout
	switch {
	case cmd.Out != nil:
		w = cmd.Out
		defer cmd.Out.Close()
	case cfg.Output.Path != "":
		f, err := os.Create(cfg.Output.Path)
		checkf(err, "failed to create output file %s", cfg.Output.Path)
		defer f.Close()
		w = f
	}

	// The whole function text goes out in one write: either generation
	// fully succeeded above, or nothing is emitted at all.
	_, err = io.WriteString(w, src)
	checkf(err, "failed to write generated code")

	log.ModGen.Debugf("emitted dispatch function for %d opcodes", len(tbl.Records))
}
