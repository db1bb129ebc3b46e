package main

import (
	"github.com/go-faster/jx"

	"dispatchgen/optable"
)

// recordsJSON encodes the parsed table as a JSON array of records, one
// object per opcode, for consumption by other tooling.
func recordsJSON(tbl optable.Table) []byte {
	var e jx.Encoder
	e.SetIdent(2)

	e.ArrStart()
	for _, rec := range tbl.Records {
		e.ObjStart()
		e.FieldStart("opcode")
		e.Int(rec.Index)
		e.FieldStart("mnemonic")
		e.Str(rec.Mnemonic)
		e.FieldStart("pattern")
		e.Int(int(rec.Pattern))
		e.FieldStart("mode")
		e.Int(rec.ModeCode)
		e.FieldStart("size")
		e.Str(rec.Size)
		e.FieldStart("cycles")
		e.Str(rec.Cycles)
		e.ObjEnd()
	}
	e.ArrEnd()

	return append(e.Bytes(), '\n')
}
