package io

import (
	"fmt"
	"io"
)

// Tape is a sequential text log. A tape without an output discards what is
// written to it.
type Tape struct {
	Output io.Writer

	Lines int // Records written.
}

// Rewind restarts the record count.
func (tc *Tape) Rewind() {
	tc.Lines = 0
}

// Printf writes a record.
func (tc *Tape) Printf(format string, args ...any) (err error) {
	if tc == nil || tc.Output == nil {
		return
	}

	_, err = fmt.Fprintf(tc.Output, format, args...)
	if err != nil {
		return
	}

	tc.Lines++
	return
}

// Record writes a cycle stamped value.
func (tc *Tape) Record(cycle int32, value int32) (err error) {
	return tc.Printf("%d %08X\n", cycle, uint32(value))
}
