package io

import (
	"bufio"
	"io"
	"strings"
)

// Rom is the instruction memory, one machine word per line.
type Rom struct {
	Lines []string
}

// Fetch returns the line at pc. Fetching outside of the image fails.
func (rc *Rom) Fetch(pc int32) (line string, ok bool) {
	if pc < 0 || int(pc) >= len(rc.Lines) {
		return
	}

	line = rc.Lines[pc]
	ok = true
	return
}

// Unmarshal loads an instruction image. Blank lines are kept, as each line
// is one instruction address.
func (rc *Rom) Unmarshal(r io.Reader) (err error) {
	rc.Lines = nil

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		rc.Lines = append(rc.Lines, strings.TrimRight(scanner.Text(), "\r"))
	}

	err = scanner.Err()
	return
}
