package io

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/ezrec/simp/internal"
)

const MEMORY_DEPTH = 4096 // Data memory depth, in words.

// hexLine parses an image line, which holds one hex word. Text after a line
// terminator or tab is ignored; empty lines have no value.
func hexLine(text string) (value int32, ok bool) {
	if n := strings.IndexAny(text, "\r\n\t"); n >= 0 {
		text = text[:n]
	}
	if len(text) == 0 {
		return
	}

	v64, _ := internal.Strtol(text, 16)
	value = int32(v64)
	ok = true
	return
}

// Memory is the data memory.
type Memory struct {
	Data  [MEMORY_DEPTH]int32
	Depth int // Highest address written, plus one.
}

// Reset clears the memory.
func (mem *Memory) Reset() {
	clear(mem.Data[:])
	mem.Depth = 0
}

// Load reads a word.
func (mem *Memory) Load(addr int32) (value int32, err error) {
	if addr < 0 || addr >= MEMORY_DEPTH {
		err = ErrMemoryRange(addr)
		return
	}

	value = mem.Data[addr]
	return
}

// Store writes a word.
func (mem *Memory) Store(addr int32, value int32) (err error) {
	if addr < 0 || addr >= MEMORY_DEPTH {
		err = ErrMemoryRange(addr)
		return
	}

	mem.Data[addr] = value
	mem.Depth = max(mem.Depth, int(addr)+1)
	return
}

// Read copies words from memory, starting at addr.
func (mem *Memory) Read(addr int32, words []int32) (err error) {
	if addr < 0 || int(addr)+len(words) > MEMORY_DEPTH {
		err = ErrMemoryRange(addr)
		return
	}

	copy(words, mem.Data[addr:])
	return
}

// Write copies words to memory, starting at addr.
func (mem *Memory) Write(addr int32, words []int32) (err error) {
	if addr < 0 || int(addr)+len(words) > MEMORY_DEPTH {
		err = ErrMemoryRange(addr)
		return
	}

	copy(mem.Data[addr:], words)
	mem.Depth = max(mem.Depth, int(addr)+len(words))
	return
}

// Unmarshal loads a memory image, one hex word per line. Blank lines are
// skipped.
func (mem *Memory) Unmarshal(r io.Reader) (err error) {
	mem.Reset()

	var lineno int
	defer func() {
		if err != nil {
			err = &ErrLine{LineNo: lineno, Err: err}
		}
	}()

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		lineno++
		value, ok := hexLine(scanner.Text())
		if !ok {
			continue
		}
		if mem.Depth >= MEMORY_DEPTH {
			err = ErrImageTooLarge
			return
		}
		mem.Data[mem.Depth] = value
		mem.Depth++
	}

	err = scanner.Err()
	return
}

// Marshal dumps the memory up to its depth, one hex word per line.
func (mem *Memory) Marshal(w io.Writer) (err error) {
	wr := bufio.NewWriter(w)
	defer func() {
		if err == nil {
			err = wr.Flush()
		}
	}()

	for _, value := range mem.Data[:mem.Depth] {
		_, err = fmt.Fprintf(wr, "%08X\n", uint32(value))
		if err != nil {
			return
		}
	}

	return
}
