package cpu

import (
	"bufio"
	"fmt"
	"io"
	"iter"
)

// Opcode is a single assembled source line.
type Opcode struct {
	LineNo int      // Source line number.
	Ip     int      // Instruction address.
	Words  []string // Source tokens, label removed.
	Code   Code     // Encoded instruction.
}

// Program is an assembled instruction image and initial data image.
type Program struct {
	Opcodes []Opcode
	Data    []int32
}

// Debug finds the opcode at an instruction address.
func (prog *Program) Debug(ip int32) (opcode *Opcode, ok bool) {
	if prog == nil || ip < 0 || int(ip) >= len(prog.Opcodes) {
		return
	}

	opcode = &prog.Opcodes[ip]
	ok = opcode.Ip == int(ip)
	return
}

// Codes iterates over the instructions in address order.
func (prog *Program) Codes() iter.Seq2[int32, Code] {
	return func(yield func(ip int32, code Code) bool) {
		for _, op := range prog.Opcodes {
			if !yield(int32(op.Ip), op.Code) {
				return
			}
		}
	}
}

// Words iterates over the machine words in address order.
func (prog *Program) Words() iter.Seq[string] {
	return func(yield func(word string) bool) {
		for _, code := range prog.Codes() {
			if !yield(code.Word()) {
				return
			}
		}
	}
}

// WriteImage writes the instruction image, one word per line.
func (prog *Program) WriteImage(w io.Writer) (err error) {
	wr := bufio.NewWriter(w)
	defer func() {
		if err == nil {
			err = wr.Flush()
		}
	}()

	for word := range prog.Words() {
		_, err = fmt.Fprintln(wr, word)
		if err != nil {
			return
		}
	}

	return
}

// WriteData writes the initial data image, one 8 digit hex word per line.
func (prog *Program) WriteData(w io.Writer) (err error) {
	wr := bufio.NewWriter(w)
	defer func() {
		if err == nil {
			err = wr.Flush()
		}
	}()

	for _, value := range prog.Data {
		_, err = fmt.Fprintf(wr, "%08X\n", uint32(value))
		if err != nil {
			return
		}
	}

	return
}
