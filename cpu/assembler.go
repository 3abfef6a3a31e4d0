// Copyright 2024, Jason S. McMullan <jason.mcmullan@gmail.com>

package cpu

import (
	"bufio"
	"fmt"
	"io"
	"log"
	"slices"
	"strings"

	"github.com/k0kubun/pp/v3"
	"go.starlark.net/starlark"
	"go.starlark.net/syntax"

	"github.com/ezrec/simp/internal"
)

// LineKind classifies an assembly source token.
type LineKind int

//go:generate go tool stringer -linecomment -type=LineKind
const (
	LINE_EMPTY = LineKind(0) // empty
	LINE_CODE  = LineKind(1) // code
	LINE_DATA  = LineKind(2) // data
	LINE_LABEL = LineKind(3) // label
)

// FIELD_COUNT is the most tokens an instruction line carries.
const FIELD_COUNT = 7

// Token separators.
const separators = " \t\r\n,"

// Predefined expression constants
var sysEquate = map[string]int{
	"IMEM_DEPTH": IMEM_DEPTH,
	"DMEM_DEPTH": DMEM_DEPTH,
	"PC_MASK":    PC_MASK,
}

// opcodeMap maps mnemonics to operations.
var opcodeMap = func() (codes map[string]CodeOp) {
	codes = make(map[string]CodeOp, OP_COUNT)
	for op := range CodeOp(OP_COUNT) {
		codes[op.String()] = op
	}
	return
}()

// regMap maps register names to selectors.
var regMap = func() (regs map[string]CodeReg) {
	regs = make(map[string]CodeReg, REG_COUNT)
	for reg := range CodeReg(REG_COUNT) {
		regs[reg.String()] = reg
	}
	return
}()

// Assembler is a two pass assembler for the SIMP system.
type Assembler struct {
	Verbose  bool       // If set, verbosely logs the assembler actions.
	Label    LabelTable // Labels found by the first pass.
	Opcode   []Opcode   // List of generated opcodes.
	Warnings []error    // Diagnostics for input that assembled anyway.

	data      [DMEM_DEPTH]int32 // Initial data memory image.
	dataDepth int               // Highest data address written, plus one.

	lineNo int    // Line being assembled.
	line   string // Text of the line being assembled.
}

// tokenize splits a line into tokens.
func tokenize(line string) []string {
	return strings.FieldsFunc(line, func(r rune) bool {
		return strings.ContainsRune(separators, r)
	})
}

// classify returns the kind of line that starts with token.
func classify(token string) LineKind {
	switch {
	case len(token) == 0 || token[0] == '#':
		return LINE_EMPTY
	case token[0] == '.':
		return LINE_DATA
	case strings.ContainsRune(token, ':'):
		return LINE_LABEL
	}

	return LINE_CODE
}

// labelOf returns the label defined by the first token of a line. The scan
// stops at a comment character.
func labelOf(token string) (label string, ok bool) {
	for n, ch := range token {
		switch ch {
		case '#':
			return
		case ':':
			label = token[:n]
			ok = true
			return
		}
	}

	return
}

// warn records a diagnostic for the current line.
func (asm *Assembler) warn(err error) {
	err = ErrSyntax{LineNo: asm.lineNo, Line: asm.line, Err: err}
	if asm.Verbose {
		log.Printf("warning: %v", err)
	}
	asm.Warnings = append(asm.Warnings, err)
}

// Reset clears all assembler state.
func (asm *Assembler) Reset() {
	asm.Label.Reset()
	asm.Opcode = asm.Opcode[:0]
	asm.Warnings = nil
	clear(asm.data[:])
	asm.dataDepth = 0
	asm.lineNo = 0
	asm.line = ""
}

// FirstPass records the address of every label in the source lines.
//
// A label line only consumes an address when the token following the label
// is an instruction.
func (asm *Assembler) FirstPass(lines []string) {
	var ip int

	for n, line := range lines {
		asm.lineNo = n + 1
		asm.line = line

		tokens := tokenize(line)
		if len(tokens) == 0 || tokens[0][0] == '#' || tokens[0][0] == '.' {
			continue
		}

		advance := 1
		label, ok := labelOf(tokens[0])
		if ok {
			err := asm.Label.Define(label, ip, asm.lineNo)
			if err != nil {
				asm.warn(fmt.Errorf("%w: %v", err, label))
			}
			var next string
			if len(tokens) > 1 {
				next = tokens[1]
			}
			if classify(next) != LINE_CODE {
				advance = 0
			}
		}

		ip += advance
	}

	if asm.Verbose {
		log.Printf("labels: %d %v", asm.Label.Len(), pp.Sprint(asm.Label.Labels()))
	}
}

// SecondPass emits instructions and data memory entries. Labels must have
// been collected by FirstPass.
func (asm *Assembler) SecondPass(lines []string) (err error) {
	defer func() {
		if err != nil {
			err = ErrSyntax{LineNo: asm.lineNo, Line: asm.line, Err: err}
		}
	}()

	for n, line := range lines {
		asm.lineNo = n + 1
		asm.line = line

		if asm.Verbose {
			log.Printf("%v: %v", asm.lineNo, line)
		}

		tokens := tokenize(line)
		kind := LINE_EMPTY
		if len(tokens) > 0 {
			kind = classify(tokens[0])
		}

		if kind == LINE_LABEL {
			tokens = tokens[1:]
			kind = LINE_EMPTY
			if len(tokens) > 0 {
				kind = classify(tokens[0])
			}
		}

		if len(tokens) > FIELD_COUNT {
			tokens = tokens[:FIELD_COUNT]
		}

		switch kind {
		case LINE_CODE:
			err = asm.parseCode(tokens)
		case LINE_DATA:
			err = asm.parseData(tokens)
		default:
			// Nothing emitted.
		}
		if err != nil {
			return
		}
	}

	return
}

// Parse parses an input stream into a Program.
func (asm *Assembler) Parse(input io.Reader) (prog *Program, err error) {
	var lines []string

	scanner := bufio.NewScanner(input)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	err = scanner.Err()
	if err != nil {
		return
	}

	asm.Reset()

	asm.FirstPass(lines)

	err = asm.SecondPass(lines)
	if err != nil {
		return
	}

	prog = asm.Program()

	return
}

// Program returns the assembled program.
func (asm *Assembler) Program() (prog *Program) {
	prog = &Program{
		Opcodes: slices.Clone(asm.Opcode),
		Data:    slices.Clone(asm.data[:asm.dataDepth]),
	}

	return
}

// field returns a token, or the empty string if the line is short. A token
// that starts a comment ends the fields.
func field(tokens []string, index int) (token string, ok bool) {
	for n, token := range tokens {
		if len(token) > 0 && token[0] == '#' {
			return "", false
		}
		if n == index {
			return token, true
		}
	}

	return
}

// parseReg parses a register field.
func (asm *Assembler) parseReg(tokens []string, index int) (reg CodeReg) {
	word, ok := field(tokens, index)
	if !ok {
		asm.warn(fmt.Errorf("%w: %v", ErrFieldMissing, index))
		return unknown
	}

	reg, ok = regMap[word]
	if !ok {
		asm.warn(fmt.Errorf("%w: %v", ErrRegisterUnknown, word))
		return unknown
	}

	return
}

// parseImm parses an immediate field.
func (asm *Assembler) parseImm(tokens []string, index int) (value int32, err error) {
	word, ok := field(tokens, index)
	if !ok {
		asm.warn(fmt.Errorf("%w: %v", ErrFieldMissing, index))
		return
	}

	value, err = asm.valueOf(word)
	return
}

// valueOf returns the value of an immediate word.
func (asm *Assembler) valueOf(word string) (value int32, err error) {
	switch {
	case len(word) == 0:
		return
	case isAlpha(word[0]):
		ip, ok := asm.Label.Lookup(word)
		if !ok {
			asm.warn(ErrLabelMissing(word))
			value = unknown
			return
		}
		value = int32(ip)
	case strings.HasPrefix(word, "$(") && strings.HasSuffix(word, ")"):
		value, err = asm.parenEval(word[2 : len(word)-1])
	case len(word) > 1 && word[0] == '0' && (word[1] == 'x' || word[1] == 'X'):
		v64, _ := internal.Strtol(word, 16)
		value = int32(v64)
	default:
		value = internal.Atoi(word)
	}

	return
}

// isAlpha is true for ASCII letters.
func isAlpha(ch byte) bool {
	return (ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z')
}

// parenEval does compile-time $(...) evaluations. Labels are predeclared.
func (asm *Assembler) parenEval(expr string) (value int32, err error) {
	thread := starlark.Thread{Name: "asm"}
	opts := syntax.FileOptions{}
	pred := starlark.StringDict{
		"LINENO": starlark.MakeInt(asm.lineNo),
	}
	for key, val := range sysEquate {
		pred[key] = starlark.MakeInt(val)
	}
	for key, ip := range asm.Label.All() {
		pred[key] = starlark.MakeInt(ip)
	}

	prog := "rc=" + expr + "\n"
	dict, _err := starlark.ExecFileOptions(&opts, &thread, "expr", prog, pred)
	if _err != nil {
		err = fmt.Errorf("%w: %w", ErrParseExpression(expr), _err)
		return
	}
	st_int, ok := dict["rc"].(starlark.Int)
	if !ok {
		err = ErrParseExpression(expr)
		return
	}
	st_int64, ok := st_int.Int64()
	if !ok {
		err = ErrParseExpression(expr)
		return
	}
	value = int32(st_int64)
	return
}

// parseCode parses an instruction line.
func (asm *Assembler) parseCode(tokens []string) (err error) {
	if len(asm.Opcode) >= IMEM_DEPTH {
		err = ErrInstructionRange
		return
	}

	op, ok := opcodeMap[tokens[0]]
	if !ok {
		asm.warn(fmt.Errorf("%w: %v", ErrOpcodeUnknown, tokens[0]))
		op = unknown
	}

	code := Code{
		Op: op,
		Rd: asm.parseReg(tokens, 1),
		Rs: asm.parseReg(tokens, 2),
		Rt: asm.parseReg(tokens, 3),
		Rm: asm.parseReg(tokens, 4),
	}

	code.Imm1, err = asm.parseImm(tokens, 5)
	if err != nil {
		return
	}
	code.Imm2, err = asm.parseImm(tokens, 6)
	if err != nil {
		return
	}

	opcode := Opcode{
		LineNo: asm.lineNo,
		Ip:     len(asm.Opcode),
		Words:  slices.Clone(tokens),
		Code:   code,
	}
	asm.Opcode = append(asm.Opcode, opcode)

	return
}

// parseData parses a data memory directive: .word ADDRESS DATA
func (asm *Assembler) parseData(tokens []string) (err error) {
	var values [2]int32
	for n := range values {
		word, ok := field(tokens, n+1)
		if !ok {
			asm.warn(fmt.Errorf("%w: %v", ErrFieldMissing, n+1))
			continue
		}
		v64, _ := internal.Strtol(word, 0)
		values[n] = int32(v64)
	}

	address, data := values[0], values[1]
	if address < 0 || address >= DMEM_DEPTH {
		err = fmt.Errorf("%w: %v", ErrAddressRange, address)
		return
	}

	asm.data[address] = data
	asm.dataDepth = max(asm.dataDepth, int(address)+1)

	return
}
