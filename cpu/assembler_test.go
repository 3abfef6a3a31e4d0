// Copyright 2024, Jason S. McMullan <jason.mcmullan@gmail.com>

package cpu

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func assemble(t *testing.T, program []string) (asm *Assembler, prog *Program) {
	asm = &Assembler{}

	prog, err := asm.Parse(strings.NewReader(strings.Join(program, "\n")))
	if err != nil {
		t.Fatal(err)
	}

	return
}

func progWords(prog *Program) (words []string) {
	for word := range prog.Words() {
		words = append(words, word)
	}
	return
}

func TestAssembler(t *testing.T) {
	assert := assert.New(t)

	asm := &Assembler{}

	prog, err := asm.Parse(strings.NewReader(""))
	assert.NoError(err)
	assert.Equal(0, len(prog.Opcodes))
	assert.Equal(0, len(prog.Data))
	assert.Equal(0, asm.Label.Len())
	assert.Equal(0, len(asm.Warnings))
}

func TestAssemblerMain(t *testing.T) {
	assert := assert.New(t)

	asm, prog := assemble(t, []string{"main: add $v0,$zero,$zero,$zero"})

	assert.Equal([]string{"003000000000"}, progWords(prog))

	ip, ok := asm.Label.Lookup("main")
	assert.True(ok)
	assert.Equal(0, ip)

	// Both immediates are missing.
	assert.Equal(2, len(asm.Warnings))
	for _, warn := range asm.Warnings {
		assert.ErrorIs(warn, ErrFieldMissing)
	}

	expected := []Opcode{
		{1, 0, []string{"add", "$v0", "$zero", "$zero", "$zero"}, MakeCode(OP_ADD, REG_V0, REG_ZERO, REG_ZERO, REG_ZERO, 0, 0)},
	}
	assert.Equal(expected, prog.Opcodes)
}

func TestAssemblerLabels(t *testing.T) {
	assert := assert.New(t)

	program := []string{
		"# count down from five",
		"start:",
		"\tadd $t0, $zero, $imm1, $zero, 5, 0",
		"loop: sub $t0, $t0, $imm1, $zero, 1, 0",
		"\tbne $zero, $t0, $zero, $imm1, loop, 0",
		"\t.word 0x100 7",
		"end: halt $zero, $zero, $zero, $zero, 0, 0",
	}

	asm, prog := assemble(t, program)
	assert.Equal(0, len(asm.Warnings))

	labels := []Label{
		{"start", 0, 2},
		{"loop", 1, 4},
		{"end", 3, 7},
	}
	assert.Equal(labels, asm.Label.Labels())

	assert.Equal([]string{
		"007010005000",
		"017710001000",
		"0A0701001000",
		"150000000000",
	}, progWords(prog))

	assert.Equal(MakeCode(OP_ADD, REG_T0, REG_ZERO, REG_IMM1, REG_ZERO, 5, 0), prog.Opcodes[0].Code)
	assert.Equal(MakeCode(OP_SUB, REG_T0, REG_T0, REG_IMM1, REG_ZERO, 1, 0), prog.Opcodes[1].Code)
	assert.Equal(5, prog.Opcodes[2].LineNo)
	assert.Equal(3, prog.Opcodes[3].Ip)

	assert.Equal(257, len(prog.Data))
	assert.Equal(int32(7), prog.Data[256])
	assert.Equal(int32(0), prog.Data[255])
}

func TestAssemblerLabelQuirks(t *testing.T) {
	assert := assert.New(t)

	program := []string{
		"a: b: add $v0, $zero, $zero, $zero, 0, 0", // nothing emitted
		"c: .word 1 2", // data only
		"d: # comment", // label only
		"e: add $v0, $zero, $zero, $zero, 0, 0",
		"f:add $v0, $zero, $zero, $zero, 0, 0", // label token swallows the opcode
		"g#: add $v0, $zero, $zero, $zero, 0, 0",
	}

	asm, prog := assemble(t, program)

	for _, name := range []string{"a", "c", "d", "e"} {
		ip, ok := asm.Label.Lookup(name)
		assert.True(ok, name)
		assert.Equal(0, ip, name)
	}

	ip, ok := asm.Label.Lookup("f")
	assert.True(ok)
	assert.Equal(1, ip)

	// Never defined: it is not the first token, or follows a comment mark.
	_, ok = asm.Label.Lookup("b")
	assert.False(ok)
	_, ok = asm.Label.Lookup("g#")
	assert.False(ok)
	_, ok = asm.Label.Lookup("g")
	assert.False(ok)

	// e, then f whose opcode field reads '$v0', then the 'g#:' line with its
	// label token dropped.
	assert.Equal(3, len(prog.Opcodes))
	assert.Equal(OP_ADD, prog.Opcodes[0].Code.Op)
	assert.Equal(CodeOp(unknown), prog.Opcodes[1].Code.Op)
	assert.Equal(OP_ADD, prog.Opcodes[2].Code.Op)

	assert.Equal([]int32{0, 2}, prog.Data)
}

func TestAssemblerUnknown(t *testing.T) {
	assert := assert.New(t)

	asm, prog := assemble(t, []string{"foo $xx, $zero, $zero, $zero, 0, missing"})

	assert.Equal([]string{"FFF000000FFF"}, progWords(prog))
	assert.Equal(3, len(asm.Warnings))
	assert.ErrorIs(asm.Warnings[0], ErrOpcodeUnknown)
	assert.ErrorIs(asm.Warnings[1], ErrRegisterUnknown)

	var missing ErrLabelMissing
	assert.True(errors.As(asm.Warnings[2], &missing))
	assert.Equal(ErrLabelMissing("missing"), missing)

	var syntax ErrSyntax
	assert.True(errors.As(asm.Warnings[0], &syntax))
	assert.Equal(1, syntax.LineNo)
}

func TestAssemblerImmediates(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		imm   string
		value int32
	}){
		{"0", 0},
		{"17", 17},
		{"-3", -3},
		{"12abc", 12},
		{"+8", 8},
		{"0x7FF", 0x7ff},
		{"0XfFf", 0xfff},
		{"0x", 0},
		{"010", 10},
		{"#", 0},
		{"here", 2},
		{"$(3*4+1)", 13},
		{"$(here+2)", 4},
		{"$(DMEM_DEPTH-1)", 4095},
		{"$(LINENO)", 4},
	}

	for _, entry := range table {
		program := []string{
			"add $v0, $zero, $zero, $zero, 0, 0",
			"add $v0, $zero, $zero, $zero, 0, 0",
			"here:",
			"add $v0, $zero, $zero, $zero, " + entry.imm + ", 0",
		}
		_, prog := assemble(t, program)
		assert.Equal(entry.value, prog.Opcodes[2].Code.Imm1, entry.imm)
	}
}

func TestAssemblerExpressionError(t *testing.T) {
	assert := assert.New(t)

	asm := &Assembler{}

	program := []string{
		"add $v0, $zero, $zero, $zero, 0, 0",
		"add $v0, $zero, $zero, $zero, $(1+), 0",
	}

	_, err := asm.Parse(strings.NewReader(strings.Join(program, "\n")))

	var expr ErrParseExpression
	assert.True(errors.As(err, &expr))
	assert.Equal(ErrParseExpression("1+"), expr)

	var syntax ErrSyntax
	assert.True(errors.As(err, &syntax))
	assert.Equal(2, syntax.LineNo)
}

func TestAssemblerData(t *testing.T) {
	assert := assert.New(t)

	asm, prog := assemble(t, []string{
		".word 0x10 0x20",
		".word 010 -1",
		".word 3",
		".word 0x10 33",
	})

	assert.Equal(17, len(prog.Data))
	assert.Equal(int32(-1), prog.Data[8])
	assert.Equal(int32(33), prog.Data[16])
	assert.Equal(int32(0), prog.Data[3])
	assert.Equal(1, len(asm.Warnings))
	assert.ErrorIs(asm.Warnings[0], ErrFieldMissing)

	_, err := asm.Parse(strings.NewReader(".word 4096 1"))
	assert.ErrorIs(err, ErrAddressRange)

	_, err = asm.Parse(strings.NewReader(".word -1 1"))
	assert.ErrorIs(err, ErrAddressRange)
}

func TestAssemblerDuplicateLabel(t *testing.T) {
	assert := assert.New(t)

	asm, prog := assemble(t, []string{
		"x: add $v0, $zero, $zero, $zero, 0, 0",
		"x: sub $v0, $zero, $zero, $zero, 0, 0",
		"jal $ra, $zero, $zero, $imm1, x, 0",
	})

	ip, ok := asm.Label.Lookup("x")
	assert.True(ok)
	assert.Equal(0, ip)
	assert.Equal(1, len(asm.Warnings))
	assert.ErrorIs(asm.Warnings[0], ErrLabelDuplicate)
	assert.Equal(int32(0), prog.Opcodes[2].Code.Imm1)
}

func TestAssemblerFields(t *testing.T) {
	assert := assert.New(t)

	asm, prog := assemble(t, []string{
		"halt $zero, $zero, $zero, $zero # stop",
		"add $v0, $zero, $zero, $zero, 1, 2, 3, 4",
	})

	assert.Equal([]string{"150000000000", "003000001002"}, progWords(prog))
	assert.Equal(2, len(asm.Warnings))
	assert.Equal(FIELD_COUNT, len(prog.Opcodes[1].Words))
}

func TestAssemblerInstructionRange(t *testing.T) {
	assert := assert.New(t)

	program := make([]string, IMEM_DEPTH+1)
	for n := range program {
		program[n] = "add $zero, $zero, $zero, $zero, 0, 0"
	}

	asm := &Assembler{}
	_, err := asm.Parse(strings.NewReader(strings.Join(program, "\n")))
	assert.ErrorIs(err, ErrInstructionRange)

	_, err = asm.Parse(strings.NewReader(strings.Join(program[1:], "\n")))
	assert.NoError(err)
}
