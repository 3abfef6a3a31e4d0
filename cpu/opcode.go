package cpu

import (
	"fmt"
	"strings"

	"github.com/ezrec/simp/internal"
)

// CodeOp is an instruction operation.
type CodeOp int

//go:generate go tool stringer -linecomment -type=CodeOp
const (
	OP_ADD  = CodeOp(0)  // add
	OP_SUB  = CodeOp(1)  // sub
	OP_MAC  = CodeOp(2)  // mac
	OP_AND  = CodeOp(3)  // and
	OP_OR   = CodeOp(4)  // or
	OP_XOR  = CodeOp(5)  // xor
	OP_SLL  = CodeOp(6)  // sll
	OP_SRA  = CodeOp(7)  // sra
	OP_SRL  = CodeOp(8)  // srl
	OP_BEQ  = CodeOp(9)  // beq
	OP_BNE  = CodeOp(10) // bne
	OP_BLT  = CodeOp(11) // blt
	OP_BGT  = CodeOp(12) // bgt
	OP_BLE  = CodeOp(13) // ble
	OP_BGE  = CodeOp(14) // bge
	OP_JAL  = CodeOp(15) // jal
	OP_LW   = CodeOp(16) // lw
	OP_SW   = CodeOp(17) // sw
	OP_RETI = CodeOp(18) // reti
	OP_IN   = CodeOp(19) // in
	OP_OUT  = CodeOp(20) // out
	OP_HALT = CodeOp(21) // halt
)

// OP_COUNT is the number of defined operations.
const OP_COUNT = 22

// Valid returns true if op is a defined operation.
func (op CodeOp) Valid() bool {
	return op >= 0 && op < OP_COUNT
}

// IsBranch returns true for the conditional branches.
func (op CodeOp) IsBranch() bool {
	return op >= OP_BEQ && op <= OP_BGE
}

// CodeReg is a register selector.
type CodeReg int

//go:generate go tool stringer -linecomment -type=CodeReg
const (
	REG_ZERO = CodeReg(0)  // $zero
	REG_IMM1 = CodeReg(1)  // $imm1
	REG_IMM2 = CodeReg(2)  // $imm2
	REG_V0   = CodeReg(3)  // $v0
	REG_A0   = CodeReg(4)  // $a0
	REG_A1   = CodeReg(5)  // $a1
	REG_A2   = CodeReg(6)  // $a2
	REG_T0   = CodeReg(7)  // $t0
	REG_T1   = CodeReg(8)  // $t1
	REG_T2   = CodeReg(9)  // $t2
	REG_S0   = CodeReg(10) // $s0
	REG_S1   = CodeReg(11) // $s1
	REG_S2   = CodeReg(12) // $s2
	REG_GP   = CodeReg(13) // $gp
	REG_SP   = CodeReg(14) // $sp
	REG_RA   = CodeReg(15) // $ra
)

// Sentinel for names the assembler could not resolve. It encodes as an
// all-F field.
const unknown = -1

// Code is a single decoded instruction.
type Code struct {
	Op   CodeOp
	Rd   CodeReg
	Rs   CodeReg
	Rt   CodeReg
	Rm   CodeReg
	Imm1 int32
	Imm2 int32
}

// MakeCode creates an instruction.
func MakeCode(op CodeOp, rd, rs, rt, rm CodeReg, imm1, imm2 int32) Code {
	return Code{Op: op, Rd: rd, Rs: rs, Rt: rt, Rm: rm, Imm1: imm1, Imm2: imm2}
}

// Word returns the 12 hex digit machine word. Every field is masked to its
// width.
func (code Code) Word() string {
	return fmt.Sprintf("%02X%01X%01X%01X%01X%03X%03X",
		uint8(code.Op),
		uint8(code.Rd)&0xf, uint8(code.Rs)&0xf, uint8(code.Rt)&0xf, uint8(code.Rm)&0xf,
		uint32(code.Imm1)&IMM_MASK, uint32(code.Imm2)&IMM_MASK)
}

// signExtend sign extends a 12-bit immediate field.
func signExtend(value int32) int32 {
	if value >= IMM_SIGN {
		value -= 1 << IMM_BITS
	}
	return value
}

// hexField parses a fixed-width field, stopping at the first non-hex
// character.
func hexField(field string) int32 {
	value, _ := internal.Strtol(field, 16)
	return int32(value)
}

// DecodeCode decodes a machine word. Only the first 12 characters are
// examined; trailing text (line terminators) is ignored.
func DecodeCode(word string) (code Code, err error) {
	if len(word) < WORD_DIGITS {
		err = ErrDecodeShort(word)
		return
	}

	code = Code{
		Op:   CodeOp(hexField(word[0:2])),
		Rd:   CodeReg(hexField(word[2:3])),
		Rs:   CodeReg(hexField(word[3:4])),
		Rt:   CodeReg(hexField(word[4:5])),
		Rm:   CodeReg(hexField(word[5:6])),
		Imm1: signExtend(hexField(word[6:9])),
		Imm2: signExtend(hexField(word[9:12])),
	}

	return
}

// String returns the assembly language representation of this instruction.
func (code Code) String() string {
	words := []string{
		code.Rd.String(),
		code.Rs.String(),
		code.Rt.String(),
		code.Rm.String(),
		fmt.Sprintf("%d", code.Imm1),
		fmt.Sprintf("%d", code.Imm2),
	}

	return code.Op.String() + " " + strings.Join(words, ", ")
}
