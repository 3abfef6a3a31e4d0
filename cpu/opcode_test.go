package cpu

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCodeWord(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		name string
		code Code
		word string
	}){
		{"add", MakeCode(OP_ADD, REG_V0, REG_ZERO, REG_ZERO, REG_ZERO, 0, 0), "003000000000"},
		{"halt", MakeCode(OP_HALT, REG_ZERO, REG_ZERO, REG_ZERO, REG_ZERO, 0, 0), "150000000000"},
		{"fields", MakeCode(OP_BGE, REG_V0, REG_IMM1, REG_IMM2, REG_RA, 0x123, 0x456), "0E312F123456"},
		{"negative", MakeCode(OP_ADD, REG_ZERO, REG_ZERO, REG_ZERO, REG_ZERO, -1, -2048), "000000FFF800"},
		{"masked", MakeCode(OP_JAL, REG_RA, REG_ZERO, REG_ZERO, REG_IMM1, 0x1005, 0), "0FF001005000"},
		{"unknown", Code{Op: unknown, Rd: unknown, Imm1: -1, Imm2: 2047}, "FFF000FFF7FF"},
	}

	for _, entry := range table {
		word := entry.code.Word()
		assert.Equal(entry.word, word, entry.name)
		assert.Equal(WORD_DIGITS, len(word), entry.name)
	}
}

func TestDecodeCode(t *testing.T) {
	assert := assert.New(t)

	code, err := DecodeCode("0E3120FFF800\n")
	assert.NoError(err)
	assert.Equal(MakeCode(OP_BGE, REG_V0, REG_IMM1, REG_IMM2, REG_ZERO, -1, -2048), code)

	code, err = DecodeCode("0000007FF001")
	assert.NoError(err)
	assert.Equal(int32(2047), code.Imm1)
	assert.Equal(int32(1), code.Imm2)

	// Lower case hex is accepted.
	code, err = DecodeCode("0a0701001000")
	assert.NoError(err)
	assert.Equal(OP_BNE, code.Op)
	assert.Equal(REG_T0, code.Rs)

	_, err = DecodeCode("15000000000")
	var short ErrDecodeShort
	assert.True(errors.As(err, &short))
	assert.Equal(ErrDecodeShort("15000000000"), short)
}

func TestCodeRoundTrip(t *testing.T) {
	assert := assert.New(t)

	for op := range CodeOp(OP_COUNT) {
		for _, imm := range []int32{-2048, -1, 0, 1, 2047} {
			code := MakeCode(op, CodeReg(op)&0xf, REG_IMM1, REG_IMM2, REG_RA, imm, -imm-1)
			decoded, err := DecodeCode(code.Word())
			assert.NoError(err, op.String())
			assert.Equal(code, decoded, op.String())
		}
	}
}

func TestCodeString(t *testing.T) {
	assert := assert.New(t)

	code := MakeCode(OP_ADD, REG_V0, REG_ZERO, REG_IMM1, REG_ZERO, 5, 0)
	assert.Equal("add $v0, $zero, $imm1, $zero, 5, 0", code.String())

	assert.True(OP_HALT.Valid())
	assert.False(CodeOp(OP_COUNT).Valid())
	assert.False(CodeOp(unknown).Valid())
	assert.True(OP_BGE.IsBranch())
	assert.False(OP_JAL.IsBranch())
}
