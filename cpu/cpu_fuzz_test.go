package cpu

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func FuzzCpu(f *testing.F) {
	for op := range uint8(OP_COUNT + 2) {
		f.Add(op, uint8(0x3), uint8(0x12), uint8(0xfe), uint16(0x7ff), uint16(0x800))
		f.Add(op, uint8(0xf), uint8(0x21), uint8(0x1f), uint16(0x005), uint16(0xfff))
	}

	f.Fuzz(func(t *testing.T, op uint8, rd uint8, rsrt uint8, rm uint8, imm1 uint16, imm2 uint16) {
		assert := assert.New(t)

		code := MakeCode(CodeOp(op), CodeReg(rd&0xf), CodeReg(rsrt>>4), CodeReg(rsrt&0xf), CodeReg(rm&0xf),
			signExtend(int32(imm1&IMM_MASK)), signExtend(int32(imm2&IMM_MASK)))

		decoded, err := DecodeCode(code.Word())
		assert.NoError(err)
		assert.Equal(code, decoded)

		cpu, _, ports := newTestCpu()
		for n := range cpu.Register {
			cpu.Register[n] = int32(n) * 3
		}
		ports.reg[7] = 0x77
		cpu.Pc = 0x100

		rmValue := cpu.value(code.Rm, code)

		err = cpu.Execute(code)

		switch {
		case !code.Op.Valid():
			assert.ErrorIs(err, ErrOpcodeInvalid)
			assert.Equal(int32(0x100), cpu.Pc)
		case err != nil:
			// Only memory and I/O can fault.
			assert.Contains([]CodeOp{OP_LW, OP_SW, OP_IN, OP_OUT}, code.Op)
			assert.ErrorIs(err, errTestRange)
			assert.Equal(int32(0x100), cpu.Pc)
		case code.Op == OP_HALT:
			assert.True(cpu.Halted)
			assert.Equal(int32(0x100), cpu.Pc)
		case code.Op == OP_RETI:
			assert.Equal(int32(0x77), cpu.Pc)
		case code.Op == OP_JAL:
			assert.Equal(rmValue&PC_MASK, cpu.Pc)
		case code.Op.IsBranch():
			assert.Contains([]int32{0x101, rmValue & PC_MASK}, cpu.Pc)
		default:
			assert.Equal(int32(0x101), cpu.Pc)
		}
	})
}
