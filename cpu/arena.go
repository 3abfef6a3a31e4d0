package cpu

const (
	IMEM_DEPTH = 4096 // Instruction memory depth, in words.
	DMEM_DEPTH = 4096 // Data memory depth, in words.
	PC_MASK    = 0xfff

	REG_COUNT = 16 // Register file size.

	IMM_BITS = 12
	IMM_MASK = (1 << IMM_BITS) - 1
	IMM_SIGN = 1 << (IMM_BITS - 1)

	WORD_DIGITS = 12 // Hex digits in an instruction word.
)
