// Package cpu implements the processor and assembler for the SIMP system.
//
// The CPU has sixteen 32-bit registers, a 12-bit program counter and a
// single instruction format: an 8-bit opcode, four 4-bit register selectors
// (rd, rs, rt, rm) and two 12-bit signed immediates. Selectors 1 and 2 do
// not address storage; they read back the immediates of the instruction
// being executed.
//
// The assembler is a two pass assembler. The first pass collects labels,
// the second emits the instruction image and the initial data memory image.
package cpu
