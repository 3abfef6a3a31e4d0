package cpu

import (
	"errors"
	"fmt"
	"log"
	"strings"
)

// Memory is the data memory attached to the CPU.
type Memory interface {
	Load(addr int32) (value int32, err error)
	Store(addr int32, value int32) (err error)
}

// Ports is the memory-mapped I/O register bank attached to the CPU.
type Ports interface {
	In(index int32) (value int32, err error)
	Out(index int32, value int32) (err error)
	IrqReturn() int32
}

// Cpu is the simulation context for the SIMP processor.
type Cpu struct {
	Verbose bool // Set to enable verbose logging.

	Pc       int32            // Program counter.
	Register [REG_COUNT]int32 // Register file.
	Halted   bool             // Set by the halt instruction.
	InIsr    bool             // Set while an interrupt handler runs.

	Memory Memory // Data memory.
	Ports  Ports  // I/O register bank.
}

// NewCpu creates a new CPU attached to its memory and I/O ports.
func NewCpu(memory Memory, ports Ports) (cpu *Cpu) {
	cpu = &Cpu{
		Memory: memory,
		Ports:  ports,
	}

	return
}

// Reset the CPU state.
func (cpu *Cpu) Reset() {
	if cpu.Verbose {
		log.Printf("cpu: reset")
	}

	clear(cpu.Register[:])
	cpu.Pc = 0
	cpu.Halted = false
	cpu.InIsr = false
}

// String returns the current CPU state as a string.
func (cpu *Cpu) String() (text string) {
	var lines []string

	state := "running"
	switch {
	case cpu.Halted:
		state = "halted"
	case cpu.InIsr:
		state = "isr"
	}
	lines = append(lines, fmt.Sprintf("% 5s: %03X (%v)", "pc", cpu.Pc, state))

	for reg := REG_V0; reg < REG_COUNT; reg++ {
		val := uint32(cpu.Register[reg])
		lines = append(lines, fmt.Sprintf("% 5s: %04X_%04X", reg, val>>16, val&0xffff))
	}

	text = strings.Join(lines, "\n") + "\n"
	return
}

// value resolves a register selector. Selectors 1 and 2 read the
// immediates of the current instruction.
func (cpu *Cpu) value(sel CodeReg, code Code) int32 {
	switch sel {
	case REG_IMM1:
		return code.Imm1
	case REG_IMM2:
		return code.Imm2
	}

	return cpu.Register[sel]
}

// Interrupt enters the interrupt handler, unless one is already running.
// The interrupted pc is returned.
func (cpu *Cpu) Interrupt(handler int32) (ret int32, ok bool) {
	if cpu.InIsr {
		return
	}

	if cpu.Verbose {
		log.Printf("cpu: interrupt %03x -> %03x", cpu.Pc, handler)
	}

	ret = cpu.Pc
	cpu.Pc = handler
	cpu.InIsr = true
	ok = true

	return
}

// taken evaluates a signed branch condition.
func taken(op CodeOp, rs, rt int32) bool {
	switch op {
	case OP_BEQ:
		return rs == rt
	case OP_BNE:
		return rs != rt
	case OP_BLT:
		return rs < rt
	case OP_BGT:
		return rs > rt
	case OP_BLE:
		return rs <= rt
	case OP_BGE:
		return rs >= rt
	}

	return false
}

// Execute executes a single decoded instruction.
func (cpu *Cpu) Execute(code Code) (err error) {
	defer func() {
		if err != nil {
			err = errors.Join(ErrOpcode(code), err)
		}
	}()

	if cpu.Verbose {
		log.Printf("%03x: %v", cpu.Pc, code)
	}

	if cpu.Halted {
		err = ErrHalted
		return
	}

	if !code.Op.Valid() {
		err = ErrOpcodeInvalid
		return
	}

	for _, reg := range [...]CodeReg{code.Rd, code.Rs, code.Rt, code.Rm} {
		if reg < 0 || reg >= REG_COUNT {
			err = ErrRegisterInvalid
			return
		}
	}

	rs := cpu.value(code.Rs, code)
	rt := cpu.value(code.Rt, code)
	rm := cpu.value(code.Rm, code)

	next_pc := cpu.Pc + 1

	set := func(value int32) { cpu.Register[code.Rd] = value }

	if code.Op.IsBranch() && taken(code.Op, rs, rt) {
		next_pc = rm & PC_MASK
	}

	switch code.Op {
	case OP_ADD:
		set(rs + rt + rm)
	case OP_SUB:
		set(rs - rt - rm)
	case OP_MAC:
		set(rs*rt + rm)
	case OP_AND:
		set(rs & rt & rm)
	case OP_OR:
		set(rs | rt | rm)
	case OP_XOR:
		set(rs ^ rt ^ rm)
	case OP_SLL:
		set(rs << (rt & 0x1f))
	case OP_SRA:
		set(rs >> (rt & 0x1f))
	case OP_SRL:
		set(int32(uint32(rs) >> (rt & 0x1f)))
	case OP_JAL:
		set(next_pc)
		next_pc = rm & PC_MASK
	case OP_LW:
		if cpu.Memory == nil {
			err = ErrMemoryMissing
			return
		}
		var value int32
		value, err = cpu.Memory.Load(rs + rt)
		if err != nil {
			return
		}
		set(value + rm)
	case OP_SW:
		if cpu.Memory == nil {
			err = ErrMemoryMissing
			return
		}
		err = cpu.Memory.Store(rs+rt, rm+cpu.value(code.Rd, code))
		if err != nil {
			return
		}
	case OP_RETI:
		if cpu.Ports == nil {
			err = ErrPortsMissing
			return
		}
		next_pc = cpu.Ports.IrqReturn()
		cpu.InIsr = false
	case OP_IN:
		if cpu.Ports == nil {
			err = ErrPortsMissing
			return
		}
		var value int32
		value, err = cpu.Ports.In(rs + rt)
		if err != nil {
			return
		}
		set(value)
	case OP_OUT:
		if cpu.Ports == nil {
			err = ErrPortsMissing
			return
		}
		err = cpu.Ports.Out(rs+rt, rm)
		if err != nil {
			return
		}
	case OP_HALT:
		cpu.Halted = true
		next_pc = cpu.Pc
	}

	cpu.Pc = next_pc

	return
}
