// Copyright 2024, Jason S. McMullan <jason.mcmullan@gmail.com>

package emulator

import (
	"log"

	"github.com/k0kubun/pp/v3"

	"github.com/ezrec/simp/cpu"
	"github.com/ezrec/simp/io"
)

// Emulator state. CPU + memory + I/O devices.
type Emulator struct {
	Verbose  bool         // If set, enables verbose logging.
	*cpu.Cpu              // Reference to the CPU simulation.
	Program  *cpu.Program // Listing of the running program, if known.

	Rom      io.Rom      // Instruction memory.
	Memory   io.Memory   // Data memory.
	Disk     io.Disk     // Disk drive.
	Monitor  io.Monitor  // Framebuffer.
	Schedule io.Schedule // External interrupt schedule.

	Trace   io.Tape // Instruction trace.
	HwTrace io.Tape // I/O register access trace.
	Leds    io.Tape // leds register log.
	Display io.Tape // display7seg register log.

	Bank io.Bank // I/O register bank.
}

// NewEmulator creates a new emulator.
func NewEmulator() (emu *Emulator) {
	emu = &Emulator{
		Program: &cpu.Program{},
	}

	emu.Bank = io.Bank{
		Memory:   &emu.Memory,
		Disk:     &emu.Disk,
		Monitor:  &emu.Monitor,
		Schedule: &emu.Schedule,
		Leds:     &emu.Leds,
		Display:  &emu.Display,
		HwTrace:  &emu.HwTrace,
	}

	emu.Cpu = cpu.NewCpu(&emu.Memory, &emu.Bank)

	return
}

// Load an assembled program into instruction and data memory.
func (emu *Emulator) Load(prog *cpu.Program) (err error) {
	emu.Program = prog

	emu.Rom.Lines = nil
	for word := range prog.Words() {
		emu.Rom.Lines = append(emu.Rom.Lines, word)
	}

	emu.Memory.Reset()
	err = emu.Memory.Write(0, prog.Data)
	if err != nil {
		return
	}

	emu.Reset()

	return
}

// Reset the machine to power-on state. Loaded images are kept.
func (emu *Emulator) Reset() {
	emu.Cpu.Verbose = emu.Verbose
	emu.Cpu.Reset()
	emu.Bank.Reset()
	emu.Monitor.Reset()

	emu.Trace.Rewind()
	emu.HwTrace.Rewind()
	emu.Leds.Rewind()
	emu.Display.Rewind()
}

// LineNo returns the source line number for an instruction address, or 0
// if the listing does not cover it.
func (emu *Emulator) LineNo(pc int32) int {
	op, ok := emu.Program.Debug(pc)
	if !ok {
		return 0
	}

	return op.LineNo
}

// Tick performs a single machine cycle. done is set once the CPU halts, or
// the program counter leaves the instruction image.
func (emu *Emulator) Tick() (done bool, err error) {
	emu.Cpu.Verbose = emu.Verbose
	emu.Bank.Verbose = emu.Verbose
	emu.Disk.Verbose = emu.Verbose

	pc := emu.Cpu.Pc
	defer func() {
		if err != nil {
			err = &ErrRuntime{Pc: pc, LineNo: emu.LineNo(pc), Err: err}
		}
	}()

	if emu.Cpu.Halted {
		done = true
		return
	}

	line, ok := emu.Rom.Fetch(pc)
	if !ok {
		if emu.Verbose {
			log.Printf("emulator: %03x: end of image", pc)
		}
		emu.Cpu.Halted = true
		done = true
		return
	}

	code, err := cpu.DecodeCode(line)
	if err != nil {
		return
	}

	err = emu.trace(pc, line[:cpu.WORD_DIGITS], code)
	if err != nil {
		return
	}

	err = emu.Cpu.Execute(code)
	if err != nil {
		return
	}

	if emu.Bank.DiskBusy() {
		err = emu.Bank.TickDisk()
		if err != nil {
			return
		}
	}

	emu.Bank.TickTimer()
	emu.Bank.TickSchedule()
	if emu.Bank.Pending() {
		ret, ok := emu.Cpu.Interrupt(emu.Bank.IrqHandler())
		if ok {
			emu.Bank.SetIrqReturn(ret)
		}
	}

	emu.Bank.TickClock()

	done = emu.Cpu.Halted
	return
}

// Run ticks the emulator until it is done, or faults.
func (emu *Emulator) Run() (err error) {
	for done := false; !done; {
		done, err = emu.Tick()
		if err != nil {
			return
		}
	}

	if emu.Verbose {
		log.Printf("emulator: halted after %d cycles\n%v", emu.Cycles(), emu.Cpu)
		log.Printf("emulator: i/o %v", pp.Sprint(emu.Registers()))
	}

	return
}

// Cycles returns the cycle count, including the cycles left on an
// unfinished disk transfer.
func (emu *Emulator) Cycles() uint64 {
	return uint64(uint32(emu.Bank.Clks())) + uint64(emu.Bank.DiskRemaining())
}

// Registers returns the named I/O registers and their values.
func (emu *Emulator) Registers() (regs map[string]int32) {
	regs = map[string]int32{}
	for reg, name := range io.Registers() {
		if len(name) == 0 || reg == io.IO_MONITORCMD {
			continue
		}
		regs[name] = emu.Bank.Register[reg]
	}

	return
}
