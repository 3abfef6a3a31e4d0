package emulator

import (
	"errors"
	"fmt"
	stdio "io"

	"github.com/ezrec/simp/cpu"
)

// Outputs are the end of run dumps. Nil writers are skipped.
type Outputs struct {
	Memory     stdio.Writer // Data memory, dmemout.
	Registers  stdio.Writer // R3..R15, regout.
	Cycles     stdio.Writer // Cycle count.
	Disk       stdio.Writer // Disk image, diskout.
	Monitor    stdio.Writer // Framebuffer as text.
	MonitorRaw stdio.Writer // Framebuffer as raw bytes.
}

// WriteRegisters writes R3 to R15, one word per line.
func (emu *Emulator) WriteRegisters(w stdio.Writer) (err error) {
	for _, value := range emu.Cpu.Register[cpu.REG_V0:] {
		_, err = fmt.Fprintf(w, "%08X\n", uint32(value))
		if err != nil {
			return
		}
	}

	return
}

// WriteCycles writes the cycle count, without a line terminator.
func (emu *Emulator) WriteCycles(w stdio.Writer) (err error) {
	_, err = fmt.Fprintf(w, "%d", emu.Cycles())
	return
}

// Dump writes the final machine state. Every output is attempted, and the
// failures are joined.
func (emu *Emulator) Dump(out *Outputs) (err error) {
	dumps := [](struct {
		w  stdio.Writer
		fn func(w stdio.Writer) error
	}){
		{out.Memory, emu.Memory.Marshal},
		{out.Registers, emu.WriteRegisters},
		{out.Cycles, emu.WriteCycles},
		{out.Disk, emu.Disk.Marshal},
		{out.Monitor, emu.Monitor.Marshal},
		{out.MonitorRaw, emu.Monitor.MarshalRaw},
	}

	var errs []error
	for _, dump := range dumps {
		if dump.w == nil {
			continue
		}
		errs = append(errs, dump.fn(dump.w))
	}

	err = errors.Join(errs...)
	return
}
