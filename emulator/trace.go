package emulator

import (
	"fmt"
	"strings"

	"github.com/ezrec/simp/cpu"
)

// trace records the machine state before an instruction executes. Selector
// 0 always traces as zero, and the immediate selectors as their immediates.
func (emu *Emulator) trace(pc int32, word string, code cpu.Code) (err error) {
	if emu.Trace.Output == nil {
		return
	}

	var text strings.Builder
	fmt.Fprintf(&text, "%03X %s %08X %08X %08X ", pc, word, 0, uint32(code.Imm1), uint32(code.Imm2))
	for _, value := range emu.Cpu.Register[cpu.REG_V0:] {
		fmt.Fprintf(&text, "%08X ", uint32(value))
	}

	return emu.Trace.Printf("%s\n", text.String())
}
