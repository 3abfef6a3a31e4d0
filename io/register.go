package io

import (
	"iter"
	"maps"

	"github.com/ezrec/simp/internal"
)

// IoReg is a memory-mapped I/O register index.
type IoReg int

const (
	IO_IRQ0ENABLE   = IoReg(0)
	IO_IRQ1ENABLE   = IoReg(1)
	IO_IRQ2ENABLE   = IoReg(2)
	IO_IRQ0STATUS   = IoReg(3)
	IO_IRQ1STATUS   = IoReg(4)
	IO_IRQ2STATUS   = IoReg(5)
	IO_IRQHANDLER   = IoReg(6)
	IO_IRQRETURN    = IoReg(7)
	IO_CLKS         = IoReg(8)
	IO_LEDS         = IoReg(9)
	IO_DISPLAY7SEG  = IoReg(10)
	IO_TIMERENABLE  = IoReg(11)
	IO_TIMERCURRENT = IoReg(12)
	IO_TIMERMAX     = IoReg(13)
	IO_DISKCMD      = IoReg(14)
	IO_DISKSECTOR   = IoReg(15)
	IO_DISKBUFFER   = IoReg(16)
	IO_DISKSTATUS   = IoReg(17)
	IO_MONITORADDR  = IoReg(20)
	IO_MONITORDATA  = IoReg(21)
	IO_MONITORCMD   = IoReg(22) // Not stored.
)

const (
	IO_COUNT = 22 // Stored registers.
	IO_LIMIT = 23 // Addressable registers.
)

// Registers iterates over the named I/O registers. Indexes 18 and 19 are
// reserved, and have no name.
func Registers() iter.Seq2[IoReg, string] {
	return internal.IterSeq2Concat(
		internal.IterSeq2Range(IO_IRQ0ENABLE,
			"irq0enable", "irq1enable", "irq2enable",
			"irq0status", "irq1status", "irq2status",
			"irqhandler", "irqreturn",
			"clks", "leds", "display7seg",
			"timerenable", "timercurrent", "timermax",
			"diskcmd", "disksector", "diskbuffer", "diskstatus",
			"", ""),
		internal.IterSeq2Range(IO_MONITORADDR,
			"monitoraddr", "monitordata", "monitorcmd"),
	)
}

var ioRegName = maps.Collect(Registers())

// String returns the register name, empty for reserved registers.
func (reg IoReg) String() string {
	return ioRegName[reg]
}

// Valid returns true if the register is addressable.
func (reg IoReg) Valid() bool {
	return reg >= 0 && reg < IO_LIMIT
}
