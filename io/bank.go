package io

import (
	"log"
)

// Bank is the memory-mapped I/O register bank, and the interrupt, timer,
// clock and disk controllers that share its registers.
type Bank struct {
	Verbose bool

	Register [IO_COUNT]int32

	Memory   *Memory   // Disk DMA target.
	Disk     *Disk     // Disk controller.
	Monitor  *Monitor  // Framebuffer for monitorcmd.
	Schedule *Schedule // External interrupt schedule.
	Leds     *Tape     // Log of leds writes.
	Display  *Tape     // Log of display7seg writes.
	HwTrace  *Tape     // Log of every register access.
}

// Reset clears all registers.
func (bank *Bank) Reset() {
	clear(bank.Register[:])
	if bank.Disk != nil {
		bank.Disk.Arm()
	}
	if bank.Schedule != nil {
		bank.Schedule.Rewind()
	}
}

// Clks returns the cycle counter.
func (bank *Bank) Clks() int32 {
	return bank.Register[IO_CLKS]
}

// IrqReturn returns the saved interrupt return address.
func (bank *Bank) IrqReturn() int32 {
	return bank.Register[IO_IRQRETURN]
}

// IrqHandler returns the interrupt handler address.
func (bank *Bank) IrqHandler() int32 {
	return bank.Register[IO_IRQHANDLER]
}

// SetIrqReturn saves the interrupt return address.
func (bank *Bank) SetIrqReturn(pc int32) {
	bank.Register[IO_IRQRETURN] = pc
}

// trace logs a register access.
func (bank *Bank) trace(action string, reg IoReg, value int32) (err error) {
	if bank.Verbose {
		log.Printf("io: %v %v %08x", action, reg, uint32(value))
	}

	return bank.HwTrace.Printf("%d %s %s %08X\n", bank.Clks(), action, reg, uint32(value))
}

// In reads a register. The monitor command register reads as zero.
func (bank *Bank) In(index int32) (value int32, err error) {
	reg := IoReg(index)
	if !reg.Valid() {
		err = ErrRegisterRange(index)
		return
	}

	if reg != IO_MONITORCMD {
		value = bank.Register[reg]
	}

	err = bank.trace("READ", reg, value)
	return
}

// Out writes a register, and performs the device side effects of the write.
func (bank *Bank) Out(index int32, value int32) (err error) {
	reg := IoReg(index)
	if !reg.Valid() {
		err = ErrRegisterRange(index)
		return
	}

	if reg != IO_MONITORCMD {
		bank.Register[reg] = value
	}

	err = bank.trace("WRITE", reg, value)
	if err != nil {
		return
	}

	switch reg {
	case IO_LEDS:
		err = bank.Leds.Record(bank.Clks(), value)
	case IO_DISPLAY7SEG:
		err = bank.Display.Record(bank.Clks(), value)
	case IO_MONITORCMD:
		if value == 1 && bank.Monitor != nil {
			err = bank.Monitor.Draw(bank.Register[IO_MONITORADDR], bank.Register[IO_MONITORDATA])
		}
	case IO_DISKCMD:
		if value == DISK_CMD_READ || value == DISK_CMD_WRITE {
			bank.Register[IO_DISKSTATUS] = 1
			if bank.Disk != nil {
				bank.Disk.Arm()
			}
		}
	}

	return
}

// DiskBusy returns true while a disk transfer is in progress.
func (bank *Bank) DiskBusy() bool {
	return bank.Register[IO_DISKSTATUS] != 0
}

// DiskRemaining returns the cycles left in the current disk transfer.
func (bank *Bank) DiskRemaining() int {
	if !bank.DiskBusy() || bank.Disk == nil {
		return 0
	}

	return bank.Disk.Remaining()
}

// TickDisk advances a busy disk by one cycle. On completion the command
// and status are cleared and irq1 is raised.
func (bank *Bank) TickDisk() (err error) {
	if bank.Disk == nil || bank.Memory == nil {
		return
	}

	done, err := bank.Disk.Tick(
		bank.Register[IO_DISKCMD],
		bank.Register[IO_DISKSECTOR],
		bank.Register[IO_DISKBUFFER],
		bank.Memory)
	if !done {
		return
	}

	bank.Register[IO_DISKCMD] = DISK_CMD_NONE
	bank.Register[IO_DISKSTATUS] = 0
	bank.Register[IO_IRQ1STATUS] = 1

	return
}

// TickTimer advances an enabled timer. The timer raises irq0, and restarts,
// on the tick that brings timercurrent to timermax.
func (bank *Bank) TickTimer() {
	if bank.Register[IO_TIMERENABLE]&1 == 0 {
		return
	}

	bank.Register[IO_TIMERCURRENT]++
	if bank.Register[IO_TIMERCURRENT] == bank.Register[IO_TIMERMAX] {
		bank.Register[IO_TIMERCURRENT] = 0
		bank.Register[IO_IRQ0STATUS] = 1
	}
}

// TickSchedule raises irq2 when the schedule is due.
func (bank *Bank) TickSchedule() {
	if bank.Schedule != nil && bank.Schedule.Fire(bank.Clks()) {
		bank.Register[IO_IRQ2STATUS] = 1
	}
}

// Pending returns true if any enabled interrupt is raised.
func (bank *Bank) Pending() bool {
	irq := (bank.Register[IO_IRQ0ENABLE] & bank.Register[IO_IRQ0STATUS]) |
		(bank.Register[IO_IRQ1ENABLE] & bank.Register[IO_IRQ1STATUS]) |
		(bank.Register[IO_IRQ2ENABLE] & bank.Register[IO_IRQ2STATUS])

	return irq&1 != 0
}

// TickClock advances the cycle counter, which wraps to zero at 0xFFFFFFFF.
func (bank *Bank) TickClock() {
	bank.Register[IO_CLKS]++
	if uint32(bank.Register[IO_CLKS]) == 0xffffffff {
		bank.Register[IO_CLKS] = 0
	}
}
